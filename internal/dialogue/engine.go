package dialogue

import (
	"context"

	"github.com/jonathan/franchise-advisor/internal/extraction"
	"github.com/jonathan/franchise-advisor/internal/prompts"
	"github.com/jonathan/franchise-advisor/internal/types"
)

const dialogueFile = "dialogue.json"

// defaultMaxReprompts bounds how often a stage re-asks its question before
// moving on, so a conversation can never loop forever on one field.
const defaultMaxReprompts = 3

// Recommender produces the final recommendation message for a completed
// profile. It must not fail: degraded paths return templated text.
type Recommender interface {
	Recommend(ctx context.Context, profile *types.Profile) string
}

// Rephraser restates a baseline question in a natural tone, returning the
// baseline unchanged on any failure.
type Rephraser interface {
	RephraseQuestion(ctx context.Context, baseline string) string
}

// State is the per-conversation context: the profile under construction,
// the current stage, and the transcript. It is owned by the caller and
// passed explicitly through every turn; nothing here is global.
type State struct {
	Profile   types.Profile
	Stage     Stage
	History   types.History
	reprompts map[Stage]int
}

// NewState creates the conversation context for a fresh session.
func NewState() *State {
	return &State{
		Stage:     StageRapport,
		reprompts: make(map[Stage]int),
	}
}

// TurnResult is the explicit outcome of processing one user turn. The
// conversation loop applies it; no handler advances the pipeline through
// side channels.
type TurnResult struct {
	Consumed  bool     // a digression consumed the turn; no extraction ran
	Messages  []string // assistant messages in emit order
	NextStage Stage
}

// Engine drives the stage machine. One Engine serves many sessions; all
// per-conversation data lives in State.
type Engine struct {
	recommender  Recommender
	rephraser    Rephraser
	maxReprompts int
}

// NewEngine creates an Engine. rephraser may be nil to always use the
// baseline question wording. maxReprompts <= 0 selects the default budget.
func NewEngine(recommender Recommender, rephraser Rephraser, maxReprompts int) *Engine {
	if maxReprompts <= 0 {
		maxReprompts = defaultMaxReprompts
	}
	return &Engine{
		recommender:  recommender,
		rephraser:    rephraser,
		maxReprompts: maxReprompts,
	}
}

// Greet opens the conversation with the fixed greeting, which doubles as
// the first question (primary interests).
func (e *Engine) Greet(st *State) string {
	greeting := prompts.MustGet(dialogueFile, "greeting")
	st.History = st.History.Append(types.RoleAssistant, greeting)
	return greeting
}

// HandleTurn runs one full pass of the pipeline for a user message:
// append to history, digressions first, then stage dispatch. Exactly one
// outbound message set is produced; digressions may prepend to it.
func (e *Engine) HandleTurn(ctx context.Context, st *State, text string) TurnResult {
	st.History = st.History.Append(types.RoleUser, text)

	result := e.processTurn(ctx, st, text)

	for _, msg := range result.Messages {
		st.History = st.History.Append(types.RoleAssistant, msg)
	}
	st.Stage = result.NextStage
	return result
}

func (e *Engine) processTurn(ctx context.Context, st *State, text string) TurnResult {
	prefix, consumed := e.runDigressions(st, text)
	if consumed {
		return TurnResult{Consumed: true, Messages: prefix, NextStage: st.Stage}
	}

	step := e.dispatch(ctx, st, text)
	step.Messages = append(prefix, step.Messages...)
	return step
}

// stageStep describes one row of the pipeline table: how to parse the
// pending field, where to go on success, and what to say on a miss.
type stageStep struct {
	next        Stage
	askKey      string // question announcing the next stage
	repromptKey string // retry wording; empty means the extractor is total
	skipKey     string // transition wording when the re-prompt budget runs out
	extract     func(p *types.Profile, text string) bool
	skipApply   func(p *types.Profile) // optional default on skip
}

// stageTable is the single definition of the question pipeline. Adding a
// stage means adding a row, not another copy of the dispatch logic.
var stageTable = map[Stage]stageStep{
	StageRapport: {
		next:        StageCapital,
		askKey:      "ask-capital",
		repromptKey: "reprompt-interests",
		skipKey:     "skip-interests",
		extract: func(p *types.Profile, text string) bool {
			keywords, ok := extraction.Interests(text)
			if ok {
				p.Interests = keywords
			}
			return ok
		},
	},
	StageCapital: {
		next:        StageHours,
		askKey:      "ask-hours",
		repromptKey: "reprompt-capital",
		skipKey:     "skip-capital",
		extract: func(p *types.Profile, text string) bool {
			amount, ok := extraction.Capital(text)
			if ok {
				p.Capital = amount
			}
			return ok
		},
	},
	StageHours: {
		next:   StageSize,
		askKey: "ask-size",
		extract: func(p *types.Profile, text string) bool {
			// Total: any answer classifies, owner is the safe default.
			p.Hours = extraction.Hours(text)
			return true
		},
	},
	StageSize: {
		next:        StageRecommend,
		repromptKey: "reprompt-size",
		skipKey:     "default-size",
		extract: func(p *types.Profile, text string) bool {
			size, ok := extraction.Size(text)
			if ok {
				p.Size = size
			}
			return ok
		},
		skipApply: func(p *types.Profile) { p.Size = types.SizeEither },
	},
}

func (e *Engine) dispatch(ctx context.Context, st *State, text string) TurnResult {
	switch st.Stage {
	case StageDone:
		// Terminal: the profile is frozen, no late field capture.
		return TurnResult{
			Messages:  []string{prompts.MustGet(dialogueFile, "session-done")},
			NextStage: StageDone,
		}
	case StageRecommend:
		// Normally reached synchronously from the size stage; handled
		// here too in case a stored session was left mid-transition.
		return e.recommendNow(ctx, st)
	}

	step := stageTable[st.Stage]

	if step.extract(&st.Profile, text) {
		return e.advance(ctx, st, step)
	}

	if st.reprompts == nil {
		st.reprompts = make(map[Stage]int)
	}
	st.reprompts[st.Stage]++
	if st.reprompts[st.Stage] >= e.maxReprompts {
		if step.skipApply != nil {
			step.skipApply(&st.Profile)
		}
		transition := prompts.MustGet(dialogueFile, step.skipKey)
		advanced := e.advance(ctx, st, step)
		advanced.Messages = append([]string{transition}, advanced.Messages...)
		return advanced
	}

	return TurnResult{
		Messages:  []string{prompts.MustGet(dialogueFile, step.repromptKey)},
		NextStage: st.Stage,
	}
}

// advance emits the next stage's question, or runs the recommendation
// synchronously when data collection just finished.
func (e *Engine) advance(ctx context.Context, st *State, step stageStep) TurnResult {
	if step.next == StageRecommend {
		return e.recommendNow(ctx, st)
	}

	question := prompts.MustGet(dialogueFile, step.askKey)
	if e.rephraser != nil {
		question = e.rephraser.RephraseQuestion(ctx, question)
	}
	return TurnResult{Messages: []string{question}, NextStage: step.next}
}

// recommendNow runs filter + composer and terminates the pipeline. The
// attempt always advances to done, whether or not generation succeeded.
func (e *Engine) recommendNow(ctx context.Context, st *State) TurnResult {
	message := e.recommender.Recommend(ctx, &st.Profile)
	return TurnResult{Messages: []string{message}, NextStage: StageDone}
}
