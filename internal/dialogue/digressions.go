package dialogue

import (
	"strings"

	"github.com/jonathan/franchise-advisor/internal/extraction"
	"github.com/jonathan/franchise-advisor/internal/prompts"
)

// anxietyKeywords trigger the empathy digression.
var anxietyKeywords = []string{"scared", "nervous", "worried", "fear"}

// runDigressions executes the turn-level handlers that fire before stage
// dispatch. It returns any messages to prepend and whether the turn was
// consumed (in which case stage dispatch is skipped and the stage stays
// put).
func (e *Engine) runDigressions(st *State, text string) ([]string, bool) {
	// Name capture: passive, fires once, never consumes the turn.
	if st.Profile.Name == "" {
		if name, ok := extraction.Name(text); ok {
			st.Profile.Name = name
		}
	}

	var messages []string
	if mentionsAnxiety(text) {
		messages = append(messages, prompts.MustGet(dialogueFile, "reassurance"))
	}

	// Size clarifier: only meaningful while the size question is pending.
	// It answers the question about the question, re-asks, and consumes
	// the turn so the reply is not fed to the size extractor.
	if st.Stage == StageSize && asksSizeDifference(text) {
		messages = append(messages,
			prompts.MustGet(dialogueFile, "clarifier-small"),
			prompts.MustGet(dialogueFile, "clarifier-large"),
			prompts.MustGet(dialogueFile, "reprompt-size"),
		)
		return messages, true
	}

	return messages, false
}

func mentionsAnxiety(text string) bool {
	t := strings.ToLower(text)
	for _, kw := range anxietyKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// asksSizeDifference detects a question about the small-vs-large choice
// itself. It needs both ends of the comparison present: a reply that merely
// mentions "difference" while answering ("the size difference doesn't
// matter, either works") must reach the size extractor instead.
func asksSizeDifference(text string) bool {
	t := strings.ToLower(text)
	return strings.Contains(t, "difference") &&
		strings.Contains(t, "small") &&
		(strings.Contains(t, "large") || strings.Contains(t, "big"))
}
