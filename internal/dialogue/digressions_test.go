package dialogue

import (
	"context"
	"testing"

	"github.com/jonathan/franchise-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigression_EmpathyPrependsWithoutConsumingTurn(t *testing.T) {
	e, _ := newTestEngine()
	st := NewState()

	result := e.HandleTurn(context.Background(), st, "I'm a bit scared, but I like coffee")

	require.Len(t, result.Messages, 2, "reassurance plus the normal pipeline message")
	assert.Contains(t, result.Messages[0], "nervousness means you're taking it seriously")
	assert.Contains(t, result.Messages[1], "liquid capital")
	assert.Equal(t, StageCapital, st.Stage, "the pipeline still advanced")
	assert.Contains(t, st.Profile.Interests, "coffee")
}

func TestDigression_EmpathyKeywords(t *testing.T) {
	for _, text := range []string{
		"honestly I'm nervous",
		"my biggest fear is losing savings",
		"worried about the economy",
		"kind of scared",
	} {
		assert.True(t, mentionsAnxiety(text), "input %q", text)
	}
	assert.False(t, mentionsAnxiety("excited to get going"))
}

func TestDigression_NameCaptureDoesNotConsumeTurn(t *testing.T) {
	e, _ := newTestEngine()
	st := NewState()

	e.HandleTurn(context.Background(), st, "my name is Marcus and I love pets")

	assert.Equal(t, "Marcus", st.Profile.Name)
	assert.Contains(t, st.Profile.Interests, "pets")
	assert.Equal(t, StageCapital, st.Stage)
}

func TestDigression_NameIsNeverOverwritten(t *testing.T) {
	e, _ := newTestEngine()
	st := NewState()
	st.Profile.Name = "Dana"
	st.Stage = StageCapital

	e.HandleTurn(context.Background(), st, "I'm Alex, about $60,000")

	assert.Equal(t, "Dana", st.Profile.Name)
}

func TestDigression_SizeClarifierConsumesTurn(t *testing.T) {
	e, rec := newTestEngine()
	st := NewState()
	st.Stage = StageSize

	result := e.HandleTurn(context.Background(), st, "what's the difference between small and large?")

	assert.True(t, result.Consumed)
	assert.Equal(t, StageSize, st.Stage, "stage stays at size")
	assert.Empty(t, st.Profile.Size, "no extraction ran on the consumed turn")
	assert.Equal(t, 0, rec.calls)

	require.Len(t, result.Messages, 3)
	assert.Contains(t, result.Messages[0], "Smaller systems")
	assert.Contains(t, result.Messages[1], "Larger, established systems")
	assert.Contains(t, result.Messages[2], "small")
}

func TestDigression_SizeClarifierIgnoresAnswersMentioningDifference(t *testing.T) {
	e, rec := newTestEngine()
	st := NewState()
	st.Stage = StageSize

	result := e.HandleTurn(context.Background(), st, "the size difference doesn't matter, either works")

	assert.False(t, result.Consumed, "an answer is not a clarifier question")
	assert.Equal(t, types.SizeEither, st.Profile.Size)
	assert.Equal(t, StageDone, st.Stage, "size was the last field, so the recommendation ran")
	assert.Equal(t, 1, rec.calls)
}

func TestDigression_SizeClarifierOnlyActiveAtSizeStage(t *testing.T) {
	e, _ := newTestEngine()
	st := NewState()

	// At rapport, "difference" is just another reply; tokens are extracted.
	result := e.HandleTurn(context.Background(), st, "what's the difference between brands?")

	assert.False(t, result.Consumed)
	assert.Equal(t, StageCapital, st.Stage)
}
