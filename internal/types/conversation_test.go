package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AppendPreservesOrder(t *testing.T) {
	var h History
	h = h.Append(RoleAssistant, "hello")
	h = h.Append(RoleUser, "hi")
	h = h.Append(RoleAssistant, "question")

	require.Len(t, h, 3)
	assert.Equal(t, RoleAssistant, h[0].Role)
	assert.Equal(t, "hi", h[1].Text)
	assert.Equal(t, "question", h[2].Text)
}

func TestProfile_FieldPresence(t *testing.T) {
	p := &Profile{}
	assert.False(t, p.HasInterests())
	assert.False(t, p.HasCapital())
	assert.False(t, p.HasHours())
	assert.False(t, p.HasSize())

	p.Interests = []string{"coffee"}
	p.Capital = 50000
	p.Hours = HoursOwner
	p.Size = SizeEither

	assert.True(t, p.HasInterests())
	assert.True(t, p.HasCapital())
	assert.True(t, p.HasHours())
	assert.True(t, p.HasSize())
}

func TestSendMessageRequest_Validate(t *testing.T) {
	req := &SendMessageRequest{Text: "I love coffee"}
	assert.NoError(t, req.Validate())

	empty := &SendMessageRequest{}
	assert.Error(t, empty.Validate())
}
