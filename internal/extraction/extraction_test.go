package extraction

import (
	"testing"

	"github.com/jonathan/franchise-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterests_TokenizesAndLowercases(t *testing.T) {
	keywords, ok := Interests("I love Coffee and FITNESS")
	require.True(t, ok)
	assert.Equal(t, []string{"love", "coffee", "and", "fitness"}, keywords)
}

func TestInterests_DropsShortTokens(t *testing.T) {
	keywords, ok := Interests("go is my thing")
	require.True(t, ok)
	// "go" and "is" are under the three-letter minimum and "my" too.
	assert.Equal(t, []string{"thing"}, keywords)
}

func TestInterests_Stoplist(t *testing.T) {
	keywords, ok := Interests("just really starting my journey into franchising with pets")
	require.True(t, ok)
	assert.Equal(t, []string{"with", "pets"}, keywords)
}

func TestInterests_NoMatch(t *testing.T) {
	_, ok := Interests("ok")
	assert.False(t, ok)

	_, ok = Interests("just really")
	assert.False(t, ok, "stoplist-only replies should not advance the stage")

	_, ok = Interests("123 !!")
	assert.False(t, ok)
}

func TestCapital_Formats(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"about $50,000", 50000},
		{"$120000", 120000},
		{"i could do 75,000 or so", 75000},
		{"maybe 40000", 40000},
	}

	for _, tt := range tests {
		got, ok := Capital(tt.input)
		require.True(t, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestCapital_NoMatch(t *testing.T) {
	_, ok := Capital("not sure yet, what do most people invest?")
	assert.False(t, ok)

	_, ok = Capital("")
	assert.False(t, ok)
}

func TestHours_IsTotal(t *testing.T) {
	tests := []struct {
		input string
		want  types.HoursCommitment
	}{
		{"semi-absentee sounds right", types.HoursSemi},
		{"maybe 10-20 hours", types.HoursSemi},
		{"part-time at first", types.HoursSemi},
		{"fully passive please", types.HoursPassive},
		{"<5 hours a week", types.HoursPassive},
		{"five hours tops", types.HoursPassive},
		{"I want to run it myself full time", types.HoursOwner},
		{"whatever it takes", types.HoursOwner},
		{"banana", types.HoursOwner},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Hours(tt.input), "input %q", tt.input)
	}
}

func TestHours_SemiTakesPrecedenceOverPassive(t *testing.T) {
	// Both markers present: the semi check runs first.
	assert.Equal(t, types.HoursSemi, Hours("semi, mostly passive"))
}

func TestSize_WholeWordMatching(t *testing.T) {
	got, ok := Size("a small one")
	require.True(t, ok)
	assert.Equal(t, types.SizeSmall, got)

	got, ok = Size("big and established")
	require.True(t, ok)
	assert.Equal(t, types.SizeLarge, got)

	got, ok = Size("either works")
	require.True(t, ok)
	assert.Equal(t, types.SizeEither, got)

	got, ok = Size("no preference at all")
	require.True(t, ok)
	assert.Equal(t, types.SizeEither, got)
}

func TestSize_IsPartial(t *testing.T) {
	_, ok := Size("hmm, what would you suggest?")
	assert.False(t, ok)

	// "largely" must not trigger the whole-word "large" match.
	_, ok = Size("largely undecided")
	assert.False(t, ok)

	_, ok = Size("smallish")
	assert.False(t, ok)
}

func TestName_Patterns(t *testing.T) {
	name, ok := Name("Hi, I'm dana and I like coffee")
	require.True(t, ok)
	assert.Equal(t, "Dana", name)

	name, ok = Name("my name is Marcus")
	require.True(t, ok)
	assert.Equal(t, "Marcus", name)

	name, ok = Name("I am Priya")
	require.True(t, ok)
	assert.Equal(t, "Priya", name)
}

func TestName_NoFalsePositives(t *testing.T) {
	_, ok := Name("coffee and golf mostly")
	assert.False(t, ok)

	_, ok = Name("I'm really nervous about this")
	assert.False(t, ok)

	_, ok = Name("I'm interested in fitness")
	assert.False(t, ok)

	_, ok = Name("I'm a bit scared of debt")
	assert.False(t, ok, "single-letter and filler tokens are not names")
}
