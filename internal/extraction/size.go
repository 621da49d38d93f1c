package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/franchise-advisor/internal/types"
)

// Whole-word matchers for the size answer. Substring matching would turn
// "largely undecided" into a large preference.
var (
	smallPattern  = regexp.MustCompile(`\bsmall\b`)
	largePattern  = regexp.MustCompile(`\b(large|big)\b`)
	eitherPattern = regexp.MustCompile(`\b(either|any)\b`)
)

// Size classifies a size-preference reply. This extractor is partial: a
// reply without a recognizable small/large/either marker returns false and
// the dialogue layer re-prompts.
func Size(text string) (types.SizePreference, bool) {
	t := strings.ToLower(text)

	switch {
	case smallPattern.MatchString(t):
		return types.SizeSmall, true
	case largePattern.MatchString(t):
		return types.SizeLarge, true
	case eitherPattern.MatchString(t), strings.Contains(t, "no preference"):
		return types.SizeEither, true
	}
	return "", false
}
