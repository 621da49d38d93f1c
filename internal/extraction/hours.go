package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/franchise-advisor/internal/types"
)

// hourRangePattern matches explicit weekly-hour ranges like "10-20" that
// signal semi-absentee involvement.
var hourRangePattern = regexp.MustCompile(`\b\d{1,2}\s*-\s*\d{1,2}\b`)

// Hours classifies a time-commitment reply. Unlike the other extractors this
// one is total: semi-absentee and passive have explicit markers, and any
// other answer falls into the owner-operator bucket. Time commitment has a
// safe default; capital and interests do not.
func Hours(text string) types.HoursCommitment {
	t := strings.ToLower(text)

	switch {
	case strings.Contains(t, "semi"),
		strings.Contains(t, "part-time"),
		strings.Contains(t, "part time"),
		hourRangePattern.MatchString(t):
		return types.HoursSemi
	case strings.Contains(t, "passive"),
		strings.Contains(t, "<5"),
		strings.Contains(t, "five hours"):
		return types.HoursPassive
	default:
		return types.HoursOwner
	}
}
