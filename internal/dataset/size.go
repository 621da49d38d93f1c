package dataset

import (
	"strconv"
	"strings"
)

// Size buckets for a listing's open-unit count.
const (
	BucketLarge   = "large"
	BucketSmall   = "small"
	BucketUnknown = "unknown"
)

// largeSystemThreshold is the open-unit count at which a franchise system
// counts as large.
const largeSystemThreshold = 100

// SizeBucket classifies a listing by its open-unit count: >=100 units is
// large, anything below is small, and a cell that does not parse as a plain
// integer is unknown. Unknown never satisfies a small/large preference, only
// "either".
func SizeBucket(unitsOpen string) string {
	n, err := strconv.Atoi(strings.TrimSpace(unitsOpen))
	if err != nil {
		return BucketUnknown
	}
	if n >= largeSystemThreshold {
		return BucketLarge
	}
	return BucketSmall
}
