// Package matching narrows the franchise dataset to the listings that fit a
// completed profile. The filter is a pure conjunction: clauses are applied
// in a fixed order for reproducibility, but the surviving set is the same
// intersection regardless of order. Row order follows the dataset.
package matching

import (
	"strings"

	"github.com/jonathan/franchise-advisor/internal/dataset"
	"github.com/jonathan/franchise-advisor/internal/types"
)

// DefaultTopK is the number of listings passed to the composer as context.
const DefaultTopK = 6

// Trace records how many rows survived one filter clause, for verbose mode.
type Trace struct {
	Clause    string `json:"clause"`
	Survivors int    `json:"survivors"`
}

// Filter returns at most topK listings satisfying every active clause of
// the profile. A clause is active only when its profile field was collected
// (or, for hours/size, is narrower than the no-filter default).
func Filter(profile *types.Profile, listings []types.Listing, topK int) []types.Listing {
	matched, _ := FilterWithTrace(profile, listings, topK)
	return matched
}

// FilterWithTrace is Filter plus a per-clause survivor count.
func FilterWithTrace(profile *types.Profile, listings []types.Listing, topK int) ([]types.Listing, []Trace) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	rows := listings
	var traces []Trace

	apply := func(clause string, keep func(types.Listing) bool) {
		var out []types.Listing
		for _, row := range rows {
			if keep(row) {
				out = append(out, row)
			}
		}
		rows = out
		traces = append(traces, Trace{Clause: clause, Survivors: len(rows)})
	}

	if profile.HasInterests() {
		apply("interests", func(row types.Listing) bool {
			return matchesAnyKeyword(row, profile.Interests)
		})
	}

	if profile.HasCapital() {
		apply("capital", func(row types.Listing) bool {
			// Rows with no parsable minimum are excluded while this
			// clause is active.
			low, ok := dataset.ParseAmount(row.CashRequired)
			return ok && low <= profile.Capital
		})
	}

	switch profile.Hours {
	case types.HoursSemi:
		apply("hours", func(row types.Listing) bool { return row.SemiAbsentee })
	case types.HoursPassive:
		apply("hours", func(row types.Listing) bool { return row.Passive })
	}
	// owner-operators accept any ownership model; no clause

	if profile.HasSize() && profile.Size != types.SizeEither {
		apply("size", func(row types.Listing) bool {
			return dataset.SizeBucket(row.UnitsOpen) == string(profile.Size)
		})
	}

	if len(rows) > topK {
		rows = rows[:topK]
	}
	return rows, traces
}

// matchesAnyKeyword reports whether any interest keyword appears in the
// row's industry or business summary, case-insensitively.
func matchesAnyKeyword(row types.Listing, keywords []string) bool {
	industry := strings.ToLower(row.Industry)
	summary := strings.ToLower(row.BusinessSummary)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(industry, kw) || strings.Contains(summary, kw) {
			return true
		}
	}
	return false
}
