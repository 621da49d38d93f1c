// Package types provides type definitions for structured data used throughout the franchise-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Listing represents one row of the franchise dataset. Money and unit-count
// fields stay as free text exactly as they appear in the source spreadsheet;
// parsing happens at filter/format time so unparseable rows degrade per
// clause instead of failing the whole load.
type Listing struct {
	FranchiseName   string `json:"franchise_name"`
	Industry        string `json:"industry"`
	BusinessSummary string `json:"business_summary"`
	CashRequired    string `json:"cash_required"`
	FranchiseFee    string `json:"franchise_fee"`
	UnitsOpen       string `json:"number_of_units_open"`
	SemiAbsentee    bool   `json:"semi_absentee_ownership"`
	Passive         bool   `json:"passive_franchise"`
	Support         string `json:"support,omitempty"`
	URL             string `json:"url"`
}
