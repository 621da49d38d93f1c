// Package dataset loads the franchise listing table from its CSV source and
// provides the shared money/unit-count parsing helpers used by matching and
// composition.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/franchise-advisor/internal/types"
)

// Column names after normalization (trimmed, lowercased). These mirror the
// headers of the source spreadsheet export.
const (
	colFranchiseName = "franchise name"
	colIndustry      = "industry"
	colSummary       = "business summary"
	colCashRequired  = "cash required"
	colFranchiseFee  = "franchise fee"
	colUnitsOpen     = "number of units open"
	colSemiAbsentee  = "semi-absentee ownership"
	colPassive       = "passive franchise"
	colSupport       = "support"
	colURL           = "url"
)

// LoadError represents a failure to read or parse the dataset file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dataset load failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataset load failed for %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads the listing table from a CSV file. A missing or malformed file
// is fatal to the caller: the advisor refuses to run without its dataset.
func Load(path string) ([]types.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "dataset not found", Cause: err}
	}
	defer func() { _ = f.Close() }()

	listings, err := Read(f)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "could not parse dataset", Cause: err}
	}
	return listings, nil
}

// Read parses listing rows from CSV content. Header names are trimmed and
// lowercased before lookup, matching how the source spreadsheet columns are
// normalized. Rows keep the file's order; that order is what the
// recommendation filter preserves.
func Read(r io.Reader) ([]types.Listing, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; missing cells become ""

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index[colFranchiseName]; !ok {
		return nil, fmt.Errorf("required column %q not found", colFranchiseName)
	}

	var listings []types.Listing
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		listings = append(listings, types.Listing{
			FranchiseName:   cell(colFranchiseName),
			Industry:        cell(colIndustry),
			BusinessSummary: cell(colSummary),
			CashRequired:    cell(colCashRequired),
			FranchiseFee:    cell(colFranchiseFee),
			UnitsOpen:       cell(colUnitsOpen),
			SemiAbsentee:    isAffirmative(cell(colSemiAbsentee)),
			Passive:         isAffirmative(cell(colPassive)),
			Support:         cell(colSupport),
			URL:             cell(colURL),
		})
	}

	return listings, nil
}

// isAffirmative interprets the spreadsheet's boolean-like flag cells.
func isAffirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}
