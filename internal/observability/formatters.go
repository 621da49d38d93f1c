// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/franchise-advisor/internal/dataset"
	"github.com/jonathan/franchise-advisor/internal/matching"
	"github.com/jonathan/franchise-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the investor profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	name := profile.Name
	if name == "" {
		name = "(not given)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))

	if profile.HasInterests() {
		keywords := strings.Join(profile.Interests, ", ")
		sb.WriteString(fmt.Sprintf("Interests: %s\n", keywords))
	} else {
		sb.WriteString("Interests: (unset)\n")
	}

	if profile.HasCapital() {
		sb.WriteString(fmt.Sprintf("Capital:  %s\n", dataset.FormatMoney(fmt.Sprintf("%d", profile.Capital))))
	} else {
		sb.WriteString("Capital:  (unset)\n")
	}

	if profile.HasHours() {
		sb.WriteString(fmt.Sprintf("Hours:    %s\n", profile.Hours))
	} else {
		sb.WriteString("Hours:    (unset)\n")
	}

	if profile.HasSize() {
		sb.WriteString(fmt.Sprintf("Size:     %s", profile.Size))
	} else {
		sb.WriteString("Size:     (unset)")
	}

	p.printBox("INVESTOR PROFILE", sb.String())
}

// PrintFilterTrace outputs how each filter clause narrowed the candidate set.
func (p *Printer) PrintFilterTrace(traces []matching.Trace, total int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dataset rows: %d\n", total))

	if len(traces) == 0 {
		sb.WriteString("No active clauses; every row survives")
	}
	for i, tr := range traces {
		sb.WriteString(fmt.Sprintf("%-10s → %d remaining", tr.Clause, tr.Survivors))
		if i < len(traces)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FILTER TRACE", sb.String())
}

// PrintMatches outputs the franchises that survived filtering.
func (p *Printer) PrintMatches(matches []types.Listing) {
	if len(matches) == 0 {
		p.printBox("MATCHES", "No franchises matched the profile")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d matching franchises:\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, m.FranchiseName))
		if m.Industry != "" {
			sb.WriteString(fmt.Sprintf("    Industry: %s\n", m.Industry))
		}
		sb.WriteString(fmt.Sprintf("    Cash: %s  Units: %s\n",
			dataset.FormatMoney(m.CashRequired), m.UnitsOpen))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(matches)-maxItemsToShow))
	}

	p.printBox("MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGrounding outputs the result of the grounding check.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGrounding(grounded bool) {
	border := strings.Repeat("─", boxWidth-2)
	label := "✅ RESPONSE GROUNDED IN MATCHED LISTINGS"
	if !grounded {
		label = "⚠ UNGROUNDED RESPONSE; TEMPLATED FALLBACK USED"
	}
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, label)
	fmt.Fprintf(p.out, "└%s┘\n", border)
}
