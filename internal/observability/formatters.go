// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/fit-analyzer/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirement outputs a human-readable summary of the extracted requirement.
func (p *Printer) PrintRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Family:     %s\n", req.RoleFamily))
	sb.WriteString(fmt.Sprintf("Years:      %.0f\n", req.RequiredYears))
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", req.SeniorityLevel))
	sb.WriteString(fmt.Sprintf("Leadership: %t\n", req.LeadershipRequired))
	if len(req.HardConstraints) > 0 {
		sb.WriteString(fmt.Sprintf("Hard:       %s", strings.Join(req.HardConstraints, ", ")))
	}

	p.printBox("JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDecision outputs the final decision with its override trail.
func (p *Printer) PrintDecision(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:          %d\n", result.Decision.Score))
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", result.Decision.Recommendation))
	sb.WriteString(fmt.Sprintf("Adjusted years: %.1f\n", result.Assessment.CredibilityAdjustedYears))
	if result.Decision.OverrideApplied {
		sb.WriteString(fmt.Sprintf("Override:       %s\n", result.Decision.OverrideReason))
	}

	count := min(len(result.Gaps), maxItemsToShow)
	if count > 0 {
		sb.WriteString("\nGaps:\n")
		for i := 0; i < count; i++ {
			g := result.Gaps[i]
			sb.WriteString(fmt.Sprintf("  • [%s/%s] %s\n", g.GapType, g.Severity, g.Dimension))
		}
		if len(result.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Gaps)-maxItemsToShow))
		}
	}

	p.printBox("FIT DECISION", strings.TrimSuffix(sb.String(), "\n"))
}
