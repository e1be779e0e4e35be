// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-matcher/internal/recommend"
	"github.com/jonathan/talent-matcher/internal/types"
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

// PrintMatchResults outputs the top ranked entries with scores and their
// leading explanation line.
func (p *Printer) PrintMatchResults(resp *types.MatchResponse) {
	if resp == nil || len(resp.Results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entries ranked: %d\n\n", len(resp.Results)))

	count := min(len(resp.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := resp.Results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, result.Title, result.EntryID))
		sb.WriteString(fmt.Sprintf("    Score: %.3f\n", result.Score))
		if len(result.Explanation) > 0 {
			line := result.Explanation[0]
			if len(line) > 48 {
				line = line[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", line))
		}
		if missing := result.Breakdown.Skills.MissingMustHaves; len(missing) > 0 {
			skills := strings.Join(missing, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(resp.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(resp.Results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", sb.String())
	p.PrintDiagnostics(resp.Diagnostics)
}

// PrintBasicResults outputs the legacy-pipeline ranking.
func (p *Printer) PrintBasicResults(resp *types.BasicMatchResponse) {
	if resp == nil || len(resp.Results) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(resp.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := resp.Results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, result.Title, result.EntryID))
		sb.WriteString(fmt.Sprintf("    Score: %.3f  Similarity: %.3f\n", result.Score, result.Similarity))
		if len(result.MatchedSkills) > 0 {
			skills := strings.Join(result.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(resp.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(resp.Results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES (BASIC)", sb.String())
	p.PrintDiagnostics(resp.Diagnostics)
}

// PrintDiagnostics outputs skipped-entry and unknown-skill observations.
// Nothing is printed when the diagnostics are empty.
func (p *Printer) PrintDiagnostics(diag types.Diagnostics) {
	if diag.SkippedEntries == 0 && diag.UnknownSkills == 0 {
		return
	}

	var sb strings.Builder
	if diag.UnknownSkills > 0 {
		sb.WriteString(fmt.Sprintf("Unknown skill terms: %d\n", diag.UnknownSkills))
	}
	if diag.SkippedEntries > 0 {
		sb.WriteString(fmt.Sprintf("Skipped entries: %d\n", diag.SkippedEntries))
		count := min(len(diag.SkippedNotes), maxItemsToShow)
		for i := 0; i < count; i++ {
			note := diag.SkippedNotes[i]
			if len(note) > 50 {
				note = note[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", note))
		}
	}

	p.printBox("DIAGNOSTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUpskillPlan outputs the skill plans with their items and estimates.
func (p *Printer) PrintUpskillPlan(plan *recommend.Plan) {
	if plan == nil || len(plan.Skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target role: %s\n\n", plan.TargetRole))

	for i, sp := range plan.Skills {
		sb.WriteString(fmt.Sprintf("%s (~%d weeks)\n", sp.Skill, sp.ETAWeeks))
		for _, item := range sp.Items {
			label := item.Label
			if len(label) > 44 {
				label = label[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s (%dh)\n", label, item.Hours))
		}
		if i < len(plan.Skills)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("UPSKILLING PLAN", strings.TrimSuffix(sb.String(), "\n"))
}
