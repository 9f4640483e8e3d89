// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
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

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills found: %d\n", len(profile.Skills)))
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := profile.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.1f, confidence %.2f)\n",
				skill.Name, skill.ProficiencyScore, skill.Confidence))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experience), 3)
		for i := 0; i < count; i++ {
			entry := profile.Experience[i]
			line := fmt.Sprintf("  • %s @ %s", entry.Position, entry.Company)
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(line + "\n")
		}
		if len(profile.Experience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-3))
		}
		sb.WriteString("\n")
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, entry := range profile.Education {
			line := fmt.Sprintf("  • %s in %s, %s", entry.Degree, entry.Field, entry.Institution)
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(line + "\n")
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("Nothing extracted")
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPredictions outputs the top role predictions with their skill
// breakdowns.
func (p *Printer) PrintPredictions(predictions []types.RolePrediction) {
	if len(predictions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO ROLES SCORED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Roles scored: %d\n\n", len(predictions)))

	count := min(len(predictions), maxItemsToShow)
	for i := 0; i < count; i++ {
		pred := predictions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, pred.Role))
		sb.WriteString(fmt.Sprintf("    Score: %.1f%%\n", pred.Percentage))
		if len(pred.Matched) > 0 {
			skills := joinMatchNames(pred.Matched)
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", skills))
		}
		if len(pred.Missing) > 0 {
			skills := joinMatchNames(pred.Missing)
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(predictions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more roles", len(predictions)-maxItemsToShow))
	}

	p.printBox("ROLE PREDICTIONS", sb.String())
}

func joinMatchNames(matches []types.SkillMatch) string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Skill)
	}
	return strings.Join(names, ", ")
}
