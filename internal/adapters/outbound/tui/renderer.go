// Package tui renders check reports for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cchk/cchk/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	ruleNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	valueStyle    = lipgloss.NewStyle().Foreground(warning)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a validation report as a styled TUI string. input
// names what was checked (a commit subject, branch name or author ident).
func RenderReport(report domain.Report, input string) string {
	var b strings.Builder

	failures := report.Failures()

	// ── Header ──
	title := headerStyle.Render("cchk")
	var verdict string
	if len(failures) == 0 {
		verdict = passStyle.Render(fmt.Sprintf("✔ %d checks passed", len(report.Results)))
	} else {
		verdict = failStyle.Render(fmt.Sprintf("✘ rejected: %d of %d checks failed", len(failures), len(report.Results)))
	}
	subtitle := dimStyle.Render(truncate(input, 58))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	if len(failures) == 0 {
		return b.String()
	}

	for _, r := range failures {
		renderFailure(&b, r)
	}

	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")
	b.WriteString("  " + hintStyle.Render("Fix the issues above and commit again."))
	b.WriteString("\n")

	return b.String()
}

func renderFailure(b *strings.Builder, r domain.Result) {
	fmt.Fprintf(b, "  %s %s\n", failStyle.Render("●"), ruleNameStyle.Render(string(r.Kind)))
	fmt.Fprintf(b, "      %s\n", dimStyle.Render(r.Message))
	if r.Value != "" {
		fmt.Fprintf(b, "      got:      %s\n", valueStyle.Render(truncate(r.Value, 50)))
	}
	if r.Expected != "" {
		fmt.Fprintf(b, "      expected: %s\n", dimStyle.Render(truncate(r.Expected, 50)))
	}
	if r.Suggestion != "" {
		fmt.Fprintf(b, "      %s\n", hintStyle.Render(r.Suggestion))
	}
	b.WriteString("\n")
}

// RenderSummary formats a report as compact plain-ish lines, one per
// result. Used with --quiet and in non-TTY contexts.
func RenderSummary(report domain.Report) string {
	var b strings.Builder
	for _, r := range report.Results {
		icon := passStyle.Render("●")
		if !r.Passed {
			icon = failStyle.Render("●")
		}
		fmt.Fprintf(&b, "  %s %s", icon, string(r.Kind))
		if !r.Passed {
			fmt.Fprintf(&b, "  %s", dimStyle.Render(r.Message))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
