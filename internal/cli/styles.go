// Package cli provides the command-line interface for decomment.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/seanhalberthal/decomment/internal/types"
)

// Colour palette for outcomes and UI elements.
//
//nolint:misspell // lipgloss uses American spelling (Color) for its API
var (
	// Outcome colours
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))             // Green
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))            // Yellow
	erroredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red

	// Status colours
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))             // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red

	// UI elements
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // Grey
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")) // White
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Dark grey
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))  // Cyan
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141")) // Purple
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Symbols for output.
const (
	checkMark = "✓"
	crossMark = "✗"
	bullet    = "•"
	arrow     = "→"
)

// outcomeStyle returns the appropriate style for a file outcome.
func outcomeStyle(outcome types.Outcome) lipgloss.Style {
	switch outcome {
	case types.OutcomeModified:
		return modifiedStyle
	case types.OutcomeSkipped:
		return skippedStyle
	case types.OutcomeErrored:
		return erroredStyle
	default:
		return mutedStyle
	}
}

// formatOutcome returns a styled outcome glyph.
func formatOutcome(outcome types.Outcome) string {
	switch outcome {
	case types.OutcomeModified:
		return outcomeStyle(outcome).Render(checkMark)
	case types.OutcomeErrored:
		return outcomeStyle(outcome).Render(crossMark)
	default:
		return outcomeStyle(outcome).Render(bullet)
	}
}

// formatPath returns a styled file path.
func formatPath(path string) string {
	return pathStyle.Render(path)
}

// formatCount returns a styled count value.
func formatCount(n int) string {
	return countStyle.Render(fmt.Sprintf("%d", n))
}

// formatSuccess returns a styled success message.
func formatSuccess(msg string) string {
	return successStyle.Render(checkMark+" ") + msg
}

// formatError returns a styled error message.
func formatError(msg string) string {
	return errorStyle.Render(crossMark+" ") + msg
}

// formatLabel returns a styled label (for key-value pairs).
func formatLabel(label string) string {
	return labelStyle.Render(label + ":")
}

// formatValue returns styled value text.
func formatValue(text string) string {
	return valueStyle.Render(text)
}

// formatHeader returns a styled header.
func formatHeader(text string) string {
	return headerStyle.Render(text)
}

// formatSection returns a styled section header.
func formatSection(text string) string {
	return sectionStyle.Render(text)
}

// formatDivider returns a styled divider line.
func formatDivider(width int) string {
	line := ""
	for i := 0; i < width; i++ {
		line += "─"
	}
	return dividerStyle.Render(line)
}

// formatMuted returns muted/dimmed text.
func formatMuted(text string) string {
	return mutedStyle.Render(text)
}

// printStyledError prints a styled error to stderr.
func printStyledError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(os.Stderr, formatError(msg))
}

// formatBytes returns a human-readable byte count.
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
