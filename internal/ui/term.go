package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// High priority: bold red, demands attention
	colorHigh = color.New(color.FgRed, color.Bold)

	// Medium priority: yellow
	colorMedium = color.New(color.FgYellow)

	// Low priority: dim/grey
	colorLow = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Slot keys and timestamps: cyan
	colorSlot = color.New(color.FgCyan)

	// Done tasks: green
	colorDone = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// formatPriority formats a priority label in its color.
func formatPriority(s string) string {
	switch s {
	case "high":
		return colorHigh.Sprint(s)
	case "medium":
		return colorMedium.Sprint(s)
	default:
		return colorLow.Sprint(s)
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatSlot formats a slot key.
func formatSlot(s string) string {
	return colorSlot.Sprint(s)
}

// formatDone formats a done marker.
func formatDone(s string) string {
	return colorDone.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
