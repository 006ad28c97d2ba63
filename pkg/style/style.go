// Package style defines the visual styling for iconshift's terminal
// output. Colors adapt to light and dark terminal themes and are
// disabled automatically when output is not a TTY.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var (
	// ErrorStyle renders fatal error lines
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#C00000", Dark: "#FF5555"})

	// WarnStyle renders validation warnings
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#F1C232"})

	// SuccessStyle renders completion lines
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#57D993"})

	// SubtleStyle renders secondary detail
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"})
)

// ShouldColor reports whether styled output makes sense for stdout
func ShouldColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Init disables color output globally when stdout cannot render it
func Init() {
	if !ShouldColor() {
		pterm.DisableColor()
	}
}

// Printer helpers keep command output consistent.

// Success prints a completion line
func Success(msg string) {
	pterm.Success.Println(msg)
}

// Warning prints a non-fatal finding
func Warning(msg string) {
	pterm.Warning.Println(msg)
}

// Error prints a failure line
func Error(msg string) {
	pterm.Error.Println(msg)
}

// Info prints a progress line
func Info(msg string) {
	pterm.Info.Println(msg)
}
