package cli

import "github.com/charmbracelet/lipgloss"

// Colors used for diagnostics on stderr.
var (
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

var (
	warningLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorMuted)
)

// formatWarning renders a "Warning: msg" line.
func formatWarning(msg string) string {
	return warningLabelStyle.Render("Warning:") + " " + msg
}

// formatNotFound renders a path annotation for missing config files.
func formatNotFound(path string) string {
	return path + " " + mutedStyle.Render("(not found)")
}
