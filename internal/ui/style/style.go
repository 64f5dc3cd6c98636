// Package style provides shared colors, icons and lipgloss styles for golock output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Table styles.
var (
	Header = lipgloss.NewStyle().Bold(true).Foreground(Iris).Padding(0, 1)
	Cell   = lipgloss.NewStyle().Padding(0, 1)
	Muted  = lipgloss.NewStyle().Foreground(Slate).Padding(0, 1)
	Border = lipgloss.NewStyle().Foreground(Slate)
)
