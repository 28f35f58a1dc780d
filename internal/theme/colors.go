package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Record colors, keyed to diagnostic levels
const (
	ColorError   Color = "196" // Bright red
	ColorMuted   Color = "241" // Gray - source tag
	ColorSignal  Color = "205" // Pink - bits, server disconnect notice
	ColorWarning Color = "214" // Orange
)
