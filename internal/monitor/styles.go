package monitor

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette
const (
	// Background colors
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for controller state
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink
	ColorValue  = lipgloss.Color("#00FFFF") // Neon cyan
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelSelectedStyle = PanelStyle.
				BorderForeground(ColorAccent)

	ControllerNameStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorValue)

	UnitStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	NoDataStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StatusOnlineStyle = lipgloss.NewStyle().
				Foreground(ColorHealthy)

	StatusConnectingStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	StatusUnreachableStyle = lipgloss.NewStyle().
				Foreground(ColorCritical)
)

// Status indicator characters
const (
	GlyphOnline      = "◉" // Filled target: last cycle answered
	GlyphConnecting  = "◐" // Half-filled: no cycle has completed yet
	GlyphUnreachable = "◌" // Dashed circle: last cycle had nothing
)

// StatusGlyph returns the styled indicator for a controller status.
func StatusGlyph(status Status) string {
	switch status {
	case StatusOnline:
		return StatusOnlineStyle.Render(GlyphOnline)
	case StatusConnecting:
		return StatusConnectingStyle.Render(GlyphConnecting)
	default:
		return StatusUnreachableStyle.Render(GlyphUnreachable)
	}
}
