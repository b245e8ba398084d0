package tui

import "github.com/charmbracelet/lipgloss"

// Colors - gold/cyan console aesthetic lifted from the HANNAH brand.
var (
	colorGold    = lipgloss.Color("#D4AF37") // Brand gold
	colorGoldHi  = lipgloss.Color("#F6E27A") // Bright gold for the title
	colorCyan    = lipgloss.Color("#56E0FF") // Console cyan
	colorGood    = lipgloss.Color("#34D399") // Nominal green
	colorWarn    = lipgloss.Color("#FBBF24") // Caution amber
	colorBad     = lipgloss.Color("#FB7185") // Alert red
	colorMuted   = lipgloss.Color("#8A99B5") // Muted slate
	colorBorder  = lipgloss.Color("#2A3A55") // Panel border
	colorBg      = lipgloss.Color("#050A14") // Deep space black
	colorBgPanel = lipgloss.Color("#0A1426") // Panel background
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGoldHi)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Status badges across the top of the console
	badgeStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	badgeValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	lightGoodStyle = lipgloss.NewStyle().Foreground(colorGood)
	lightWarnStyle = lipgloss.NewStyle().Foreground(colorWarn)
	lightBadStyle  = lipgloss.NewStyle().Foreground(colorBad)
	lightCyanStyle = lipgloss.NewStyle().Foreground(colorCyan)

	// Conversation
	chatStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	commanderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGood)

	cosmobotStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold)

	eventCardStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// Input
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Padding(0, 1)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(colorGold)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statusLineStyle = lipgloss.NewStyle().
			Foreground(colorGood)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorBad)

	// Overlays (help, crew log)
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorGold).
			Background(colorBgPanel).
			Padding(1, 2)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
