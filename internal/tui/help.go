package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	key  string
	desc string
}

var helpItems = []helpItem{
	{"/help", "Show the command palette"},
	{"/status", "Ship readout"},
	{"/mission", "Generate a mission packet"},
	{"/scan", "Run a sensor sweep"},
	{"/mode <name>", "standard | science | engineering | alert"},
	{"/event", "Force a ship event"},
	{"/clear", "Clear chat"},
	{"", ""},
	{"Enter", "Send message / run command"},
	{"F1", "Toggle this help"},
	{"F2", "Cycle mode"},
	{"F3", "Force a ship event"},
	{"F4", "Export captain's log"},
	{"F5", "Toggle crew log viewer"},
	{"Ctrl+G", "Toggle crew log (short-term memory)"},
	{"Ctrl+B", "Toggle console sounds"},
	{"Ctrl+X", "Clear chat"},
	{"↑ / ↓, PgUp / PgDn", "Scroll conversation"},
	{"Ctrl+C", "Quit"},
}

// RenderHelp renders the centered command palette overlay.
func RenderHelp(width, height int) string {
	var lines []string
	lines = append(lines, titleStyle.Render("⌨ Command Palette"))
	lines = append(lines, "")

	maxKeyLen := 0
	for _, item := range helpItems {
		if len(item.key) > maxKeyLen {
			maxKeyLen = len(item.key)
		}
	}

	for _, item := range helpItems {
		if item.key == "" {
			lines = append(lines, "")
			continue
		}
		key := helpKeyStyle.Render(padRight(item.key, maxKeyLen))
		desc := helpDescStyle.Render(item.desc)
		lines = append(lines, key+"  "+desc)
	}

	box := overlayStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// RenderCrewLog renders the crew log viewer overlay.
func RenderCrewLog(entries []string, enabled bool, width, height int) string {
	var lines []string
	lines = append(lines, titleStyle.Render("📓 Crew Log (short-term memory)"))
	lines = append(lines, "")

	switch {
	case !enabled:
		lines = append(lines, helpDescStyle.Render("Crew log is disabled. Ctrl+G to enable."))
	case len(entries) == 0:
		lines = append(lines, helpDescStyle.Render("Crew log is empty. It will populate after a few exchanges."))
	default:
		for _, entry := range entries {
			lines = append(lines, "- "+entry)
		}
	}

	box := overlayStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
