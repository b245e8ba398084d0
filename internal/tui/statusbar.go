package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cosmobot/internal/core"
)

// RenderStatusBar renders the ship readout badges and status lights.
func RenderStatusBar(world core.WorldState, config core.SessionConfig) string {
	badges := []string{
		badge("MODE", string(config.Mode)),
		badge("ALERT", string(world.Alert)),
		badge("SECTOR", world.Sector),
		badge("FUEL", fmt.Sprintf("%d%%", world.Fuel)),
		badge("COMMS", string(world.Comms)),
	}

	lights := strings.Join([]string{
		alertLight(world.Alert).Render("●") + badgeStyle.Render("ALERT"),
		fuelLight(world.Fuel).Render("●") + badgeStyle.Render("FUEL"),
		commsLight(world.Comms).Render("●") + badgeStyle.Render("COMMS"),
	}, " ")

	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(badges, " "), "  ", lights)
}

func badge(label, value string) string {
	return badgeStyle.Render(label+":") + badgeValueStyle.Render(value)
}

func alertLight(alert core.AlertLevel) lipgloss.Style {
	switch alert {
	case core.AlertGreen:
		return lightGoodStyle
	case core.AlertAmber:
		return lightWarnStyle
	default:
		return lightBadStyle
	}
}

func fuelLight(fuel int) lipgloss.Style {
	switch {
	case fuel >= 60:
		return lightGoodStyle
	case fuel >= 25:
		return lightWarnStyle
	default:
		return lightBadStyle
	}
}

func commsLight(comms core.CommsState) lipgloss.Style {
	switch comms {
	case core.CommsOnline:
		return lightCyanStyle
	case core.CommsDegraded:
		return lightWarnStyle
	default:
		return lightBadStyle
	}
}
