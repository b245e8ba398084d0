// Package core implements the session state machine: ship telemetry, the
// event generator, the command interpreter, the offline responder, and the
// reply orchestrator that ties them together.
package core

import (
	"strings"
	"time"
)

// AlertLevel is the ship-wide alert state.
type AlertLevel string

const (
	AlertGreen AlertLevel = "GREEN"
	AlertAmber AlertLevel = "AMBER"
	AlertRed   AlertLevel = "RED"
)

// CommsState is the communications array state.
type CommsState string

const (
	CommsOnline   CommsState = "ONLINE"
	CommsDegraded CommsState = "DEGRADED"
	CommsOffline  CommsState = "OFFLINE"
)

// Mode is the active response-framing directive.
type Mode string

const (
	ModeStandard    Mode = "Standard"
	ModeScience     Mode = "Science"
	ModeEngineering Mode = "Engineering"
	ModeAlert       Mode = "Alert"
)

// Modes lists all modes in palette order.
var Modes = []Mode{ModeStandard, ModeScience, ModeEngineering, ModeAlert}

// ParseMode matches a mode name case-insensitively.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return ModeStandard, true
	case "science":
		return ModeScience, true
	case "engineering":
		return ModeEngineering, true
	case "alert":
		return ModeAlert, true
	default:
		return "", false
	}
}

// Directive returns the mode's prompt directive for the LLM context.
func (m Mode) Directive() string {
	switch m {
	case ModeScience:
		return "Prioritize accurate science explanations; keep spaceship framing."
	case ModeEngineering:
		return "Answer like a ship systems engineer; include checklists and diagnostics style."
	case ModeAlert:
		return "Urgent, concise, ship-safety framing. Keep it fun but serious."
	default:
		return "Be generally helpful and playful."
	}
}

// Banner returns the prefix applied to offline replies in this mode.
// Standard mode has none. External completions are never framed.
func (m Mode) Banner() string {
	switch m {
	case ModeAlert:
		return "🚨 ALERT MODE ACTIVE\n"
	case ModeEngineering:
		return "🛠️ ENGINEERING CONSOLE\n"
	case ModeScience:
		return "🌌 SCIENCE ARRAY ONLINE\n"
	default:
		return ""
	}
}

// Role identifies the author of a history entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// HistoryEntry is one exchanged message.
type HistoryEntry struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// TurnResult is what one submitted user turn produced.
type TurnResult struct {
	Event string // narrative event message, empty if none fired
	Reply string
}

// EventType identifies a session bus event.
type EventType string

const (
	EventShipEvent    EventType = "ship_event"
	EventStateChanged EventType = "state_changed"
	EventChatCleared  EventType = "chat_cleared"
)

// Event is a session happening published to the bus.
type Event struct {
	Type      EventType
	Message   string
	Timestamp time.Time
}
