package core

import (
	"fmt"

	"cosmobot/internal/constants"
)

type eventKind int

const (
	eventSolarFlare eventKind = iota
	eventDebrisField
	eventCommsDrop
	eventMicrometeoroids
	eventIonDisturbance
	eventKindCount
)

// MaybeTriggerEvent rolls for a random ship event and applies its state
// transition. Returns the narrative message, or "" when no event fired.
func (s *Session) MaybeTriggerEvent(force bool) string {
	if !force && s.rng.Float64() > s.config.EventRate {
		return ""
	}
	return s.applyEvent(eventKind(s.rng.Intn(int(eventKindCount))))
}

// applyEvent runs one event's state-transition policy and returns its
// narrative. Transitions only worsen or hold; no event reduces alert
// severity.
func (s *Session) applyEvent(kind eventKind) string {
	var msg string
	switch kind {
	case eventSolarFlare:
		if s.world.Alert == AlertGreen {
			s.world.Alert = AlertAmber
		}
		if s.world.Comms == CommsOnline {
			s.world.Comms = CommsDegraded
		}
		s.world.Fuel = clampFuel(s.world.Fuel - s.rng.Intn(3))
		msg = "🌞 Solar flare detected. Radiation levels elevated. Switching sensors to hardened mode; comms may degrade."
		s.addEvent("Solar flare detected; comms degraded; alert AMBER.")

	case eventDebrisField:
		if s.world.Alert == AlertGreen {
			s.world.Alert = AlertAmber
		}
		s.world.Fuel = clampFuel(s.world.Fuel - (1 + s.rng.Intn(4)))
		msg = "🛰️ Debris field ahead. Running evasive nav burn and tightening collision envelope."
		s.addEvent("Debris field encountered; evasive burn executed.")

	case eventCommsDrop:
		// Toggle rather than latch: OFFLINE unless already OFFLINE, then
		// DEGRADED, so comms never get stuck dark forever.
		if s.world.Comms != CommsOffline {
			s.world.Comms = CommsOffline
		} else {
			s.world.Comms = CommsDegraded
		}
		if s.world.Alert == AlertGreen {
			s.world.Alert = AlertAmber
		}
		msg = "📡 Comms anomaly. Signal lock lost. Attempting reacquisition via backup antenna array."
		s.addEvent(fmt.Sprintf("Comms anomaly: %s.", s.world.Comms))

	case eventMicrometeoroids:
		if s.rng.Float64() < 0.25 {
			s.world.Alert = AlertRed
		} else if s.world.Alert == AlertGreen {
			s.world.Alert = AlertAmber
		}
		s.world.Fuel = clampFuel(s.world.Fuel - s.rng.Intn(4))
		msg = "☄️ Micro-meteoroid ping on outer hull. Sealing microfractures; running structural integrity scan."
		s.addEvent(fmt.Sprintf("Micro-meteoroid impact; alert now %s.", s.world.Alert))

	case eventIonDisturbance:
		if s.world.Comms == CommsOnline {
			s.world.Comms = CommsDegraded
		}
		msg = "🧲 Ion disturbance in local space-time. Navigation filters retuned; expect minor sensor jitter."
		s.addEvent("Ion disturbance; nav filters retuned.")
	}

	s.log.Info().Str("alert", string(s.world.Alert)).Str("comms", string(s.world.Comms)).Int("fuel", s.world.Fuel).Msg("ship event fired")
	return msg
}

// addEvent appends a timestamped line to the event log and tracks the
// message as the most recent event for context assembly.
func (s *Session) addEvent(text string) {
	s.events.Append(fmt.Sprintf("[%s] %s", s.now().Format(constants.TimestampFormat), text))
	s.lastEvent = text
	if s.bus != nil {
		s.bus.Publish(Event{Type: EventShipEvent, Message: text, Timestamp: s.now()})
	}
}
