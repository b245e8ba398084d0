package core

import "cosmobot/internal/constants"

// WorldState is the ship telemetry for the session. Mutated only by the
// event generator and by explicit operator overrides.
type WorldState struct {
	Alert  AlertLevel
	Sector string
	Fuel   int // always in [0,100]
	Comms  CommsState
}

// DefaultWorldState returns the fixed session defaults.
func DefaultWorldState() WorldState {
	return WorldState{
		Alert:  AlertGreen,
		Sector: "Orion Drift",
		Fuel:   92,
		Comms:  CommsOnline,
	}
}

// SessionConfig holds the operator-facing session settings.
type SessionConfig struct {
	Mode           Mode
	CrewLogEnabled bool
	EventRate      float64 // chance per message, in [0,1]
	SoundEnabled   bool
}

// DefaultSessionConfig returns the fixed session defaults.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Mode:           ModeStandard,
		CrewLogEnabled: true,
		EventRate:      constants.DefaultEventRate,
		SoundEnabled:   true,
	}
}

// World returns a read-only copy of the ship telemetry.
func (s *Session) World() WorldState {
	return s.world
}

// Config returns a read-only copy of the session settings.
func (s *Session) Config() SessionConfig {
	return s.config
}

// SetAlert is a direct operator override, bypassing event logic.
func (s *Session) SetAlert(level AlertLevel) {
	s.world.Alert = level
	s.publishStateChanged()
}

// SetComms is a direct operator override, bypassing event logic.
func (s *Session) SetComms(state CommsState) {
	s.world.Comms = state
	s.publishStateChanged()
}

// SetSector is a free-text operator override.
func (s *Session) SetSector(name string) {
	s.world.Sector = name
	s.publishStateChanged()
}

// AdjustFuel applies a delta and clamps the result to [0,100].
func (s *Session) AdjustFuel(delta int) {
	s.world.Fuel = clampFuel(s.world.Fuel + delta)
	s.publishStateChanged()
}

// SetFuel is a direct operator override, clamped to [0,100].
func (s *Session) SetFuel(fuel int) {
	s.world.Fuel = clampFuel(fuel)
	s.publishStateChanged()
}

// SetMode switches the response-framing directive.
func (s *Session) SetMode(m Mode) {
	s.config.Mode = m
	s.publishStateChanged()
}

// SetCrewLogEnabled toggles the crew log (short-term memory).
func (s *Session) SetCrewLogEnabled(on bool) {
	s.config.CrewLogEnabled = on
	s.publishStateChanged()
}

// SetSoundEnabled toggles the console beep.
func (s *Session) SetSoundEnabled(on bool) {
	s.config.SoundEnabled = on
	s.publishStateChanged()
}

// SetEventRate sets the per-message event chance, clamped to [0,1].
func (s *Session) SetEventRate(rate float64) {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	s.config.EventRate = rate
	s.publishStateChanged()
}

func clampFuel(fuel int) int {
	if fuel < 0 {
		return 0
	}
	if fuel > 100 {
		return 100
	}
	return fuel
}

func (s *Session) publishStateChanged() {
	if s.bus != nil {
		s.bus.Publish(Event{Type: EventStateChanged, Timestamp: s.now()})
	}
}
