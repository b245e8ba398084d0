package core

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cosmobot/internal/constants"
	"cosmobot/internal/provider"
)

// Session owns all mutable state for one console session: ship telemetry,
// settings, history, crew log, and the event log. It is not safe for
// concurrent use; the host serializes user actions.
type Session struct {
	id     string
	world  WorldState
	config SessionConfig

	history   *Ring[HistoryEntry]
	crewLog   *Ring[string]
	events    *Ring[string]
	lastEvent string

	provider provider.Provider // nil when no completion provider is configured
	bus      *Bus

	rng *rand.Rand
	now func() time.Time
	log zerolog.Logger
}

// NewSession creates a session with fixed defaults. p may be nil, in which
// case the offline responder handles every freeform message. bus may be nil.
func NewSession(p provider.Provider, bus *Bus) *Session {
	id := uuid.NewString()
	return &Session{
		id:       id,
		world:    DefaultWorldState(),
		config:   DefaultSessionConfig(),
		history:  NewRing[HistoryEntry](constants.MaxHistoryEntries),
		crewLog:  NewRing[string](constants.MaxCrewLogEntries),
		events:   NewRing[string](constants.MaxShipEvents),
		provider: p,
		bus:      bus,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		log:      log.With().Str("session", id).Logger(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// History returns a copy of the conversation history, oldest first.
func (s *Session) History() []HistoryEntry {
	return s.history.Items()
}

// CrewLog returns a copy of the crew log lines, oldest first.
func (s *Session) CrewLog() []string {
	return s.crewLog.Items()
}

// Events returns a copy of the ship event log lines, oldest first.
func (s *Session) Events() []string {
	return s.events.Items()
}

// LastEvent returns the most recent event narrative, or "".
func (s *Session) LastEvent() string {
	return s.lastEvent
}

// Submit processes one user turn: records the message, rolls for a ship
// event, and produces the reply. The event narrative, when one fires, lands
// in history as an assistant entry ahead of the reply, matching the order
// they are shown.
func (s *Session) Submit(ctx context.Context, text string) TurnResult {
	s.pushHistory(RoleUser, text)

	event := s.MaybeTriggerEvent(false)
	if event != "" {
		s.pushHistory(RoleAssistant, event)
	}

	reply := s.Reply(ctx, text)
	s.pushHistory(RoleAssistant, reply)
	s.pushCrewLog(text, reply)

	return TurnResult{Event: event, Reply: reply}
}

// Reply produces the assistant response for raw user input. Slash commands
// are delegated to the interpreter with no context assembly, no external
// call, and no mode framing. Freeform input goes to the completion provider
// when available, with the offline responder as a total fallback.
func (s *Session) Reply(ctx context.Context, userText string) string {
	if strings.HasPrefix(strings.TrimSpace(userText), "/") {
		return s.Execute(userText)
	}

	if reply, ok := s.tryProvider(ctx, userText); ok {
		return reply
	}

	return s.config.Mode.Banner() + s.OfflineRespond(userText)
}

// tryProvider attempts the completion provider. Every failure mode (no
// provider, transport error, empty completion) collapses to unavailable.
func (s *Session) tryProvider(ctx context.Context, userText string) (string, bool) {
	if s.provider == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ProviderTimeout)
	defer cancel()

	reply, err := s.provider.Chat(ctx, s.buildContext(userText))
	if err != nil {
		s.log.Debug().Err(err).Str("provider", s.provider.Name()).Msg("completion unavailable, falling back offline")
		return "", false
	}
	if strings.TrimSpace(reply) == "" {
		s.log.Debug().Str("provider", s.provider.Name()).Msg("empty completion, falling back offline")
		return "", false
	}
	return reply, true
}

// buildContext assembles the role-tagged message list for the provider:
// system persona + ship context, then recent history, then the new message.
func (s *Session) buildContext(userText string) []provider.Message {
	messages := []provider.Message{{Role: "system", Content: s.systemPrompt()}}

	for _, entry := range s.history.Tail(constants.ContextHistoryEntries) {
		messages = append(messages, provider.Message{
			Role:    string(entry.Role),
			Content: entry.Content,
		})
	}

	messages = append(messages, provider.Message{Role: "user", Content: userText})
	return messages
}

func (s *Session) systemPrompt() string {
	var b strings.Builder
	b.WriteString(constants.SystemPrompt)

	fmt.Fprintf(&b, "\n\nCurrent ship context:\n- Alert level: %s\n- Sector: %s\n- Fuel: %d%%\n- Comms: %s\n",
		s.world.Alert, s.world.Sector, s.world.Fuel, s.world.Comms)
	fmt.Fprintf(&b, "\nMode directive: %s — %s\n", s.config.Mode, s.config.Mode.Directive())

	if s.lastEvent != "" {
		fmt.Fprintf(&b, "\nRecent ship event:\n- %s\n", s.lastEvent)
	}

	if s.config.CrewLogEnabled && s.crewLog.Len() > 0 {
		b.WriteString("\nCrew Log (short-term memory):\n")
		for _, line := range s.crewLog.Tail(constants.ContextCrewLogLines) {
			b.WriteString("- " + line + "\n")
		}
	}

	return b.String()
}

// Clear empties the conversation history and the last-event marker.
func (s *Session) Clear() {
	s.history.Clear()
	s.lastEvent = ""
	if s.bus != nil {
		s.bus.Publish(Event{Type: EventChatCleared, Timestamp: s.now()})
	}
}

// ClearCrewLog empties the crew log.
func (s *Session) ClearCrewLog() {
	s.crewLog.Clear()
}

func (s *Session) pushHistory(role Role, content string) {
	s.history.Append(HistoryEntry{Role: role, Content: content, Timestamp: s.now()})
}

// pushCrewLog appends the user/assistant pair for one exchange, each line
// clipped for the rolling summary. No-op while the crew log is disabled.
func (s *Session) pushCrewLog(userText, botText string) {
	if !s.config.CrewLogEnabled {
		return
	}
	short := s.now().Format(constants.ShortTimestampFormat)
	s.crewLog.Append(fmt.Sprintf("[%s] Commander: %s", short, clip(userText, constants.CrewLogClipLen)))
	s.crewLog.Append(fmt.Sprintf("[%s] CosmoBot: %s", short, clip(botText, constants.CrewLogClipLen)))
}

// clip flattens and truncates a string to n runes, marking truncation with
// an ellipsis.
func clip(s string, n int) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
