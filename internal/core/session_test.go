package core

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"cosmobot/internal/provider"
)

// newTestSession returns a session with a seeded RNG and a fixed clock.
func newTestSession(p provider.Provider) *Session {
	s := NewSession(p, nil)
	s.rng = rand.New(rand.NewSource(42))
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	return s
}

func TestFallbackTotality(t *testing.T) {
	mock := provider.NewMock("mock", "").WithChatError(errors.New("network down"))
	s := newTestSession(mock)
	s.SetMode(ModeAlert)

	reply := s.Reply(context.Background(), "hello")

	if !strings.HasPrefix(reply, "🚨 ALERT MODE ACTIVE\n") {
		t.Errorf("expected alert banner prefix, got %q", reply)
	}
	if !strings.Contains(reply, "Greetings, Commander") {
		t.Errorf("expected offline greeting branch, got %q", reply)
	}
}

func TestProviderReplyReturnedVerbatim(t *testing.T) {
	mock := provider.NewMock("mock", "Course plotted, Commander.")
	s := newTestSession(mock)
	s.SetMode(ModeAlert)

	reply := s.Reply(context.Background(), "plot a course")

	// External completions are never framed by the mode banner.
	if reply != "Course plotted, Commander." {
		t.Errorf("expected verbatim completion, got %q", reply)
	}
}

func TestEmptyCompletionFallsBack(t *testing.T) {
	mock := provider.NewMock("mock", "   ")
	s := newTestSession(mock)

	reply := s.Reply(context.Background(), "hello")

	if !strings.Contains(reply, "Greetings, Commander") {
		t.Errorf("expected offline fallback for empty completion, got %q", reply)
	}
}

func TestCommandsBypassProvider(t *testing.T) {
	mock := provider.NewMock("mock", "should not be used")
	s := newTestSession(mock)

	reply := s.Reply(context.Background(), "/status")

	if len(mock.Calls) != 0 {
		t.Errorf("expected no provider calls for a command, got %d", len(mock.Calls))
	}
	if !strings.Contains(reply, "Ship Status") {
		t.Errorf("expected status readout, got %q", reply)
	}
}

func TestContextAssembly(t *testing.T) {
	mock := provider.NewMock("mock", "Acknowledged.")
	s := newTestSession(mock)
	s.SetMode(ModeScience)

	// Seed some history, a crew log line, and a last event.
	for i := 0; i < 25; i++ {
		s.pushHistory(RoleUser, "ping")
		s.pushHistory(RoleAssistant, "pong")
	}
	s.pushCrewLog("what is a pulsar", "A lighthouse of the cosmos, Commander.")
	s.addEvent("Ion disturbance; nav filters retuned.")

	s.Reply(context.Background(), "tell me more")

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	messages := mock.Calls[0]

	if messages[0].Role != "system" {
		t.Fatalf("expected system message first, got role %q", messages[0].Role)
	}
	sys := messages[0].Content
	for _, want := range []string{
		"You are COSMOBOT",
		"Alert level: GREEN",
		"Sector: Orion Drift",
		"Fuel: 92%",
		"Comms: ONLINE",
		"Mode directive: Science",
		"Ion disturbance; nav filters retuned.",
		"Crew Log (short-term memory):",
		"what is a pulsar",
	} {
		if !strings.Contains(sys, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}

	// 1 system + 18 recent history + the new user message.
	if len(messages) != 20 {
		t.Errorf("expected 20 context messages, got %d", len(messages))
	}
	last := messages[len(messages)-1]
	if last.Role != "user" || last.Content != "tell me more" {
		t.Errorf("expected trailing user message, got %+v", last)
	}
}

func TestCrewLogDisabledExcludedFromContext(t *testing.T) {
	mock := provider.NewMock("mock", "ok")
	s := newTestSession(mock)
	s.pushCrewLog("hello", "Greetings")
	s.SetCrewLogEnabled(false)

	s.Reply(context.Background(), "anything")

	sys := mock.Calls[0][0].Content
	if strings.Contains(sys, "Crew Log (short-term memory):") {
		t.Error("crew log should be excluded from context when disabled")
	}
}

func TestSubmitRecordsExchange(t *testing.T) {
	s := newTestSession(nil)
	s.SetEventRate(0)

	result := s.Submit(context.Background(), "hello there")

	if result.Event != "" {
		t.Errorf("expected no event at rate 0, got %q", result.Event)
	}
	history := s.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].Role != RoleUser || history[0].Content != "hello there" {
		t.Errorf("unexpected user entry: %+v", history[0])
	}
	if history[1].Role != RoleAssistant || history[1].Content != result.Reply {
		t.Errorf("unexpected assistant entry: %+v", history[1])
	}

	crew := s.CrewLog()
	if len(crew) != 2 {
		t.Fatalf("expected crew log pair, got %d entries", len(crew))
	}
	if !strings.Contains(crew[0], "Commander: hello there") {
		t.Errorf("unexpected crew log line: %q", crew[0])
	}
	if !strings.Contains(crew[1], "CosmoBot: ") {
		t.Errorf("unexpected crew log line: %q", crew[1])
	}
}

func TestSubmitSkipsCrewLogWhenDisabled(t *testing.T) {
	s := newTestSession(nil)
	s.SetEventRate(0)
	s.SetCrewLogEnabled(false)

	s.Submit(context.Background(), "hello")

	if n := len(s.CrewLog()); n != 0 {
		t.Errorf("expected empty crew log, got %d entries", n)
	}
}

func TestHistoryCap(t *testing.T) {
	s := newTestSession(nil)

	for i := 0; i < 130; i++ {
		s.pushHistory(RoleUser, "x"+strconv.Itoa(i))
	}

	history := s.History()
	if len(history) != 120 {
		t.Fatalf("expected history capped at 120, got %d", len(history))
	}
	// Oldest dropped first: entry 0 holds what was appended at i=10.
	if history[0].Content != "x10" {
		t.Errorf("expected oldest surviving entry x10, got %q", history[0].Content)
	}
	if history[119].Content != "x129" {
		t.Errorf("expected newest entry x129, got %q", history[119].Content)
	}
}

func TestCrewLogCap(t *testing.T) {
	s := newTestSession(nil)

	for i := 0; i < 20; i++ {
		s.pushCrewLog("q", "a")
	}

	if n := len(s.CrewLog()); n != 30 {
		t.Errorf("expected crew log capped at 30, got %d", n)
	}
}

func TestEventLogCap(t *testing.T) {
	s := newTestSession(nil)

	for i := 0; i < 45; i++ {
		s.addEvent("event " + strconv.Itoa(i))
	}

	events := s.Events()
	if len(events) != 40 {
		t.Fatalf("expected events capped at 40, got %d", len(events))
	}
	if !strings.HasSuffix(events[0], "event 5") {
		t.Errorf("expected oldest surviving event 5, got %q", events[0])
	}
	if s.LastEvent() != "event 44" {
		t.Errorf("expected lastEvent to track newest, got %q", s.LastEvent())
	}
}

func TestClearEmptiesHistoryAndLastEvent(t *testing.T) {
	s := newTestSession(nil)
	s.pushHistory(RoleUser, "hi")
	s.addEvent("something happened")

	s.Clear()

	if len(s.History()) != 0 {
		t.Error("expected empty history after Clear")
	}
	if s.LastEvent() != "" {
		t.Error("expected empty lastEvent after Clear")
	}
	// Events log survives; only the marker resets.
	if len(s.Events()) != 1 {
		t.Error("expected event log untouched by Clear")
	}

	// Idempotent.
	s.Clear()
	if len(s.History()) != 0 || s.LastEvent() != "" {
		t.Error("Clear is not idempotent")
	}
}

func TestClearCrewLog(t *testing.T) {
	s := newTestSession(nil)
	s.pushCrewLog("hello", "Greetings")

	s.ClearCrewLog()

	if n := len(s.CrewLog()); n != 0 {
		t.Errorf("expected empty crew log, got %d entries", n)
	}
}

func TestClip(t *testing.T) {
	if got := clip("  short\ntext  ", 90); got != "short text" {
		t.Errorf("clip flattening failed: %q", got)
	}

	long := strings.Repeat("é", 100)
	got := clip(long, 90)
	if runes := []rune(got); len(runes) != 91 || runes[90] != '…' {
		t.Errorf("expected 90 runes plus ellipsis, got %d runes", len([]rune(got)))
	}
}
