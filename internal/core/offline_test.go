package core

import (
	"strings"
	"testing"
)

func TestOfflineBranches(t *testing.T) {
	s := newTestSession(nil)

	cases := []struct {
		input string
		want  string
	}{
		{"hello there", "Greetings, Commander"},
		{"what's our MISSION today?", "mission packet generated"},
		{"run a scan please", "Initiating sensor sweep"},
		{"tell me a joke", "cosmic archives"},
		{"space fact please", "Space Fact:"},
		{"full diagnostic", "Ship status:"},
		{"engineering checklist", "engineering checklist queued"},
		{"who are you?", "I am CosmoBot"},
		{"mumble mumble", "try /mission, /scan, /status, or /joke"},
	}

	for _, tc := range cases {
		reply := s.OfflineRespond(tc.input)
		if !strings.Contains(reply, tc.want) {
			t.Errorf("OfflineRespond(%q) = %q, want substring %q", tc.input, reply, tc.want)
		}
	}
}

func TestOfflineFirstMatchWins(t *testing.T) {
	s := newTestSession(nil)

	// "hi" outranks "mission" in the branch order.
	reply := s.OfflineRespond("hi, what's the mission?")
	if !strings.Contains(reply, "Greetings, Commander") {
		t.Errorf("expected greeting branch to win, got %q", reply)
	}
}

func TestOfflineChecklistHasThreeItems(t *testing.T) {
	s := newTestSession(nil)

	reply := s.OfflineRespond("checklist")
	if got := strings.Count(reply, "\n- "); got != 3 {
		t.Errorf("expected 3 checklist items, got %d in %q", got, reply)
	}
}

func TestOfflineDeterministicWithSeed(t *testing.T) {
	a := newTestSession(nil)
	b := newTestSession(nil)

	for i := 0; i < 10; i++ {
		if ra, rb := a.OfflineRespond("space fact"), b.OfflineRespond("space fact"); ra != rb {
			t.Fatalf("same seed diverged on round %d: %q vs %q", i, ra, rb)
		}
	}
}
