package core

import (
	"strings"
	"testing"
)

func alertRank(a AlertLevel) int {
	switch a {
	case AlertGreen:
		return 0
	case AlertAmber:
		return 1
	default:
		return 2
	}
}

func TestForcedEventAlwaysFires(t *testing.T) {
	s := newTestSession(nil)
	s.SetEventRate(0)

	for i := 0; i < 50; i++ {
		if msg := s.MaybeTriggerEvent(true); msg == "" {
			t.Fatalf("forced event %d declined", i)
		}
	}
}

func TestRateZeroNeverFires(t *testing.T) {
	s := newTestSession(nil)
	s.SetEventRate(0)

	for i := 0; i < 200; i++ {
		if msg := s.MaybeTriggerEvent(false); msg != "" {
			t.Fatalf("event fired at rate 0: %q", msg)
		}
	}
}

func TestRateOneAlwaysFires(t *testing.T) {
	s := newTestSession(nil)
	s.SetEventRate(1)

	for i := 0; i < 50; i++ {
		if msg := s.MaybeTriggerEvent(false); msg == "" {
			t.Fatalf("event declined at rate 1 on roll %d", i)
		}
	}
}

func TestAlertRatchet(t *testing.T) {
	s := newTestSession(nil)

	prev := alertRank(s.World().Alert)
	for i := 0; i < 500; i++ {
		s.MaybeTriggerEvent(true)
		cur := alertRank(s.World().Alert)
		if cur < prev {
			t.Fatalf("alert severity decreased from %d to %d after event %d", prev, cur, i)
		}
		prev = cur
	}
}

func TestFuelNeverLeavesRange(t *testing.T) {
	s := newTestSession(nil)

	for i := 0; i < 500; i++ {
		s.MaybeTriggerEvent(true)
		if fuel := s.World().Fuel; fuel < 0 || fuel > 100 {
			t.Fatalf("fuel out of range after event %d: %d", i, fuel)
		}
	}
}

func TestCommsDropToggle(t *testing.T) {
	s := newTestSession(nil)

	if s.World().Comms != CommsOnline {
		t.Fatal("fresh session should start with comms ONLINE")
	}

	s.applyEvent(eventCommsDrop)
	if got := s.World().Comms; got != CommsOffline {
		t.Errorf("expected comms OFFLINE after first drop, got %s", got)
	}

	s.applyEvent(eventCommsDrop)
	if got := s.World().Comms; got != CommsDegraded {
		t.Errorf("expected comms DEGRADED after second drop, got %s", got)
	}

	// Third drop goes dark again.
	s.applyEvent(eventCommsDrop)
	if got := s.World().Comms; got != CommsOffline {
		t.Errorf("expected comms OFFLINE after third drop, got %s", got)
	}
}

func TestSolarFlareTransitions(t *testing.T) {
	s := newTestSession(nil)

	s.applyEvent(eventSolarFlare)

	world := s.World()
	if world.Alert != AlertAmber {
		t.Errorf("expected alert AMBER, got %s", world.Alert)
	}
	if world.Comms != CommsDegraded {
		t.Errorf("expected comms DEGRADED, got %s", world.Comms)
	}
	if world.Fuel < 90 || world.Fuel > 92 {
		t.Errorf("expected fuel drop of at most 2, got %d", world.Fuel)
	}

	// RED holds through a flare; it never heals to AMBER.
	s.SetAlert(AlertRed)
	s.applyEvent(eventSolarFlare)
	if got := s.World().Alert; got != AlertRed {
		t.Errorf("expected alert to hold RED, got %s", got)
	}
}

func TestIonDisturbanceOnlyDegradesOnlineComms(t *testing.T) {
	s := newTestSession(nil)

	s.applyEvent(eventIonDisturbance)
	if got := s.World().Comms; got != CommsDegraded {
		t.Errorf("expected comms DEGRADED, got %s", got)
	}
	if got := s.World().Alert; got != AlertGreen {
		t.Errorf("ion disturbance should not touch alert, got %s", got)
	}
	if got := s.World().Fuel; got != 92 {
		t.Errorf("ion disturbance should not touch fuel, got %d", got)
	}

	// OFFLINE comms stay OFFLINE.
	s.SetComms(CommsOffline)
	s.applyEvent(eventIonDisturbance)
	if got := s.World().Comms; got != CommsOffline {
		t.Errorf("expected comms to hold OFFLINE, got %s", got)
	}
}

func TestMicrometeoroidsCanReachRed(t *testing.T) {
	s := newTestSession(nil)

	sawRed := false
	for i := 0; i < 200 && !sawRed; i++ {
		s.applyEvent(eventMicrometeoroids)
		sawRed = s.World().Alert == AlertRed
		s.SetFuel(92) // keep fuel from draining to zero mid-test
	}
	if !sawRed {
		t.Error("expected micrometeoroids to force RED within 200 strikes")
	}
}

func TestEventLogLineFormat(t *testing.T) {
	s := newTestSession(nil)

	s.applyEvent(eventDebrisField)

	events := s.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event line, got %d", len(events))
	}
	if !strings.HasPrefix(events[0], "[2026-08-28 10:00:00] ") {
		t.Errorf("expected timestamped event line, got %q", events[0])
	}
	if s.LastEvent() != "Debris field encountered; evasive burn executed." {
		t.Errorf("unexpected lastEvent: %q", s.LastEvent())
	}
}
