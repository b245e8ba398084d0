package core

import (
	"fmt"
	"strings"
)

// Flavor sets for the offline responder and command palette.
var (
	starFacts = []string{
		"A day on Venus is longer than a year on Venus.",
		"Neutron stars can spin hundreds of times per second.",
		"There are more stars in the observable universe than grains of sand on Earth's beaches (roughly speaking).",
		"A teaspoon of neutron star material would weigh billions of tons on Earth.",
		"Jupiter's Great Red Spot is a storm larger than Earth.",
	}

	missionSnippets = []string{
		"Plot a safe course around the ion storm.",
		"Calibrate the star tracker and confirm attitude hold.",
		"Run diagnostics on the thermal shielding.",
		"Scan for biosignatures in the target sector.",
		"Map asteroid fragments for resource harvesting.",
	}

	scanResults = []string{
		"No anomalies detected. Cosmic background radiation within expected parameters.",
		"Minor electromagnetic interference. Suggest shielding check on bay 2.",
		"Spectral spike observed. Possible ion pocket ahead — recommend course adjustment.",
		"Debris field detected at medium range. Activating avoidance guidance.",
	}

	engineeringChecks = []string{
		"Run propulsion coil impedance check.",
		"Verify thermal loop pressure and radiator duty cycle.",
		"Confirm inertial nav bias estimates are within tolerance.",
		"Inspect comms antenna gimbal limits and cable strain relief.",
	}
)

// OfflineRespond produces an in-character reply without any external call.
// Ordered keyword-containment checks over the lowercased input; first match
// wins. Deterministic given a fixed random seed.
func (s *Session) OfflineRespond(text string) string {
	u := strings.ToLower(strings.TrimSpace(text))

	if containsAny(u, "hello", "hi", "hey", "yo") {
		return "Greetings, Commander. CosmoBot online. Instruments are nominal. What's our mission?"
	}
	if containsAny(u, "mission", "quest") {
		return fmt.Sprintf("Commander, mission packet generated: %s Awaiting confirmation.", s.pick(missionSnippets))
	}
	if containsAny(u, "scan", "sweep") {
		return fmt.Sprintf("Initiating sensor sweep… ✅\nScan: %s", s.pick(scanResults))
	}
	if strings.Contains(u, "joke") {
		return "Commander, a joke from the cosmic archives: Why don't stars ever get lost? Because they always follow their constellation."
	}
	if containsAny(u, "fact", "space") {
		return fmt.Sprintf("Scanning cosmic archives… ✅\nSpace Fact: %s", s.pick(starFacts))
	}
	if containsAny(u, "status", "diagnostic") {
		return "Ship status: Green across all systems. Propulsion stable. Comms clear. Coffee… unfortunately not installed."
	}
	if containsAny(u, "checklist", "engineering") {
		var items []string
		for i := 0; i < 3; i++ {
			items = append(items, "- "+s.pick(engineeringChecks))
		}
		return "🛠️ Commander, engineering checklist queued:\n" + strings.Join(items, "\n")
	}
	if containsAny(u, "who are you", "your name") {
		return "I am CosmoBot, the ship's onboard intelligence. You are the Commander. Together, we keep the void politely organized."
	}

	return "Understood, Commander. I'm running a quick simulation… " +
		"If you want richer responses, add an API key in settings. Otherwise, try /mission, /scan, /status, or /joke."
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
