// Package transcript renders the exported captain's log. The section
// order and headers are fixed; prior exports depend on the exact layout.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cosmobot/internal/constants"
	"cosmobot/internal/core"
)

const title = "HANNAH — Captain’s Log"

// Build renders the full plain-text captain's log for a session:
// Ship Snapshot, Events, Conversation, Crew Log, in that order.
func Build(s *core.Session, generatedAt string) string {
	world := s.World()
	config := s.Config()

	lines := []string{
		title,
		underline(title, '='),
		"Generated: " + generatedAt,
		"",
		"Ship Snapshot",
		underline("Ship Snapshot", '-'),
		fmt.Sprintf("Alert: %s", world.Alert),
		fmt.Sprintf("Sector: %s", world.Sector),
		fmt.Sprintf("Fuel: %d%%", world.Fuel),
		fmt.Sprintf("Comms: %s", world.Comms),
		fmt.Sprintf("Mode: %s", config.Mode),
		"",
	}

	lines = append(lines, "Events", underline("Events", '-'))
	if events := s.Events(); len(events) > 0 {
		lines = append(lines, events...)
	} else {
		lines = append(lines, "(none)")
	}
	lines = append(lines, "")

	lines = append(lines, "Conversation", underline("Conversation", '-'))
	if history := s.History(); len(history) > 0 {
		for _, entry := range history {
			role := "CosmoBot"
			if entry.Role == core.RoleUser {
				role = "Commander"
			}
			ts := entry.Timestamp.Format(constants.TimestampFormat)
			lines = append(lines, fmt.Sprintf("[%s] %s: %s", ts, role, entry.Content))
		}
	} else {
		lines = append(lines, "(empty)")
	}
	lines = append(lines, "")

	lines = append(lines, "Crew Log", underline("Crew Log", '-'))
	if crew := s.CrewLog(); config.CrewLogEnabled && len(crew) > 0 {
		lines = append(lines, crew...)
	} else {
		lines = append(lines, "(disabled or empty)")
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// Write renders and saves the captain's log under its fixed file name in
// dir and returns the full path.
func Write(s *core.Session, dir, generatedAt string) (string, error) {
	return Save(Build(s, generatedAt), dir)
}

// Save writes an already-rendered captain's log to dir.
func Save(doc, dir string) (string, error) {
	path := filepath.Join(dir, constants.ExportFileName)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("write captain's log: %w", err)
	}
	return path, nil
}

// Now returns the generation timestamp in the exported log's format.
func Now() string {
	return time.Now().Format(constants.TimestampFormat)
}

// underline returns a rule of the same rune length as the heading.
func underline(heading string, ch rune) string {
	return strings.Repeat(string(ch), len([]rune(heading)))
}
