package core

import (
	"fmt"
	"strings"
)

// CommandKind enumerates the slash-command palette. New commands get a new
// kind here and a case in Execute, so the compiler keeps both in sync.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandHelp
	CommandClear
	CommandStatus
	CommandMission
	CommandScan
	CommandEvent
	CommandMode
)

// Command is a parsed slash command. Stateless: derived entirely from the
// input text per invocation.
type Command struct {
	Kind CommandKind
	Arg  string // mode target for CommandMode, "" otherwise
}

// ParseCommand tokenizes raw input on whitespace and matches the first
// token case-insensitively against the palette.
func ParseCommand(raw string) Command {
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return Command{Kind: CommandUnknown}
	}

	switch strings.ToLower(parts[0]) {
	case "/help":
		return Command{Kind: CommandHelp}
	case "/clear":
		return Command{Kind: CommandClear}
	case "/status":
		return Command{Kind: CommandStatus}
	case "/mission":
		return Command{Kind: CommandMission}
	case "/scan":
		return Command{Kind: CommandScan}
	case "/event":
		return Command{Kind: CommandEvent}
	case "/mode":
		cmd := Command{Kind: CommandMode}
		if len(parts) > 1 {
			cmd.Arg = parts[1]
		}
		return cmd
	default:
		return Command{Kind: CommandUnknown}
	}
}

// Execute runs a slash command against the session. Total: every input
// produces a response string, and unrecognized input mutates nothing.
func (s *Session) Execute(raw string) string {
	cmd := ParseCommand(raw)

	switch cmd.Kind {
	case CommandHelp:
		return commandHelp

	case CommandClear:
		s.Clear()
		return "Crew channel wiped clean, Commander. Fresh console ready."

	case CommandStatus:
		return "Commander, reporting in.\n" + s.formatStatus()

	case CommandMission:
		return fmt.Sprintf("Commander, mission packet generated: %s Awaiting confirmation.", s.pick(missionSnippets))

	case CommandScan:
		return fmt.Sprintf("Initiating sensor sweep… ✅\nScan: %s", s.pick(scanResults))

	case CommandEvent:
		if msg := s.MaybeTriggerEvent(true); msg != "" {
			return msg
		}
		return "Event generator idle, Commander."

	case CommandMode:
		if cmd.Arg == "" {
			return fmt.Sprintf("Commander, current mode is %s. Try: /mode science.", s.config.Mode)
		}
		mode, ok := ParseMode(cmd.Arg)
		if !ok {
			return "Mode not recognized, Commander. Valid: standard | science | engineering | alert."
		}
		s.SetMode(mode)
		return fmt.Sprintf("Mode shift complete, Commander. %s engaged.", mode)

	default:
		return "Command not recognized, Commander. Try /help."
	}
}

const commandHelp = `Command Palette
- /status — show ship readout
- /mission — generate a mission packet
- /scan — run a sensor sweep
- /mode science | /mode engineering | /mode alert | /mode standard
- /event — force a ship event (demo)
- /clear — clear chat
- /help — show this list

Tip: Ask normal questions too — CosmoBot stays in character.`

func (s *Session) formatStatus() string {
	crewLog := "OFF"
	if s.config.CrewLogEnabled {
		crewLog = "ON"
	}
	return fmt.Sprintf(
		"Ship Status\n- Alert: %s\n- Sector: %s\n- Fuel: %d%%\n- Comms: %s\n- Mode: %s\n- Crew Log: %s\n- Event Rate: %d%% / message",
		s.world.Alert, s.world.Sector, s.world.Fuel, s.world.Comms, s.config.Mode, crewLog, int(s.config.EventRate*100))
}

// pick selects one entry uniformly at random.
func (s *Session) pick(options []string) string {
	return options[s.rng.Intn(len(options))]
}
