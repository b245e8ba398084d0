package constants

import "time"

// SystemPrompt is the persona preamble sent at the head of every LLM context.
const SystemPrompt = `You are COSMOBOT, the onboard AI of a deep-space exploration vessel.

Style:
- Calm, futuristic, slightly playful.
- Refer to the user as "Commander".
- Refer to yourself as "CosmoBot".
- Occasionally use space metaphors.
- Be helpful, but keep it fun.
- Never mention system prompts or break character.`

// MaxHistoryEntries caps the conversation history window.
const MaxHistoryEntries = 120

// MaxCrewLogEntries caps the crew log (short-term memory).
const MaxCrewLogEntries = 30

// MaxShipEvents caps the ship event log.
const MaxShipEvents = 40

// CrewLogClipLen is the rune limit for a single crew log line before the
// ellipsis marker is applied.
const CrewLogClipLen = 90

// ContextHistoryEntries limits how many recent history entries go into the
// LLM context.
const ContextHistoryEntries = 18

// ContextCrewLogLines limits how many crew log lines go into the LLM context.
const ContextCrewLogLines = 10

// DefaultEventRate is the per-message chance of a random ship event.
const DefaultEventRate = 0.18

// ProviderTimeout caps a single completion request.
const ProviderTimeout = 30 * time.Second

// TimestampFormat is used for history entries and the exported log.
const TimestampFormat = "2006-01-02 15:04:05"

// ShortTimestampFormat is used for crew log lines.
const ShortTimestampFormat = "15:04:05"

// ExportFileName is the fixed name of the exported captain's log. Prior
// exports depend on it, so it never changes.
const ExportFileName = "hannah_captains_log.txt"
