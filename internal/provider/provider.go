// Package provider defines the completion provider capability and its
// implementations. A provider is selected once at startup from
// configuration; it is never probed at call time.
package provider

import "context"

// Message is a role-tagged chat message. Role is one of "system", "user",
// or "assistant".
type Message struct {
	Role    string
	Content string
}

// Provider is the external text-completion capability. Any failure
// surfaces as a plain error; the caller treats every error identically
// as "unavailable".
type Provider interface {
	// Name returns the provider's identifier.
	Name() string

	// Chat sends the ordered message context and returns the completion.
	Chat(ctx context.Context, messages []Message) (string, error)
}
