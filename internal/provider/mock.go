package provider

import "context"

// MockProvider is a test provider that returns predefined responses and
// records the contexts it was called with.
type MockProvider struct {
	name     string
	response string
	chatErr  error

	// Calls holds the message context of every Chat invocation.
	Calls [][]Message
}

// NewMock creates a new mock provider.
func NewMock(name, response string) *MockProvider {
	return &MockProvider{
		name:     name,
		response: response,
	}
}

// WithChatError sets an error to return from Chat.
func (p *MockProvider) WithChatError(err error) *MockProvider {
	p.chatErr = err
	return p
}

// Name returns the provider identifier.
func (p *MockProvider) Name() string {
	return p.name
}

// Chat records the call and returns the predefined response or error.
func (p *MockProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	p.Calls = append(p.Calls, messages)
	if p.chatErr != nil {
		return "", p.chatErr
	}
	return p.response, nil
}
