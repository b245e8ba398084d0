package core

import "sync"

const minBusBufferSize = 16

// Bus distributes session events to subscribers (the TUI, mainly).
type Bus struct {
	mu          sync.RWMutex
	subscribers []chan Event
	bufferSize  int
}

// NewBus creates a bus whose subscriber channels buffer bufferSize events.
func NewBus(bufferSize int) *Bus {
	if bufferSize < minBusBufferSize {
		bufferSize = minBusBufferSize
	}
	return &Bus{bufferSize: bufferSize}
}

// Subscribe returns a channel that receives events. The caller is
// responsible for reading from the channel to avoid dropped events.
func (b *Bus) Subscribe() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Publish sends an event to all subscribers. Non-blocking: drops the event
// for a subscriber whose buffer is full.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = nil
}
