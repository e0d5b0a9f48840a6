// Package reload provides the in-process fan-out between the vault watcher
// and connected live-preview clients. Changes are published to a buffered
// channel and dispatched to all subscribers by a single consumer goroutine.
package reload

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Message is one reload notification sent to preview clients.
type Message struct {
	Type string `json:"type"`
	Note string `json:"note,omitempty"`
}

// Hub fans reload messages out to subscribers. Subscribers that cannot keep
// up have messages dropped rather than blocking the dispatcher.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan Message
	events      chan Message
	done        chan struct{}
}

// NewHub creates a Hub with the given publish buffer size.
func NewHub(bufSize int) *Hub {
	if bufSize < 1 {
		bufSize = 64
	}
	return &Hub{
		subscribers: make(map[string]chan Message),
		events:      make(chan Message, bufSize),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a new subscriber and returns its id and channel.
func (h *Hub) Subscribe() (string, <-chan Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := uuid.New().String()
	ch := make(chan Message, 8)
	h.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// Publish queues a message for dispatch without blocking. If the buffer is
// full the message is dropped and a warning is logged.
func (h *Hub) Publish(msg Message) {
	select {
	case h.events <- msg:
	default:
		log.Printf("reload: buffer full, dropping %s for %s", msg.Type, msg.Note)
	}
}

// Start begins the dispatcher goroutine. It runs until the context is
// cancelled, then closes every subscriber channel.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		defer close(h.done)
		for {
			select {
			case msg := <-h.events:
				h.dispatch(msg)
			case <-ctx.Done():
				h.closeAll()
				return
			}
		}
	}()
}

// Wait blocks until the dispatcher goroutine has exited.
func (h *Hub) Wait() {
	<-h.done
}

func (h *Hub) dispatch(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subscribers {
		select {
		case ch <- msg:
		default:
			log.Printf("reload: subscriber %s lagging, dropping message", id)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
}
