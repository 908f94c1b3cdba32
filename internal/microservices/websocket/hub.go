package websocket

import (
	"context"
	"log/slog"
	"sync/atomic"

	"dormhub/internal/microservices/http-api/service"
)

// Central hub fanning committed rating events out to every live client.
// Each WebSocket connection runs in its own goroutines but all of them
// talk to the hub through channels, so the client set is owned by Run alone.

const eventBuffer = 64

type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	events     chan service.RatingEvent
	done       chan struct{}
	count      atomic.Int64
	log        *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan service.RatingEvent, eventBuffer),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run owns the client set until ctx is cancelled, then closes every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Add(1)
			h.log.Debug("ws_client_registered", "user_id", c.UserID, "resident_id", c.ResidentID)

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}

		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event service.RatingEvent) {
	data, err := NewMessage(event).ToJSON()
	if err != nil {
		return
	}
	for c := range h.clients {
		if !c.Wants(event) {
			continue
		}
		select {
		case c.send <- data:
		default:
			// slow consumer, cut it loose instead of stalling the feed
			h.log.Warn("ws_client_dropped", "user_id", c.UserID, "reason", "send buffer full")
			h.drop(c)
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	h.count.Add(-1)
	close(c.send)
}

// PublishRating queues an event for broadcast. It never blocks; events are
// discarded when the hub is stopped or its buffer is full.
func (h *Hub) PublishRating(event service.RatingEvent) {
	select {
	case <-h.done:
	case h.events <- event:
	default:
		h.log.Warn("ws_event_dropped", "rating_id", event.Rating.ID, "kind", event.Kind)
	}
}

// Register hands a client to the hub. It reports false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client; safe to call after the hub has stopped
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}
