package websocket

import (
	"encoding/json"
	"log/slog"
	"time"

	"dormhub/internal/microservices/http-api/service"
)

// Message protocol definitions

type MessageType string

const (
	TypeRating MessageType = "rating" // a rating was created, adjusted or deleted
)

// Message structure for WebSocket communication
type Message struct {
	Type      MessageType         `json:"type"`
	Event     service.RatingEvent `json:"event"`
	Timestamp time.Time           `json:"timestamp"` // time in UTC format
}

// constructor new message
func NewMessage(event service.RatingEvent) *Message {
	return &Message{
		Type:      TypeRating,
		Event:     event,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON: marshal Message struct to JSON
func (m *Message) ToJSON() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		slog.Error("Failed to marshal message to JSON", "error", err)
		return nil, err
	}
	return data, nil
}

// MessageFromJSON: unmarshal JSON data to Message struct
func MessageFromJSON(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
