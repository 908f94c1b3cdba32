package websocket

import (
	"time"

	"dormhub/internal/microservices/http-api/service"

	"github.com/gorilla/websocket"
)

// Individual client connection handler

const ( // ping pong(2-way heartbeat) to keep connection alive
	WriteWait      = 10 * time.Second    // max time write a message to the peer
	PongWait       = 60 * time.Second    // max time to wait for pong from peer => no pong = no connection
	PingPeriod     = (PongWait * 9) / 10 // send pings before pong wait expires, 10% slack for network jitter
	MaxMessageSize = 512                 // maximum message size allowed from peer
	sendBuffer     = 32
)

type Client struct {
	UserID     int64 // from the JWT claims
	ResidentID int64 // 0 follows every resident
	conn       *websocket.Conn
	send       chan []byte // outbound messages, closed by the hub
	hub        *Hub
}

// constructor new client
func NewClient(userID, residentID int64, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		UserID:     userID,
		ResidentID: residentID,
		conn:       conn,
		send:       make(chan []byte, sendBuffer),
		hub:        hub,
	}
}

// Wants reports whether the event matches the client's resident filter
func (c *Client) Wants(event service.RatingEvent) bool {
	return c.ResidentID == 0 || event.Kind == service.RatingDeleted || event.Rating.ResidentID == c.ResidentID
}

// ReadPump drains the peer so pongs and close frames are processed.
// The feed is one-way, anything else the peer sends is ignored.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// WritePump forwards hub messages to the peer and keeps the heartbeat going
func (c *Client) WritePump() {
	ticker := time.NewTicker(PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if !ok {
				// hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
