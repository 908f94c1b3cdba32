package websocket

import (
	"net/http"
	"slices"
	"strconv"

	"dormhub/internal/microservices/http-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// HTTP upgrade handler to WebSocket connections

// newUpgrader accepts non-browser clients and the configured CORS origins
func newUpgrader(allowedOrigins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, origin)
		},
	}
}

// Handler upgrades an authenticated request to the live rating feed.
// The optional resident_id query narrows the feed to one resident.
func Handler(hub *Hub, allowedOrigins []string) gin.HandlerFunc {
	upgrader := newUpgrader(allowedOrigins)

	return func(c *gin.Context) {
		// get user info from JWT middleware
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		var residentID int64
		if raw := c.Query("resident_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident_id"})
				return
			}
			residentID = id
		}

		// upgrade HTTP connection to WebSocket, the upgrader answers failures itself
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := NewClient(userID, residentID, conn, hub)
		if !hub.Register(client) {
			conn.Close()
			return
		}

		// start goroutines for read and write pumps
		go client.WritePump()
		go client.ReadPump()
	}
}
