package websocket

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dormhub/internal/microservices/http-api/middleware"
	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const allowedOrigin = "http://localhost:3000"

type feed struct {
	hub    *Hub
	server *httptest.Server
	cancel context.CancelFunc
}

func startFeed(t *testing.T) *feed {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/live", func(c *gin.Context) {
		middleware.SetCurrentUser(c, &service.Claims{UserID: 5, Username: "warden"})
	}, Handler(hub, []string{allowedOrigin}))

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		cancel()
		server.Close()
	})
	return &feed{hub: hub, server: server, cancel: cancel}
}

func (f *feed) dial(t *testing.T, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/live" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) service.RatingEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	msg, err := MessageFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, TypeRating, msg.Type)
	return msg.Event
}

func adjusted(ratingID, residentID int64) service.RatingEvent {
	return service.RatingEvent{
		Kind:       service.RatingAdjusted,
		ChangeType: "small",
		Rating:     models.ResidentRating{ID: ratingID, ResidentID: residentID, OverallScore: 3.1},
		At:         time.Now().UTC(),
	}
}

func TestHub_BroadcastsToMatchingClients(t *testing.T) {
	f := startFeed(t)
	everyone := f.dial(t, "")
	onlyTwo := f.dial(t, "?resident_id=2")

	require.Eventually(t, func() bool { return f.hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	f.hub.PublishRating(adjusted(10, 1))
	f.hub.PublishRating(adjusted(20, 2))

	first := readEvent(t, everyone)
	assert.Equal(t, int64(10), first.Rating.ID)
	assert.Equal(t, "small", first.ChangeType)
	assert.Equal(t, int64(20), readEvent(t, everyone).Rating.ID)

	// the filtered client never sees resident 1
	assert.Equal(t, int64(20), readEvent(t, onlyTwo).Rating.ID)
}

func TestHub_DeletionsReachFilteredClients(t *testing.T) {
	f := startFeed(t)
	conn := f.dial(t, "?resident_id=2")
	require.Eventually(t, func() bool { return f.hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	f.hub.PublishRating(service.RatingEvent{Kind: service.RatingDeleted, Rating: models.ResidentRating{ID: 7}})

	event := readEvent(t, conn)
	assert.Equal(t, service.RatingDeleted, event.Kind)
	assert.Equal(t, int64(7), event.Rating.ID)
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	f := startFeed(t)
	conn := f.dial(t, "")
	require.Eventually(t, func() bool { return f.hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return f.hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_StopClosesClients(t *testing.T) {
	f := startFeed(t)
	conn := f.dial(t, "")
	require.Eventually(t, func() bool { return f.hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	f.cancel()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNoStatusReceived), "unexpected error: %v", err)
	assert.Equal(t, 0, f.hub.ClientCount())

	// publishing after stop must not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < eventBuffer+1; i++ {
			f.hub.PublishRating(adjusted(1, 1))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PublishRating blocked after the hub stopped")
	}
}

func TestHandler_RejectsInvalidResidentFilter(t *testing.T) {
	f := startFeed(t)

	resp, err := http.Get(f.server.URL + "/live?resident_id=abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ChecksOrigin(t *testing.T) {
	f := startFeed(t)
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/live"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"http://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {allowedOrigin}})
	require.NoError(t, err)
	conn.Close()
}

func TestHandler_RequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/live", Handler(NewHub(slog.New(slog.NewTextHandler(io.Discard, nil))), nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
