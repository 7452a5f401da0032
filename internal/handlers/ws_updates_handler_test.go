package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatesHubBroadcastsToConnectedClients(t *testing.T) {
	hub := NewUpdatesHub()
	server := httptest.NewServer(http.HandlerFunc(hub.UpdatesWebSocketHandler))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastRosterUpdate("Chess Club")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update RosterUpdate
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, "roster_updated", update.Type)
	assert.Equal(t, "Chess Club", update.Activity)
}

func TestUpdatesHubDropsClosedClients(t *testing.T) {
	hub := NewUpdatesHub()
	server := httptest.NewServer(http.HandlerFunc(hub.UpdatesWebSocketHandler))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, 2*time.Second, 10*time.Millisecond)

	// Broadcasting with no clients is a no-op.
	hub.BroadcastRosterUpdate("Chess Club")
}
