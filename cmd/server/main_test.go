package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mergington-hs/activity-signup/internal/handlers"
	"github.com/mergington-hs/activity-signup/internal/repository"
	"github.com/mergington-hs/activity-signup/internal/services"
	"github.com/mergington-hs/activity-signup/internal/web"
	"github.com/mergington-hs/activity-signup/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger()
}

// newTestServer builds the production router over in-memory stores.
func newTestServer(t *testing.T) (*httptest.Server, *handlers.UpdatesHub) {
	t.Helper()

	store := repository.NewInMemoryActivityStore()
	eventService := services.NewRosterEventService(repository.NewInMemoryRosterEventStore())
	hub := handlers.NewUpdatesHub()
	service := services.NewActivityService(store, eventService, hub)
	require.NoError(t, service.SeedDefaults(context.Background()))

	activityHandler := handlers.NewActivityHandler(service, eventService)
	webHandler, err := web.NewHandler(service)
	require.NoError(t, err)

	server := httptest.NewServer(newRouter(activityHandler, webHandler, hub))
	t.Cleanup(server.Close)
	return server, hub
}

func TestRootRedirectsToStatic(t *testing.T) {
	server, _ := newTestServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/static/index.html", resp.Header.Get("Location"))
}

func TestWebSocketUpgradeThroughRouter(t *testing.T) {
	server, hub := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/updates"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "upgrade must succeed behind the logging middleware")
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastRosterUpdate("Chess Club")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update handlers.RosterUpdate
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, "roster_updated", update.Type)
	assert.Equal(t, "Chess Club", update.Activity)
}
