package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/event"
	"github.com/osse101/VineyardSim_Go/internal/testing/leaktest"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.Events:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_FiltersByGameAndType(t *testing.T) {
	hub := startHub(t)
	all := hub.Register("g1", nil)
	onlyEnd := hub.Register("g1", []string{string(event.GameEnded)})
	other := hub.Register("g2", nil)
	waitForClients(t, hub, 3)

	hub.Broadcast("g1", string(event.DayAdvanced), map[string]int{"day": 2})
	hub.Broadcast("g1", string(event.GameEnded), nil)

	assert.Equal(t, string(event.DayAdvanced), receive(t, all).Type)
	assert.Equal(t, string(event.GameEnded), receive(t, all).Type)
	assert.Equal(t, string(event.GameEnded), receive(t, onlyEnd).Type)

	select {
	case evt := <-other.Events:
		t.Fatalf("unexpected event for another game: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	c := hub.Register("g1", nil)
	waitForClients(t, hub, 1)

	hub.Unregister(c)
	waitForClients(t, hub, 0)
	_, ok := <-c.Events
	assert.False(t, ok)
}

func TestSubscriber_ForwardsGameEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register("g1", nil)
	waitForClients(t, hub, 1)

	n := domain.Notification{Day: 3, Kind: domain.NotifyWarning, Message: "Hail"}
	require.NoError(t, bus.Publish(context.Background(), event.NewNotificationEvent("g1", n)))
	require.NoError(t, bus.Publish(context.Background(), event.Event{Type: event.DayAdvanced}))

	evt := receive(t, c)
	assert.Equal(t, string(event.NotificationRaised), evt.Type)
	payload, ok := evt.Payload.(event.NotificationPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "Hail", payload.Notification.Message)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	r := chi.NewRouter()
	r.Get("/games/{id}/events", Handler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/games/g1/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	waitForClients(t, hub, 1)
	hub.Broadcast("g1", string(event.DayAdvanced), map[string]int{"day": 9})

	reader := bufio.NewReader(resp.Body)
	var events []string
	for len(events) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: ") {
			events = append(events, strings.TrimSpace(strings.TrimPrefix(line, "event: ")))
		}
	}
	assert.Equal(t, []string{EventTypeConnected, string(event.DayAdvanced)}, events)
}

func TestEvent_MarshalSSE(t *testing.T) {
	msg, err := Event{ID: "1", Type: "t", Payload: "x"}.MarshalSSE()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "id: 1\nevent: t\ndata: {"))
	assert.True(t, strings.HasSuffix(string(msg), "\n\n"))

	keepalive, err := Event{Type: EventTypeKeepalive}.MarshalSSE()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(keepalive), "event: keepalive\n"))
}

func TestHub_WildcardWatcherSeesEveryGame(t *testing.T) {
	hub := startHub(t)
	watcher := hub.Register("", nil)
	waitForClients(t, hub, 1)

	hub.Broadcast("g1", string(event.WineSold), nil)
	hub.Broadcast("g2", string(event.WineSold), nil)

	assert.Equal(t, "g1", receive(t, watcher).GameID)
	assert.Equal(t, "g2", receive(t, watcher).GameID)
}

func TestHub_RegisterAfterStop(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	c := hub.Register("g1", nil)
	hub.Unregister(c)

	select {
	case _, ok := <-c.Events:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel left open after stop")
	}
	assert.Equal(t, 0, hub.ClientCount())
}

func TestSplitTypes(t *testing.T) {
	assert.Nil(t, splitTypes(""))
	assert.Equal(t, []string{"a", "b"}, splitTypes(" a, ,b,"))
}

func TestHub_StopReleasesGoroutines(t *testing.T) {
	leaktest.Run(t, func() {
		hub := NewHub()
		hub.Start()
		client := hub.Register("game-1", nil)
		waitForClients(t, hub, 1)
		hub.Unregister(client)
		waitForClients(t, hub, 0)
		hub.Stop()
	})
}
