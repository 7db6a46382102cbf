package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/VineyardSim_Go/internal/metrics"
)

// Event is one message on a browser stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	GameID    string      `json:"game_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MarshalSSE renders the event in text/event-stream framing
func (e Event) MarshalSSE() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if e.ID != "" {
		fmt.Fprintf(&buf, "id: %s\n", e.ID)
	}
	fmt.Fprintf(&buf, "event: %s\ndata: %s\n\n", e.Type, data)
	return buf.Bytes(), nil
}

// Client is one open stream. Events is closed when the hub drops the client.
type Client struct {
	ID     string
	GameID string
	Events chan Event
	types  map[string]struct{}
}

func (c *Client) accepts(eventType string) bool {
	if c.types == nil {
		return true
	}
	_, ok := c.types[eventType]
	return ok
}

type membership struct {
	client *Client
	join   bool
}

// Hub fans game events out to the clients watching that game.
// A client registered with an empty game ID watches every game.
type Hub struct {
	rooms map[string]map[string]*Client

	members chan membership
	events  chan Event
	done    chan struct{}

	clients  atomic.Int64
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewHub creates a hub; call Start before registering clients
func NewHub() *Hub {
	return &Hub{
		rooms:   make(map[string]map[string]*Client),
		members: make(chan membership, ClientChannelBuffer),
		events:  make(chan Event, BroadcastBufferSize),
		done:    make(chan struct{}),
	}
}

func (h *Hub) Start() {
	h.wg.Add(1)
	go h.loop()
}

// Stop ends the loop and closes every client's channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()
	})
}

func (h *Hub) loop() {
	defer h.wg.Done()
	defer h.closeAll()

	for {
		select {
		case m := <-h.members:
			if m.join {
				h.add(m.client)
			} else {
				h.remove(m.client)
			}

		case evt := <-h.events:
			h.deliver(h.rooms[evt.GameID], evt)
			if evt.GameID != "" {
				h.deliver(h.rooms[""], evt)
			}

		case <-h.done:
			return
		}
	}
}

func (h *Hub) add(c *Client) {
	room := h.rooms[c.GameID]
	if room == nil {
		room = make(map[string]*Client)
		h.rooms[c.GameID] = room
	}
	room[c.ID] = c
	h.setCount(h.clients.Load() + 1)
}

func (h *Hub) remove(c *Client) {
	room := h.rooms[c.GameID]
	if _, ok := room[c.ID]; !ok {
		return
	}
	delete(room, c.ID)
	if len(room) == 0 {
		delete(h.rooms, c.GameID)
	}
	close(c.Events)
	h.setCount(h.clients.Load() - 1)
}

func (h *Hub) deliver(room map[string]*Client, evt Event) {
	for _, c := range room {
		if !c.accepts(evt.Type) {
			continue
		}
		select {
		case c.Events <- evt:
		default:
			metrics.SSEDropped.WithLabelValues(metrics.DropSlowPeer).Inc()
		}
	}
}

func (h *Hub) closeAll() {
	for _, room := range h.rooms {
		for _, c := range room {
			close(c.Events)
		}
	}
	h.rooms = make(map[string]map[string]*Client)
	h.setCount(0)
}

func (h *Hub) setCount(n int64) {
	h.clients.Store(n)
	metrics.SSEClients.Set(float64(n))
}

// Register opens a stream for gameID, limited to eventTypes when any are given
func (h *Hub) Register(gameID string, eventTypes []string) *Client {
	c := &Client{
		ID:     uuid.NewString(),
		GameID: gameID,
		Events: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.types = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			c.types[t] = struct{}{}
		}
	}

	select {
	case <-h.done:
		close(c.Events)
		return c
	default:
	}
	select {
	case h.members <- membership{client: c, join: true}:
	case <-h.done:
		close(c.Events)
	}
	return c
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.members <- membership{client: c}:
	case <-h.done:
	}
}

// Broadcast queues an event for gameID's watchers. A full queue drops it.
func (h *Hub) Broadcast(gameID, eventType string, payload interface{}) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		GameID:    gameID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.events <- evt:
	default:
		metrics.SSEDropped.WithLabelValues(metrics.DropHubFull).Inc()
		slog.Warn(LogMsgEventDropped, "type", eventType, "game_id", gameID)
	}
}

func (h *Hub) ClientCount() int {
	return int(h.clients.Load())
}
