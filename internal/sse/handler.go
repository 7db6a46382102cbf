package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/VineyardSim_Go/internal/logger"
)

// GameIDParam is the route parameter naming the watched game
const GameIDParam = "id"

// Handler streams one game's events until the client goes away or the hub stops
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		gameID := chi.URLParam(r, GameIDParam)
		types := splitTypes(r.URL.Query().Get(TypesQueryParam))
		log := logger.FromContext(r.Context()).With("game_id", gameID)

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")

		client := hub.Register(gameID, types)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "types", types)
		defer func() {
			hub.Unregister(client)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(evt Event) bool {
			msg, err := evt.MarshalSSE()
			if err != nil {
				log.Error(LogMsgWriteError, "type", evt.Type, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				return false
			}
			flusher.Flush()
			return true
		}

		hello := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			GameID:    gameID,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "types": types},
		}
		if !send(hello) {
			return
		}

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, open := <-client.Events:
				if !open || !send(evt) {
					return
				}
			case now := <-keepalive.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: now.Unix()}) {
					return
				}
			}
		}
	}
}

func splitTypes(raw string) []string {
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
