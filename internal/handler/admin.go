package handler

import (
	"net/http"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/event"
	"github.com/osse101/VineyardSim_Go/internal/eventlog"
	"github.com/osse101/VineyardSim_Go/internal/logger"
)

// Broadcaster pushes an event to the browsers watching a game
type Broadcaster interface {
	Broadcast(gameID, eventType string, payload interface{})
	ClientCount() int
}

// TimerCounter reports running auto-advance timers
type TimerCounter interface {
	Active() int
}

// AdminHandler serves operator endpoints
type AdminHandler struct {
	journal   eventlog.Service
	hub       Broadcaster
	timers    TimerCounter
	startedAt time.Time
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(journal eventlog.Service, hub Broadcaster, timers TimerCounter) *AdminHandler {
	return &AdminHandler{journal: journal, hub: hub, timers: timers, startedAt: time.Now()}
}

// CleanupJournalRequest is the request body for pruning the journal
type CleanupJournalRequest struct {
	RetentionDays int `json:"retention_days" validate:"required,min=1,max=3650"`
}

// CleanupJournalResponse reports how many entries were removed
type CleanupJournalResponse struct {
	Deleted int64 `json:"deleted"`
}

// AnnounceRequest is the request body for a manual notification
type AnnounceRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=info success warning danger education"`
	Message string `json:"message" validate:"required,max=500"`
}

// RuntimeResponse summarizes live connections and timers
type RuntimeResponse struct {
	SSEClients        int    `json:"sse_clients"`
	AutoAdvanceTimers int    `json:"auto_advance_timers"`
	Uptime            string `json:"uptime"`
}

// HandleCleanupJournal prunes journal entries older than the given retention
// @Summary Prune the game journal
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CleanupJournalRequest true "Retention"
// @Success 200 {object} CleanupJournalResponse
// @Router /admin/journal/cleanup [post]
func (h *AdminHandler) HandleCleanupJournal(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[CleanupJournalRequest](w, r, "Cleanup journal")
	if !ok {
		return
	}

	deleted, err := h.journal.CleanupOldEvents(r.Context(), req.RetentionDays)
	if err != nil {
		respondServiceError(w, r, "Cleanup journal", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgJournalPruned, "deleted", deleted, "retention_days", req.RetentionDays)
	respondJSON(w, http.StatusOK, CleanupJournalResponse{Deleted: deleted})
}

// HandleAnnounce sends a notification to every browser watching a game
// @Summary Announce to a game
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body AnnounceRequest true "Notification"
// @Success 200 {object} SuccessResponse
// @Router /admin/games/{id}/announce [post]
func (h *AdminHandler) HandleAnnounce(w http.ResponseWriter, r *http.Request) {
	gameID, r, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[AnnounceRequest](w, r, "Announce")
	if !ok {
		return
	}

	h.hub.Broadcast(gameID, string(event.NotificationRaised), event.NotificationPayloadV1{
		GameID: gameID,
		Notification: domain.Notification{
			Kind:    domain.NotificationKind(req.Kind),
			Message: req.Message,
		},
	})

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAnnouncementSent})
}

// HandleRuntime reports live SSE connections and auto-advance timers
// @Summary Runtime status
// @Tags admin
// @Produce json
// @Success 200 {object} RuntimeResponse
// @Router /admin/runtime [get]
func (h *AdminHandler) HandleRuntime(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, RuntimeResponse{
		SSEClients:        h.hub.ClientCount(),
		AutoAdvanceTimers: h.timers.Active(),
		Uptime:            time.Since(h.startedAt).Round(time.Second).String(),
	})
}
