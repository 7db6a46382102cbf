package handler

import (
	"net/http"

	"github.com/osse101/VineyardSim_Go/internal/eventlog"
)

// Journal page bounds
const (
	DefaultJournalLimit = 50
	MaxJournalLimit     = 500
)

// JournalHandler serves the event journal of a game
type JournalHandler struct {
	service eventlog.Service
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(service eventlog.Service) *JournalHandler {
	return &JournalHandler{service: service}
}

// JournalResponse lists journal entries newest first
type JournalResponse struct {
	Entries []eventlog.Entry `json:"entries"`
}

// HandleGetJournal returns recent events of a game
// @Summary Game journal
// @Description Recent days, harvests, sales and disasters of a game, newest first
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Param limit query int false "Maximum entries (1-500)"
// @Success 200 {object} JournalResponse
// @Failure 400 {object} ErrorResponse
// @Router /games/{id}/journal [get]
func (h *JournalHandler) HandleGetJournal(w http.ResponseWriter, r *http.Request) {
	gameID, r, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	limit, ok := intQueryParam(w, r, "limit", DefaultJournalLimit, 1, MaxJournalLimit)
	if !ok {
		return
	}

	entries, err := h.service.GetJournal(r.Context(), gameID, limit)
	if err != nil {
		respondServiceError(w, r, "Get journal", err)
		return
	}
	if entries == nil {
		entries = []eventlog.Entry{}
	}

	respondJSON(w, http.StatusOK, JournalResponse{Entries: entries})
}
