package handler

import (
	"io"
	"net/http"

	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/preferences"
	"github.com/osse101/VineyardSim_Go/internal/tastingform"
)

// TastingFormName is the draft key of the advanced tasting form
const TastingFormName = "tasting"

// SessionHandler serves state the browser used to keep locally
type SessionHandler struct {
	prefs preferences.Service
}

// NewSessionHandler creates a new session state handler
func NewSessionHandler(prefs preferences.Service) *SessionHandler {
	return &SessionHandler{prefs: prefs}
}

// HistoryResponse lists recent searches newest first
type HistoryResponse struct {
	History []string `json:"history"`
}

// ThemeRequest is the request body for choosing a theme
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark system"`
}

// ThemeResponse reports the active theme
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// HandleGetPreferences returns the session preferences, or defaults
// @Summary Get preferences
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} preferences.Preferences
// @Router /session/preferences [get]
func (h *SessionHandler) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	prefs, err := h.prefs.GetPreferences(r.Context(), sid)
	if err != nil {
		respondServiceError(w, r, "Get preferences", err)
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}

// HandleSavePreferences replaces the session preferences
// @Summary Save preferences
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Param request body preferences.Preferences true "Preferences"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /session/preferences [put]
func (h *SessionHandler) HandleSavePreferences(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[preferences.Preferences](w, r, "Save preferences")
	if !ok {
		return
	}

	if err := h.prefs.SavePreferences(r.Context(), sid, req); err != nil {
		respondServiceError(w, r, "Save preferences", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPreferencesSaved})
}

// HandleGetHistory returns recent wine searches
// @Summary Search history
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} HistoryResponse
// @Router /session/history [get]
func (h *SessionHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	history, err := h.prefs.GetHistory(r.Context(), sid)
	if err != nil {
		respondServiceError(w, r, "Get history", err)
		return
	}

	respondJSON(w, http.StatusOK, HistoryResponse{History: history})
}

// HandleClearHistory forgets all recent searches
// @Summary Clear search history
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} SuccessResponse
// @Router /session/history [delete]
func (h *SessionHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.prefs.ClearHistory(r.Context(), sid); err != nil {
		respondServiceError(w, r, "Clear history", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHistoryCleared})
}

// HandleGetTheme returns the session theme
// @Summary Get theme
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} ThemeResponse
// @Router /session/theme [get]
func (h *SessionHandler) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	theme, err := h.prefs.GetTheme(r.Context(), sid)
	if err != nil {
		respondServiceError(w, r, "Get theme", err)
		return
	}

	respondJSON(w, http.StatusOK, ThemeResponse{Theme: theme})
}

// HandleSetTheme stores the session theme
// @Summary Set theme
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Param request body ThemeRequest true "Theme"
// @Success 200 {object} ThemeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /session/theme [put]
func (h *SessionHandler) HandleSetTheme(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[ThemeRequest](w, r, "Set theme")
	if !ok {
		return
	}

	if err := h.prefs.SetTheme(r.Context(), sid, req.Theme); err != nil {
		respondServiceError(w, r, "Set theme", err)
		return
	}

	respondJSON(w, http.StatusOK, ThemeResponse{Theme: req.Theme})
}

// loadTastingState returns the saved draft, or a fresh form when none is usable
func (h *SessionHandler) loadTastingState(r *http.Request, sid string) tastingform.State {
	state := tastingform.Initial()
	found, err := h.prefs.LoadDraft(r.Context(), sid, TastingFormName, &state)
	if err != nil || !found {
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgDraftLoadFailed, "error", err)
		}
		return tastingform.Initial()
	}
	return state
}

// HandleGetTastingForm returns the current tasting form draft
// @Summary Get tasting form
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} tastingform.State
// @Router /session/forms/tasting [get]
func (h *SessionHandler) HandleGetTastingForm(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.loadTastingState(r, sid))
}

// HandleTastingAction applies one action to the tasting form and saves the draft
// @Summary Update tasting form
// @Description Body is an action such as {"type":"set_field","field":"name","value":"Rioja"}.
// @Description A successful submit clears the draft and returns the final form.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} tastingform.State
// @Failure 400 {object} ErrorResponse
// @Router /session/forms/tasting [post]
func (h *SessionHandler) HandleTastingAction(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	action, err := tastingform.DecodeAction(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn(ErrMsgInvalidFormAction, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidFormAction)
		return
	}

	state := tastingform.Reduce(h.loadTastingState(r, sid), action)

	if state.Submitted {
		if err := h.prefs.DeleteDraft(r.Context(), sid, TastingFormName); err != nil {
			respondServiceError(w, r, "Submit tasting form", err)
			return
		}
		logger.FromContext(r.Context()).Info(MsgTastingNoteSubmitted, "wine", state.Form.Name)
	} else {
		h.prefs.SaveDraft(r.Context(), sid, TastingFormName, state)
	}

	respondJSON(w, http.StatusOK, state)
}

// HandleDiscardTastingForm drops the tasting form draft
// @Summary Discard tasting form
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} tastingform.State
// @Router /session/forms/tasting [delete]
func (h *SessionHandler) HandleDiscardTastingForm(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.prefs.DeleteDraft(r.Context(), sid, TastingFormName); err != nil {
		respondServiceError(w, r, "Discard tasting form", err)
		return
	}

	respondJSON(w, http.StatusOK, tastingform.Initial())
}
