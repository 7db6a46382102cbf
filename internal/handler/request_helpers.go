package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/VineyardSim_Go/internal/logger"
)

// HeaderSessionID carries the browser session that owns games and local state
const HeaderSessionID = "X-Session-ID"

// decodeRequest reads a JSON body into T and checks its validate tags.
// On failure the 400 is already written and ok is false.
func decodeRequest[T any](w http.ResponseWriter, r *http.Request, action string) (req T, ok bool) {
	log := logger.FromContext(r.Context()).With("action", action)

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn(LogMsgDecodeFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return req, false
	}

	if err := ValidateRequest(&req); err != nil {
		fields := FormatValidationError(err)
		log.Debug(LogMsgValidationFailed, "fields", fields)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: fields,
		})
		return req, false
	}
	return req, true
}

// ValidationErrorResponse names each rejected field
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// queryParam reads a query parameter that must be present
func queryParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	if v := r.URL.Query().Get(name); v != "" {
		return v, true
	}
	respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, name))
	return "", false
}

// intQueryParam reads an optional integer within [lo, hi]
func intQueryParam(w http.ResponseWriter, r *http.Request, name string, def, lo, hi int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return n, true
}

// gameIDParam reads and checks the {id} route parameter, tagging the request logger with it
func gameIDParam(w http.ResponseWriter, r *http.Request) (string, *http.Request, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingGameID)
		return "", r, false
	}
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidGameID)
		return "", r, false
	}
	return id, r.WithContext(logger.WithGameID(r.Context(), id)), true
}

// sessionID reads the X-Session-ID header. Session ids are client generated uuids.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(HeaderSessionID)
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingSessionID)
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSessionID)
		return "", false
	}
	return id, true
}
