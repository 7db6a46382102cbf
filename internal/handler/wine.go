package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/preferences"
	"github.com/osse101/VineyardSim_Go/internal/wineapi"
)

// ImageFormField is the multipart field holding the photo
const ImageFormField = "image"

// MaxSearchQueryLength bounds name searches
const MaxSearchQueryLength = 200

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// WineHandler proxies wine lookups to the remote wine service
type WineHandler struct {
	client wineapi.Client
	prefs  preferences.Service
}

// NewWineHandler creates a new wine handler
func NewWineHandler(client wineapi.Client, prefs preferences.Service) *WineHandler {
	return &WineHandler{client: client, prefs: prefs}
}

// HandleSearch looks wines up by name and records the query in the session history
// @Summary Search wines by name
// @Tags wines
// @Produce json
// @Param q query string true "Wine name"
// @Param X-Session-ID header string false "Browser session id; records the search in history"
// @Success 200 {object} wineapi.SearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /wines/search [get]
func (h *WineHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := queryParam(w, r, "q")
	if !ok {
		return
	}
	query = strings.TrimSpace(query)
	if query == "" || len(query) > MaxSearchQueryLength {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
		return
	}

	result, err := h.client.SearchByName(r.Context(), query)
	if err != nil {
		respondServiceError(w, r, "Search wines", err)
		return
	}

	// History is best effort; a missing or bad session id just skips it
	if sid := r.Header.Get(HeaderSessionID); sid != "" {
		if _, err := uuid.Parse(sid); err == nil {
			if _, err := h.prefs.RecordSearch(r.Context(), sid, query); err != nil {
				logger.FromContext(r.Context()).Warn("Failed to record search", "error", err)
			}
		}
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleSearchImage identifies a wine from a label photo
// @Summary Search wines by label photo
// @Tags wines
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Label photo (jpeg, png or webp, up to 5MB)"
// @Success 200 {object} wineapi.SearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /wines/search-image [post]
func (h *WineHandler) HandleSearchImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, wineapi.MaxImageBytes+1<<10)

	file, _, err := r.FormFile(ImageFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgImageTooLarge)
			return
		}
		respondError(w, http.StatusBadRequest, ErrMsgImageRequired)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, wineapi.MaxImageBytes+1))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgImageRequired)
		return
	}
	if len(image) > wineapi.MaxImageBytes {
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgImageTooLarge)
		return
	}
	if len(image) == 0 {
		respondError(w, http.StatusBadRequest, ErrMsgImageRequired)
		return
	}

	contentType := http.DetectContentType(image)
	if !allowedImageTypes[contentType] {
		respondError(w, http.StatusBadRequest, ErrMsgUnsupportedType)
		return
	}

	result, err := h.client.SearchByImage(r.Context(), image, contentType)
	if err != nil {
		respondServiceError(w, r, "Search wines by image", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleStats returns usage statistics of the wine service
// @Summary Wine service statistics
// @Tags wines
// @Produce json
// @Success 200 {object} wineapi.Stats
// @Failure 502 {object} ErrorResponse
// @Router /stats [get]
func (h *WineHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.client.GetStats(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get stats", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
