package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024)) // Pre-allocate 1KB
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before any header is written
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(LogMsgServiceCallFailed, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceCallFailed, "operation", opName, "error", err, "status", statusCode)
	}

	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to players
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."

	// Game messages
	ErrMsgGameNotFoundError = "Game not found"
	ErrMsgGameOverError     = "This game has ended. Start a new vineyard!"
	ErrMsgConflictError     = "The game changed while you were acting. Please retry."

	// Resource messages
	ErrMsgNotEnoughMoneyError      = "Not enough money"
	ErrMsgNotEnoughWaterError      = "Not enough water"
	ErrMsgNotEnoughFertilizerError = "Not enough fertilizer"

	// Plot messages
	ErrMsgPlotNotFoundError     = "Plot not found"
	ErrMsgPlotLockedError       = "That plot is locked. Expand your vineyard first"
	ErrMsgPlotOccupiedError     = "That plot is already planted"
	ErrMsgPlotEmptyError        = "Nothing is planted there"
	ErrMsgNotHarvestableError   = "Those grapes are not ready yet"
	ErrMsgNotDiseasedError      = "Those vines are healthy"
	ErrMsgMaxPlotsError         = "Your vineyard cannot grow any larger"
	ErrMsgVarietyNotFoundError  = "Unknown grape variety"
	ErrMsgRegionNotFoundError   = "Unknown wine region"
	ErrMsgWineNotFoundError     = "That wine is not in your cellar"
	ErrMsgInvalidHarvestError   = "Unknown harvest mode"
	ErrMsgNothingToProcessError = "No plot needs that right now"

	// Timing messages
	ErrMsgWrongSeasonError          = "Not possible in this season"
	ErrMsgConfirmationRequiredError = "Planting now is risky. Confirm to continue"
	ErrMsgUpgradeMaxedError         = "That upgrade is already at its highest level"
	ErrMsgUpgradeUsedTodayError     = "You already bought that upgrade today"
	ErrMsgInvalidUpgradeError       = "Unknown upgrade"
	ErrMsgMasteryRequiredError      = "Master this climate to make its special wine"

	// Auto-advance messages
	ErrMsgAutoAdvanceRunningError = "Auto-advance is already running"
	ErrMsgAutoAdvanceStoppedError = "Auto-advance is not running"

	// Quiz messages
	ErrMsgQuizNotFoundError = "No quiz in progress"
	ErrMsgQuizFinishedError = "This quiz is already finished"

	// Upstream messages
	ErrMsgUpstreamError = "The wine service is unavailable. Please try again later."
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// serviceErrorMappings is checked in order; the first match wins
var serviceErrorMappings = []errorMapping{
	{domain.ErrGameNotFound, http.StatusNotFound, ErrMsgGameNotFoundError},
	{domain.ErrGameOver, http.StatusConflict, ErrMsgGameOverError},
	{domain.ErrVersionConflict, http.StatusConflict, ErrMsgConflictError},

	{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
	{domain.ErrInsufficientWater, http.StatusBadRequest, ErrMsgNotEnoughWaterError},
	{domain.ErrInsufficientFertilizer, http.StatusBadRequest, ErrMsgNotEnoughFertilizerError},

	{domain.ErrPlotNotFound, http.StatusNotFound, ErrMsgPlotNotFoundError},
	{domain.ErrPlotLocked, http.StatusBadRequest, ErrMsgPlotLockedError},
	{domain.ErrPlotOccupied, http.StatusBadRequest, ErrMsgPlotOccupiedError},
	{domain.ErrPlotEmpty, http.StatusBadRequest, ErrMsgPlotEmptyError},
	{domain.ErrNotHarvestable, http.StatusBadRequest, ErrMsgNotHarvestableError},
	{domain.ErrNotDiseased, http.StatusBadRequest, ErrMsgNotDiseasedError},
	{domain.ErrMaxPlotsReached, http.StatusBadRequest, ErrMsgMaxPlotsError},
	{domain.ErrVarietyNotFound, http.StatusBadRequest, ErrMsgVarietyNotFoundError},
	{domain.ErrRegionNotFound, http.StatusBadRequest, ErrMsgRegionNotFoundError},
	{domain.ErrWineNotFound, http.StatusNotFound, ErrMsgWineNotFoundError},
	{domain.ErrInvalidHarvest, http.StatusBadRequest, ErrMsgInvalidHarvestError},
	{domain.ErrNothingToProcess, http.StatusBadRequest, ErrMsgNothingToProcessError},

	{domain.ErrWrongSeason, http.StatusForbidden, ErrMsgWrongSeasonError},
	{domain.ErrConfirmationRequired, http.StatusForbidden, ErrMsgConfirmationRequiredError},
	{domain.ErrUpgradeMaxed, http.StatusBadRequest, ErrMsgUpgradeMaxedError},
	{domain.ErrUpgradeUsedToday, http.StatusTooManyRequests, ErrMsgUpgradeUsedTodayError},
	{domain.ErrInvalidUpgrade, http.StatusBadRequest, ErrMsgInvalidUpgradeError},
	{domain.ErrMasteryRequired, http.StatusForbidden, ErrMsgMasteryRequiredError},

	{domain.ErrAutoAdvanceRunning, http.StatusConflict, ErrMsgAutoAdvanceRunningError},
	{domain.ErrAutoAdvanceStopped, http.StatusConflict, ErrMsgAutoAdvanceStoppedError},

	{domain.ErrQuizNotFound, http.StatusNotFound, ErrMsgQuizNotFoundError},
	{domain.ErrQuizFinished, http.StatusConflict, ErrMsgQuizFinishedError},

	{domain.ErrUpstreamUnavailable, http.StatusBadGateway, ErrMsgUpstreamError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
	{domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that players can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	for _, m := range serviceErrorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}

	// Return short unmapped messages as-is; long ones are likely driver or system text
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
