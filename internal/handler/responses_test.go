package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
	"github.com/osse101/VineyardSim_Go/internal/wineapi"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"not found", domain.ErrGameNotFound, http.StatusNotFound, ErrMsgGameNotFoundError},
		{"wrapped twice", fmt.Errorf("handler: %w", fmt.Errorf("service: %w", domain.ErrInsufficientFunds)),
			http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{"wrong season", domain.ErrWrongSeason, http.StatusForbidden, ErrMsgWrongSeasonError},
		{"game over", domain.ErrGameOver, http.StatusConflict, ErrMsgGameOverError},
		{"api rejected input", &wineapi.APIError{StatusCode: 422, Message: "bad"}, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"api down", &wineapi.APIError{StatusCode: 503}, http.StatusBadGateway, ErrMsgUpstreamError},
		{"database", fmt.Errorf("%w: timeout", domain.ErrDatabaseError), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"short unmapped", errors.New("boom"), http.StatusInternalServerError, "boom"},
		{"long unmapped", errors.New(strings.Repeat("x", 300)), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleGetCatalog(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleGetCatalog(vineyard.DefaultConfig()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"id":"bordeaux"`)
	assert.Contains(t, body, `"auto_advance_min_ms":100`)
	assert.Contains(t, body, `"varieties"`)
}
