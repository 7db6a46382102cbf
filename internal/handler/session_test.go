package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/preferences"
	"github.com/osse101/VineyardSim_Go/internal/tastingform"
	"github.com/osse101/VineyardSim_Go/mocks"
)

func sessionRouter(h *SessionHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/session/preferences", h.HandleGetPreferences)
	r.Put("/session/preferences", h.HandleSavePreferences)
	r.Get("/session/history", h.HandleGetHistory)
	r.Delete("/session/history", h.HandleClearHistory)
	r.Get("/session/theme", h.HandleGetTheme)
	r.Put("/session/theme", h.HandleSetTheme)
	r.Get("/session/forms/tasting", h.HandleGetTastingForm)
	r.Post("/session/forms/tasting", h.HandleTastingAction)
	r.Delete("/session/forms/tasting", h.HandleDiscardTastingForm)
	return r
}

var sessionHeaders = map[string]string{HeaderSessionID: testSessionID}

func TestSessionHandler_Preferences(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		svc := mocks.NewMockPreferencesService(t)
		svc.On("GetPreferences", mock.Anything, testSessionID).Return(preferences.Defaults(), nil)

		rec := doRequest(t, sessionRouter(NewSessionHandler(svc)), http.MethodGet, "/session/preferences", nil, sessionHeaders)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"units":"metric"`)
	})

	t.Run("Save", func(t *testing.T) {
		prefs := preferences.Defaults()
		prefs.Units = "imperial"

		svc := mocks.NewMockPreferencesService(t)
		svc.On("SavePreferences", mock.Anything, testSessionID, prefs).Return(nil)

		rec := doRequest(t, sessionRouter(NewSessionHandler(svc)), http.MethodPut, "/session/preferences", prefs, sessionHeaders)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgPreferencesSaved)
	})

	t.Run("Save Invalid Units", func(t *testing.T) {
		prefs := preferences.Defaults()
		prefs.Units = "cubits"

		svc := mocks.NewMockPreferencesService(t)

		rec := doRequest(t, sessionRouter(NewSessionHandler(svc)), http.MethodPut, "/session/preferences", prefs, sessionHeaders)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"units"`)
	})

	t.Run("Missing Session", func(t *testing.T) {
		svc := mocks.NewMockPreferencesService(t)

		rec := doRequest(t, sessionRouter(NewSessionHandler(svc)), http.MethodGet, "/session/preferences", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionHandler_HistoryAndTheme(t *testing.T) {
	svc := mocks.NewMockPreferencesService(t)
	svc.On("GetHistory", mock.Anything, testSessionID).Return([]string{"barolo", "rioja"}, nil)
	svc.On("ClearHistory", mock.Anything, testSessionID).Return(nil)
	svc.On("GetTheme", mock.Anything, testSessionID).Return(preferences.ThemeSystem, nil)
	svc.On("SetTheme", mock.Anything, testSessionID, "dark").Return(nil)

	router := sessionRouter(NewSessionHandler(svc))

	rec := doRequest(t, router, http.MethodGet, "/session/history", nil, sessionHeaders)
	assert.JSONEq(t, `{"history":["barolo","rioja"]}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodDelete, "/session/history", nil, sessionHeaders)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/session/theme", nil, sessionHeaders)
	assert.JSONEq(t, `{"theme":"system"}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodPut, "/session/theme", ThemeRequest{Theme: "dark"}, sessionHeaders)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPut, "/session/theme", ThemeRequest{Theme: "neon"}, sessionHeaders)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Must be one of: light, dark, system")
}

func TestSessionHandler_TastingForm(t *testing.T) {
	t.Run("Fresh Form When No Draft", func(t *testing.T) {
		svc := mocks.NewMockPreferencesService(t)
		svc.On("LoadDraft", mock.Anything, testSessionID, TastingFormName, mock.Anything).Return(false, nil)

		rec := doRequest(t, sessionRouter(NewSessionHandler(svc)), http.MethodGet, "/session/forms/tasting", nil, sessionHeaders)

		require.Equal(t, http.StatusOK, rec.Code)
		var state tastingform.State
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		assert.Equal(t, tastingform.StepBasics, state.Step)
	})

	t.Run("Action Applies To Draft And Saves", func(t *testing.T) {
		svc := mocks.NewMockPreferencesService(t)
		svc.On("LoadDraft", mock.Anything, testSessionID, TastingFormName, mock.Anything).
			Run(func(args mock.Arguments) {
				dst := args.Get(3).(*tastingform.State)
				dst.Form.Producer = "Marchesi"
			}).
			Return(true, nil)
		svc.On("SaveDraft", mock.Anything, testSessionID, TastingFormName, mock.MatchedBy(func(s tastingform.State) bool {
			return s.Form.Name == "Barolo" && s.Form.Producer == "Marchesi"
		})).Return()

		rec := doRequest(t, sessionRouter(NewSessionHandler(svc)), http.MethodPost, "/session/forms/tasting",
			`{"type":"set_field","field":"name","value":"Barolo"}`, sessionHeaders)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Barolo"`)
	})

	t.Run("Corrupt Draft Falls Back To Fresh Form", func(t *testing.T) {
		svc := mocks.NewMockPreferencesService(t)
		svc.On("LoadDraft", mock.Anything, testSessionID, TastingFormName, mock.Anything).
			Return(false, domain.ErrInvalidInput)
		svc.On("SaveDraft", mock.Anything, testSessionID, TastingFormName, mock.Anything).Return()

		rec := doRequest(t, sessionRouter(NewSessionHandler(svc)), http.MethodPost, "/session/forms/tasting",
			`{"type":"next"}`, sessionHeaders)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"errors"`)
	})

	t.Run("Unknown Action", func(t *testing.T) {
		svc := mocks.NewMockPreferencesService(t)

		rec := doRequest(t, sessionRouter(NewSessionHandler(svc)), http.MethodPost, "/session/forms/tasting",
			`{"type":"launch"}`, sessionHeaders)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidFormAction)
	})

	t.Run("Discard", func(t *testing.T) {
		svc := mocks.NewMockPreferencesService(t)
		svc.On("DeleteDraft", mock.Anything, testSessionID, TastingFormName).Return(nil)

		rec := doRequest(t, sessionRouter(NewSessionHandler(svc)), http.MethodDelete, "/session/forms/tasting", nil, sessionHeaders)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
