// Package preferences keeps per-session state: preferences, search history,
// theme and form drafts. Values are stored as JSON; anything unreadable is
// treated as if it had never been written.
package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/repository"
)

// Preferences are the player's display and gameplay choices
type Preferences struct {
	ShowTastingNotes   bool               `json:"show_tasting_notes"`
	ShowRegionMap      bool               `json:"show_region_map"`
	Units              string             `json:"units" validate:"oneof=metric imperial"`
	DefaultHarvestMode domain.HarvestMode `json:"default_harvest_mode" validate:"oneof=raw wine special"`
	AutoCoverDisasters bool               `json:"auto_cover_disasters"`
	AutoAdvanceMs      int                `json:"auto_advance_ms" validate:"min=0,max=10000"`
}

// Defaults returns the preferences of a new session
func Defaults() Preferences {
	return Preferences{
		ShowTastingNotes:   true,
		ShowRegionMap:      true,
		Units:              "metric",
		DefaultHarvestMode: domain.HarvestMakeWine,
		AutoAdvanceMs:      1000,
	}
}

// Service defines session-local state operations
type Service interface {
	GetPreferences(ctx context.Context, sessionID string) (Preferences, error)
	SavePreferences(ctx context.Context, sessionID string, prefs Preferences) error

	GetHistory(ctx context.Context, sessionID string) ([]string, error)
	RecordSearch(ctx context.Context, sessionID, query string) ([]string, error)
	ClearHistory(ctx context.Context, sessionID string) error

	GetTheme(ctx context.Context, sessionID string) (string, error)
	SetTheme(ctx context.Context, sessionID, theme string) error

	// LoadDraft decodes a saved draft into dst and reports whether one existed
	LoadDraft(ctx context.Context, sessionID, form string, dst any) (bool, error)
	// SaveDraft stores a draft on a best-effort basis; failures are only logged
	SaveDraft(ctx context.Context, sessionID, form string, draft any)
	DeleteDraft(ctx context.Context, sessionID, form string) error
}

type service struct {
	store repository.SessionState
}

// NewService creates a new preferences service
func NewService(store repository.SessionState) Service {
	return &service{store: store}
}

// load decodes key into dst. Missing and corrupt values both report false.
func (s *service) load(ctx context.Context, sessionID, key string, dst any) (bool, error) {
	raw, err := s.store.GetValue(ctx, sessionID, key)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgReadValue, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.FromContext(ctx).Warn(LogMsgCorruptValue, "session_id", sessionID, "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *service) save(ctx context.Context, sessionID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeValue, err)
	}
	if err := s.store.PutValue(ctx, sessionID, key, raw); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteValue, err)
	}
	return nil
}

func (s *service) GetPreferences(ctx context.Context, sessionID string) (Preferences, error) {
	prefs := Defaults()
	var stored Preferences
	ok, err := s.load(ctx, sessionID, KeyPreferences, &stored)
	if err != nil {
		return prefs, err
	}
	if ok {
		prefs = stored
	}
	return prefs, nil
}

func (s *service) SavePreferences(ctx context.Context, sessionID string, prefs Preferences) error {
	if err := s.save(ctx, sessionID, KeyPreferences, prefs); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgPreferencesSaved, "session_id", sessionID)
	return nil
}

func (s *service) GetHistory(ctx context.Context, sessionID string) ([]string, error) {
	var history []string
	if _, err := s.load(ctx, sessionID, KeySearchHistory, &history); err != nil {
		return nil, err
	}
	if history == nil {
		history = []string{}
	}
	return history, nil
}

func (s *service) RecordSearch(ctx context.Context, sessionID, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", domain.ErrInvalidInput)
	}

	history, err := s.GetHistory(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	history = PushHistory(history, query)

	if err := s.save(ctx, sessionID, KeySearchHistory, history); err != nil {
		return nil, err
	}
	return history, nil
}

// PushHistory puts query first, drops case-insensitive duplicates and caps the list
func PushHistory(history []string, query string) []string {
	out := make([]string, 0, MaxHistory)
	out = append(out, query)
	for _, h := range history {
		if len(out) == MaxHistory {
			break
		}
		if !strings.EqualFold(h, query) {
			out = append(out, h)
		}
	}
	return out
}

func (s *service) ClearHistory(ctx context.Context, sessionID string) error {
	return s.store.DeleteValue(ctx, sessionID, KeySearchHistory)
}

func (s *service) GetTheme(ctx context.Context, sessionID string) (string, error) {
	theme := ThemeSystem
	var stored string
	ok, err := s.load(ctx, sessionID, KeyTheme, &stored)
	if err != nil {
		return theme, err
	}
	if ok && validTheme(stored) {
		theme = stored
	}
	return theme, nil
}

func (s *service) SetTheme(ctx context.Context, sessionID, theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("%w: unknown theme %q", domain.ErrInvalidInput, theme)
	}
	return s.save(ctx, sessionID, KeyTheme, theme)
}

func validTheme(theme string) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

func (s *service) LoadDraft(ctx context.Context, sessionID, form string, dst any) (bool, error) {
	return s.load(ctx, sessionID, KeyDraftPrefix+form, dst)
}

func (s *service) SaveDraft(ctx context.Context, sessionID, form string, draft any) {
	if err := s.save(ctx, sessionID, KeyDraftPrefix+form, draft); err != nil {
		logger.FromContext(ctx).Warn(LogMsgDraftSaveFailed, "session_id", sessionID, "form", form, "error", err)
	}
}

func (s *service) DeleteDraft(ctx context.Context, sessionID, form string) error {
	return s.store.DeleteValue(ctx, sessionID, KeyDraftPrefix+form)
}
