package preferences_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/database/sqlite"
	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/preferences"
	"github.com/osse101/VineyardSim_Go/mocks"
)

func newSQLiteService(t *testing.T) preferences.Service {
	t.Helper()
	db, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return preferences.NewService(sqlite.NewSessionStateRepository(db))
}

func TestPreferences_DefaultsAndRoundTrip(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	prefs, err := svc.GetPreferences(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, preferences.Defaults(), prefs)

	prefs.Units = "imperial"
	prefs.ShowRegionMap = false
	require.NoError(t, svc.SavePreferences(ctx, "s1", prefs))

	got, err := svc.GetPreferences(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, prefs, got)

	other, err := svc.GetPreferences(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, preferences.Defaults(), other)
}

func TestPreferences_CorruptValueTreatedAsAbsent(t *testing.T) {
	tests := []struct {
		name string
		run  func(svc preferences.Service) (any, error)
		want any
	}{
		{
			name: "preferences",
			run: func(svc preferences.Service) (any, error) {
				return svc.GetPreferences(context.Background(), "s")
			},
			want: preferences.Defaults(),
		},
		{
			name: "history",
			run: func(svc preferences.Service) (any, error) {
				return svc.GetHistory(context.Background(), "s")
			},
			want: []string{},
		},
		{
			name: "theme",
			run: func(svc preferences.Service) (any, error) {
				return svc.GetTheme(context.Background(), "s")
			},
			want: preferences.ThemeSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockSessionStateRepository(t)
			store.On("GetValue", mock.Anything, "s", mock.Anything).Return([]byte("{not json"), nil)

			got, err := tt.run(preferences.NewService(store))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferences_StoreErrorPropagates(t *testing.T) {
	store := mocks.NewMockSessionStateRepository(t)
	store.On("GetValue", mock.Anything, "s", preferences.KeyPreferences).Return(nil, errors.New("disk on fire"))

	_, err := preferences.NewService(store).GetPreferences(context.Background(), "s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), preferences.ErrMsgReadValue)
}

func TestRecordSearch(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	_, err := svc.RecordSearch(ctx, "s", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	for _, q := range []string{"Barolo", "Chablis", "barolo"} {
		_, err := svc.RecordSearch(ctx, "s", q)
		require.NoError(t, err)
	}

	history, err := svc.GetHistory(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []string{"barolo", "Chablis"}, history)

	require.NoError(t, svc.ClearHistory(ctx, "s"))
	history, err = svc.GetHistory(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestPushHistory_Capped(t *testing.T) {
	var history []string
	for i := 0; i < preferences.MaxHistory+5; i++ {
		history = preferences.PushHistory(history, fmt.Sprintf("wine %d", i))
	}

	require.Len(t, history, preferences.MaxHistory)
	assert.Equal(t, "wine 24", history[0])
	assert.Equal(t, "wine 5", history[preferences.MaxHistory-1])
}

func TestTheme(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetTheme(ctx, "s", "neon"), domain.ErrInvalidInput)
	require.NoError(t, svc.SetTheme(ctx, "s", preferences.ThemeDark))

	theme, err := svc.GetTheme(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, preferences.ThemeDark, theme)
}

func TestDrafts(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	type draft struct {
		Name string `json:"name"`
		Step int    `json:"step"`
	}

	var got draft
	ok, err := svc.LoadDraft(ctx, "s", "tasting", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	svc.SaveDraft(ctx, "s", "tasting", draft{Name: "Rioja", Step: 2})
	ok, err = svc.LoadDraft(ctx, "s", "tasting", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, draft{Name: "Rioja", Step: 2}, got)

	require.NoError(t, svc.DeleteDraft(ctx, "s", "tasting"))
	ok, err = svc.LoadDraft(ctx, "s", "tasting", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveDraft_FailureSwallowed(t *testing.T) {
	store := mocks.NewMockSessionStateRepository(t)
	store.On("PutValue", mock.Anything, "s", preferences.KeyDraftPrefix+"tasting", mock.Anything).
		Return(errors.New("read-only"))

	assert.NotPanics(t, func() {
		preferences.NewService(store).SaveDraft(context.Background(), "s", "tasting", map[string]int{"step": 1})
	})
}
