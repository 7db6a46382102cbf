package vineyard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

func TestPlant(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(s *domain.GameState)
		plotID    int
		variety   string
		confirm   bool
		wantErr   error
		wantMoney int
	}{
		{name: "success in spring", plotID: 1, variety: "merlot", wantMoney: 880},
		{name: "unknown plot", plotID: 42, variety: "merlot", wantErr: domain.ErrPlotNotFound, wantMoney: 1000},
		{name: "locked plot", plotID: 5, variety: "merlot", wantErr: domain.ErrPlotLocked, wantMoney: 1000},
		{name: "unknown variety", plotID: 1, variety: "zinfandel", wantErr: domain.ErrVarietyNotFound, wantMoney: 1000},
		{
			name:      "occupied",
			setup:     func(s *domain.GameState) { plantDirect(s.Plot(1), "merlot", 5) },
			plotID:    1,
			variety:   "merlot",
			wantErr:   domain.ErrPlotOccupied,
			wantMoney: 1000,
		},
		{
			name:      "insufficient funds",
			setup:     func(s *domain.GameState) { s.Economy.Money = 100 },
			plotID:    1,
			variety:   "merlot",
			wantErr:   domain.ErrInsufficientFunds,
			wantMoney: 100,
		},
		{
			name:      "summer needs confirmation",
			setup:     func(s *domain.GameState) { s.Day = 40 },
			plotID:    1,
			variety:   "merlot",
			wantErr:   domain.ErrConfirmationRequired,
			wantMoney: 1000,
		},
		{
			name:      "summer confirmed",
			setup:     func(s *domain.GameState) { s.Day = 40 },
			plotID:    1,
			variety:   "merlot",
			confirm:   true,
			wantMoney: 880,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			s := e.State()
			if tt.setup != nil {
				tt.setup(s)
			}

			err := e.Plant(tt.plotID, tt.variety, tt.confirm)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				p := s.Plot(tt.plotID)
				assert.True(t, p.IsPlanted)
				assert.Equal(t, tt.variety, p.VarietyID)
				assert.Equal(t, s.Day, p.PlantedDay)
				assert.Equal(t, domain.AbsoluteSeason(s.Day), p.PlantedSeason)
				assert.Zero(t, p.Growth)
			}
			assert.Equal(t, tt.wantMoney, s.Economy.Money)
		})
	}
}

func TestWaterAndFertilize(t *testing.T) {
	e, cfg := newTestEngine(t)
	s := e.State()
	p := s.Plot(1)

	assert.ErrorIs(t, e.Water(1), domain.ErrPlotEmpty)

	plantDirect(p, "merlot", 0)
	require.NoError(t, e.Water(1))
	assert.InDelta(t, 80, p.Water, 1e-9)
	assert.Equal(t, 100-cfg.WaterPerAction, s.Economy.Water)

	require.NoError(t, e.Water(1))
	assert.InDelta(t, 100, p.Water, 1e-9)

	require.NoError(t, e.Fertilize(1))
	assert.InDelta(t, 55, p.Fertilizer, 1e-9)
	assert.Equal(t, 50-cfg.FertilizerPerAction, s.Economy.Fertilizer)

	s.Economy.Water = 5
	s.Economy.Fertilizer = 1
	assert.ErrorIs(t, e.Water(1), domain.ErrInsufficientWater)
	assert.ErrorIs(t, e.Fertilize(1), domain.ErrInsufficientFertilizer)
	assert.Equal(t, 5, s.Economy.Water)
}

func TestWaterAll(t *testing.T) {
	e, _ := newTestEngine(t)
	s := e.State()

	_, err := e.WaterAll()
	assert.ErrorIs(t, err, domain.ErrNothingToProcess)

	plantDirect(s.Plot(1), "merlot", 0)
	plantDirect(s.Plot(2), "merlot", 0)
	plantDirect(s.Plot(3), "merlot", 0)
	s.Plot(3).Water = 100

	n, err := e.WaterAll()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 80, s.Economy.Water)
	assert.InDelta(t, 80, s.Plot(1).Water, 1e-9)
	assert.InDelta(t, 100, s.Plot(3).Water, 1e-9)
}

func TestWaterAll_AllOrNothing(t *testing.T) {
	e, _ := newTestEngine(t)
	s := e.State()
	plantDirect(s.Plot(1), "merlot", 0)
	plantDirect(s.Plot(2), "merlot", 0)
	s.Economy.Water = 15

	_, err := e.WaterAll()
	assert.ErrorIs(t, err, domain.ErrInsufficientWater)
	assert.Equal(t, 15, s.Economy.Water)
	assert.InDelta(t, 50, s.Plot(1).Water, 1e-9)
}

func TestFertilizeAll(t *testing.T) {
	e, _ := newTestEngine(t)
	s := e.State()
	plantDirect(s.Plot(1), "merlot", 0)
	plantDirect(s.Plot(4), "merlot", 0)

	n, err := e.FertilizeAll()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 40, s.Economy.Fertilizer)
	assert.InDelta(t, 55, s.Plot(4).Fertilizer, 1e-9)

	s.Economy.Fertilizer = 9
	_, err = e.FertilizeAll()
	assert.ErrorIs(t, err, domain.ErrInsufficientFertilizer)
}

func TestTreatDisease(t *testing.T) {
	e, _ := newTestEngine(t)
	s := e.State()
	p := s.Plot(1)
	plantDirect(p, "merlot", 30)

	assert.ErrorIs(t, e.TreatDisease(1), domain.ErrNotDiseased)

	p.Disease = "phylloxera"
	s.Economy.Money = 100
	assert.ErrorIs(t, e.TreatDisease(1), domain.ErrInsufficientFunds)
	assert.Equal(t, "phylloxera", p.Disease)

	s.Economy.Money = 1000
	require.NoError(t, e.TreatDisease(1))
	assert.False(t, p.IsDiseased())
	assert.Equal(t, 850, s.Economy.Money)
}

func TestSetRegion(t *testing.T) {
	e, _ := newTestEngine(t)
	s := e.State()

	require.NoError(t, e.SetRegion("Alsace"))
	assert.Equal(t, "alsace", s.Region)
	assert.Equal(t, "Dfb", s.ClimateCode)
	assert.NotEmpty(t, s.Weather)

	assert.ErrorIs(t, e.SetRegion("nowhere-land"), domain.ErrRegionNotFound)
	assert.Equal(t, "alsace", s.Region)
}
