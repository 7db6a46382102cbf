package vineyard

import (
	"time"

	"github.com/osse101/VineyardSim_Go/internal/climate"
	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// NewGameOptions configures a fresh game
type NewGameOptions struct {
	ID        string
	SessionID string
	Region    string
	Seed      int64
	Settings  domain.GameSettings
	Now       time.Time
}

// NewGame builds the starting state: day 1, spring, the initial plots unlocked
func NewGame(cfg *Config, opts NewGameOptions) (*domain.GameState, error) {
	regionInput := opts.Region
	if regionInput == "" {
		regionInput = climate.DefaultRegion
	}
	region, err := climate.ResolveRegion(regionInput)
	if err != nil {
		return nil, err
	}

	plots := make([]domain.Plot, cfg.MaxPlots)
	for i := range plots {
		plots[i] = domain.Plot{
			ID:         i + 1,
			Unlocked:   i < cfg.InitialPlots,
			Water:      cfg.NewPlotWater,
			Fertilizer: cfg.NewPlotFertilizer,
			Health:     100,
		}
	}

	goals := make([]domain.Goal, len(cfg.Goals))
	copy(goals, cfg.Goals)
	for i := range goals {
		goals[i].Current = 0
		goals[i].Completed = false
	}

	weather := climate.WeatherCloudy
	if outcomes := cfg.Weather[region.Family]; len(outcomes) > 0 {
		weather = outcomes[0].Label
	}

	return &domain.GameState{
		ID:          opts.ID,
		SessionID:   opts.SessionID,
		Seed:        opts.Seed,
		Day:         1,
		Region:      region.ID,
		ClimateCode: region.ClimateCode,
		Weather:     weather,
		Plots:       plots,
		Economy: domain.Economy{
			Money:      cfg.StartMoney,
			Water:      cfg.StartWater,
			Fertilizer: cfg.StartFertilizer,
		},
		Wines:           []domain.Wine{},
		ClimateProgress: map[string]int{},
		Upgrades: domain.Upgrades{
			LastPurchaseDay: map[domain.UpgradeKind]int{},
		},
		Goals:     goals,
		Status:    domain.GameStatusPlaying,
		Settings:  opts.Settings,
		CreatedAt: opts.Now,
		UpdatedAt: opts.Now,
	}, nil
}
