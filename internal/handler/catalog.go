package handler

import (
	"net/http"

	"github.com/osse101/VineyardSim_Go/internal/climate"
	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/game"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
)

// CatalogResponse is the static game data the client renders menus from
type CatalogResponse struct {
	Regions          []climate.Region           `json:"regions"`
	Varieties        []domain.GrapeVariety      `json:"varieties"`
	Seasons          []domain.SeasonInfo        `json:"seasons"`
	Upgrades         map[domain.UpgradeKind]int `json:"upgrade_base_costs"`
	MaxUpgradeLevel  int                        `json:"max_upgrade_level"`
	SpecialWines     []domain.SpecialWine       `json:"special_wines"`
	AnnualCosts      []vineyard.AnnualCost      `json:"annual_costs"`
	WaterPrice       int                        `json:"water_price"`
	FertilizerPrice  int                        `json:"fertilizer_price"`
	AutoAdvanceMinMs int                        `json:"auto_advance_min_ms"`
	AutoAdvanceMaxMs int                        `json:"auto_advance_max_ms"`
}

// HandleGetCatalog serves regions, varieties and prices of the active balance
// @Summary Game catalog
// @Tags games
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func HandleGetCatalog(cfg *vineyard.Config) http.HandlerFunc {
	resp := CatalogResponse{
		Regions:          climate.Regions(),
		Varieties:        cfg.Varieties,
		Seasons:          cfg.Seasons,
		Upgrades:         cfg.UpgradeBaseCosts,
		MaxUpgradeLevel:  domain.MaxUpgradeLevel,
		SpecialWines:     cfg.SpecialWines,
		AnnualCosts:      cfg.AnnualCosts,
		WaterPrice:       cfg.WaterPrice,
		FertilizerPrice:  cfg.FertilizerPrice,
		AutoAdvanceMinMs: int(game.MinAutoAdvanceInterval.Milliseconds()),
		AutoAdvanceMaxMs: int(game.MaxAutoAdvanceInterval.Milliseconds()),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resp)
	}
}
