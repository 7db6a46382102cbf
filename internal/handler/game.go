package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/game"
)

// GameHandler handles vineyard game endpoints
type GameHandler struct {
	service game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

// CreateGameRequest is the request body for starting a vineyard
type CreateGameRequest struct {
	Region             string `json:"region" validate:"max=64"`
	Seed               *int64 `json:"seed,omitempty"`
	AutoCoverDisasters bool   `json:"auto_cover_disasters"`
}

// PlotRequest targets a single plot
type PlotRequest struct {
	PlotID int `json:"plot_id" validate:"required,min=1"`
}

// PlantRequest is the request body for planting a vine
type PlantRequest struct {
	PlotID    int    `json:"plot_id" validate:"required,min=1"`
	VarietyID string `json:"variety_id" validate:"required,max=64"`
	Confirm   bool   `json:"confirm"`
}

// HarvestRequest is the request body for harvesting a plot
type HarvestRequest struct {
	PlotID int    `json:"plot_id" validate:"required,min=1"`
	Mode   string `json:"mode" validate:"required,harvest_mode"`
}

// SellWineRequest is the request body for selling a bottled wine
type SellWineRequest struct {
	WineID string `json:"wine_id" validate:"required,uuid"`
}

// UpgradeRequest is the request body for buying an upgrade
type UpgradeRequest struct {
	Kind string `json:"kind" validate:"required,upgrade_kind"`
}

// SuppliesRequest is the request body for buying water and fertilizer
type SuppliesRequest struct {
	Water      int `json:"water" validate:"min=0,max=1000"`
	Fertilizer int `json:"fertilizer" validate:"min=0,max=1000"`
}

// RegionRequest is the request body for relocating the vineyard
type RegionRequest struct {
	Region string `json:"region" validate:"required,max=64"`
}

// SettingsRequest is the request body for per-game settings
type SettingsRequest struct {
	AutoCoverDisasters bool `json:"auto_cover_disasters"`
}

// AutoAdvanceRequest is the request body for starting auto-advance
type AutoAdvanceRequest struct {
	IntervalMs int `json:"interval_ms" validate:"required,min=100,max=10000"`
}

// GameListResponse wraps the games of one session
type GameListResponse struct {
	Games []domain.GameSummary `json:"games"`
}

// MasteryResponse lists climate mastery levels of a game
type MasteryResponse struct {
	Mastery []domain.MasteryLevel `json:"mastery"`
}

// handleTurnAction decodes REQ, runs one game operation and writes its TurnResult
func handleTurnAction[REQ any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(ctx context.Context, gameID string, req REQ) (*domain.TurnResult, error),
) {
	gameID, r, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[REQ](w, r, opName)
	if !ok {
		return
	}

	result, err := action(r.Context(), gameID, req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// handleBareTurn runs a game operation that takes no request body
func handleBareTurn(
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(ctx context.Context, gameID string) (*domain.TurnResult, error),
) {
	gameID, r, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	result, err := action(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleCreate starts a new game for the calling session
// @Summary Start a new vineyard
// @Description Creates a game in the chosen region (fuzzy matched). Omitting seed picks a random one.
// @Tags games
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Param request body CreateGameRequest true "New game options"
// @Success 201 {object} domain.GameState
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /games [post]
func (h *GameHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[CreateGameRequest](w, r, "Create game")
	if !ok {
		return
	}

	state, err := h.service.CreateGame(r.Context(), game.CreateGameRequest{
		SessionID:          sid,
		Region:             req.Region,
		Seed:               req.Seed,
		AutoCoverDisasters: req.AutoCoverDisasters,
	})
	if err != nil {
		respondServiceError(w, r, "Create game", err)
		return
	}

	respondJSON(w, http.StatusCreated, state)
}

// HandleList lists the games of the calling session
// @Summary List games
// @Tags games
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} GameListResponse
// @Failure 400 {object} ErrorResponse
// @Router /games [get]
func (h *GameHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	games, err := h.service.ListGames(r.Context(), sid)
	if err != nil {
		respondServiceError(w, r, "List games", err)
		return
	}
	if games == nil {
		games = []domain.GameSummary{}
	}

	respondJSON(w, http.StatusOK, GameListResponse{Games: games})
}

// HandleGet returns the full state of a game
// @Summary Get game state
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} domain.GameState
// @Failure 404 {object} ErrorResponse
// @Router /games/{id} [get]
func (h *GameHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	gameID, r, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	state, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, "Get game", err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// HandleDelete removes a game
// @Summary Delete game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id} [delete]
func (h *GameHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	gameID, r, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteGame(r.Context(), gameID); err != nil {
		respondServiceError(w, r, "Delete game", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameDeleted})
}

// HandleMastery returns the mastery level of every climate
// @Summary Climate mastery
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} MasteryResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/mastery [get]
func (h *GameHandler) HandleMastery(w http.ResponseWriter, r *http.Request) {
	gameID, r, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	levels, err := h.service.GetMastery(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, "Get mastery", err)
		return
	}

	respondJSON(w, http.StatusOK, MasteryResponse{Mastery: levels})
}

// HandleAdvance advances the game by one day
// @Summary Advance one day
// @Description Runs the day-advance engine: weather, growth, disease, disasters, payments and goals
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} domain.TurnResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Game over or concurrent modification"
// @Router /games/{id}/advance [post]
func (h *GameHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	handleBareTurn(w, r, "Advance day", h.service.AdvanceDay)
}

// HandlePlant plants a variety on a plot
// @Summary Plant a vine
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body PlantRequest true "Plot and variety"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Off-season planting needs confirmation"
// @Router /games/{id}/plant [post]
func (h *GameHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Plant", func(ctx context.Context, id string, req PlantRequest) (*domain.TurnResult, error) {
		return h.service.Plant(ctx, id, req.PlotID, req.VarietyID, req.Confirm)
	})
}

// HandleWater waters one plot
// @Summary Water a plot
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body PlotRequest true "Plot"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Router /games/{id}/water [post]
func (h *GameHandler) HandleWater(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Water", func(ctx context.Context, id string, req PlotRequest) (*domain.TurnResult, error) {
		return h.service.Water(ctx, id, req.PlotID)
	})
}

// HandleFertilize fertilizes one plot
// @Summary Fertilize a plot
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body PlotRequest true "Plot"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Router /games/{id}/fertilize [post]
func (h *GameHandler) HandleFertilize(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Fertilize", func(ctx context.Context, id string, req PlotRequest) (*domain.TurnResult, error) {
		return h.service.Fertilize(ctx, id, req.PlotID)
	})
}

// HandleWaterAll waters every planted plot that needs it
// @Summary Water all plots
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Router /games/{id}/water-all [post]
func (h *GameHandler) HandleWaterAll(w http.ResponseWriter, r *http.Request) {
	handleBareTurn(w, r, "Water all", h.service.WaterAll)
}

// HandleFertilizeAll fertilizes every planted plot that needs it
// @Summary Fertilize all plots
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Router /games/{id}/fertilize-all [post]
func (h *GameHandler) HandleFertilizeAll(w http.ResponseWriter, r *http.Request) {
	handleBareTurn(w, r, "Fertilize all", h.service.FertilizeAll)
}

// HandleHarvest harvests a ripe plot as raw grapes, wine or special wine
// @Summary Harvest a plot
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body HarvestRequest true "Plot and harvest mode"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Wrong season or mastery required"
// @Router /games/{id}/harvest [post]
func (h *GameHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Harvest", func(ctx context.Context, id string, req HarvestRequest) (*domain.TurnResult, error) {
		return h.service.Harvest(ctx, id, req.PlotID, domain.HarvestMode(req.Mode))
	})
}

// HandleSellWine sells a bottled wine from the cellar
// @Summary Sell a wine
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body SellWineRequest true "Wine"
// @Success 200 {object} domain.TurnResult
// @Failure 404 {object} ErrorResponse
// @Router /games/{id}/sell [post]
func (h *GameHandler) HandleSellWine(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Sell wine", func(ctx context.Context, id string, req SellWineRequest) (*domain.TurnResult, error) {
		return h.service.SellWine(ctx, id, req.WineID)
	})
}

// HandleTreat treats a diseased plot
// @Summary Treat disease
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body PlotRequest true "Plot"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Router /games/{id}/treat [post]
func (h *GameHandler) HandleTreat(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Treat disease", func(ctx context.Context, id string, req PlotRequest) (*domain.TurnResult, error) {
		return h.service.TreatDisease(ctx, id, req.PlotID)
	})
}

// HandleUpgrade buys the next level of an upgrade
// @Summary Buy an upgrade
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body UpgradeRequest true "Upgrade kind"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Already bought today"
// @Router /games/{id}/upgrade [post]
func (h *GameHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Buy upgrade", func(ctx context.Context, id string, req UpgradeRequest) (*domain.TurnResult, error) {
		return h.service.BuyUpgrade(ctx, id, domain.UpgradeKind(req.Kind))
	})
}

// HandleExpand unlocks the next plot
// @Summary Expand the vineyard
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Router /games/{id}/expand [post]
func (h *GameHandler) HandleExpand(w http.ResponseWriter, r *http.Request) {
	handleBareTurn(w, r, "Expand", h.service.Expand)
}

// HandleSupplies buys water and fertilizer
// @Summary Buy supplies
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body SuppliesRequest true "Quantities"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Router /games/{id}/supplies [post]
func (h *GameHandler) HandleSupplies(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Buy supplies", func(ctx context.Context, id string, req SuppliesRequest) (*domain.TurnResult, error) {
		return h.service.BuySupplies(ctx, id, req.Water, req.Fertilizer)
	})
}

// HandleRegion relocates the vineyard
// @Summary Change region
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body RegionRequest true "Region name"
// @Success 200 {object} domain.TurnResult
// @Failure 400 {object} ErrorResponse
// @Router /games/{id}/region [post]
func (h *GameHandler) HandleRegion(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Set region", func(ctx context.Context, id string, req RegionRequest) (*domain.TurnResult, error) {
		return h.service.SetRegion(ctx, id, req.Region)
	})
}

// HandleSettings updates per-game settings
// @Summary Update game settings
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body SettingsRequest true "Settings"
// @Success 200 {object} domain.TurnResult
// @Router /games/{id}/settings [put]
func (h *GameHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	handleTurnAction(w, r, "Update settings", func(ctx context.Context, id string, req SettingsRequest) (*domain.TurnResult, error) {
		return h.service.UpdateSettings(ctx, id, req.AutoCoverDisasters)
	})
}

// HandleStartAutoAdvance starts advancing the game on a timer
// @Summary Start auto-advance
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body AutoAdvanceRequest true "Interval"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse "Already running"
// @Router /games/{id}/auto-advance [post]
func (h *GameHandler) HandleStartAutoAdvance(w http.ResponseWriter, r *http.Request) {
	gameID, r, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[AutoAdvanceRequest](w, r, "Start auto-advance")
	if !ok {
		return
	}

	interval := time.Duration(req.IntervalMs) * time.Millisecond
	if err := h.service.StartAutoAdvance(r.Context(), gameID, interval); err != nil {
		respondServiceError(w, r, "Start auto-advance", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAutoAdvanceStarted})
}

// HandleStopAutoAdvance stops the auto-advance timer
// @Summary Stop auto-advance
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse "Not running"
// @Router /games/{id}/auto-advance [delete]
func (h *GameHandler) HandleStopAutoAdvance(w http.ResponseWriter, r *http.Request) {
	gameID, r, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.StopAutoAdvance(r.Context(), gameID); err != nil {
		respondServiceError(w, r, "Stop auto-advance", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAutoAdvanceStopped})
}
