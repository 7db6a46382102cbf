package game

import "time"

// Auto-advance bounds
const (
	MinAutoAdvanceInterval     = 100 * time.Millisecond
	MaxAutoAdvanceInterval     = 10 * time.Second
	DefaultAutoAdvanceInterval = time.Second
)

// Operation names used in logs and metrics
const (
	OpAdvanceDay   = "advance_day"
	OpPlant        = "plant"
	OpWater        = "water"
	OpFertilize    = "fertilize"
	OpWaterAll     = "water_all"
	OpFertilizeAll = "fertilize_all"
	OpHarvest      = "harvest"
	OpSellWine     = "sell_wine"
	OpTreat        = "treat_disease"
	OpUpgrade      = "buy_upgrade"
	OpExpand       = "expand"
	OpSupplies     = "buy_supplies"
	OpSetRegion    = "set_region"
	OpSettings     = "update_settings"
)

// Log messages
const (
	LogMsgGameCreated          = "Game created"
	LogMsgGameDeleted          = "Game deleted"
	LogMsgOperationFailed      = "Game operation failed"
	LogMsgGameFinished         = "Game finished"
	LogMsgAutoAdvanceStarted   = "Auto-advance started"
	LogMsgAutoAdvanceStopped   = "Auto-advance stopped"
	LogMsgAutoAdvanceHalted    = "Auto-advance halted by game state"
	LogMsgAutoAdvanceTickError = "Auto-advance tick failed"
)
