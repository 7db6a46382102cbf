package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Game errors
	ErrMsgGameNotFound = "game not found"
	ErrMsgGameOver     = "game is over"

	// Resource errors
	ErrMsgInsufficientFunds      = "insufficient funds"
	ErrMsgInsufficientWater      = "insufficient water"
	ErrMsgInsufficientFertilizer = "insufficient fertilizer"

	// Plot errors
	ErrMsgPlotNotFound     = "plot not found"
	ErrMsgPlotLocked       = "plot is locked"
	ErrMsgPlotOccupied     = "plot is already planted"
	ErrMsgPlotEmpty        = "plot is not planted"
	ErrMsgNotHarvestable   = "plot is not ready for harvest"
	ErrMsgNotDiseased      = "plot is not diseased"
	ErrMsgMaxPlotsReached  = "vineyard is at maximum size"
	ErrMsgVarietyNotFound  = "grape variety not found"
	ErrMsgRegionNotFound   = "region not found"
	ErrMsgWineNotFound     = "wine not found"
	ErrMsgInvalidHarvest   = "invalid harvest mode"
	ErrMsgNothingToProcess = "no plot needs this action"

	// Timing errors
	ErrMsgWrongSeason          = "not possible in the current season"
	ErrMsgConfirmationRequired = "confirmation required"
	ErrMsgUpgradeMaxed         = "upgrade is at maximum level"
	ErrMsgUpgradeUsedToday     = "upgrade already purchased today"
	ErrMsgInvalidUpgrade       = "invalid upgrade"
	ErrMsgMasteryRequired      = "climate mastery required"

	// Auto-advance errors
	ErrMsgAutoAdvanceRunning = "auto-advance already running"
	ErrMsgAutoAdvanceStopped = "auto-advance is not running"

	// Quiz errors
	ErrMsgQuizNotFound = "quiz session not found"
	ErrMsgQuizFinished = "quiz is already finished"

	// External API errors
	ErrMsgUpstreamUnavailable = "wine service unavailable"

	// Database/System errors
	ErrMsgDatabaseError   = "database error"
	ErrMsgVersionConflict = "game was modified concurrently"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Game errors
	ErrGameNotFound = errors.New(ErrMsgGameNotFound)
	ErrGameOver     = errors.New(ErrMsgGameOver)

	// Resource errors
	ErrInsufficientFunds      = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientWater      = errors.New(ErrMsgInsufficientWater)
	ErrInsufficientFertilizer = errors.New(ErrMsgInsufficientFertilizer)

	// Plot errors
	ErrPlotNotFound     = errors.New(ErrMsgPlotNotFound)
	ErrPlotLocked       = errors.New(ErrMsgPlotLocked)
	ErrPlotOccupied     = errors.New(ErrMsgPlotOccupied)
	ErrPlotEmpty        = errors.New(ErrMsgPlotEmpty)
	ErrNotHarvestable   = errors.New(ErrMsgNotHarvestable)
	ErrNotDiseased      = errors.New(ErrMsgNotDiseased)
	ErrMaxPlotsReached  = errors.New(ErrMsgMaxPlotsReached)
	ErrVarietyNotFound  = errors.New(ErrMsgVarietyNotFound)
	ErrRegionNotFound   = errors.New(ErrMsgRegionNotFound)
	ErrWineNotFound     = errors.New(ErrMsgWineNotFound)
	ErrInvalidHarvest   = errors.New(ErrMsgInvalidHarvest)
	ErrNothingToProcess = errors.New(ErrMsgNothingToProcess)

	// Timing errors
	ErrWrongSeason          = errors.New(ErrMsgWrongSeason)
	ErrConfirmationRequired = errors.New(ErrMsgConfirmationRequired)
	ErrUpgradeMaxed         = errors.New(ErrMsgUpgradeMaxed)
	ErrUpgradeUsedToday     = errors.New(ErrMsgUpgradeUsedToday)
	ErrInvalidUpgrade       = errors.New(ErrMsgInvalidUpgrade)
	ErrMasteryRequired      = errors.New(ErrMsgMasteryRequired)

	// Auto-advance errors
	ErrAutoAdvanceRunning = errors.New(ErrMsgAutoAdvanceRunning)
	ErrAutoAdvanceStopped = errors.New(ErrMsgAutoAdvanceStopped)

	// Quiz errors
	ErrQuizNotFound = errors.New(ErrMsgQuizNotFound)
	ErrQuizFinished = errors.New(ErrMsgQuizFinished)

	// External API errors
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)

	// Database/System errors
	ErrDatabaseError   = errors.New(ErrMsgDatabaseError)
	ErrVersionConflict = errors.New(ErrMsgVersionConflict)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
