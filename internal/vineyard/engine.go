// Package vineyard implements the day-cycle simulation and every player transaction.
// It is pure logic: no storage, transport or clocks.
package vineyard

import (
	"fmt"
	"math/rand"

	"github.com/dustin/go-humanize"

	"github.com/osse101/VineyardSim_Go/internal/climate"
	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// Rand is the random source the engine draws from
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a deterministic source for one operation of a game
func NewRand(seed, tick int64) *rand.Rand {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewSource(seed ^ (tick * 0x5DEECE66D)))
}

// Decider answers the questions the simulation would put to the player mid-turn
type Decider interface {
	// CoverDisaster reports whether to pay cost to spare the listed plots
	CoverDisaster(disaster domain.Disaster, plotIDs []int, cost int, money int) bool
}

// DeclineCover never pays for disaster repairs
type DeclineCover struct{}

// CoverDisaster implements Decider
func (DeclineCover) CoverDisaster(domain.Disaster, []int, int, int) bool { return false }

// CoverIfAffordable pays for repairs whenever the ledger allows it
type CoverIfAffordable struct{}

// CoverDisaster implements Decider
func (CoverIfAffordable) CoverDisaster(_ domain.Disaster, _ []int, cost int, money int) bool {
	return money >= cost
}

// DeciderFor picks the decider matching a game's settings
func DeciderFor(settings domain.GameSettings) Decider {
	if settings.AutoCoverDisasters {
		return CoverIfAffordable{}
	}
	return DeclineCover{}
}

// Engine applies one operation at a time to a game state. Not safe for concurrent use.
type Engine struct {
	cfg     *Config
	state   *domain.GameState
	rng     Rand
	decider Decider
	newID   func() string

	notifications     []domain.Notification
	recentlyCompleted map[string]bool
}

// NewEngine wraps state for mutation. A nil decider declines every cover.
func NewEngine(cfg *Config, state *domain.GameState, rng Rand, decider Decider) *Engine {
	if decider == nil {
		decider = DeclineCover{}
	}
	if state.ClimateProgress == nil {
		state.ClimateProgress = make(map[string]int)
	}
	if state.Upgrades.LastPurchaseDay == nil {
		state.Upgrades.LastPurchaseDay = make(map[domain.UpgradeKind]int)
	}
	return &Engine{
		cfg:               cfg,
		state:             state,
		rng:               rng,
		decider:           decider,
		newID:             newWineID,
		recentlyCompleted: make(map[string]bool),
	}
}

// State returns the wrapped state
func (e *Engine) State() *domain.GameState {
	return e.state
}

// Notifications returns the messages produced by the last operation
func (e *Engine) Notifications() []domain.Notification {
	return e.notifications
}

// begin starts a new operation: fresh notifications and goal guard
func (e *Engine) begin() error {
	e.notifications = nil
	clear(e.recentlyCompleted)
	if e.state.IsFinished() {
		return domain.ErrGameOver
	}
	return nil
}

func (e *Engine) notify(kind domain.NotificationKind, format string, args ...any) {
	e.notifications = append(e.notifications, domain.Notification{
		Day:     e.state.Day,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// AdvanceDay runs one full day of simulation.
func (e *Engine) AdvanceDay() ([]domain.Notification, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	s := e.state

	e.gainMastery(s.ClimateCode)
	e.maybeChangeWeather()

	previous := s.Season()
	s.Day++
	if season := s.Season(); season != previous {
		e.onSeasonChange(season)
		if s.IsFinished() {
			return e.notifications, nil
		}
	}

	weather := e.currentWeather()
	season := e.cfg.SeasonInfo(s.Season())
	for i := range s.Plots {
		e.growPlot(&s.Plots[i], weather, season)
	}

	e.rollDisasters()
	e.spreadDiseases()
	e.regenerate()
	e.housekeeping()

	e.refreshGoals()
	e.checkBankruptcy()
	e.checkVictory()

	return e.notifications, nil
}

func (e *Engine) maybeChangeWeather() {
	s := e.state
	if e.rng.Float64() >= e.cfg.WeatherChangeChance {
		return
	}

	outcome := e.cfg.Weather.Draw(e.rng, climate.FamilyForCode(s.ClimateCode))
	if outcome.Label == s.Weather {
		return
	}
	s.Weather = outcome.Label
	e.notify(domain.NotifyInfo, "The weather turns %s.", outcome.Label)

	level := MasteryLevel(e.cfg, s.ClimateProgress[s.ClimateCode])
	if e.rng.Float64() < e.cfg.ExplanationChance[level] {
		e.notify(domain.NotifyEducation, "%s", climate.Explain(s.ClimateCode, s.Weather, s.Season()))
	}
}

func (e *Engine) currentWeather() climate.Outcome {
	family := climate.FamilyForCode(e.state.ClimateCode)
	if o, ok := e.cfg.Weather.Lookup(family, e.state.Weather); ok {
		return o
	}
	return climate.Outcome{Label: e.state.Weather, GrowthBonus: 1}
}

func (e *Engine) onSeasonChange(season domain.Season) {
	s := e.state
	e.notify(domain.NotifyInfo, "%s begins (year %d).", e.cfg.SeasonInfo(season).Name, domain.YearForDay(s.Day)+1)

	if e.cfg.SeasonInfo(season).HarvestPossible {
		ready := e.refreshHarvestable()
		if ready > 0 {
			e.notify(domain.NotifySuccess, "%d plot(s) ready for harvest.", ready)
		}
	}

	if season == domain.SeasonSpring && s.Day-s.Economy.LastPaymentDay >= e.cfg.AnnualPaymentInterval {
		e.payAnnualCosts()
	}
}

// refreshHarvestable recomputes every plot's flag and returns how many are ready
func (e *Engine) refreshHarvestable() int {
	season := e.cfg.SeasonInfo(e.state.Season())
	ready := 0
	for i := range e.state.Plots {
		p := &e.state.Plots[i]
		p.Harvestable = p.IsPlanted && p.Growth >= 100 && season.HarvestPossible && e.harvestEligible(p)
		if p.Harvestable {
			ready++
		}
	}
	return ready
}

func (e *Engine) harvestEligible(p *domain.Plot) bool {
	if e.cfg.LegacyHarvestExemption && p.PlantedSeason <= 0 {
		return true
	}
	return domain.AbsoluteSeason(e.state.Day)-p.PlantedSeason >= e.cfg.MinSeasonsBeforeHarvest
}

func (e *Engine) regenerate() {
	eco := &e.state.Economy
	if eco.Water < e.cfg.WaterCap {
		eco.Water = min(e.cfg.WaterCap, eco.Water+e.cfg.WaterRegen)
	}
	if eco.Fertilizer < e.cfg.FertilizerCap {
		eco.Fertilizer = min(e.cfg.FertilizerCap, eco.Fertilizer+e.cfg.FertilizerRegen)
	}
}

func (e *Engine) housekeeping() {
	s := e.state
	e.refreshHarvestable()

	for i := range s.Plots {
		p := &s.Plots[i]
		if p.Disaster != "" && s.Day-p.DisasterDay >= e.cfg.DisasterDisplayDays {
			p.Disaster = ""
			p.DisasterDay = 0
		}
	}

	for i := range s.Wines {
		s.Wines[i].Age = s.Day - s.Wines[i].ProductionDay
	}
}

func (e *Engine) checkBankruptcy() {
	s := e.state
	if s.IsFinished() || s.Economy.Money >= 0 {
		return
	}
	e.endGame(domain.GameStatusOver, domain.EndReasonBankruptcy)
	e.notify(domain.NotifyGameOver, "Bankrupt with %s in debt. The vineyard is sold.", formatMoney(-s.Economy.Money))
}

func (e *Engine) endGame(status domain.GameStatus, reason string) {
	e.state.Status = status
	e.state.EndReason = reason
}

func (e *Engine) requireFunds(amount int) error {
	if e.state.Economy.Money < amount {
		return fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientFunds,
			formatMoney(amount), formatMoney(e.state.Economy.Money))
	}
	return nil
}

func (e *Engine) spend(amount int) error {
	if err := e.requireFunds(amount); err != nil {
		return err
	}
	e.state.Economy.Money -= amount
	return nil
}

func (e *Engine) earn(amount int) {
	e.state.Economy.Money += amount
	e.refreshMoneyGoal()
}

func formatMoney(amount int) string {
	return "€" + humanize.Comma(int64(amount))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampLevel(v float64) float64 {
	return clamp(v, 0, 100)
}
