package domain

import "time"

// Calendar constants
const (
	DaysPerSeason  = 30
	SeasonsPerYear = 4
	DaysPerYear    = DaysPerSeason * SeasonsPerYear
)

// Season is the index of a season within the year
type Season int

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

var seasonNames = [SeasonsPerYear]string{"spring", "summer", "autumn", "winter"}

func (s Season) String() string {
	if s < 0 || int(s) >= SeasonsPerYear {
		return "unknown"
	}
	return seasonNames[s]
}

// SeasonForDay returns the season active on the given day
func SeasonForDay(day int) Season {
	return Season((day / DaysPerSeason) % SeasonsPerYear)
}

// YearForDay returns the zero-based year of the given day
func YearForDay(day int) int {
	return day / DaysPerYear
}

// AbsoluteSeason counts seasons since day 0 without wrapping
func AbsoluteSeason(day int) int {
	return day / DaysPerSeason
}

// SeasonInfo holds the per-season simulation modifiers
type SeasonInfo struct {
	Season          Season  `json:"season" yaml:"-"`
	Name            string  `json:"name" yaml:"name"`
	GrowthBonus     float64 `json:"growth_bonus" yaml:"growth_bonus"`
	PlantingOptimal bool    `json:"planting_optimal" yaml:"planting_optimal"`
	HarvestPossible bool    `json:"harvest_possible" yaml:"harvest_possible"`
}

// Plot is one cell of the vineyard grid. Levels are kept within [0, 100].
type Plot struct {
	ID            int     `json:"id"`
	Unlocked      bool    `json:"unlocked"`
	IsPlanted     bool    `json:"is_planted"`
	VarietyID     string  `json:"variety_id,omitempty"`
	Growth        float64 `json:"growth"`
	PlantedDay    int     `json:"planted_day"`
	PlantedSeason int     `json:"planted_season"`
	Water         float64 `json:"water"`
	Fertilizer    float64 `json:"fertilizer"`
	Health        float64 `json:"health"`
	Harvestable   bool    `json:"harvestable"`
	Disease       string  `json:"disease,omitempty"`
	DiseaseDay    int     `json:"disease_day,omitempty"`
	Disaster      string  `json:"disaster,omitempty"`
	DisasterDay   int     `json:"disaster_day,omitempty"`
}

// Clear empties the plot after a harvest. Ownership and soil levels stay.
func (p *Plot) Clear() {
	id, unlocked := p.ID, p.Unlocked
	water, fertilizer, health := p.Water, p.Fertilizer, p.Health
	*p = Plot{
		ID:         id,
		Unlocked:   unlocked,
		Water:      water,
		Fertilizer: fertilizer,
		Health:     health,
	}
}

// IsDiseased reports whether the plot currently carries a disease
func (p *Plot) IsDiseased() bool {
	return p.Disease != ""
}

// Economy is the player's resource ledger
type Economy struct {
	Money          int `json:"money"`
	Water          int `json:"water"`
	Fertilizer     int `json:"fertilizer"`
	LastPaymentDay int `json:"last_payment_day"`
}

// Wine is a bottled lot in the cellar
type Wine struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	VarietyID     string `json:"variety_id"`
	Region        string `json:"region"`
	ClimateCode   string `json:"climate_code"`
	Quality       int    `json:"quality"`
	Value         int    `json:"value"`
	ProductionDay int    `json:"production_day"`
	Age           int    `json:"age"`
	Special       bool   `json:"special"`
	SpecialType   string `json:"special_type,omitempty"`
	SpecialBonus  int    `json:"special_bonus,omitempty"`
}

// UpgradeKind names a purchasable vineyard improvement
type UpgradeKind string

const (
	UpgradeIrrigation        UpgradeKind = "irrigation"
	UpgradeSoil              UpgradeKind = "soil"
	UpgradeWeatherProtection UpgradeKind = "weather_protection"
	UpgradePruning           UpgradeKind = "pruning"
)

// AllUpgradeKinds lists upgrades in display order
var AllUpgradeKinds = []UpgradeKind{
	UpgradeIrrigation,
	UpgradeSoil,
	UpgradeWeatherProtection,
	UpgradePruning,
}

// MaxUpgradeLevel is the highest level any upgrade can reach
const MaxUpgradeLevel = 3

// Upgrades tracks upgrade levels and the last day each was bought
type Upgrades struct {
	Irrigation        int                 `json:"irrigation"`
	Soil              int                 `json:"soil"`
	WeatherProtection int                 `json:"weather_protection"`
	Pruning           int                 `json:"pruning"`
	LastPurchaseDay   map[UpgradeKind]int `json:"last_purchase_day,omitempty"`
}

// Level returns the current level of an upgrade, or -1 for an unknown kind
func (u *Upgrades) Level(kind UpgradeKind) int {
	switch kind {
	case UpgradeIrrigation:
		return u.Irrigation
	case UpgradeSoil:
		return u.Soil
	case UpgradeWeatherProtection:
		return u.WeatherProtection
	case UpgradePruning:
		return u.Pruning
	default:
		return -1
	}
}

// SetLevel updates the level of a known upgrade
func (u *Upgrades) SetLevel(kind UpgradeKind, level int) {
	switch kind {
	case UpgradeIrrigation:
		u.Irrigation = level
	case UpgradeSoil:
		u.Soil = level
	case UpgradeWeatherProtection:
		u.WeatherProtection = level
	case UpgradePruning:
		u.Pruning = level
	}
}

// GoalType selects which statistic a goal tracks
type GoalType string

const (
	GoalMoney        GoalType = "money"
	GoalHarvestCount GoalType = "harvest_count"
	GoalWineCount    GoalType = "wine_count"
	GoalMaxQuality   GoalType = "max_quality"
)

// IsCount reports whether progress for this goal type accumulates
func (t GoalType) IsCount() bool {
	return t == GoalHarvestCount || t == GoalWineCount
}

// Goal is a player objective with a one-time money reward
type Goal struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Type      GoalType `json:"type" yaml:"type"`
	Target    int      `json:"target" yaml:"target"`
	Current   int      `json:"current" yaml:"-"`
	Completed bool     `json:"completed" yaml:"-"`
	Reward    int      `json:"reward" yaml:"reward"`
}

// GameStatus is the lifecycle state of a game
type GameStatus string

const (
	GameStatusPlaying GameStatus = "playing"
	GameStatusOver    GameStatus = "over"
	GameStatusWon     GameStatus = "won"
)

// End reasons for a finished game
const (
	EndReasonBankruptcy = "bankruptcy"
	EndReasonInsolvency = "insolvency"
	EndReasonVictory    = "victory"
)

// GameSettings holds per-game player choices
type GameSettings struct {
	AutoCoverDisasters  bool `json:"auto_cover_disasters"`
	AutoAdvanceInterval int  `json:"auto_advance_interval_ms,omitempty"`
}

// GameState is the complete persisted state of one vineyard game
type GameState struct {
	ID              string         `json:"id"`
	SessionID       string         `json:"session_id"`
	Seed            int64          `json:"seed"`
	Tick            int64          `json:"tick"`
	Version         int            `json:"version"`
	Day             int            `json:"day"`
	Region          string         `json:"region"`
	ClimateCode     string         `json:"climate_code"`
	Weather         string         `json:"weather"`
	Plots           []Plot         `json:"plots"`
	Economy         Economy        `json:"economy"`
	Wines           []Wine         `json:"wines"`
	ClimateProgress map[string]int `json:"climate_progress"`
	Upgrades        Upgrades       `json:"upgrades"`
	Goals           []Goal         `json:"goals"`
	HarvestCount    int            `json:"harvest_count"`
	WineCount       int            `json:"wine_count"`
	MaxQuality      int            `json:"max_quality"`
	Status          GameStatus     `json:"status"`
	EndReason       string         `json:"end_reason,omitempty"`
	Settings        GameSettings   `json:"settings"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Season returns the season active on the current day
func (g *GameState) Season() Season {
	return SeasonForDay(g.Day)
}

// IsFinished reports whether the game has ended either way
func (g *GameState) IsFinished() bool {
	return g.Status != GameStatusPlaying
}

// UnlockedPlots counts plots available for planting
func (g *GameState) UnlockedPlots() int {
	n := 0
	for i := range g.Plots {
		if g.Plots[i].Unlocked {
			n++
		}
	}
	return n
}

// Plot returns a pointer to the plot with the given ID, or nil
func (g *GameState) Plot(id int) *Plot {
	if id < 1 || id > len(g.Plots) {
		return nil
	}
	return &g.Plots[id-1]
}

// GameSummary is the list view of a game
type GameSummary struct {
	ID        string     `json:"id"`
	Region    string     `json:"region"`
	Day       int        `json:"day"`
	Money     int        `json:"money"`
	Status    GameStatus `json:"status"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NotificationKind classifies player-facing messages
type NotificationKind string

const (
	NotifyInfo      NotificationKind = "info"
	NotifySuccess   NotificationKind = "success"
	NotifyWarning   NotificationKind = "warning"
	NotifyDanger    NotificationKind = "danger"
	NotifyEducation NotificationKind = "education"
	NotifyLevelUp   NotificationKind = "level_up"
	NotifyMastered  NotificationKind = "mastered"
	NotifyGameOver  NotificationKind = "game_over"
	NotifyVictory   NotificationKind = "victory"
)

// Notification is a single toast produced by a game operation
type Notification struct {
	Day     int              `json:"day"`
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

// TurnResult is returned by every game operation
type TurnResult struct {
	State         *GameState     `json:"state"`
	Notifications []Notification `json:"notifications"`
	Earned        int            `json:"earned,omitempty"`
	Wine          *Wine          `json:"wine,omitempty"`
	Processed     int            `json:"processed,omitempty"`
}
