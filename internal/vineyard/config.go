package vineyard

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/VineyardSim_Go/internal/climate"
	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// AnnualCost is one line of the yearly payment
type AnnualCost struct {
	Name   string `yaml:"name" json:"name"`
	Amount int    `yaml:"amount" json:"amount"`
}

// Config holds every tunable of the simulation
type Config struct {
	StartMoney      int `yaml:"start_money"`
	StartWater      int `yaml:"start_water"`
	StartFertilizer int `yaml:"start_fertilizer"`

	InitialPlots      int     `yaml:"initial_plots"`
	MaxPlots          int     `yaml:"max_plots"`
	GridColumns       int     `yaml:"grid_columns"`
	ExpansionCosts    []int   `yaml:"expansion_costs"`
	NewPlotWater      float64 `yaml:"new_plot_water"`
	NewPlotFertilizer float64 `yaml:"new_plot_fertilizer"`

	BaseGrowthRate        float64 `yaml:"base_growth_rate"`
	WaterPerAction        int     `yaml:"water_per_action"`
	WaterAdded            float64 `yaml:"water_added"`
	FertilizerPerAction   int     `yaml:"fertilizer_per_action"`
	FertilizerAdded       float64 `yaml:"fertilizer_added"`
	FertilizerConsumption float64 `yaml:"fertilizer_consumption"`
	WaterPrice            int     `yaml:"water_price"`
	FertilizerPrice       int     `yaml:"fertilizer_price"`
	WaterRegen            int     `yaml:"water_regen"`
	WaterCap              int     `yaml:"water_cap"`
	FertilizerRegen       int     `yaml:"fertilizer_regen"`
	FertilizerCap         int     `yaml:"fertilizer_cap"`

	WeatherChangeChance float64 `yaml:"weather_change_chance"`
	RawSaleFraction     float64 `yaml:"raw_sale_fraction"`

	AnnualCosts           []AnnualCost `yaml:"annual_costs"`
	AnnualPaymentInterval int          `yaml:"annual_payment_interval"`

	UpgradeBaseCosts map[domain.UpgradeKind]int `yaml:"upgrade_base_costs"`

	MinSeasonsBeforeHarvest int  `yaml:"min_seasons_before_harvest"`
	LegacyHarvestExemption  bool `yaml:"legacy_harvest_exemption"`
	DisasterDisplayDays     int  `yaml:"disaster_display_days"`

	MasteryThresholds []int     `yaml:"mastery_thresholds"`
	MasteryTitles     []string  `yaml:"mastery_titles"`
	ExplanationChance []float64 `yaml:"explanation_chance"`

	Seasons      []domain.SeasonInfo   `yaml:"seasons"`
	Varieties    []domain.GrapeVariety `yaml:"varieties"`
	Diseases     []domain.Disease      `yaml:"diseases"`
	Disasters    []domain.Disaster     `yaml:"disasters"`
	SpecialWines []domain.SpecialWine  `yaml:"special_wines"`
	Goals        []domain.Goal         `yaml:"goals"`
	Weather      climate.Table         `yaml:"weather"`
}

// DefaultConfig returns the standard game balance
func DefaultConfig() *Config {
	return &Config{
		StartMoney:      1000,
		StartWater:      100,
		StartFertilizer: 50,

		InitialPlots:      4,
		MaxPlots:          9,
		GridColumns:       3,
		ExpansionCosts:    []int{500, 750, 1000, 1500, 2000},
		NewPlotWater:      50,
		NewPlotFertilizer: 30,

		BaseGrowthRate:        2,
		WaterPerAction:        10,
		WaterAdded:            30,
		FertilizerPerAction:   5,
		FertilizerAdded:       25,
		FertilizerConsumption: 2,
		WaterPrice:            2,
		FertilizerPrice:       5,
		WaterRegen:            2,
		WaterCap:              100,
		FertilizerRegen:       1,
		FertilizerCap:         50,

		WeatherChangeChance: 0.30,
		RawSaleFraction:     0.5,

		AnnualCosts: []AnnualCost{
			{Name: "land lease", Amount: 300},
			{Name: "equipment maintenance", Amount: 150},
			{Name: "insurance", Amount: 100},
			{Name: "taxes", Amount: 200},
		},
		AnnualPaymentInterval: domain.DaysPerYear,

		UpgradeBaseCosts: map[domain.UpgradeKind]int{
			domain.UpgradeIrrigation:        200,
			domain.UpgradeSoil:              250,
			domain.UpgradeWeatherProtection: 300,
			domain.UpgradePruning:           150,
		},

		MinSeasonsBeforeHarvest: 2,
		LegacyHarvestExemption:  true,
		DisasterDisplayDays:     3,

		MasteryThresholds: []int{1, 10, 30, 60, 100},
		MasteryTitles:     []string{"Newcomer", "Novice", "Apprentice", "Skilled", "Expert", "Master"},
		ExplanationChance: []float64{1.0, 0.8, 0.6, 0.4, 0.2, 0.1},

		Seasons: []domain.SeasonInfo{
			{Season: domain.SeasonSpring, Name: "spring", GrowthBonus: 1.2, PlantingOptimal: true},
			{Season: domain.SeasonSummer, Name: "summer", GrowthBonus: 1.5},
			{Season: domain.SeasonAutumn, Name: "autumn", GrowthBonus: 0.8, HarvestPossible: true},
			{Season: domain.SeasonWinter, Name: "winter", GrowthBonus: 0.3},
		},
		Varieties: []domain.GrapeVariety{
			{ID: "cabernet_sauvignon", Name: "Cabernet Sauvignon", Color: "red", Price: 150, WaterNeed: 2, QualityBonus: 1.2},
			{ID: "merlot", Name: "Merlot", Color: "red", Price: 120, WaterNeed: 2.5, QualityBonus: 1.0},
			{ID: "pinot_noir", Name: "Pinot Noir", Color: "red", Price: 180, WaterNeed: 3, QualityBonus: 1.5},
			{ID: "syrah", Name: "Syrah", Color: "red", Price: 140, WaterNeed: 1.5, QualityBonus: 1.1},
			{ID: "grenache", Name: "Grenache", Color: "red", Price: 110, WaterNeed: 1, QualityBonus: 0.8},
			{ID: "chardonnay", Name: "Chardonnay", Color: "white", Price: 130, WaterNeed: 2.5, QualityBonus: 1.1},
			{ID: "sauvignon_blanc", Name: "Sauvignon Blanc", Color: "white", Price: 100, WaterNeed: 2, QualityBonus: 0.9},
			{ID: "riesling", Name: "Riesling", Color: "white", Price: 125, WaterNeed: 2, QualityBonus: 1.3},
		},
		Diseases: []domain.Disease{
			{ID: "mildew", Name: "Downy mildew", Damage: 2, TreatmentCost: 50, SpreadChance: 0.05},
			{ID: "oidium", Name: "Powdery mildew", Damage: 3, TreatmentCost: 70, SpreadChance: 0.04},
			{ID: "botrytis", Name: "Grey rot", Damage: 4, TreatmentCost: 90, SpreadChance: 0.03},
			{ID: "phylloxera", Name: "Phylloxera", Damage: 5, TreatmentCost: 150, SpreadChance: 0.02},
		},
		Disasters: []domain.Disaster{
			{ID: "hailstorm", Name: "Hailstorm", Probability: 0.01, MaxPlots: 3, Effect: domain.EffectHalveGrowth, RepairCost: 80},
			{ID: "late_frost", Name: "Late frost", Probability: 0.008, MaxPlots: 2, Effect: domain.EffectHealthLoss, RepairCost: 60},
			{ID: "drought", Name: "Drought", Probability: 0.01, MaxPlots: 4, Effect: domain.EffectHalveWater, RepairCost: 40},
		},
		SpecialWines: []domain.SpecialWine{
			{ClimateCode: climate.CodeOceanic, Name: "Claret Réserve", QualityBonus: 10, ValueMultiplier: 1.5},
			{ClimateCode: climate.CodeContinental, Name: "Ice Wine", QualityBonus: 15, ValueMultiplier: 2.0},
			{ClimateCode: climate.CodeHotMediterranean, Name: "Vin Doux Naturel", QualityBonus: 12, ValueMultiplier: 1.8},
			{ClimateCode: climate.CodeWarmMediterranean, Name: "Grande Cuvée", QualityBonus: 10, ValueMultiplier: 1.6},
		},
		Goals: []domain.Goal{
			{ID: "prosperity", Title: "Prosperity", Type: domain.GoalMoney, Target: 5000, Reward: 500},
			{ID: "harvester", Title: "Harvester", Type: domain.GoalHarvestCount, Target: 10, Reward: 300},
			{ID: "winemaker", Title: "Winemaker", Type: domain.GoalWineCount, Target: 5, Reward: 400},
			{ID: "grand_cru", Title: "Grand Cru", Type: domain.GoalMaxQuality, Target: 90, Reward: 1000},
		},
		Weather: climate.DefaultTable(),
	}
}

// LoadConfig reads a YAML balance file on top of DefaultConfig.
// Lists present in the file replace the defaults wholesale.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balance config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance config: %w", err)
	}

	return cfg, nil
}

// Validate checks internal consistency of the balance
func (c *Config) Validate() error {
	if c.InitialPlots <= 0 || c.MaxPlots < c.InitialPlots {
		return fmt.Errorf("plots: initial %d, max %d", c.InitialPlots, c.MaxPlots)
	}
	if c.GridColumns <= 0 {
		return errors.New("grid_columns must be positive")
	}
	for i := 1; i < len(c.ExpansionCosts); i++ {
		if c.ExpansionCosts[i] < c.ExpansionCosts[i-1] {
			return errors.New("expansion_costs must be non-decreasing")
		}
	}
	if c.MaxPlots > c.InitialPlots && len(c.ExpansionCosts) == 0 {
		return errors.New("expansion_costs required when max_plots exceeds initial_plots")
	}

	if len(c.Seasons) != domain.SeasonsPerYear {
		return fmt.Errorf("expected %d seasons, got %d", domain.SeasonsPerYear, len(c.Seasons))
	}

	if len(c.MasteryThresholds) == 0 {
		return errors.New("no mastery thresholds defined")
	}
	for i := 1; i < len(c.MasteryThresholds); i++ {
		if c.MasteryThresholds[i] <= c.MasteryThresholds[i-1] {
			return errors.New("mastery_thresholds must be strictly increasing")
		}
	}
	if len(c.ExplanationChance) != len(c.MasteryThresholds)+1 {
		return errors.New("explanation_chance needs one entry per mastery level")
	}
	if len(c.MasteryTitles) != len(c.MasteryThresholds)+1 {
		return errors.New("mastery_titles needs one entry per mastery level")
	}

	if !isProbability(c.WeatherChangeChance) || !isProbability(c.RawSaleFraction) {
		return errors.New("weather_change_chance and raw_sale_fraction must be within [0, 1]")
	}

	if len(c.Varieties) == 0 {
		return errors.New("no grape varieties defined")
	}
	seen := make(map[string]bool, len(c.Varieties))
	for _, v := range c.Varieties {
		if seen[v.ID] {
			return fmt.Errorf("duplicate variety %q", v.ID)
		}
		seen[v.ID] = true
		if v.Price <= 0 {
			return fmt.Errorf("variety %q must have a positive price", v.ID)
		}
	}

	for _, d := range c.Disasters {
		if !isProbability(d.Probability) || d.MaxPlots <= 0 {
			return fmt.Errorf("disaster %q has invalid probability or max_plots", d.ID)
		}
	}
	for _, d := range c.Diseases {
		if !isProbability(d.SpreadChance) {
			return fmt.Errorf("disease %q has invalid spread_chance", d.ID)
		}
	}

	if len(c.Goals) == 0 {
		return errors.New("no goals defined")
	}

	for family, outcomes := range c.Weather {
		if len(outcomes) == 0 {
			return fmt.Errorf("weather family %q has no outcomes", family)
		}
		sum := 0.0
		for _, o := range outcomes {
			sum += o.Probability
		}
		if math.Abs(sum-1.0) > 0.01 {
			return fmt.Errorf("weather family %q probabilities sum to %.2f (expected ~1.0)", family, sum)
		}
	}

	return nil
}

// AnnualPaymentTotal sums the recurring yearly costs
func (c *Config) AnnualPaymentTotal() int {
	total := 0
	for _, cost := range c.AnnualCosts {
		total += cost.Amount
	}
	return total
}

// Variety looks up a grape variety by ID
func (c *Config) Variety(id string) (domain.GrapeVariety, bool) {
	for _, v := range c.Varieties {
		if v.ID == id {
			return v, true
		}
	}
	return domain.GrapeVariety{}, false
}

// Disease looks up a disease by ID
func (c *Config) Disease(id string) (domain.Disease, bool) {
	for _, d := range c.Diseases {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Disease{}, false
}

// SpecialWine returns the signature wine of a climate code
func (c *Config) SpecialWine(code string) (domain.SpecialWine, bool) {
	for _, s := range c.SpecialWines {
		if s.ClimateCode == code {
			return s, true
		}
	}
	return domain.SpecialWine{}, false
}

// SeasonInfo returns the modifiers of a season
func (c *Config) SeasonInfo(s domain.Season) domain.SeasonInfo {
	return c.Seasons[int(s)%len(c.Seasons)]
}

// ExpansionCost returns the price of the next plot given how many are unlocked
func (c *Config) ExpansionCost(unlocked int) int {
	idx := unlocked - c.InitialPlots
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.ExpansionCosts) {
		return c.ExpansionCosts[len(c.ExpansionCosts)-1]
	}
	return c.ExpansionCosts[idx]
}

// UpgradeCost returns the price of raising an upgrade from its current level
func (c *Config) UpgradeCost(kind domain.UpgradeKind, currentLevel int) int {
	return c.UpgradeBaseCosts[kind] * (currentLevel + 1)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
