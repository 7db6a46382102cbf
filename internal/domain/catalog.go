package domain

// GrapeVariety describes a plantable vine
type GrapeVariety struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Color        string  `json:"color" yaml:"color"`
	Price        int     `json:"price" yaml:"price"`
	WaterNeed    float64 `json:"water_need" yaml:"water_need"`
	QualityBonus float64 `json:"quality_bonus" yaml:"quality_bonus"`
}

// Disease describes a vine infection
type Disease struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Damage        float64 `json:"damage" yaml:"damage"`
	TreatmentCost int     `json:"treatment_cost" yaml:"treatment_cost"`
	SpreadChance  float64 `json:"spread_chance" yaml:"spread_chance"`
}

// DisasterEffect is what a disaster does to an affected plot
type DisasterEffect string

const (
	EffectHalveGrowth DisasterEffect = "halve_growth"
	EffectHealthLoss  DisasterEffect = "health_loss"
	EffectHalveWater  DisasterEffect = "halve_water"
)

// Disaster describes a random catastrophic event
type Disaster struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Probability float64        `json:"probability" yaml:"probability"`
	MaxPlots    int            `json:"max_plots" yaml:"max_plots"`
	Effect      DisasterEffect `json:"effect" yaml:"effect"`
	RepairCost  int            `json:"repair_cost" yaml:"repair_cost"`
}

// SpecialWine is the signature wine unlocked by mastering a climate
type SpecialWine struct {
	ClimateCode     string  `json:"climate_code" yaml:"climate_code"`
	Name            string  `json:"name" yaml:"name"`
	QualityBonus    int     `json:"quality_bonus" yaml:"quality_bonus"`
	ValueMultiplier float64 `json:"value_multiplier" yaml:"value_multiplier"`
}

// HarvestMode selects what happens to harvested grapes
type HarvestMode string

const (
	HarvestSellRaw     HarvestMode = "raw"
	HarvestMakeWine    HarvestMode = "wine"
	HarvestSpecialWine HarvestMode = "special"
)

// MasteryLevel describes a player's standing in one climate
type MasteryLevel struct {
	ClimateCode string `json:"climate_code"`
	Experience  int    `json:"experience"`
	Level       int    `json:"level"`
	Title       string `json:"title"`
	NextAt      int    `json:"next_at,omitempty"`
}
