package climate

// Rand is the slice of math/rand used for weather draws
type Rand interface {
	Float64() float64
}

// Weather labels
const (
	WeatherSunny  = "sunny"
	WeatherCloudy = "cloudy"
	WeatherRainy  = "rainy"
	WeatherStormy = "stormy"
	WeatherFrost  = "frost"
	WeatherHail   = "hail"
	WeatherHot    = "heatwave"
	WeatherWindy  = "windy"
)

// Outcome is one row of a weather table. A negative WaterLoss adds water.
type Outcome struct {
	Label       string  `json:"label" yaml:"label"`
	GrowthBonus float64 `json:"growth_bonus" yaml:"growth_bonus"`
	WaterLoss   float64 `json:"water_loss" yaml:"water_loss"`
	Probability float64 `json:"probability" yaml:"probability"`
}

// Table maps each family to its outcomes; probabilities per family sum to 1.
type Table map[Family][]Outcome

// DefaultTable returns the built-in weather tables
func DefaultTable() Table {
	return Table{
		FamilyOceanic: {
			{Label: WeatherSunny, GrowthBonus: 1.2, WaterLoss: 3, Probability: 0.3},
			{Label: WeatherCloudy, GrowthBonus: 1.0, WaterLoss: 2, Probability: 0.3},
			{Label: WeatherRainy, GrowthBonus: 0.9, WaterLoss: -5, Probability: 0.3},
			{Label: WeatherStormy, GrowthBonus: 0.6, WaterLoss: -3, Probability: 0.1},
		},
		FamilyContinental: {
			{Label: WeatherSunny, GrowthBonus: 1.3, WaterLoss: 4, Probability: 0.35},
			{Label: WeatherCloudy, GrowthBonus: 1.0, WaterLoss: 2, Probability: 0.25},
			{Label: WeatherRainy, GrowthBonus: 0.9, WaterLoss: -4, Probability: 0.2},
			{Label: WeatherFrost, GrowthBonus: 0.5, WaterLoss: 1, Probability: 0.1},
			{Label: WeatherHail, GrowthBonus: 0.4, WaterLoss: 2, Probability: 0.1},
		},
		FamilyMediterranean: {
			{Label: WeatherSunny, GrowthBonus: 1.4, WaterLoss: 5, Probability: 0.5},
			{Label: WeatherHot, GrowthBonus: 1.1, WaterLoss: 8, Probability: 0.2},
			{Label: WeatherCloudy, GrowthBonus: 1.0, WaterLoss: 2, Probability: 0.15},
			{Label: WeatherRainy, GrowthBonus: 1.0, WaterLoss: -4, Probability: 0.1},
			{Label: WeatherWindy, GrowthBonus: 0.9, WaterLoss: 4, Probability: 0.05},
		},
	}
}

// Draw picks an outcome by cumulative probability against one uniform draw.
// Falls back to the first entry when rounding leaves the draw uncovered.
func (t Table) Draw(rng Rand, family Family) Outcome {
	outcomes := t.outcomes(family)
	if len(outcomes) == 0 {
		return Outcome{Label: WeatherCloudy, GrowthBonus: 1}
	}

	r := rng.Float64()
	cumulative := 0.0
	for _, o := range outcomes {
		cumulative += o.Probability
		if r < cumulative {
			return o
		}
	}
	return outcomes[0]
}

// Lookup returns the outcome with the given label for a family
func (t Table) Lookup(family Family, label string) (Outcome, bool) {
	for _, o := range t.outcomes(family) {
		if o.Label == label {
			return o, true
		}
	}
	return Outcome{}, false
}

func (t Table) outcomes(family Family) []Outcome {
	if o, ok := t[family]; ok && len(o) > 0 {
		return o
	}
	return t[FamilyOceanic]
}
