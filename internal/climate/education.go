package climate

import (
	"fmt"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

var weatherNotes = map[string]string{
	WeatherSunny:  "Sunshine drives photosynthesis and sugar build-up in the berries, but it also dries the soil.",
	WeatherCloudy: "Overcast skies slow ripening slightly and keep evaporation low.",
	WeatherRainy:  "Rain refills the soil, though persistent humidity favours fungal diseases such as mildew.",
	WeatherStormy: "Storms bring water but strong winds and downpours can damage young shoots.",
	WeatherFrost:  "Frost can kill buds outright; continental growers watch spring nights closely.",
	WeatherHail:   "Hail bruises leaves and berries, opening wounds for rot.",
	WeatherHot:    "Extreme heat stalls the vine: stomata close and water demand soars.",
	WeatherWindy:  "Dry winds like the mistral keep grapes healthy but increase water stress.",
}

var familyNotes = map[Family]string{
	FamilyOceanic:       "Oceanic climates have mild temperatures and frequent rain all year.",
	FamilyContinental:   "Continental climates swing between hot summers and cold winters.",
	FamilyMediterranean: "Mediterranean climates have dry, hot summers and wet winters.",
}

// Explain returns an educational note about the weather in its climate and season
func Explain(code, weather string, season domain.Season) string {
	note, ok := weatherNotes[weather]
	if !ok {
		note = fmt.Sprintf("The weather turned %s.", weather)
	}
	return fmt.Sprintf("%s (%s, %s) %s", note, code, season, familyNotes[FamilyForCode(code)])
}
