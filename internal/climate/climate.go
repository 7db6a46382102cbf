// Package climate maps wine regions to climate families and draws daily weather.
package climate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// Family groups climate codes that share a weather table
type Family string

const (
	FamilyOceanic       Family = "oceanic"
	FamilyContinental   Family = "continental"
	FamilyMediterranean Family = "mediterranean"
)

// Köppen codes used by the regions below
const (
	CodeOceanic           = "Cfb"
	CodeContinental       = "Dfb"
	CodeHotMediterranean  = "Csa"
	CodeWarmMediterranean = "Csb"
)

// Region is a playable wine region
type Region struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	ClimateCode string `json:"climate_code"`
	Family      Family `json:"family"`
}

var regions = []Region{
	{ID: "bordeaux", Country: "France", ClimateCode: CodeOceanic, Family: FamilyOceanic},
	{ID: "loire", Country: "France", ClimateCode: CodeOceanic, Family: FamilyOceanic},
	{ID: "champagne", Country: "France", ClimateCode: CodeOceanic, Family: FamilyOceanic},
	{ID: "burgundy", Country: "France", ClimateCode: CodeContinental, Family: FamilyContinental},
	{ID: "alsace", Country: "France", ClimateCode: CodeContinental, Family: FamilyContinental},
	{ID: "rhone", Country: "France", ClimateCode: CodeWarmMediterranean, Family: FamilyMediterranean},
	{ID: "provence", Country: "France", ClimateCode: CodeHotMediterranean, Family: FamilyMediterranean},
	{ID: "languedoc", Country: "France", ClimateCode: CodeHotMediterranean, Family: FamilyMediterranean},
	{ID: "tuscany", Country: "Italy", ClimateCode: CodeWarmMediterranean, Family: FamilyMediterranean},
	{ID: "rioja", Country: "Spain", ClimateCode: CodeContinental, Family: FamilyContinental},
}

var (
	regionByID   = map[string]Region{}
	familyByCode = map[string]Family{}
)

func init() {
	title := cases.Title(language.English)
	for i := range regions {
		regions[i].Name = title.String(regions[i].ID)
		regionByID[regions[i].ID] = regions[i]
		familyByCode[regions[i].ClimateCode] = regions[i].Family
	}
}

// DefaultRegion is used when a game is created without a region
const DefaultRegion = "bordeaux"

// Regions returns all playable regions sorted by ID
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LookupRegion finds a region by exact ID
func LookupRegion(id string) (Region, bool) {
	r, ok := regionByID[id]
	return r, ok
}

// FamilyForCode returns the weather family of a climate code, oceanic if unknown
func FamilyForCode(code string) Family {
	if f, ok := familyByCode[code]; ok {
		return f
	}
	return FamilyOceanic
}

// ResolveRegion accepts user input such as "Bordeux" or "Rhône" and returns the closest region.
func ResolveRegion(input string) (Region, error) {
	key := normalize(input)
	if key == "" {
		return Region{}, fmt.Errorf("%w: empty name", domain.ErrRegionNotFound)
	}
	if r, ok := regionByID[key]; ok {
		return r, nil
	}

	best, bestDist := Region{}, -1
	for _, r := range regions {
		if strings.HasPrefix(r.ID, key) && len(key) >= 3 {
			return r, nil
		}
		dist := levenshtein.ComputeDistance(key, r.ID)
		if dist > fuzzyLimit(len(r.ID)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = r, dist
		}
	}
	if bestDist < 0 {
		return Region{}, fmt.Errorf("%w: %q", domain.ErrRegionNotFound, input)
	}
	return best, nil
}

func fuzzyLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

var accentReplacer = strings.NewReplacer("ô", "o", "é", "e", "è", "e", "ê", "e", "à", "a", "ç", "c", " ", "", "-", "")

func normalize(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
