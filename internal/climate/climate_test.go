package climate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestDefaultTable_ProbabilitiesSumToOne(t *testing.T) {
	for family, outcomes := range DefaultTable() {
		sum := 0.0
		for _, o := range outcomes {
			sum += o.Probability
		}
		assert.InDelta(t, 1.0, sum, 1e-9, string(family))
	}
}

func TestDraw_Cumulative(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name   string
		draw   float64
		family Family
		want   string
	}{
		{"first bucket", 0.0, FamilyOceanic, WeatherSunny},
		{"second bucket", 0.35, FamilyOceanic, WeatherCloudy},
		{"boundary belongs to next", 0.6, FamilyOceanic, WeatherRainy},
		{"last bucket", 0.95, FamilyOceanic, WeatherStormy},
		{"mediterranean heat", 0.6, FamilyMediterranean, WeatherHot},
		{"continental hail", 0.99, FamilyContinental, WeatherHail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Draw(fixedRand(tt.draw), tt.family).Label)
		})
	}
}

func TestDraw_FallsBackToFirstEntry(t *testing.T) {
	table := Table{FamilyOceanic: {
		{Label: "a", Probability: 0.2},
		{Label: "b", Probability: 0.2},
	}}
	assert.Equal(t, "a", table.Draw(fixedRand(0.9), FamilyOceanic).Label)
}

func TestDraw_UnknownFamilyUsesOceanic(t *testing.T) {
	o := DefaultTable().Draw(fixedRand(0), Family("arctic"))
	assert.Equal(t, WeatherSunny, o.Label)
	assert.False(t, math.IsNaN(o.GrowthBonus))
}

func TestResolveRegion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"bordeaux", "bordeaux"},
		{"  Bordeaux ", "bordeaux"},
		{"bordeux", "bordeaux"},
		{"Rhône", "rhone"},
		{"burg", "burgundy"},
		{"languedok", "languedoc"},
	}
	for _, tt := range tests {
		r, err := ResolveRegion(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, r.ID, tt.input)
	}
}

func TestResolveRegion_NotFound(t *testing.T) {
	_, err := ResolveRegion("atlantis")
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)

	_, err = ResolveRegion("")
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestRegions_DisplayNames(t *testing.T) {
	r, ok := LookupRegion("champagne")
	require.True(t, ok)
	assert.Equal(t, "Champagne", r.Name)
	assert.Equal(t, CodeOceanic, r.ClimateCode)
	assert.Len(t, Regions(), 10)
	assert.Equal(t, FamilyMediterranean, FamilyForCode(CodeHotMediterranean))
	assert.Equal(t, FamilyOceanic, FamilyForCode("??"))
}

func TestExplain(t *testing.T) {
	msg := Explain(CodeContinental, WeatherFrost, domain.SeasonSpring)
	assert.Contains(t, msg, "Frost")
	assert.Contains(t, msg, "Dfb")
	assert.Contains(t, msg, "spring")
	assert.Contains(t, msg, "Continental")
}
