package vineyard

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/osse101/VineyardSim_Go/internal/climate"
	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// Quality and ageing constants
const (
	qualityHealthWeight    = 0.4
	qualityGrowthWeight    = 0.3
	richFertilizerForWine  = 70
	richFertilizerBonus    = 20
	fertilizerQualityRatio = 0.2
	varietyBonusScale      = 10
	valueQualityDivisor    = 50
	agingStepDays          = 10
)

func newWineID() string {
	return uuid.NewString()
}

// WineQuality scores grapes from a plot at harvest, within [0, 100]
func WineQuality(p *domain.Plot, v domain.GrapeVariety) int {
	fertTerm := p.Fertilizer * fertilizerQualityRatio
	if p.Fertilizer > richFertilizerForWine {
		fertTerm = richFertilizerBonus
	}
	q := p.Health*qualityHealthWeight + p.Growth*qualityGrowthWeight + fertTerm + v.QualityBonus*varietyBonusScale
	return int(math.Round(clampLevel(q)))
}

// WineValue is the cellar value of a wine of the given quality
func WineValue(price, quality int) int {
	return int(math.Floor(float64(price) * float64(quality) / valueQualityDivisor))
}

// SaleValue applies the ageing bonus: +10% per full 10 days, rounded down
func SaleValue(w domain.Wine, day int) int {
	age := max(day-w.ProductionDay, 0)
	return w.Value * (10 + age/agingStepDays) / 10
}

// HarvestResult describes what a harvest produced
type HarvestResult struct {
	Mode    domain.HarvestMode `json:"mode"`
	Earned  int                `json:"earned,omitempty"`
	Wine    *domain.Wine       `json:"wine,omitempty"`
	PlotID  int                `json:"plot_id"`
	Variety string             `json:"variety"`
}

// Harvest picks a ripe plot and sells the grapes, bottles a wine or, with
// full climate mastery, bottles the climate's special wine.
func (e *Engine) Harvest(plotID int, mode domain.HarvestMode) (*HarvestResult, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	s := e.state

	p, err := e.plantedPlot(plotID)
	if err != nil {
		return nil, err
	}
	if !e.cfg.SeasonInfo(s.Season()).HarvestPossible {
		return nil, fmt.Errorf("%w: harvest happens in autumn", domain.ErrWrongSeason)
	}
	if p.Growth < 100 {
		return nil, fmt.Errorf("%w: plot %d is at %.0f%%", domain.ErrNotHarvestable, plotID, p.Growth)
	}
	v, ok := e.cfg.Variety(p.VarietyID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrVarietyNotFound, p.VarietyID)
	}

	result := &HarvestResult{Mode: mode, PlotID: p.ID, Variety: v.ID}
	switch mode {
	case domain.HarvestSellRaw:
		result.Earned = int(math.Floor(float64(v.Price) * e.cfg.RawSaleFraction))
		e.earn(result.Earned)
		e.notify(domain.NotifySuccess, "Sold %s grapes for %s.", v.Name, formatMoney(result.Earned))
	case domain.HarvestMakeWine:
		w := e.bottle(p, v, nil)
		result.Wine = &w
	case domain.HarvestSpecialWine:
		if MasteryLevel(e.cfg, s.ClimateProgress[s.ClimateCode]) < MaxMasteryLevel(e.cfg) {
			return nil, fmt.Errorf("%w: master the %s climate first", domain.ErrMasteryRequired, s.ClimateCode)
		}
		special, ok := e.cfg.SpecialWine(s.ClimateCode)
		if !ok {
			return nil, fmt.Errorf("%w: no special wine for %s", domain.ErrMasteryRequired, s.ClimateCode)
		}
		w := e.bottle(p, v, &special)
		result.Wine = &w
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidHarvest, mode)
	}

	s.HarvestCount++
	e.UpdateGoalProgress(domain.GoalHarvestCount, 1)

	p.Clear()

	e.finish()
	return result, nil
}

func (e *Engine) bottle(p *domain.Plot, v domain.GrapeVariety, special *domain.SpecialWine) domain.Wine {
	s := e.state
	quality := WineQuality(p, v)
	regionName := s.Region
	if r, ok := climate.LookupRegion(s.Region); ok {
		regionName = r.Name
	}

	w := domain.Wine{
		ID:            e.newID(),
		Name:          fmt.Sprintf("%s %s, year %d", regionName, v.Name, domain.YearForDay(s.Day)+1),
		VarietyID:     v.ID,
		Region:        s.Region,
		ClimateCode:   s.ClimateCode,
		ProductionDay: s.Day,
	}

	if special != nil {
		quality = min(100, quality+special.QualityBonus)
		w.Name = fmt.Sprintf("%s %s, year %d", special.Name, v.Name, domain.YearForDay(s.Day)+1)
		w.Special = true
		w.SpecialType = special.Name
		w.SpecialBonus = special.QualityBonus
		w.Value = int(math.Floor(float64(WineValue(v.Price, quality)) * special.ValueMultiplier))
	} else {
		w.Value = WineValue(v.Price, quality)
	}
	w.Quality = quality

	s.Wines = append(s.Wines, w)
	s.WineCount++
	if quality > s.MaxQuality {
		s.MaxQuality = quality
	}

	e.notify(domain.NotifySuccess, "Bottled %s (quality %d, worth %s).", w.Name, w.Quality, formatMoney(w.Value))
	e.UpdateGoalProgress(domain.GoalWineCount, 1)
	e.UpdateGoalProgress(domain.GoalMaxQuality, s.MaxQuality)
	return w
}

// SellWine sells a bottled wine with its ageing bonus and removes it from the cellar
func (e *Engine) SellWine(wineID string) (int, error) {
	if err := e.begin(); err != nil {
		return 0, err
	}
	s := e.state

	idx := -1
	for i := range s.Wines {
		if s.Wines[i].ID == wineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrWineNotFound, wineID)
	}

	w := s.Wines[idx]
	price := SaleValue(w, s.Day)
	s.Wines = append(s.Wines[:idx], s.Wines[idx+1:]...)
	e.earn(price)
	e.notify(domain.NotifySuccess, "Sold %s for %s.", w.Name, formatMoney(price))
	e.finish()
	return price, nil
}
