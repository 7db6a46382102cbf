package vineyard

import (
	"github.com/osse101/VineyardSim_Go/internal/climate"
	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// Growth and water thresholds
const (
	dryWaterLevel       = 20
	wetWaterLevel       = 80
	richFertilizerLevel = 50
	dryGrowthFactor     = 0.5
	wetGrowthFactor     = 1.2
	fertileGrowthFactor = 1.3
	diseaseGrowthFactor = 0.5
	infectionDivisor    = 2000
	frostHealthLoss     = 30
)

// Upgrade effects per level
const (
	soilBonusPerLevel       = 0.10
	protectionBonusPerLevel = 0.15
	irrigationSavePerLevel  = 0.15
)

// DailyGrowth returns the growth a plot gains today. Exported for the balance CLI.
func DailyGrowth(cfg *Config, p *domain.Plot, weather climate.Outcome, season domain.SeasonInfo, up domain.Upgrades) float64 {
	growth := cfg.BaseGrowthRate * weather.GrowthBonus * season.GrowthBonus
	growth *= 1 + soilBonusPerLevel*float64(up.Soil)
	if weather.GrowthBonus < 1 {
		growth *= 1 + protectionBonusPerLevel*float64(up.WeatherProtection)
	}

	switch {
	case p.Water < dryWaterLevel:
		growth *= dryGrowthFactor
	case p.Water > wetWaterLevel:
		growth *= wetGrowthFactor
	}
	if p.Fertilizer > richFertilizerLevel {
		growth *= fertileGrowthFactor
	}

	growth *= p.Health / 100
	if p.IsDiseased() {
		growth *= diseaseGrowthFactor
	}
	return growth
}

func (e *Engine) growPlot(p *domain.Plot, weather climate.Outcome, season domain.SeasonInfo) {
	if !p.IsPlanted {
		return
	}
	up := e.state.Upgrades

	p.Growth = clampLevel(p.Growth + DailyGrowth(e.cfg, p, weather, season, up))

	waterNeed := 0.0
	if v, ok := e.cfg.Variety(p.VarietyID); ok {
		waterNeed = v.WaterNeed
	}
	loss := weather.WaterLoss + waterNeed
	if loss > 0 {
		loss *= 1 - irrigationSavePerLevel*float64(up.Irrigation)
	}
	p.Water = clampLevel(p.Water - loss)
	p.Fertilizer = clampLevel(p.Fertilizer - e.cfg.FertilizerConsumption)

	if p.IsDiseased() {
		if d, ok := e.cfg.Disease(p.Disease); ok {
			p.Health = clampLevel(p.Health - d.Damage)
		}
		return
	}
	p.Health = clampLevel(p.Health + 1 + float64(up.Pruning))

	if len(e.cfg.Diseases) > 0 && e.rng.Float64() < (100-p.Health)/infectionDivisor {
		d := e.cfg.Diseases[e.rng.Intn(len(e.cfg.Diseases))]
		e.infect(p, d)
	}
}

func (e *Engine) infect(p *domain.Plot, d domain.Disease) {
	p.Disease = d.ID
	p.DiseaseDay = e.state.Day
	e.notify(domain.NotifyWarning, "Plot %d is infected with %s. Treatment costs %s.", p.ID, d.Name, formatMoney(d.TreatmentCost))
}

// rollDisasters rolls each disaster once and resolves its cover decision in full:
// either the repair is paid and no plot suffers, or every affected plot takes the effect.
func (e *Engine) rollDisasters() {
	for _, d := range e.cfg.Disasters {
		if e.rng.Float64() >= d.Probability {
			continue
		}

		affected := e.pickPlantedPlots(d.MaxPlots)
		if len(affected) == 0 {
			continue
		}

		ids := make([]int, len(affected))
		for i, p := range affected {
			ids[i] = p.ID
			p.Disaster = d.ID
			p.DisasterDay = e.state.Day
		}

		cost := d.RepairCost * len(affected)
		money := e.state.Economy.Money
		if money >= cost && e.decider.CoverDisaster(d, ids, cost, money) {
			e.state.Economy.Money -= cost
			e.notify(domain.NotifyWarning, "%s struck %d plot(s); repairs paid (%s).", d.Name, len(affected), formatMoney(cost))
			continue
		}

		for _, p := range affected {
			applyDisasterEffect(p, d.Effect)
		}
		e.notify(domain.NotifyDanger, "%s struck plot(s) %v!", d.Name, ids)
	}
}

func applyDisasterEffect(p *domain.Plot, effect domain.DisasterEffect) {
	switch effect {
	case domain.EffectHalveGrowth:
		p.Growth /= 2
		p.Harvestable = false
	case domain.EffectHealthLoss:
		p.Health = clampLevel(p.Health - frostHealthLoss)
	case domain.EffectHalveWater:
		p.Water /= 2
	}
}

// pickPlantedPlots selects up to n distinct planted plots at random
func (e *Engine) pickPlantedPlots(n int) []*domain.Plot {
	var planted []*domain.Plot
	for i := range e.state.Plots {
		if e.state.Plots[i].IsPlanted {
			planted = append(planted, &e.state.Plots[i])
		}
	}
	if n > len(planted) {
		n = len(planted)
	}
	for i := 0; i < n; i++ {
		j := i + e.rng.Intn(len(planted)-i)
		planted[i], planted[j] = planted[j], planted[i]
	}
	return planted[:n]
}

// spreadDiseases gives every healthy planted plot one roll against a disease
// type active at the start of the pass, chosen uniformly.
func (e *Engine) spreadDiseases() {
	s := e.state
	var active []domain.Disease
	seen := make(map[string]bool)
	for i := range s.Plots {
		p := &s.Plots[i]
		if !p.IsPlanted || !p.IsDiseased() || seen[p.Disease] {
			continue
		}
		seen[p.Disease] = true
		if d, ok := e.cfg.Disease(p.Disease); ok {
			active = append(active, d)
		}
	}
	if len(active) == 0 {
		return
	}

	for i := range s.Plots {
		target := &s.Plots[i]
		if !target.IsPlanted || target.IsDiseased() {
			continue
		}
		d := active[0]
		if len(active) > 1 {
			d = active[e.rng.Intn(len(active))]
		}
		if e.rng.Float64() < d.SpreadChance {
			e.infect(target, d)
		}
	}
}
