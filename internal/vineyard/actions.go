package vineyard

import (
	"fmt"

	"github.com/osse101/VineyardSim_Go/internal/climate"
	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// plot resolves an ID to an unlocked plot
func (e *Engine) plot(id int) (*domain.Plot, error) {
	p := e.state.Plot(id)
	if p == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrPlotNotFound, id)
	}
	if !p.Unlocked {
		return nil, fmt.Errorf("%w: %d", domain.ErrPlotLocked, id)
	}
	return p, nil
}

func (e *Engine) plantedPlot(id int) (*domain.Plot, error) {
	p, err := e.plot(id)
	if err != nil {
		return nil, err
	}
	if !p.IsPlanted {
		return nil, fmt.Errorf("%w: %d", domain.ErrPlotEmpty, id)
	}
	return p, nil
}

// Plant buys a vine for an empty plot. Outside the optimal season the
// caller must pass confirm, otherwise ErrConfirmationRequired is returned.
func (e *Engine) Plant(plotID int, varietyID string, confirm bool) error {
	if err := e.begin(); err != nil {
		return err
	}
	s := e.state

	p, err := e.plot(plotID)
	if err != nil {
		return err
	}
	if p.IsPlanted {
		return fmt.Errorf("%w: %d", domain.ErrPlotOccupied, plotID)
	}
	v, ok := e.cfg.Variety(varietyID)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrVarietyNotFound, varietyID)
	}
	if err := e.requireFunds(v.Price); err != nil {
		return err
	}
	season := e.cfg.SeasonInfo(s.Season())
	if !season.PlantingOptimal && !confirm {
		return fmt.Errorf("%w: planting in %s is not optimal", domain.ErrConfirmationRequired, season.Name)
	}

	if err := e.spend(v.Price); err != nil {
		return err
	}
	p.IsPlanted = true
	p.VarietyID = v.ID
	p.Growth = 0
	p.Health = 100
	p.PlantedDay = s.Day
	p.PlantedSeason = domain.AbsoluteSeason(s.Day)
	p.Harvestable = false
	p.Disease = ""
	p.DiseaseDay = 0

	e.notify(domain.NotifySuccess, "%s planted on plot %d.", v.Name, p.ID)
	e.finish()
	return nil
}

// Water irrigates one planted plot from the water stock
func (e *Engine) Water(plotID int) error {
	if err := e.begin(); err != nil {
		return err
	}
	p, err := e.plantedPlot(plotID)
	if err != nil {
		return err
	}
	if e.state.Economy.Water < e.cfg.WaterPerAction {
		return domain.ErrInsufficientWater
	}

	e.state.Economy.Water -= e.cfg.WaterPerAction
	p.Water = clampLevel(p.Water + e.cfg.WaterAdded)
	return nil
}

// Fertilize feeds one planted plot from the fertilizer stock
func (e *Engine) Fertilize(plotID int) error {
	if err := e.begin(); err != nil {
		return err
	}
	p, err := e.plantedPlot(plotID)
	if err != nil {
		return err
	}
	if e.state.Economy.Fertilizer < e.cfg.FertilizerPerAction {
		return domain.ErrInsufficientFertilizer
	}

	e.state.Economy.Fertilizer -= e.cfg.FertilizerPerAction
	p.Fertilizer = clampLevel(p.Fertilizer + e.cfg.FertilizerAdded)
	return nil
}

// WaterAll irrigates every planted plot below full water. All or nothing.
func (e *Engine) WaterAll() (int, error) {
	if err := e.begin(); err != nil {
		return 0, err
	}
	targets := e.plantedWhere(func(p *domain.Plot) bool { return p.Water < 100 })
	if len(targets) == 0 {
		return 0, domain.ErrNothingToProcess
	}
	need := len(targets) * e.cfg.WaterPerAction
	if e.state.Economy.Water < need {
		return 0, fmt.Errorf("%w: need %d for %d plots", domain.ErrInsufficientWater, need, len(targets))
	}

	e.state.Economy.Water -= need
	for _, p := range targets {
		p.Water = clampLevel(p.Water + e.cfg.WaterAdded)
	}
	e.notify(domain.NotifyInfo, "Watered %d plot(s).", len(targets))
	return len(targets), nil
}

// FertilizeAll feeds every planted plot below full fertilizer. All or nothing.
func (e *Engine) FertilizeAll() (int, error) {
	if err := e.begin(); err != nil {
		return 0, err
	}
	targets := e.plantedWhere(func(p *domain.Plot) bool { return p.Fertilizer < 100 })
	if len(targets) == 0 {
		return 0, domain.ErrNothingToProcess
	}
	need := len(targets) * e.cfg.FertilizerPerAction
	if e.state.Economy.Fertilizer < need {
		return 0, fmt.Errorf("%w: need %d for %d plots", domain.ErrInsufficientFertilizer, need, len(targets))
	}

	e.state.Economy.Fertilizer -= need
	for _, p := range targets {
		p.Fertilizer = clampLevel(p.Fertilizer + e.cfg.FertilizerAdded)
	}
	e.notify(domain.NotifyInfo, "Fertilized %d plot(s).", len(targets))
	return len(targets), nil
}

func (e *Engine) plantedWhere(pred func(*domain.Plot) bool) []*domain.Plot {
	var out []*domain.Plot
	for i := range e.state.Plots {
		p := &e.state.Plots[i]
		if p.Unlocked && p.IsPlanted && pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// TreatDisease cures a diseased plot for the disease's treatment cost
func (e *Engine) TreatDisease(plotID int) error {
	if err := e.begin(); err != nil {
		return err
	}
	p, err := e.plantedPlot(plotID)
	if err != nil {
		return err
	}
	if !p.IsDiseased() {
		return fmt.Errorf("%w: %d", domain.ErrNotDiseased, plotID)
	}

	cost := 0
	name := p.Disease
	if d, ok := e.cfg.Disease(p.Disease); ok {
		cost = d.TreatmentCost
		name = d.Name
	}
	if err := e.spend(cost); err != nil {
		return err
	}

	p.Disease = ""
	p.DiseaseDay = 0
	e.notify(domain.NotifySuccess, "Plot %d treated for %s.", p.ID, name)
	e.finish()
	return nil
}

// SetRegion moves the vineyard to another region, redrawing the weather
func (e *Engine) SetRegion(input string) error {
	if err := e.begin(); err != nil {
		return err
	}
	r, err := climate.ResolveRegion(input)
	if err != nil {
		return err
	}

	s := e.state
	s.Region = r.ID
	s.ClimateCode = r.ClimateCode
	s.Weather = e.cfg.Weather.Draw(e.rng, r.Family).Label
	e.notify(domain.NotifyInfo, "Now growing in %s (%s). Weather: %s.", r.Name, r.ClimateCode, s.Weather)
	return nil
}
