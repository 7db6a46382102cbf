package vineyard

import "github.com/osse101/VineyardSim_Go/internal/domain"

// MasteryLevel converts climate experience into a level (0..len(thresholds))
func MasteryLevel(cfg *Config, exp int) int {
	level := 0
	for _, threshold := range cfg.MasteryThresholds {
		if exp >= threshold {
			level++
		}
	}
	return level
}

// MaxMasteryLevel is the level that unlocks special wines
func MaxMasteryLevel(cfg *Config) int {
	return len(cfg.MasteryThresholds)
}

// Mastery describes standing in one climate
func Mastery(cfg *Config, state *domain.GameState, code string) domain.MasteryLevel {
	exp := state.ClimateProgress[code]
	level := MasteryLevel(cfg, exp)
	m := domain.MasteryLevel{
		ClimateCode: code,
		Experience:  exp,
		Level:       level,
		Title:       cfg.MasteryTitles[level],
	}
	if level < len(cfg.MasteryThresholds) {
		m.NextAt = cfg.MasteryThresholds[level]
	}
	return m
}

func (e *Engine) gainMastery(code string) {
	before := MasteryLevel(e.cfg, e.state.ClimateProgress[code])
	e.state.ClimateProgress[code]++
	after := MasteryLevel(e.cfg, e.state.ClimateProgress[code])
	if after <= before {
		return
	}

	if after == MaxMasteryLevel(e.cfg) {
		e.notify(domain.NotifyMastered, "You have mastered the %s climate! Special wines are now available.", code)
		return
	}
	e.notify(domain.NotifyLevelUp, "%s climate mastery: %s (level %d).", code, e.cfg.MasteryTitles[after], after)
}
