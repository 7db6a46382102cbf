package vineyard

import "github.com/osse101/VineyardSim_Go/internal/domain"

// UpdateGoalProgress feeds a statistic into every goal of that type.
// Count goals accumulate value; the others track it directly.
// A goal pays its reward once; titles completed during the current
// operation are guarded against a second payout.
func (e *Engine) UpdateGoalProgress(goalType domain.GoalType, value int) {
	for i := range e.state.Goals {
		g := &e.state.Goals[i]
		if g.Type != goalType || g.Completed {
			continue
		}

		if goalType.IsCount() {
			g.Current += value
		} else {
			g.Current = value
		}

		if g.Current < g.Target || e.recentlyCompleted[g.Title] {
			continue
		}
		g.Completed = true
		e.recentlyCompleted[g.Title] = true
		e.state.Economy.Money += g.Reward
		e.notify(domain.NotifySuccess, "Goal reached: %s! Reward %s.", g.Title, formatMoney(g.Reward))
	}
}

func (e *Engine) refreshMoneyGoal() {
	e.UpdateGoalProgress(domain.GoalMoney, e.state.Economy.Money)
}

func (e *Engine) refreshGoals() {
	e.refreshMoneyGoal()
	e.UpdateGoalProgress(domain.GoalMaxQuality, e.state.MaxQuality)
}

// AllGoalsComplete reports whether every goal has been reached
func AllGoalsComplete(state *domain.GameState) bool {
	if len(state.Goals) == 0 {
		return false
	}
	for _, g := range state.Goals {
		if !g.Completed {
			return false
		}
	}
	return true
}

func (e *Engine) checkVictory() {
	if e.state.IsFinished() || !AllGoalsComplete(e.state) {
		return
	}
	e.endGame(domain.GameStatusWon, domain.EndReasonVictory)
	e.notify(domain.NotifyVictory, "Every goal is complete. Your vineyard is a success!")
}
