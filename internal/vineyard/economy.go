package vineyard

import (
	"fmt"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// payAnnualCosts charges the yearly fixed costs or ends the game
func (e *Engine) payAnnualCosts() {
	s := e.state
	total := e.cfg.AnnualPaymentTotal()

	if s.Economy.Money < total {
		e.endGame(domain.GameStatusOver, domain.EndReasonInsolvency)
		e.notify(domain.NotifyGameOver, "Unable to pay the annual costs of %s. The bank takes the estate.", formatMoney(total))
		return
	}

	s.Economy.Money -= total
	s.Economy.LastPaymentDay = s.Day
	e.notify(domain.NotifyInfo, "Annual costs paid: %s.", formatMoney(total))
}

// BuyUpgrade raises an upgrade by one level. Winter only, once per day per upgrade.
func (e *Engine) BuyUpgrade(kind domain.UpgradeKind) error {
	if err := e.begin(); err != nil {
		return err
	}
	s := e.state

	level := s.Upgrades.Level(kind)
	if level < 0 {
		return fmt.Errorf("%w: %q", domain.ErrInvalidUpgrade, kind)
	}
	if s.Season() != domain.SeasonWinter {
		return fmt.Errorf("%w: upgrades are installed in winter", domain.ErrWrongSeason)
	}
	if level >= domain.MaxUpgradeLevel {
		return domain.ErrUpgradeMaxed
	}
	if day, ok := s.Upgrades.LastPurchaseDay[kind]; ok && day == s.Day {
		return domain.ErrUpgradeUsedToday
	}
	if err := e.spend(e.cfg.UpgradeCost(kind, level)); err != nil {
		return err
	}

	s.Upgrades.SetLevel(kind, level+1)
	s.Upgrades.LastPurchaseDay[kind] = s.Day
	e.notify(domain.NotifySuccess, "%s upgraded to level %d.", kind, level+1)
	e.finish()
	return nil
}

// Expand unlocks the next locked plot
func (e *Engine) Expand() error {
	if err := e.begin(); err != nil {
		return err
	}
	s := e.state

	unlocked := s.UnlockedPlots()
	if unlocked >= e.cfg.MaxPlots || unlocked >= len(s.Plots) {
		return domain.ErrMaxPlotsReached
	}
	if err := e.spend(e.cfg.ExpansionCost(unlocked)); err != nil {
		return err
	}

	for i := range s.Plots {
		if !s.Plots[i].Unlocked {
			s.Plots[i].Unlocked = true
			e.notify(domain.NotifySuccess, "Plot %d is now available.", s.Plots[i].ID)
			break
		}
	}
	e.finish()
	return nil
}

// BuySupplies purchases water and fertilizer stock
func (e *Engine) BuySupplies(water, fertilizer int) error {
	if err := e.begin(); err != nil {
		return err
	}
	if water < 0 || fertilizer < 0 || water+fertilizer == 0 {
		return fmt.Errorf("%w: quantities must be non-negative and not both zero", domain.ErrInvalidInput)
	}

	cost := water*e.cfg.WaterPrice + fertilizer*e.cfg.FertilizerPrice
	if err := e.spend(cost); err != nil {
		return err
	}

	e.state.Economy.Water += water
	e.state.Economy.Fertilizer += fertilizer
	e.notify(domain.NotifyInfo, "Bought %d water and %d fertilizer for %s.", water, fertilizer, formatMoney(cost))
	e.finish()
	return nil
}

// finish closes out a player action
func (e *Engine) finish() {
	e.refreshMoneyGoal()
	e.checkBankruptcy()
	e.checkVictory()
}
