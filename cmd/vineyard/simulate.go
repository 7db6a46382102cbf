package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/osse101/VineyardSim_Go/internal/bootstrap"
	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
)

// Strategies understood by simulate
const (
	StrategyIdle = "idle"
	StrategyTend = "tend"
)

const (
	// refillBelow is the plot level under which the tending strategy waters or fertilizes
	refillBelow = 40
	// maxDays stops runs that never end
	maxDays = 5000
)

// SimulationResult summarizes a finished run
type SimulationResult struct {
	Seed          int64                 `json:"seed"`
	Region        string                `json:"region"`
	Strategy      string                `json:"strategy"`
	Day           int                   `json:"day"`
	Status        domain.GameStatus     `json:"status"`
	EndReason     string                `json:"end_reason,omitempty"`
	Money         int                   `json:"money"`
	Harvests      int                   `json:"harvests"`
	WinesMade     int                   `json:"wines_made"`
	MaxQuality    int                   `json:"max_quality"`
	GoalsDone     int                   `json:"goals_done"`
	Notifications int                   `json:"notifications"`
	Log           []domain.Notification `json:"log,omitempty"`
}

// simulation drives one game without storage, mirroring how the game service
// builds a fresh engine and random source for every operation
type simulation struct {
	cfg      *vineyard.Config
	state    *domain.GameState
	strategy string
	keepLog  bool
	result   SimulationResult
}

func newSimulation(cfg *vineyard.Config, seed int64, region, strategy string, keepLog bool) (*simulation, error) {
	if strategy != StrategyIdle && strategy != StrategyTend {
		return nil, fmt.Errorf("unknown strategy %q (want %s or %s)", strategy, StrategyIdle, StrategyTend)
	}
	state, err := vineyard.NewGame(cfg, vineyard.NewGameOptions{
		ID:     fmt.Sprintf("sim-%d", seed),
		Region: region,
		Seed:   seed,
	})
	if err != nil {
		return nil, err
	}
	return &simulation{
		cfg:      cfg,
		state:    state,
		strategy: strategy,
		keepLog:  keepLog,
		result:   SimulationResult{Seed: seed, Region: state.Region, Strategy: strategy},
	}, nil
}

// apply runs one engine operation and records its notifications
func (s *simulation) apply(op func(*vineyard.Engine) error) error {
	engine := vineyard.NewEngine(s.cfg, s.state,
		vineyard.NewRand(s.state.Seed, s.state.Tick), vineyard.DeciderFor(s.state.Settings))
	err := op(engine)
	s.state.Tick++

	notes := engine.Notifications()
	s.result.Notifications += len(notes)
	if s.keepLog {
		s.result.Log = append(s.result.Log, notes...)
	}
	return err
}

// run plays until the game ends or days have passed; days <= 0 means no limit
func (s *simulation) run(days int) SimulationResult {
	if days <= 0 || days > maxDays {
		days = maxDays
	}
	for i := 0; i < days && !s.state.IsFinished(); i++ {
		if s.strategy == StrategyTend {
			s.tend()
		}
		err := s.apply(func(e *vineyard.Engine) error {
			_, err := e.AdvanceDay()
			return err
		})
		if err != nil && !errors.Is(err, domain.ErrGameOver) {
			slog.Debug("Advance failed", "day", s.state.Day, "error", err)
		}
	}
	return s.summary()
}

// tend harvests and sells what is ripe, keeps plots supplied and replants empty ones
func (s *simulation) tend() {
	for _, p := range s.state.Plots {
		if !p.Harvestable {
			continue
		}
		id := p.ID
		_ = s.apply(func(e *vineyard.Engine) error {
			res, err := e.Harvest(id, domain.HarvestMakeWine)
			if err != nil || res.Wine == nil {
				return err
			}
			_, err = e.SellWine(res.Wine.ID)
			return err
		})
	}

	var thirsty, hungry bool
	for _, p := range s.state.Plots {
		if p.IsPlanted {
			thirsty = thirsty || p.Water < refillBelow
			hungry = hungry || p.Fertilizer < refillBelow
		}
	}
	if thirsty {
		_ = s.apply(func(e *vineyard.Engine) error { _, err := e.WaterAll(); return err })
	}
	if hungry {
		_ = s.apply(func(e *vineyard.Engine) error { _, err := e.FertilizeAll(); return err })
	}

	variety := s.cheapestVariety()
	for _, p := range s.state.Plots {
		if !p.Unlocked || p.IsPlanted || s.state.Economy.Money < variety.Price {
			continue
		}
		id := p.ID
		_ = s.apply(func(e *vineyard.Engine) error { return e.Plant(id, variety.ID, false) })
	}
}

func (s *simulation) cheapestVariety() domain.GrapeVariety {
	best := s.cfg.Varieties[0]
	for _, v := range s.cfg.Varieties[1:] {
		if v.Price < best.Price {
			best = v
		}
	}
	return best
}

func (s *simulation) summary() SimulationResult {
	r := s.result
	r.Day = s.state.Day
	r.Status = s.state.Status
	r.EndReason = s.state.EndReason
	r.Money = s.state.Economy.Money
	r.Harvests = s.state.HarvestCount
	r.WinesMade = s.state.WineCount
	r.MaxQuality = s.state.MaxQuality
	for _, g := range s.state.Goals {
		if g.Completed {
			r.GoalsDone++
		}
	}
	return r
}

func writeSummary(w io.Writer, r SimulationResult, goals int) {
	fmt.Fprintf(w, "Seed %d in %s (%s strategy)\n", r.Seed, r.Region, r.Strategy)
	fmt.Fprintf(w, "  Reached the %s day, status %s", humanize.Ordinal(r.Day), r.Status)
	if r.EndReason != "" {
		fmt.Fprintf(w, ": %s", r.EndReason)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Money:       €%s\n", humanize.Comma(int64(r.Money)))
	fmt.Fprintf(w, "  Harvests:    %d\n", r.Harvests)
	fmt.Fprintf(w, "  Wines made:  %d (best quality %d)\n", r.WinesMade, r.MaxQuality)
	fmt.Fprintf(w, "  Goals:       %d/%d\n", r.GoalsDone, goals)
	fmt.Fprintf(w, "  Messages:    %s\n", humanize.Comma(int64(r.Notifications)))
	for _, n := range r.Log {
		fmt.Fprintf(w, "  [day %d] %s: %s\n", n.Day, n.Kind, n.Message)
	}
}

func simulateCmd(balancePath, schemaPath *string) *cobra.Command {
	var (
		seed       int64
		days       int
		region     string
		strategy   string
		outputJSON bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a seeded game without storage",
		Long:  `Play a game headlessly. The same seed, region, strategy and balance
always produce the same run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadBalance(*balancePath, *schemaPath)
			if err != nil {
				return err
			}
			sim, err := newSimulation(cfg, seed, region, strategy, verbose)
			if err != nil {
				return err
			}
			result := sim.run(days)

			out := cmd.OutOrStdout()
			if outputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			writeSummary(out, result, len(cfg.Goals))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&days, "days", 0, "Days to play, 0 plays until the game ends")
	cmd.Flags().StringVar(&region, "region", "", "Region name, fuzzy matched")
	cmd.Flags().StringVar(&strategy, "strategy", StrategyTend, "Player strategy: tend or idle")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include every notification")

	return cmd
}
