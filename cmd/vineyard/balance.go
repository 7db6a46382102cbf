package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/osse101/VineyardSim_Go/internal/bootstrap"
	"github.com/osse101/VineyardSim_Go/internal/climate"
	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
)

func euros(n int) string {
	return "€" + humanize.Comma(int64(n))
}

func writeBalance(w io.Writer, cfg *vineyard.Config) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Start\t%s, %d water, %d fertilizer\n", euros(cfg.StartMoney), cfg.StartWater, cfg.StartFertilizer)
	fmt.Fprintf(tw, "Plots\t%d of %d unlocked, %d per row\n", cfg.InitialPlots, cfg.MaxPlots, cfg.GridColumns)
	fmt.Fprintf(tw, "Annual costs\t%s every %d days\n", euros(cfg.AnnualPaymentTotal()), cfg.AnnualPaymentInterval)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "VARIETY\tCOLOR\tPRICE\tWATER NEED\tQUALITY")
	for _, v := range cfg.Varieties {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\tx%.1f\n", v.Name, v.Color, euros(v.Price), v.WaterNeed, v.QualityBonus)
	}
	fmt.Fprintln(tw)

	kinds := make([]domain.UpgradeKind, 0, len(cfg.UpgradeBaseCosts))
	for k := range cfg.UpgradeBaseCosts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Fprintln(tw, "UPGRADE\tLEVEL 1\tLEVEL 2\tLEVEL 3")
	for _, k := range kinds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", k,
			euros(cfg.UpgradeCost(k, 0)), euros(cfg.UpgradeCost(k, 1)), euros(cfg.UpgradeCost(k, 2)))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "EXPANSION\tCOST")
	for unlocked := cfg.InitialPlots; unlocked < cfg.MaxPlots; unlocked++ {
		fmt.Fprintf(tw, "plot %d\t%s\n", unlocked+1, euros(cfg.ExpansionCost(unlocked)))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "GOAL\tTARGET\tREWARD")
	for _, g := range cfg.Goals {
		fmt.Fprintf(tw, "%s\t%s %d\t%s\n", g.Title, g.Type, g.Target, euros(g.Reward))
	}

	return tw.Flush()
}

func balanceCmd(balancePath, schemaPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Validate the balance file and print its key numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadBalance(*balancePath, *schemaPath)
			if err != nil {
				return err
			}
			return writeBalance(cmd.OutOrStdout(), cfg)
		},
	}
}

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List playable regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCOUNTRY\tCLIMATE")
			for _, r := range climate.Regions() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s (%s)\n", r.ID, r.Name, r.Country, r.ClimateCode, r.Family)
			}
			return tw.Flush()
		},
	}
}
