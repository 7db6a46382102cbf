// Package main provides the vineyard CLI: headless seeded runs and balance inspection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/VineyardSim_Go/internal/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var balancePath, schemaPath string

	cmd := &cobra.Command{
		Use:   "vineyard",
		Short: "Vineyard simulation tools",
		Long: `Tools for the vineyard simulation.

Examples:
  vineyard simulate --seed 42 --days 365   # Play a year with the tending strategy
  vineyard simulate --strategy idle --json # Let the vines fend for themselves
  vineyard balance                         # Check and summarize configs/balance.yaml
  vineyard regions                         # List playable regions
  vineyard doctor                          # Check environment, balance and storage
  vineyard migrate                         # Bring the configured store up to date
  vineyard deadletters                     # Show events that could not be delivered
`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&balancePath, "balance", config.ConfigPathBalance, "Game balance file")
	cmd.PersistentFlags().StringVar(&schemaPath, "schema", config.ConfigPathBalanceSchema, "JSON schema for the balance file")

	cmd.AddCommand(simulateCmd(&balancePath, &schemaPath))
	cmd.AddCommand(balanceCmd(&balancePath, &schemaPath))
	cmd.AddCommand(regionsCmd())
	cmd.AddCommand(doctorCmd(&balancePath, &schemaPath))
	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(deadLettersCmd())

	return cmd
}
