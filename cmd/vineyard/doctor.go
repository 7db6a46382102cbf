package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/VineyardSim_Go/internal/bootstrap"
	"github.com/osse101/VineyardSim_Go/internal/config"
)

var errDoctorIssues = errors.New("doctor found issues")

func printSuccess(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "✓ "+format+"\n", a...)
}

func printWarning(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "⚠ "+format+"\n", a...)
}

func printError(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "✗ "+format+"\n", a...)
}

// openStore opens the configured store and returns its closer.
// Postgres stores are migrated on the way.
func openStore(ctx context.Context, cfg *config.Config) (func(), error) {
	_, store, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return store.Close, nil
}

func runDoctor(ctx context.Context, w io.Writer, balancePath, schemaPath string) error {
	cfg, err := config.Load()
	if err != nil {
		printError(w, "Configuration: %v", err)
		return errDoctorIssues
	}
	printSuccess(w, "Configuration OK (%s, %s storage)", cfg.Environment, cfg.StorageDriver)

	hasError := false

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		printError(w, "Environment: %v", err)
		hasError = true
	} else {
		printSuccess(w, "Environment OK")
	}
	for _, warning := range warnings {
		printWarning(w, "%s", warning)
	}

	if balance, err := bootstrap.LoadBalance(balancePath, schemaPath); err != nil {
		printError(w, "Balance: %v", err)
		hasError = true
	} else {
		printSuccess(w, "Balance OK (%d varieties, %d goals)", len(balance.Varieties), len(balance.Goals))
	}

	if closeStore, err := openStore(ctx, cfg); err != nil {
		printError(w, "Storage: %v", err)
		hasError = true
	} else {
		closeStore()
		printSuccess(w, "Storage OK")
	}

	if hasError {
		return errDoctorIssues
	}
	printSuccess(w, "All systems operational!")
	return nil
}

func doctorCmd(balancePath, schemaPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment, balance and storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context(), cmd.OutOrStdout(), *balancePath, *schemaPath)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending storage migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			closeStore, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			closeStore()
			printSuccess(cmd.OutOrStdout(), "Storage up to date (%s)", cfg.StorageDriver)
			return nil
		},
	}
}
