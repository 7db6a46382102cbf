package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/VineyardSim_Go/internal/validation"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
)

// LoadBalance reads the game balance file after checking it against its schema.
// A missing file is not an error: the built-in defaults apply.
func LoadBalance(path, schemaPath string) (*vineyard.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgBalanceFileMissing, "path", path)
		return vineyard.DefaultConfig(), nil
	}

	if err := validation.NewSchemaValidator().ValidateFile(path, schemaPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidBalanceFile, err)
	}

	cfg, err := vineyard.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadBalance, err)
	}

	slog.Info(LogMsgBalanceLoaded,
		"path", path,
		"varieties", len(cfg.Varieties),
		"max_plots", cfg.MaxPlots,
		"start_money", cfg.StartMoney)
	return cfg, nil
}
