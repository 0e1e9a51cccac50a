package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bankist/config"
	"bankist/internal/core"
	"bankist/internal/memory"
	"bankist/internal/seed"
	"bankist/internal/sqlite"
)

func newRootCmd() *cobra.Command {
	var seedFile string

	cmd := &cobra.Command{
		Use:          "bankist",
		Short:        "Single-session bank account ledger",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML file with the accounts to start with (overrides SEED_FILE)")

	cmd.AddCommand(
		newServeCmd(&seedFile),
		newAccountsCmd(&seedFile),
	)

	return cmd
}

// app is what every subcommand needs: configuration, a logger and a seeded
// account store.
type app struct {
	config     config.Config
	logger     *slog.Logger
	repository core.AccountRepository
	close      func()
}

func newApp(ctx context.Context, seedFile string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if seedFile != "" {
		cfg.SeedFile = seedFile
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	a := &app{
		config: cfg,
		logger: logger,
		close:  func() {},
	}

	switch cfg.Store {
	case config.StoreSQLite:
		dbClient, err := sqlite.NewClient(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to create db client: %w", err)
		}
		a.repository = sqlite.NewAccountStore(dbClient.DB())
		a.close = func() {
			if err := dbClient.Close(); err != nil {
				logger.ErrorContext(ctx, "Error closing database", "error", err)
			}
		}
	default:
		a.repository = memory.NewAccountStore()
	}

	if err = a.seed(ctx); err != nil {
		a.close()
		return nil, err
	}

	return a, nil
}

// seed loads the seed accounts into an empty store. A persistent store that
// already holds accounts is left alone.
func (a *app) seed(ctx context.Context) error {
	existing, err := a.repository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(existing) > 0 {
		a.logger.InfoContext(ctx, "Store already seeded", "accounts", len(existing))
		return nil
	}

	file, err := seed.Load(a.config.SeedFile)
	if err != nil {
		return err
	}

	accounts, err := seed.Apply(ctx, a.repository, file)
	if err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "Seeded accounts", "accounts", len(accounts), "source", seedSource(a.config.SeedFile))
	return nil
}

func seedSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
