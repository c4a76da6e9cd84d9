package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zel143/fittrack/internal/config"
	"github.com/Zel143/fittrack/internal/db"
	"github.com/Zel143/fittrack/internal/store"
)

var (
	cfg      config.Config
	logger   *zap.Logger
	provider *db.Provider
	st       *store.Store

	actingUser int
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `FitTrack tracks goals, workout plans, workouts, weight and food intake
in a local SQLite database (default: ~/FitTrack/fittrack.db, override with
FITTRACK_DB_PATH).

QUICK START:

  $ fittrack register alice a@example.com secret   # Create an account
  $ fittrack login alice secret                    # Verify credentials, prints your user id
  $ fittrack weight add 70.2 --user 1              # Log today's weight
  $ fittrack food log "oatmeal" 350 --user 1       # Log a meal
  $ fittrack export --user 1 > data.csv            # Export weight + workouts

Most commands act on behalf of one account, passed explicitly via --user.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		cfg = config.Load()

		var err error
		if cfg.Debug {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return err
		}

		provider = db.NewProvider(cfg.DBPath, logger)
		// A failed schema setup is fatal: never operate on a partial schema.
		if err := db.EnsureSchema(cmd.Context(), provider); err != nil {
			return err
		}
		st = store.New(provider, logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		if provider != nil {
			return provider.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&actingUser, "user", 0, "acting user id")
}

func requireUser() (int, error) {
	if actingUser <= 0 {
		return 0, fmt.Errorf("--user is required (run 'fittrack login' to find your id)")
	}
	return actingUser, nil
}

func Execute() error {
	return rootCmd.Execute()
}
