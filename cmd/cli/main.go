package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/communityshift/scheduler/cmd/cli/commands"
	"github.com/communityshift/scheduler/internal/config"
	"github.com/communityshift/scheduler/pkg/postgres"
	"github.com/communityshift/scheduler/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
	pg  *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Community Shift Scheduler - Manage volunteer shift assignments",
		Long:  `A CLI tool for materializing recurring shifts and assigning volunteers to them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if pg != nil {
				pg.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.MaterializeShiftsCmd(appRef()))
	rootCmd.AddCommand(commands.GenerateAssignmentsCmd(appRef()))
	rootCmd.AddCommand(commands.EnforceCapacityCmd(appRef()))
	rootCmd.AddCommand(commands.ViewScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ListVolunteersCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, creating the empty shell so command
// constructors can capture it before initApp populates it
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{Ctx: context.Background()}
	}
	return app
}

// initApp sets up logger, config, and the database connection
func initApp() error {
	var err error
	appRef()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	pg, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pg.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = pg
	app.Logger.Info("Database initialized successfully")

	return nil
}
