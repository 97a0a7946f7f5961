package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yigit/schooldash/internal/bootstrap"
	"github.com/yigit/schooldash/internal/config"
	"github.com/yigit/schooldash/internal/db"
	"github.com/yigit/schooldash/internal/pkg/logger"
	"github.com/yigit/schooldash/internal/server"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "schooldash",
		Short:         "School management dashboard",
		Long:          "schooldash serves the server-rendered school management dashboard in front of the school REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", filepath.Join("configs", "config.yaml"), "Config file path (YAML)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the dashboard web server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply session store migrations to PostgreSQL",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "stub-api",
			Short: "Run the seeded in-memory school API for development",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runStub(configPath)
			},
		},
	)
	return cmd
}

func runServe(configPath string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}
	srv, err := server.NewServer(cfg, lgr)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	if err := srv.Run(); err != nil {
		return err
	}
	lgr.Info().Msg("Application finished gracefully.")
	return nil
}

func runMigrate(ctx context.Context, configPath string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}
	if cfg.Session.Store != config.SessionStorePostgres {
		lgr.Warn().Str("store", cfg.Session.Store).Msg("Session store is not postgres; migrating anyway")
	}
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()
	return bootstrap.RunMigrations(ctx, database, lgr)
}

func runStub(configPath string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}
	srv, err := server.NewStubServer(cfg, lgr)
	if err != nil {
		return fmt.Errorf("failed to initialize stub api: %w", err)
	}
	return srv.Run()
}
