package main

import (
	"context"
	"os"

	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/database"
	"github.com/lshigami/toeic-practice-api/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// @title TOEIC Practice API
// @version 1.0
// @description API for TOEIC listening and reading practice: tests, progress history, scoring and AI explanations.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "toeic-api",
		Short:        "TOEIC practice backend",
		SilenceUsage: true,
	}

	serve := serveCmd()
	root.AddCommand(serve, migrateCmd())

	// bare `toeic-api` runs the server
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.String("port", "", "HTTP port (overrides SERVER_PORT)")
	f.String("log-level", "", "Log level (overrides LOG_LEVEL)")
	f.Bool("migrate", true, "Run database migrations on start")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			return AutoMigrateDB(db)
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if port, _ := flags.GetString("port"); port != "" {
		viper.Set("SERVER_PORT", port)
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		viper.Set("LOG_LEVEL", level)
	}
	migrate, _ := flags.GetBool("migrate")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	options := []fx.Option{
		fx.Supply(cfg),
		fx.NopLogger,
		modules,
		fx.Invoke(RegisterRoutesAndStartServer),
	}
	if migrate {
		options = append(options, fx.Invoke(AutoMigrateDB))
	}
	app := fx.New(options...)

	if err := app.Start(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to start application")
		return err
	}

	<-app.Wait()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	return app.Stop(stopCtx)
}
