package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageza/fitlog/backend/config"
	"github.com/pageza/fitlog/backend/internal/database"
	"github.com/pageza/fitlog/backend/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "fitctl",
	Short: "fitctl manages the fitness tracker database",
	Long:  "fitctl applies schema migrations and loads sample accounts for the fitness tracker API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(config.IsProduction())
	},
	SilenceUsage: true,
}

func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB loads configuration and connects to the configured database
func openDB() (*config.Config, *database.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return cfg, db, nil
}
