package main

import (
	"github.com/spf13/cobra"

	"github.com/pageza/fitlog/backend/internal/database"
	"github.com/pageza/fitlog/backend/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.RunMigrations(db.DB); err != nil {
			return err
		}
		logger.L().Info("Migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
