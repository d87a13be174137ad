package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/fitlog/backend/internal/database"
	"github.com/pageza/fitlog/backend/internal/logger"
	"github.com/pageza/fitlog/backend/internal/seed"
)

var skipMigrate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Recreate the sample users and their records",
	Long:  "seed deletes john@example.com and jane@example.com with all their records and creates them again with a week of sample data.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if !skipMigrate {
			if err := database.RunMigrations(db.DB); err != nil {
				return err
			}
		}

		loc := cfg.Location()
		res, err := seed.Run(cmd.Context(), db.DB, time.Now().In(loc), loc)
		if err != nil {
			return err
		}
		logger.L().Info("Seeding complete",
			zap.Int("users", res.Users),
			zap.Int("workouts", res.Workouts),
			zap.Int("meals", res.Meals),
			zap.Int("water_days", res.WaterDays),
			zap.String("password", seed.Password),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not run migrations before seeding")
	rootCmd.AddCommand(seedCmd)
}
