package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/app"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample catalog, content, and an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cleanup, err := openDatabase()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := app.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		if err := seed.Run(cmd.Context(), db); err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		color.Green("seed completed")
		color.Yellow("default admin login: %s / %s", seed.AdminEmail, seed.AdminPassword)
		return nil
	},
}
