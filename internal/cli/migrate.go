package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/app"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cleanup, err := openDatabase()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := app.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		color.Green("migration completed")
		return nil
	},
}

// openDatabase loads the configuration and opens the database connection for
// one-shot commands. The returned cleanup closes the connection and logger.
func openDatabase() (*gorm.DB, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		_ = log.Close()
		return nil, nil, fmt.Errorf("setup database: %w", err)
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = log.Close()
	}
	return db, cleanup, nil
}
