package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		a, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("create app: %w", err)
		}

		return a.Run()
	},
}
