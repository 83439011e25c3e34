package cli

import (
	"github.com/spf13/cobra"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "wiradoor",
	Short: "Wiradoor distributor storefront and admin API",
	Long: `Wiradoor serves the public storefront API (catalog, articles,
portfolio, checkout, inquiries) and the guarded admin panel API, backed by
a relational database.`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/config.yaml", "path to configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(reportCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
