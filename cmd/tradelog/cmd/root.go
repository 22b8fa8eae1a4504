package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mfeller/tradelog/config"
	"github.com/mfeller/tradelog/journal"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A personal trading journal for micro futures",
	Long: `Tradelog keeps a journal of futures round-turns: entry and exit
prices, contracts, costs, setups, notes and screenshots, with the net
P&L computed for every trade.

It provides tools for:
  - Serving the journal as a local web app
  - Listing, inspecting and deleting logged trades
  - Exporting the journal to CSV
  - Backing up and restoring the journal and its screenshots`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (YAML or JSON)")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgPath)
}

func openStore(cfg *config.Config) (journal.Store, error) {
	if cfg.Journal.Type == "sqlite" {
		return journal.NewSQLite(cfg.Journal.DBPath)
	}
	return journal.NewJSON(cfg.Journal.DataFile)
}
