package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfeller/tradelog/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal",
	Long: `Export journal records to other formats.

Subcommands:
  csv - Write all trades to a CSV file

Example:
  tradelog export csv --out trades.csv`,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Write all trades to a CSV file",
	Args:  cobra.NoArgs,
	RunE:  runExportCSV,
}

var exportCSVOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)

	exportCSVCmd.Flags().StringVarP(&exportCSVOut, "out", "o", "trades.csv", "output CSV path")
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	trades, err := store.List()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	f, err := os.Create(exportCSVOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := journal.ExportCSV(f, trades); err != nil {
		f.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("wrote %d trades to %s\n", len(trades), exportCSVOut)
	return nil
}
