package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfeller/tradelog/images"
	"github.com/mfeller/tradelog/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query and manage journal records",
	Long: `Query and manage trade records from the command line.

Subcommands:
  list    - List trades, most recent first
  show    - Show the full detail of one trade
  delete  - Delete a trade and its screenshot

Examples:
  tradelog journal list
  tradelog journal list --day 2026-08-14
  tradelog journal show <trade-id>
  tradelog journal delete <trade-id>`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show the full detail of one trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade and the screenshot it owns",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDelete,
}

var journalListDay string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalDeleteCmd)

	journalListCmd.Flags().StringVar(&journalListDay, "day", "", "only trades dated YYYY-MM-DD")
}

func runJournalList(cmd *cobra.Command, args []string) error {
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
	if journalListDay != "" {
		trades = journal.On(trades, journalListDay)
	}
	journal.SortByDateDesc(trades)

	if len(trades) == 0 {
		fmt.Println("no trades logged")
		return nil
	}

	for _, t := range trades {
		fmt.Printf("%-26s  %s  %-22s %-5s %2d  net $%9.2f\n",
			t.ID, t.Date, t.Instrument, t.Direction, t.Contracts, t.PnL)
	}

	s := journal.Summarize(trades)
	fmt.Printf("\n%d trades, %dW/%dL, net $%s", s.Trades, s.Wins, s.Losses, s.NetTotal)
	if !s.ProfitFactor.IsZero() {
		fmt.Printf(", profit factor %s", s.ProfitFactor)
	}
	fmt.Println()
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	t, err := store.Get(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Printf("ID:          %s\n", t.ID)
	fmt.Printf("Date:        %s\n", t.Date)
	fmt.Printf("Instrument:  %s\n", t.Instrument)
	fmt.Printf("Direction:   %s\n", t.Direction)
	fmt.Printf("Contracts:   %d\n", t.Contracts)
	fmt.Printf("Entry:       %s\n", t.Entry)
	fmt.Printf("Exit:        %s\n", t.Exit)
	fmt.Printf("Commissions: $%.2f\n", t.Commissions)
	fmt.Printf("Fees:        $%.2f\n", t.Fees)
	fmt.Printf("Net P&L:     $%.2f\n", t.PnL)
	if t.Setup != "" {
		fmt.Printf("Setup:       %s\n", t.Setup)
	}
	if t.Notes != "" {
		fmt.Printf("Notes:       %s\n", t.Notes)
	}
	if t.ImagePath != "" {
		fmt.Printf("Screenshot:  %s\n", t.ImagePath)
	}
	fmt.Printf("Logged:      %s\n", t.Timestamp)
	return nil
}

func runJournalDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	t, err := store.Get(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	if t.ImagePath != "" {
		imgs := images.New(cfg.Images.Dir, cfg.Images.ThumbDir)
		if err := imgs.Remove(t.ImagePath); err != nil {
			fmt.Printf("warning: could not remove screenshot: %v\n", err)
		}
	}

	if err := store.Delete(t.ID); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Printf("deleted %s\n", t.ID)
	return nil
}
