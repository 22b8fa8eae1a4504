package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfeller/tradelog/backup"
	"github.com/mfeller/tradelog/config"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up or restore the journal and screenshots",
	Long: `Archive the journal data and its screenshots, or restore from an
archive.

Subcommands:
  create  - Write a timestamped zip archive
  restore - Extract an archive into a directory

Examples:
  tradelog backup create
  tradelog backup restore backups/tradelog-20260814-153000.zip --to ./restored`,
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a timestamped zip archive",
	Args:  cobra.NoArgs,
	RunE:  runBackupCreate,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <archive>",
	Short: "Extract an archive into a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupRestore,
}

var backupRestoreTo string

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)

	backupRestoreCmd.Flags().StringVar(&backupRestoreTo, "to", ".", "directory to restore into")
}

func runBackupCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := backupNow(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	if err := backup.Restore(args[0], backupRestoreTo); err != nil {
		return err
	}
	fmt.Printf("restored %s into %s\n", args[0], backupRestoreTo)
	return nil
}

// backupNow archives the journal store and the image directory into a
// timestamped zip under the configured backup dir.
func backupNow(cfg *config.Config) (string, error) {
	if err := os.MkdirAll(cfg.Backup.Dir, 0o755); err != nil {
		return "", fmt.Errorf("backup dir: %w", err)
	}

	dst := filepath.Join(cfg.Backup.Dir, "tradelog-"+time.Now().Format("20060102-150405")+".zip")

	paths := []string{cfg.Images.Dir}
	if cfg.Journal.Type == "sqlite" {
		paths = append(paths, cfg.Journal.DBPath)
	} else {
		// Include the previous-generation snapshot the JSON store keeps.
		paths = append(paths, cfg.Journal.DataFile, cfg.Journal.DataFile+".xz")
	}

	if err := backup.Create(dst, ".", paths...); err != nil {
		return "", err
	}
	return dst, nil
}
