package cmd

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mfeller/tradelog/images"
	"github.com/mfeller/tradelog/pkg/logger"
	"github.com/mfeller/tradelog/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the journal web UI",
	Long: `Run the local web application: the trade entry form plus the
journal history. If backup.schedule is set in the config, backups are
taken on that cron schedule while the server runs.

Example:
  tradelog serve -c tradelog.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.Must(logger.New())
	defer log.Sync()

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	imgs := images.New(cfg.Images.Dir, cfg.Images.ThumbDir)

	if cfg.Backup.Schedule != "" {
		sched := cron.New()
		_, err := sched.AddFunc(cfg.Backup.Schedule, func() {
			if path, err := backupNow(cfg); err != nil {
				log.Error("scheduled backup", zap.Error(err))
			} else {
				log.Info("scheduled backup written", zap.String("path", path))
			}
		})
		if err != nil {
			return fmt.Errorf("backup schedule: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := web.New(cfg, store, imgs, logger.Named(log, "web"))
	return srv.Run()
}
