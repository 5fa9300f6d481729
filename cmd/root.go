package cmd

import (
	"errors"
	"os"

	"linkbak/internal/backup"
	"linkbak/internal/config"
	"linkbak/internal/db"
	"linkbak/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg   *config.Config
	log   *zap.Logger
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "linkbak",
	Short: "Incremental hardlink backups with rsync",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log, err = logger.New(cfg.LogFile, debug)
		if err != nil {
			return err
		}

		configOnlyCmds := map[string]bool{
			"jobs": true, "snapshots": true,
		}
		if !configOnlyCmds[cmd.Name()] {
			if err := db.Init(cfg.DBPath); err != nil {
				return err
			}
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *backup.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on the console")
}
