package cmd

import (
	"fmt"

	"linkbak/internal/backup"
	"linkbak/internal/repository"

	"github.com/spf13/cobra"
)

var backupJob string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Run the configured backup jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer func() { _ = log.Sync() }()

		jobs := cfg.Jobs
		if backupJob != "" {
			jobs = nil
			for _, j := range cfg.Jobs {
				if j.Name == backupJob {
					jobs = append(jobs, j)
				}
			}
			if len(jobs) == 0 {
				return fmt.Errorf("no job named %q in config", backupJob)
			}
		}

		if len(jobs) == 0 {
			log.Info("no jobs configured, add jobs to ~/.linkbak/config.yaml")
			return nil
		}

		runner := backup.NewRunner(log, repository.NewRunRepository(), cfg.RsyncPath, cfg.LsPath)
		if err := runner.RunAll(jobs); err != nil {
			return err
		}

		fmt.Printf("done: %d job(s) backed up\n", len(jobs))
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupJob, "job", "", "run only the named job")
	rootCmd.AddCommand(backupCmd)
}
