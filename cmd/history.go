package cmd

import (
	"fmt"
	"time"

	"linkbak/internal/model"
	"linkbak/internal/repository"

	"github.com/spf13/cobra"
)

var (
	historyN      int
	historyFailed bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recorded backup runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewRunRepository()

		var (
			runs []model.Run
			err  error
		)
		if historyFailed {
			runs, err = repo.GetFailed()
		} else {
			runs, err = repo.GetRecent(historyN)
		}
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("no runs recorded yet")
			return nil
		}

		for _, r := range runs {
			status := "✓"
			if r.Status == model.RunFailed {
				status = "✗"
			}

			fmt.Printf("%s [%s] %-12s %s (%s)\n",
				status,
				r.StartedAt.Format("2006-01-02 15:04:05"),
				r.JobName,
				r.Snapshot,
				r.Duration.Round(time.Second),
			)
		}

		stats, err := repo.GetStats()
		if err != nil {
			return err
		}
		fmt.Printf("total %d, %d success, %d failed\n", stats.Total, stats.Success, stats.Failed)

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyN, "n", 20, "number of runs to show")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "show only failed runs")
	rootCmd.AddCommand(historyCmd)
}
