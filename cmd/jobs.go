package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List configured backup jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfg.Jobs) == 0 {
			fmt.Println("no jobs configured")
			return nil
		}

		fmt.Printf("%-12s %-30s %-30s %s\n", "NAME", "SOURCE", "TARGET", "MOUNTPOINT")
		for _, j := range cfg.Jobs {
			fmt.Printf("%-12s %-30s %-30s %s\n", j.Name, j.Source, j.Target, j.Mountpoint)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}
