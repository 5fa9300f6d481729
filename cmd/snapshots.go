package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots [job]",
	Short: "List snapshots on a job's target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var target string
		for _, j := range cfg.Jobs {
			if j.Name == args[0] {
				target = j.Target
				break
			}
		}
		if target == "" {
			return fmt.Errorf("no job named %q in config", args[0])
		}

		entries, err := os.ReadDir(target)
		if err != nil {
			return fmt.Errorf("failed to read target dir: %w", err)
		}

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".log") {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Sort(sort.Reverse(sort.StringSlice(names)))

		if len(names) == 0 {
			fmt.Println("no snapshots yet")
			return nil
		}

		for _, name := range names {
			if strings.HasSuffix(name, "_incomplete") {
				fmt.Printf("%s (incomplete)\n", name)
				continue
			}
			fmt.Println(name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotsCmd)
}
