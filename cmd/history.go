package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently viewed words, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		entries, err := d.tracker.History(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No views recorded yet.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.WordID)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show")
}
