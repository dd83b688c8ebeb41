package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanmay/wordtrail/internal/wordstats"
)

var statusSet string

var statusCmd = &cobra.Command{
	Use:   "status <word-id>",
	Short: "Show or override a word's learning status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		wordID := args[0]
		if statusSet != "" {
			status, err := wordstats.ParseStatus(statusSet)
			if err != nil {
				return err
			}
			if err := d.tracker.SetStatus(cmd.Context(), wordID, status); err != nil {
				return err
			}
		}

		fmt.Printf("%s: %s\n", wordID, d.tracker.Status(cmd.Context(), wordID))
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusSet, "set", "", "Override the status (new, learning, mastered)")
}
