package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <word-id>",
	Short: "Record that a word was viewed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ws, err := d.tracker.RecordView(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s, %d views\n", ws.WordID, ws.Status, ws.ViewCount)
		return nil
	},
}
