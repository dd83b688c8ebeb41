package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local learning data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("refusing to delete local data without --force")
		}

		d, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := d.store.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Local learning data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Actually delete the data")
}
