package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncPush bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync progress with the remote service",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if d.reconciler == nil {
			return fmt.Errorf("sync is not configured (set WORDTRAIL_API_URL, WORDTRAIL_AUTH_TOKEN, WORDTRAIL_USER_ID)")
		}
		ctx := cmd.Context()

		if syncPush {
			if err := d.reconciler.PushProgress(ctx); err != nil {
				return err
			}
			fmt.Println("Push attempted.")
			return nil
		}

		cats, agg, err := d.reconciler.SyncOnLogin(ctx, d.syncCfg.UserID)
		if err != nil {
			return err
		}

		// Pulled trees carry server-side percentages; recompute them
		// locally and apply any pending unlock propagation.
		for _, cat := range cats {
			if _, err := d.engine.UpdateCategoryProgress(ctx, cat.CategoryID); err != nil {
				return err
			}
		}

		fmt.Printf("Synced. %d categories local.\n", len(cats))
		if agg != nil {
			fmt.Printf("Totals: %d lessons, %d points, %d day streak.\n",
				agg.TotalLessonsCompleted, agg.TotalPoints, agg.Streak)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncPush, "push", false, "Push local categories to the server instead of pulling")
}
