package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanmay/wordtrail/internal/remote"
	"github.com/tanmay/wordtrail/internal/wordstats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		ctx := cmd.Context()

		stats, err := d.tracker.Stats(ctx)
		if err != nil {
			return err
		}

		var mastered, learning int
		for _, ws := range stats {
			switch wordstats.Status(ws.Status) {
			case wordstats.StatusMastered:
				mastered++
			case wordstats.StatusLearning:
				learning++
			}
		}
		fmt.Printf("Words: %d tracked, %d learning, %d mastered\n", len(stats), learning, mastered)

		agg, err := d.engine.Progress(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Lessons completed: %d\n", agg.TotalLessonsCompleted)
		fmt.Printf("Total points: %d\n", agg.TotalPoints)
		fmt.Printf("Streak: %d day(s)\n", agg.Streak)

		cats, err := d.engine.LoadCategories(ctx)
		if err != nil {
			return err
		}
		completed := 0
		for _, cat := range cats {
			if cat.Progress == 100 {
				completed++
			}
		}
		fmt.Printf("Categories completed: %d/%d\n", completed, len(cats))

		// Merge in the server-side aggregate when a remote is configured.
		if d.syncCfg.Enabled() {
			client := remote.NewClient(d.syncCfg)
			remoteStats, err := client.FetchStats(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: remote stats unavailable: %v\n", err)
			} else {
				fmt.Printf("Server: %d lessons, %d points, %d categories completed\n",
					remoteStats.TotalLessonsCompleted, remoteStats.TotalPoints, remoteStats.CategoriesCompleted)
			}
		}
		return nil
	},
}
