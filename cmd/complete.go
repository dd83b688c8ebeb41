package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeScore int

var completeCmd = &cobra.Command{
	Use:   "complete <category-id> <lesson-id>",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := d.engine.CompleteLesson(cmd.Context(), args[0], args[1], completeScore)
		if err != nil {
			return err
		}

		fmt.Printf("Lesson %s completed (score %d). Category %s at %d%%.\n",
			args[1], completeScore, result.Category.CategoryID, result.Category.Progress)
		if result.UnlockedLessonID != "" {
			fmt.Printf("Unlocked lesson %s.\n", result.UnlockedLessonID)
		}
		if result.UnlockedCategoryID != "" {
			fmt.Printf("Unlocked category %s.\n", result.UnlockedCategoryID)
		}
		fmt.Printf("Totals: %d lessons, %d points, %d day streak.\n",
			result.Progress.TotalLessonsCompleted, result.Progress.TotalPoints, result.Progress.Streak)
		return nil
	},
}

func init() {
	completeCmd.Flags().IntVar(&completeScore, "score", 0, "Score achieved in the lesson")
}
