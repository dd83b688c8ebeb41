package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category tree and unlock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		cats, err := d.engine.LoadCategories(cmd.Context())
		if err != nil {
			return err
		}

		for _, cat := range cats {
			fmt.Printf("%s %s (%d%%)\n", cat.CategoryID, cat.Title, cat.Progress)
			for _, l := range cat.Lessons {
				marker := " "
				switch {
				case l.Completed:
					marker = "x"
				case l.Locked:
					marker = "-"
				}
				line := fmt.Sprintf("  [%s] %s %s", marker, l.LessonID, l.Title)
				if l.Score != nil {
					line += fmt.Sprintf(" (score %d)", *l.Score)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}
