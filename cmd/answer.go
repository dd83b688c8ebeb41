package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var answerWrong bool

var answerCmd = &cobra.Command{
	Use:   "answer <word-id>",
	Short: "Record an answer for a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ws, err := d.tracker.RecordAnswer(cmd.Context(), args[0], !answerWrong)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s (%d correct, %d incorrect)\n",
			ws.WordID, ws.Status, ws.CorrectCount, ws.IncorrectCount)
		return nil
	},
}

func init() {
	answerCmd.Flags().BoolVar(&answerWrong, "wrong", false, "Record the answer as incorrect")
}
