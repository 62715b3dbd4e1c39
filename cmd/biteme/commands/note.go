package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// noteCmd shows or sets the cooking note for a recipe. Setting an empty
// note deletes it.
var noteCmd = &cobra.Command{
	Use:   "note <recipe-id> [text...]",
	Short: "Show or set a recipe's cooking note",
	Long: `With only a recipe id, print the stored note. With text, replace it;
empty text removes the note.

Examples:
  biteme note chickpea-curry
  biteme note chickpea-curry less salt next time
  biteme note chickpea-curry ""`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		recipeID := args[0]

		if _, err := cat.Get(ctx, recipeID); err != nil {
			return err
		}

		if len(args) == 1 {
			text, err := eng.Note(ctx, recipeID)
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Println("No note.")
			} else {
				fmt.Println(text)
			}
			return nil
		}

		text := strings.Join(args[1:], " ")
		if err := eng.SaveNote(ctx, recipeID, text); err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			fmt.Println("Note removed.")
		} else {
			fmt.Println("Note saved.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
}
