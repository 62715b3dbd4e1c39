package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bitemeapp/biteme/internal/display"
)

// rateCmd records a star rating for a recipe. When an unrated cooking
// session for the recipe is pending, rating it also resolves the prompt.
var rateCmd = &cobra.Command{
	Use:   "rate <recipe-id> <stars>",
	Short: "Rate a recipe 1-5 stars",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		recipeID := args[0]

		stars, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("stars must be a number: %w", err)
		}

		recipe, err := cat.Get(ctx, recipeID)
		if err != nil {
			return err
		}

		prompt, err := eng.RatingPrompt(ctx)
		if err != nil {
			return err
		}
		if prompt != nil && prompt.Recipe.ID == recipeID {
			if err := eng.Rate(ctx, prompt.Session.ID, recipeID, stars); err != nil {
				return err
			}
		} else if _, err := st.SaveRating(ctx, recipeID, stars); err != nil {
			return err
		}

		fmt.Printf("%s %s\n", recipe.Name, display.Stars(stars))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
}
