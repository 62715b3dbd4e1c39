package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// favoriteCmd toggles a recipe's favorite flag.
var favoriteCmd = &cobra.Command{
	Use:   "favorite <recipe-id>",
	Short: "Toggle a recipe as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		recipeID := args[0]

		recipe, err := cat.Get(ctx, recipeID)
		if err != nil {
			return err
		}

		favorited, err := st.ToggleFavorite(ctx, recipeID)
		if err != nil {
			return err
		}

		if favorited {
			fmt.Printf("♥ %s added to favorites\n", recipe.Name)
		} else {
			fmt.Printf("%s removed from favorites\n", recipe.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}
