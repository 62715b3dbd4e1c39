package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bitemeapp/biteme/internal/display"
	"github.com/bitemeapp/biteme/internal/domain"
)

// shoppingCmd manages the shopping list.
var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Manage the shopping list",
	Long: `Add ingredients from recipes, tick them off while shopping, and list
the current items. Checked items disappear an hour after being ticked.

Subcommands:
  add     - Put a recipe ingredient on the list
  remove  - Take a recipe ingredient off the list
  toggle  - Tick or untick an item
  list    - Show the list`,
}

var shoppingAddCmd = &cobra.Command{
	Use:   "add <recipe-id> <ingredient-id>",
	Short: "Add an ingredient to the shopping list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		item, err := st.AddShoppingItem(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (item %d)\n", ingredientLabel(ctx, item), item.ID)
		return nil
	},
}

var shoppingRemoveCmd = &cobra.Command{
	Use:   "remove <recipe-id> <ingredient-id>",
	Short: "Remove an ingredient from the shopping list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := st.RemoveShoppingItem(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Removed.")
		return nil
	},
}

var shoppingToggleCmd = &cobra.Command{
	Use:   "toggle <item-id>",
	Short: "Tick or untick a shopping item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("item id must be a number: %w", err)
		}

		item, err := st.ToggleShoppingItem(ctx, uint(id))
		if err != nil {
			return err
		}
		fmt.Println(display.ShoppingLine(ingredientLabel(ctx, item), item.Checked()))
		return nil
	},
}

var shoppingListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		items, err := st.ShoppingItems(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Shopping list is empty.")
			return nil
		}

		for i := range items {
			item := &items[i]
			fmt.Printf("%3d  %s\n", item.ID, display.ShoppingLine(ingredientLabel(ctx, item), item.Checked()))
		}

		unchecked, err := st.UncheckedCount(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d to buy\n", unchecked)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shoppingCmd)
	shoppingCmd.AddCommand(shoppingAddCmd, shoppingRemoveCmd, shoppingToggleCmd, shoppingListCmd)
}

// ingredientLabel resolves an item to its ingredient text, falling back to
// the raw ids when the recipe is no longer in the catalog.
func ingredientLabel(ctx context.Context, item *domain.ShoppingItem) string {
	recipe, err := cat.Get(ctx, item.RecipeID)
	if err != nil {
		log.Debug("shopping item recipe missing", zap.String("recipe", item.RecipeID))
		return item.RecipeID + "/" + item.IngredientID
	}
	for _, ing := range recipe.AllIngredients() {
		if ing.ID == item.IngredientID {
			return ing.Text
		}
	}
	return item.RecipeID + "/" + item.IngredientID
}
