package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// refreshCmd forces a catalog refetch, bypassing the version gate.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force-refresh the recipe catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cat.ForceRefresh(ctx); err != nil {
			return err
		}
		recipes, err := cat.Load(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Catalog refreshed: %d recipes\n", len(recipes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
