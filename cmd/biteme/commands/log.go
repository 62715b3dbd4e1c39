package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bitemeapp/biteme/internal/cookinglog"
	"github.com/bitemeapp/biteme/internal/display"
	"github.com/bitemeapp/biteme/internal/domain"
)

// logCmd shows the cooking log: headline stats, most made, and timeline.
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the cooking log",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sessions, err := st.CompletedSessions(ctx)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("Nothing cooked yet.")
			return nil
		}

		recipes, err := cat.Load(ctx)
		if err != nil {
			return err
		}
		byID := make(map[string]*domain.Recipe, len(recipes))
		for i := range recipes {
			byID[recipes[i].ID] = &recipes[i]
		}

		fmt.Println(display.LogStats(cookinglog.Summarize(sessions, time.Now())))
		fmt.Println()
		fmt.Println(display.MostMade(cookinglog.MostMade(sessions, byID)))
		fmt.Println()
		fmt.Println(display.Timeline(cookinglog.Timeline(sessions, byID)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
