package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bitemeapp/biteme/internal/cookinglog"
	"github.com/bitemeapp/biteme/internal/display"
	"github.com/bitemeapp/biteme/internal/search"
)

var (
	// List flags
	listQuery     string
	listTag       string
	listMinRating int
	listFavorites bool
	listDietary   []string
)

// listCmd shows the catalog, filtered and ranked.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes from the catalog",
	Long: `List recipes, optionally filtered. Search ranks matches by where the
query hits (name beats description beats ingredients); other filters
narrow the result.

Examples:
  biteme list                          # Whole catalog
  biteme list --search curry           # Ranked search
  biteme list --tag dinner --min-rating 4
  biteme list --favorites --dietary vegan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listQuery, "search", "s", "", "Search query")
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Filter by tag")
	listCmd.Flags().IntVar(&listMinRating, "min-rating", 0, "Minimum star rating (1-5)")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "Favorites only")
	listCmd.Flags().StringSliceVar(&listDietary, "dietary", nil, "Dietary requirements (e.g. vegan,gluten-free)")
}

// settingDietaryFilters persists the dietary selection between runs.
const settingDietaryFilters = "dietaryFilters"

func runList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	recipes, err := cat.Load(ctx)
	if err != nil {
		return err
	}

	// An explicit --dietary selection sticks; otherwise reuse the stored one.
	if cmd.Flags().Changed("dietary") {
		if err := st.SetSetting(ctx, settingDietaryFilters, listDietary); err != nil {
			log.Warn("persisting dietary filters", zap.Error(err))
		}
	} else if _, err := st.Setting(ctx, settingDietaryFilters, &listDietary); err != nil {
		log.Warn("loading dietary filters", zap.Error(err))
	}

	favorites, err := st.FavoriteIDs(ctx)
	if err != nil {
		log.Warn("loading favorites", zap.Error(err))
	}
	ratings, err := st.Ratings(ctx)
	if err != nil {
		log.Warn("loading ratings", zap.Error(err))
	}
	sessions, err := st.CompletedSessions(ctx)
	if err != nil {
		log.Warn("loading sessions", zap.Error(err))
	}
	stats := cookinglog.StatsByRecipe(sessions)

	sctx := search.Context{Favorites: favorites, Ratings: ratings}
	filtered := search.Apply(recipes, search.Filter{
		Query:         listQuery,
		Tag:           listTag,
		MinRating:     listMinRating,
		FavoritesOnly: listFavorites,
		Dietary:       listDietary,
	}, sctx)

	if len(filtered) == 0 {
		fmt.Println("No recipes match.")
		return nil
	}

	for i := range filtered {
		r := &filtered[i]
		fmt.Println(display.Card(r, display.CardContext{
			Favorited: favorites[r.ID],
			Rating:    ratings[r.ID],
			Stats:     stats[r.ID],
		}))
	}
	fmt.Printf("%d of %d recipes\n", len(filtered), len(recipes))
	return nil
}
