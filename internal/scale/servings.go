package scale

import (
	"context"

	"github.com/bitemeapp/biteme/internal/domain"
)

// Servings persists a per-recipe serving override so the chosen count
// survives reloads. The scaling ratio is stored count over the recipe's
// default.
type Servings struct {
	settings domain.SettingStore
}

// NewServings wraps a setting store.
func NewServings(settings domain.SettingStore) *Servings {
	return &Servings{settings: settings}
}

func servingsKey(recipeID string) string {
	return "servings_" + recipeID
}

// Get returns the stored serving count for a recipe, or fallback when none
// is stored or storage is unreachable.
func (s *Servings) Get(ctx context.Context, recipeID string, fallback int) int {
	var count int
	ok, err := s.settings.Setting(ctx, servingsKey(recipeID), &count)
	if err != nil || !ok || count <= 0 {
		return fallback
	}
	return count
}

// Set stores the serving count for a recipe. Non-positive counts clear the
// override.
func (s *Servings) Set(ctx context.Context, recipeID string, count int) error {
	if count <= 0 {
		return s.settings.DeleteSetting(ctx, servingsKey(recipeID))
	}
	return s.settings.SetSetting(ctx, servingsKey(recipeID), count)
}

// Ratio computes the multiplier for a recipe given its default servings.
func (s *Servings) Ratio(ctx context.Context, recipe *domain.Recipe) float64 {
	if recipe.Servings <= 0 {
		return 1
	}
	stored := s.Get(ctx, recipe.ID, recipe.Servings)
	return float64(stored) / float64(recipe.Servings)
}
