package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bitemeapp/biteme/internal/domain"
)

// ToggleFavorite flips the favorite state for a recipe and returns the new
// state. The check and the write share one transaction so two rapid toggles
// cannot race into a duplicate or a missed delete.
func (s *Store) ToggleFavorite(ctx context.Context, recipeID string) (bool, error) {
	var favorited bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Favorite
		err := tx.First(&existing, "recipe_id = ?", recipeID).Error
		switch {
		case err == nil:
			favorited = false
			return tx.Delete(&domain.Favorite{}, "recipe_id = ?", recipeID).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			favorited = true
			return tx.Create(&domain.Favorite{RecipeID: recipeID, CreatedAt: nowMillis()}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, fmt.Errorf("toggling favorite: %w", err)
	}

	s.log.Debug("favorite toggled", zap.String("recipe_id", recipeID), zap.Bool("favorited", favorited))
	return favorited, nil
}

// IsFavorited reports whether a favorite row exists for the recipe.
func (s *Store) IsFavorited(ctx context.Context, recipeID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return count > 0, nil
}

// FavoriteIDs returns the set of favorited recipe IDs.
func (s *Store) FavoriteIDs(ctx context.Context) (map[string]bool, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("listing favorite ids: %w", err)
	}

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// Favorites returns all favorite rows, newest first.
func (s *Store) Favorites(ctx context.Context) ([]domain.Favorite, error) {
	var favs []domain.Favorite
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	return favs, nil
}
