package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bitemeapp/biteme/internal/domain"
)

// SaveRating upserts the single rating row for a recipe. The read and write
// share one transaction so the original created_at is preserved even if two
// writers race. Values outside 1..5 are rejected before anything is written.
func (s *Store) SaveRating(ctx context.Context, recipeID string, rating int) (*domain.Rating, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	now := nowMillis()
	record := domain.Rating{
		RecipeID:  recipeID,
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Rating
		err := tx.First(&existing, "recipe_id = ?", recipeID).Error
		switch {
		case err == nil:
			record.CreatedAt = existing.CreatedAt
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, fmt.Errorf("saving rating: %w", err)
	}

	s.log.Debug("rating saved", zap.String("recipe_id", recipeID), zap.Int("rating", rating))
	return &record, nil
}

// RatingFor returns the rating row for a recipe, or ErrNotFound.
func (s *Store) RatingFor(ctx context.Context, recipeID string) (*domain.Rating, error) {
	var rating domain.Rating
	err := s.db.WithContext(ctx).First(&rating, "recipe_id = ?", recipeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading rating for %s: %w", recipeID, err)
	}
	return &rating, nil
}

// Ratings returns recipe ID to star value for every rated recipe.
func (s *Store) Ratings(ctx context.Context) (map[string]int, error) {
	var rows []domain.Rating
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing ratings: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.RecipeID] = r.Rating
	}
	return out, nil
}
