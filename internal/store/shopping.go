package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bitemeapp/biteme/internal/domain"
)

// checkedRetention is how long a checked item survives before the sweep
// removes it.
const checkedRetention = time.Hour

// AddShoppingItem inserts an ingredient onto the list. Adding a pair that is
// already present is a no-op returning the existing row.
func (s *Store) AddShoppingItem(ctx context.Context, recipeID, ingredientID string) (*domain.ShoppingItem, error) {
	var item domain.ShoppingItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&item, "recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).Error
		if err == nil {
			return nil // already on the list
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item = domain.ShoppingItem{
			RecipeID:     recipeID,
			IngredientID: ingredientID,
			CreatedAt:    nowMillis(),
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, fmt.Errorf("adding shopping item: %w", err)
	}

	s.log.Debug("shopping item added",
		zap.String("recipe_id", recipeID),
		zap.String("ingredient_id", ingredientID),
		zap.Uint("id", item.ID))
	return &item, nil
}

// RemoveShoppingItem deletes the item for the given pair. Removing an absent
// pair is a no-op.
func (s *Store) RemoveShoppingItem(ctx context.Context, recipeID, ingredientID string) error {
	err := s.db.WithContext(ctx).
		Delete(&domain.ShoppingItem{}, "recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).Error
	if err != nil {
		return fmt.Errorf("removing shopping item: %w", err)
	}
	return nil
}

// ToggleShoppingItem flips the checked state of an item by primary key.
// Returns ErrNotFound if the item was already swept or removed.
func (s *Store) ToggleShoppingItem(ctx context.Context, id uint) (*domain.ShoppingItem, error) {
	var item domain.ShoppingItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return wrapNotFound(err)
		}

		if item.CheckedAt != nil {
			item.CheckedAt = nil
		} else {
			now := nowMillis()
			item.CheckedAt = &now
		}
		return tx.Save(&item).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("toggling shopping item %d: %w", id, err)
	}
	return &item, nil
}

// ShoppingItems returns the full list ordered by creation time. Items whose
// checked timestamp is older than an hour are swept first; the sweep rides
// on list loads so no background job is needed.
func (s *Store) ShoppingItems(ctx context.Context) ([]domain.ShoppingItem, error) {
	cutoff := time.Now().Add(-checkedRetention).UnixMilli()
	res := s.db.WithContext(ctx).
		Delete(&domain.ShoppingItem{}, "checked_at IS NOT NULL AND checked_at < ?", cutoff)
	if res.Error != nil {
		return nil, fmt.Errorf("sweeping shopping list: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		s.log.Debug("swept checked shopping items", zap.Int64("count", res.RowsAffected))
	}

	var items []domain.ShoppingItem
	err := s.db.WithContext(ctx).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("listing shopping items: %w", err)
	}
	return items, nil
}

// ShoppingItemsByRecipe returns the items belonging to one recipe.
func (s *Store) ShoppingItemsByRecipe(ctx context.Context, recipeID string) ([]domain.ShoppingItem, error) {
	var items []domain.ShoppingItem
	err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("listing shopping items for %s: %w", recipeID, err)
	}
	return items, nil
}

// UncheckedCount counts items not yet ticked off, for the cart badge.
func (s *Store) UncheckedCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&domain.ShoppingItem{}).
		Where("checked_at IS NULL").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting shopping items: %w", err)
	}
	return count, nil
}
