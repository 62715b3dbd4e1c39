package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bitemeapp/biteme/internal/domain"
)

// SaveNote stores the free-text note for a recipe. Empty or whitespace-only
// text deletes the row instead of storing a blank, and returns nil.
func (s *Store) SaveNote(ctx context.Context, recipeID, text string) (*domain.CookingNote, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		err := s.db.WithContext(ctx).Delete(&domain.CookingNote{}, "recipe_id = ?", recipeID).Error
		if err != nil {
			return nil, fmt.Errorf("deleting note: %w", err)
		}
		return nil, nil
	}

	note := domain.CookingNote{
		RecipeID:  recipeID,
		Text:      trimmed,
		UpdatedAt: nowMillis(),
	}
	if err := s.db.WithContext(ctx).Save(&note).Error; err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}
	return &note, nil
}

// NoteFor returns the note for a recipe, or ErrNotFound.
func (s *Store) NoteFor(ctx context.Context, recipeID string) (*domain.CookingNote, error) {
	var note domain.CookingNote
	err := s.db.WithContext(ctx).First(&note, "recipe_id = ?", recipeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading note for %s: %w", recipeID, err)
	}
	return &note, nil
}
