package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bitemeapp/biteme/internal/domain"
)

// StartSession records the beginning of a cook-through. Only started_at is
// set; the session does not count toward anything until completed.
func (s *Store) StartSession(ctx context.Context, recipeID string) (*domain.CookingSession, error) {
	session := domain.CookingSession{
		RecipeID:  recipeID,
		StartedAt: nowMillis(),
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}

	s.log.Debug("session started", zap.Uint("id", session.ID), zap.String("recipe_id", recipeID))
	return &session, nil
}

// CompleteSession stamps completed_at exactly once. Completing an already
// completed session returns it unchanged, so a double submit cannot move the
// timestamp. Unknown IDs return ErrNotFound.
func (s *Store) CompleteSession(ctx context.Context, id uint) (*domain.CookingSession, error) {
	var session domain.CookingSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, id).Error; err != nil {
			return wrapNotFound(err)
		}
		if session.CompletedAt != nil {
			return nil
		}

		now := nowMillis()
		session.CompletedAt = &now
		return tx.Save(&session).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("completing session %d: %w", id, err)
	}

	s.log.Debug("session completed", zap.Uint("id", session.ID), zap.String("recipe_id", session.RecipeID))
	return &session, nil
}

// MarkSessionRated stamps rated_at. MarkSessionDismissed stamps
// rating_dismissed_at. The two are mutually exclusive: once a session is
// resolved either way, further marks leave it unchanged.
func (s *Store) MarkSessionRated(ctx context.Context, id uint) (*domain.CookingSession, error) {
	return s.resolveSession(ctx, id, true)
}

// MarkSessionDismissed records that the rating prompt was closed without a
// rating for this session.
func (s *Store) MarkSessionDismissed(ctx context.Context, id uint) (*domain.CookingSession, error) {
	return s.resolveSession(ctx, id, false)
}

func (s *Store) resolveSession(ctx context.Context, id uint, rated bool) (*domain.CookingSession, error) {
	var session domain.CookingSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, id).Error; err != nil {
			return wrapNotFound(err)
		}
		if session.Resolved() {
			return nil
		}

		now := nowMillis()
		if rated {
			session.RatedAt = &now
		} else {
			session.RatingDismissedAt = &now
		}
		return tx.Save(&session).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resolving session %d: %w", id, err)
	}
	return &session, nil
}

// CompletedSessions returns every completed session in completion order.
func (s *Store) CompletedSessions(ctx context.Context) ([]domain.CookingSession, error) {
	var sessions []domain.CookingSession
	err := s.db.WithContext(ctx).
		Where("completed_at IS NOT NULL").
		Order("completed_at").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("listing completed sessions: %w", err)
	}
	return sessions, nil
}

// SessionsByRecipe returns the completed sessions for a single recipe.
func (s *Store) SessionsByRecipe(ctx context.Context, recipeID string) ([]domain.CookingSession, error) {
	var sessions []domain.CookingSession
	err := s.db.WithContext(ctx).
		Where("recipe_id = ? AND completed_at IS NOT NULL", recipeID).
		Order("completed_at").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("listing sessions for %s: %w", recipeID, err)
	}
	return sessions, nil
}

// HasCompletedAnyCooking reports whether at least one completed session
// exists, without counting the whole table.
func (s *Store) HasCompletedAnyCooking(ctx context.Context) (bool, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&domain.CookingSession{}).
		Where("completed_at IS NOT NULL").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("probing completed sessions: %w", err)
	}
	return len(ids) > 0, nil
}
