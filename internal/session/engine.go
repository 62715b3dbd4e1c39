// Package session governs one cook-through of a recipe: start when the user
// enters cooking mode, complete exactly once on the last step, and the
// dependent rating-prompt flow afterwards.
package session

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/bitemeapp/biteme/internal/domain"
)

// Engine coordinates sessions, ratings, and notes. It depends only on
// interfaces and is fully testable against the real store.
type Engine struct {
	catalog domain.CatalogSource
	store   domain.Store
	log     *zap.Logger
}

// New creates a session engine.
func New(catalog domain.CatalogSource, store domain.Store, log *zap.Logger) *Engine {
	return &Engine{catalog: catalog, store: store, log: log}
}

// Start records the beginning of a cooking session. Persistence failures
// are swallowed: cooking-mode navigation must never be blocked by storage,
// so a nil return just means this cook-through goes untracked.
func (e *Engine) Start(ctx context.Context, recipeID string) *domain.CookingSession {
	session, err := e.store.StartSession(ctx, recipeID)
	if err != nil {
		e.log.Warn("session start not recorded", zap.String("recipe_id", recipeID), zap.Error(err))
		return nil
	}
	return session
}

// Complete stamps the session as finished and returns it so the caller can
// show elapsed time. ErrNotFound is surfaced (the caller skips the
// elapsed-time display); any other storage failure is swallowed with a nil
// session.
func (e *Engine) Complete(ctx context.Context, id uint) (*domain.CookingSession, error) {
	session, err := e.store.CompleteSession(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		e.log.Warn("session completion not recorded", zap.Uint("id", id), zap.Error(err))
		return nil, nil
	}
	return session, nil
}

// Rate stores the star rating for the session's recipe and marks the
// session as rated. The rating row is an upsert: a later cook overwrites
// the value while the original created_at survives.
func (e *Engine) Rate(ctx context.Context, sessionID uint, recipeID string, stars int) error {
	if stars < 1 || stars > 5 {
		return domain.ErrInvalidRating
	}

	if _, err := e.store.SaveRating(ctx, recipeID, stars); err != nil {
		return err
	}
	if _, err := e.store.MarkSessionRated(ctx, sessionID); err != nil {
		return err
	}

	e.log.Info("recipe rated",
		zap.String("recipe_id", recipeID),
		zap.Int("stars", stars),
		zap.Uint("session_id", sessionID))
	return nil
}

// Dismiss marks the session's rating prompt as closed without a rating.
func (e *Engine) Dismiss(ctx context.Context, sessionID uint) error {
	_, err := e.store.MarkSessionDismissed(ctx, sessionID)
	return err
}

// Prompt is a pending rating request: the most recently completed session
// that has been neither rated nor dismissed, with its recipe resolved.
type Prompt struct {
	Session domain.CookingSession
	Recipe  *domain.Recipe
}

// RatingPrompt returns the session that should prompt for a rating, or nil
// when none qualifies. Sessions whose recipe has left the catalog are
// skipped rather than treated as errors. Resolving one session never
// resolves other sessions of the same recipe, so a later cook prompts
// again.
func (e *Engine) RatingPrompt(ctx context.Context) (*Prompt, error) {
	sessions, err := e.store.CompletedSessions(ctx)
	if err != nil {
		return nil, err
	}

	// Newest completion first.
	sort.SliceStable(sessions, func(i, j int) bool {
		return *sessions[i].CompletedAt > *sessions[j].CompletedAt
	})

	for _, s := range sessions {
		if s.Resolved() {
			continue
		}

		recipe, err := e.catalog.Get(ctx, s.RecipeID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		return &Prompt{Session: s, Recipe: recipe}, nil
	}
	return nil, nil
}

// SaveNote stores the per-recipe note; empty text deletes it.
func (e *Engine) SaveNote(ctx context.Context, recipeID, text string) error {
	_, err := e.store.SaveNote(ctx, recipeID, text)
	return err
}

// Note returns the note text for a recipe, or "" when none exists.
func (e *Engine) Note(ctx context.Context, recipeID string) (string, error) {
	note, err := e.store.NoteFor(ctx, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return note.Text, nil
}
