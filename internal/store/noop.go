package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/bitemeapp/biteme/internal/domain"
)

// Compile-time interface check.
var _ domain.Store = (*NoOp)(nil)

// NoOp is a store that persists nothing. It is used when the database cannot
// be opened: browsing and cooking keep working while every personalization
// feature silently degrades to empty reads and ignored writes.
type NoOp struct {
	log *zap.Logger
}

// NewNoOp creates a no-op store.
func NewNoOp(log *zap.Logger) *NoOp {
	return &NoOp{log: log}
}

func (n *NoOp) ToggleFavorite(ctx context.Context, recipeID string) (bool, error) {
	n.log.Debug("store no-op: toggle favorite", zap.String("recipe_id", recipeID))
	return false, nil
}

func (n *NoOp) IsFavorited(ctx context.Context, recipeID string) (bool, error) {
	return false, nil
}

func (n *NoOp) FavoriteIDs(ctx context.Context) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (n *NoOp) Favorites(ctx context.Context) ([]domain.Favorite, error) {
	return nil, nil
}

func (n *NoOp) AddShoppingItem(ctx context.Context, recipeID, ingredientID string) (*domain.ShoppingItem, error) {
	n.log.Debug("store no-op: add shopping item", zap.String("recipe_id", recipeID))
	return &domain.ShoppingItem{RecipeID: recipeID, IngredientID: ingredientID}, nil
}

func (n *NoOp) RemoveShoppingItem(ctx context.Context, recipeID, ingredientID string) error {
	return nil
}

func (n *NoOp) ToggleShoppingItem(ctx context.Context, id uint) (*domain.ShoppingItem, error) {
	return nil, domain.ErrNotFound
}

func (n *NoOp) ShoppingItems(ctx context.Context) ([]domain.ShoppingItem, error) {
	return nil, nil
}

func (n *NoOp) ShoppingItemsByRecipe(ctx context.Context, recipeID string) ([]domain.ShoppingItem, error) {
	return nil, nil
}

func (n *NoOp) UncheckedCount(ctx context.Context) (int64, error) {
	return 0, nil
}

func (n *NoOp) StartSession(ctx context.Context, recipeID string) (*domain.CookingSession, error) {
	n.log.Debug("store no-op: start session", zap.String("recipe_id", recipeID))
	return &domain.CookingSession{RecipeID: recipeID}, nil
}

func (n *NoOp) CompleteSession(ctx context.Context, id uint) (*domain.CookingSession, error) {
	return nil, domain.ErrNotFound
}

func (n *NoOp) MarkSessionRated(ctx context.Context, id uint) (*domain.CookingSession, error) {
	return nil, domain.ErrNotFound
}

func (n *NoOp) MarkSessionDismissed(ctx context.Context, id uint) (*domain.CookingSession, error) {
	return nil, domain.ErrNotFound
}

func (n *NoOp) CompletedSessions(ctx context.Context) ([]domain.CookingSession, error) {
	return nil, nil
}

func (n *NoOp) SessionsByRecipe(ctx context.Context, recipeID string) ([]domain.CookingSession, error) {
	return nil, nil
}

func (n *NoOp) HasCompletedAnyCooking(ctx context.Context) (bool, error) {
	return false, nil
}

func (n *NoOp) SaveRating(ctx context.Context, recipeID string, rating int) (*domain.Rating, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	n.log.Debug("store no-op: save rating", zap.String("recipe_id", recipeID))
	return &domain.Rating{RecipeID: recipeID, Rating: rating}, nil
}

func (n *NoOp) RatingFor(ctx context.Context, recipeID string) (*domain.Rating, error) {
	return nil, domain.ErrNotFound
}

func (n *NoOp) Ratings(ctx context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

func (n *NoOp) SaveNote(ctx context.Context, recipeID, text string) (*domain.CookingNote, error) {
	return nil, nil
}

func (n *NoOp) NoteFor(ctx context.Context, recipeID string) (*domain.CookingNote, error) {
	return nil, domain.ErrNotFound
}

func (n *NoOp) Setting(ctx context.Context, key string, out any) (bool, error) {
	return false, nil
}

func (n *NoOp) SetSetting(ctx context.Context, key string, value any) error {
	return nil
}

func (n *NoOp) SetSettings(ctx context.Context, values map[string]any) error {
	return nil
}

func (n *NoOp) DeleteSetting(ctx context.Context, key string) error {
	return nil
}

func (n *NoOp) Close() error { return nil }
