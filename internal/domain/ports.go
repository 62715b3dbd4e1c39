package domain

import "context"

// CatalogSource supplies the immutable recipe catalog. Implementations cache
// aggressively: network failure degrades to the last cached catalog, then to
// an empty list, never to an error surfaced to the user.
type CatalogSource interface {
	// Load returns the full catalog, fetching only if no in-memory copy
	// exists for this process.
	Load(ctx context.Context) ([]Recipe, error)
	// Get returns a single recipe by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Recipe, error)
	// Refresh re-checks the manifest and reports whether the catalog
	// version changed (callers must then rebuild derived views).
	Refresh(ctx context.Context) (bool, error)
	// ForceRefresh bypasses any intermediary caches and refetches both the
	// manifest and the recipe document.
	ForceRefresh(ctx context.Context) error
}

// FavoriteStore manages the favorites collection. Favoriting is existence
// based: a row means favorited, deletion means unfavorited.
type FavoriteStore interface {
	// ToggleFavorite flips the favorite state and returns the new state.
	ToggleFavorite(ctx context.Context, recipeID string) (bool, error)
	IsFavorited(ctx context.Context, recipeID string) (bool, error)
	// FavoriteIDs returns the set of currently favorited recipe IDs.
	FavoriteIDs(ctx context.Context) (map[string]bool, error)
	Favorites(ctx context.Context) ([]Favorite, error)
}

// ShoppingStore manages the shopping list collection.
type ShoppingStore interface {
	// AddShoppingItem inserts the pair if absent and returns the stored
	// item. Adding an existing pair is a no-op returning the existing row.
	AddShoppingItem(ctx context.Context, recipeID, ingredientID string) (*ShoppingItem, error)
	RemoveShoppingItem(ctx context.Context, recipeID, ingredientID string) error
	// ToggleShoppingItem flips the checked state of an item by primary key.
	ToggleShoppingItem(ctx context.Context, id uint) (*ShoppingItem, error)
	// ShoppingItems returns the full list, sweeping items whose checked
	// timestamp is more than an hour old.
	ShoppingItems(ctx context.Context) ([]ShoppingItem, error)
	ShoppingItemsByRecipe(ctx context.Context, recipeID string) ([]ShoppingItem, error)
	// UncheckedCount counts items not yet ticked off.
	UncheckedCount(ctx context.Context) (int64, error)
}

// SessionStore manages the cooking sessions collection.
type SessionStore interface {
	StartSession(ctx context.Context, recipeID string) (*CookingSession, error)
	// CompleteSession stamps completed_at exactly once. Completing an
	// already-completed session returns it unchanged.
	CompleteSession(ctx context.Context, id uint) (*CookingSession, error)
	// MarkSessionRated stamps rated_at unless the session is already
	// resolved. MarkSessionDismissed is its mutually exclusive counterpart.
	MarkSessionRated(ctx context.Context, id uint) (*CookingSession, error)
	MarkSessionDismissed(ctx context.Context, id uint) (*CookingSession, error)
	// CompletedSessions returns every session with a completion stamp.
	CompletedSessions(ctx context.Context) ([]CookingSession, error)
	SessionsByRecipe(ctx context.Context, recipeID string) ([]CookingSession, error)
	// HasCompletedAnyCooking is a short-circuiting existence probe used to
	// gate install-prompt eligibility.
	HasCompletedAnyCooking(ctx context.Context) (bool, error)
}

// RatingStore manages the ratings collection.
type RatingStore interface {
	// SaveRating upserts the single rating row for a recipe, preserving
	// the created_at of the first rating ever given.
	SaveRating(ctx context.Context, recipeID string, rating int) (*Rating, error)
	RatingFor(ctx context.Context, recipeID string) (*Rating, error)
	// Ratings returns recipe ID to star value for every rated recipe.
	Ratings(ctx context.Context) (map[string]int, error)
}

// NoteStore manages the cooking notes collection.
type NoteStore interface {
	// SaveNote trims and stores the note; empty text deletes the row and
	// returns nil.
	SaveNote(ctx context.Context, recipeID, text string) (*CookingNote, error)
	NoteFor(ctx context.Context, recipeID string) (*CookingNote, error)
}

// SettingStore manages the settings collection. Values round-trip through
// JSON, so out must be a pointer.
type SettingStore interface {
	// Setting reads the value for key into out, reporting whether the key
	// exists.
	Setting(ctx context.Context, key string, out any) (bool, error)
	SetSetting(ctx context.Context, key string, value any) error
	// SetSettings writes several keys in one transaction, all or nothing.
	SetSettings(ctx context.Context, values map[string]any) error
	DeleteSetting(ctx context.Context, key string) error
}

// Store is the full local persistence surface: six independent collections
// behind one handle with an explicit open/close lifecycle.
type Store interface {
	FavoriteStore
	ShoppingStore
	SessionStore
	RatingStore
	NoteStore
	SettingStore

	Close() error
}
