package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bitemeapp/biteme/internal/domain"
)

func setupStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "biteme.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, context.Background()
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biteme.db")
	require.NoError(t, os.WriteFile(path, []byte("not a sqlite database"), 0o644))

	_, err := Open(path, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestToggleFavoriteIdempotence(t *testing.T) {
	s, ctx := setupStore(t)

	fav, err := s.ToggleFavorite(ctx, "curry")
	require.NoError(t, err)
	assert.True(t, fav)

	got, err := s.IsFavorited(ctx, "curry")
	require.NoError(t, err)
	assert.True(t, got)

	fav, err = s.ToggleFavorite(ctx, "curry")
	require.NoError(t, err)
	assert.False(t, fav)

	got, err = s.IsFavorited(ctx, "curry")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestFavoriteIDs(t *testing.T) {
	s, ctx := setupStore(t)

	for _, id := range []string{"curry", "salad"} {
		_, err := s.ToggleFavorite(ctx, id)
		require.NoError(t, err)
	}

	ids, err := s.FavoriteIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"curry": true, "salad": true}, ids)
}

func TestShoppingListDedup(t *testing.T) {
	s, ctx := setupStore(t)

	first, err := s.AddShoppingItem(ctx, "curry", "ing-1")
	require.NoError(t, err)

	second, err := s.AddShoppingItem(ctx, "curry", "ing-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	items, err := s.ShoppingItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestShoppingListCountAndToggle(t *testing.T) {
	s, ctx := setupStore(t)

	item, err := s.AddShoppingItem(ctx, "curry", "ing-1")
	require.NoError(t, err)
	_, err = s.AddShoppingItem(ctx, "curry", "ing-2")
	require.NoError(t, err)

	count, err := s.UncheckedCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	toggled, err := s.ToggleShoppingItem(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Checked())

	count, err = s.UncheckedCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// Toggling back clears the timestamp.
	toggled, err = s.ToggleShoppingItem(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Checked())
}

func TestToggleShoppingItemNotFound(t *testing.T) {
	s, ctx := setupStore(t)

	_, err := s.ToggleShoppingItem(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShoppingListSweepsStaleCheckedItems(t *testing.T) {
	s, ctx := setupStore(t)

	stale, err := s.AddShoppingItem(ctx, "curry", "old")
	require.NoError(t, err)
	fresh, err := s.AddShoppingItem(ctx, "curry", "new")
	require.NoError(t, err)

	// Backdate the stale item's checked timestamp past the retention window.
	twoHoursAgo := time.Now().Add(-2 * time.Hour).UnixMilli()
	require.NoError(t, s.db.Model(&domain.ShoppingItem{}).
		Where("id = ?", stale.ID).
		Update("checked_at", twoHoursAgo).Error)

	justChecked := time.Now().UnixMilli()
	require.NoError(t, s.db.Model(&domain.ShoppingItem{}).
		Where("id = ?", fresh.ID).
		Update("checked_at", justChecked).Error)

	items, err := s.ShoppingItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fresh.ID, items[0].ID)
}

func TestSessionLifecycle(t *testing.T) {
	s, ctx := setupStore(t)

	session, err := s.StartSession(ctx, "curry")
	require.NoError(t, err)
	assert.NotZero(t, session.ID)
	assert.Nil(t, session.CompletedAt)

	done, err := s.CompleteSession(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	assert.GreaterOrEqual(t, *done.CompletedAt, done.StartedAt)

	// Double completion keeps the original timestamp.
	again, err := s.CompleteSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, *done.CompletedAt, *again.CompletedAt)
}

func TestCompleteSessionNotFound(t *testing.T) {
	s, ctx := setupStore(t)

	_, err := s.CompleteSession(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRatedDismissedExclusive(t *testing.T) {
	s, ctx := setupStore(t)

	session, err := s.StartSession(ctx, "curry")
	require.NoError(t, err)
	_, err = s.CompleteSession(ctx, session.ID)
	require.NoError(t, err)

	rated, err := s.MarkSessionRated(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, rated.RatedAt)
	assert.Nil(t, rated.RatingDismissedAt)

	// Dismissing a rated session is a no-op; the stamps stay exclusive.
	after, err := s.MarkSessionDismissed(ctx, session.ID)
	require.NoError(t, err)
	assert.NotNil(t, after.RatedAt)
	assert.Nil(t, after.RatingDismissedAt)
}

func TestCompletedSessionsFiltersStarted(t *testing.T) {
	s, ctx := setupStore(t)

	started, err := s.StartSession(ctx, "curry")
	require.NoError(t, err)
	finished, err := s.StartSession(ctx, "salad")
	require.NoError(t, err)
	_, err = s.CompleteSession(ctx, finished.ID)
	require.NoError(t, err)

	sessions, err := s.CompletedSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, finished.ID, sessions[0].ID)
	assert.NotEqual(t, started.ID, sessions[0].ID)
}

func TestHasCompletedAnyCooking(t *testing.T) {
	s, ctx := setupStore(t)

	got, err := s.HasCompletedAnyCooking(ctx)
	require.NoError(t, err)
	assert.False(t, got)

	session, err := s.StartSession(ctx, "curry")
	require.NoError(t, err)

	// Started but not completed does not count.
	got, err = s.HasCompletedAnyCooking(ctx)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = s.CompleteSession(ctx, session.ID)
	require.NoError(t, err)

	got, err = s.HasCompletedAnyCooking(ctx)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestRatingUpsertPreservesCreatedAt(t *testing.T) {
	s, ctx := setupStore(t)

	first, err := s.SaveRating(ctx, "curry", 3)
	require.NoError(t, err)

	second, err := s.SaveRating(ctx, "curry", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Rating)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	ratings, err := s.Ratings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"curry": 5}, ratings)
}

func TestSaveRatingValidation(t *testing.T) {
	s, ctx := setupStore(t)

	for _, bad := range []int{0, -1, 6} {
		_, err := s.SaveRating(ctx, "curry", bad)
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}

	ratings, err := s.Ratings(ctx)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestSaveNoteEmptyDeletes(t *testing.T) {
	s, ctx := setupStore(t)

	note, err := s.SaveNote(ctx, "curry", "  use less salt  ")
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "use less salt", note.Text)

	got, err := s.NoteFor(ctx, "curry")
	require.NoError(t, err)
	assert.Equal(t, "use less salt", got.Text)

	note, err = s.SaveNote(ctx, "curry", "   ")
	require.NoError(t, err)
	assert.Nil(t, note)

	_, err = s.NoteFor(ctx, "curry")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsRoundTrip(t *testing.T) {
	s, ctx := setupStore(t)

	var missing string
	ok, err := s.Setting(ctx, "nope", &missing)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetSetting(ctx, "dietaryFilters", []string{"vegan"}))

	var filters []string
	ok, err = s.Setting(ctx, "dietaryFilters", &filters)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"vegan"}, filters)

	require.NoError(t, s.SetSettings(ctx, map[string]any{
		"catalog_version": "v2",
		"onboarded":       true,
	}))

	var version string
	ok, err = s.Setting(ctx, "catalog_version", &version)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", version)

	require.NoError(t, s.DeleteSetting(ctx, "onboarded"))
	var onboarded bool
	ok, err = s.Setting(ctx, "onboarded", &onboarded)
	require.NoError(t, err)
	assert.False(t, ok)
}
