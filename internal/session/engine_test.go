package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bitemeapp/biteme/internal/domain"
	"github.com/bitemeapp/biteme/internal/store"
)

// fakeCatalog serves a fixed recipe set without any network.
type fakeCatalog struct {
	recipes []domain.Recipe
}

func (f *fakeCatalog) Load(ctx context.Context) ([]domain.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			return &f.recipes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalog) Refresh(ctx context.Context) (bool, error) { return false, nil }
func (f *fakeCatalog) ForceRefresh(ctx context.Context) error    { return nil }

func setupEngine(t *testing.T) (*Engine, *store.Store, context.Context) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "biteme.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	catalog := &fakeCatalog{recipes: []domain.Recipe{
		{ID: "curry", Name: "Curry", Servings: 4},
		{ID: "salad", Name: "Salad", Servings: 2},
	}}
	return New(catalog, s, zap.NewNop()), s, context.Background()
}

// completeAfterPause finishes a session with a short pause first so
// completion timestamps are strictly increasing at millisecond precision.
func completeAfterPause(t *testing.T, eng *Engine, ctx context.Context, id uint) *domain.CookingSession {
	t.Helper()
	time.Sleep(2 * time.Millisecond)
	session, err := eng.Complete(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, session)
	return session
}

func TestStartAndComplete(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	session := eng.Start(ctx, "curry")
	require.NotNil(t, session)
	assert.Nil(t, session.CompletedAt)

	done := completeAfterPause(t, eng, ctx, session.ID)
	require.NotNil(t, done.CompletedAt)
	assert.Greater(t, *done.CompletedAt, done.StartedAt)
	assert.Nil(t, done.RatedAt)
	assert.Nil(t, done.RatingDismissedAt)
}

func TestCompleteUnknownSession(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	_, err := eng.Complete(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompleteUnknownSessionIsRecoverable(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	session := eng.Start(ctx, "curry")
	completeAfterPause(t, eng, ctx, session.ID)

	// A vanished session id (cleared store, second tab) must not disturb
	// the rest of the flow: the prompt for the real completion survives.
	_, err := eng.Complete(ctx, 404)
	require.ErrorIs(t, err, domain.ErrNotFound)

	prompt, err := eng.RatingPrompt(ctx)
	require.NoError(t, err)
	require.NotNil(t, prompt)
	assert.Equal(t, session.ID, prompt.Session.ID)
}

func TestRateValidation(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	session := eng.Start(ctx, "curry")
	completeAfterPause(t, eng, ctx, session.ID)

	assert.ErrorIs(t, eng.Rate(ctx, session.ID, "curry", 0), domain.ErrInvalidRating)
	assert.ErrorIs(t, eng.Rate(ctx, session.ID, "curry", 6), domain.ErrInvalidRating)
}

func TestRatingPromptPicksNewestUnresolved(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	first := eng.Start(ctx, "curry")
	completeAfterPause(t, eng, ctx, first.ID)
	second := eng.Start(ctx, "salad")
	completeAfterPause(t, eng, ctx, second.ID)

	prompt, err := eng.RatingPrompt(ctx)
	require.NoError(t, err)
	require.NotNil(t, prompt)
	assert.Equal(t, second.ID, prompt.Session.ID)
	assert.Equal(t, "Salad", prompt.Recipe.Name)

	// Dismissing the newest surfaces the older unresolved session.
	require.NoError(t, eng.Dismiss(ctx, second.ID))

	prompt, err = eng.RatingPrompt(ctx)
	require.NoError(t, err)
	require.NotNil(t, prompt)
	assert.Equal(t, first.ID, prompt.Session.ID)

	// Rating the last one clears the prompt entirely.
	require.NoError(t, eng.Rate(ctx, first.ID, "curry", 4))

	prompt, err = eng.RatingPrompt(ctx)
	require.NoError(t, err)
	assert.Nil(t, prompt)
}

func TestLaterCookOfSameRecipePromptsAgain(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	first := eng.Start(ctx, "curry")
	completeAfterPause(t, eng, ctx, first.ID)
	require.NoError(t, eng.Rate(ctx, first.ID, "curry", 3))

	second := eng.Start(ctx, "curry")
	completeAfterPause(t, eng, ctx, second.ID)

	prompt, err := eng.RatingPrompt(ctx)
	require.NoError(t, err)
	require.NotNil(t, prompt)
	assert.Equal(t, second.ID, prompt.Session.ID)
}

func TestRatingPromptSkipsMissingRecipe(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	gone := eng.Start(ctx, "retired-recipe")
	completeAfterPause(t, eng, ctx, gone.ID)

	prompt, err := eng.RatingPrompt(ctx)
	require.NoError(t, err)
	assert.Nil(t, prompt)
}

func TestRateUpdatesRatingRow(t *testing.T) {
	eng, s, ctx := setupEngine(t)

	first := eng.Start(ctx, "curry")
	completeAfterPause(t, eng, ctx, first.ID)
	require.NoError(t, eng.Rate(ctx, first.ID, "curry", 3))

	second := eng.Start(ctx, "curry")
	completeAfterPause(t, eng, ctx, second.ID)
	require.NoError(t, eng.Rate(ctx, second.ID, "curry", 5))

	ratings, err := s.Ratings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"curry": 5}, ratings)
}

func TestNoteRoundTrip(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	require.NoError(t, eng.SaveNote(ctx, "curry", "double the spices"))

	text, err := eng.Note(ctx, "curry")
	require.NoError(t, err)
	assert.Equal(t, "double the spices", text)

	// No note reads as empty, not as an error.
	text, err = eng.Note(ctx, "salad")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestNoteAutosaver(t *testing.T) {
	_, s, ctx := setupEngine(t)

	saver := NewNoteAutosaver(s, "curry", 20*time.Millisecond, zap.NewNop())
	defer saver.Stop()

	saver.Update(ctx, "first draft")
	saver.Update(ctx, "final note")

	time.Sleep(60 * time.Millisecond)

	note, err := s.NoteFor(ctx, "curry")
	require.NoError(t, err)
	assert.Equal(t, "final note", note.Text)
}
