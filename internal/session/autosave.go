package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bitemeapp/biteme/internal/debounce"
	"github.com/bitemeapp/biteme/internal/domain"
)

// defaultAutosaveQuiet is how long typing must pause before a note commits.
const defaultAutosaveQuiet = 800 * time.Millisecond

// NoteAutosaver commits note edits after the user stops typing, so every
// keystroke does not hit storage. Failed writes are logged and dropped; the
// next pause retries with the then-current text.
type NoteAutosaver struct {
	store    domain.NoteStore
	recipeID string
	deb      *debounce.Debouncer
	log      *zap.Logger
}

// NewNoteAutosaver creates an autosaver for one recipe's note. A zero quiet
// interval uses the default.
func NewNoteAutosaver(store domain.NoteStore, recipeID string, quiet time.Duration, log *zap.Logger) *NoteAutosaver {
	if quiet <= 0 {
		quiet = defaultAutosaveQuiet
	}
	return &NoteAutosaver{
		store:    store,
		recipeID: recipeID,
		deb:      debounce.New(quiet),
		log:      log,
	}
}

// Update registers the latest text; it commits once typing goes quiet.
func (a *NoteAutosaver) Update(ctx context.Context, text string) {
	a.deb.Trigger(func() {
		if _, err := a.store.SaveNote(ctx, a.recipeID, text); err != nil {
			a.log.Warn("note autosave failed", zap.String("recipe_id", a.recipeID), zap.Error(err))
		}
	})
}

// Flush commits any pending text immediately, for page-leave style events.
func (a *NoteAutosaver) Flush() {
	a.deb.Flush()
}

// Stop discards any pending commit.
func (a *NoteAutosaver) Stop() {
	a.deb.Stop()
}
