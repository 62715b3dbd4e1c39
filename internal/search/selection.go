package search

import "github.com/bitemeapp/biteme/internal/domain"

// Selection separates the tag and minimum-rating filters the user is
// considering from the ones actually applied. The filter sheet shows a live
// result count for candidate values against the currently applied favorites
// and search state; committing replaces both applied values at once.
type Selection struct {
	applied          Filter
	pendingTag       string
	pendingMinRating int
}

// NewSelection starts from the currently applied filter; pending values
// begin equal to the applied ones.
func NewSelection(applied Filter) *Selection {
	return &Selection{
		applied:          applied,
		pendingTag:       applied.Tag,
		pendingMinRating: applied.MinRating,
	}
}

// SetPendingTag stages a candidate tag. An empty tag means no tag filter.
func (s *Selection) SetPendingTag(tag string) {
	s.pendingTag = tag
}

// SetPendingMinRating stages a candidate minimum rating. Zero means no
// rating filter.
func (s *Selection) SetPendingMinRating(min int) {
	s.pendingMinRating = min
}

// Pending returns the filter as it would look if committed now.
func (s *Selection) Pending() Filter {
	f := s.applied
	f.Tag = s.pendingTag
	f.MinRating = s.pendingMinRating
	return f
}

// Applied returns the committed filter.
func (s *Selection) Applied() Filter {
	return s.applied
}

// PreviewCount evaluates the pending values against the applied
// favorites/search state and returns how many recipes would remain.
func (s *Selection) PreviewCount(recipes []domain.Recipe, ctx Context) int {
	return len(Apply(recipes, s.Pending(), ctx))
}

// Commit replaces the applied tag and rating with the pending ones in one
// step and returns the new applied filter.
func (s *Selection) Commit() Filter {
	s.applied.Tag = s.pendingTag
	s.applied.MinRating = s.pendingMinRating
	return s.applied
}

// ResetPending discards staged values, returning to the applied state.
func (s *Selection) ResetPending() {
	s.pendingTag = s.applied.Tag
	s.pendingMinRating = s.applied.MinRating
}
