// Package search derives the visible recipe list from the full catalog and
// the user's personalization state. Stage order is fixed: favorites narrow
// first, free-text search scores and reorders, then tag and minimum-rating
// narrow without re-ranking.
package search

import (
	"sort"
	"strings"

	"github.com/bitemeapp/biteme/internal/domain"
)

// Filter is one combination of the four user-facing filters plus the
// dietary markers from settings.
type Filter struct {
	Query         string
	Tag           string
	MinRating     int
	FavoritesOnly bool
	Dietary       []string
}

// Context supplies the personalization state the filter stages read.
type Context struct {
	Favorites map[string]bool
	Ratings   map[string]int
}

// searchWeights for free-text relevance. A recipe scoring zero is dropped.
const (
	nameWeight        = 3
	descriptionWeight = 2
	tagWeight         = 2
	ingredientWeight  = 1
)

// Apply computes the visible, ordered subset. An empty catalog or a filter
// that matches nothing returns an empty slice, never an error.
func Apply(recipes []domain.Recipe, f Filter, ctx Context) []domain.Recipe {
	out := recipes

	if f.FavoritesOnly {
		out = keep(out, func(r *domain.Recipe) bool {
			return ctx.Favorites[r.ID]
		})
	}

	if len(f.Dietary) > 0 {
		out = keep(out, func(r *domain.Recipe) bool {
			for _, marker := range f.Dietary {
				if !r.HasDietary(marker) {
					return false
				}
			}
			return true
		})
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		out = rank(out, q)
	}

	if f.Tag != "" {
		out = keep(out, func(r *domain.Recipe) bool {
			return r.HasTag(f.Tag)
		})
	}

	if f.MinRating > 0 {
		out = keep(out, func(r *domain.Recipe) bool {
			return ctx.Ratings[r.ID] >= f.MinRating
		})
	}

	return out
}

// keep filters without reordering, always returning a fresh slice.
func keep(recipes []domain.Recipe, pred func(*domain.Recipe) bool) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		if pred(&recipes[i]) {
			out = append(out, recipes[i])
		}
	}
	return out
}

// rank scores each recipe against the query, drops zero scores, and sorts
// descending by score. The sort is stable so equal scores keep their
// original catalog order.
func rank(recipes []domain.Recipe, query string) []domain.Recipe {
	q := strings.ToLower(query)

	type scored struct {
		recipe domain.Recipe
		score  int
	}

	matches := make([]scored, 0, len(recipes))
	for i := range recipes {
		if s := Score(&recipes[i], q); s > 0 {
			matches = append(matches, scored{recipe: recipes[i], score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]domain.Recipe, len(matches))
	for i, m := range matches {
		out[i] = m.recipe
	}
	return out
}

// Score computes the relevance of a recipe for a lowercased query: name +3,
// description +2, any tag +2, any ingredient line +1.
func Score(r *domain.Recipe, query string) int {
	score := 0

	if strings.Contains(strings.ToLower(r.Name), query) {
		score += nameWeight
	}
	if strings.Contains(strings.ToLower(r.Description), query) {
		score += descriptionWeight
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			score += tagWeight
			break
		}
	}
	for _, group := range r.Ingredients {
		matched := false
		for _, ing := range group.Items {
			if strings.Contains(strings.ToLower(ing.Text), query) {
				score += ingredientWeight
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}

	return score
}
