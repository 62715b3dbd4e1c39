// Package cookinglog derives the cooking history views: headline stats, the
// most-made ranking, a month-grouped timeline, and the weekly streak. All
// functions are pure over completed sessions plus a recipe lookup; the
// caller decides where the sessions come from and what "now" is.
package cookinglog

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bitemeapp/biteme/internal/domain"
)

// Stats is the headline summary shown at the top of the cooking log.
type Stats struct {
	TimesCooked int
	TotalTime   string
	Streak      int
}

// Summarize computes the headline stats. Sessions must already be filtered
// to completed ones; now anchors the streak.
func Summarize(sessions []domain.CookingSession, now time.Time) Stats {
	return Stats{
		TimesCooked: len(sessions),
		TotalTime:   FormatDuration(totalMillis(sessions)),
		Streak:      WeekStreak(sessions, now),
	}
}

func totalMillis(sessions []domain.CookingSession) int64 {
	var total int64
	for _, s := range sessions {
		if s.CompletedAt == nil {
			continue
		}
		total += *s.CompletedAt - s.StartedAt
	}
	return total
}

// FormatDuration renders a millisecond duration the way the log displays
// it: "< 1 min", "N min", "H hr", or "H hr M min". Minutes round to the
// nearest whole minute before bucketing.
func FormatDuration(ms int64) string {
	totalMinutes := int(math.Round(float64(ms) / 60000))

	switch {
	case totalMinutes < 1:
		return "< 1 min"
	case totalMinutes < 60:
		return fmt.Sprintf("%d min", totalMinutes)
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if minutes == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, minutes)
}

// Ranked is one row of the most-made ranking.
type Ranked struct {
	RecipeID string
	Name     string
	Count    int
}

// mostMadeLimit caps the ranking length.
const mostMadeLimit = 3

// MostMade groups sessions by recipe and returns the top three by count.
// Ties keep first-encountered order. A recipe missing from the lookup keeps
// its raw id as the display name.
func MostMade(sessions []domain.CookingSession, recipes map[string]*domain.Recipe) []Ranked {
	counts := make(map[string]int)
	var order []string
	for _, s := range sessions {
		if counts[s.RecipeID] == 0 {
			order = append(order, s.RecipeID)
		}
		counts[s.RecipeID]++
	}

	ranked := make([]Ranked, 0, len(order))
	for _, id := range order {
		name := id
		if r, ok := recipes[id]; ok && r != nil {
			name = r.Name
		}
		ranked = append(ranked, Ranked{RecipeID: id, Name: name, Count: counts[id]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > mostMadeLimit {
		ranked = ranked[:mostMadeLimit]
	}
	return ranked
}

// RecipeStats is the per-recipe summary shown on a recipe card.
type RecipeStats struct {
	TimesCooked int
	AverageTime string
}

// StatsByRecipe computes times-cooked and average duration per recipe.
func StatsByRecipe(sessions []domain.CookingSession) map[string]RecipeStats {
	counts := make(map[string]int)
	totals := make(map[string]int64)
	for _, s := range sessions {
		if s.CompletedAt == nil {
			continue
		}
		counts[s.RecipeID]++
		totals[s.RecipeID] += *s.CompletedAt - s.StartedAt
	}

	stats := make(map[string]RecipeStats, len(counts))
	for id, n := range counts {
		stats[id] = RecipeStats{
			TimesCooked: n,
			AverageTime: FormatDuration(totals[id] / int64(n)),
		}
	}
	return stats
}

// Entry is one cooked recipe in the timeline.
type Entry struct {
	Day         int
	RecipeID    string
	Name        string
	CompletedAt int64
}

// MonthGroup is all sessions completed within one calendar month.
type MonthGroup struct {
	Year    int
	Month   time.Month
	Label   string
	Entries []Entry
}

// Timeline groups sessions by calendar month of completion in the session's
// local time zone. Months and the entries within them run newest first.
func Timeline(sessions []domain.CookingSession, recipes map[string]*domain.Recipe) []MonthGroup {
	completed := make([]domain.CookingSession, 0, len(sessions))
	for _, s := range sessions {
		if s.CompletedAt != nil {
			completed = append(completed, s)
		}
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return *completed[i].CompletedAt > *completed[j].CompletedAt
	})

	var groups []MonthGroup
	index := make(map[string]int)
	for _, s := range completed {
		at := time.UnixMilli(*s.CompletedAt)
		key := fmt.Sprintf("%04d-%02d", at.Year(), at.Month())

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, MonthGroup{
				Year:  at.Year(),
				Month: at.Month(),
				Label: fmt.Sprintf("%s %d", at.Month(), at.Year()),
			})
		}

		name := s.RecipeID
		if r, ok := recipes[s.RecipeID]; ok && r != nil {
			name = r.Name
		}
		groups[i].Entries = append(groups[i].Entries, Entry{
			Day:         at.Day(),
			RecipeID:    s.RecipeID,
			Name:        name,
			CompletedAt: *s.CompletedAt,
		})
	}
	return groups
}
