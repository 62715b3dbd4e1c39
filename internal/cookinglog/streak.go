package cookinglog

import (
	"fmt"
	"time"

	"github.com/bitemeapp/biteme/internal/domain"
)

// WeekStreak counts how many consecutive ISO weeks, ending at the week
// containing now or the one just before it, had at least one completed
// session. A streak whose most recent cooking week is older than last week
// is broken and reports 0. Weeks run Monday to Sunday per ISO 8601; the
// caller passes now so the streak is deterministic under test.
func WeekStreak(sessions []domain.CookingSession, now time.Time) int {
	weeks := make(map[string]bool)
	var latest time.Time
	for _, s := range sessions {
		if s.CompletedAt == nil {
			continue
		}
		at := time.UnixMilli(*s.CompletedAt)
		weeks[weekKey(at)] = true
		monday := mondayOf(at)
		if monday.After(latest) {
			latest = monday
		}
	}
	if len(weeks) == 0 {
		return 0
	}

	current := mondayOf(now)
	previous := current.AddDate(0, 0, -7)
	if !latest.Equal(current) && !latest.Equal(previous) {
		return 0
	}

	streak := 0
	for cursor := latest; weeks[weekKey(cursor)]; cursor = cursor.AddDate(0, 0, -7) {
		streak++
	}
	return streak
}

// weekKey identifies the ISO week containing t, e.g. "2025-W01".
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// mondayOf returns local midnight on the Monday of t's week.
func mondayOf(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -back)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
