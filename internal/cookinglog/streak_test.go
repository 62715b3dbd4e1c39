package cookinglog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitemeapp/biteme/internal/domain"
)

func TestWeekStreakConsecutiveWeeks(t *testing.T) {
	now := time.Date(2025, time.March, 12, 18, 0, 0, 0, time.Local) // Wednesday
	sessions := []domain.CookingSession{
		sessionAt("a", now.Add(-24*time.Hour), 30*time.Minute),    // this week
		sessionAt("b", now.Add(-8*24*time.Hour), 30*time.Minute),  // last week
		sessionAt("c", now.Add(-15*24*time.Hour), 30*time.Minute), // two weeks back
	}

	assert.Equal(t, 3, WeekStreak(sessions, now))
}

func TestWeekStreakSurvivesSkippingCurrentWeek(t *testing.T) {
	now := time.Date(2025, time.March, 12, 18, 0, 0, 0, time.Local)
	sessions := []domain.CookingSession{
		sessionAt("a", now.Add(-8*24*time.Hour), 30*time.Minute),
		sessionAt("b", now.Add(-15*24*time.Hour), 30*time.Minute),
	}

	// Nothing cooked yet this week; the streak holds at 2.
	assert.Equal(t, 2, WeekStreak(sessions, now))
}

func TestWeekStreakBrokenByGap(t *testing.T) {
	now := time.Date(2025, time.March, 12, 18, 0, 0, 0, time.Local)
	sessions := []domain.CookingSession{
		sessionAt("a", now.Add(-21*24*time.Hour), 30*time.Minute),
	}

	assert.Equal(t, 0, WeekStreak(sessions, now))
}

func TestWeekStreakMultipleCooksInOneWeekCountOnce(t *testing.T) {
	now := time.Date(2025, time.March, 12, 18, 0, 0, 0, time.Local)
	sessions := []domain.CookingSession{
		sessionAt("a", now.Add(-2*time.Hour), 30*time.Minute),
		sessionAt("b", now.Add(-26*time.Hour), 30*time.Minute),
		sessionAt("c", now.Add(-8*24*time.Hour), 30*time.Minute),
	}

	assert.Equal(t, 2, WeekStreak(sessions, now))
}

func TestWeekStreakAcrossISOYearBoundary(t *testing.T) {
	// 2024-12-30 (Monday) and 2025-01-02 both fall in ISO week 2025-W01.
	now := time.Date(2025, time.January, 2, 12, 0, 0, 0, time.Local)
	sessions := []domain.CookingSession{
		sessionAt("a", time.Date(2024, time.December, 30, 19, 0, 0, 0, time.Local), 30*time.Minute),
		sessionAt("b", time.Date(2024, time.December, 25, 19, 0, 0, 0, time.Local), 30*time.Minute), // 2024-W52
	}

	assert.Equal(t, 2, WeekStreak(sessions, now))
}

func TestWeekStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, WeekStreak(nil, time.Now()))
}

func TestWeekStreakIgnoresAbandonedSessions(t *testing.T) {
	now := time.Date(2025, time.March, 12, 18, 0, 0, 0, time.Local)
	sessions := []domain.CookingSession{
		{RecipeID: "a", StartedAt: now.Add(-time.Hour).UnixMilli()},
	}

	assert.Equal(t, 0, WeekStreak(sessions, now))
}
