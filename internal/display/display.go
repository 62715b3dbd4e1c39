// Package display renders catalog, cooking, and log views for the terminal
// with lipgloss. All functions are pure string renderers; the commands print
// the result.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bitemeapp/biteme/internal/cookinglog"
	"github.com/bitemeapp/biteme/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	// Tags — soft mint pills.
	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	// Primary text — light zinc for descriptions and steps.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text — dimmed zinc for hints, counts, metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Stars — soft amber.
	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Bold(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b")).
			Strikethrough(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)
)

// CardContext carries the per-recipe state a card displays alongside the
// catalog data.
type CardContext struct {
	Favorited bool
	Rating    int
	Stats     cookinglog.RecipeStats
}

// Card renders one recipe card: name, tags, rating, and cooking stats.
func Card(r *domain.Recipe, ctx CardContext) string {
	var b strings.Builder

	name := titleStyle.Render(r.Name)
	if ctx.Favorited {
		name += " " + favoriteStyle.Render("♥")
	}
	b.WriteString(name)
	b.WriteByte('\n')

	if len(r.Tags) > 0 {
		b.WriteString(tagStyle.Render(strings.Join(r.Tags, " · ")))
		b.WriteByte('\n')
	}
	if r.Description != "" {
		b.WriteString(primaryStyle.Render(r.Description))
		b.WriteByte('\n')
	}

	var meta []string
	if ctx.Rating > 0 {
		meta = append(meta, starStyle.Render(Stars(ctx.Rating)))
	}
	if ctx.Stats.TimesCooked > 0 {
		meta = append(meta, secondaryStyle.Render(
			fmt.Sprintf("Cooked %s · ~%s", times(ctx.Stats.TimesCooked), ctx.Stats.AverageTime)))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, secondaryStyle.Render("  ")))
		b.WriteByte('\n')
	}

	b.WriteString(secondaryStyle.Render("id: " + r.ID))
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Stars renders a 1..5 rating as filled and empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func times(n int) string {
	if n == 1 {
		return "once"
	}
	return fmt.Sprintf("%d times", n)
}

// IngredientList renders one ingredient group with its scaled lines and
// shopping-list membership markers.
func IngredientList(category string, lines []string, inList map[int]bool) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(category))
	for i, line := range lines {
		b.WriteByte('\n')
		mark := "  "
		if inList[i] {
			mark = secondaryStyle.Render("+ ")
		}
		b.WriteString("  " + mark + primaryStyle.Render(line))
	}
	return b.String()
}

// Step renders a step header plus its resolved instruction text.
func Step(index, total int, text string) string {
	header := headerStyle.Render(fmt.Sprintf("Step %d/%d", index+1, total))
	return header + "\n" + primaryStyle.Render(text)
}

// ShoppingLine renders one shopping-list row; checked rows are struck out.
func ShoppingLine(text string, checked bool) string {
	if checked {
		return checkedStyle.Render("[x] " + text)
	}
	return primaryStyle.Render("[ ] " + text)
}

// LogStats renders the cooking-log headline: totals and the weekly streak.
func LogStats(s cookinglog.Stats) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Cooking Log"))
	b.WriteByte('\n')
	b.WriteString(primaryStyle.Render(fmt.Sprintf("%d cooked · %s total", s.TimesCooked, s.TotalTime)))
	if s.Streak > 0 {
		b.WriteByte('\n')
		b.WriteString(starStyle.Render(fmt.Sprintf("%d week streak 🔥", s.Streak)))
	}
	return b.String()
}

// MostMade renders the top-recipes ranking.
func MostMade(ranked []cookinglog.Ranked) string {
	if len(ranked) == 0 {
		return secondaryStyle.Render("Nothing cooked yet.")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Most made"))
	for i, r := range ranked {
		b.WriteByte('\n')
		b.WriteString(fmt.Sprintf("  %d. %s %s",
			i+1, primaryStyle.Render(r.Name), secondaryStyle.Render(fmt.Sprintf("(%s)", times(r.Count)))))
	}
	return b.String()
}

// Timeline renders month-grouped history, newest first.
func Timeline(groups []cookinglog.MonthGroup) string {
	if len(groups) == 0 {
		return secondaryStyle.Render("No cooking history.")
	}
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(headerStyle.Render(g.Label))
		for _, e := range g.Entries {
			b.WriteByte('\n')
			b.WriteString("  " + secondaryStyle.Render(fmt.Sprintf("%2d", e.Day)) + "  " + primaryStyle.Render(e.Name))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Prompt renders the post-cooking rating prompt for a recipe.
func Prompt(name string) string {
	return titleStyle.Render("How was "+name+"?") + "\n" +
		secondaryStyle.Render("type 1-5 to rate, or press enter to dismiss")
}
