package catalog

import (
	"regexp"

	"github.com/bitemeapp/biteme/internal/domain"
)

// Step text may reference ingredients with brace-delimited tokens, e.g.
// "Add the {soy sauce} and stir". A token resolves against the recipe's own
// ingredient list by case-insensitive whole-word match; an unresolved token
// falls back to its literal text. When a name matches several ingredient
// lines, the first match in category declaration order wins.

var placeholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

// ResolveStepText strips the braces from every placeholder token, leaving
// the plain name. Resolved and unresolved tokens render the same; resolution
// only matters for StepIngredients.
func ResolveStepText(text string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		return match[1 : len(match)-1]
	})
}

// StepIngredients returns the distinct ingredients a step references, in
// token order. Tokens that resolve to an already-collected ingredient or to
// nothing are skipped.
func StepIngredients(text string, ingredients domain.IngredientGroups) []domain.Ingredient {
	var out []domain.Ingredient
	seen := make(map[string]bool)

	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		ing := resolveIngredient(match[1], ingredients)
		if ing == nil || seen[ing.ID] {
			continue
		}
		seen[ing.ID] = true
		out = append(out, *ing)
	}
	return out
}

// resolveIngredient finds the first ingredient whose display text contains
// name as a whole word, scanning groups in declaration order.
func resolveIngredient(name string, ingredients domain.IngredientGroups) *domain.Ingredient {
	wordPattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return nil
	}

	for _, group := range ingredients {
		for i := range group.Items {
			if wordPattern.MatchString(group.Items[i].Text) {
				return &group.Items[i]
			}
		}
	}
	return nil
}
