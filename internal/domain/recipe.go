// Package domain defines the core types, errors, and interfaces for the
// biteme recipe tracker. All other packages depend on domain; domain depends
// on nothing above the storage model.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Recipe is an immutable recipe definition supplied by the catalog.
// Recipes are never stored locally; local records reference them by ID and
// must tolerate the recipe disappearing from a later catalog version.
type Recipe struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Tags               []string         `json:"tags"`
	Servings           int              `json:"servings"`
	Ingredients        IngredientGroups `json:"ingredients"`
	Steps              []Step           `json:"steps"`
	Notes              string           `json:"notes,omitempty"`
	ServingSuggestions string           `json:"serving_suggestions,omitempty"`
	Dietary            []string         `json:"dietary,omitempty"`
}

// HasTag reports whether the recipe carries the given tag.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasDietary reports whether the recipe carries the given dietary marker.
func (r *Recipe) HasDietary(marker string) bool {
	for _, d := range r.Dietary {
		if d == marker {
			return true
		}
	}
	return false
}

// AllIngredients returns the recipe's ingredients flattened in category
// declaration order. That order is the tie-break for step placeholder
// resolution, so it must match the order the catalog document declares.
func (r *Recipe) AllIngredients() []Ingredient {
	var out []Ingredient
	for _, g := range r.Ingredients {
		out = append(out, g.Items...)
	}
	return out
}

// IngredientGroup is one named category of ingredients ("For the sauce").
type IngredientGroup struct {
	Category string
	Items    []Ingredient
}

// IngredientGroups preserves the category declaration order of the catalog
// document. A plain map would lose it, and placeholder resolution depends
// on it.
type IngredientGroups []IngredientGroup

// UnmarshalJSON decodes a JSON object into groups in declaration order.
func (g *IngredientGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ingredients: expected object, got %v", tok)
	}

	var groups IngredientGroups
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ingredients: expected category name, got %v", keyTok)
		}

		var items []Ingredient
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("ingredients %q: %w", category, err)
		}
		groups = append(groups, IngredientGroup{Category: category, Items: items})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*g = groups
	return nil
}

// MarshalJSON encodes the groups back into a JSON object in the same order.
func (g IngredientGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		items, err := json.Marshal(group.Items)
		if err != nil {
			return nil, err
		}
		buf.Write(items)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Ingredient is a single ingredient line. Text is the display string; the
// optional Quantity is the parsed structure the serving scaler works on.
type Ingredient struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Quantity *Quantity `json:"quantity,omitempty"`
}

// Quantity is the structured form of an ingredient amount. A line like
// "Juice of 1-2 lemons (about 60 ml)" parses into prefix, amount, amount_max,
// item, and a secondary quantity.
type Quantity struct {
	Amount          float64  `json:"amount"`
	AmountMax       *float64 `json:"amount_max,omitempty"`
	Unit            string   `json:"unit,omitempty"`
	Prefix          string   `json:"prefix,omitempty"`
	SecondaryAmount *float64 `json:"secondary_amount,omitempty"`
	SecondaryUnit   string   `json:"secondary_unit,omitempty"`
	SecondaryPrefix string   `json:"secondary_prefix,omitempty"`
	Item            string   `json:"item,omitempty"`
}

// Step is one cooking instruction. Text may contain {ingredient-name}
// placeholders resolved against the recipe's own ingredient list. Durations
// mark substrings of Text that denote a cook time.
type Step struct {
	Text      string         `json:"text"`
	Durations []StepDuration `json:"durations,omitempty"`
}

// StepDuration maps a substring of a step's text to a length in seconds.
type StepDuration struct {
	Text    string `json:"text"`
	Seconds int    `json:"seconds"`
}

// Manifest is the small version document fetched ahead of the full catalog.
// Version is opaque; only equality matters.
type Manifest struct {
	Version     string `json:"version"`
	RecipeCount int    `json:"recipe_count"`
}
