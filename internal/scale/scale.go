// Package scale adjusts ingredient quantities for a user-chosen serving
// count and formats the result as human-readable text. Everything here is
// pure; the persisted per-recipe serving override lives in the settings
// collection behind a tiny accessor.
package scale

import (
	"math"
	"strconv"
	"strings"

	"github.com/bitemeapp/biteme/internal/domain"
)

// fraction maps a decimal value to its unicode glyph. Matching magnitude
// tolerance is ±0.05.
var fractions = []struct {
	value float64
	glyph string
}{
	{0.25, "¼"},
	{1.0 / 3.0, "⅓"},
	{0.5, "½"},
	{2.0 / 3.0, "⅔"},
	{0.75, "¾"},
}

const fractionTolerance = 0.05

// Round applies the unit-aware rounding policy:
// metric volume/mass snaps to 5s above 50 and wholes below, spoons to
// quarters, countable units to halves, everything else to 2 decimals.
func Round(amount float64, unit string) float64 {
	if amount <= 0 {
		return 0
	}

	switch strings.ToLower(unit) {
	case "g", "ml", "kg", "l":
		if amount > 50 {
			return math.Round(amount/5) * 5
		}
		return math.Round(amount)
	case "tsp", "tbsp":
		return math.Round(amount*4) / 4
	case "clove", "cloves", "tin", "tins", "can", "cans":
		return math.Round(amount*2) / 2
	default:
		return math.Round(amount*100) / 100
	}
}

// FormatAmount renders a number the way a cook writes it: common fractions
// become their unicode glyph (with any whole part in front), everything else
// rounds to one decimal with a trailing .0 dropped.
func FormatAmount(n float64) string {
	if n <= 0 {
		return "0"
	}

	whole := math.Floor(n)
	frac := n - whole

	for _, f := range fractions {
		if math.Abs(frac-f.value) < fractionTolerance {
			if whole > 0 {
				return strconv.FormatFloat(whole, 'f', -1, 64) + f.glyph
			}
			return f.glyph
		}
	}

	if frac < fractionTolerance {
		return strconv.FormatFloat(whole, 'f', -1, 64)
	}

	rounded := math.Round(n*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// IngredientText scales an ingredient line by the serving ratio and
// reassembles the display string. Ratio 1 or an unparsed quantity returns
// the original text untouched.
func IngredientText(ing domain.Ingredient, ratio float64) string {
	if ing.Quantity == nil || ratio == 1 {
		return ing.Text
	}

	q := ing.Quantity
	var b strings.Builder

	if q.Prefix != "" {
		b.WriteString(q.Prefix)
		b.WriteByte(' ')
	}

	b.WriteString(FormatAmount(Round(q.Amount*ratio, q.Unit)))
	if q.AmountMax != nil {
		b.WriteByte('-')
		b.WriteString(FormatAmount(Round(*q.AmountMax*ratio, q.Unit)))
	}

	if q.Unit != "" {
		b.WriteByte(' ')
		b.WriteString(q.Unit)
	}

	if q.SecondaryAmount != nil {
		b.WriteString(" (")
		if q.SecondaryPrefix != "" {
			b.WriteString(q.SecondaryPrefix)
			b.WriteByte(' ')
		}
		b.WriteString(FormatAmount(Round(*q.SecondaryAmount*ratio, q.SecondaryUnit)))
		if q.SecondaryUnit != "" {
			b.WriteByte(' ')
			b.WriteString(q.SecondaryUnit)
		}
		b.WriteByte(')')
	}

	if q.Item != "" {
		b.WriteByte(' ')
		b.WriteString(q.Item)
	}

	return b.String()
}
