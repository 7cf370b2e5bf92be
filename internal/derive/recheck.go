package derive

import (
	"time"

	"github.com/roach88/larder/internal/pantry"
)

// recheckAfter is how long a ripeness assessment stays fresh.
const recheckAfter = 3 * 24 * time.Hour

// NeedsRipenessCheck returns the ingredients whose ripeness assessment
// is stale: last checked more than three days before now. Ingredients
// with no ripeness record never need a recheck.
func NeedsRipenessCheck(ingredients []pantry.Ingredient, now time.Time) []pantry.Ingredient {
	cutoff := now.Add(-recheckAfter)

	var out []pantry.Ingredient
	for _, ing := range ingredients {
		if ing.Ripeness == nil {
			continue
		}
		if ing.Ripeness.LastChecked.Before(cutoff) {
			out = append(out, ing)
		}
	}
	return out
}
