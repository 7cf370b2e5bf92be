package derive

import "github.com/roach88/larder/internal/pantry"

// LowStock returns the ingredients at or below one remaining unit:
// quantity value in the open-closed interval (0, 1]. Zero quantity
// means "none left", not "low", and absent quantity means untracked;
// both are excluded.
func LowStock(ingredients []pantry.Ingredient) []pantry.Ingredient {
	var out []pantry.Ingredient
	for _, ing := range ingredients {
		q := ing.Quantity
		if q == nil {
			continue
		}
		if q.Value > 0 && q.Value <= 1 {
			out = append(out, ing)
		}
	}
	return out
}
