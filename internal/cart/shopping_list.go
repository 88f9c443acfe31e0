package cart

import (
	"strings"

	"github.com/batcheasycook/batchcook-api/internal/models"
)

// ShoppingList merges the adjusted ingredients of every cart line into a
// single list, keyed by lower-cased ingredient name. Quantities are
// pre-multiplied by their line's unit count. A repeated name only sums
// into the existing entry when both sides carry a quantity and the units
// match exactly; otherwise the first-seen entry wins and the repeat is
// dropped. Differing units for the same name are not converted or
// flagged here; the grocery boundary reports unmapped names instead.
// Output preserves first-occurrence order.
func (c *Cart) ShoppingList() []models.Ingredient {
	merged := make(map[string]*models.Ingredient)
	order := make([]string, 0)

	for _, line := range c.lines {
		for _, ing := range line.AdjustedIngredients {
			key := strings.ToLower(ing.Name)

			if existing, ok := merged[key]; ok {
				if existing.Quantity != nil && ing.Quantity != nil && existing.Unit == ing.Unit {
					*existing.Quantity += *ing.Quantity * float64(line.Quantity)
				}
				// first-seen wins for non-summable duplicates
				continue
			}

			e := &models.Ingredient{Name: ing.Name, Unit: ing.Unit}
			if ing.Quantity != nil {
				q := *ing.Quantity * float64(line.Quantity)
				e.Quantity = &q
			}
			merged[key] = e
			order = append(order, key)
		}
	}

	list := make([]models.Ingredient, 0, len(order))
	for _, key := range order {
		list = append(list, *merged[key])
	}
	return list
}

// IngredientNames returns the shopping list's names in order, the shape
// the grocery partner sync consumes.
func (c *Cart) IngredientNames() []string {
	list := c.ShoppingList()
	names := make([]string, 0, len(list))
	for _, ing := range list {
		names = append(names, ing.Name)
	}
	return names
}
