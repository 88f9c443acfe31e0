// Package scaling adjusts dish quantities, prices and cooking times for a
// requested number of servings. All functions are pure; the current
// serving selection is always passed in explicitly.
package scaling

import (
	"math"
	"strings"

	"github.com/batcheasycook/batchcook-api/internal/models"
)

// PricePerPersonUnit converts a dish's price category (1-4) into an
// estimated base price per person.
const PricePerPersonUnit = 3.0

// timeDamping controls how slowly cooking time grows past the recipe's
// natural batch size. Cooking 2x the portions takes ~1.21x the time.
const timeDamping = 0.3

// Quantity scales an ingredient quantity linearly from baseServings to
// servings, rounded to one decimal place.
func Quantity(base float64, servings, baseServings int) float64 {
	return round1(base * float64(servings) / float64(normalize(baseServings)))
}

// Price scales a price linearly from baseServings to servings, rounded to
// two decimal places (half away from zero).
func Price(base float64, servings, baseServings int) float64 {
	return round2(base * float64(servings) / float64(normalize(baseServings)))
}

// Time scales a cooking time in minutes. Below the base serving count the
// time shrinks linearly; above it, batch efficiency kicks in and the time
// grows logarithmically instead. Result is rounded to the nearest minute.
func Time(base float64, servings, baseServings int) int {
	ratio := float64(servings) / float64(normalize(baseServings))
	multiplier := ratio
	if ratio > 1 {
		multiplier = 1 + math.Log(ratio)*timeDamping
	}
	return int(math.Round(base * multiplier))
}

// Ingredients returns a copy of ings with every measured quantity scaled
// to the requested serving count. Unmeasured ingredients pass through
// unchanged.
func Ingredients(ings []models.Ingredient, servings, baseServings int) []models.Ingredient {
	out := make([]models.Ingredient, len(ings))
	for i, ing := range ings {
		out[i] = models.Ingredient{Name: ing.Name, Unit: ing.Unit}
		if ing.Quantity != nil {
			q := Quantity(*ing.Quantity, servings, baseServings)
			out[i].Quantity = &q
		}
	}
	return out
}

// DishFigures holds every adjusted value for a dish at one serving count.
type DishFigures struct {
	Servings      int
	BaseServings  int
	Ingredients   []models.Ingredient
	TimeMinutes   int
	Price         float64
	PriceCategory int
}

// ForDish computes the adjusted figures for a dish at the given serving
// count. The base price is estimated from the dish's price category
// (PricePerPersonUnit per person per category point), matching the
// storefront's display figures. servings must be >= 1; callers validate
// at the API boundary.
func ForDish(dish models.Dish, servings int) DishFigures {
	base := dish.BaseServings()
	category := PriceCategory(dish.Ingredients)
	basePrice := float64(category) * PricePerPersonUnit * float64(base)

	return DishFigures{
		Servings:      servings,
		BaseServings:  base,
		Ingredients:   Ingredients(dish.Ingredients, servings, base),
		TimeMinutes:   Time(float64(dish.BaseTimeMinutes()), servings, base),
		Price:         Price(basePrice, servings, base),
		PriceCategory: category,
	}
}

// Ingredient names that push a dish's estimated price category up.
var (
	expensiveIngredients = []string{
		"Poulet entier", "Boeuf à braiser", "Filet de saumon",
		"Feta", "Parmesan", "Pancetta",
	}
	mediumIngredients = []string{"Vin rouge", "Lait de coco", "Quinoa", "Avocat"}
)

// PriceCategory estimates a 1-4 cost tier from a dish's ingredient list.
func PriceCategory(ings []models.Ingredient) int {
	score := 1.0
	for _, ing := range ings {
		switch {
		case containsAny(ing.Name, expensiveIngredients):
			score += 1.5
		case containsAny(ing.Name, mediumIngredients):
			score += 0.5
		default:
			score += 0.2
		}
	}

	category := int(math.Round(score))
	if category < 1 {
		category = 1
	}
	if category > 4 {
		category = 4
	}
	return category
}

func containsAny(name string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(name, n) {
			return true
		}
	}
	return false
}

// normalize treats a missing or zero base serving count as the default.
func normalize(baseServings int) int {
	if baseServings <= 0 {
		return models.DefaultBaseServings
	}
	return baseServings
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
