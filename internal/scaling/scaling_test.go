package scaling

import (
	"math"
	"testing"

	"github.com/batcheasycook/batchcook-api/internal/models"
)

func TestQuantity(t *testing.T) {
	tests := []struct {
		name         string
		base         float64
		servings     int
		baseServings int
		expected     float64
	}{
		{"identity at base serving count", 500, 4, 4, 500},
		{"linear doubling", 500, 8, 4, 1000},
		{"linear halving", 500, 2, 4, 250},
		{"rounds to one decimal", 1, 1, 3, 0.3},
		{"rounds down below the midpoint", 0.5, 1, 4, 0.1},
		{"zero base servings falls back to default", 400, 8, 0, 800},
		{"negative base servings falls back to default", 400, 2, -1, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantity(tt.base, tt.servings, tt.baseServings)
			if got != tt.expected {
				t.Errorf("Quantity(%v, %d, %d) = %v, want %v",
					tt.base, tt.servings, tt.baseServings, got, tt.expected)
			}
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name         string
		base         float64
		servings     int
		baseServings int
		expected     float64
	}{
		{"identity at base serving count", 24, 4, 4, 24},
		{"linear doubling", 24, 8, 4, 48},
		{"linear doubling with cents", 9.49, 8, 4, 18.98},
		{"rounds to two decimals", 10, 1, 3, 3.33},
		{"shrinks for fewer servings", 24, 1, 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(tt.base, tt.servings, tt.baseServings)
			if got != tt.expected {
				t.Errorf("Price(%v, %d, %d) = %v, want %v",
					tt.base, tt.servings, tt.baseServings, got, tt.expected)
			}
		})
	}
}

func TestTime(t *testing.T) {
	t.Run("identity at base serving count", func(t *testing.T) {
		if got := Time(60, 4, 4); got != 60 {
			t.Errorf("Time(60, 4, 4) = %d, want 60", got)
		}
	})

	t.Run("strict linear shrink below base", func(t *testing.T) {
		if got := Time(60, 2, 4); got != 30 {
			t.Errorf("Time(60, 2, 4) = %d, want 30", got)
		}
	})

	t.Run("sub-linear growth above base", func(t *testing.T) {
		got := Time(60, 8, 4)
		if got >= 120 {
			t.Errorf("Time(60, 8, 4) = %d, want < 120 (sub-linear)", got)
		}
		// ratio=2 -> multiplier = 1 + ln(2)*0.3 ~= 1.208 -> ~72 min
		want := int(math.Round(60 * (1 + math.Log(2)*0.3)))
		if got != want {
			t.Errorf("Time(60, 8, 4) = %d, want %d", got, want)
		}
	})

	t.Run("tripling stays dampened", func(t *testing.T) {
		got := Time(60, 12, 4)
		want := int(math.Round(60 * (1 + math.Log(3)*0.3)))
		if got != want {
			t.Errorf("Time(60, 12, 4) = %d, want %d", got, want)
		}
	})
}

func TestIngredients(t *testing.T) {
	q := func(v float64) *float64 { return &v }

	ings := []models.Ingredient{
		{Name: "Pommes de terre", Quantity: q(800), Unit: "g"},
		{Name: "Sel"},
	}

	adjusted := Ingredients(ings, 8, 4)

	if len(adjusted) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(adjusted))
	}
	if adjusted[0].Quantity == nil || *adjusted[0].Quantity != 1600 {
		t.Errorf("expected potato quantity 1600, got %v", adjusted[0].Quantity)
	}
	if adjusted[1].Quantity != nil {
		t.Errorf("unmeasured ingredient should keep nil quantity, got %v", *adjusted[1].Quantity)
	}

	// The input slice must not be mutated.
	if *ings[0].Quantity != 800 {
		t.Errorf("input slice was mutated: %v", *ings[0].Quantity)
	}
}

func TestPriceCategory(t *testing.T) {
	q := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		ings     []models.Ingredient
		expected int
	}{
		{
			name:     "cheap staples stay in tier 1",
			ings:     []models.Ingredient{{Name: "Riz", Quantity: q(300), Unit: "g"}, {Name: "Oignons"}},
			expected: 1,
		},
		{
			name: "expensive cut raises the tier",
			ings: []models.Ingredient{
				{Name: "Boeuf à braiser", Quantity: q(800), Unit: "g"},
				{Name: "Vin rouge", Quantity: q(25), Unit: "cl"},
				{Name: "Carottes", Quantity: q(3)},
			},
			expected: 3,
		},
		{
			name:     "empty ingredient list floors at 1",
			ings:     nil,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceCategory(tt.ings); got != tt.expected {
				t.Errorf("PriceCategory() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestForDish(t *testing.T) {
	q := func(v float64) *float64 { return &v }

	dish := models.Dish{
		ID:   "poulet-roti",
		Name: "Poulet rôti",
		Ingredients: []models.Ingredient{
			{Name: "Poulet entier", Quantity: q(1)},
			{Name: "Pommes de terre", Quantity: q(800), Unit: "g"},
		},
		Recipe: &models.Recipe{TimeMinutes: 60, Servings: 4},
	}

	t.Run("at base servings", func(t *testing.T) {
		fig := ForDish(dish, 4)
		if fig.TimeMinutes != 60 {
			t.Errorf("expected 60 minutes, got %d", fig.TimeMinutes)
		}
		// category 3 x 3/person x 4 people = 36 at base servings
		if fig.Price != 36 {
			t.Errorf("expected price 36, got %v", fig.Price)
		}
		if fig.BaseServings != 4 {
			t.Errorf("expected base servings 4, got %d", fig.BaseServings)
		}
	})

	t.Run("doubled servings", func(t *testing.T) {
		fig := ForDish(dish, 8)
		if fig.Price != 72 {
			t.Errorf("expected price 72, got %v", fig.Price)
		}
		if fig.TimeMinutes != 72 {
			t.Errorf("expected log-dampened time 72, got %d", fig.TimeMinutes)
		}
		if *fig.Ingredients[1].Quantity != 1600 {
			t.Errorf("expected 1600g potatoes, got %v", *fig.Ingredients[1].Quantity)
		}
	})

	t.Run("dish without recipe uses defaults", func(t *testing.T) {
		bare := models.Dish{ID: "x", Name: "X", Ingredients: []models.Ingredient{{Name: "Riz"}}}
		fig := ForDish(bare, 4)
		if fig.BaseServings != models.DefaultBaseServings {
			t.Errorf("expected default base servings, got %d", fig.BaseServings)
		}
		if fig.TimeMinutes != models.DefaultTimeMinutes {
			t.Errorf("expected default time, got %d", fig.TimeMinutes)
		}
	})
}
