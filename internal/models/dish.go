package models

// Ingredient is a single ingredient line of a dish.
// Quantity is optional: some ingredients are listed without a measured
// amount ("Sel", "Poivre"), in which case Quantity is nil and Unit empty.
type Ingredient struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
}

// Recipe holds the preparation details of a dish. Servings is the number
// of people the listed ingredient quantities and time assume.
type Recipe struct {
	TimeMinutes int      `json:"timeMinutes,omitempty"`
	Servings    int      `json:"servings,omitempty"`
	Steps       []string `json:"steps"`
}

// Dish represents an immutable catalog entry.
type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
	Image       string       `json:"image,omitempty"`
	Servings    int          `json:"servings,omitempty"`
	Recipe      *Recipe      `json:"recipe,omitempty"`
}

// DefaultBaseServings is assumed when a dish does not declare how many
// people its quantities are for.
const DefaultBaseServings = 4

// DefaultTimeMinutes is assumed when a recipe omits its preparation time.
const DefaultTimeMinutes = 30

// BaseServings returns the serving count the dish quantities assume,
// falling back to the recipe's value and then to the default.
func (d Dish) BaseServings() int {
	if d.Servings > 0 {
		return d.Servings
	}
	if d.Recipe != nil && d.Recipe.Servings > 0 {
		return d.Recipe.Servings
	}
	return DefaultBaseServings
}

// BaseTimeMinutes returns the recipe time, or the default when absent.
func (d Dish) BaseTimeMinutes() int {
	if d.Recipe != nil && d.Recipe.TimeMinutes > 0 {
		return d.Recipe.TimeMinutes
	}
	return DefaultTimeMinutes
}

// Menu is a fixed weekly formula offered alongside individual dishes.
type Menu struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}
