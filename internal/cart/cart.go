// Package cart implements the order cart: line management with
// snapshot-at-add scaling figures, derived totals, and shopping-list
// aggregation.
package cart

import (
	"math"

	"github.com/batcheasycook/batchcook-api/internal/models"
)

// HourlyRate is the cooking-labor price in currency units per hour.
// Business constant, not configurable.
const HourlyRate = 14.0

// WeeklyPrice is the fixed weekly formula price shown next to the cart.
const WeeklyPrice = 100.0

// Line is one cart entry: a dish at a specific serving count. The
// adjusted figures are captured when the line is first added and are
// never re-derived, even if the storefront's serving selection changes
// afterwards. Only a fresh add picks up a new scale.
type Line struct {
	Dish                models.Dish         `json:"dish"`
	Quantity            int                 `json:"quantity"`
	Servings            int                 `json:"servings"`
	AdjustedIngredients []models.Ingredient `json:"adjustedIngredients"`
	AdjustedTime        int                 `json:"adjustedTime"`
	AdjustedPrice       float64             `json:"adjustedPrice"`
}

// Cart is an insertion-ordered list of lines. It is owned by a single
// session; mutations and reads happen on one sequential timeline, so no
// locking is involved.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddLine adds one unit of a dish at the given serving count. A line
// already holding the same (dish ID, servings) pair has its quantity
// incremented and keeps its original adjusted figures untouched;
// otherwise a new line is appended with quantity 1.
func (c *Cart) AddLine(dish models.Dish, servings int, adjustedIngredients []models.Ingredient, adjustedTime int, adjustedPrice float64) {
	for i := range c.lines {
		if c.lines[i].Dish.ID == dish.ID && c.lines[i].Servings == servings {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, Line{
		Dish:                dish,
		Quantity:            1,
		Servings:            servings,
		AdjustedIngredients: adjustedIngredients,
		AdjustedTime:        adjustedTime,
		AdjustedPrice:       adjustedPrice,
	})
}

// RemoveLine removes every line for the given dish ID. Removing an
// absent dish is a no-op.
func (c *Cart) RemoveLine(dishID string) {
	c.remove(dishID, nil)
}

// RemoveLineServings removes only the exact (dish ID, servings) line.
func (c *Cart) RemoveLineServings(dishID string, servings int) {
	c.remove(dishID, &servings)
}

func (c *Cart) remove(dishID string, servings *int) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Dish.ID == dishID && (servings == nil || line.Servings == *servings) {
			continue
		}
		kept = append(kept, line)
	}
	c.lines = kept
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// TotalItems is the total unit count across lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the summed ingredient cost of the cart.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.AdjustedPrice * float64(line.Quantity)
	}
	return total
}

// TotalTime is the summed preparation time of the cart in minutes.
func (c *Cart) TotalTime() int {
	total := 0
	for _, line := range c.lines {
		total += line.AdjustedTime * line.Quantity
	}
	return total
}

// CookingPrice converts the total preparation time into a labor cost at
// HourlyRate, rounded to two decimals.
func (c *Cart) CookingPrice() float64 {
	hours := float64(c.TotalTime()) / 60
	return math.Round(hours*HourlyRate*100) / 100
}

// GrandTotal is the ingredient cost plus the cooking labor cost.
func (c *Cart) GrandTotal() float64 {
	return c.TotalPrice() + c.CookingPrice()
}

// Snapshot captures the cart for a batch cooking request payload.
func (c *Cart) Snapshot() models.CartSnapshot {
	items := make([]models.CartSnapshotItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, models.CartSnapshotItem{
			DishID:        line.Dish.ID,
			DishName:      line.Dish.Name,
			Quantity:      line.Quantity,
			Servings:      line.Servings,
			AdjustedTime:  line.AdjustedTime,
			AdjustedPrice: line.AdjustedPrice,
		})
	}
	return models.CartSnapshot{
		Items:      items,
		TotalPrice: c.TotalPrice(),
		TotalItems: c.TotalItems(),
		GrandTotal: c.GrandTotal(),
	}
}
