// Package grocery synchronizes a shopping list with the partner store's
// cart API. Ingredient names are mapped to partner item IDs through a
// local lookup table; unmapped names are always reported back, never
// silently dropped.
package grocery

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Product is a partner catalog item an ingredient name maps to.
type Product struct {
	ItemID string
	Name   string
	Price  float64
}

// catalog maps storefront ingredient names to partner items. In a full
// integration this would come from the partner's catalog API.
var catalog = map[string]Product{
	"Poulet entier":    {ItemID: "2776", Name: "Poulet fermier entier", Price: 8.99},
	"Pommes de terre":  {ItemID: "4948", Name: "Pommes de terre Charlotte (2kg)", Price: 2.49},
	"Carottes":         {ItemID: "40300", Name: "Carottes (1kg)", Price: 1.29},
	"Oignons":          {ItemID: "2777", Name: "Oignons jaunes (1kg)", Price: 1.49},
	"Tomate":           {ItemID: "2778", Name: "Tomates rondes (500g)", Price: 2.99},
	"Pâtes":            {ItemID: "2779", Name: "Pâtes spaghetti 500g", Price: 1.19},
	"Riz":              {ItemID: "2780", Name: "Riz long grain 1kg", Price: 2.29},
	"Boeuf à braiser":  {ItemID: "2781", Name: "Boeuf à braiser", Price: 12.99},
	"Vin rouge":        {ItemID: "2782", Name: "Vin rouge de cuisine", Price: 4.99},
	"Champignons":      {ItemID: "2783", Name: "Champignons de Paris", Price: 2.49},
}

// Mapper resolves ingredient names against the partner catalog. A bloom
// filter over lower-cased names short-circuits definite misses; the
// exact map confirms candidates, so false positives cost one lookup and
// never a wrong answer.
type Mapper struct {
	filter  *bloom.BloomFilter
	byLower map[string]Product
}

// NewMapper builds the mapper from the embedded catalog.
func NewMapper() *Mapper {
	filter := bloom.NewWithEstimates(uint(len(catalog)), 0.01)
	byLower := make(map[string]Product, len(catalog))

	for name, product := range catalog {
		key := strings.ToLower(name)
		filter.AddString(key)
		byLower[key] = product
	}

	return &Mapper{filter: filter, byLower: byLower}
}

// Lookup resolves an ingredient name, case-insensitive.
func (m *Mapper) Lookup(name string) (Product, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if !m.filter.TestString(key) {
		return Product{}, false
	}
	product, ok := m.byLower[key]
	return product, ok
}

// Partition splits ingredient names into mapped products and unmapped
// names, preserving input order.
func (m *Mapper) Partition(names []string) ([]Product, []string) {
	mapped := make([]Product, 0, len(names))
	unmapped := make([]string, 0)

	for _, name := range names {
		if product, ok := m.Lookup(name); ok {
			mapped = append(mapped, product)
		} else {
			unmapped = append(unmapped, name)
		}
	}
	return mapped, unmapped
}
