package repository

import (
	"context"

	"github.com/batcheasycook/batchcook-api/internal/models"
)

// MenuRepository exposes the fixed weekly formulas
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.Menu, error)
}

// InMemoryMenuRepository implements MenuRepository with static data
type InMemoryMenuRepository struct {
	menus []models.Menu
}

// NewInMemoryMenuRepository seeds the three weekly formulas
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		menus: []models.Menu{
			{
				ID:          1,
				Name:        "Menu Famille",
				Price:       149,
				Description: "12 repas pour 2-4 personnes",
				Items: []string{
					"Lasagnes bolognaise", "Curry de légumes", "Poisson grillé", "Riz pilaf",
				},
			},
			{
				ID:          2,
				Name:        "Menu Découverte",
				Price:       89,
				Description: "6 repas pour 2 personnes",
				Items:       []string{"Poulet rôti", "Ratatouille", "Quinoa aux légumes"},
			},
			{
				ID:          3,
				Name:        "Menu Premium",
				Price:       199,
				Description: "16 repas pour 2-6 personnes",
				Items: []string{
					"Saumon teriyaki", "Bœuf bourguignon", "Risotto aux champignons",
					"Légumes grillés", "Couscous royal",
				},
			},
		},
	}
}

// GetAll returns all menus
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) ([]models.Menu, error) {
	return r.menus, nil
}
