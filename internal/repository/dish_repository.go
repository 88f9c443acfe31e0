package repository

import (
	"context"
	"errors"

	"github.com/batcheasycook/batchcook-api/internal/models"
)

var (
	ErrDishNotFound = errors.New("dish not found")
)

// DishRepository defines the interface for catalog data access
type DishRepository interface {
	GetAll(ctx context.Context) ([]models.Dish, error)
	GetByID(ctx context.Context, id string) (*models.Dish, error)
}

// InMemoryDishRepository implements DishRepository with a static catalog
type InMemoryDishRepository struct {
	order  []string
	dishes map[string]models.Dish
}

func qty(v float64) *float64 { return &v }

// NewInMemoryDishRepository creates the seeded dish catalog. The catalog
// is loaded once and read-only for the process lifetime.
func NewInMemoryDishRepository() *InMemoryDishRepository {
	seed := []models.Dish{
		{
			ID:          "poulet-roti",
			Name:        "Poulet rôti",
			Description: "Poulet fermier rôti au four, pommes de terre fondantes.",
			Ingredients: []models.Ingredient{
				{Name: "Poulet entier", Quantity: qty(1)},
				{Name: "Pommes de terre", Quantity: qty(800), Unit: "g"},
				{Name: "Carottes", Quantity: qty(3)},
				{Name: "Oignons", Quantity: qty(2)},
				{Name: "Thym"},
			},
			Recipe: &models.Recipe{
				TimeMinutes: 60,
				Servings:    4,
				Steps: []string{
					"Préchauffer le four à 200°C.",
					"Disposer le poulet sur les légumes coupés.",
					"Rôtir 1h en arrosant régulièrement.",
				},
			},
		},
		{
			ID:          "boeuf-bourguignon",
			Name:        "Bœuf bourguignon",
			Description: "Mijoté de bœuf au vin rouge, champignons et carottes.",
			Ingredients: []models.Ingredient{
				{Name: "Boeuf à braiser", Quantity: qty(1.2), Unit: "kg"},
				{Name: "Vin rouge", Quantity: qty(50), Unit: "cl"},
				{Name: "Carottes", Quantity: qty(4)},
				{Name: "Champignons", Quantity: qty(250), Unit: "g"},
				{Name: "Oignons", Quantity: qty(2)},
			},
			Recipe: &models.Recipe{
				TimeMinutes: 180,
				Servings:    6,
				Steps: []string{
					"Saisir la viande sur toutes les faces.",
					"Déglacer au vin rouge.",
					"Mijoter 3h à feu doux avec les légumes.",
				},
			},
		},
		{
			ID:          "lasagnes-bolognaise",
			Name:        "Lasagnes bolognaise",
			Description: "Lasagnes maison, sauce tomate mijotée et béchamel.",
			Ingredients: []models.Ingredient{
				{Name: "Pâtes", Quantity: qty(400), Unit: "g"},
				{Name: "Tomate", Quantity: qty(800), Unit: "g"},
				{Name: "Boeuf haché", Quantity: qty(500), Unit: "g"},
				{Name: "Oignons", Quantity: qty(2)},
				{Name: "Parmesan", Quantity: qty(80), Unit: "g"},
			},
			Recipe: &models.Recipe{
				TimeMinutes: 75,
				Servings:    6,
				Steps: []string{
					"Préparer la sauce bolognaise.",
					"Monter les couches de pâtes, sauce et béchamel.",
					"Cuire 45 min au four.",
				},
			},
		},
		{
			ID:          "ratatouille",
			Name:        "Ratatouille",
			Description: "Légumes du soleil mijotés à l'huile d'olive.",
			Ingredients: []models.Ingredient{
				{Name: "Tomate", Quantity: qty(600), Unit: "g"},
				{Name: "Courgettes", Quantity: qty(2)},
				{Name: "Aubergines", Quantity: qty(2)},
				{Name: "Oignons", Quantity: qty(2)},
				{Name: "Herbes de Provence"},
			},
			Recipe: &models.Recipe{
				TimeMinutes: 50,
				Servings:    4,
				Steps: []string{
					"Couper tous les légumes en dés.",
					"Faire revenir séparément puis assembler.",
					"Mijoter 35 min à couvert.",
				},
			},
		},
		{
			ID:          "curry-legumes",
			Name:        "Curry de légumes",
			Description: "Curry doux au lait de coco, servi avec du riz.",
			Ingredients: []models.Ingredient{
				{Name: "Lait de coco", Quantity: qty(40), Unit: "cl"},
				{Name: "Riz", Quantity: qty(300), Unit: "g"},
				{Name: "Carottes", Quantity: qty(3)},
				{Name: "Courgettes", Quantity: qty(2)},
				{Name: "Curry"},
			},
			Recipe: &models.Recipe{
				TimeMinutes: 40,
				Servings:    4,
				Steps: []string{
					"Faire revenir les légumes avec les épices.",
					"Ajouter le lait de coco et mijoter 20 min.",
					"Servir avec le riz.",
				},
			},
		},
		{
			ID:          "risotto-champignons",
			Name:        "Risotto aux champignons",
			Description: "Risotto crémeux, champignons de Paris et parmesan.",
			Ingredients: []models.Ingredient{
				{Name: "Riz", Quantity: qty(350), Unit: "g"},
				{Name: "Champignons", Quantity: qty(300), Unit: "g"},
				{Name: "Parmesan", Quantity: qty(80), Unit: "g"},
				{Name: "Oignons", Quantity: qty(1)},
			},
			Recipe: &models.Recipe{
				TimeMinutes: 45,
				Servings:    4,
				Steps: []string{
					"Nacrer le riz avec l'oignon.",
					"Mouiller louche par louche pendant 18 min.",
					"Incorporer champignons et parmesan.",
				},
			},
		},
		{
			ID:          "saumon-teriyaki",
			Name:        "Saumon teriyaki",
			Description: "Filet de saumon laqué, riz et légumes croquants.",
			Ingredients: []models.Ingredient{
				{Name: "Filet de saumon", Quantity: qty(600), Unit: "g"},
				{Name: "Riz", Quantity: qty(300), Unit: "g"},
				{Name: "Sauce soja", Quantity: qty(10), Unit: "cl"},
				{Name: "Carottes", Quantity: qty(2)},
			},
			Recipe: &models.Recipe{
				TimeMinutes: 35,
				Servings:    4,
				Steps: []string{
					"Réduire la sauce teriyaki.",
					"Saisir le saumon puis le laquer.",
					"Servir sur le riz avec les légumes.",
				},
			},
		},
		{
			ID:          "pates-carbonara",
			Name:        "Pâtes à la carbonara",
			Description: "Spaghetti, pancetta dorée et parmesan.",
			Ingredients: []models.Ingredient{
				{Name: "Pâtes", Quantity: qty(400), Unit: "g"},
				{Name: "Pancetta", Quantity: qty(150), Unit: "g"},
				{Name: "Parmesan", Quantity: qty(60), Unit: "g"},
				{Name: "Oeufs", Quantity: qty(3)},
			},
			Recipe: &models.Recipe{
				TimeMinutes: 25,
				Servings:    4,
				Steps: []string{
					"Cuire les pâtes al dente.",
					"Dorer la pancetta.",
					"Lier hors du feu avec œufs et parmesan.",
				},
			},
		},
	}

	dishes := make(map[string]models.Dish, len(seed))
	order := make([]string, 0, len(seed))
	for _, d := range seed {
		dishes[d.ID] = d
		order = append(order, d.ID)
	}

	return &InMemoryDishRepository{order: order, dishes: dishes}
}

// GetAll returns all dishes in catalog order
func (r *InMemoryDishRepository) GetAll(ctx context.Context) ([]models.Dish, error) {
	dishes := make([]models.Dish, 0, len(r.order))
	for _, id := range r.order {
		dishes = append(dishes, r.dishes[id])
	}
	return dishes, nil
}

// GetByID returns a dish by its ID
func (r *InMemoryDishRepository) GetByID(ctx context.Context, id string) (*models.Dish, error) {
	dish, exists := r.dishes[id]
	if !exists {
		return nil, ErrDishNotFound
	}
	return &dish, nil
}
