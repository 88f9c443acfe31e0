package service

import (
	"context"

	"github.com/batcheasycook/batchcook-api/internal/models"
	"github.com/batcheasycook/batchcook-api/internal/repository"
	"github.com/batcheasycook/batchcook-api/internal/scaling"
)

// DishService handles catalog business logic
type DishService struct {
	dishes repository.DishRepository
	menus  repository.MenuRepository
}

// NewDishService creates a new dish service
func NewDishService(dishes repository.DishRepository, menus repository.MenuRepository) *DishService {
	return &DishService{
		dishes: dishes,
		menus:  menus,
	}
}

// ListDishes returns the full catalog
func (s *DishService) ListDishes(ctx context.Context) ([]models.Dish, error) {
	return s.dishes.GetAll(ctx)
}

// GetDish returns a dish by ID
func (s *DishService) GetDish(ctx context.Context, id string) (*models.Dish, error) {
	return s.dishes.GetByID(ctx, id)
}

// DishView is a catalog entry together with its figures adjusted for a
// serving count.
type DishView struct {
	models.Dish
	AdjustedIngredients []models.Ingredient `json:"adjustedIngredients"`
	AdjustedTime        int                 `json:"adjustedTime"`
	AdjustedPrice       float64             `json:"adjustedPrice"`
	PriceCategory       int                 `json:"priceCategory"`
	RequestedServings   int                 `json:"requestedServings"`
}

// GetDishAtServings returns a dish with its quantities, price and time
// scaled to the requested serving count.
func (s *DishService) GetDishAtServings(ctx context.Context, id string, servings int) (*DishView, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fig := scaling.ForDish(*dish, servings)
	return &DishView{
		Dish:                *dish,
		AdjustedIngredients: fig.Ingredients,
		AdjustedTime:        fig.TimeMinutes,
		AdjustedPrice:       fig.Price,
		PriceCategory:       fig.PriceCategory,
		RequestedServings:   servings,
	}, nil
}

// ListMenus returns the fixed weekly formulas
func (s *DishService) ListMenus(ctx context.Context) ([]models.Menu, error) {
	return s.menus.GetAll(ctx)
}
