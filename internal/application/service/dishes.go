package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/domain"
	"github.com/TemirB/grubdash/internal/observability"
	"github.com/TemirB/grubdash/internal/validation"
)

const dishResource = "dish"

type Dishes struct {
	deps
	store domain.DishRepository
}

func NewDishes(store domain.DishRepository, events Publisher, logger *zap.Logger, metrics observability.Metrics) *Dishes {
	return &Dishes{
		deps:  newDeps(events, logger, metrics),
		store: store,
	}
}

func (s *Dishes) List(ctx context.Context) []domain.Dish {
	return s.store.List()
}

func (s *Dishes) Get(ctx context.Context, id string) (domain.Dish, error) {
	dish, ok := s.store.Get(id)
	if !ok {
		return domain.Dish{}, domain.NotFoundf("Dish id not found: %s", id)
	}
	return dish, nil
}

func (s *Dishes) Create(ctx context.Context, in domain.DishInput) (domain.Dish, error) {
	if err := validation.Run(in, dishChecks()...); err != nil {
		s.rejected(dishResource, "create", err)
		return domain.Dish{}, err
	}

	dish := toDish(s.newID(s.store.Has), in)
	if err := s.store.Insert(dish); err != nil {
		s.logger.Error("Error while inserting dish", zap.String("dish_id", dish.ID), zap.Error(err))
		return domain.Dish{}, err
	}

	s.metrics.ObserveMutation(dishResource, "create", true)
	s.events.Publish(domain.NewEvent(domain.DishCreated, dish.ID, dish))
	s.logger.Info("Dish created", zap.String("dish_id", dish.ID))
	return dish, nil
}

func (s *Dishes) Update(ctx context.Context, id string, in domain.DishInput) (domain.Dish, error) {
	if _, err := s.Get(ctx, id); err != nil {
		s.rejected(dishResource, "update", err, zap.String("dish_id", id))
		return domain.Dish{}, err
	}

	checks := append(dishChecks(),
		validation.MatchesID(func(d domain.DishInput) string { return d.ID }, id,
			"Dish id does not match route id. Dish: %s, Route: %s"),
	)
	if err := validation.Run(in, checks...); err != nil {
		s.rejected(dishResource, "update", err, zap.String("dish_id", id))
		return domain.Dish{}, err
	}

	dish := toDish(id, in)
	if err := s.store.Replace(dish); err != nil {
		s.rejected(dishResource, "update", err, zap.String("dish_id", id))
		return domain.Dish{}, err
	}

	s.metrics.ObserveMutation(dishResource, "update", true)
	s.events.Publish(domain.NewEvent(domain.DishUpdated, dish.ID, dish))
	s.logger.Info("Dish updated", zap.String("dish_id", dish.ID))
	return dish, nil
}

// CheckDish runs the field checks a created or updated dish must pass.
func CheckDish(in domain.DishInput) error {
	return validation.Run(in, dishChecks()...)
}

func dishChecks() []validation.Check[domain.DishInput] {
	return []validation.Check[domain.DishInput]{
		validation.Required(func(d domain.DishInput) string { return d.Name }, "Dish must include a name"),
		validation.Required(func(d domain.DishInput) string { return d.Description }, "Dish must include a description"),
		validation.Required(func(d domain.DishInput) float64 { return d.Price }, "Dish must include a price"),
		validation.Required(func(d domain.DishInput) string { return d.ImageURL }, "Dish must include a image_url"),
		validation.PositiveInt(func(d domain.DishInput) float64 { return d.Price },
			"Dish must have a price that is an integer greater than 0"),
	}
}

func toDish(id string, in domain.DishInput) domain.Dish {
	return domain.Dish{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       int(in.Price),
		ImageURL:    in.ImageURL,
	}
}
