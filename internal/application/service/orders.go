package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/domain"
	"github.com/TemirB/grubdash/internal/observability"
	"github.com/TemirB/grubdash/internal/validation"
)

const orderResource = "order"

type Orders struct {
	deps
	store domain.OrderRepository
}

func NewOrders(store domain.OrderRepository, events Publisher, logger *zap.Logger, metrics observability.Metrics) *Orders {
	return &Orders{
		deps:  newDeps(events, logger, metrics),
		store: store,
	}
}

func (s *Orders) List(ctx context.Context) []domain.Order {
	return s.store.List()
}

func (s *Orders) Get(ctx context.Context, id string) (domain.Order, error) {
	order, ok := s.store.Get(id)
	if !ok {
		return domain.Order{}, domain.NotFoundf("Order id not found: %s", id)
	}
	return order, nil
}

// Create stores a new order. A missing status means pending.
func (s *Orders) Create(ctx context.Context, in domain.OrderInput) (domain.Order, error) {
	checks := []validation.Check[domain.OrderInput]{
		validation.Required(func(o domain.OrderInput) string { return o.DeliverTo }, "Order must include a deliverTo"),
		validation.Required(func(o domain.OrderInput) string { return o.MobileNumber }, "Order must include a mobileNumber"),
		dishesPresent,
		dishesValid,
		func(o domain.OrderInput) error {
			if o.Status == "" {
				return nil
			}
			return statusValid(o)
		},
	}
	if err := validation.Run(in, checks...); err != nil {
		s.rejected(orderResource, "create", err)
		return domain.Order{}, err
	}

	if in.Status == "" {
		in.Status = domain.StatusPending
	}
	order := toOrder(s.newID(s.store.Has), in)
	if err := s.store.Insert(order); err != nil {
		s.logger.Error("Error while inserting order", zap.String("order_id", order.ID), zap.Error(err))
		return domain.Order{}, err
	}

	s.metrics.ObserveMutation(orderResource, "create", true)
	s.events.Publish(domain.NewEvent(domain.OrderCreated, order.ID, order))
	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.Int("dishes", len(order.Dishes)),
	)
	return order, nil
}

func (s *Orders) Update(ctx context.Context, id string, in domain.OrderInput) (domain.Order, error) {
	if _, err := s.Get(ctx, id); err != nil {
		s.rejected(orderResource, "update", err, zap.String("order_id", id))
		return domain.Order{}, err
	}

	checks := []validation.Check[domain.OrderInput]{
		validation.Required(func(o domain.OrderInput) string { return o.DeliverTo }, "Order must include a deliverTo"),
		validation.Required(func(o domain.OrderInput) string { return o.MobileNumber }, "Order must include a mobileNumber"),
		validation.Required(func(o domain.OrderInput) domain.Status { return o.Status }, "Order must include a status"),
		dishesPresent,
		validation.MatchesID(func(o domain.OrderInput) string { return o.ID }, id,
			"Order id does not match route id. Order: %s, Route: %s."),
		statusValid,
		dishesValid,
	}
	if err := validation.Run(in, checks...); err != nil {
		s.rejected(orderResource, "update", err, zap.String("order_id", id))
		return domain.Order{}, err
	}

	order := toOrder(id, in)
	if err := s.store.Replace(order); err != nil {
		s.rejected(orderResource, "update", err, zap.String("order_id", id))
		return domain.Order{}, err
	}

	s.metrics.ObserveMutation(orderResource, "update", true)
	s.events.Publish(domain.NewEvent(domain.OrderUpdated, order.ID, order))
	s.logger.Info("Order updated",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)),
	)
	return order, nil
}

// Delete removes a pending order. The status check and the removal happen
// under one store lock.
func (s *Orders) Delete(ctx context.Context, id string) error {
	removed, err := s.store.RemoveIf(id, func(o domain.Order) error {
		if o.Status != domain.StatusPending {
			return domain.Invalidf("An order cannot be deleted unless it is pending")
		}
		return nil
	})
	if err != nil {
		s.rejected(orderResource, "delete", err, zap.String("order_id", id))
		return err
	}

	s.metrics.ObserveMutation(orderResource, "delete", true)
	s.events.Publish(domain.NewEvent(domain.OrderDeleted, removed.ID, removed))
	s.logger.Info("Order deleted", zap.String("order_id", removed.ID))
	return nil
}

// CheckOrder validates a complete order, status included, as it would be
// stored.
func CheckOrder(in domain.OrderInput) error {
	return validation.Run(in,
		validation.Required(func(o domain.OrderInput) string { return o.DeliverTo }, "Order must include a deliverTo"),
		validation.Required(func(o domain.OrderInput) string { return o.MobileNumber }, "Order must include a mobileNumber"),
		validation.Required(func(o domain.OrderInput) domain.Status { return o.Status }, "Order must include a status"),
		dishesPresent,
		statusValid,
		dishesValid,
	)
}

func dishesPresent(o domain.OrderInput) error {
	if o.Dishes == nil {
		return domain.Invalidf("Order must include a dishes")
	}
	return nil
}

func dishesValid(o domain.OrderInput) error {
	if len(o.Dishes) == 0 {
		return domain.Invalidf("Order must include at least one dish")
	}
	for i, d := range o.Dishes {
		if !validation.IsPositiveInt(d.Quantity) {
			return domain.Invalidf("Dish %d must have a quantity that is an integer greater than 0", i)
		}
	}
	return nil
}

func statusValid(o domain.OrderInput) error {
	if !o.Status.Valid() {
		return domain.Invalidf("Order must have a status of %s", domain.StatusList())
	}
	return nil
}

func toOrder(id string, in domain.OrderInput) domain.Order {
	dishes := make([]domain.OrderDish, len(in.Dishes))
	for i, d := range in.Dishes {
		dishes[i] = domain.OrderDish{
			DishID:      d.DishID,
			Quantity:    int(d.Quantity),
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			ImageURL:    d.ImageURL,
		}
	}
	return domain.Order{
		ID:           id,
		DeliverTo:    in.DeliverTo,
		MobileNumber: in.MobileNumber,
		Status:       in.Status,
		Dishes:       dishes,
	}
}
