// Package seed loads the initial dishes and orders from a JSON file.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/application/service"
	"github.com/TemirB/grubdash/internal/domain"
)

type File struct {
	Dishes []domain.Dish  `json:"dishes"`
	Orders []domain.Order `json:"orders"`
}

type dishStore interface {
	Insert(d domain.Dish) error
}

type orderStore interface {
	Insert(o domain.Order) error
}

func Read(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return f, nil
}

// Load inserts seeded records as-is, keeping their ids. An empty path is a no-op.
func Load(path string, dishes dishStore, orders orderStore, logger *zap.Logger) error {
	if path == "" {
		return nil
	}
	f, err := Read(path)
	if err != nil {
		return err
	}
	for _, d := range f.Dishes {
		if d.ID == "" {
			return fmt.Errorf("seed dish %q has no id", d.Name)
		}
		if err := service.CheckDish(dishInput(d)); err != nil {
			return fmt.Errorf("seed dish %s: %w", d.ID, err)
		}
		if err := dishes.Insert(d); err != nil {
			return fmt.Errorf("seed dishes: %w", err)
		}
	}
	for _, o := range f.Orders {
		if o.ID == "" {
			return fmt.Errorf("seed order for %q has no id", o.DeliverTo)
		}
		if o.Status == "" {
			o.Status = domain.StatusPending
		}
		if err := service.CheckOrder(orderInput(o)); err != nil {
			return fmt.Errorf("seed order %s: %w", o.ID, err)
		}
		if err := orders.Insert(o); err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
	}
	logger.Info("Seed data loaded",
		zap.String("path", path),
		zap.Int("dishes", len(f.Dishes)),
		zap.Int("orders", len(f.Orders)),
	)
	return nil
}

func dishInput(d domain.Dish) domain.DishInput {
	return domain.DishInput{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       float64(d.Price),
		ImageURL:    d.ImageURL,
	}
}

func orderInput(o domain.Order) domain.OrderInput {
	in := domain.OrderInput{
		ID:           o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Status:       o.Status,
	}
	if o.Dishes != nil {
		in.Dishes = make([]domain.OrderDishInput, len(o.Dishes))
		for i, d := range o.Dishes {
			in.Dishes[i] = domain.OrderDishInput{DishID: d.DishID, Quantity: float64(d.Quantity)}
		}
	}
	return in
}
