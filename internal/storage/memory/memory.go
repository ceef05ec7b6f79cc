// Package memory holds ordered in-memory collections of records.
package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/TemirB/grubdash/internal/domain"
)

var ErrDuplicateID = errors.New("duplicate id")

type Record interface {
	RecordID() string
}

// Collection keeps records in insertion order and remembers every id it has
// ever held so that ids are never handed out twice.
type Collection[T Record] struct {
	mu    sync.RWMutex
	items []T
	seen  map[string]struct{}
	kind  string
}

func NewCollection[T Record](kind string) *Collection[T] {
	return &Collection[T]{
		seen: make(map[string]struct{}),
		kind: kind,
	}
}

func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Has reports whether id was ever stored, including removed records.
func (c *Collection[T]) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.seen[id]
	return ok
}

func (c *Collection[T]) Insert(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := rec.RecordID()
	if _, ok := c.seen[id]; ok {
		return fmt.Errorf("%s %q: %w", c.kind, id, ErrDuplicateID)
	}
	c.seen[id] = struct{}{}
	c.items = append(c.items, rec)
	return nil
}

func (c *Collection[T]) Replace(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := rec.RecordID()
	i := c.index(id)
	if i < 0 {
		return c.notFound(id)
	}
	c.items[i] = rec
	return nil
}

// RemoveIf deletes the record when guard accepts it. Guard runs under the
// write lock, so the check and the removal cannot interleave with other writers.
func (c *Collection[T]) RemoveIf(id string, guard func(T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	i := c.index(id)
	if i < 0 {
		return zero, c.notFound(id)
	}
	rec := c.items[i]
	if guard != nil {
		if err := guard(rec); err != nil {
			return zero, err
		}
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return rec, nil
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) index(id string) int {
	for i, rec := range c.items {
		if rec.RecordID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) notFound(id string) error {
	return domain.NotFoundf("%s id not found: %s", c.kind, id)
}

type (
	Dishes = Collection[domain.Dish]
	Orders = Collection[domain.Order]
)

func NewDishes() *Dishes { return NewCollection[domain.Dish]("Dish") }

func NewOrders() *Orders { return NewCollection[domain.Order]("Order") }
