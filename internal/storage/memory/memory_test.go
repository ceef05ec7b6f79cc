package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TemirB/grubdash/internal/domain"
)

func TestCollection_CRUD(t *testing.T) {
	dishes := NewDishes()

	require.NoError(t, dishes.Insert(domain.Dish{ID: "1", Name: "Taco"}))
	require.NoError(t, dishes.Insert(domain.Dish{ID: "2", Name: "Burrito"}))

	got, ok := dishes.Get("1")
	require.True(t, ok)
	require.Equal(t, "Taco", got.Name)

	require.NoError(t, dishes.Replace(domain.Dish{ID: "1", Name: "Nachos"}))
	got, _ = dishes.Get("1")
	require.Equal(t, "Nachos", got.Name)

	list := dishes.List()
	require.Len(t, list, 2)
	require.Equal(t, "1", list[0].ID)
	require.Equal(t, "2", list[1].ID)

	_, ok = dishes.Get("missing")
	require.False(t, ok)
}

func TestCollection_ListIsACopy(t *testing.T) {
	dishes := NewDishes()
	require.NoError(t, dishes.Insert(domain.Dish{ID: "1", Name: "Taco"}))

	list := dishes.List()
	list[0].Name = "changed"

	got, _ := dishes.Get("1")
	require.Equal(t, "Taco", got.Name)
}

func TestCollection_DuplicateID(t *testing.T) {
	dishes := NewDishes()
	require.NoError(t, dishes.Insert(domain.Dish{ID: "1"}))

	err := dishes.Insert(domain.Dish{ID: "1"})
	require.ErrorIs(t, err, ErrDuplicateID)
	require.Equal(t, 1, dishes.Len())
}

func TestCollection_ReplaceMissing(t *testing.T) {
	orders := NewOrders()
	err := orders.Replace(domain.Order{ID: "nope"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.EqualError(t, err, "Order id not found: nope")
}

func TestCollection_RemoveIf(t *testing.T) {
	errBlocked := errors.New("blocked")

	orders := NewOrders()
	require.NoError(t, orders.Insert(domain.Order{ID: "a", Status: domain.StatusPending}))
	require.NoError(t, orders.Insert(domain.Order{ID: "b", Status: domain.StatusPreparing}))
	require.NoError(t, orders.Insert(domain.Order{ID: "c", Status: domain.StatusPending}))

	guard := func(o domain.Order) error {
		if o.Status != domain.StatusPending {
			return errBlocked
		}
		return nil
	}

	_, err := orders.RemoveIf("b", guard)
	require.ErrorIs(t, err, errBlocked)
	require.Equal(t, 3, orders.Len())

	removed, err := orders.RemoveIf("a", guard)
	require.NoError(t, err)
	require.Equal(t, "a", removed.ID)

	list := orders.List()
	require.Len(t, list, 2)
	require.Equal(t, "b", list[0].ID)
	require.Equal(t, "c", list[1].ID)

	_, err = orders.RemoveIf("a", guard)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollection_RemovedIDsAreRemembered(t *testing.T) {
	orders := NewOrders()
	require.NoError(t, orders.Insert(domain.Order{ID: "a"}))
	_, err := orders.RemoveIf("a", nil)
	require.NoError(t, err)

	require.True(t, orders.Has("a"))
	require.ErrorIs(t, orders.Insert(domain.Order{ID: "a"}), ErrDuplicateID)
}
