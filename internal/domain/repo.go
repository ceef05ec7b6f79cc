package domain

type DishRepository interface {
	List() []Dish
	Get(id string) (Dish, bool)
	Has(id string) bool
	Insert(d Dish) error
	Replace(d Dish) error
}

type OrderRepository interface {
	List() []Order
	Get(id string) (Order, bool)
	Has(id string) bool
	Insert(o Order) error
	Replace(o Order) error
	RemoveIf(id string, guard func(Order) error) (Order, error)
}
