package domain

type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

func (d Dish) RecordID() string { return d.ID }

// DishInput is a dish as submitted by a client. Zero values mean the field was
// absent; Price stays a float so that fractional prices can be rejected.
type DishInput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}
