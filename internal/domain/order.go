package domain

import "strings"

type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

var Statuses = []Status{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func StatusList() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

type OrderDish struct {
	DishID      string  `json:"dishId"`
	Quantity    int     `json:"quantity"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       Status      `json:"status"`
	Dishes       []OrderDish `json:"dishes"`
}

func (o Order) RecordID() string { return o.ID }

type OrderDishInput struct {
	DishID      string  `json:"dishId"`
	Quantity    float64 `json:"quantity"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

// OrderInput is an order as submitted by a client. A nil Dishes means the field
// was absent, an empty non-nil slice means it was sent as [].
type OrderInput struct {
	ID           string           `json:"id"`
	DeliverTo    string           `json:"deliverTo"`
	MobileNumber string           `json:"mobileNumber"`
	Status       Status           `json:"status"`
	Dishes       []OrderDishInput `json:"dishes"`
}
