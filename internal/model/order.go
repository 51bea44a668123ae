package model

import (
	"time"

	"gaming-storefront/internal/pricing"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderItem holds a copy of the product as it was when added to the cart,
// never a reference to the live catalog entry.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i OrderItem) Line() pricing.Line {
	return pricing.Line{
		BasePrice: i.Product.BasePrice,
		Discount:  i.Product.Discount,
		Quantity:  i.Quantity,
	}
}

type Order struct {
	ID            string      `json:"id"` // short code the buyer quotes in chat
	CustomerName  string      `json:"customerName"`
	WhatsApp      string      `json:"whatsapp"`
	GameUsername  string      `json:"gameUsername,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Email         string      `json:"email,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalPrice    float64     `json:"totalPrice"` // frozen at submission
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func TotalOf(items []OrderItem) float64 {
	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = item.Line()
	}
	return pricing.Sum(lines...)
}
