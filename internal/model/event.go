package model

import "time"

type CollectionChanged struct {
	Collection string    `json:"collection"`
	Size       int       `json:"size"`
	ChangedAt  time.Time `json:"changedAt"`
}

type OrderSubmitted struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	WhatsApp     string    `json:"whatsapp"`
	TotalPrice   float64   `json:"totalPrice"`
	ItemCount    int       `json:"itemCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
