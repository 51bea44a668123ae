package model

import (
	"slices"

	"gaming-storefront/internal/pricing"
)

type Category string

const (
	CategoryGamePass     Category = "Game Pass"
	CategoryGameAccounts Category = "Game Accounts"
	CategoryJokiServices Category = "Joki Services"
)

func Categories() []Category {
	return []Category{CategoryGamePass, CategoryGameAccounts, CategoryJokiServices}
}

func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

type Product struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Category     Category `json:"category" yaml:"category"`
	BasePrice    float64  `json:"basePrice" yaml:"basePrice"` // whole Rupiah, before discount
	Discount     int      `json:"discount" yaml:"discount"`   // percent, 0-99
	Platform     string   `json:"platform" yaml:"platform"`
	DeliveryTime string   `json:"deliveryTime" yaml:"deliveryTime"`
	Image        string   `json:"image" yaml:"image"` // URL or data URL
	Description  string   `json:"description" yaml:"description"`
	IsFeatured   bool     `json:"isFeatured,omitempty" yaml:"isFeatured"`
}

func (p Product) FinalPrice() float64 {
	return pricing.FinalPrice(p.BasePrice, p.Discount)
}
