package dto

import "gaming-storefront/internal/model"

type CreateProductRequest struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     model.Category `json:"category"`
	BasePrice    *float64       `json:"basePrice"`
	Discount     int            `json:"discount"`
	Platform     string         `json:"platform"`
	DeliveryTime string         `json:"deliveryTime"`
	Image        string         `json:"image"`
	Description  string         `json:"description"`
	IsFeatured   bool           `json:"isFeatured"`
}

// UpdateProductRequest replaces only the fields that are present.
type UpdateProductRequest struct {
	Name         *string         `json:"name"`
	Category     *model.Category `json:"category"`
	BasePrice    *float64        `json:"basePrice"`
	Discount     *int            `json:"discount"`
	Platform     *string         `json:"platform"`
	DeliveryTime *string         `json:"deliveryTime"`
	Image        *string         `json:"image"`
	Description  *string         `json:"description"`
	IsFeatured   *bool           `json:"isFeatured"`
}

type ProductFilter struct {
	Category     model.Category `query:"category"`
	Query        string         `query:"q"`
	FeaturedOnly bool           `query:"featured"`
}

// BuyerFields is what the customer types into the checkout form.
type BuyerFields struct {
	CustomerName  string `json:"customerName"`
	WhatsApp      string `json:"whatsapp"`
	GameUsername  string `json:"gameUsername"`
	PaymentMethod string `json:"paymentMethod"`
	Email         string `json:"email"`
}

type SubmitOrderRequest struct {
	BuyerFields
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

type CreateTestimonialRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Game    string `json:"game"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
}

type UpdateCartItemRequest struct {
	Delta int `json:"delta"`
}

type CartResponse struct {
	SessionID string            `json:"sessionId"`
	Items     []model.OrderItem `json:"items"`
	Count     int               `json:"count"`
	Total     float64           `json:"total"`
}

type CheckoutResponse struct {
	Order      *model.Order `json:"order"`
	Message    string       `json:"message"`
	HandoffURL string       `json:"handoffUrl"`
}

type LoginRequest struct {
	Identity string `json:"identity"`
}

type DashboardStats struct {
	PendingOrders     int     `json:"pendingOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	TodaySales        float64 `json:"todaySales"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
	TotalProducts     int     `json:"totalProducts"`
	TotalTestimonials int     `json:"totalTestimonials"`
}

type ImportResult struct {
	Replaced map[string]int `json:"replaced"` // collection key -> new size
}
