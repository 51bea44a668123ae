package service

import (
	"context"

	"gaming-storefront/internal/cart"
	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/event"
	"gaming-storefront/internal/handoff"
	"gaming-storefront/internal/model"
)

type CheckoutService interface {
	// Checkout turns the session cart into a pending order, empties the cart
	// and returns the chat link the buyer opens to arrange payment.
	Checkout(ctx context.Context, sessionID string, req *dto.SubmitOrderRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	carts    *cart.Registry
	orders   OrderService
	composer *handoff.Composer
	notifier event.Notifier
}

func NewCheckoutService(
	carts *cart.Registry,
	orders OrderService,
	composer *handoff.Composer,
	notifier event.Notifier,
) CheckoutService {
	return &checkoutServiceImpl{
		carts:    carts,
		orders:   orders,
		composer: composer,
		notifier: notifier,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, sessionID string, req *dto.SubmitOrderRequest) (*dto.CheckoutResponse, error) {
	var items []model.OrderItem
	_ = s.carts.Existing(sessionID, func(c *cart.Cart) error {
		items = c.Items()
		return nil
	})
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// The registry lock is not held here: creating the order writes to the
	// database and may publish to a remote broker.
	order, err := s.orders.Create(ctx, items, req.BuyerFields)
	if err != nil {
		return nil, err
	}
	s.carts.Drop(sessionID)

	h := s.composer.Compose(order)
	s.notifier.OrderSubmitted(ctx, model.OrderSubmitted{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		WhatsApp:     order.WhatsApp,
		TotalPrice:   order.TotalPrice,
		ItemCount:    len(order.Items),
		CreatedAt:    order.CreatedAt,
	})

	return &dto.CheckoutResponse{
		Order:      order,
		Message:    h.Message,
		HandoffURL: h.URL,
	}, nil
}
