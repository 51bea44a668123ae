package service

import (
	"context"
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/model"
	"gaming-storefront/internal/repository"

	"github.com/google/uuid"
)

const (
	orderCodeLength   = 6
	orderCodeAttempts = 16
)

type OrderService interface {
	Create(ctx context.Context, items []model.OrderItem, buyer dto.BuyerFields) (*model.Order, error)
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	// List returns orders newest first.
	List(ctx context.Context) ([]model.Order, error)
}

type orderServiceImpl struct {
	Deps
	orderRepo repository.OrderRepository
}

func NewOrderService(deps Deps, orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		Deps:      deps,
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) Create(ctx context.Context, items []model.OrderItem, buyer dto.BuyerFields) (*model.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, invalid("quantity", fmt.Sprintf("product %s must have at least 1 unit", item.Product.ID))
		}
	}

	order := model.Order{
		CustomerName:  strings.TrimSpace(buyer.CustomerName),
		WhatsApp:      strings.TrimSpace(buyer.WhatsApp),
		GameUsername:  strings.TrimSpace(buyer.GameUsername),
		PaymentMethod: strings.TrimSpace(buyer.PaymentMethod),
		Email:         strings.TrimSpace(buyer.Email),
		Items:         slices.Clone(items),
		Status:        model.OrderStatusPending,
	}
	if order.CustomerName == "" {
		return nil, invalid("customerName", "is required")
	}
	if order.WhatsApp == "" {
		return nil, invalid("whatsapp", "is required")
	}
	order.TotalPrice = model.TotalOf(order.Items)

	err := s.mutate(ctx, func(changes changeSet) error {
		orders, err := s.orderRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}

		order.ID, err = uniqueOrderCode(orders)
		if err != nil {
			return err
		}
		order.CreatedAt = s.Clock().UTC()

		orders = append(orders, order)
		if err := s.orderRepo.Save(ctx, nil, orders); err != nil {
			return fmt.Errorf("save orders: %w", err)
		}
		changes[repository.OrdersKey] = len(orders)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"items", len(order.Items),
		"total", order.TotalPrice,
	)
	return &order, nil
}

func (s *orderServiceImpl) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.IsTerminal() {
		return nil, invalid("status", fmt.Sprintf("must be %s or %s", model.OrderStatusCompleted, model.OrderStatusCancelled))
	}

	var order model.Order
	err := s.mutate(ctx, func(changes changeSet) error {
		orders, err := s.orderRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}

		i := slices.IndexFunc(orders, func(o model.Order) bool { return o.ID == id })
		if i < 0 {
			return fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		if orders[i].Status != model.OrderStatusPending {
			return fmt.Errorf("order %s is %s: %w", id, orders[i].Status, ErrInvalidTransition)
		}

		orders[i].Status = status
		if err := s.orderRepo.Save(ctx, nil, orders); err != nil {
			return fmt.Errorf("save orders: %w", err)
		}
		changes[repository.OrdersKey] = len(orders)
		order = orders[i]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "order status changed", "order_id", id, "status", status)
	return &order, nil
}

func (s *orderServiceImpl) Get(ctx context.Context, id string) (*model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	i := slices.IndexFunc(orders, func(o model.Order) bool { return o.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	return &orders[i], nil
}

func (s *orderServiceImpl) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	slices.Reverse(orders)
	return orders, nil
}

func uniqueOrderCode(existing []model.Order) (string, error) {
	taken := make(map[string]struct{}, len(existing))
	for _, o := range existing {
		taken[o.ID] = struct{}{}
	}

	for range orderCodeAttempts {
		code := newOrderCode()
		if _, ok := taken[code]; !ok {
			return code, nil
		}
	}

	return "", fmt.Errorf("generate order id: %d collisions in a row", orderCodeAttempts)
}

// newOrderCode returns a short uppercase base-36 code a buyer can read out in chat.
func newOrderCode() string {
	id := uuid.New()
	code := strings.ToUpper(strconv.FormatUint(binary.BigEndian.Uint64(id[:8]), 36))
	if len(code) < orderCodeLength {
		code = strings.Repeat("0", orderCodeLength-len(code)) + code
	}
	return code[len(code)-orderCodeLength:]
}
