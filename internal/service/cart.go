package service

import (
	"context"

	"gaming-storefront/internal/cart"
	"gaming-storefront/internal/dto"
)

type CartService interface {
	View(ctx context.Context, sessionID string) (*dto.CartResponse, error)
	AddItem(ctx context.Context, sessionID, productID string) (*dto.CartResponse, error)
	SetQuantity(ctx context.Context, sessionID, productID string, delta int) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*dto.CartResponse, error)
	Clear(ctx context.Context, sessionID string) (*dto.CartResponse, error)
}

type cartServiceImpl struct {
	carts   *cart.Registry
	catalog CatalogService
}

func NewCartService(carts *cart.Registry, catalog CatalogService) CartService {
	return &cartServiceImpl{
		carts:   carts,
		catalog: catalog,
	}
}

// View never registers a session; an unknown one reads as an empty cart.
func (s *cartServiceImpl) View(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	return s.existing(sessionID, func(c *cart.Cart) {})
}

// AddItem copies the current catalog entry into the cart.
func (s *cartServiceImpl) AddItem(ctx context.Context, sessionID, productID string) (*dto.CartResponse, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	return s.mutate(sessionID, func(c *cart.Cart) error {
		c.AddItem(*product)
		return nil
	})
}

func (s *cartServiceImpl) SetQuantity(ctx context.Context, sessionID, productID string, delta int) (*dto.CartResponse, error) {
	return s.existing(sessionID, func(c *cart.Cart) {
		c.SetQuantity(productID, delta)
	})
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, sessionID, productID string) (*dto.CartResponse, error) {
	return s.existing(sessionID, func(c *cart.Cart) {
		c.RemoveItem(productID)
	})
}

func (s *cartServiceImpl) Clear(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	s.carts.Drop(sessionID)
	return cartResponse(sessionID, cart.New()), nil
}

func (s *cartServiceImpl) mutate(sessionID string, fn func(c *cart.Cart) error) (*dto.CartResponse, error) {
	var resp *dto.CartResponse
	err := s.carts.With(sessionID, func(c *cart.Cart) error {
		if err := fn(c); err != nil {
			return err
		}
		resp = cartResponse(sessionID, c)
		return nil
	})
	return resp, err
}

func (s *cartServiceImpl) existing(sessionID string, fn func(c *cart.Cart)) (*dto.CartResponse, error) {
	var resp *dto.CartResponse
	err := s.carts.Existing(sessionID, func(c *cart.Cart) error {
		fn(c)
		resp = cartResponse(sessionID, c)
		return nil
	})
	return resp, err
}

func cartResponse(sessionID string, c *cart.Cart) *dto.CartResponse {
	return &dto.CartResponse{
		SessionID: sessionID,
		Items:     c.Items(),
		Count:     c.Count(),
		Total:     c.Total(),
	}
}
