package handler

import (
	"net/http"
	"strings"

	"gaming-storefront/internal/cart"
	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

// CartSessionHeader identifies a browser's cart. Responses always echo it so
// a client without one learns the id that was minted for it.
const CartSessionHeader = "X-Cart-Session"

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func cartSession(c echo.Context) string {
	sessionID := strings.TrimSpace(c.Request().Header.Get(CartSessionHeader))
	if sessionID == "" {
		sessionID = cart.NewSessionID()
	}
	c.Response().Header().Set(CartSessionHeader, sessionID)
	return sessionID
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.cartService.View(ctx, cartSession(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := cartSession(c)

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId is required")
	}

	resp, err := h.cartService.AddItem(ctx, sessionID, req.ProductID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := cartSession(c)

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.cartService.SetQuantity(ctx, sessionID, c.Param("productId"), req.Delta)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.cartService.RemoveItem(ctx, cartSession(c), c.Param("productId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.cartService.Clear(ctx, cartSession(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
