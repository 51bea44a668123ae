package handler

import (
	"net/http"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/handoff"
	"gaming-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	composer        *handoff.Composer
}

func NewCheckoutHandler(checkoutService service.CheckoutService, composer *handoff.Composer) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		composer:        composer,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := cartSession(c)

	var req dto.SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.checkoutService.Checkout(ctx, sessionID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

// Contact returns the plain chat link used by the storefront's contact button.
func (h *CheckoutHandler) Contact(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"url": h.composer.ContactURL(),
	})
}
