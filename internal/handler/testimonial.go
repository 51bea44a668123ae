package handler

import (
	"net/http"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type TestimonialHandler struct {
	feedbackService service.FeedbackService
}

func NewTestimonialHandler(feedbackService service.FeedbackService) *TestimonialHandler {
	return &TestimonialHandler{
		feedbackService: feedbackService,
	}
}

func (h *TestimonialHandler) ListTestimonials(c echo.Context) error {
	ctx := c.Request().Context()

	testimonials, err := h.feedbackService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) CreateTestimonial(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	testimonial, err := h.feedbackService.Add(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.feedbackService.Remove(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
