package server

import (
	"context"
	"log/slog"
	"net/http"

	"gaming-storefront/internal/auth"
	"gaming-storefront/internal/handler"
	"gaming-storefront/internal/handoff"
	appmiddleware "gaming-storefront/internal/middleware"
	"gaming-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Services are the stores and workflows the HTTP API exposes.
type Services struct {
	Catalog   service.CatalogService
	Orders    service.OrderService
	Feedback  service.FeedbackService
	Cart      service.CartService
	Checkout  service.CheckoutService
	Snapshot  service.SnapshotService
	Dashboard service.DashboardService
}

type Options struct {
	Authorizer    auth.Authorizer
	Composer      *handoff.Composer
	MaxImageBytes int64
	Log           *slog.Logger
}

type Server struct {
	echo               *echo.Echo
	authorizer         auth.Authorizer
	productHandler     *handler.ProductHandler
	orderHandler       *handler.OrderHandler
	testimonialHandler *handler.TestimonialHandler
	cartHandler        *handler.CartHandler
	checkoutHandler    *handler.CheckoutHandler
	adminHandler       *handler.AdminHandler
}

func NewServer(svc Services, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(opts.Log)

	e.Use(requestLogger(opts.Log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		ExposeHeaders: []string{handler.CartSessionHeader},
	}))
	e.Use(middleware.BodyLimit("8M"))

	s := &Server{
		echo:               e,
		authorizer:         opts.Authorizer,
		productHandler:     handler.NewProductHandler(svc.Catalog),
		orderHandler:       handler.NewOrderHandler(svc.Orders),
		testimonialHandler: handler.NewTestimonialHandler(svc.Feedback),
		cartHandler:        handler.NewCartHandler(svc.Cart),
		checkoutHandler:    handler.NewCheckoutHandler(svc.Checkout, opts.Composer),
		adminHandler:       handler.NewAdminHandler(opts.Authorizer, svc.Snapshot, svc.Dashboard, opts.MaxImageBytes),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.GET("/categories", s.productHandler.ListCategories)
	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/:id", s.productHandler.GetProduct)
	api.GET("/testimonials", s.testimonialHandler.ListTestimonials)
	api.POST("/testimonials", s.testimonialHandler.CreateTestimonial)
	api.GET("/contact", s.checkoutHandler.Contact)

	// -------- cart & checkout --------
	cart := api.Group("/cart")
	cart.GET("", s.cartHandler.GetCart)
	cart.DELETE("", s.cartHandler.ClearCart)
	cart.POST("/items", s.cartHandler.AddItem)
	cart.PATCH("/items/:productId", s.cartHandler.UpdateItem)
	cart.DELETE("/items/:productId", s.cartHandler.RemoveItem)
	api.POST("/checkout", s.checkoutHandler.Checkout)

	// -------- admin --------
	api.POST("/admin/login", s.adminHandler.Login)

	admin := api.Group("/admin", appmiddleware.AdminOnly(s.authorizer))
	admin.POST("/products", s.productHandler.CreateProduct)
	admin.PUT("/products/:id", s.productHandler.UpdateProduct)
	admin.DELETE("/products/:id", s.productHandler.DeleteProduct)
	admin.POST("/images", s.adminHandler.UploadImage)
	admin.GET("/orders", s.orderHandler.ListOrders)
	admin.PATCH("/orders/:id/status", s.orderHandler.UpdateOrderStatus)
	admin.DELETE("/testimonials/:id", s.testimonialHandler.DeleteTestimonial)
	admin.GET("/stats", s.adminHandler.Stats)
	admin.GET("/snapshot", s.adminHandler.ExportSnapshot)
	admin.POST("/snapshot", s.adminHandler.ImportSnapshot)
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				log.LogAttrs(c.Request().Context(), slog.LevelWarn, "request failed", slog.String("err", v.Error.Error()), slog.Group("req", attrs...))
				return nil
			}
			log.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", slog.Group("req", attrs...))
			return nil
		},
	})
}
