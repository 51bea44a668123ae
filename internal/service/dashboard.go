package service

import (
	"context"
	"fmt"
	"time"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/model"
	"gaming-storefront/internal/repository"
)

// DashboardService aggregates the admin headline numbers. Nothing is cached;
// every call reads the current collections.
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardServiceImpl struct {
	clock           Clock
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	testimonialRepo repository.TestimonialRepository
}

func NewDashboardService(
	clock Clock,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	testimonialRepo repository.TestimonialRepository,
) DashboardService {
	return &dashboardServiceImpl{
		clock:           clock,
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		testimonialRepo: testimonialRepo,
	}
}

func (s *dashboardServiceImpl) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	testimonials, err := s.testimonialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load testimonials: %w", err)
	}

	stats := OrderStats(orders, s.clock())
	stats.TotalProducts = len(products)
	stats.TotalTestimonials = len(testimonials)

	return stats, nil
}

// OrderStats derives the order figures; "today" is the UTC calendar day of now.
func OrderStats(orders []model.Order, now time.Time) *dto.DashboardStats {
	today := now.UTC().Format(time.DateOnly)
	customers := make(map[string]struct{})

	stats := &dto.DashboardStats{}
	for _, o := range orders {
		customers[o.WhatsApp] = struct{}{}

		switch o.Status {
		case model.OrderStatusPending:
			stats.PendingOrders++
		case model.OrderStatusCompleted:
			stats.CompletedOrders++
			if o.CreatedAt.UTC().Format(time.DateOnly) == today {
				stats.TodaySales += o.TotalPrice
			}
		}
	}
	stats.UniqueCustomers = len(customers)

	return stats
}
