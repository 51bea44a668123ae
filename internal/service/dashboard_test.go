package service

import (
	"context"
	"testing"
	"time"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStats(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)

	orders := []model.Order{
		{ID: "A", WhatsApp: "0811", Status: model.OrderStatusCompleted, TotalPrice: 100000, CreatedAt: now.Add(-time.Hour)},
		{ID: "B", WhatsApp: "0811", Status: model.OrderStatusCompleted, TotalPrice: 50000, CreatedAt: yesterday},
		{ID: "C", WhatsApp: "0822", Status: model.OrderStatusPending, TotalPrice: 70000, CreatedAt: now},
		{ID: "D", WhatsApp: "0833", Status: model.OrderStatusCancelled, TotalPrice: 90000, CreatedAt: now},
		{ID: "E", WhatsApp: "0822", Status: model.OrderStatusPending, TotalPrice: 10000, CreatedAt: now},
	}

	stats := OrderStats(orders, now)
	assert.Equal(t, &dto.DashboardStats{
		PendingOrders:   2,
		CompletedOrders: 2,
		TodaySales:      100000,
		UniqueCustomers: 3,
	}, stats)
}

func TestOrderStats_Empty(t *testing.T) {
	assert.Equal(t, &dto.DashboardStats{}, OrderStats(nil, time.Now()))
}

func TestOrderStats_TodayIsUTC(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 2026-03-15 01:00 WIB is still 2026-03-14 in UTC.
	now := time.Date(2026, 3, 15, 1, 0, 0, 0, jakarta)
	orders := []model.Order{
		{ID: "A", WhatsApp: "1", Status: model.OrderStatusCompleted, TotalPrice: 5, CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)},
	}

	assert.Equal(t, 5.0, OrderStats(orders, now).TodaySales)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.addProduct(t, "a", "A", 100000, 0)
	env.addProduct(t, "b", "B", 100000, 0)
	_, err := env.feedback.Add(ctx, &dto.CreateTestimonialRequest{Name: "Andi", Content: "Cepat!", Rating: 5, Game: "Roblox"})
	require.NoError(t, err)

	items := []model.OrderItem{{Product: *p, Quantity: 1}}
	done, err := env.orders.Create(ctx, items, buyer())
	require.NoError(t, err)
	_, err = env.orders.SetStatus(ctx, done.ID, model.OrderStatusCompleted)
	require.NoError(t, err)
	_, err = env.orders.Create(ctx, items, dto.BuyerFields{CustomerName: "Sari", WhatsApp: "0899"})
	require.NoError(t, err)

	stats, err := env.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &dto.DashboardStats{
		PendingOrders:     1,
		CompletedOrders:   1,
		TodaySales:        100000,
		UniqueCustomers:   2,
		TotalProducts:     2,
		TotalTestimonials: 1,
	}, stats)
}
