package service

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/model"
	"gaming-storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.addProduct(t, "robux", "Robux 800", 100000, 20)
	_, err := env.cartSvc.AddItem(ctx, "session-1", p.ID)
	require.NoError(t, err)
	cartResp, err := env.cartSvc.AddItem(ctx, "session-1", p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 160000, cartResp.Total, 1e-9)

	resp, err := env.checkout.Checkout(ctx, "session-1", &dto.SubmitOrderRequest{BuyerFields: dto.BuyerFields{
		CustomerName:  "Budi",
		WhatsApp:      "081234567890",
		GameUsername:  "budi_pro",
		PaymentMethod: "DANA",
	}})
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusPending, resp.Order.Status)
	assert.InDelta(t, 160000, resp.Order.TotalPrice, 1e-9)
	require.Len(t, resp.Order.Items, 1)
	assert.Equal(t, 2, resp.Order.Items[0].Quantity)

	assert.Contains(t, resp.Message, "Halo Admin Test Store!")
	assert.Contains(t, resp.Message, "- Robux 800 (x2)")
	assert.Contains(t, resp.Message, "Total: Rp 160.000")
	assert.Contains(t, resp.Message, "Order ID: #"+resp.Order.ID)

	require.True(t, strings.HasPrefix(resp.HandoffURL, "https://wa.me/628111?text="))
	u, err := url.Parse(resp.HandoffURL)
	require.NoError(t, err)
	assert.Equal(t, resp.Message, u.Query().Get("text"))

	view, err := env.cartSvc.View(ctx, "session-1")
	require.NoError(t, err)
	assert.Zero(t, view.Count, "cart is emptied after checkout")
	assert.Zero(t, env.carts.Sessions(), "checked out carts are forgotten")

	require.Len(t, env.notifier.orders, 1)
	assert.Equal(t, resp.Order.ID, env.notifier.orders[0].OrderID)
	assert.Equal(t, 1, env.notifier.orders[0].ItemCount)
}

func TestCheckout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.checkout.Checkout(ctx, "nobody", &dto.SubmitOrderRequest{BuyerFields: buyer()})
	require.ErrorIs(t, err, ErrEmptyCart)

	orders, err := env.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, env.notifier.orders)
}

func TestCheckout_InvalidBuyerKeepsCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.addProduct(t, "a", "A", 1000, 0)
	_, err := env.cartSvc.AddItem(ctx, "s", p.ID)
	require.NoError(t, err)

	_, err = env.checkout.Checkout(ctx, "s", &dto.SubmitOrderRequest{BuyerFields: dto.BuyerFields{CustomerName: "Budi"}})
	require.ErrorIs(t, err, ErrValidation)

	view, err := env.cartSvc.View(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
}

func TestCheckout_CartsUsableWhileOrderIsStored(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.addProduct(t, "a", "A", 1000, 0)
	_, err := env.cartSvc.AddItem(ctx, "buyer", p.ID)
	require.NoError(t, err)

	// Another shopper touches their cart while the order write is being
	// published.
	var reached bool
	env.notifier.onChange = func(e model.CollectionChanged) {
		if e.Collection != repository.OrdersKey {
			return
		}
		done := make(chan struct{})
		go func() {
			_, _ = env.cartSvc.AddItem(ctx, "other", p.ID)
			close(done)
		}()
		select {
		case <-done:
			reached = true
		case <-time.After(2 * time.Second):
		}
	}

	_, err = env.checkout.Checkout(ctx, "buyer", &dto.SubmitOrderRequest{BuyerFields: buyer()})
	require.NoError(t, err)

	assert.True(t, reached, "cart registry stays available during checkout")
	assert.Equal(t, 1, env.carts.Sessions())
}
