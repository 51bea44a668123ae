package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gaming-storefront/internal/cart"
	"gaming-storefront/internal/client"
	"gaming-storefront/internal/config"
	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/handoff"
	"gaming-storefront/internal/model"
	"gaming-storefront/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPlaceholder = "https://placeholder.test/img.png"

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type recordingNotifier struct {
	mu      sync.Mutex
	changes []model.CollectionChanged
	orders  []model.OrderSubmitted

	// storeLock is the services' shared lock. lockedNotifies counts the
	// notifications delivered while it was held.
	storeLock      *sync.Mutex
	lockedNotifies int
	onChange       func(e model.CollectionChanged)
}

func (n *recordingNotifier) CollectionChanged(_ context.Context, e model.CollectionChanged) {
	held := false
	if n.storeLock != nil {
		if held = !n.storeLock.TryLock(); !held {
			n.storeLock.Unlock()
		}
	}

	n.mu.Lock()
	n.changes = append(n.changes, e)
	if held {
		n.lockedNotifies++
	}
	hook := n.onChange
	n.mu.Unlock()

	if hook != nil {
		hook(e)
	}
}

func (n *recordingNotifier) OrderSubmitted(_ context.Context, e model.OrderSubmitted) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, e)
}

func (n *recordingNotifier) changedKeys() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	keys := make([]string, len(n.changes))
	for i, c := range n.changes {
		keys[i] = c.Collection
	}
	return keys
}

type testEnv struct {
	db              *gorm.DB
	notifier        *recordingNotifier
	deps            Deps
	docs            repository.DocumentRepository
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	testimonialRepo repository.TestimonialRepository
	catalog         CatalogService
	orders          OrderService
	feedback        FeedbackService
	snapshot        SnapshotService
	dashboard       DashboardService
	carts           *cart.Registry
	cartSvc         CartService
	checkout        CheckoutService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvAt(t, filepath.Join(t.TempDir(), "test.db"))
}

func newTestEnvAt(t *testing.T, path string) *testEnv {
	t.Helper()

	db, err := client.InitDBClient(config.Database{Driver: "sqlite", DSN: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.CloseDBClient(db) })

	storeLock := &sync.Mutex{}
	env := &testEnv{db: db, notifier: &recordingNotifier{storeLock: storeLock}}
	env.deps = Deps{
		Lock:     storeLock,
		Notifier: env.notifier,
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:    func() time.Time { return testNow },
	}

	env.docs = repository.NewDocumentRepository(db)
	env.productRepo = repository.NewProductRepository(env.docs)
	env.orderRepo = repository.NewOrderRepository(env.docs)
	env.testimonialRepo = repository.NewTestimonialRepository(env.docs)

	env.catalog = NewCatalogService(env.deps, env.productRepo, testPlaceholder)
	env.orders = NewOrderService(env.deps, env.orderRepo)
	env.feedback = NewFeedbackService(env.deps, env.testimonialRepo)
	env.snapshot = NewSnapshotService(env.deps, env.docs, env.productRepo, env.orderRepo, env.testimonialRepo)
	env.dashboard = NewDashboardService(env.deps.Clock, env.productRepo, env.orderRepo, env.testimonialRepo)
	env.carts = cart.NewRegistry()
	env.cartSvc = NewCartService(env.carts, env.catalog)
	env.checkout = NewCheckoutService(env.carts, env.orders, handoff.NewComposer("Test Store", "628111"), env.notifier)

	return env
}

func price(v float64) *float64 {
	return &v
}

func ptr[T any](v T) *T {
	return &v
}

func (env *testEnv) addProduct(t *testing.T, id, name string, base float64, discount int) *model.Product {
	t.Helper()
	p, err := env.catalog.Add(context.Background(), &dto.CreateProductRequest{
		ID:        id,
		Name:      name,
		Category:  model.CategoryGamePass,
		BasePrice: price(base),
		Discount:  discount,
	})
	require.NoError(t, err)
	return p
}

func buyer() dto.BuyerFields {
	return dto.BuyerFields{CustomerName: "Budi", WhatsApp: "081234567890"}
}
