package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/model"
	"gaming-storefront/internal/repository"
	"gaming-storefront/internal/seed"

	"gorm.io/gorm"
)

type SnapshotService interface {
	Export(ctx context.Context) ([]byte, error)
	// Import replaces every collection present in raw. It never merges.
	Import(ctx context.Context, raw []byte) (*dto.ImportResult, error)
	// SeedDefaults stores the built-in catalog and testimonials for keys that
	// were never written.
	SeedDefaults(ctx context.Context, defaults *seed.Defaults) error
}

type snapshotServiceImpl struct {
	Deps
	docs            repository.DocumentRepository
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	testimonialRepo repository.TestimonialRepository
}

func NewSnapshotService(
	deps Deps,
	docs repository.DocumentRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	testimonialRepo repository.TestimonialRepository,
) SnapshotService {
	return &snapshotServiceImpl{
		Deps:            deps,
		docs:            docs,
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		testimonialRepo: testimonialRepo,
	}
}

func (s *snapshotServiceImpl) Export(ctx context.Context) ([]byte, error) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	var (
		snap model.Snapshot
		err  error
	)
	if snap.Products, err = s.productRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if snap.Orders, err = s.orderRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if snap.Testimonials, err = s.testimonialRepo.List(ctx); err != nil {
		return nil, fmt.Errorf("load testimonials: %w", err)
	}

	return json.Marshal(snap)
}

// pendingImport is a snapshot section that decoded cleanly. nil slices mean
// the key was absent or null and must be left alone.
type pendingImport struct {
	products     []model.Product
	orders       []model.Order
	testimonials []model.Testimonial
}

func (s *snapshotServiceImpl) Import(ctx context.Context, raw []byte) (*dto.ImportResult, error) {
	pending, err := decodeSnapshot(raw)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResult{Replaced: map[string]int{}}
	if pending.products != nil {
		result.Replaced[repository.ProductsKey] = len(pending.products)
	}
	if pending.orders != nil {
		result.Replaced[repository.OrdersKey] = len(pending.orders)
	}
	if pending.testimonials != nil {
		result.Replaced[repository.TestimonialsKey] = len(pending.testimonials)
	}

	err = s.mutate(ctx, func(changes changeSet) error {
		err := s.docs.Transaction(ctx, func(tx *gorm.DB) error {
			if pending.products != nil {
				if err := s.productRepo.Save(ctx, tx, pending.products); err != nil {
					return fmt.Errorf("replace products: %w", err)
				}
			}
			if pending.orders != nil {
				if err := s.orderRepo.Save(ctx, tx, pending.orders); err != nil {
					return fmt.Errorf("replace orders: %w", err)
				}
			}
			if pending.testimonials != nil {
				if err := s.testimonialRepo.Save(ctx, tx, pending.testimonials); err != nil {
					return fmt.Errorf("replace testimonials: %w", err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		maps.Copy(changes, result.Replaced)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "snapshot imported", "replaced", result.Replaced)
	return result, nil
}

func (s *snapshotServiceImpl) SeedDefaults(ctx context.Context, defaults *seed.Defaults) error {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	seeded, err := s.productRepo.Seed(ctx, defaults.Products)
	if err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if seeded {
		s.Log.InfoContext(ctx, "seeded default products", "count", len(defaults.Products))
	}

	seeded, err = s.testimonialRepo.Seed(ctx, defaults.Testimonials)
	if err != nil {
		return fmt.Errorf("seed testimonials: %w", err)
	}
	if seeded {
		s.Log.InfoContext(ctx, "seeded default testimonials", "count", len(defaults.Testimonials))
	}

	return nil
}

func decodeSnapshot(raw []byte) (*pendingImport, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	if top == nil {
		return nil, fmt.Errorf("%w: top level must be an object", ErrImportFormat)
	}

	pending := &pendingImport{}
	if err := decodeSection(top, "products", &pending.products); err != nil {
		return nil, err
	}
	if err := decodeSection(top, "orders", &pending.orders); err != nil {
		return nil, err
	}
	if err := decodeSection(top, "testimonials", &pending.testimonials); err != nil {
		return nil, err
	}

	return pending, nil
}

// decodeSection leaves dest nil when the key is missing or null and makes it
// non-nil (possibly empty) otherwise.
func decodeSection[T any](top map[string]json.RawMessage, key string, dest *[]T) error {
	raw, ok := top[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrImportFormat, key, err)
	}

	*dest = items
	return nil
}
