package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/model"
	"gaming-storefront/internal/pricing"
	"gaming-storefront/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

type CatalogService interface {
	Add(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*model.Product, error)
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error)
}

type catalogServiceImpl struct {
	Deps
	productRepo      repository.ProductRepository
	placeholderImage string
}

func NewCatalogService(
	deps Deps,
	productRepo repository.ProductRepository,
	placeholderImage string,
) CatalogService {
	return &catalogServiceImpl{
		Deps:             deps,
		productRepo:      productRepo,
		placeholderImage: placeholderImage,
	}
}

func (s *catalogServiceImpl) Add(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error) {
	if req.BasePrice == nil {
		return nil, invalid("basePrice", "is required")
	}

	product := model.Product{
		ID:           strings.TrimSpace(req.ID),
		Name:         strings.TrimSpace(req.Name),
		Category:     req.Category,
		BasePrice:    *req.BasePrice,
		Discount:     req.Discount,
		Platform:     req.Platform,
		DeliveryTime: req.DeliveryTime,
		Image:        req.Image,
		Description:  req.Description,
		IsFeatured:   req.IsFeatured,
	}
	if product.Category == "" {
		product.Category = model.CategoryGamePass
	}
	if product.Image == "" {
		product.Image = s.placeholderImage
	}
	if err := validateProduct(&product); err != nil {
		return nil, err
	}

	err := s.mutate(ctx, func(changes changeSet) error {
		products, err := s.productRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}

		if product.ID == "" {
			product.ID = uuid.NewString()
		} else if indexOfProduct(products, product.ID) >= 0 {
			return invalid("id", "already exists")
		}

		products = append([]model.Product{product}, products...)
		if err := s.productRepo.Save(ctx, nil, products); err != nil {
			return fmt.Errorf("save products: %w", err)
		}
		changes[repository.ProductsKey] = len(products)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "product added", "product_id", product.ID, "name", product.Name)
	return &product, nil
}

func (s *catalogServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*model.Product, error) {
	var product model.Product
	err := s.mutate(ctx, func(changes changeSet) error {
		products, err := s.productRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}

		i := indexOfProduct(products, id)
		if i < 0 {
			return fmt.Errorf("%w: product %s: %w", ErrValidation, id, ErrNotFound)
		}

		product = products[i]
		applyProductUpdate(&product, req)
		if err := validateProduct(&product); err != nil {
			return err
		}

		products[i] = product
		if err := s.productRepo.Save(ctx, nil, products); err != nil {
			return fmt.Errorf("save products: %w", err)
		}
		changes[repository.ProductsKey] = len(products)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "product updated", "product_id", id)
	return &product, nil
}

func (s *catalogServiceImpl) Remove(ctx context.Context, id string) error {
	removed := false
	err := s.mutate(ctx, func(changes changeSet) error {
		products, err := s.productRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}

		before := len(products)
		remaining := slices.DeleteFunc(products, func(p model.Product) bool { return p.ID == id })
		if len(remaining) == before {
			return nil
		}

		if err := s.productRepo.Save(ctx, nil, remaining); err != nil {
			return fmt.Errorf("save products: %w", err)
		}
		changes[repository.ProductsKey] = len(remaining)
		removed = true
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		s.Log.InfoContext(ctx, "product removed", "product_id", id)
	}
	return nil
}

func (s *catalogServiceImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	i := indexOfProduct(products, id)
	if i < 0 {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	return &products[i], nil
}

func (s *catalogServiceImpl) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(filter.Query))

	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !p.IsFeatured {
			continue
		}
		if query != "" && !strings.Contains(fold.String(p.Name), query) {
			continue
		}
		result = append(result, p)
	}

	return result, nil
}

func validateProduct(p *model.Product) error {
	if p.Name == "" {
		return invalid("name", "is required")
	}
	if p.BasePrice < 0 {
		return invalid("basePrice", "must not be negative")
	}
	if p.Discount < pricing.MinDiscount || p.Discount > pricing.MaxDiscount {
		return invalid("discount", fmt.Sprintf("must be between %d and %d", pricing.MinDiscount, pricing.MaxDiscount))
	}
	if !p.Category.Valid() {
		return invalid("category", fmt.Sprintf("unknown category %q", p.Category))
	}
	return nil
}

func applyProductUpdate(p *model.Product, req *dto.UpdateProductRequest) {
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.BasePrice != nil {
		p.BasePrice = *req.BasePrice
	}
	if req.Discount != nil {
		p.Discount = *req.Discount
	}
	if req.Platform != nil {
		p.Platform = *req.Platform
	}
	if req.DeliveryTime != nil {
		p.DeliveryTime = *req.DeliveryTime
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
}

func indexOfProduct(products []model.Product, id string) int {
	return slices.IndexFunc(products, func(p model.Product) bool { return p.ID == id })
}
