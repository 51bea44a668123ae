package repository

import (
	"context"

	"gaming-storefront/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Save(ctx context.Context, tx *gorm.DB, products []model.Product) error
	Seed(ctx context.Context, products []model.Product) (bool, error)
}

type productRepoImpl struct {
	docs DocumentRepository
}

func NewProductRepository(docs DocumentRepository) ProductRepository {
	return &productRepoImpl{
		docs: docs,
	}
}

func (r *productRepoImpl) List(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if _, err := r.docs.Load(ctx, ProductsKey, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Save(ctx context.Context, tx *gorm.DB, products []model.Product) error {
	if products == nil {
		products = []model.Product{}
	}
	return r.docs.Save(ctx, tx, ProductsKey, products)
}

func (r *productRepoImpl) Seed(ctx context.Context, products []model.Product) (bool, error) {
	if products == nil {
		products = []model.Product{}
	}
	return r.docs.SeedIfAbsent(ctx, ProductsKey, products)
}
