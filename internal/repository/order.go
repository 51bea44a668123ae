package repository

import (
	"context"

	"gaming-storefront/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, tx *gorm.DB, orders []model.Order) error
}

type orderRepoImpl struct {
	docs DocumentRepository
}

func NewOrderRepository(docs DocumentRepository) OrderRepository {
	return &orderRepoImpl{
		docs: docs,
	}
}

func (r *orderRepoImpl) List(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if _, err := r.docs.Load(ctx, OrdersKey, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) Save(ctx context.Context, tx *gorm.DB, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	return r.docs.Save(ctx, tx, OrdersKey, orders)
}
