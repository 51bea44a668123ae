package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gaming-storefront/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection keys carry the schema version so an incompatible layout change
// gets a fresh key instead of misreading old rows.
const (
	ProductsKey     = "products-collection-v4"
	OrdersKey       = "orders-collection-v4"
	TestimonialsKey = "testimonials-collection-v4"
)

type DocumentRepository interface {
	// Load decodes the document stored under key into dest. It reports false
	// when the key has never been written.
	Load(ctx context.Context, key string, dest any) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, key string, value any) error
	SeedIfAbsent(ctx context.Context, key string, value any) (bool, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type documentRepoImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepoImpl{
		db: db,
	}
}

func (r *documentRepoImpl) Load(ctx context.Context, key string, dest any) (bool, error) {
	var doc model.Document
	err := r.db.WithContext(ctx).
		Where(&model.Document{Key: key}).
		First(&doc).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(doc.Payload, dest); err != nil {
		return true, fmt.Errorf("decode document %s: %w", key, err)
	}

	return true, nil
}

func (r *documentRepoImpl) Save(ctx context.Context, tx *gorm.DB, key string, value any) error {
	if tx == nil {
		tx = r.db
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}

	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&model.Document{
		Key:     key,
		Payload: datatypes.JSON(payload),
	}).Error
}

func (r *documentRepoImpl) SeedIfAbsent(ctx context.Context, key string, value any) (bool, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("encode document %s: %w", key, err)
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Document{
			Key:     key,
			Payload: datatypes.JSON(payload),
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *documentRepoImpl) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
