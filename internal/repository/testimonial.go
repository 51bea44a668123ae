package repository

import (
	"context"

	"gaming-storefront/internal/model"

	"gorm.io/gorm"
)

type TestimonialRepository interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Save(ctx context.Context, tx *gorm.DB, testimonials []model.Testimonial) error
	Seed(ctx context.Context, testimonials []model.Testimonial) (bool, error)
}

type testimonialRepoImpl struct {
	docs DocumentRepository
}

func NewTestimonialRepository(docs DocumentRepository) TestimonialRepository {
	return &testimonialRepoImpl{
		docs: docs,
	}
}

func (r *testimonialRepoImpl) List(ctx context.Context) ([]model.Testimonial, error) {
	testimonials := []model.Testimonial{}
	if _, err := r.docs.Load(ctx, TestimonialsKey, &testimonials); err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (r *testimonialRepoImpl) Save(ctx context.Context, tx *gorm.DB, testimonials []model.Testimonial) error {
	if testimonials == nil {
		testimonials = []model.Testimonial{}
	}
	return r.docs.Save(ctx, tx, TestimonialsKey, testimonials)
}

func (r *testimonialRepoImpl) Seed(ctx context.Context, testimonials []model.Testimonial) (bool, error) {
	if testimonials == nil {
		testimonials = []model.Testimonial{}
	}
	return r.docs.SeedIfAbsent(ctx, TestimonialsKey, testimonials)
}
