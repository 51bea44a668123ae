package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/model"
	"gaming-storefront/internal/repository"

	"github.com/google/uuid"
)

type FeedbackService interface {
	Add(ctx context.Context, req *dto.CreateTestimonialRequest) (*model.Testimonial, error)
	Remove(ctx context.Context, id string) error
	// List returns testimonials newest first.
	List(ctx context.Context) ([]model.Testimonial, error)
}

type feedbackServiceImpl struct {
	Deps
	testimonialRepo repository.TestimonialRepository
}

func NewFeedbackService(deps Deps, testimonialRepo repository.TestimonialRepository) FeedbackService {
	return &feedbackServiceImpl{
		Deps:            deps,
		testimonialRepo: testimonialRepo,
	}
}

func (s *feedbackServiceImpl) Add(ctx context.Context, req *dto.CreateTestimonialRequest) (*model.Testimonial, error) {
	t := model.Testimonial{
		Name:    strings.TrimSpace(req.Name),
		Content: strings.TrimSpace(req.Content),
		Rating:  req.Rating,
		Game:    strings.TrimSpace(req.Game),
	}
	switch {
	case t.Name == "":
		return nil, invalid("name", "is required")
	case t.Content == "":
		return nil, invalid("content", "is required")
	case t.Game == "":
		return nil, invalid("game", "is required")
	case t.Rating < 1 || t.Rating > 5:
		return nil, invalid("rating", "must be between 1 and 5")
	}

	t.ID = uuid.NewString()
	err := s.mutate(ctx, func(changes changeSet) error {
		testimonials, err := s.testimonialRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load testimonials: %w", err)
		}

		testimonials = append(testimonials, t)
		if err := s.testimonialRepo.Save(ctx, nil, testimonials); err != nil {
			return fmt.Errorf("save testimonials: %w", err)
		}
		changes[repository.TestimonialsKey] = len(testimonials)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "testimonial added", "testimonial_id", t.ID, "rating", t.Rating)
	return &t, nil
}

func (s *feedbackServiceImpl) Remove(ctx context.Context, id string) error {
	removed := false
	err := s.mutate(ctx, func(changes changeSet) error {
		testimonials, err := s.testimonialRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load testimonials: %w", err)
		}

		before := len(testimonials)
		testimonials = slices.DeleteFunc(testimonials, func(t model.Testimonial) bool { return t.ID == id })
		if len(testimonials) == before {
			return nil
		}

		if err := s.testimonialRepo.Save(ctx, nil, testimonials); err != nil {
			return fmt.Errorf("save testimonials: %w", err)
		}
		changes[repository.TestimonialsKey] = len(testimonials)
		removed = true
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		s.Log.InfoContext(ctx, "testimonial removed", "testimonial_id", id)
	}
	return nil
}

func (s *feedbackServiceImpl) List(ctx context.Context) ([]model.Testimonial, error) {
	testimonials, err := s.testimonialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load testimonials: %w", err)
	}

	slices.Reverse(testimonials)
	return testimonials, nil
}
