package service

import (
	"context"
	"errors"

	reviewserrors "staymarket/internal/reviews/errors"
	"staymarket/internal/reviews/repository"
	"staymarket/pkg/config"
	apperrors "staymarket/pkg/errors"
	"staymarket/pkg/kafka"
	"staymarket/pkg/model"
	"staymarket/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// ListingSummary is the aggregate a listing page shows next to its reviews.
type ListingSummary struct {
	Rating float64 `json:"rating"`
	Count  int64   `json:"count"`
}

type ReviewService interface {
	Create(ctx context.Context, review *model.Review) error
	GetByListing(ctx context.Context, listingID string) ([]*model.Review, *ListingSummary, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	validate  *validator.Validate
	publisher EventPublisher
	cfg       *config.Config
}

func NewReviewService(
	repo repository.ReviewRepository,
	publisher EventPublisher,
	cfg *config.Config,
) ReviewService {
	return &reviewService{
		repo:      repo,
		validate:  validator.New(),
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *reviewService) Create(ctx context.Context, review *model.Review) error {
	review.AuthorName = sanitizer.TrimAndNormalize(review.AuthorName)
	review.Comment = sanitizer.TrimAndNormalize(review.Comment)
	review.Rating = sanitizer.ClampRating(review.Rating)

	if review.ListingID == "" {
		return apperrors.InvalidInput("Listing ID cannot be empty")
	}
	if err := s.validate.Struct(review); err != nil {
		s.cfg.Log.Warn("Review validation failed", "error", err)
		return apperrors.Validation("Invalid review", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, review); err != nil {
		if errors.Is(err, reviewserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid listing ID format")
		}
		s.cfg.Log.Error("Failed to create review", "listing_id", review.ListingID, "error", err)
		return apperrors.Internal("Failed to create review", err)
	}

	s.publishEvent(ctx, review)

	s.cfg.Log.Info("Review created",
		"id", review.ID,
		"listing_id", review.ListingID,
		"rating", review.Rating,
	)
	return nil
}

func (s *reviewService) GetByListing(ctx context.Context, listingID string) ([]*model.Review, *ListingSummary, error) {
	if listingID == "" {
		return nil, nil, apperrors.InvalidInput("Listing ID cannot be empty")
	}

	reviews, err := s.repo.FindByListing(ctx, listingID)
	if err != nil {
		s.cfg.Log.Error("Failed to list reviews", "listing_id", listingID, "error", err)
		return nil, nil, apperrors.Internal("Failed to retrieve reviews", err)
	}

	rating, count, err := s.repo.AverageRating(ctx, listingID)
	if err != nil {
		s.cfg.Log.Error("Failed to aggregate ratings", "listing_id", listingID, "error", err)
		return nil, nil, apperrors.Internal("Failed to aggregate ratings", err)
	}

	return reviews, &ListingSummary{Rating: rating, Count: count}, nil
}

func (s *reviewService) publishEvent(ctx context.Context, review *model.Review) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(review.ListingID).
		WithValue(review).
		WithEventType(kafka.EventReviewCreated).
		WithSource("reviews").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish review event",
			"review_id", review.ID,
			"error", err,
		)
	}
}
