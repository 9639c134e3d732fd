package service

import (
	"context"
	"errors"
	"sync"

	bookingserrors "staymarket/internal/bookings/errors"
	"staymarket/internal/bookings/repository"
	"staymarket/internal/bookings/validator"
	"staymarket/pkg/config"
	apperrors "staymarket/pkg/errors"
	"staymarket/pkg/kafka"
	"staymarket/pkg/model"
)

// EventPublisher is the slice of the Kafka producer the service needs.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetByUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, int64, error)
	Cancel(ctx context.Context, id string, userID string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create validates the booking, rejects date conflicts with confirmed
// bookings on the same listing, stores it and publishes a booking.created
// event. A failed publish does not fail the booking.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Invalid booking", map[string]any{"error": err.Error()})
	}

	overlapping, err := s.repo.FindOverlapping(ctx, booking.ListingID, booking.StartDate, booking.EndDate)
	if err != nil {
		s.cfg.Log.Error("Failed to check booking conflicts", "listing_id", booking.ListingID, "error", err)
		return apperrors.Internal("Failed to check booking availability", err)
	}
	if len(overlapping) > 0 {
		return apperrors.Conflict("The listing is already booked for these dates").WithDetails(map[string]any{
			"listing_id": booking.ListingID,
			"start_date": booking.StartDate,
			"end_date":   booking.EndDate,
		})
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.publishEvent(ctx, kafka.EventBookingCreated, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"listing_id", booking.ListingID,
		"user_id", booking.UserID,
		"start_date", booking.StartDate,
	)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetByUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	if userID == "" {
		return nil, 0, apperrors.InvalidInput("User ID cannot be empty")
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountByUser(ctx, userID)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "user_id", userID, "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindByUser(ctx, userID, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "user_id", userID, "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// Cancel marks the booking cancelled. Only the booking's own user may cancel
// it, and a completed stay cannot be cancelled.
func (s *bookingService) Cancel(ctx context.Context, id string, userID string) error {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if userID == "" || booking.UserID != userID {
		return apperrors.Forbidden("Booking belongs to a different user")
	}
	if booking.Status == model.BookingStatusCompleted {
		return apperrors.Conflict("A completed booking cannot be cancelled")
	}
	if booking.Status == model.BookingStatusCancelled {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, id, model.BookingStatusCancelled); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to cancel booking", "id", id, "error", err)
		return apperrors.Internal("Failed to cancel booking", err)
	}

	booking.Status = model.BookingStatusCancelled
	s.publishEvent(ctx, kafka.EventBookingCancelled, booking)

	s.cfg.Log.Info("Booking cancelled", "id", id, "user_id", userID)
	return nil
}

func (s *bookingService) publishEvent(ctx context.Context, eventType string, booking *model.Booking) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(booking.ListingID).
		WithValue(booking).
		WithEventType(eventType).
		WithSource("bookings").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
