package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	transporterrors "staymarket/internal/transportation/errors"
	"staymarket/internal/transportation/repository"
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

type TransportationService interface {
	Create(ctx context.Context, transportation *model.Transportation) error
	GetByID(ctx context.Context, id string) (*model.Transportation, error)
	GetByUser(ctx context.Context, userID string) ([]*model.Transportation, error)
	Cancel(ctx context.Context, id string, userID string) error
}

type transportationService struct {
	repo      repository.TransportationRepository
	validate  *validator.Validate
	publisher EventPublisher
	cfg       *config.Config
}

func NewTransportationService(
	repo repository.TransportationRepository,
	publisher EventPublisher,
	cfg *config.Config,
) TransportationService {
	return &transportationService{
		repo:      repo,
		validate:  validator.New(),
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *transportationService) Create(ctx context.Context, transportation *model.Transportation) error {
	if transportation.Status == "" {
		transportation.Status = model.BookingStatusPending
	}
	transportation.PickupLocation = sanitizer.TrimAndNormalize(transportation.PickupLocation)
	transportation.DropoffLocation = sanitizer.TrimAndNormalize(transportation.DropoffLocation)

	if err := s.validate.Struct(transportation); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return apperrors.Validation("Invalid transportation request", map[string]any{
				"error": translate(validationErrs),
			})
		}
		return apperrors.Internal("Failed to validate transportation request", err)
	}

	if err := s.repo.Create(ctx, transportation); err != nil {
		s.cfg.Log.Error("Failed to create transportation request", "error", err)
		return apperrors.Internal("Failed to create transportation request", err)
	}

	s.publishEvent(ctx, kafka.EventTransportationCreated, transportation)

	s.cfg.Log.Info("Transportation request created",
		"id", transportation.ID,
		"user_id", transportation.UserID,
		"vehicle_type", transportation.VehicleType,
	)
	return nil
}

func (s *transportationService) GetByID(ctx context.Context, id string) (*model.Transportation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Transportation ID cannot be empty")
	}

	transportation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, transporterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Transportation request", id)
		}
		if errors.Is(err, transporterrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid transportation ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve transportation request", err)
	}

	return transportation, nil
}

func (s *transportationService) GetByUser(ctx context.Context, userID string) ([]*model.Transportation, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	requests, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.cfg.Log.Error("Failed to list transportation requests", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve transportation requests", err)
	}

	return requests, nil
}

func (s *transportationService) Cancel(ctx context.Context, id string, userID string) error {
	transportation, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if userID == "" || transportation.UserID != userID {
		return apperrors.Forbidden("Transportation request belongs to a different user")
	}
	if transportation.Status == model.BookingStatusCancelled {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, id, model.BookingStatusCancelled); err != nil {
		s.cfg.Log.Error("Failed to cancel transportation request", "id", id, "error", err)
		return apperrors.Internal("Failed to cancel transportation request", err)
	}

	s.cfg.Log.Info("Transportation request cancelled", "id", id, "user_id", userID)
	return nil
}

func (s *transportationService) publishEvent(ctx context.Context, eventType string, transportation *model.Transportation) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(transportation.UserID).
		WithValue(transportation).
		WithEventType(eventType).
		WithSource("transportation").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish transportation event",
			"event_type", eventType,
			"transportation_id", transportation.ID,
			"error", err,
		)
	}
}

func translate(errs validator.ValidationErrors) string {
	var messages []string
	for _, err := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on %s", err.Field(), err.Tag()))
	}
	return strings.Join(messages, "; ")
}
