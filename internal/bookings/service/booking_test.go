package service

import (
	"context"
	"testing"
	"time"

	"staymarket/internal/bookings/repository"
	"staymarket/internal/bookings/validator"
	"staymarket/pkg/config"
	apperrors "staymarket/pkg/errors"
	"staymarket/pkg/kafka"
	"staymarket/pkg/logger"
	"staymarket/pkg/model"
)

type mockBookingRepository struct {
	createFunc          func(ctx context.Context, booking *model.Booking) error
	findByIDFunc        func(ctx context.Context, id string) (*model.Booking, error)
	findByUserFunc      func(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, error)
	findOverlappingFunc func(ctx context.Context, listingID string, startDate, endDate time.Time) ([]*model.Booking, error)
	updateStatusFunc    func(ctx context.Context, id string, status string) error
}

var _ repository.BookingRepository = (*mockBookingRepository)(nil)

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "507f1f77bcf86cd799439020"
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBookingRepository) FindByUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, error) {
	if m.findByUserFunc != nil {
		return m.findByUserFunc(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockBookingRepository) FindOverlapping(ctx context.Context, listingID string, startDate, endDate time.Time) ([]*model.Booking, error) {
	if m.findOverlappingFunc != nil {
		return m.findOverlappingFunc(ctx, listingID, startDate, endDate)
	}
	return nil, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockBookingRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

type mockPublisher struct {
	published []kafka.Message
}

func (m *mockPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	m.published = append(m.published, msg)
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:     "error",
			Format:    logger.JSON,
			AddSource: false,
			Service:   "test",
		}),
	}
}

func validBooking() *model.Booking {
	start := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return &model.Booking{
		ListingID:  "507f1f77bcf86cd799439011",
		UserID:     "user-1",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 4),
		TotalPrice: 84000,
		Guests:     2,
	}
}

func TestCreateBooking(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockBookingRepository{}
	publisher := &mockPublisher{}
	svc := NewBookingService(repo, validator.NewBookingValidator(cfg.Log), publisher, cfg)

	booking := validBooking()
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if booking.Status != model.BookingStatusPending {
		t.Errorf("Status = %q, want pending default", booking.Status)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("published %d events, want 1", len(publisher.published))
	}
	if got := publisher.published[0].GetEventType(); got != kafka.EventBookingCreated {
		t.Errorf("event type = %q, want %q", got, kafka.EventBookingCreated)
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockBookingRepository{
		findOverlappingFunc: func(ctx context.Context, listingID string, startDate, endDate time.Time) ([]*model.Booking, error) {
			return []*model.Booking{{ID: "existing", Status: model.BookingStatusConfirmed}}, nil
		},
	}
	publisher := &mockPublisher{}
	svc := NewBookingService(repo, validator.NewBookingValidator(cfg.Log), publisher, cfg)

	err := svc.Create(context.Background(), validBooking())
	if err == nil {
		t.Fatal("expected a conflict error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeConflict {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeConflict)
	}
	if len(publisher.published) != 0 {
		t.Error("conflicting booking still published an event")
	}
}

func TestCreateBookingRejectsInvalidDates(t *testing.T) {
	cfg := testConfig(t)
	svc := NewBookingService(&mockBookingRepository{}, validator.NewBookingValidator(cfg.Log), nil, cfg)

	booking := validBooking()
	booking.EndDate = booking.StartDate

	err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected a validation error for a zero-night stay")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidation {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}

func TestCreateBookingRejectsPastStart(t *testing.T) {
	cfg := testConfig(t)
	svc := NewBookingService(&mockBookingRepository{}, validator.NewBookingValidator(cfg.Log), nil, cfg)

	booking := validBooking()
	booking.StartDate = time.Now().AddDate(0, 0, -7)
	booking.EndDate = time.Now().AddDate(0, 0, -3)

	if err := svc.Create(context.Background(), booking); err == nil {
		t.Fatal("expected a validation error for a past start date")
	}
}

func TestCancelBooking(t *testing.T) {
	cfg := testConfig(t)
	stored := validBooking()
	stored.ID = "507f1f77bcf86cd799439020"
	stored.Status = model.BookingStatusConfirmed

	var updatedTo string
	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return stored, nil
		},
		updateStatusFunc: func(ctx context.Context, id string, status string) error {
			updatedTo = status
			return nil
		},
	}
	publisher := &mockPublisher{}
	svc := NewBookingService(repo, validator.NewBookingValidator(cfg.Log), publisher, cfg)

	if err := svc.Cancel(context.Background(), stored.ID, stored.UserID); err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	if updatedTo != model.BookingStatusCancelled {
		t.Errorf("status updated to %q", updatedTo)
	}
	if len(publisher.published) != 1 || publisher.published[0].GetEventType() != kafka.EventBookingCancelled {
		t.Errorf("expected a single %s event", kafka.EventBookingCancelled)
	}
}

func TestCancelBookingOfAnotherUser(t *testing.T) {
	cfg := testConfig(t)
	stored := validBooking()
	stored.ID = "507f1f77bcf86cd799439020"

	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return stored, nil
		},
	}
	svc := NewBookingService(repo, validator.NewBookingValidator(cfg.Log), nil, cfg)

	err := svc.Cancel(context.Background(), stored.ID, "someone-else")
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeForbidden {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeForbidden)
	}
}

func TestCancelCompletedBooking(t *testing.T) {
	cfg := testConfig(t)
	stored := validBooking()
	stored.ID = "507f1f77bcf86cd799439020"
	stored.Status = model.BookingStatusCompleted

	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return stored, nil
		},
	}
	svc := NewBookingService(repo, validator.NewBookingValidator(cfg.Log), nil, cfg)

	err := svc.Cancel(context.Background(), stored.ID, stored.UserID)
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeConflict {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeConflict)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	stored := validBooking()
	stored.ID = "507f1f77bcf86cd799439020"
	stored.Status = model.BookingStatusCancelled

	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return stored, nil
		},
		updateStatusFunc: func(ctx context.Context, id string, status string) error {
			t.Error("already-cancelled booking was updated again")
			return nil
		},
	}
	svc := NewBookingService(repo, validator.NewBookingValidator(cfg.Log), nil, cfg)

	if err := svc.Cancel(context.Background(), stored.ID, stored.UserID); err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
}
