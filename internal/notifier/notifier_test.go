package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"staymarket/pkg/config"
	"staymarket/pkg/kafka"
	"staymarket/pkg/logger"
	"staymarket/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mockStore struct {
	insertFunc func(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	inserted   []*Notification
}

func (m *mockStore) InsertOne(ctx context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if n, ok := document.(*Notification); ok {
		m.inserted = append(m.inserted, n)
	}
	if m.insertFunc != nil {
		return m.insertFunc(ctx, document)
	}
	return &mongo.InsertOneResult{}, nil
}

func testService(t *testing.T, store *mockStore) *Service {
	t.Helper()
	cfg := &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
	return &Service{cfg: cfg, store: store}
}

func bookingMessage(t *testing.T, eventType string, booking *model.Booking) kafka.Message {
	t.Helper()
	return kafka.NewMessage().
		WithKey(booking.ListingID).
		WithValue(booking).
		WithEventType(eventType).
		WithSource("bookings").
		Build()
}

func TestHandleEventStoresBookingCreatedNotification(t *testing.T) {
	store := &mockStore{}
	service := testService(t, store)

	booking := &model.Booking{
		ListingID: "64f1b2a3c4d5e6f708192a3b",
		UserID:    "user-42",
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
	}
	msg := bookingMessage(t, kafka.EventBookingCreated, booking)

	if err := service.HandleEvent(context.Background(), msg); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}

	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d notifications, want 1", len(store.inserted))
	}
	got := store.inserted[0]
	if got.UserID != "user-42" {
		t.Errorf("UserID = %q, want %q", got.UserID, "user-42")
	}
	if got.EventType != kafka.EventBookingCreated {
		t.Errorf("EventType = %q, want %q", got.EventType, kafka.EventBookingCreated)
	}
	if got.EventID != msg.GetEventID() {
		t.Errorf("EventID = %q, want %q", got.EventID, msg.GetEventID())
	}
	if !strings.Contains(got.Message, "2026-10-01") || !strings.Contains(got.Message, "2026-10-05") {
		t.Errorf("Message = %q, want the stay dates included", got.Message)
	}
	if got.Read {
		t.Error("new notification should be unread")
	}
}

func TestHandleEventBookingCancelled(t *testing.T) {
	store := &mockStore{}
	service := testService(t, store)

	booking := &model.Booking{ListingID: "64f1b2a3c4d5e6f708192a3b", UserID: "user-42"}
	msg := bookingMessage(t, kafka.EventBookingCancelled, booking)

	if err := service.HandleEvent(context.Background(), msg); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d notifications, want 1", len(store.inserted))
	}
	if !strings.Contains(store.inserted[0].Message, "cancelled") {
		t.Errorf("Message = %q, want cancellation text", store.inserted[0].Message)
	}
}

func TestHandleEventTransportationCreated(t *testing.T) {
	store := &mockStore{}
	service := testService(t, store)

	transportation := &model.Transportation{
		UserID:      "user-7",
		VehicleType: model.VehicleTypeVan,
		Date:        time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	msg := kafka.NewMessage().
		WithKey(transportation.UserID).
		WithValue(transportation).
		WithEventType(kafka.EventTransportationCreated).
		WithSource("bookings").
		Build()

	if err := service.HandleEvent(context.Background(), msg); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d notifications, want 1", len(store.inserted))
	}
	got := store.inserted[0]
	if got.UserID != "user-7" {
		t.Errorf("UserID = %q, want %q", got.UserID, "user-7")
	}
	if !strings.Contains(got.Message, "van") || !strings.Contains(got.Message, "2026-09-12") {
		t.Errorf("Message = %q, want vehicle type and date included", got.Message)
	}
}

func TestHandleEventUnknownTypeIsDropped(t *testing.T) {
	store := &mockStore{}
	service := testService(t, store)

	msg := kafka.NewMessage().
		WithKey("k").
		WithValue(map[string]string{"foo": "bar"}).
		WithEventType("listing.imported").
		Build()

	if err := service.HandleEvent(context.Background(), msg); err != nil {
		t.Fatalf("HandleEvent() error = %v, want nil for unknown event type", err)
	}
	if len(store.inserted) != 0 {
		t.Errorf("inserted %d notifications, want 0", len(store.inserted))
	}
}

func TestHandleEventMalformedPayloadIsDropped(t *testing.T) {
	store := &mockStore{}
	service := testService(t, store)

	msg := kafka.NewMessage().
		WithKey("k").
		WithEventType(kafka.EventBookingCreated).
		Build()
	msg.Value = []byte("{not json")

	if err := service.HandleEvent(context.Background(), msg); err != nil {
		t.Fatalf("HandleEvent() error = %v, want nil for malformed payload", err)
	}
	if len(store.inserted) != 0 {
		t.Errorf("inserted %d notifications, want 0", len(store.inserted))
	}
}

func TestHandleEventStorageFailureIsReturned(t *testing.T) {
	store := &mockStore{
		insertFunc: func(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
			return nil, errors.New("connection reset")
		},
	}
	service := testService(t, store)

	booking := &model.Booking{ListingID: "64f1b2a3c4d5e6f708192a3b", UserID: "user-42"}
	msg := bookingMessage(t, kafka.EventBookingCreated, booking)

	if err := service.HandleEvent(context.Background(), msg); err == nil {
		t.Fatal("HandleEvent() error = nil, want storage error so the consumer retries")
	}
}
