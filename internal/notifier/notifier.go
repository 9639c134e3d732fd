// Package notifier consumes marketplace events and records a notification
// per event. Delivery channels (mail, push) hang off the stored records.
package notifier

import (
	"context"
	"fmt"
	"time"

	"staymarket/pkg/config"
	"staymarket/pkg/kafka"
	"staymarket/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Notifications"
)

// Notification is the stored record of an event a user should hear about.
type Notification struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"user_id"`
	EventID   string    `bson:"event_id"`
	EventType string    `bson:"event_type"`
	Message   string    `bson:"message"`
	Read      bool      `bson:"read"`
	CreatedAt time.Time `bson:"created_at"`
}

// notificationStore is satisfied by *mongo.Collection.
type notificationStore interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type Service struct {
	cfg   *config.Config
	store notificationStore
}

func NewService(cfg *config.Config) *Service {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &Service{
		cfg:   cfg,
		store: db.Collection(CollectionName),
	}
}

// HandleEvent is the consumer callback. Unknown event types are dropped, not
// retried; a storage failure is returned so the consumer retries.
func (s *Service) HandleEvent(ctx context.Context, msg kafka.Message) error {
	notification, err := s.buildNotification(msg)
	if err != nil {
		s.cfg.Log.Warn("Dropping unhandled event",
			"event_id", msg.GetEventID(),
			"event_type", msg.GetEventType(),
			"error", err,
		)
		return nil
	}

	if _, err := s.store.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	s.cfg.Log.Info("Notification recorded",
		"event_id", notification.EventID,
		"event_type", notification.EventType,
		"user_id", notification.UserID,
	)
	return nil
}

func (s *Service) buildNotification(msg kafka.Message) (*Notification, error) {
	base := Notification{
		EventID:   msg.GetEventID(),
		EventType: msg.GetEventType(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	switch msg.GetEventType() {
	case kafka.EventBookingCreated, kafka.EventBookingCancelled:
		var booking model.Booking
		if err := msg.DecodeValue(&booking); err != nil {
			return nil, fmt.Errorf("failed to decode booking event: %w", err)
		}
		base.UserID = booking.UserID
		if msg.GetEventType() == kafka.EventBookingCreated {
			base.Message = fmt.Sprintf("Your booking from %s to %s was received",
				booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02"))
		} else {
			base.Message = "Your booking was cancelled"
		}

	case kafka.EventTransportationCreated:
		var transportation model.Transportation
		if err := msg.DecodeValue(&transportation); err != nil {
			return nil, fmt.Errorf("failed to decode transportation event: %w", err)
		}
		base.UserID = transportation.UserID
		base.Message = fmt.Sprintf("Your %s pickup on %s was requested",
			transportation.VehicleType, transportation.Date.Format("2006-01-02"))

	case kafka.EventReviewCreated:
		var review model.Review
		if err := msg.DecodeValue(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review event: %w", err)
		}
		base.UserID = review.UserID
		base.Message = fmt.Sprintf("Thanks for reviewing listing %s", review.ListingID)

	default:
		return nil, fmt.Errorf("unknown event type %q", msg.GetEventType())
	}

	return &base, nil
}
