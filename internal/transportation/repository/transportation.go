package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	transporterrors "staymarket/internal/transportation/errors"
	"staymarket/pkg/config"
	"staymarket/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Transportation"
)

type mongoTransportationRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
}

type TransportationRepository interface {
	Create(ctx context.Context, transportation *model.Transportation) error
	FindByID(ctx context.Context, id string) (*model.Transportation, error)
	FindByUser(ctx context.Context, userID string) ([]*model.Transportation, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

func NewMongoTransportationRepository(cfg *config.Config) TransportationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTransportationRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoTransportationRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoTransportationRepository) Create(ctx context.Context, transportation *model.Transportation) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	transportation.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, transportation)
	if err != nil {
		return fmt.Errorf("failed to create transportation request: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		transportation.ID = oid.Hex()
	}
	return nil
}

func (r *mongoTransportationRepository) FindByID(ctx context.Context, id string) (*model.Transportation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", transporterrors.ErrInvalidID, id)
	}

	var transportation model.Transportation
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&transportation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, transporterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transportation request: %w", err)
	}

	return &transportation, nil
}

func (r *mongoTransportationRepository) FindByUser(ctx context.Context, userID string) ([]*model.Transportation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find transportation requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*model.Transportation
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode transportation requests: %w", err)
	}

	return requests, nil
}

func (r *mongoTransportationRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", transporterrors.ErrInvalidID, id)
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update transportation status: %w", err)
	}

	if result.MatchedCount == 0 {
		return transporterrors.ErrNotFound
	}

	return nil
}
