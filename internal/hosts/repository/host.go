package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	hostserrors "staymarket/internal/hosts/errors"
	"staymarket/pkg/config"
	"staymarket/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	CollectionName = "Hosts"
)

type mongoHostRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
}

type HostRepository interface {
	Create(ctx context.Context, host *model.Host) error
	FindByUserID(ctx context.Context, userID string) (*model.Host, error)
	Update(ctx context.Context, userID string, host *model.Host) error
}

func NewMongoHostRepository(cfg *config.Config) HostRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoHostRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoHostRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
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

func (r *mongoHostRepository) Create(ctx context.Context, host *model.Host) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	host.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, host)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return hostserrors.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create host profile: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		host.ID = oid.Hex()
	}
	return nil
}

func (r *mongoHostRepository) FindByUserID(ctx context.Context, userID string) (*model.Host, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var host model.Host
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&host)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, hostserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find host profile: %w", err)
	}

	return &host, nil
}

func (r *mongoHostRepository) Update(ctx context.Context, userID string, host *model.Host) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":       host.Name,
			"email":      host.Email,
			"phone":      host.Phone,
			"avatar_url": host.AvatarURL,
			"about":      host.About,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update host profile: %w", err)
	}

	if result.MatchedCount == 0 {
		return hostserrors.ErrNotFound
	}

	return nil
}
