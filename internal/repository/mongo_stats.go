package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStatsRepository implements domain.StatsRepository with one document per user,
// keyed by user id and guarded by a version counter
type MongoStatsRepository struct {
	collection *mongo.Collection
}

func NewMongoStatsRepository(db *mongo.Database) *MongoStatsRepository {
	return &MongoStatsRepository{collection: db.Collection("user_stats")}
}

func (r *MongoStatsRepository) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	var stats domain.UserStats
	if err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&stats); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}

func (r *MongoStatsRepository) CompareAndSwap(ctx context.Context, next *domain.UserStats, expectedVersion int64) error {
	candidate := *next
	candidate.Version = expectedVersion + 1
	candidate.UpdatedAt = time.Now()

	if expectedVersion == 0 {
		if _, err := r.collection.InsertOne(ctx, candidate); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return domain.ErrStatsConflict
			}
			return fmt.Errorf("failed to insert stats: %w", err)
		}
		*next = candidate
		return nil
	}

	filter := bson.M{"_id": next.UserID, "version": expectedVersion}
	update := bson.M{"$set": bson.M{
		"level":              candidate.Level,
		"experience":         candidate.Experience,
		"workouts_completed": candidate.WorkoutsCompleted,
		"streak_days":        candidate.StreakDays,
		"personal_bests":     candidate.PersonalBests,
		"version":            candidate.Version,
		"updated_at":         candidate.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update stats: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrStatsConflict
	}
	*next = candidate
	return nil
}
