package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type progressDocument struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	UserID     string               `bson:"user_id"`
	Date       string               `bson:"date"`
	PlanID     string               `bson:"plan_id,omitempty"`
	DayID      string               `bson:"day_id,omitempty"`
	BodyWeight float64              `bson:"body_weight,omitempty"`
	Exercises  []domain.ExerciseLog `bson:"exercises"`
	Notes      string               `bson:"notes,omitempty"`
	CreatedAt  time.Time            `bson:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at"`
}

func (d *progressDocument) toDomain() *domain.ProgressEntry {
	return &domain.ProgressEntry{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		Date:       d.Date,
		PlanID:     d.PlanID,
		DayID:      d.DayID,
		BodyWeight: d.BodyWeight,
		Exercises:  d.Exercises,
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// MongoProgressRepository implements domain.ProgressRepository.
// Entries are keyed by (user_id, date); the compound unique index enforces one entry per day.
type MongoProgressRepository struct {
	collection *mongo.Collection
}

func NewMongoProgressRepository(db *mongo.Database) *MongoProgressRepository {
	coll := db.Collection("progress")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoProgressRepository{collection: coll}
}

func (r *MongoProgressRepository) Upsert(ctx context.Context, entry *domain.ProgressEntry) error {
	now := time.Now()
	if entry.Exercises == nil {
		entry.Exercises = []domain.ExerciseLog{}
	}

	filter := bson.M{"user_id": entry.UserID, "date": entry.Date}
	update := bson.M{
		"$set": bson.M{
			"plan_id":     entry.PlanID,
			"day_id":      entry.DayID,
			"body_weight": entry.BodyWeight,
			"exercises":   entry.Exercises,
			"notes":       entry.Notes,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc progressDocument
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return fmt.Errorf("failed to upsert progress: %w", err)
	}

	*entry = *doc.toDomain()
	return nil
}

func (r *MongoProgressRepository) GetByDate(ctx context.Context, userID, date string) (*domain.ProgressEntry, error) {
	var doc progressDocument
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoProgressRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]*domain.ProgressEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]*domain.ProgressEntry, 0)
	for cursor.Next(ctx) {
		var doc progressDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode progress: %w", err)
		}
		entries = append(entries, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate progress: %w", err)
	}
	return entries, nil
}
