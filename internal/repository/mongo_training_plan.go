package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTrainingPlanRepository implements domain.TrainingPlanRepository
type MongoTrainingPlanRepository struct {
	collection *mongo.Collection
}

func NewMongoTrainingPlanRepository(db *mongo.Database) *MongoTrainingPlanRepository {
	return &MongoTrainingPlanRepository{collection: db.Collection("training_plans")}
}

func (r *MongoTrainingPlanRepository) SeedIfEmpty(ctx context.Context, plans []domain.TrainingPlan) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count training plans: %w", err)
	}
	if count > 0 || len(plans) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(plans))
	for _, p := range plans {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(p).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("failed to seed training plans: %w", err)
	}
	return int(result.UpsertedCount + result.ModifiedCount), nil
}

func (r *MongoTrainingPlanRepository) List(ctx context.Context) ([]*domain.TrainingPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "days_per_week", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list training plans: %w", err)
	}
	defer cursor.Close(ctx)

	plans := make([]*domain.TrainingPlan, 0)
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode training plans: %w", err)
	}
	return plans, nil
}

func (r *MongoTrainingPlanRepository) GetByID(ctx context.Context, id string) (*domain.TrainingPlan, error) {
	var plan domain.TrainingPlan
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTrainingPlanNotFound, id)
		}
		return nil, fmt.Errorf("failed to get training plan: %w", err)
	}
	return &plan, nil
}
