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

// MongoUserRepository implements domain.UserRepository
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	coll := db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "firebase_uid", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoUserRepository{
		collection: coll,
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	objID := primitive.NewObjectID()

	if user.PreferredFoods == nil {
		user.PreferredFoods = []string{}
	}

	doc := bson.M{
		"_id":             objID,
		"firebase_uid":    user.FirebaseUID,
		"email":           user.Email,
		"name":            user.Name,
		"preferred_foods": user.PreferredFoods,
		"created_at":      user.CreatedAt,
		"updated_at":      user.UpdatedAt,
	}
	if user.Goal != "" {
		doc["goal"] = string(user.Goal)
		doc["weekly_availability"] = user.WeeklyAvailability
		doc["weight_kg"] = user.WeightKg
		doc["height_cm"] = user.HeightCm
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = objID.Hex()
	return nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidID, id)
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

func (r *MongoUserRepository) GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"firebase_uid": uid})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var raw bson.M
	if err := r.collection.FindOne(ctx, filter).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mapBsonToUser(raw), nil
}

func (r *MongoUserRepository) UpsertByFirebaseUID(ctx context.Context, user *domain.User) (bool, error) {
	now := time.Now()
	objID := primitive.NewObjectID()

	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":             objID,
			"preferred_foods": []string{},
			"created_at":      now,
		},
		"$set": bson.M{
			"email":      user.Email,
			"name":       user.Name,
			"updated_at": now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"firebase_uid": user.FirebaseUID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to upsert user: %w", err)
	}

	stored, err := r.GetByFirebaseUID(ctx, user.FirebaseUID)
	if err != nil {
		return false, err
	}
	*user = *stored
	return result.UpsertedID != nil, nil
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, userID string, profile domain.Profile) error {
	return r.update(ctx, userID, bson.M{
		"goal":                string(profile.Goal),
		"weekly_availability": profile.WeeklyAvailability,
		"weight_kg":           profile.WeightKg,
		"height_cm":           profile.HeightCm,
	})
}

func (r *MongoUserRepository) UpdatePreferredFoods(ctx context.Context, userID string, foods []string) error {
	if foods == nil {
		foods = []string{}
	}
	return r.update(ctx, userID, bson.M{"preferred_foods": foods})
}

func (r *MongoUserRepository) update(ctx context.Context, userID string, set bson.M) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidID, userID)
	}

	set["updated_at"] = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapBsonToUser(raw bson.M) *domain.User {
	user := &domain.User{PreferredFoods: []string{}}
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	if uid, ok := raw["firebase_uid"].(string); ok {
		user.FirebaseUID = uid
	}
	if email, ok := raw["email"].(string); ok {
		user.Email = email
	}
	if name, ok := raw["name"].(string); ok {
		user.Name = name
	}
	if goal, ok := raw["goal"].(string); ok {
		user.Goal = domain.Goal(goal)
	}
	user.WeeklyAvailability = int(asFloat(raw["weekly_availability"]))
	user.WeightKg = asFloat(raw["weight_kg"])
	user.HeightCm = asFloat(raw["height_cm"])

	if foods, ok := raw["preferred_foods"].(primitive.A); ok {
		for _, f := range foods {
			if name, ok := f.(string); ok {
				user.PreferredFoods = append(user.PreferredFoods, name)
			}
		}
	}
	if created, ok := raw["created_at"].(primitive.DateTime); ok {
		user.CreatedAt = created.Time()
	}
	if updated, ok := raw["updated_at"].(primitive.DateTime); ok {
		user.UpdatedAt = updated.Time()
	}
	return user
}

// asFloat reads a numeric BSON value regardless of how it was stored
func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
