package main

import (
	"context"
	"time"

	"github.com/mansoorceksport/fitpro/internal/config"
	"github.com/mansoorceksport/fitpro/internal/planner"
	"github.com/mansoorceksport/fitpro/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the predefined training plans. Existing plans are left alone.
func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		logrus.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewMongoTrainingPlanRepository(client.Database(cfg.MongoDB.Database))
	n, err := repo.SeedIfEmpty(ctx, planner.TrainingPlans())
	if err != nil {
		logrus.Fatalf("Failed to seed training plans: %v", err)
	}

	if n == 0 {
		logrus.Info("Training plans already present, nothing to do")
		return
	}
	logrus.Infof("Seeded %d training plans", n)
}
