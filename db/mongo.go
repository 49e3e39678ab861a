// db/mongo.go
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/mobility/config"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
)

const (
	UsersCollection          = "users"
	VehiclesCollection       = "vehicles"
	RepairsCollection        = "repairs"
	SelfChecksCollection     = "selfChecks"
	RepairStationsCollection = "repairStations"
	AdminsCollection         = "admins"
)

var (
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
)

func InitMongo() error {
	uri := config.GetString("mongo.uri")
	timeout := config.GetDuration("mongo.timeout")
	logger.Info("Connecting to MongoDB", zap.String("database", config.GetString("mongo.database")))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetTimeout(timeout))
	if err != nil {
		return fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	MongoClient = client
	MongoDatabase = client.Database(config.GetString("mongo.database"))

	if err := EnsureIndexes(ctx, MongoDatabase); err != nil {
		return err
	}

	logger.Info("Successfully connected to MongoDB")
	return nil
}

// EnsureIndexes creates the unique keys lookups and claims rely on.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "firebaseUid", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		VehiclesCollection: {
			{Keys: bson.D{{Key: "vehicleId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		RepairsCollection: {
			{Keys: bson.D{{Key: "vehicleId", Value: 1}, {Key: "repairedAt", Value: -1}}},
		},
		SelfChecksCollection: {
			{Keys: bson.D{{Key: "vehicleId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		RepairStationsCollection: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "firebaseUid", Value: 1}}},
		},
		AdminsCollection: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for collection, models := range indexes {
		if _, err := database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			logger.Error("Failed to ensure indexes", zap.String("collection", collection), zap.Error(err))
			return fmt.Errorf("failed to ensure indexes on %s: %w", collection, err)
		}
	}
	logger.Info("Successfully ensured MongoDB indexes")
	return nil
}

func CloseMongo() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := MongoClient.Disconnect(ctx); err != nil {
		logger.Error("Error closing MongoDB connection", zap.Error(err))
	} else {
		logger.Info("MongoDB connection closed successfully")
	}
}
