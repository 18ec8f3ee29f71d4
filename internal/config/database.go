package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type MongoDBConfig struct {
	URI      string
	Database string
}

func NewMongoDBConfig() *MongoDBConfig {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("DB uri not set")
	}
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "smart_student_hub"
	}
	return &MongoDBConfig{URI: uri, Database: name}
}

type MongoDBClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBClient(lc fx.Lifecycle, config *MongoDBConfig, logger *zap.Logger) (*MongoDBClient, *mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(config.URI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	logger.Info("Connected to MongoDB", zap.String("database", config.Database))

	db := client.Database(config.Database)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			return EnsureIndexes(startCtx, db)
		},
		OnStop: func(stopCtx context.Context) error {
			logger.Info("Closing MongoDB connection ...")
			return client.Disconnect(stopCtx)
		},
	})

	return &MongoDBClient{Client: client, Database: db}, db, nil
}

// EnsureIndexes creates the unique indexes the registration endpoints rely on:
// duplicate inserts surface as mongo duplicate-key errors instead of a second
// principal document.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	unique := func(collection string, keys ...string) error {
		models := make([]mongo.IndexModel, 0, len(keys))
		for _, key := range keys {
			models = append(models, mongo.IndexModel{
				Keys:    bson.M{key: 1},
				Options: options.Index().SetUnique(true),
			})
		}
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		return err
	}

	if err := unique("students", "email", "student_id", "roll_number"); err != nil {
		return err
	}
	if err := unique("teachers", "email", "teacher_id"); err != nil {
		return err
	}
	if err := unique("admins", "email", "admin_id"); err != nil {
		return err
	}
	return unique("colleges", "name", "code")
}
