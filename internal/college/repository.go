package college

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDuplicate = errors.New("College name or code already exists")

type Repository interface {
	List(ctx context.Context) ([]*Listing, error)
	FindByName(ctx context.Context, name string) (*College, error)
	Create(ctx context.Context, c *College) error
	CreateMany(ctx context.Context, colleges []*College) error
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection("colleges")}
}

func (r *mongoRepository) List(ctx context.Context) ([]*Listing, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1, "departments": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var listings []*Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *mongoRepository) FindByName(ctx context.Context, name string) (*College, error) {
	var c College
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoRepository) Create(ctx context.Context, c *College) error {
	c.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *mongoRepository) CreateMany(ctx context.Context, colleges []*College) error {
	docs := make([]interface{}, 0, len(colleges))
	for _, c := range colleges {
		c.CreatedAt = time.Now()
		docs = append(docs, c)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
