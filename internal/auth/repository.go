package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrEmailTaken = errors.New("Email already registered")

type TeacherRepository interface {
	Create(ctx context.Context, teacher *Teacher) error
	FindByEmail(ctx context.Context, email string) (*Teacher, error)
	FindAll(ctx context.Context) ([]*Teacher, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}

type mongoTeacherRepository struct {
	collection *mongo.Collection
}

func NewTeacherRepository(db *mongo.Database) TeacherRepository {
	return &mongoTeacherRepository{collection: db.Collection("teachers")}
}

func (r *mongoTeacherRepository) Create(ctx context.Context, teacher *Teacher) error {
	teacher.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, teacher)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *mongoTeacherRepository) FindByEmail(ctx context.Context, email string) (*Teacher, error) {
	var teacher Teacher
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&teacher)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &teacher, nil
}

func (r *mongoTeacherRepository) FindAll(ctx context.Context) ([]*Teacher, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var teachers []*Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

type mongoAdminRepository struct {
	collection *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &mongoAdminRepository{collection: db.Collection("admins")}
}

func (r *mongoAdminRepository) Create(ctx context.Context, admin *Admin) error {
	admin.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *mongoAdminRepository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
