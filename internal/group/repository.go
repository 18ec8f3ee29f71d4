package group

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrGroupNotFound     = errors.New("Group not found")
	ErrMessageNotFound   = errors.New("Message not found")
	ErrRecipientNotFound = errors.New("Recipient not found")
)

type GroupRepository interface {
	Create(ctx context.Context, g *Group) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Group, error)
	FindByTeacher(ctx context.Context, teacherID string) ([]*Group, error)
	FindByCreator(ctx context.Context, adminID string) ([]*Group, error)
	Update(ctx context.Context, id primitive.ObjectID, g *Group) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	FindByRecipient(ctx context.Context, studentID string) ([]*Message, error)
	MarkRead(ctx context.Context, messageID primitive.ObjectID, studentID string, at time.Time) error
	CountUnread(ctx context.Context, studentID string) (int64, error)
}

type mongoGroupRepository struct {
	collection *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) GroupRepository {
	return &mongoGroupRepository{collection: db.Collection("groups")}
}

func (r *mongoGroupRepository) Create(ctx context.Context, g *Group) error {
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	_, err := r.collection.InsertOne(ctx, g)
	return err
}

func (r *mongoGroupRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Group, error) {
	var g Group
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *mongoGroupRepository) FindByTeacher(ctx context.Context, teacherID string) ([]*Group, error) {
	return r.find(ctx, bson.M{"teacher": teacherID})
}

func (r *mongoGroupRepository) FindByCreator(ctx context.Context, adminID string) ([]*Group, error) {
	return r.find(ctx, bson.M{"created_by": adminID})
}

func (r *mongoGroupRepository) find(ctx context.Context, filter bson.M) ([]*Group, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	groups := make([]*Group, 0)
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *mongoGroupRepository) Update(ctx context.Context, id primitive.ObjectID, g *Group) error {
	update := bson.M{"$set": bson.M{
		"name":       g.Name,
		"college":    g.College,
		"department": g.Department,
		"teacher":    g.Teacher,
		"students":   g.Students,
		"updated_at": time.Now(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrGroupNotFound
	}
	return nil
}

type mongoMessageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &mongoMessageRepository{collection: db.Collection("messages")}
}

func (r *mongoMessageRepository) Create(ctx context.Context, m *Message) error {
	m.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, m)
	return err
}

func (r *mongoMessageRepository) FindByRecipient(ctx context.Context, studentID string) ([]*Message, error) {
	filter := bson.M{"recipients.student_id": studentID}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	messages := make([]*Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead flips a single recipient's read flag; other recipients of the same
// message are untouched.
func (r *mongoMessageRepository) MarkRead(ctx context.Context, messageID primitive.ObjectID, studentID string, at time.Time) error {
	filter := bson.M{"_id": messageID, "recipients.student_id": studentID}
	update := bson.M{"$set": bson.M{
		"recipients.$.is_read": true,
		"recipients.$.read_at": at,
	}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecipientNotFound
	}
	return nil
}

func (r *mongoMessageRepository) CountUnread(ctx context.Context, studentID string) (int64, error) {
	filter := bson.M{"recipients": bson.M{"$elemMatch": bson.M{
		"student_id": studentID,
		"is_read":    false,
	}}}
	return r.collection.CountDocuments(ctx, filter)
}
