package group

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is an admin-managed roster. Teacher and student references are plain
// identifier strings; no referential integrity is enforced.
type Group struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	College    string             `bson:"college" json:"college"`
	Department string             `bson:"department" json:"department"`
	Teacher    string             `bson:"teacher" json:"teacher"`
	Students   []string           `bson:"students" json:"students"`
	CreatedBy  string             `bson:"created_by" json:"createdBy"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Recipient struct {
	StudentID   string     `bson:"student_id" json:"studentId"`
	StudentName string     `bson:"student_name" json:"studentName"`
	IsRead      bool       `bson:"is_read" json:"isRead"`
	ReadAt      *time.Time `bson:"read_at,omitempty" json:"readAt,omitempty"`
}

// Message is a one-to-many broadcast. The recipients list and group name are
// a snapshot taken at send time; later roster changes do not affect it.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SenderID   string             `bson:"sender_id" json:"senderId"`
	SenderName string             `bson:"sender_name" json:"senderName"`
	SenderType string             `bson:"sender_type" json:"senderType"`
	Recipients []Recipient        `bson:"recipients" json:"recipients"`
	Subject    string             `bson:"subject" json:"subject"`
	Message    string             `bson:"message" json:"message"`
	GroupID    string             `bson:"group_id" json:"groupId"`
	GroupName  string             `bson:"group_name" json:"groupName"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
