package college

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Department struct {
	Name string `bson:"name" json:"name"`
	Code string `bson:"code" json:"code"`
}

type College struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Code        string             `bson:"code" json:"code"`
	Address     string             `bson:"address" json:"address"`
	Departments []Department       `bson:"departments" json:"departments"`
	CreatedBy   string             `bson:"created_by" json:"createdBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// Listing is the projection returned by the public colleges endpoint.
type Listing struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Departments []Department       `bson:"departments" json:"departments"`
}
