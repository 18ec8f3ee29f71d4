package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Teacher struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TeacherID   string             `bson:"teacher_id" json:"teacherId"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	PhoneNumber string             `bson:"phone_number" json:"phoneNumber"`
	Department  string             `bson:"department" json:"department"`
	College     string             `bson:"college" json:"college"`
	Designation string             `bson:"designation" json:"designation"`
	Experience  int                `bson:"experience" json:"experience"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

type Admin struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	AdminID     string             `bson:"admin_id" json:"adminId"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Role        string             `bson:"role" json:"role"`
	Institution string             `bson:"institution" json:"institution"`
	Department  string             `bson:"department" json:"department"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

type StudentRegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	College    string `json:"college" validate:"required"`
	Department string `json:"department" validate:"required"`
	Year       int    `json:"year" validate:"required"`
	Semester   int    `json:"semester" validate:"required"`
	RollNumber string `json:"rollNumber" validate:"required"`
}

type TeacherRegisterRequest struct {
	Name            string      `json:"name" validate:"required"`
	Email           string      `json:"email" validate:"required,email"`
	Password        string      `json:"password" validate:"required,min=6"`
	ConfirmPassword string      `json:"confirmPassword"`
	PhoneNumber     string      `json:"phoneNumber" validate:"required"`
	Department      string      `json:"department" validate:"required"`
	College         string      `json:"college" validate:"required"`
	Designation     string      `json:"designation"`
	Experience      interface{} `json:"experience"`
}

type AdminRegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	Institution     string `json:"institution" validate:"required"`
	Department      string `json:"department" validate:"required"`
}

type Credential struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
