package student

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound            = errors.New("Student not found")
	ErrDuplicate           = errors.New("Email or roll number already registered")
	ErrCertificateNotFound = errors.New("Certificate not found")
	ErrProjectNotFound     = errors.New("Project not found")
)

// Repository is the persistence boundary for the Student aggregate. Embedded
// sub-documents are mutated with atomic per-subdocument updates ($push, $pull,
// positional $set) so concurrent writers cannot lose each other's changes.
type Repository interface {
	Create(ctx context.Context, s *Student) error
	FindByEmail(ctx context.Context, email string) (*Student, error)
	FindByStudentID(ctx context.Context, studentID string) (*Student, error)
	FindAll(ctx context.Context) ([]*Student, error)
	Search(ctx context.Context, query string) ([]*Student, error)

	UpdateProfileFields(ctx context.Context, studentID string, fields map[string]string) (*Student, error)

	PushPersonalCertificate(ctx context.Context, studentID string, cert *PersonalCertificate) error
	PullPersonalCertificate(ctx context.Context, studentID string, certID primitive.ObjectID) error
	PushAcademicCertificate(ctx context.Context, studentID string, cert *AcademicCertificate) error
	PullAcademicCertificate(ctx context.Context, studentID string, certID primitive.ObjectID) error
	SetAcademicCertificateReview(ctx context.Context, studentID string, certID primitive.ObjectID, status, feedback string, reviewedAt time.Time) error

	PushProject(ctx context.Context, studentID string, project *Project) error
	PullProject(ctx context.Context, studentID string, projectID primitive.ObjectID) error

	ReplaceSemesterMarks(ctx context.Context, studentID string, marks []SemesterRecord, cgpa float64) error
	IncrementSkills(ctx context.Context, studentID string, skills []string) error
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection("students")}
}

func (r *mongoRepository) Create(ctx context.Context, s *Student) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	_, err := r.collection.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*Student, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoRepository) FindByStudentID(ctx context.Context, studentID string) (*Student, error) {
	return r.findOne(ctx, bson.M{"student_id": studentID})
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*Student, error) {
	var s Student
	err := r.collection.FindOne(ctx, filter).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]*Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var students []*Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// Search performs a case-insensitive substring match over name, student id,
// roll number and college.
func (r *mongoRepository) Search(ctx context.Context, query string) ([]*Student, error) {
	pattern := regexp.QuoteMeta(query)
	regex := bson.M{"$regex": pattern, "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": regex},
		{"student_id": regex},
		{"roll_number": regex},
		{"college": regex},
	}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var students []*Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *mongoRepository) UpdateProfileFields(ctx context.Context, studentID string, fields map[string]string) (*Student, error) {
	set := bson.M{"updated_at": time.Now()}
	for field, value := range fields {
		set["profile."+field] = value
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var s Student
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"student_id": studentID},
		bson.M{"$set": set},
		opts,
	).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *mongoRepository) PushPersonalCertificate(ctx context.Context, studentID string, cert *PersonalCertificate) error {
	return r.push(ctx, studentID, "personal_certificates", cert)
}

func (r *mongoRepository) PullPersonalCertificate(ctx context.Context, studentID string, certID primitive.ObjectID) error {
	return r.pull(ctx, studentID, "personal_certificates", certID, ErrCertificateNotFound)
}

func (r *mongoRepository) PushAcademicCertificate(ctx context.Context, studentID string, cert *AcademicCertificate) error {
	return r.push(ctx, studentID, "academic_certificates", cert)
}

func (r *mongoRepository) PullAcademicCertificate(ctx context.Context, studentID string, certID primitive.ObjectID) error {
	return r.pull(ctx, studentID, "academic_certificates", certID, ErrCertificateNotFound)
}

func (r *mongoRepository) SetAcademicCertificateReview(ctx context.Context, studentID string, certID primitive.ObjectID, status, feedback string, reviewedAt time.Time) error {
	filter := bson.M{"student_id": studentID, "academic_certificates._id": certID}
	update := bson.M{"$set": bson.M{
		"academic_certificates.$.status":      status,
		"academic_certificates.$.feedback":    feedback,
		"academic_certificates.$.reviewed_at": reviewedAt,
		"updated_at":                          time.Now(),
	}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCertificateNotFound
	}
	return nil
}

func (r *mongoRepository) PushProject(ctx context.Context, studentID string, project *Project) error {
	return r.push(ctx, studentID, "projects", project)
}

func (r *mongoRepository) PullProject(ctx context.Context, studentID string, projectID primitive.ObjectID) error {
	return r.pull(ctx, studentID, "projects", projectID, ErrProjectNotFound)
}

func (r *mongoRepository) ReplaceSemesterMarks(ctx context.Context, studentID string, marks []SemesterRecord, cgpa float64) error {
	update := bson.M{"$set": bson.M{
		"semester_marks": marks,
		"cgpa":           cgpa,
		"updated_at":     time.Now(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"student_id": studentID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) IncrementSkills(ctx context.Context, studentID string, skills []string) error {
	if len(skills) == 0 {
		return nil
	}
	inc := bson.M{}
	for _, skill := range skills {
		inc["skills."+skill] = 1
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"student_id": studentID}, bson.M{"$inc": inc})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) push(ctx context.Context, studentID, field string, doc interface{}) error {
	update := bson.M{
		"$push": bson.M{field: doc},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"student_id": studentID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// pull removes one embedded sub-document by id. The update carries only the
// $pull so a matched parent with zero modifications means the sub-document id
// did not exist.
func (r *mongoRepository) pull(ctx context.Context, studentID, field string, id primitive.ObjectID, missing error) error {
	update := bson.M{
		"$pull": bson.M{field: bson.M{"_id": id}},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"student_id": studentID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return missing
	}
	return nil
}
