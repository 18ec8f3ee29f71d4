// Package studenttest provides an in-memory student.Repository for tests.
package studenttest

import (
	"context"
	"strings"
	"sync"
	"time"

	"SmartStudentHub/internal/student"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository struct {
	mu       sync.Mutex
	students map[string]*student.Student
}

var _ student.Repository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{students: make(map[string]*student.Student)}
}

// Seed inserts a student directly, bypassing uniqueness checks.
func (r *Repository) Seed(s *student.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.students[s.StudentID] = s
}

func (r *Repository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.students)
}

func (r *Repository) Create(_ context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.students {
		if existing.Email == s.Email || existing.RollNumber == s.RollNumber || existing.StudentID == s.StudentID {
			return student.ErrDuplicate
		}
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.students[s.StudentID] = s
	return nil
}

func (r *Repository) FindByEmail(_ context.Context, email string) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (r *Repository) FindByStudentID(_ context.Context, studentID string) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.students[studentID], nil
}

func (r *Repository) FindAll(_ context.Context) ([]*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*student.Student, 0, len(r.students))
	for _, s := range r.students {
		all = append(all, s)
	}
	return all, nil
}

func (r *Repository) Search(_ context.Context, query string) ([]*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*student.Student, 0)
	for _, s := range r.students {
		if containsFold(s.Name, query) ||
			containsFold(s.StudentID, query) ||
			containsFold(s.RollNumber, query) ||
			containsFold(s.College, query) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (r *Repository) UpdateProfileFields(_ context.Context, studentID string, fields map[string]string) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return nil, student.ErrNotFound
	}
	for field, value := range fields {
		applyProfileField(&s.Profile, field, value)
	}
	s.UpdatedAt = time.Now()
	return s, nil
}

func (r *Repository) PushPersonalCertificate(_ context.Context, studentID string, cert *student.PersonalCertificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return student.ErrNotFound
	}
	s.PersonalCertificates = append(s.PersonalCertificates, *cert)
	return nil
}

func (r *Repository) PullPersonalCertificate(_ context.Context, studentID string, certID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return student.ErrNotFound
	}
	kept := s.PersonalCertificates[:0:0]
	for _, c := range s.PersonalCertificates {
		if c.ID != certID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(s.PersonalCertificates) {
		return student.ErrCertificateNotFound
	}
	s.PersonalCertificates = kept
	return nil
}

func (r *Repository) PushAcademicCertificate(_ context.Context, studentID string, cert *student.AcademicCertificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return student.ErrNotFound
	}
	s.AcademicCertificates = append(s.AcademicCertificates, *cert)
	return nil
}

func (r *Repository) PullAcademicCertificate(_ context.Context, studentID string, certID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return student.ErrNotFound
	}
	kept := s.AcademicCertificates[:0:0]
	for _, c := range s.AcademicCertificates {
		if c.ID != certID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(s.AcademicCertificates) {
		return student.ErrCertificateNotFound
	}
	s.AcademicCertificates = kept
	return nil
}

func (r *Repository) SetAcademicCertificateReview(_ context.Context, studentID string, certID primitive.ObjectID, status, feedback string, reviewedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return student.ErrCertificateNotFound
	}
	for i := range s.AcademicCertificates {
		if s.AcademicCertificates[i].ID == certID {
			s.AcademicCertificates[i].Status = status
			s.AcademicCertificates[i].Feedback = feedback
			at := reviewedAt
			s.AcademicCertificates[i].ReviewedAt = &at
			return nil
		}
	}
	return student.ErrCertificateNotFound
}

func (r *Repository) PushProject(_ context.Context, studentID string, project *student.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return student.ErrNotFound
	}
	s.Projects = append(s.Projects, *project)
	return nil
}

func (r *Repository) PullProject(_ context.Context, studentID string, projectID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return student.ErrNotFound
	}
	kept := s.Projects[:0:0]
	for _, p := range s.Projects {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.Projects) {
		return student.ErrProjectNotFound
	}
	s.Projects = kept
	return nil
}

func (r *Repository) ReplaceSemesterMarks(_ context.Context, studentID string, marks []student.SemesterRecord, cgpa float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return student.ErrNotFound
	}
	s.SemesterMarks = marks
	s.CGPA = cgpa
	return nil
}

func (r *Repository) IncrementSkills(_ context.Context, studentID string, skills []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return student.ErrNotFound
	}
	if s.Skills == nil {
		s.Skills = make(map[string]int)
	}
	for _, skill := range skills {
		s.Skills[skill]++
	}
	return nil
}

func applyProfileField(p *student.Profile, field, value string) {
	switch field {
	case "profile_image":
		p.ProfileImage = value
	case "aadhar_number":
		p.AadharNumber = value
	case "mobile_number":
		p.MobileNumber = value
	case "college_email":
		p.CollegeEmail = value
	case "class10_certificate":
		p.Class10Certificate = value
	case "class12_certificate":
		p.Class12Certificate = value
	case "diploma_certificate":
		p.DiplomaCertificate = value
	case "bachelor_degree":
		p.BachelorDegree = value
	case "master_degree":
		p.MasterDegree = value
	case "doctor_degree":
		p.DoctorDegree = value
	case "linkedin_profile":
		p.LinkedinProfile = value
	case "github_profile":
		p.GithubProfile = value
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
