package student

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrSemesterNotFound = errors.New("Semester record not found")
	ErrInvalidDomain    = errors.New("Invalid certificate domain")
	ErrNoImage          = errors.New("No image provided")
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetStudent(ctx context.Context, studentID string) (*Student, error) {
	st, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrNotFound
	}
	return st, nil
}

func (s *Service) GetProfile(ctx context.Context, studentID string) (*Profile, error) {
	st, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &st.Profile, nil
}

// UpdateProfile applies a partial update: only the provided fields overwrite
// existing profile fields, everything else is preserved.
func (s *Service) UpdateProfile(ctx context.Context, studentID string, fields map[string]string) (*Profile, error) {
	st, err := s.repo.UpdateProfileFields(ctx, studentID, fields)
	if err != nil {
		return nil, err
	}
	return &st.Profile, nil
}

func (s *Service) AddPersonalCertificate(ctx context.Context, studentID string, cert *PersonalCertificate) (*PersonalCertificate, error) {
	if cert.Image == "" {
		return nil, ErrNoImage
	}
	cert.ID = primitive.NewObjectID()
	cert.SubmittedAt = time.Now()
	if err := s.repo.PushPersonalCertificate(ctx, studentID, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *Service) ListPersonalCertificates(ctx context.Context, studentID string) ([]PersonalCertificate, error) {
	st, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if st.PersonalCertificates == nil {
		return []PersonalCertificate{}, nil
	}
	return st.PersonalCertificates, nil
}

func (s *Service) DeletePersonalCertificate(ctx context.Context, studentID, certID string) error {
	id, err := primitive.ObjectIDFromHex(certID)
	if err != nil {
		return ErrCertificateNotFound
	}
	return s.repo.PullPersonalCertificate(ctx, studentID, id)
}

func (s *Service) AddAcademicCertificate(ctx context.Context, studentID string, cert *AcademicCertificate) (*AcademicCertificate, error) {
	if !ValidDomain(cert.Domain) {
		return nil, ErrInvalidDomain
	}
	cert.ID = primitive.NewObjectID()
	cert.Status = StatusPending
	cert.SubmittedAt = time.Now()
	if cert.Skills == nil {
		cert.Skills = []string{}
	}
	if err := s.repo.PushAcademicCertificate(ctx, studentID, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *Service) ListAcademicCertificates(ctx context.Context, studentID string) ([]AcademicCertificate, error) {
	st, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if st.AcademicCertificates == nil {
		return []AcademicCertificate{}, nil
	}
	return st.AcademicCertificates, nil
}

func (s *Service) DeleteAcademicCertificate(ctx context.Context, studentID, certID string) error {
	id, err := primitive.ObjectIDFromHex(certID)
	if err != nil {
		return ErrCertificateNotFound
	}
	return s.repo.PullAcademicCertificate(ctx, studentID, id)
}

// ParseSkills decodes a JSON-serialized skill list. Malformed payloads
// degrade to an empty list rather than failing the submission.
func (s *Service) ParseSkills(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		s.logger.Warn("Malformed skills payload, defaulting to empty", zap.String("raw", raw))
		return []string{}
	}
	return skills
}

func (s *Service) AddProject(ctx context.Context, studentID string, project *Project) (*Project, error) {
	project.ID = primitive.NewObjectID()
	project.CreatedAt = time.Now()
	if err := s.repo.PushProject(ctx, studentID, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *Service) ListProjects(ctx context.Context, studentID string) ([]Project, error) {
	st, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if st.Projects == nil {
		return []Project{}, nil
	}
	return st.Projects, nil
}

func (s *Service) DeleteProject(ctx context.Context, studentID, projectID string) error {
	id, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return ErrProjectNotFound
	}
	return s.repo.PullProject(ctx, studentID, id)
}

// RecordSemesterMarks appends one semester's SGPA and subject breakdown. A
// record for the same semester is replaced instead of duplicated.
func (s *Service) RecordSemesterMarks(ctx context.Context, studentID string, record SemesterRecord) (*Student, error) {
	st, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, existing := range st.SemesterMarks {
		if existing.Semester == record.Semester {
			st.SemesterMarks[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		st.SemesterMarks = append(st.SemesterMarks, record)
	}

	return s.saveMarks(ctx, st)
}

// UpdateSemesterMarks edits an already-recorded semester entry.
func (s *Service) UpdateSemesterMarks(ctx context.Context, studentID string, record SemesterRecord) (*Student, error) {
	st, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	found := false
	for i, existing := range st.SemesterMarks {
		if existing.Semester == record.Semester {
			st.SemesterMarks[i] = record
			found = true
			break
		}
	}
	if !found {
		return nil, ErrSemesterNotFound
	}

	return s.saveMarks(ctx, st)
}

func (s *Service) saveMarks(ctx context.Context, st *Student) (*Student, error) {
	st.CGPA = computeCGPA(st.SemesterMarks)
	if err := s.repo.ReplaceSemesterMarks(ctx, st.StudentID, st.SemesterMarks, st.CGPA); err != nil {
		return nil, err
	}
	return st, nil
}

// computeCGPA derives the cumulative GPA as the arithmetic mean of the
// recorded semester SGPAs, rounded to two decimals.
func computeCGPA(marks []SemesterRecord) float64 {
	if len(marks) == 0 {
		return 0
	}
	var sum float64
	for _, record := range marks {
		sum += record.SGPA
	}
	return math.Round(sum/float64(len(marks))*100) / 100
}
