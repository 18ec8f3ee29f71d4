package review

import (
	"context"
	"time"

	"SmartStudentHub/internal/student"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Service drives the three-state approval flow over embedded academic
// certificates: pending -> approved | rejected. Re-reviewing an already
// terminal certificate is allowed; the transition simply overwrites the
// previous outcome.
type Service struct {
	students student.Repository
	logger   *zap.Logger
}

func NewService(students student.Repository, logger *zap.Logger) *Service {
	return &Service{students: students, logger: logger}
}

// ListPending flattens every pending academic certificate across all
// students. Full scan, no pagination; fine at this scale.
func (s *Service) ListPending(ctx context.Context) ([]PendingCertificate, error) {
	students, err := s.students.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]PendingCertificate, 0)
	for _, st := range students {
		for _, cert := range st.AcademicCertificates {
			if cert.Status != student.StatusPending {
				continue
			}
			skills := cert.Skills
			if skills == nil {
				skills = []string{}
			}
			items = append(items, PendingCertificate{
				StudentID:        st.StudentID,
				StudentName:      st.Name,
				CertificateID:    cert.ID.Hex(),
				Domain:           cert.Domain,
				CertificateName:  cert.CertificateName,
				Image:            cert.Image,
				CertificateURL:   cert.CertificateURL,
				Date:             cert.Date,
				IssuedBy:         cert.IssuedBy,
				Description:      cert.Description,
				Skills:           skills,
				Duration:         cert.Duration,
				Location:         cert.Location,
				OrganizationType: cert.OrganizationType,
				SubmittedAt:      cert.SubmittedAt,
			})
		}
	}
	return items, nil
}

func (s *Service) Approve(ctx context.Context, studentID, certID, feedback string) error {
	cert, err := s.transition(ctx, studentID, certID, student.StatusApproved, feedback)
	if err != nil {
		return err
	}

	// Approval feeds the student's skills occurrence map.
	if len(cert.Skills) > 0 {
		if err := s.students.IncrementSkills(ctx, studentID, cert.Skills); err != nil {
			s.logger.Error("Failed to tally certificate skills",
				zap.String("studentId", studentID), zap.Error(err))
		}
	}
	return nil
}

func (s *Service) Reject(ctx context.Context, studentID, certID, feedback string) error {
	_, err := s.transition(ctx, studentID, certID, student.StatusRejected, feedback)
	return err
}

func (s *Service) transition(ctx context.Context, studentID, certID, status, feedback string) (*student.AcademicCertificate, error) {
	st, err := s.students.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, student.ErrNotFound
	}

	id, err := primitive.ObjectIDFromHex(certID)
	if err != nil {
		return nil, student.ErrCertificateNotFound
	}

	var cert *student.AcademicCertificate
	for i := range st.AcademicCertificates {
		if st.AcademicCertificates[i].ID == id {
			cert = &st.AcademicCertificates[i]
			break
		}
	}
	if cert == nil {
		return nil, student.ErrCertificateNotFound
	}

	if err := s.students.SetAcademicCertificateReview(ctx, studentID, id, status, feedback, time.Now()); err != nil {
		return nil, err
	}
	return cert, nil
}
