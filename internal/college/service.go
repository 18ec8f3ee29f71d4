package college

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// defaultColleges are seeded on first read so a fresh deployment has
// something to register against.
func defaultColleges() []*College {
	return []*College{
		{
			Name:      "MIT College of Engineering",
			Code:      "MITCOE",
			Address:   "Pune, India",
			CreatedBy: "SYSTEM",
			Departments: []Department{
				{Name: "Computer Science", Code: "CSE"},
				{Name: "Information Technology", Code: "IT"},
				{Name: "Mechanical Engineering", Code: "ME"},
			},
		},
		{
			Name:      "Stanford University",
			Code:      "STANFD",
			Address:   "Stanford, CA, USA",
			CreatedBy: "SYSTEM",
			Departments: []Department{
				{Name: "Computer Science", Code: "CS"},
				{Name: "Electrical Engineering", Code: "EE"},
			},
		},
	}
}

// List returns all colleges, auto-seeding the defaults when the collection is
// empty.
func (s *Service) List(ctx context.Context) ([]*Listing, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(listings) > 0 {
		return listings, nil
	}

	s.logger.Info("No colleges found, seeding defaults")
	if err := s.repo.CreateMany(ctx, defaultColleges()); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// EnsureForInstitution provisions a College document for a newly registered
// admin when none exists yet for their institution.
func (s *Service) EnsureForInstitution(ctx context.Context, institution, department, adminID string) error {
	if institution == "" || department == "" {
		return nil
	}
	existing, err := s.repo.FindByName(ctx, institution)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	c := &College{
		Name:      institution,
		Code:      DeriveCollegeCode(institution),
		Address:   "Not specified",
		CreatedBy: adminID,
		Departments: []Department{
			{Name: department, Code: DeriveDepartmentCode(department)},
		},
	}
	return s.repo.Create(ctx, c)
}

// DeriveCollegeCode takes the first six uppercased alphanumerics of the
// institution name.
func DeriveCollegeCode(institution string) string {
	return deriveCode(institution, 6)
}

// DeriveDepartmentCode takes the first four uppercased alphanumerics of the
// department name.
func DeriveDepartmentCode(department string) string {
	return deriveCode(department, 4)
}

func deriveCode(name string, max int) string {
	var code strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			code.WriteRune(unicode.ToUpper(r))
			if code.Len() >= max {
				break
			}
		}
	}
	return code.String()
}
