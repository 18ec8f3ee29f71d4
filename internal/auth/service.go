package auth

import (
	"context"
	"errors"
	"strconv"

	"SmartStudentHub/internal/college"
	"SmartStudentHub/internal/student"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
)

// Service registers and authenticates the three principal kinds. Login
// failures are reported uniformly whether the account is absent or the hash
// comparison fails.
type Service struct {
	students   student.Repository
	teachers   TeacherRepository
	admins     AdminRepository
	collegeSvc *college.Service
	logger     *zap.Logger
}

func NewService(students student.Repository, teachers TeacherRepository, admins AdminRepository, collegeSvc *college.Service, logger *zap.Logger) *Service {
	return &Service{
		students:   students,
		teachers:   teachers,
		admins:     admins,
		collegeSvc: collegeSvc,
		logger:     logger,
	}
}

func (s *Service) RegisterStudent(ctx context.Context, req StudentRegisterRequest) (*student.Student, error) {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	st := &student.Student{
		StudentID:            GenerateStudentID(req.College),
		Name:                 req.Name,
		Email:                req.Email,
		Password:             hashed,
		College:              req.College,
		Department:           req.Department,
		Year:                 req.Year,
		Semester:             req.Semester,
		RollNumber:           req.RollNumber,
		PersonalCertificates: []student.PersonalCertificate{},
		AcademicCertificates: []student.AcademicCertificate{},
		Projects:             []student.Project{},
		Skills:               map[string]int{},
		SemesterMarks:        []student.SemesterRecord{},
	}
	if err := s.students.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) LoginStudent(ctx context.Context, cred Credential) (*student.Student, error) {
	st, err := s.students.FindByEmail(ctx, cred.Email)
	if err != nil {
		return nil, err
	}
	if st == nil || !CheckPasswordHash(cred.Password, st.Password) {
		return nil, ErrInvalidCredentials
	}
	return st, nil
}

func (s *Service) RegisterTeacher(ctx context.Context, req TeacherRegisterRequest) (*Teacher, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	designation := req.Designation
	if designation == "" {
		designation = "Assistant Professor"
	}

	teacher := &Teacher{
		TeacherID:   GenerateTeacherID(req.College),
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		College:     req.College,
		Designation: designation,
		Experience:  parseExperience(req.Experience),
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *Service) LoginTeacher(ctx context.Context, cred Credential) (*Teacher, error) {
	teacher, err := s.teachers.FindByEmail(ctx, cred.Email)
	if err != nil {
		return nil, err
	}
	if teacher == nil || !CheckPasswordHash(cred.Password, teacher.Password) {
		return nil, ErrInvalidCredentials
	}
	return teacher, nil
}

func (s *Service) RegisterAdmin(ctx context.Context, req AdminRegisterRequest) (*Admin, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "Super Admin"
	}

	admin := &Admin{
		AdminID:     GenerateAdminID(),
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		Role:        role,
		Institution: req.Institution,
		Department:  req.Department,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	// College provisioning is best-effort: the admin registration already
	// succeeded.
	if err := s.collegeSvc.EnsureForInstitution(ctx, admin.Institution, admin.Department, admin.AdminID); err != nil {
		s.logger.Error("Failed to auto-provision college",
			zap.String("institution", admin.Institution), zap.Error(err))
	}

	return admin, nil
}

func (s *Service) LoginAdmin(ctx context.Context, cred Credential) (*Admin, error) {
	admin, err := s.admins.FindByEmail(ctx, cred.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !CheckPasswordHash(cred.Password, admin.Password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// parseExperience tolerates a number or a numeric string, defaulting to 0.
func parseExperience(v interface{}) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
