package directory

import (
	"context"
	"strings"

	"SmartStudentHub/internal/auth"
	"SmartStudentHub/internal/student"
)

// Service backs the unauthenticated landing-page search and the admin
// listing endpoints.
type Service struct {
	students student.Repository
	teachers auth.TeacherRepository
}

func NewService(students student.Repository, teachers auth.TeacherRepository) *Service {
	return &Service{students: students, teachers: teachers}
}

// Search matches name, student id, roll number and college,
// case-insensitively. An empty result is a valid answer, not an error.
func (s *Service) Search(ctx context.Context, query string) ([]student.Summary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []student.Summary{}, nil
	}

	matches, err := s.students.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return summarize(matches), nil
}

func (s *Service) ListStudents(ctx context.Context) ([]student.Summary, error) {
	all, err := s.students.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(all), nil
}

func (s *Service) ListTeachers(ctx context.Context) ([]*auth.Teacher, error) {
	teachers, err := s.teachers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if teachers == nil {
		teachers = []*auth.Teacher{}
	}
	return teachers, nil
}

func summarize(students []*student.Student) []student.Summary {
	summaries := make([]student.Summary, 0, len(students))
	for _, st := range students {
		summaries = append(summaries, student.Summary{
			StudentID:  st.StudentID,
			Name:       st.Name,
			Email:      st.Email,
			College:    st.College,
			Department: st.Department,
			Year:       st.Year,
			Semester:   st.Semester,
			RollNumber: st.RollNumber,
			CGPA:       st.CGPA,
			Profile:    st.Profile,
		})
	}
	return summaries
}
