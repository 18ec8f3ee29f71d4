package directory

import (
	"context"
	"testing"

	"SmartStudentHub/internal/auth"
	"SmartStudentHub/internal/student"
	"SmartStudentHub/internal/student/studenttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTeacherRepo struct {
	teachers []*auth.Teacher
}

func (r *memTeacherRepo) Create(_ context.Context, teacher *auth.Teacher) error {
	r.teachers = append(r.teachers, teacher)
	return nil
}

func (r *memTeacherRepo) FindByEmail(_ context.Context, email string) (*auth.Teacher, error) {
	for _, teacher := range r.teachers {
		if teacher.Email == email {
			return teacher, nil
		}
	}
	return nil, nil
}

func (r *memTeacherRepo) FindAll(_ context.Context) ([]*auth.Teacher, error) {
	return r.teachers, nil
}

func seedDirectory(students *studenttest.Repository) {
	students.Seed(&student.Student{
		StudentID:  "XC1a2b3c",
		Name:       "Asha Rao",
		Email:      "a@b.com",
		College:    "X College",
		RollNumber: "R1",
		CGPA:       8.5,
	})
	students.Seed(&student.Student{
		StudentID:  "MC9z8y7x",
		Name:       "Ravi Kumar",
		Email:      "r@m.com",
		College:    "MIT College of Engineering",
		RollNumber: "R2",
	})
}

func TestSearch(t *testing.T) {
	students := studenttest.NewRepository()
	seedDirectory(students)
	svc := NewService(students, &memTeacherRepo{})
	ctx := context.Background()

	t.Run("by name case-insensitive", func(t *testing.T) {
		results, err := svc.Search(ctx, "asha")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "XC1a2b3c", results[0].StudentID)
		assert.Equal(t, 8.5, results[0].CGPA)
	})

	t.Run("by roll number", func(t *testing.T) {
		results, err := svc.Search(ctx, "R2")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Ravi Kumar", results[0].Name)
	})

	t.Run("by college substring", func(t *testing.T) {
		results, err := svc.Search(ctx, "mit college")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("no match is empty not error", func(t *testing.T) {
		results, err := svc.Search(ctx, "zzz-no-such")
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("blank query short-circuits", func(t *testing.T) {
		results, err := svc.Search(ctx, "   ")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestListStudents(t *testing.T) {
	students := studenttest.NewRepository()
	seedDirectory(students)
	svc := NewService(students, &memTeacherRepo{})

	summaries, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
}

func TestListTeachers(t *testing.T) {
	students := studenttest.NewRepository()
	teachers := &memTeacherRepo{}
	svc := NewService(students, teachers)
	ctx := context.Background()

	list, err := svc.ListTeachers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	require.NoError(t, teachers.Create(ctx, &auth.Teacher{TeacherID: "TXCabc123", Name: "Prof X"}))
	list, err = svc.ListTeachers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
