package auth

import (
	"context"
	"testing"

	"SmartStudentHub/internal/college"
	"SmartStudentHub/internal/student"
	"SmartStudentHub/internal/student/studenttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memTeacherRepo struct {
	teachers []*Teacher
}

func (r *memTeacherRepo) Create(_ context.Context, teacher *Teacher) error {
	for _, existing := range r.teachers {
		if existing.Email == teacher.Email {
			return ErrEmailTaken
		}
	}
	r.teachers = append(r.teachers, teacher)
	return nil
}

func (r *memTeacherRepo) FindByEmail(_ context.Context, email string) (*Teacher, error) {
	for _, teacher := range r.teachers {
		if teacher.Email == email {
			return teacher, nil
		}
	}
	return nil, nil
}

func (r *memTeacherRepo) FindAll(_ context.Context) ([]*Teacher, error) {
	return r.teachers, nil
}

type memAdminRepo struct {
	admins []*Admin
}

func (r *memAdminRepo) Create(_ context.Context, admin *Admin) error {
	for _, existing := range r.admins {
		if existing.Email == admin.Email {
			return ErrEmailTaken
		}
	}
	r.admins = append(r.admins, admin)
	return nil
}

func (r *memAdminRepo) FindByEmail(_ context.Context, email string) (*Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, nil
}

type memCollegeRepo struct {
	colleges []*college.College
}

func (r *memCollegeRepo) List(_ context.Context) ([]*college.Listing, error) {
	listings := make([]*college.Listing, 0, len(r.colleges))
	for _, c := range r.colleges {
		listings = append(listings, &college.Listing{ID: c.ID, Name: c.Name, Departments: c.Departments})
	}
	return listings, nil
}

func (r *memCollegeRepo) FindByName(_ context.Context, name string) (*college.College, error) {
	for _, c := range r.colleges {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCollegeRepo) Create(_ context.Context, c *college.College) error {
	r.colleges = append(r.colleges, c)
	return nil
}

func (r *memCollegeRepo) CreateMany(_ context.Context, colleges []*college.College) error {
	r.colleges = append(r.colleges, colleges...)
	return nil
}

func setup(t *testing.T) (*Service, *studenttest.Repository, *memTeacherRepo, *memAdminRepo, *memCollegeRepo) {
	t.Helper()
	students := studenttest.NewRepository()
	teachers := &memTeacherRepo{}
	admins := &memAdminRepo{}
	colleges := &memCollegeRepo{}
	logger := zap.NewNop()
	collegeSvc := college.NewService(colleges, logger)
	svc := NewService(students, teachers, admins, collegeSvc, logger)
	return svc, students, teachers, admins, colleges
}

func studentReq() StudentRegisterRequest {
	return StudentRegisterRequest{
		Name:       "Asha Rao",
		Email:      "a@b.com",
		Password:   "secret1",
		College:    "X College",
		Department: "Computer Science",
		Year:       3,
		Semester:   5,
		RollNumber: "R1",
	}
}

func TestRegisterStudent(t *testing.T) {
	svc, students, _, _, _ := setup(t)
	ctx := context.Background()

	st, err := svc.RegisterStudent(ctx, studentReq())
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z]+[A-Za-z0-9]{6}$`, st.StudentID)
	assert.NotEqual(t, "secret1", st.Password)
	assert.NotNil(t, st.Skills)
	assert.Equal(t, 1, students.Count())
}

func TestRegisterStudentDuplicate(t *testing.T) {
	svc, students, _, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, studentReq())
	require.NoError(t, err)

	_, err = svc.RegisterStudent(ctx, studentReq())
	assert.ErrorIs(t, err, student.ErrDuplicate)
	assert.Equal(t, 1, students.Count())
}

func TestStudentIDStableAcrossReads(t *testing.T) {
	svc, students, _, _, _ := setup(t)
	ctx := context.Background()

	st, err := svc.RegisterStudent(ctx, studentReq())
	require.NoError(t, err)

	first, err := students.FindByStudentID(ctx, st.StudentID)
	require.NoError(t, err)
	second, err := students.FindByStudentID(ctx, st.StudentID)
	require.NoError(t, err)
	assert.Equal(t, first.StudentID, second.StudentID)
}

func TestLoginStudent(t *testing.T) {
	svc, _, _, _, _ := setup(t)
	ctx := context.Background()

	registered, err := svc.RegisterStudent(ctx, studentReq())
	require.NoError(t, err)

	st, err := svc.LoginStudent(ctx, Credential{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.StudentID, st.StudentID)
}

func TestLoginUniformFailure(t *testing.T) {
	svc, _, _, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, studentReq())
	require.NoError(t, err)

	// Unknown account and wrong password must be indistinguishable.
	_, errUnknown := svc.LoginStudent(ctx, Credential{Email: "nobody@b.com", Password: "secret1"})
	_, errWrongPwd := svc.LoginStudent(ctx, Credential{Email: "a@b.com", Password: "nope"})
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPwd, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPwd.Error())
}

func TestRegisterTeacherPasswordMismatch(t *testing.T) {
	svc, _, teachers, _, _ := setup(t)
	ctx := context.Background()

	req := TeacherRegisterRequest{
		Name:            "Prof X",
		Email:           "p@x.edu",
		Password:        "secret1",
		ConfirmPassword: "different",
		PhoneNumber:     "12345",
		Department:      "CSE",
		College:         "X College",
	}
	_, err := svc.RegisterTeacher(ctx, req)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Empty(t, teachers.teachers)

	// A corrected retry succeeds: the failed call persisted nothing.
	req.ConfirmPassword = "secret1"
	teacher, err := svc.RegisterTeacher(ctx, req)
	require.NoError(t, err)
	assert.Regexp(t, `^TXC[A-Za-z0-9]{6}$`, teacher.TeacherID)
	assert.Equal(t, "Assistant Professor", teacher.Designation)
	assert.Equal(t, 0, teacher.Experience)
}

func TestRegisterTeacherExperienceCoercion(t *testing.T) {
	svc, _, _, _, _ := setup(t)
	ctx := context.Background()

	req := TeacherRegisterRequest{
		Name:            "Prof Y",
		Email:           "y@x.edu",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		PhoneNumber:     "12345",
		Department:      "CSE",
		College:         "X College",
		Designation:     "Professor",
		Experience:      "7",
	}
	teacher, err := svc.RegisterTeacher(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 7, teacher.Experience)
	assert.Equal(t, "Professor", teacher.Designation)
}

func TestRegisterAdminProvisionsCollege(t *testing.T) {
	svc, _, _, admins, colleges := setup(t)
	ctx := context.Background()

	req := AdminRegisterRequest{
		Name:            "Root",
		Email:           "root@y.edu",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Institution:     "Y Institute of Tech",
		Department:      "Information Technology",
	}
	admin, err := svc.RegisterAdmin(ctx, req)
	require.NoError(t, err)
	assert.Regexp(t, `^ADM[A-Za-z0-9]{8}$`, admin.AdminID)
	assert.Equal(t, "Super Admin", admin.Role)
	assert.Len(t, admins.admins, 1)

	require.Len(t, colleges.colleges, 1)
	c := colleges.colleges[0]
	assert.Equal(t, "Y Institute of Tech", c.Name)
	assert.Equal(t, "YINSTI", c.Code)
	assert.Equal(t, "Not specified", c.Address)
	assert.Equal(t, admin.AdminID, c.CreatedBy)
	require.Len(t, c.Departments, 1)
	assert.Equal(t, "INFO", c.Departments[0].Code)
}

func TestRegisterAdminExistingCollegeUntouched(t *testing.T) {
	svc, _, _, _, colleges := setup(t)
	ctx := context.Background()

	colleges.colleges = append(colleges.colleges, &college.College{Name: "Y Institute of Tech", Code: "YIT", CreatedBy: "SYSTEM"})

	req := AdminRegisterRequest{
		Name:            "Root",
		Email:           "root@y.edu",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Institution:     "Y Institute of Tech",
		Department:      "IT",
	}
	_, err := svc.RegisterAdmin(ctx, req)
	require.NoError(t, err)
	assert.Len(t, colleges.colleges, 1)
	assert.Equal(t, "YIT", colleges.colleges[0].Code)
}

func TestAdminPasswordMismatchPersistsNothing(t *testing.T) {
	svc, _, _, admins, colleges := setup(t)
	ctx := context.Background()

	req := AdminRegisterRequest{
		Name:            "Root",
		Email:           "root@y.edu",
		Password:        "secret1",
		ConfirmPassword: "secret2",
		Institution:     "Y Institute of Tech",
		Department:      "IT",
	}
	_, err := svc.RegisterAdmin(ctx, req)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Empty(t, admins.admins)
	assert.Empty(t, colleges.colleges)
}
