package student_test

import (
	"context"
	"testing"

	"SmartStudentHub/internal/student"
	"SmartStudentHub/internal/student/studenttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newService(t *testing.T) (*student.Service, *studenttest.Repository) {
	t.Helper()
	repo := studenttest.NewRepository()
	return student.NewService(repo, zap.NewNop()), repo
}

func seedStudent(repo *studenttest.Repository) *student.Student {
	s := &student.Student{
		StudentID:            "XC1a2b3c",
		Name:                 "Asha Rao",
		Email:                "a@b.com",
		College:              "X College",
		RollNumber:           "R1",
		PersonalCertificates: []student.PersonalCertificate{},
		AcademicCertificates: []student.AcademicCertificate{},
		Projects:             []student.Project{},
		Skills:               map[string]int{},
		SemesterMarks:        []student.SemesterRecord{},
	}
	repo.Seed(s)
	return s
}

func TestGetStudentNotFound(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.GetStudent(context.Background(), "NOPE")
	assert.ErrorIs(t, err, student.ErrNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, s.StudentID, map[string]string{
		"mobile_number":  "9999",
		"github_profile": "https://github.com/asha",
	})
	require.NoError(t, err)

	profile, err := svc.UpdateProfile(ctx, s.StudentID, map[string]string{
		"mobile_number": "1111",
	})
	require.NoError(t, err)
	assert.Equal(t, "1111", profile.MobileNumber)
	// Fields outside the update are untouched.
	assert.Equal(t, "https://github.com/asha", profile.GithubProfile)
}

func TestAddPersonalCertificateRequiresImage(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)

	_, err := svc.AddPersonalCertificate(context.Background(), s.StudentID, &student.PersonalCertificate{Name: "Hackathon"})
	assert.ErrorIs(t, err, student.ErrNoImage)
}

func TestPersonalCertificateLifecycle(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)
	ctx := context.Background()

	cert, err := svc.AddPersonalCertificate(ctx, s.StudentID, &student.PersonalCertificate{
		Name:     "Hackathon Winner",
		Image:    "https://cdn.example/cert.png",
		Date:     "2026-01-15",
		Category: "Competition",
		Issuer:   "ACM",
	})
	require.NoError(t, err)
	assert.False(t, cert.ID.IsZero())
	assert.False(t, cert.SubmittedAt.IsZero())

	certs, err := svc.ListPersonalCertificates(ctx, s.StudentID)
	require.NoError(t, err)
	require.Len(t, certs, 1)

	require.NoError(t, svc.DeletePersonalCertificate(ctx, s.StudentID, cert.ID.Hex()))
	certs, err = svc.ListPersonalCertificates(ctx, s.StudentID)
	require.NoError(t, err)
	assert.Empty(t, certs)
}

func TestDeletePersonalCertificateMissing(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)
	ctx := context.Background()

	cert, err := svc.AddPersonalCertificate(ctx, s.StudentID, &student.PersonalCertificate{
		Name:  "Keep",
		Image: "https://cdn.example/keep.png",
	})
	require.NoError(t, err)

	err = svc.DeletePersonalCertificate(ctx, s.StudentID, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, student.ErrCertificateNotFound)

	// Missing id deletes nothing.
	certs, err := svc.ListPersonalCertificates(ctx, s.StudentID)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, cert.ID, certs[0].ID)

	err = svc.DeletePersonalCertificate(ctx, s.StudentID, "not-a-hex-id")
	assert.ErrorIs(t, err, student.ErrCertificateNotFound)
}

func TestAddAcademicCertificate(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)
	ctx := context.Background()

	cert, err := svc.AddAcademicCertificate(ctx, s.StudentID, &student.AcademicCertificate{
		Domain:          "skill",
		CertificateName: "Go Fundamentals",
		IssuedBy:        "Coursera",
		Date:            "2026-01-15",
		Skills:          []string{"Go", "Concurrency"},
	})
	require.NoError(t, err)
	assert.Equal(t, student.StatusPending, cert.Status)
	assert.False(t, cert.SubmittedAt.IsZero())
	assert.Nil(t, cert.ReviewedAt)
}

func TestAddAcademicCertificateInvalidDomain(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)

	_, err := svc.AddAcademicCertificate(context.Background(), s.StudentID, &student.AcademicCertificate{
		CertificateName: "Mystery",
		Domain:          "astrology",
	})
	assert.ErrorIs(t, err, student.ErrInvalidDomain)
}

func TestParseSkills(t *testing.T) {
	svc, _ := newService(t)

	assert.Equal(t, []string{"Go", "SQL"}, svc.ParseSkills(`["Go","SQL"]`))
	assert.Empty(t, svc.ParseSkills(""))
	assert.Empty(t, svc.ParseSkills(`{"not":"a list"}`))
}

func TestProjectLifecycle(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)
	ctx := context.Background()

	project, err := svc.AddProject(ctx, s.StudentID, &student.Project{
		Title:       "Seat Planner",
		Description: "Exam hall allocation tool",
		GithubLink:  "https://github.com/asha/seat-planner",
	})
	require.NoError(t, err)
	assert.False(t, project.ID.IsZero())

	projects, err := svc.ListProjects(ctx, s.StudentID)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	err = svc.DeleteProject(ctx, s.StudentID, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, student.ErrProjectNotFound)

	require.NoError(t, svc.DeleteProject(ctx, s.StudentID, project.ID.Hex()))
	projects, err = svc.ListProjects(ctx, s.StudentID)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestRecordSemesterMarksComputesCGPA(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)
	ctx := context.Background()

	_, err := svc.RecordSemesterMarks(ctx, s.StudentID, student.SemesterRecord{Semester: 1, Year: 2025, SGPA: 8.0})
	require.NoError(t, err)
	updated, err := svc.RecordSemesterMarks(ctx, s.StudentID, student.SemesterRecord{Semester: 2, Year: 2025, SGPA: 9.0})
	require.NoError(t, err)

	assert.Len(t, updated.SemesterMarks, 2)
	assert.Equal(t, 8.5, updated.CGPA)
}

func TestRecordSemesterMarksReplacesSameSemester(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)
	ctx := context.Background()

	_, err := svc.RecordSemesterMarks(ctx, s.StudentID, student.SemesterRecord{Semester: 1, Year: 2025, SGPA: 6.0})
	require.NoError(t, err)
	updated, err := svc.RecordSemesterMarks(ctx, s.StudentID, student.SemesterRecord{Semester: 1, Year: 2025, SGPA: 7.5})
	require.NoError(t, err)

	require.Len(t, updated.SemesterMarks, 1)
	assert.Equal(t, 7.5, updated.SemesterMarks[0].SGPA)
	assert.Equal(t, 7.5, updated.CGPA)
}

func TestUpdateSemesterMarksMissingSemester(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)

	_, err := svc.UpdateSemesterMarks(context.Background(), s.StudentID, student.SemesterRecord{Semester: 4, Year: 2026, SGPA: 9.1})
	assert.ErrorIs(t, err, student.ErrSemesterNotFound)
}

func TestCGPARounding(t *testing.T) {
	svc, repo := newService(t)
	s := seedStudent(repo)
	ctx := context.Background()

	_, err := svc.RecordSemesterMarks(ctx, s.StudentID, student.SemesterRecord{Semester: 1, Year: 2024, SGPA: 7.0})
	require.NoError(t, err)
	_, err = svc.RecordSemesterMarks(ctx, s.StudentID, student.SemesterRecord{Semester: 2, Year: 2024, SGPA: 8.0})
	require.NoError(t, err)
	updated, err := svc.RecordSemesterMarks(ctx, s.StudentID, student.SemesterRecord{Semester: 3, Year: 2025, SGPA: 8.0})
	require.NoError(t, err)

	// (7+8+8)/3 = 7.666... rounds to 7.67.
	assert.Equal(t, 7.67, updated.CGPA)
}
