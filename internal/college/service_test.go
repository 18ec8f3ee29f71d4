package college

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memRepo struct {
	colleges []*College
}

func (r *memRepo) List(_ context.Context) ([]*Listing, error) {
	listings := make([]*Listing, 0, len(r.colleges))
	for _, c := range r.colleges {
		listings = append(listings, &Listing{ID: c.ID, Name: c.Name, Departments: c.Departments})
	}
	return listings, nil
}

func (r *memRepo) FindByName(_ context.Context, name string) (*College, error) {
	for _, c := range r.colleges {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memRepo) Create(_ context.Context, c *College) error {
	r.colleges = append(r.colleges, c)
	return nil
}

func (r *memRepo) CreateMany(_ context.Context, colleges []*College) error {
	r.colleges = append(r.colleges, colleges...)
	return nil
}

func TestListSeedsDefaultsWhenEmpty(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, zap.NewNop())

	listings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "MIT College of Engineering", listings[0].Name)
	assert.Equal(t, "Stanford University", listings[1].Name)
	assert.NotEmpty(t, listings[0].Departments)

	for _, c := range repo.colleges {
		assert.Equal(t, "SYSTEM", c.CreatedBy)
	}
}

func TestListDoesNotReseed(t *testing.T) {
	repo := &memRepo{colleges: []*College{{Name: "Existing", Code: "EXIST"}}}
	svc := NewService(repo, zap.NewNop())

	listings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Existing", listings[0].Name)
}

func TestEnsureForInstitution(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.EnsureForInstitution(ctx, "Y Institute of Tech", "Information Technology", "ADMabcd1234"))
	require.Len(t, repo.colleges, 1)

	c := repo.colleges[0]
	assert.Equal(t, "YINSTI", c.Code)
	assert.Equal(t, "Not specified", c.Address)
	assert.Equal(t, "ADMabcd1234", c.CreatedBy)
	require.Len(t, c.Departments, 1)
	assert.Equal(t, "Information Technology", c.Departments[0].Name)
	assert.Equal(t, "INFO", c.Departments[0].Code)

	// Idempotent for an institution that already exists.
	require.NoError(t, svc.EnsureForInstitution(ctx, "Y Institute of Tech", "Computer Science", "ADMother999"))
	assert.Len(t, repo.colleges, 1)
}

func TestEnsureForInstitutionSkipsBlank(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.EnsureForInstitution(ctx, "", "CSE", "ADM1"))
	require.NoError(t, svc.EnsureForInstitution(ctx, "Y Institute", "", "ADM1"))
	assert.Empty(t, repo.colleges)
}

func TestDeriveCodes(t *testing.T) {
	assert.Equal(t, "MITCOL", DeriveCollegeCode("MIT College of Engineering"))
	assert.Equal(t, "XCOLLE", DeriveCollegeCode("X College"))
	assert.Equal(t, "AB", DeriveCollegeCode("a b"))

	assert.Equal(t, "COMP", DeriveDepartmentCode("Computer Science"))
	assert.Equal(t, "IT", DeriveDepartmentCode("I.T."))
}
