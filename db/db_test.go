package db

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/techagentng/citizenrate/db/dbtest"
	"github.com/techagentng/citizenrate/models"
)

func newTestDB(t *testing.T) *GormDB {
	t.Helper()
	gdb := dbtest.Open(t)
	require.NoError(t, Migrate(gdb))
	return NewGormDB(gdb)
}

type fixture struct {
	db          *GormDB
	user        models.User
	institution models.Institution
	position    models.Position
	district    models.District
	category    models.RatingCategory
	instCat     models.InstitutionRatingCategory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return fixtureOn(t, newTestDB(t))
}

func fixtureOn(t *testing.T, g *GormDB) *fixture {
	t.Helper()
	f := &fixture{db: g}
	tx := f.db.DB

	f.user = models.User{Name: "Alice", Email: "alice@example.com", HashedPassword: "x", Role: models.RoleUser}
	f.institution = models.Institution{Name: "Bank of Uganda", Status: true}
	f.position = models.Position{Name: "Minister", Status: true}
	f.district = models.District{Name: "Gulu", Region: "Northern", Status: true}
	f.category = models.RatingCategory{CategoryFields: models.CategoryFields{Keyword: "bribery", Name: "Bribery", Weight: 5}}
	f.instCat = models.InstitutionRatingCategory{CategoryFields: models.CategoryFields{Keyword: "fraud", Name: "Fraud", Weight: 3}}

	for _, v := range []interface{}{&f.user, &f.institution, &f.position, &f.district, &f.category, &f.instCat} {
		require.NoError(t, tx.Create(v).Error)
	}
	return f
}

func (f *fixture) nominee(t *testing.T, name string, active bool) models.Nominee {
	t.Helper()
	n := models.Nominee{
		Name:          name,
		Status:        active,
		PositionID:    f.position.ID,
		InstitutionID: f.institution.ID,
		DistrictID:    f.district.ID,
	}
	require.NoError(t, NewNomineeRepo(f.db).Create(&n))
	return n
}

func ptr[T any](v T) *T {
	return &v
}
