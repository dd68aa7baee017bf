package db

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
)

func seedInstitutionsN(t *testing.T, db *GormDB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, db.DB.Create(&models.Institution{Name: fmt.Sprintf("Institution %02d", i), Status: true}).Error)
	}
}

func TestPaginateBeyondLastPage(t *testing.T) {
	db := newTestDB(t)
	seedInstitutionsN(t, db, 25)
	repo := NewInstitutionRepo(db)

	page, err := repo.List(query.And{}, query.Page{Number: 3, Limit: 10}, query.RatingNone)
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, int64(25), page.Count)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 3, page.CurrentPage)

	page, err = repo.List(query.And{}, query.Page{Number: 7, Limit: 10}, query.RatingNone)
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(25), page.Count)
	assert.Equal(t, 3, page.Pages)
}

func TestPaginateHugePageNumber(t *testing.T) {
	db := newTestDB(t)
	seedInstitutionsN(t, db, 25)

	p := query.ParsePage(url.Values{"page": {"9223372036854775807"}})
	page, err := NewInstitutionRepo(db).List(query.And{}, p, query.RatingNone)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(25), page.Count)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, p.Number, page.CurrentPage)
}

func TestPaginateIsIdempotentAndNewestFirst(t *testing.T) {
	db := newTestDB(t)
	seedInstitutionsN(t, db, 12)
	repo := NewInstitutionRepo(db)

	first, err := repo.List(query.And{}, query.Page{Number: 1, Limit: 5}, query.RatingNone)
	require.NoError(t, err)
	again, err := repo.List(query.And{}, query.Page{Number: 1, Limit: 5}, query.RatingNone)
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.Equal(t, "Institution 12", first.Data[0].Name)
}

func TestPaginateEmpty(t *testing.T) {
	db := newTestDB(t)
	page, err := NewInstitutionRepo(db).List(query.And{}, query.Page{Number: 1, Limit: 10}, query.RatingNone)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Count)
	assert.Equal(t, 0, page.Pages)
	assert.NotNil(t, page.Data)
}

func TestApplyPredicateSearchIsCaseInsensitiveAndEscaped(t *testing.T) {
	db := newTestDB(t)
	for _, name := range []string{"Makerere University", "KCCA", "100% Trust", "Mulago Hospital"} {
		require.NoError(t, db.DB.Create(&models.Institution{Name: name, Status: true}).Error)
	}
	repo := NewInstitutionRepo(db)
	opts := query.Options{SearchFields: []string{"name"}}

	tests := []struct {
		search string
		want   []string
	}{
		{"makerere", []string{"Makerere University"}},
		{"KCC", []string{"KCCA"}},
		{"%", []string{"100% Trust"}},
		{"_", nil},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			filter := query.Build(url.Values{"search": {tt.search}}, opts)
			page, err := repo.List(filter, query.Page{Number: 1, Limit: 10}, query.RatingNone)
			require.NoError(t, err)

			var names []string
			for _, i := range page.Data {
				names = append(names, i.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestApplyPredicateStatusAndRange(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.DB.Create(&models.Institution{Name: "Active", Status: true}).Error)
	require.NoError(t, db.DB.Create(&models.Institution{Name: "Dormant", Status: false}).Error)
	repo := NewInstitutionRepo(db)

	page, err := repo.List(query.And{}.With(query.StatusFilter(url.Values{})), query.Page{Number: 1, Limit: 10}, query.RatingNone)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Active", page.Data[0].Name)

	all := query.And{}.With(query.StatusFilter(url.Values{"includeInactive": {"true"}}))
	page, err = repo.List(all, query.Page{Number: 1, Limit: 10}, query.RatingNone)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)

	future := query.Build(url.Values{"createdAt_min": {"2999-01-01"}}, query.Options{
		RangeFields: map[string]query.RangeKind{"createdAt": query.RangeDate},
	})
	page, err = repo.List(future, query.Page{Number: 1, Limit: 10}, query.RatingNone)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestApplyPredicateUnknownFieldIsSkipped(t *testing.T) {
	db := newTestDB(t)
	seedInstitutionsN(t, db, 2)
	filter := query.And{Items: []query.Predicate{query.Equals{Field: "color", Value: "red"}}}

	page, err := NewInstitutionRepo(db).List(filter, query.Page{Number: 1, Limit: 10}, query.RatingNone)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
}
