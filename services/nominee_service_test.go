package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/citizenrate/models"
)

func TestCreateNomineeWithMissingPosition(t *testing.T) {
	e := newEnv(t)
	inst := e.institution(t, "KCCA")

	_, err := e.nominees.CreateNominee(&models.CreateNomineeRequest{
		Name:          "Ghost",
		PositionID:    9999,
		InstitutionID: inst.ID,
		DistrictID:    e.district.ID,
	})
	assertAPIError(t, err, http.StatusNotFound, "Position not found")
}

func TestListNomineesFilters(t *testing.T) {
	e := newEnv(t)
	bou := e.institution(t, "Bank of Uganda")
	kcca := e.institution(t, "KCCA")
	e.nominee(t, "John Doe", bou.ID)
	jane := e.nominee(t, "Jane Smith", kcca.ID)
	_, err := e.nominees.UpdateNominee(jane.ID, &models.UpdateNomineeRequest{Status: ptr(false)})
	require.NoError(t, err)

	page, err := e.nominees.ListNominees(values())
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "John Doe", page.Data[0].Name)

	page, err = e.nominees.ListNominees(values("includeInactive", "true"))
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)

	page, err = e.nominees.ListNominees(values("status", "inactive"))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Jane Smith", page.Data[0].Name)

	page, err = e.nominees.ListNominees(values("includeInactive", "true", "search", "kcca"))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Jane Smith", page.Data[0].Name)

	page, err = e.nominees.ListNominees(values("includeInactive", "true", "institutionId", idString(bou.ID)))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "John Doe", page.Data[0].Name)

	page, err = e.nominees.ListNominees(values("districtId", "not-a-number"))
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Pages)
}

func TestNomineeRatingAndStatistics(t *testing.T) {
	e := newEnv(t)
	inst := e.institution(t, "URA")
	n := e.nominee(t, "Paul Johnson", inst.ID)
	e.rateNominee(t, n.ID, 4, 5, 5)

	view, err := e.nominees.GetNominee(n.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.67, view.AverageRating)
	assert.Equal(t, 3, view.TotalRatings)
	require.NotNil(t, view.Position)
	assert.Equal(t, "Mayor", view.Position.Name)

	stats, err := e.nominees.NomineeStatistics(n.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.67, stats.AverageScore)
	require.Len(t, stats.Categories, 1)
	assert.Equal(t, "Bribery", stats.Categories[0].Name)

	assertAPIError(t, e.nominees.DeleteNominee(n.ID), http.StatusBadRequest, "Cannot delete nominee with associated ratings or comments")
}

func TestSeverityIsStoredAsGiven(t *testing.T) {
	e := newEnv(t)
	inst := e.institution(t, "URA")
	n := e.nominee(t, "Emily Davis", inst.ID)

	ratings, err := e.nominees.RateNominee(n.ID, e.user.ID, []models.RatingInput{
		{CategoryID: e.nomCat.ID, Score: ptr(5.0), Severity: ptr(1.0)},
	})
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Score)
	assert.Equal(t, 1, ratings[0].Severity)
	assert.Equal(t, e.user.ID, ratings[0].UserID)
}

func TestReferenceGuards(t *testing.T) {
	e := newEnv(t)
	inst := e.institution(t, "KCCA")
	e.nominee(t, "John Doe", inst.ID)

	_, err := e.districts.UpdateDistrict(e.district.ID, &models.UpdateDistrictRequest{Status: ptr(false)})
	assertAPIError(t, err, http.StatusBadRequest, "Cannot deactivate district with active nominees")
	district, err := e.districts.GetDistrict(e.district.ID)
	require.NoError(t, err)
	assert.True(t, district.Status)

	_, err = e.positions.UpdatePosition(e.position.ID, &models.UpdatePositionRequest{Status: ptr(false)})
	assertAPIError(t, err, http.StatusBadRequest, "Cannot deactivate position with active nominees")

	assertAPIError(t, e.positions.DeletePosition(e.position.ID), http.StatusBadRequest, "Cannot delete position with associated nominees")
	assertAPIError(t, e.districts.DeleteDistrict(e.district.ID), http.StatusBadRequest, "Cannot delete district with associated nominees")
}

func TestDistrictDuplicateName(t *testing.T) {
	e := newEnv(t)
	_, err := e.districts.CreateDistrict(&models.CreateDistrictRequest{Name: "Kampala", Region: "Central"})
	assertAPIError(t, err, http.StatusConflict, "A district with this name already exists")
}

func TestListDistrictsSearchesRegion(t *testing.T) {
	e := newEnv(t)
	_, err := e.districts.CreateDistrict(&models.CreateDistrictRequest{Name: "Gulu", Region: "Northern"})
	require.NoError(t, err)

	page, err := e.districts.ListDistricts(values("search", "north"))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Gulu", page.Data[0].Name)
}
