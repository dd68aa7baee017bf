package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/citizenrate/models"
)

func TestTopInstitutions(t *testing.T) {
	e := newEnv(t)
	scores := map[string][]float64{
		"A": {1},
		"B": {5, 4},
		"C": {3},
		"D": {2, 3},
		"E": {4, 4, 5},
		"F": {},
		"G": {5},
	}
	ids := map[string]uint{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		inst := e.institution(t, name)
		ids[name] = inst.ID
		if len(scores[name]) > 0 {
			e.rateInstitution(t, inst.ID, scores[name]...)
		}
	}
	dormant := e.institution(t, "Dormant")
	e.rateInstitution(t, dormant.ID, 5, 5)
	_, err := e.institutions.UpdateInstitution(dormant.ID, &models.UpdateInstitutionRequest{Status: ptr(false)})
	require.NoError(t, err)

	top, err := e.leaderboard.TopInstitutions()
	require.NoError(t, err)
	require.Len(t, top, 5)

	var names []string
	for _, entry := range top {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"G", "B", "E", "C", "D"}, names)
	assert.Equal(t, 4.33, top[2].AverageRating)
	assert.Equal(t, 3, top[2].TotalRatings)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].RawAverage, top[i].RawAverage)
	}
}

func TestTopNomineesTiesKeepIDOrder(t *testing.T) {
	e := newEnv(t)
	inst := e.institution(t, "KCCA")
	first := e.nominee(t, "First", inst.ID)
	second := e.nominee(t, "Second", inst.ID)
	e.rateNominee(t, second.ID, 4)
	e.rateNominee(t, first.ID, 4)

	top, err := e.leaderboard.TopNominees()
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "First", top[0].Name)
	assert.Equal(t, "Second", top[1].Name)
	assert.Equal(t, "KCCA", top[0].Institution)
	assert.Equal(t, "Mayor", top[0].Position)
	assert.Equal(t, "Kampala", top[0].District)
}

func TestLeaderboardEmpty(t *testing.T) {
	e := newEnv(t)
	top, err := e.leaderboard.TopNominees()
	require.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}
