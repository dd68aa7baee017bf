//go:build integration

package db

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	errs "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newPostgresDB(t *testing.T) *GormDB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("citizenrate_test"),
		postgres.WithUsername("citizenrate"),
		postgres.WithPassword("citizenrate"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	gdb, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))
	return NewGormDB(gdb)
}

// A nominee insert that is still in flight holds its district; deactivation
// has to wait for it and then sees the new nominee.
func TestDeactivateWaitsForPendingNominee(t *testing.T) {
	f := fixtureOn(t, newPostgresDB(t))

	tx := f.db.DB.Begin()
	require.NoError(t, lockParents(tx, f.position.ID, f.institution.ID, f.district.ID))
	require.NoError(t, tx.Omit("Position", "Institution", "District").Create(&models.Nominee{
		Name: "Pending", Status: true,
		PositionID: f.position.ID, InstitutionID: f.institution.ID, DistrictID: f.district.ID,
	}).Error)

	done := make(chan error, 1)
	go func() {
		_, err := NewDistrictRepo(f.db).Update(f.district.ID, &models.UpdateDistrictRequest{Status: ptr(false)})
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("deactivation did not wait for the pending nominee: %v", err)
	case <-time.After(300 * time.Millisecond):
	}
	require.NoError(t, tx.Commit().Error)

	err := <-done
	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Cannot deactivate district with active nominees", apiErr.Message)

	var district models.District
	require.NoError(t, f.db.DB.First(&district, f.district.ID).Error)
	assert.True(t, district.Status)
}

// Deletes racing with nominee creation never leave a nominee pointing at a
// deleted position, and every failure is a guard or not-found error.
func TestConcurrentDeleteAndCreate(t *testing.T) {
	f := fixtureOn(t, newPostgresDB(t))
	positions := NewPositionRepo(f.db)
	nominees := NewNomineeRepo(f.db)

	var wg sync.WaitGroup
	results := make(chan error, 20)
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			results <- positions.Delete(f.position.ID)
		}()
		go func() {
			defer wg.Done()
			results <- nominees.Create(&models.Nominee{
				Name: "Racer", Status: true,
				PositionID: f.position.ID, InstitutionID: f.institution.ID, DistrictID: f.district.ID,
			})
		}()
	}
	wg.Wait()
	close(results)

	for err := range results {
		if err == nil {
			continue
		}
		var apiErr *errs.Error
		require.True(t, errors.As(err, &apiErr), "unexpected error: %v", err)
		assert.Contains(t, []int{http.StatusBadRequest, http.StatusNotFound}, apiErr.Status)
	}

	var positionCount, nomineeCount int64
	require.NoError(t, f.db.DB.Model(&models.Position{}).Where("id = ?", f.position.ID).Count(&positionCount).Error)
	require.NoError(t, f.db.DB.Model(&models.Nominee{}).Where("position_id = ?", f.position.ID).Count(&nomineeCount).Error)
	if positionCount == 0 {
		assert.Zero(t, nomineeCount)
	}
}

func TestConcurrentRatingBatches(t *testing.T) {
	f := fixtureOn(t, newPostgresDB(t))
	n := f.nominee(t, "Popular", true)
	ratings := NewRatingRepo(f.db)

	var wg sync.WaitGroup
	for i := 0; i < 15; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			batch := []models.NomineeRating{
				{NomineeID: n.ID, RatingCategoryID: f.category.ID, RatingFields: models.RatingFields{Score: score, Severity: score, UserID: f.user.ID}},
				{NomineeID: n.ID, RatingCategoryID: f.category.ID, RatingFields: models.RatingFields{Score: score, Severity: 1, UserID: f.user.ID}},
			}
			assert.NoError(t, ratings.CreateNomineeRatings(n.ID, batch))
		}(i%5 + 1)
	}
	wg.Wait()

	stored, err := ratings.NomineeRatings(n.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 30)
}

func TestStatisticsTotalsOnPostgres(t *testing.T) {
	f := fixtureOn(t, newPostgresDB(t))
	n := f.nominee(t, "Counted", true)
	require.NoError(t, NewRatingRepo(f.db).CreateNomineeRatings(n.ID, []models.NomineeRating{
		{NomineeID: n.ID, RatingCategoryID: f.category.ID, RatingFields: models.RatingFields{Score: 3, Severity: 2, UserID: f.user.ID}},
	}))

	stats, err := NewStatisticsRepo(f.db).Totals()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRatings)
	require.Len(t, stats.RatingsPerUser, 1)
	assert.Equal(t, int64(1), stats.RatingsPerUser[0].TotalRatings)
}
