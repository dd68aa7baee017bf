package services

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	"github.com/techagentng/citizenrate/db/dbtest"
	"github.com/techagentng/citizenrate/models"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendWelcomeMessage(_ context.Context, _, email string) error {
	f.sent = append(f.sent, email)
	return f.err
}

type env struct {
	db           *db.GormDB
	conf         *config.Config
	mail         *fakeMailer
	institutions InstitutionService
	nominees     NomineeService
	positions    PositionService
	districts    DistrictService
	categories   CategoryService
	leaderboard  LeaderboardService
	comments     CommentService
	statistics   StatisticsService
	auth         AuthService

	user     models.User
	position models.Position
	district models.District
	nomCat   models.RatingCategory
	instCat  models.InstitutionRatingCategory
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gdb := dbtest.Open(t)
	require.NoError(t, db.Migrate(gdb))
	g := db.NewGormDB(gdb)

	conf := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour, LeaderboardSize: 5}
	institutionRepo := db.NewInstitutionRepo(g)
	nomineeRepo := db.NewNomineeRepo(g)
	ratingRepo := db.NewRatingRepo(g)
	categoryRepo := db.NewCategoryRepo(g)

	e := &env{
		db:           g,
		conf:         conf,
		mail:         &fakeMailer{},
		institutions: NewInstitutionService(institutionRepo, ratingRepo, categoryRepo, conf),
		nominees:     NewNomineeService(nomineeRepo, ratingRepo, categoryRepo, conf),
		positions:    NewPositionService(db.NewPositionRepo(g), conf),
		districts:    NewDistrictService(db.NewDistrictRepo(g), conf),
		categories:   NewCategoryService(categoryRepo, conf),
		leaderboard:  NewLeaderboardService(institutionRepo, nomineeRepo, ratingRepo, conf),
		comments:     NewCommentService(db.NewCommentRepo(g), conf),
		statistics:   NewStatisticsService(db.NewStatisticsRepo(g), conf),
	}
	e.auth = NewAuthService(db.NewAuthRepo(g), e.mail, conf)

	e.user = models.User{Name: "Rater", Email: "rater@example.com", HashedPassword: "x", Role: models.RoleUser}
	e.position = models.Position{Name: "Mayor", Status: true}
	e.district = models.District{Name: "Kampala", Region: "Central", Status: true}
	e.nomCat = models.RatingCategory{CategoryFields: models.CategoryFields{Keyword: "bribery", Name: "Bribery", Weight: 5}}
	e.instCat = models.InstitutionRatingCategory{CategoryFields: models.CategoryFields{Keyword: "fraud", Name: "Frequency of Fraud", Weight: 5}}
	for _, v := range []interface{}{&e.user, &e.position, &e.district, &e.nomCat, &e.instCat} {
		require.NoError(t, gdb.Create(v).Error)
	}
	return e
}

func (e *env) institution(t *testing.T, name string) *models.Institution {
	t.Helper()
	i, err := e.institutions.CreateInstitution(&models.CreateInstitutionRequest{Name: name})
	require.NoError(t, err)
	return i
}

func (e *env) nominee(t *testing.T, name string, institutionID uint) *models.Nominee {
	t.Helper()
	n, err := e.nominees.CreateNominee(&models.CreateNomineeRequest{
		Name:          name,
		PositionID:    e.position.ID,
		InstitutionID: institutionID,
		DistrictID:    e.district.ID,
	})
	require.NoError(t, err)
	return n
}

func (e *env) rateInstitution(t *testing.T, id uint, scores ...float64) {
	t.Helper()
	inputs := make([]models.RatingInput, 0, len(scores))
	for _, s := range scores {
		s := s
		inputs = append(inputs, models.RatingInput{CategoryID: e.instCat.ID, Score: &s, Severity: &s})
	}
	_, err := e.institutions.RateInstitution(id, e.user.ID, inputs)
	require.NoError(t, err)
}

func (e *env) rateNominee(t *testing.T, id uint, scores ...float64) {
	t.Helper()
	inputs := make([]models.RatingInput, 0, len(scores))
	for _, s := range scores {
		s := s
		inputs = append(inputs, models.RatingInput{CategoryID: e.nomCat.ID, Score: &s, Severity: &s})
	}
	_, err := e.nominees.RateNominee(id, e.user.ID, inputs)
	require.NoError(t, err)
}

func values(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Add(kv[i], kv[i+1])
	}
	return v
}

func idString(id uint) string {
	return fmt.Sprint(id)
}
