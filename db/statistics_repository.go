package db

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/techagentng/citizenrate/models"
	"gorm.io/gorm"
)

type StatisticsRepository interface {
	Totals() (*models.Statistics, error)
}

type statisticsRepo struct {
	DB *gorm.DB
}

func NewStatisticsRepo(db *GormDB) StatisticsRepository {
	return &statisticsRepo{db.DB}
}

const ratingsPerUserSQL = `
SELECT users.id AS user_id, users.name AS user_name, COUNT(r.id) AS total_ratings
FROM users
LEFT JOIN (
	SELECT id, user_id FROM nominee_ratings
	UNION ALL
	SELECT id, user_id FROM institution_ratings
) r ON r.user_id = users.id
GROUP BY users.id, users.name
ORDER BY total_ratings DESC, users.id ASC`

// Totals reads the site-wide counters. On postgres they come from one
// repeatable-read snapshot; sqlite serializes on its single connection.
func (r *statisticsRepo) Totals() (*models.Statistics, error) {
	stats := &models.Statistics{RatingsPerUser: make([]models.UserRatingCount, 0)}
	var opts *sql.TxOptions
	if r.DB.Dialector.Name() == "postgres" {
		opts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		counts := []struct {
			model interface{}
			dest  *int64
		}{
			{&models.Institution{}, &stats.TotalInstitutions},
			{&models.Nominee{}, &stats.TotalNominees},
			{&models.InstitutionRating{}, &stats.TotalInstitutionRatings},
			{&models.NomineeRating{}, &stats.TotalNomineeRatings},
			{&models.User{}, &stats.TotalUsers},
		}
		for _, c := range counts {
			if err := tx.Model(c.model).Count(c.dest).Error; err != nil {
				return errors.Wrap(err, "count totals")
			}
		}
		return errors.Wrap(tx.Raw(ratingsPerUserSQL).Scan(&stats.RatingsPerUser).Error, "ratings per user")
	}, opts)
	if err != nil {
		return nil, err
	}
	stats.TotalRatings = stats.TotalInstitutionRatings + stats.TotalNomineeRatings
	return stats, nil
}
