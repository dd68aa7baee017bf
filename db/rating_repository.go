package db

import (
	"github.com/pkg/errors"
	errs "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"gorm.io/gorm"
)

type RatingRepository interface {
	CreateNomineeRatings(nomineeID uint, ratings []models.NomineeRating) error
	CreateInstitutionRatings(institutionID uint, ratings []models.InstitutionRating) error
	NomineeRatings(nomineeIDs ...uint) ([]models.NomineeRating, error)
	InstitutionRatings(institutionIDs ...uint) ([]models.InstitutionRating, error)
}

type ratingRepo struct {
	DB *gorm.DB
}

func NewRatingRepo(db *GormDB) RatingRepository {
	return &ratingRepo{db.DB}
}

// CreateNomineeRatings stores a whole submission or nothing.
func (r *ratingRepo) CreateNomineeRatings(nomineeID uint, ratings []models.NomineeRating) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, &models.Nominee{}, nomineeID, lockShare, "Nominee"); err != nil {
			return err
		}
		ids := make([]uint, 0, len(ratings))
		for i := range ratings {
			ratings[i].NomineeID = nomineeID
			ids = append(ids, ratings[i].RatingCategoryID)
		}
		if err := categoriesExist(tx, &models.RatingCategory{}, ids); err != nil {
			return err
		}
		return errors.Wrap(tx.Omit("User", "RatingCategory").Create(&ratings).Error, "create nominee ratings")
	})
}

// CreateInstitutionRatings stores a whole submission or nothing.
func (r *ratingRepo) CreateInstitutionRatings(institutionID uint, ratings []models.InstitutionRating) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, &models.Institution{}, institutionID, lockShare, "Institution"); err != nil {
			return err
		}
		ids := make([]uint, 0, len(ratings))
		for i := range ratings {
			ratings[i].InstitutionID = institutionID
			ids = append(ids, ratings[i].RatingCategoryID)
		}
		if err := categoriesExist(tx, &models.InstitutionRatingCategory{}, ids); err != nil {
			return err
		}
		return errors.Wrap(tx.Omit("User", "RatingCategory").Create(&ratings).Error, "create institution ratings")
	})
}

func categoriesExist(tx *gorm.DB, model interface{}, ids []uint) error {
	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	var found int64
	if err := tx.Model(model).Where("id IN ?", ids).Count(&found).Error; err != nil {
		return errors.Wrap(err, "count rating categories")
	}
	if int(found) != len(unique) {
		return errs.NotFound("Rating category")
	}
	return nil
}

// NomineeRatings loads the ratings of the given nominees, oldest first.
func (r *ratingRepo) NomineeRatings(nomineeIDs ...uint) ([]models.NomineeRating, error) {
	ratings := make([]models.NomineeRating, 0)
	if len(nomineeIDs) == 0 {
		return ratings, nil
	}
	err := r.DB.Where("nominee_id IN ?", nomineeIDs).Order("created_at ASC").Order("id ASC").Find(&ratings).Error
	return ratings, errors.Wrap(err, "load nominee ratings")
}

// InstitutionRatings loads the ratings of the given institutions, oldest first.
func (r *ratingRepo) InstitutionRatings(institutionIDs ...uint) ([]models.InstitutionRating, error) {
	ratings := make([]models.InstitutionRating, 0)
	if len(institutionIDs) == 0 {
		return ratings, nil
	}
	err := r.DB.Where("institution_id IN ?", institutionIDs).Order("created_at ASC").Order("id ASC").Find(&ratings).Error
	return ratings, errors.Wrap(err, "load institution ratings")
}
