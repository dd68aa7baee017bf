package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/citizenrate/models"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	ListNomineeCategories() ([]models.RatingCategory, error)
	ListInstitutionCategories() ([]models.InstitutionRatingCategory, error)
	CreateNomineeCategory(category *models.RatingCategory) error
	CreateInstitutionCategory(category *models.InstitutionRatingCategory) error
}

type categoryRepo struct {
	DB *gorm.DB
}

func NewCategoryRepo(db *GormDB) CategoryRepository {
	return &categoryRepo{db.DB}
}

func (r *categoryRepo) ListNomineeCategories() ([]models.RatingCategory, error) {
	categories := make([]models.RatingCategory, 0)
	err := r.DB.Order("weight DESC").Order("id ASC").Find(&categories).Error
	return categories, errors.Wrap(err, "list rating categories")
}

func (r *categoryRepo) ListInstitutionCategories() ([]models.InstitutionRatingCategory, error) {
	categories := make([]models.InstitutionRatingCategory, 0)
	err := r.DB.Order("weight DESC").Order("id ASC").Find(&categories).Error
	return categories, errors.Wrap(err, "list institution rating categories")
}

func (r *categoryRepo) CreateNomineeCategory(category *models.RatingCategory) error {
	return errors.Wrap(r.DB.Create(category).Error, "create rating category")
}

func (r *categoryRepo) CreateInstitutionCategory(category *models.InstitutionRatingCategory) error {
	return errors.Wrap(r.DB.Create(category).Error, "create institution rating category")
}
