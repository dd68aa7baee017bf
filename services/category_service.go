package services

import (
	"log"

	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	apiError "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
)

// CategoryService manages both rating category variants.
type CategoryService interface {
	ListNomineeCategories() ([]models.RatingCategory, error)
	ListInstitutionCategories() ([]models.InstitutionRatingCategory, error)
	CreateNomineeCategory(req *models.CreateCategoryRequest) (*models.RatingCategory, error)
	CreateInstitutionCategory(req *models.CreateCategoryRequest) (*models.InstitutionRatingCategory, error)
}

type categoryService struct {
	Config       *config.Config
	categoryRepo db.CategoryRepository
}

func NewCategoryService(categoryRepo db.CategoryRepository, conf *config.Config) CategoryService {
	return &categoryService{Config: conf, categoryRepo: categoryRepo}
}

func (s *categoryService) ListNomineeCategories() ([]models.RatingCategory, error) {
	categories, err := s.categoryRepo.ListNomineeCategories()
	if err != nil {
		log.Printf("ListNomineeCategories error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return categories, nil
}

func (s *categoryService) ListInstitutionCategories() ([]models.InstitutionRatingCategory, error) {
	categories, err := s.categoryRepo.ListInstitutionCategories()
	if err != nil {
		log.Printf("ListInstitutionCategories error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return categories, nil
}

func (s *categoryService) CreateNomineeCategory(req *models.CreateCategoryRequest) (*models.RatingCategory, error) {
	category := &models.RatingCategory{CategoryFields: req.Fields()}
	if err := s.categoryRepo.CreateNomineeCategory(category); err != nil {
		log.Printf("CreateNomineeCategory error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Rating category")
	}
	return category, nil
}

func (s *categoryService) CreateInstitutionCategory(req *models.CreateCategoryRequest) (*models.InstitutionRatingCategory, error) {
	category := &models.InstitutionRatingCategory{CategoryFields: req.Fields()}
	if err := s.categoryRepo.CreateInstitutionCategory(category); err != nil {
		log.Printf("CreateInstitutionCategory error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Rating category")
	}
	return category, nil
}
