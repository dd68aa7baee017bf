package services

import (
	"log"
	"net/url"

	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	apiError "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
	"github.com/techagentng/citizenrate/services/rating"
)

var institutionFilters = query.Options{
	SearchFields: []string{"name"},
	RangeFields:  map[string]query.RangeKind{"createdAt": query.RangeDate},
}

// InstitutionService interface
type InstitutionService interface {
	ListInstitutions(params url.Values) (*models.Page[models.InstitutionView], error)
	GetInstitution(id uint) (*models.InstitutionView, error)
	CreateInstitution(req *models.CreateInstitutionRequest) (*models.Institution, error)
	UpdateInstitution(id uint, req *models.UpdateInstitutionRequest) (*models.Institution, error)
	DeleteInstitution(id uint) error
	RateInstitution(id, userID uint, inputs []models.RatingInput) ([]models.InstitutionRating, error)
	InstitutionStatistics(id uint) (*models.RatingStatistics, error)
}

type institutionService struct {
	Config          *config.Config
	institutionRepo db.InstitutionRepository
	ratingRepo      db.RatingRepository
	categoryRepo    db.CategoryRepository
}

func NewInstitutionService(institutionRepo db.InstitutionRepository, ratingRepo db.RatingRepository, categoryRepo db.CategoryRepository, conf *config.Config) InstitutionService {
	return &institutionService{
		Config:          conf,
		institutionRepo: institutionRepo,
		ratingRepo:      ratingRepo,
		categoryRepo:    categoryRepo,
	}
}

// ListInstitutions returns one page of institutions with their averages.
// rating=high|low reorders the fetched page only; the store has already
// ordered the rows by rating count, so the order is exact within a page and
// approximate across pages.
func (s *institutionService) ListInstitutions(params url.Values) (*models.Page[models.InstitutionView], error) {
	filter := query.Build(params, institutionFilters).With(query.StatusFilter(params))
	order := query.ParseRatingOrder(params)

	page, err := s.institutionRepo.List(filter, query.ParsePage(params), order)
	if err != nil {
		log.Printf("ListInstitutions error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Institution")
	}

	ids := make([]uint, 0, len(page.Data))
	for _, i := range page.Data {
		ids = append(ids, i.ID)
	}
	ratings, err := s.ratingRepo.InstitutionRatings(ids...)
	if err != nil {
		log.Printf("ListInstitutions ratings error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	grouped := groupInstitutionRatings(ratings)

	views := make([]models.InstitutionView, 0, len(page.Data))
	for _, i := range page.Data {
		views = append(views, institutionView(i, grouped[i.ID]))
	}
	if order != query.RatingNone {
		rating.SortByAverage(views, order == query.RatingHigh)
	}

	return &models.Page[models.InstitutionView]{
		Data:        views,
		Count:       page.Count,
		Pages:       page.Pages,
		CurrentPage: page.CurrentPage,
	}, nil
}

func institutionView(i models.Institution, ratings []models.InstitutionRating) models.InstitutionView {
	entries := rating.FromInstitutionRatings(ratings)
	avg := rating.Average(entries)
	return models.InstitutionView{
		Institution:   i,
		AverageRating: rating.Round2(avg),
		TotalRatings:  len(entries),
		RawAverage:    avg,
	}
}

func (s *institutionService) GetInstitution(id uint) (*models.InstitutionView, error) {
	institution, err := s.institutionRepo.FindByID(id)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "Institution")
	}
	view := institutionView(*institution, institution.Ratings)
	return &view, nil
}

func (s *institutionService) CreateInstitution(req *models.CreateInstitutionRequest) (*models.Institution, error) {
	institution := &models.Institution{Name: req.Name, Image: req.Image, Status: true}
	if err := s.institutionRepo.Create(institution); err != nil {
		log.Printf("CreateInstitution error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Institution")
	}
	return institution, nil
}

func (s *institutionService) UpdateInstitution(id uint, req *models.UpdateInstitutionRequest) (*models.Institution, error) {
	req.Name = trimmed(req.Name)
	if req.Name != nil && *req.Name == "" {
		return nil, apiError.BadRequest("name cannot be empty")
	}
	institution, err := s.institutionRepo.Update(id, req)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "Institution")
	}
	return institution, nil
}

func (s *institutionService) DeleteInstitution(id uint) error {
	if err := s.institutionRepo.Delete(id); err != nil {
		return apiError.TranslateStoreError(err, "Institution")
	}
	return nil
}

// RateInstitution stores every rating of a submission in one transaction.
func (s *institutionService) RateInstitution(id, userID uint, inputs []models.RatingInput) ([]models.InstitutionRating, error) {
	if err := validateRatings(inputs); err != nil {
		return nil, err
	}
	ratings := make([]models.InstitutionRating, 0, len(inputs))
	for _, in := range inputs {
		ratings = append(ratings, models.InstitutionRating{
			RatingFields:     ratingFields(in, userID),
			RatingCategoryID: in.Category(),
		})
	}
	if err := s.ratingRepo.CreateInstitutionRatings(id, ratings); err != nil {
		log.Printf("RateInstitution error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Institution")
	}
	return ratings, nil
}

func (s *institutionService) InstitutionStatistics(id uint) (*models.RatingStatistics, error) {
	institution, err := s.institutionRepo.FindByID(id)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "Institution")
	}
	categories, err := s.categoryRepo.ListInstitutionCategories()
	if err != nil {
		log.Printf("InstitutionStatistics error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	known := make([]rating.Category, 0, len(categories))
	for _, c := range categories {
		known = append(known, rating.Category{ID: c.ID, Name: c.Name})
	}
	stats := rating.Summarize(rating.FromInstitutionRatings(institution.Ratings), known)
	return &stats, nil
}
