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

var nomineeFilters = query.Options{
	SearchFields: []string{"name", "position", "institution", "district"},
	ExactFields:  []string{"institutionId", "positionId", "districtId"},
	RangeFields:  map[string]query.RangeKind{"createdAt": query.RangeDate},
}

// NomineeService interface
type NomineeService interface {
	ListNominees(params url.Values) (*models.Page[models.NomineeView], error)
	GetNominee(id uint) (*models.NomineeView, error)
	CreateNominee(req *models.CreateNomineeRequest) (*models.Nominee, error)
	UpdateNominee(id uint, req *models.UpdateNomineeRequest) (*models.Nominee, error)
	DeleteNominee(id uint) error
	RateNominee(id, userID uint, inputs []models.RatingInput) ([]models.NomineeRating, error)
	NomineeStatistics(id uint) (*models.RatingStatistics, error)
}

type nomineeService struct {
	Config       *config.Config
	nomineeRepo  db.NomineeRepository
	ratingRepo   db.RatingRepository
	categoryRepo db.CategoryRepository
}

func NewNomineeService(nomineeRepo db.NomineeRepository, ratingRepo db.RatingRepository, categoryRepo db.CategoryRepository, conf *config.Config) NomineeService {
	return &nomineeService{
		Config:       conf,
		nomineeRepo:  nomineeRepo,
		ratingRepo:   ratingRepo,
		categoryRepo: categoryRepo,
	}
}

// ListNominees returns one page of nominees with their averages. As with
// institutions, rating=high|low only reorders within the fetched page.
func (s *nomineeService) ListNominees(params url.Values) (*models.Page[models.NomineeView], error) {
	filter := query.Build(params, nomineeFilters).With(query.StatusFilter(params))
	filter = coerceIDs(filter, nomineeFilters.ExactFields...)
	order := query.ParseRatingOrder(params)

	page, err := s.nomineeRepo.List(filter, query.ParsePage(params), order)
	if err != nil {
		log.Printf("ListNominees error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Nominee")
	}

	ids := make([]uint, 0, len(page.Data))
	for _, n := range page.Data {
		ids = append(ids, n.ID)
	}
	ratings, err := s.ratingRepo.NomineeRatings(ids...)
	if err != nil {
		log.Printf("ListNominees ratings error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	grouped := groupNomineeRatings(ratings)

	views := make([]models.NomineeView, 0, len(page.Data))
	for _, n := range page.Data {
		views = append(views, nomineeView(n, grouped[n.ID]))
	}
	if order != query.RatingNone {
		rating.SortByAverage(views, order == query.RatingHigh)
	}

	return &models.Page[models.NomineeView]{
		Data:        views,
		Count:       page.Count,
		Pages:       page.Pages,
		CurrentPage: page.CurrentPage,
	}, nil
}

func nomineeView(n models.Nominee, ratings []models.NomineeRating) models.NomineeView {
	entries := rating.FromNomineeRatings(ratings)
	avg := rating.Average(entries)
	return models.NomineeView{
		Nominee:       n,
		AverageRating: rating.Round2(avg),
		TotalRatings:  len(entries),
		RawAverage:    avg,
	}
}

func (s *nomineeService) GetNominee(id uint) (*models.NomineeView, error) {
	nominee, err := s.nomineeRepo.FindByID(id)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "Nominee")
	}
	view := nomineeView(*nominee, nominee.Ratings)
	return &view, nil
}

func (s *nomineeService) CreateNominee(req *models.CreateNomineeRequest) (*models.Nominee, error) {
	nominee := &models.Nominee{
		Name:          req.Name,
		Image:         req.Image,
		Evidence:      req.Evidence,
		Status:        req.Status == nil || *req.Status,
		PositionID:    req.PositionID,
		InstitutionID: req.InstitutionID,
		DistrictID:    req.DistrictID,
	}
	if err := s.nomineeRepo.Create(nominee); err != nil {
		log.Printf("CreateNominee error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Nominee")
	}
	return nominee, nil
}

func (s *nomineeService) UpdateNominee(id uint, req *models.UpdateNomineeRequest) (*models.Nominee, error) {
	req.Name = trimmed(req.Name)
	if req.Name != nil && *req.Name == "" {
		return nil, apiError.BadRequest("name cannot be empty")
	}
	nominee, err := s.nomineeRepo.Update(id, req)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "Nominee")
	}
	return nominee, nil
}

func (s *nomineeService) DeleteNominee(id uint) error {
	if err := s.nomineeRepo.Delete(id); err != nil {
		return apiError.TranslateStoreError(err, "Nominee")
	}
	return nil
}

// RateNominee stores every rating of a submission in one transaction.
func (s *nomineeService) RateNominee(id, userID uint, inputs []models.RatingInput) ([]models.NomineeRating, error) {
	if err := validateRatings(inputs); err != nil {
		return nil, err
	}
	ratings := make([]models.NomineeRating, 0, len(inputs))
	for _, in := range inputs {
		ratings = append(ratings, models.NomineeRating{
			RatingFields:     ratingFields(in, userID),
			RatingCategoryID: in.Category(),
		})
	}
	if err := s.ratingRepo.CreateNomineeRatings(id, ratings); err != nil {
		log.Printf("RateNominee error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Nominee")
	}
	return ratings, nil
}

func (s *nomineeService) NomineeStatistics(id uint) (*models.RatingStatistics, error) {
	nominee, err := s.nomineeRepo.FindByID(id)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "Nominee")
	}
	categories, err := s.categoryRepo.ListNomineeCategories()
	if err != nil {
		log.Printf("NomineeStatistics error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	known := make([]rating.Category, 0, len(categories))
	for _, c := range categories {
		known = append(known, rating.Category{ID: c.ID, Name: c.Name})
	}
	stats := rating.Summarize(rating.FromNomineeRatings(nominee.Ratings), known)
	return &stats, nil
}
