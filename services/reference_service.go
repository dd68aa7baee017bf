package services

import (
	"log"
	"net/url"
	"strings"

	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	apiError "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
)

var (
	positionFilters = query.Options{SearchFields: []string{"name"}}
	districtFilters = query.Options{SearchFields: []string{"name", "region"}, ExactFields: []string{"region"}}
)

// PositionService interface
type PositionService interface {
	ListPositions(params url.Values) (*models.Page[models.Position], error)
	GetPosition(id uint) (*models.Position, error)
	CreatePosition(req *models.CreatePositionRequest) (*models.Position, error)
	UpdatePosition(id uint, req *models.UpdatePositionRequest) (*models.Position, error)
	DeletePosition(id uint) error
}

// DistrictService interface
type DistrictService interface {
	ListDistricts(params url.Values) (*models.Page[models.District], error)
	GetDistrict(id uint) (*models.District, error)
	CreateDistrict(req *models.CreateDistrictRequest) (*models.District, error)
	UpdateDistrict(id uint, req *models.UpdateDistrictRequest) (*models.District, error)
	DeleteDistrict(id uint) error
}

type positionService struct {
	Config       *config.Config
	positionRepo db.PositionRepository
}

type districtService struct {
	Config       *config.Config
	districtRepo db.DistrictRepository
}

func NewPositionService(positionRepo db.PositionRepository, conf *config.Config) PositionService {
	return &positionService{Config: conf, positionRepo: positionRepo}
}

func NewDistrictService(districtRepo db.DistrictRepository, conf *config.Config) DistrictService {
	return &districtService{Config: conf, districtRepo: districtRepo}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func (s *positionService) ListPositions(params url.Values) (*models.Page[models.Position], error) {
	filter := query.Build(params, positionFilters).With(query.StatusFilter(params))
	page, err := s.positionRepo.List(filter, query.ParsePage(params))
	if err != nil {
		log.Printf("ListPositions error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Position")
	}
	return &page, nil
}

func (s *positionService) GetPosition(id uint) (*models.Position, error) {
	position, err := s.positionRepo.FindByID(id)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "Position")
	}
	return position, nil
}

func (s *positionService) CreatePosition(req *models.CreatePositionRequest) (*models.Position, error) {
	position := &models.Position{Name: req.Name, Status: true}
	if err := s.positionRepo.Create(position); err != nil {
		log.Printf("CreatePosition error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Position")
	}
	return position, nil
}

func (s *positionService) UpdatePosition(id uint, req *models.UpdatePositionRequest) (*models.Position, error) {
	req.Name = trimmed(req.Name)
	if req.Name != nil && *req.Name == "" {
		return nil, apiError.BadRequest("name cannot be empty")
	}
	position, err := s.positionRepo.Update(id, req)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "Position")
	}
	return position, nil
}

func (s *positionService) DeletePosition(id uint) error {
	if err := s.positionRepo.Delete(id); err != nil {
		return apiError.TranslateStoreError(err, "Position")
	}
	return nil
}

func (s *districtService) ListDistricts(params url.Values) (*models.Page[models.District], error) {
	filter := query.Build(params, districtFilters).With(query.StatusFilter(params))
	page, err := s.districtRepo.List(filter, query.ParsePage(params))
	if err != nil {
		log.Printf("ListDistricts error: %v", err)
		return nil, apiError.TranslateStoreError(err, "District")
	}
	return &page, nil
}

func (s *districtService) GetDistrict(id uint) (*models.District, error) {
	district, err := s.districtRepo.FindByID(id)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "District")
	}
	return district, nil
}

func (s *districtService) CreateDistrict(req *models.CreateDistrictRequest) (*models.District, error) {
	district := &models.District{Name: req.Name, Region: req.Region, Status: true}
	if err := s.districtRepo.Create(district); err != nil {
		log.Printf("CreateDistrict error: %v", err)
		return nil, apiError.TranslateStoreError(err, "District")
	}
	return district, nil
}

func (s *districtService) UpdateDistrict(id uint, req *models.UpdateDistrictRequest) (*models.District, error) {
	req.Name = trimmed(req.Name)
	req.Region = trimmed(req.Region)
	if (req.Name != nil && *req.Name == "") || (req.Region != nil && *req.Region == "") {
		return nil, apiError.BadRequest("name and region cannot be empty")
	}
	district, err := s.districtRepo.Update(id, req)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "District")
	}
	return district, nil
}

func (s *districtService) DeleteDistrict(id uint) error {
	if err := s.districtRepo.Delete(id); err != nil {
		return apiError.TranslateStoreError(err, "District")
	}
	return nil
}
