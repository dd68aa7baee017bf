package services

import (
	"log"

	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	apiError "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
)

type StatisticsService interface {
	GetStatistics() (*models.Statistics, error)
}

type statisticsService struct {
	Config         *config.Config
	statisticsRepo db.StatisticsRepository
}

func NewStatisticsService(statisticsRepo db.StatisticsRepository, conf *config.Config) StatisticsService {
	return &statisticsService{Config: conf, statisticsRepo: statisticsRepo}
}

func (s *statisticsService) GetStatistics() (*models.Statistics, error) {
	stats, err := s.statisticsRepo.Totals()
	if err != nil {
		log.Printf("GetStatistics error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return stats, nil
}
