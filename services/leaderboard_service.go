package services

import (
	"log"

	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	apiError "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/services/rating"
)

const defaultLeaderboardSize = 5

// LeaderboardService ranks every active entity by mean score.
type LeaderboardService interface {
	TopInstitutions() ([]models.LeaderboardEntry, error)
	TopNominees() ([]models.LeaderboardEntry, error)
}

type leaderboardService struct {
	Config          *config.Config
	institutionRepo db.InstitutionRepository
	nomineeRepo     db.NomineeRepository
	ratingRepo      db.RatingRepository
}

func NewLeaderboardService(institutionRepo db.InstitutionRepository, nomineeRepo db.NomineeRepository, ratingRepo db.RatingRepository, conf *config.Config) LeaderboardService {
	return &leaderboardService{
		Config:          conf,
		institutionRepo: institutionRepo,
		nomineeRepo:     nomineeRepo,
		ratingRepo:      ratingRepo,
	}
}

func (s *leaderboardService) size() int {
	if s.Config == nil || s.Config.LeaderboardSize <= 0 {
		return defaultLeaderboardSize
	}
	return s.Config.LeaderboardSize
}

// rank sorts on the unrounded average; ties keep id order.
func (s *leaderboardService) rank(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	rating.SortByAverage(entries, true)
	return rating.Top(entries, s.size())
}

func leaderboardEntry(entries []rating.Entry) models.LeaderboardEntry {
	avg := rating.Average(entries)
	return models.LeaderboardEntry{
		TotalRatings:  len(entries),
		AverageRating: rating.Round2(avg),
		RawAverage:    avg,
	}
}

func (s *leaderboardService) TopInstitutions() ([]models.LeaderboardEntry, error) {
	institutions, err := s.institutionRepo.ListActive()
	if err != nil {
		log.Printf("TopInstitutions error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	ids := make([]uint, 0, len(institutions))
	for _, i := range institutions {
		ids = append(ids, i.ID)
	}
	ratings, err := s.ratingRepo.InstitutionRatings(ids...)
	if err != nil {
		log.Printf("TopInstitutions ratings error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	grouped := groupInstitutionRatings(ratings)

	entries := make([]models.LeaderboardEntry, 0, len(institutions))
	for _, i := range institutions {
		e := leaderboardEntry(rating.FromInstitutionRatings(grouped[i.ID]))
		e.ID, e.Name, e.Image, e.Status = i.ID, i.Name, i.Image, i.Status
		entries = append(entries, e)
	}
	return s.rank(entries), nil
}

func (s *leaderboardService) TopNominees() ([]models.LeaderboardEntry, error) {
	nominees, err := s.nomineeRepo.ListActive()
	if err != nil {
		log.Printf("TopNominees error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	ids := make([]uint, 0, len(nominees))
	for _, n := range nominees {
		ids = append(ids, n.ID)
	}
	ratings, err := s.ratingRepo.NomineeRatings(ids...)
	if err != nil {
		log.Printf("TopNominees ratings error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	grouped := groupNomineeRatings(ratings)

	entries := make([]models.LeaderboardEntry, 0, len(nominees))
	for _, n := range nominees {
		e := leaderboardEntry(rating.FromNomineeRatings(grouped[n.ID]))
		e.ID, e.Name, e.Image, e.Status = n.ID, n.Name, n.Image, n.Status
		if n.Position != nil {
			e.Position = n.Position.Name
		}
		if n.Institution != nil {
			e.Institution = n.Institution.Name
		}
		if n.District != nil {
			e.District = n.District.Name
		}
		entries = append(entries, e)
	}
	return s.rank(entries), nil
}
