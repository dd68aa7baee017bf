package services

import (
	"log"
	"net/url"

	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	apiError "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
)

var commentFilters = query.Options{ExactFields: []string{"nomineeId", "institutionId", "userId"}}

// CommentService interface
type CommentService interface {
	CreateComment(userID uint, req *models.CreateCommentRequest) (*models.Comment, error)
	ListComments(params url.Values) (*models.Page[models.Comment], error)
}

type commentService struct {
	Config      *config.Config
	commentRepo db.CommentRepository
}

func NewCommentService(commentRepo db.CommentRepository, conf *config.Config) CommentService {
	return &commentService{Config: conf, commentRepo: commentRepo}
}

// CreateComment attaches a comment to exactly one nominee or institution.
func (s *commentService) CreateComment(userID uint, req *models.CreateCommentRequest) (*models.Comment, error) {
	if (req.NomineeID == nil) == (req.InstitutionID == nil) {
		return nil, apiError.BadRequest("A comment must reference either a nominee or an institution")
	}
	comment := &models.Comment{
		Content:       req.Content,
		UserID:        userID,
		NomineeID:     req.NomineeID,
		InstitutionID: req.InstitutionID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		log.Printf("CreateComment error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Comment")
	}
	return comment, nil
}

func (s *commentService) ListComments(params url.Values) (*models.Page[models.Comment], error) {
	filter := coerceIDs(query.Build(params, commentFilters), commentFilters.ExactFields...)
	page, err := s.commentRepo.List(filter, query.ParsePage(params))
	if err != nil {
		log.Printf("ListComments error: %v", err)
		return nil, apiError.TranslateStoreError(err, "Comment")
	}
	return &page, nil
}
