package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
	"gorm.io/gorm"
)

var commentColumns = Columns{
	"nomineeId":     "comments.nominee_id",
	"institutionId": "comments.institution_id",
	"userId":        "comments.user_id",
	"createdAt":     "comments.created_at",
}

type CommentRepository interface {
	Create(comment *models.Comment) error
	List(filter query.And, page query.Page) (models.Page[models.Comment], error)
}

type commentRepo struct {
	DB *gorm.DB
}

func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

func commentAuthor(tx *gorm.DB) *gorm.DB {
	return tx.Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "image", "role", "created_at", "updated_at")
	})
}

// Create stores a comment against the nominee or institution it names.
func (r *commentRepo) Create(comment *models.Comment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if comment.NomineeID != nil {
			err = lockRow(tx, &models.Nominee{}, *comment.NomineeID, lockShare, "Nominee")
		} else if comment.InstitutionID != nil {
			err = lockRow(tx, &models.Institution{}, *comment.InstitutionID, lockShare, "Institution")
		}
		if err != nil {
			return err
		}
		if err := tx.Omit("User", "Nominee", "Institution").Create(comment).Error; err != nil {
			return errors.Wrap(err, "create comment")
		}
		return errors.Wrap(commentAuthor(tx).First(comment, comment.ID).Error, "reload comment")
	})
}

func (r *commentRepo) List(filter query.And, page query.Page) (models.Page[models.Comment], error) {
	q := ApplyPredicate(r.DB.Model(&models.Comment{}), filter, commentColumns)
	return Paginate[models.Comment](q, page, func(tx *gorm.DB) *gorm.DB {
		return newestFirst("comments")(commentAuthor(tx))
	})
}
