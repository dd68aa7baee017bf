package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
	"gorm.io/gorm"
)

var institutionColumns = Columns{
	"name":      "institutions.name",
	"status":    "institutions.status",
	"createdAt": "institutions.created_at",
}

type InstitutionRepository interface {
	List(filter query.And, page query.Page, order query.RatingOrder) (models.Page[models.Institution], error)
	ListActive() ([]models.Institution, error)
	FindByID(id uint) (*models.Institution, error)
	Create(institution *models.Institution) error
	Update(id uint, req *models.UpdateInstitutionRequest) (*models.Institution, error)
	Delete(id uint) error
}

type institutionRepo struct {
	DB *gorm.DB
}

func NewInstitutionRepo(db *GormDB) InstitutionRepository {
	return &institutionRepo{db.DB}
}

// List pages institutions. With a rating order the rows are ordered by how many
// ratings they have; the caller refines the order within the page by average.
func (r *institutionRepo) List(filter query.And, page query.Page, order query.RatingOrder) (models.Page[models.Institution], error) {
	q := ApplyPredicate(r.DB.Model(&models.Institution{}), filter, institutionColumns)
	return Paginate[models.Institution](q, page, func(tx *gorm.DB) *gorm.DB {
		return orderByRatings(tx, order, "institution_ratings", "institution_id", "institutions")
	})
}

func (r *institutionRepo) ListActive() ([]models.Institution, error) {
	var institutions []models.Institution
	err := r.DB.Where("status = ?", true).Order("id ASC").Find(&institutions).Error
	return institutions, errors.Wrap(err, "list active institutions")
}

func (r *institutionRepo) FindByID(id uint) (*models.Institution, error) {
	var institution models.Institution
	err := r.DB.
		Preload("Ratings", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at DESC") }).
		Preload("Ratings.RatingCategory").
		Preload("Nominees").
		First(&institution, id).Error
	if err != nil {
		return nil, errors.Wrap(err, "find institution")
	}
	return &institution, nil
}

func (r *institutionRepo) Create(institution *models.Institution) error {
	return errors.Wrap(r.DB.Create(institution).Error, "create institution")
}

// Update applies a partial update. A deactivation is checked against the
// active nominees under a row lock so no nominee can slip in between.
func (r *institutionRepo) Update(id uint, req *models.UpdateInstitutionRequest) (*models.Institution, error) {
	var institution models.Institution
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, &institution, id, lockUpdate, "Institution"); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Image != nil {
			updates["image"] = *req.Image
		}
		if req.Status != nil {
			deps, err := nomineeDependents(tx, "institution_id", id)
			if err != nil {
				return err
			}
			if err := guardError(models.CanChangeStatus("institution", institution.Status, *req.Status, deps)); err != nil {
				return err
			}
			updates["status"] = *req.Status
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&institution).Updates(updates).Error; err != nil {
			return errors.Wrap(err, "update institution")
		}
		return errors.Wrap(tx.First(&institution, id).Error, "reload institution")
	})
	if err != nil {
		return nil, err
	}
	return &institution, nil
}

func (r *institutionRepo) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var institution models.Institution
		if err := lockRow(tx, &institution, id, lockUpdate, "Institution"); err != nil {
			return err
		}
		deps, err := nomineeDependents(tx, "institution_id", id)
		if err != nil {
			return err
		}
		if deps.Ratings, err = countWhere(tx, &models.InstitutionRating{}, "institution_id", id); err != nil {
			return err
		}
		if deps.Comments, err = countWhere(tx, &models.Comment{}, "institution_id", id); err != nil {
			return err
		}
		if err := guardError(models.CanDeleteInstitution(deps)); err != nil {
			return err
		}
		return errors.Wrap(tx.Delete(&institution).Error, "delete institution")
	})
}

// orderByRatings orders by rating count when a rating order is requested,
// falling back to newest first.
func orderByRatings(tx *gorm.DB, order query.RatingOrder, ratingTable, fk, table string) *gorm.DB {
	count := "(SELECT COUNT(*) FROM " + ratingTable + " WHERE " + ratingTable + "." + fk + " = " + table + ".id)"
	switch order {
	case query.RatingHigh:
		tx = tx.Order(count + " DESC")
	case query.RatingLow:
		tx = tx.Order(count + " ASC")
	}
	return tx.Order(table + ".created_at DESC").Order(table + ".id DESC")
}
