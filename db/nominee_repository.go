package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
	"gorm.io/gorm"
)

var nomineeColumns = Columns{
	"name":          "nominees.name",
	"status":        "nominees.status",
	"createdAt":     "nominees.created_at",
	"position":      "positions.name",
	"institution":   "institutions.name",
	"district":      "districts.name",
	"positionId":    "nominees.position_id",
	"institutionId": "nominees.institution_id",
	"districtId":    "nominees.district_id",
}

type NomineeRepository interface {
	List(filter query.And, page query.Page, order query.RatingOrder) (models.Page[models.Nominee], error)
	ListActive() ([]models.Nominee, error)
	FindByID(id uint) (*models.Nominee, error)
	Create(nominee *models.Nominee) error
	Update(id uint, req *models.UpdateNomineeRequest) (*models.Nominee, error)
	Delete(id uint) error
}

type nomineeRepo struct {
	DB *gorm.DB
}

func NewNomineeRepo(db *GormDB) NomineeRepository {
	return &nomineeRepo{db.DB}
}

func withParents(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Position").Preload("Institution").Preload("District")
}

func (r *nomineeRepo) List(filter query.And, page query.Page, order query.RatingOrder) (models.Page[models.Nominee], error) {
	q := r.DB.Model(&models.Nominee{}).
		Joins("LEFT JOIN positions ON positions.id = nominees.position_id").
		Joins("LEFT JOIN institutions ON institutions.id = nominees.institution_id").
		Joins("LEFT JOIN districts ON districts.id = nominees.district_id")
	q = ApplyPredicate(q, filter, nomineeColumns)
	return Paginate[models.Nominee](q, page, func(tx *gorm.DB) *gorm.DB {
		tx = withParents(tx.Select("nominees.*"))
		return orderByRatings(tx, order, "nominee_ratings", "nominee_id", "nominees")
	})
}

func (r *nomineeRepo) ListActive() ([]models.Nominee, error) {
	var nominees []models.Nominee
	err := withParents(r.DB).Where("status = ?", true).Order("id ASC").Find(&nominees).Error
	return nominees, errors.Wrap(err, "list active nominees")
}

func (r *nomineeRepo) FindByID(id uint) (*models.Nominee, error) {
	var nominee models.Nominee
	err := withParents(r.DB).
		Preload("Ratings", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at DESC") }).
		Preload("Ratings.RatingCategory").
		First(&nominee, id).Error
	if err != nil {
		return nil, errors.Wrap(err, "find nominee")
	}
	return &nominee, nil
}

// lockParents share-locks the rows a nominee points at, so none of them can be
// deactivated or deleted until the nominee write commits.
func lockParents(tx *gorm.DB, positionID, institutionID, districtID uint) error {
	if err := lockRow(tx, &models.Position{}, positionID, lockShare, "Position"); err != nil {
		return err
	}
	if err := lockRow(tx, &models.Institution{}, institutionID, lockShare, "Institution"); err != nil {
		return err
	}
	return lockRow(tx, &models.District{}, districtID, lockShare, "District")
}

func (r *nomineeRepo) Create(nominee *models.Nominee) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockParents(tx, nominee.PositionID, nominee.InstitutionID, nominee.DistrictID); err != nil {
			return err
		}
		if err := tx.Omit("Position", "Institution", "District").Create(nominee).Error; err != nil {
			return errors.Wrap(err, "create nominee")
		}
		return errors.Wrap(withParents(tx).First(nominee, nominee.ID).Error, "reload nominee")
	})
}

func (r *nomineeRepo) Update(id uint, req *models.UpdateNomineeRequest) (*models.Nominee, error) {
	var nominee models.Nominee
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, &nominee, id, lockUpdate, "Nominee"); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		positionID, institutionID, districtID := nominee.PositionID, nominee.InstitutionID, nominee.DistrictID
		if req.PositionID != nil {
			positionID = *req.PositionID
			updates["position_id"] = positionID
		}
		if req.InstitutionID != nil {
			institutionID = *req.InstitutionID
			updates["institution_id"] = institutionID
		}
		if req.DistrictID != nil {
			districtID = *req.DistrictID
			updates["district_id"] = districtID
		}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Image != nil {
			updates["image"] = *req.Image
		}
		if req.Evidence != nil {
			updates["evidence"] = *req.Evidence
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if len(updates) == 0 {
			return errors.Wrap(withParents(tx).First(&nominee, id).Error, "reload nominee")
		}

		if err := lockParents(tx, positionID, institutionID, districtID); err != nil {
			return err
		}
		if err := tx.Model(&nominee).Omit("Position", "Institution", "District").Updates(updates).Error; err != nil {
			return errors.Wrap(err, "update nominee")
		}
		return errors.Wrap(withParents(tx).First(&nominee, id).Error, "reload nominee")
	})
	if err != nil {
		return nil, err
	}
	return &nominee, nil
}

// Delete refuses while the nominee still owns ratings or comments; children are never cascaded.
func (r *nomineeRepo) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var nominee models.Nominee
		if err := lockRow(tx, &nominee, id, lockUpdate, "Nominee"); err != nil {
			return err
		}
		var deps models.Dependents
		var err error
		if deps.Ratings, err = countWhere(tx, &models.NomineeRating{}, "nominee_id", id); err != nil {
			return err
		}
		if deps.Comments, err = countWhere(tx, &models.Comment{}, "nominee_id", id); err != nil {
			return err
		}
		if err := guardError(models.CanDeleteNominee(deps)); err != nil {
			return err
		}
		return errors.Wrap(tx.Delete(&nominee).Error, "delete nominee")
	})
}
