package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
	"gorm.io/gorm"
)

var positionColumns = Columns{
	"name":      "positions.name",
	"status":    "positions.status",
	"createdAt": "positions.created_at",
}

var districtColumns = Columns{
	"name":      "districts.name",
	"region":    "districts.region",
	"status":    "districts.status",
	"createdAt": "districts.created_at",
}

type PositionRepository interface {
	List(filter query.And, page query.Page) (models.Page[models.Position], error)
	FindByID(id uint) (*models.Position, error)
	Create(position *models.Position) error
	Update(id uint, req *models.UpdatePositionRequest) (*models.Position, error)
	Delete(id uint) error
}

type DistrictRepository interface {
	List(filter query.And, page query.Page) (models.Page[models.District], error)
	FindByID(id uint) (*models.District, error)
	Create(district *models.District) error
	Update(id uint, req *models.UpdateDistrictRequest) (*models.District, error)
	Delete(id uint) error
}

type positionRepo struct {
	DB *gorm.DB
}

type districtRepo struct {
	DB *gorm.DB
}

func NewPositionRepo(db *GormDB) PositionRepository {
	return &positionRepo{db.DB}
}

func NewDistrictRepo(db *GormDB) DistrictRepository {
	return &districtRepo{db.DB}
}

func newestFirst(table string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order(table + ".created_at DESC").Order(table + ".id DESC")
	}
}

func (r *positionRepo) List(filter query.And, page query.Page) (models.Page[models.Position], error) {
	q := ApplyPredicate(r.DB.Model(&models.Position{}), filter, positionColumns)
	return Paginate[models.Position](q, page, newestFirst("positions"))
}

func (r *positionRepo) FindByID(id uint) (*models.Position, error) {
	var position models.Position
	if err := r.DB.Preload("Nominees").First(&position, id).Error; err != nil {
		return nil, errors.Wrap(err, "find position")
	}
	return &position, nil
}

func (r *positionRepo) Create(position *models.Position) error {
	return errors.Wrap(r.DB.Create(position).Error, "create position")
}

func (r *positionRepo) Update(id uint, req *models.UpdatePositionRequest) (*models.Position, error) {
	var position models.Position
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, &position, id, lockUpdate, "Position"); err != nil {
			return err
		}
		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Status != nil {
			deps, err := nomineeDependents(tx, "position_id", id)
			if err != nil {
				return err
			}
			if err := guardError(models.CanChangeStatus("position", position.Status, *req.Status, deps)); err != nil {
				return err
			}
			updates["status"] = *req.Status
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&position).Updates(updates).Error; err != nil {
			return errors.Wrap(err, "update position")
		}
		return errors.Wrap(tx.First(&position, id).Error, "reload position")
	})
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *positionRepo) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var position models.Position
		if err := lockRow(tx, &position, id, lockUpdate, "Position"); err != nil {
			return err
		}
		deps, err := nomineeDependents(tx, "position_id", id)
		if err != nil {
			return err
		}
		if err := guardError(models.CanDeleteReference("position", deps)); err != nil {
			return err
		}
		return errors.Wrap(tx.Delete(&position).Error, "delete position")
	})
}

func (r *districtRepo) List(filter query.And, page query.Page) (models.Page[models.District], error) {
	q := ApplyPredicate(r.DB.Model(&models.District{}), filter, districtColumns)
	return Paginate[models.District](q, page, newestFirst("districts"))
}

func (r *districtRepo) FindByID(id uint) (*models.District, error) {
	var district models.District
	if err := r.DB.Preload("Nominees").First(&district, id).Error; err != nil {
		return nil, errors.Wrap(err, "find district")
	}
	return &district, nil
}

func (r *districtRepo) Create(district *models.District) error {
	return errors.Wrap(r.DB.Create(district).Error, "create district")
}

func (r *districtRepo) Update(id uint, req *models.UpdateDistrictRequest) (*models.District, error) {
	var district models.District
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, &district, id, lockUpdate, "District"); err != nil {
			return err
		}
		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Region != nil {
			updates["region"] = *req.Region
		}
		if req.Status != nil {
			deps, err := nomineeDependents(tx, "district_id", id)
			if err != nil {
				return err
			}
			if err := guardError(models.CanChangeStatus("district", district.Status, *req.Status, deps)); err != nil {
				return err
			}
			updates["status"] = *req.Status
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&district).Updates(updates).Error; err != nil {
			return errors.Wrap(err, "update district")
		}
		return errors.Wrap(tx.First(&district, id).Error, "reload district")
	})
	if err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *districtRepo) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var district models.District
		if err := lockRow(tx, &district, id, lockUpdate, "District"); err != nil {
			return err
		}
		deps, err := nomineeDependents(tx, "district_id", id)
		if err != nil {
			return err
		}
		if err := guardError(models.CanDeleteReference("district", deps)); err != nil {
			return err
		}
		return errors.Wrap(tx.Delete(&district).Error, "delete district")
	})
}
