package db

import (
	"github.com/pkg/errors"
	errs "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	lockUpdate = "UPDATE"
	lockShare  = "SHARE"
)

// lockRow loads dest by id holding a row lock until the transaction ends.
// SQLite has no row locks; the driver drops the clause there.
func lockRow(tx *gorm.DB, dest interface{}, id uint, strength, entity string) error {
	err := tx.Clauses(clause.Locking{Strength: strength}).First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(entity)
	}
	return errors.Wrapf(err, "lock %s %d", entity, id)
}

// nomineeDependents counts the nominees referencing a parent through column.
func nomineeDependents(tx *gorm.DB, column string, id uint) (models.Dependents, error) {
	var deps models.Dependents
	if err := tx.Model(&models.Nominee{}).Where(column+" = ?", id).Count(&deps.Nominees).Error; err != nil {
		return deps, errors.Wrap(err, "count nominees")
	}
	if deps.Nominees == 0 {
		return deps, nil
	}
	err := tx.Model(&models.Nominee{}).Where(column+" = ? AND status = ?", id, true).Count(&deps.ActiveNominees).Error
	return deps, errors.Wrap(err, "count active nominees")
}

func countWhere(tx *gorm.DB, model interface{}, column string, id uint) (int64, error) {
	var n int64
	err := tx.Model(model).Where(column+" = ?", id).Count(&n).Error
	return n, errors.Wrap(err, "count dependents")
}

// guardError turns a refused guard into a client error.
func guardError(res models.GuardResult) error {
	if res.Allowed {
		return nil
	}
	return errs.BadRequest("%s", res.Reason)
}
