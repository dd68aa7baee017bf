package db

import (
	"log"
	"net/http"

	"github.com/pkg/errors"
	errs "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	IsEmailExist(email string) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	SetRole(userID uint, role string) error
}

type authRepo struct {
	DB *gorm.DB
}

func NewAuthRepo(db *GormDB) AuthRepository {
	return &authRepo{db.DB}
}

func (a *authRepo) CreateUser(user *models.User) (*models.User, error) {
	if user == nil {
		log.Println("CreateUser error: user is nil")
		return nil, errors.New("user is nil")
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := a.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.New("User already exists", http.StatusBadRequest)
		}
		log.Printf("CreateUser error: %v", err)
		return nil, errors.Wrap(err, "create user")
	}
	return user, nil
}

func (a *authRepo) IsEmailExist(email string) error {
	var count int64
	err := a.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return errs.New("User already exists", http.StatusBadRequest)
	}
	return nil
}

func (a *authRepo) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := a.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("User")
		}
		return nil, errors.Wrap(err, "error finding user by email")
	}
	return &user, nil
}

func (a *authRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := a.DB.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("User")
		}
		return nil, errors.Wrap(err, "error finding user by id")
	}
	return &user, nil
}

func (a *authRepo) SetRole(userID uint, role string) error {
	res := a.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		return errors.Wrap(res.Error, "set role")
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("User")
	}
	return nil
}
