package services

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	apiError "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/mailingservices"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/services/jwt"
	"github.com/techagentng/citizenrate/services/utils"
)

var ErrInvalidCredentials = apiError.New("invalid email or password", http.StatusUnauthorized)

// AuthService interface
type AuthService interface {
	SignupUser(ctx context.Context, request *models.RegisterRequest) (*models.User, error)
	LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, error)
	GetUserProfile(userID uint) (*models.User, error)
	CreateAdmin(request *models.RegisterRequest) (*models.User, error)
}

// authService struct
type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
	mail     mailingservices.Mailer
}

// NewAuthService instantiate an authService
func NewAuthService(authRepo db.AuthRepository, mail mailingservices.Mailer, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
		mail:     mail,
	}
}

func (a *authService) newUser(request *models.RegisterRequest, role string) (*models.User, error) {
	if err := models.ValidatePassword(request.Password); err != nil {
		return nil, apiError.BadRequest("%s", err.Error())
	}
	if err := a.authRepo.IsEmailExist(request.Email); err != nil {
		log.Printf("SignupUser error: %v", err)
		return nil, apiError.GetUniqueContraintError(err)
	}
	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Printf("error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	user, err := a.authRepo.CreateUser(&models.User{
		Name:           request.Name,
		Email:          request.Email,
		HashedPassword: hashed,
		Role:           role,
	})
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "User")
	}
	return user, nil
}

// SignupUser registers a user and sends the welcome mail. A mail failure does
// not undo the registration.
func (a *authService) SignupUser(ctx context.Context, request *models.RegisterRequest) (*models.User, error) {
	user, err := a.newUser(request, models.RoleUser)
	if err != nil {
		return nil, err
	}
	if a.mail != nil {
		if err := a.mail.SendWelcomeMessage(ctx, user.Name, user.Email); err != nil {
			log.Printf("welcome mail to %s failed: %v", user.Email, err)
		}
	}
	return user, nil
}

// CreateAdmin registers an administrator, or promotes the user owning the email.
func (a *authService) CreateAdmin(request *models.RegisterRequest) (*models.User, error) {
	existing, err := a.authRepo.FindUserByEmail(request.Email)
	if err == nil {
		if err := a.authRepo.SetRole(existing.ID, models.RoleAdmin); err != nil {
			return nil, apiError.TranslateStoreError(err, "User")
		}
		existing.Role = models.RoleAdmin
		return existing, nil
	}
	var apiErr *apiError.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		return nil, apiError.TranslateStoreError(err, "User")
	}
	return a.newUser(request, models.RoleAdmin)
}

func (a *authService) LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, error) {
	foundUser, err := a.authRepo.FindUserByEmail(loginRequest.Email)
	if err != nil {
		var apiErr *apiError.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrInvalidCredentials
		}
		log.Printf("Error finding user by email: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if err := foundUser.VerifyPassword(loginRequest.Password); err != nil {
		log.Printf("Invalid password for user %s", foundUser.Email)
		return nil, ErrInvalidCredentials
	}

	accessToken, err := jwt.GenerateToken(foundUser.ID, foundUser.Email, foundUser.Role, a.Config.JWTSecret, a.Config.TokenTTL)
	if err != nil {
		log.Printf("Error generating token for user %s: %v", foundUser.Email, err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		UserResponse: foundUser.Response(),
		AccessToken:  accessToken,
	}, nil
}

func (a *authService) GetUserProfile(userID uint) (*models.User, error) {
	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		return nil, apiError.TranslateStoreError(err, "User")
	}
	return user, nil
}
