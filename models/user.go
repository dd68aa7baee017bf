package models

import (
	"errors"

	goval "github.com/go-passwd/validator"
	"golang.org/x/crypto/bcrypt"
)

// User represents a user of the application
type User struct {
	Model
	Name           string  `json:"name" gorm:"not null"`
	Email          string  `json:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string  `json:"-" gorm:"not null"`
	Image          *string `json:"image"`
	Role           string  `json:"role" gorm:"not null;default:User"`
}

// IsAdmin reports whether the user may manage reference data.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type RegisterRequest struct {
	Name     string `json:"name" conform:"trim" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email" conform:"email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" conform:"email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image"`
	Role  string  `json:"role"`
}

type LoginResponse struct {
	UserResponse
	AccessToken string `json:"accessToken"`
}

// Response strips the credentials from u.
func (u *User) Response() UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Image: u.Image, Role: u.Role}
}

// ValidatePassword enforces the password length rules. bcrypt ignores input past 72 bytes.
func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("password cant be less than 6 characters")),
		goval.MaxLength(72, errors.New("password cant be more than 72 characters")))
	return passwordValidator.Validate(password)
}

// VerifyPassword verifies the collected password with the user's hashed password
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}
