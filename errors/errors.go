package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Error is an error that knows which HTTP status it maps to.
type Error struct {
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns an *Error carrying the given message and status code
func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

var (
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("Unauthorized", http.StatusUnauthorized)
	ErrForbidden           = New("Forbidden", http.StatusForbidden)
	ErrNotFound            = New("not found", http.StatusNotFound)
	ErrConflict            = New("conflict", http.StatusConflict)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
	ErrTooManyRequests     = New("Too many requests. Try again later.", http.StatusTooManyRequests)

	InActiveUserError = errors.New("user is inactive")
)

// BadRequest builds a validation-class error.
func BadRequest(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...), http.StatusBadRequest)
}

// NotFound builds a 404 error like "Institution not found".
func NotFound(entity string) *Error {
	return New(entity+" not found", http.StatusNotFound)
}

// GetUniqueContraintError turns a duplicate-key failure into a 400 with a readable message.
func GetUniqueContraintError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return New(err.Error(), http.StatusBadRequest)
}

// TranslateStoreError maps gorm errors onto the API taxonomy. Anything it does not
// recognise becomes a plain 500 so store details never reach the client.
func TranslateStoreError(err error, entity string) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return New(fmt.Sprintf("A %s with this name already exists", lower(entity)), http.StatusConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return New("Referenced record does not exist", http.StatusBadRequest)
	default:
		return ErrInternalServerError
	}
}

// ErrorHandler is the rate limiter's rejection handler.
func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", fmt.Sprintf("%.0f", time.Until(info.ResetTime).Seconds()))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": ErrTooManyRequests.Message})
}

func lower(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
