package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	errs "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/server/response"
	"github.com/techagentng/citizenrate/services/jwt"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID tags every request with an id, reusing the caller's when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := getTokenFromHeader(c)
		if accessToken == "" {
			respondAndAbort(c, http.StatusUnauthorized, errs.ErrUnauthorized)
			return
		}

		accessClaims, err := jwt.ValidateAndGetClaims(accessToken, s.Config.JWTSecret)
		if err != nil {
			respondAndAbort(c, http.StatusUnauthorized, errs.ErrUnauthorized)
			return
		}
		userID, err := jwt.UserID(accessClaims)
		if err != nil {
			respondAndAbort(c, http.StatusUnauthorized, errs.ErrUnauthorized)
			return
		}

		user, err := s.AuthRepository.FindUserByID(userID)
		if err != nil {
			apiErr := errs.TranslateStoreError(err, "User")
			if apiErr.Status == http.StatusNotFound {
				apiErr = errs.ErrUnauthorized
			}
			respondAndAbort(c, apiErr.Status, apiErr)
			return
		}

		c.Set("user", user)
		c.Set("userID", userID)
		c.Set("access_token", accessToken)
		c.Next()
	}
}

// RequireAdmin must run after Authorize.
func (s *Server) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.Get("user")
		if u, isUser := user.(*models.User); !ok || !isUser || !u.IsAdmin() {
			respondAndAbort(c, http.StatusForbidden, errs.ErrForbidden)
			return
		}
		c.Next()
	}
}

// respondAndAbort calls response.JSON and aborts the Context
func respondAndAbort(c *gin.Context, status int, e *errs.Error) {
	response.JSON(c, "", status, nil, e)
	c.Abort()
}

// getTokenFromHeader returns the token string in the authorization header
func getTokenFromHeader(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}
