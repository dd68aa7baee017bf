package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.RegisterRequest
		if err := decode(c, &request); err != nil {
			response.HandleErrors(c, err)
			return
		}
		user, err := s.AuthService.SignupUser(c.Request.Context(), &request)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "signup successful", http.StatusCreated, user.Response(), nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := decode(c, &loginRequest); err != nil {
			response.HandleErrors(c, err)
			return
		}
		userResponse, err := s.AuthService.LoginUser(&loginRequest)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "login successful", http.StatusOK, userResponse, nil)
	}
}

// handleVerify answers 200 for any request that got past Authorize.
func (s *Server) handleVerify() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := c.Get("user")
		u, ok := user.(*models.User)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}
		response.JSON(c, "token is valid", http.StatusOK, u.Response(), nil)
	}
}

func (s *Server) handleShowProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := currentUserID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		user, err := s.AuthService.GetUserProfile(userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "User profile retrieved successfully", http.StatusOK, user.Response(), nil)
	}
}
