package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/server/response"
)

func (s *Server) handleListNomineeCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.CategoryService.ListNomineeCategories()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, categories, nil)
	}
}

func (s *Server) handleListInstitutionCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.CategoryService.ListInstitutionCategories()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, categories, nil)
	}
}

func (s *Server) handleCreateNomineeCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCategoryRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		category, err := s.CategoryService.CreateNomineeCategory(&req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusCreated, category, nil)
	}
}

func (s *Server) handleCreateInstitutionCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCategoryRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		category, err := s.CategoryService.CreateInstitutionCategory(&req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusCreated, category, nil)
	}
}

func (s *Server) handleListComments() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := s.CommentService.ListComments(c.Request.URL.Query())
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, page, nil)
	}
}

func (s *Server) handleCreateComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := currentUserID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		var req models.CreateCommentRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		comment, err := s.CommentService.CreateComment(userID, &req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusCreated, comment, nil)
	}
}

// Leaderboards take no parameters.
func (s *Server) handleTopInstitutions() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := s.LeaderboardService.TopInstitutions()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, entries, nil)
	}
}

func (s *Server) handleTopNominees() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := s.LeaderboardService.TopNominees()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, entries, nil)
	}
}

func (s *Server) handleGetStatistics() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.StatisticsService.GetStatistics()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, stats, nil)
	}
}
