package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/server/response"
	"github.com/techagentng/citizenrate/services"
)

func (s *Server) handleListInstitutions() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := s.InstitutionService.ListInstitutions(c.Request.URL.Query())
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, page, nil)
	}
}

func (s *Server) handleGetInstitution() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		institution, err := s.InstitutionService.GetInstitution(id)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, institution, nil)
	}
}

func (s *Server) handleCreateInstitution() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateInstitutionRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		institution, err := s.InstitutionService.CreateInstitution(&req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusCreated, institution, nil)
	}
}

func (s *Server) handleUpdateInstitution() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		var req models.UpdateInstitutionRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		institution, err := s.InstitutionService.UpdateInstitution(id, &req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, institution, nil)
	}
}

func (s *Server) handleDeleteInstitution() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		if err := s.InstitutionService.DeleteInstitution(id); err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Institution deleted successfully", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleRateInstitution() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		userID, err := currentUserID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		body, err := c.GetRawData()
		if err != nil {
			response.HandleErrors(c, services.ErrEmptyRatings)
			return
		}
		inputs, err := services.DecodeRatings(body)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		ratings, err := s.InstitutionService.RateInstitution(id, userID, inputs)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusCreated, ratings, nil)
	}
}

func (s *Server) handleInstitutionStatistics() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		stats, err := s.InstitutionService.InstitutionStatistics(id)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, stats, nil)
	}
}
