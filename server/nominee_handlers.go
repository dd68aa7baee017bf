package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/server/response"
	"github.com/techagentng/citizenrate/services"
)

func (s *Server) handleListNominees() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := s.NomineeService.ListNominees(c.Request.URL.Query())
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, page, nil)
	}
}

func (s *Server) handleGetNominee() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		nominee, err := s.NomineeService.GetNominee(id)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, nominee, nil)
	}
}

func (s *Server) handleCreateNominee() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateNomineeRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		nominee, err := s.NomineeService.CreateNominee(&req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusCreated, nominee, nil)
	}
}

func (s *Server) handleUpdateNominee() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		var req models.UpdateNomineeRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		nominee, err := s.NomineeService.UpdateNominee(id, &req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, nominee, nil)
	}
}

func (s *Server) handleDeleteNominee() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		if err := s.NomineeService.DeleteNominee(id); err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Nominee deleted successfully", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleRateNominee() gin.HandlerFunc {
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
		ratings, err := s.NomineeService.RateNominee(id, userID, inputs)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusCreated, ratings, nil)
	}
}

func (s *Server) handleNomineeStatistics() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		stats, err := s.NomineeService.NomineeStatistics(id)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, stats, nil)
	}
}
