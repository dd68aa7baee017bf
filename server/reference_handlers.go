package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/server/response"
)

func (s *Server) handleListPositions() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := s.PositionService.ListPositions(c.Request.URL.Query())
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, page, nil)
	}
}

func (s *Server) handleGetPosition() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		position, err := s.PositionService.GetPosition(id)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, position, nil)
	}
}

func (s *Server) handleCreatePosition() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreatePositionRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		position, err := s.PositionService.CreatePosition(&req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusCreated, position, nil)
	}
}

func (s *Server) handleUpdatePosition() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		var req models.UpdatePositionRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		position, err := s.PositionService.UpdatePosition(id, &req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, position, nil)
	}
}

func (s *Server) handleDeletePosition() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		if err := s.PositionService.DeletePosition(id); err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Position deleted successfully", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleListDistricts() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := s.DistrictService.ListDistricts(c.Request.URL.Query())
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, page, nil)
	}
}

func (s *Server) handleGetDistrict() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		district, err := s.DistrictService.GetDistrict(id)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, district, nil)
	}
}

func (s *Server) handleCreateDistrict() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateDistrictRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		district, err := s.DistrictService.CreateDistrict(&req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusCreated, district, nil)
	}
}

func (s *Server) handleUpdateDistrict() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		var req models.UpdateDistrictRequest
		if err := decode(c, &req); err != nil {
			response.HandleErrors(c, err)
			return
		}
		district, err := s.DistrictService.UpdateDistrict(id, &req)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, district, nil)
	}
}

func (s *Server) handleDeleteDistrict() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		if err := s.DistrictService.DeleteDistrict(id); err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "District deleted successfully", http.StatusOK, nil, nil)
	}
}
