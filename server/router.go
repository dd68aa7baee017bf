package server

import (
	"fmt"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/citizenrate/errors"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		r.Use(RequestID())
		s.defineRoutes(r)
		return r
	}

	r := gin.New()
	r.Use(RequestID())
	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] %s \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Keys[requestIDKey],
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(s.Config.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = s.Config.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))
	s.defineRoutes(r)

	return r
}

// limitRate allows RateLimitPerMinute requests per client IP. Each call has its
// own store, so routes limited by separate calls do not share a budget.
func (s *Server) limitRate() gin.HandlerFunc {
	limit := s.Config.RateLimitPerMinute
	if limit == 0 {
		limit = 30
	}
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: limit,
	})
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: errs.ErrorHandler,
		KeyFunc:      keyFunc,
	})
}

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func (s *Server) defineRoutes(router *gin.Engine) {
	apirouter := router.Group("/api/v1")
	apirouter.POST("/auth/register", s.handleSignup())
	apirouter.POST("/auth/login", s.limitRate(), s.handleLogin())

	apirouter.GET("/institutions", s.handleListInstitutions())
	apirouter.GET("/institutions/:id", s.handleGetInstitution())
	apirouter.GET("/institutions/:id/statistics", s.handleInstitutionStatistics())
	apirouter.GET("/nominees", s.handleListNominees())
	apirouter.GET("/nominees/:id", s.handleGetNominee())
	apirouter.GET("/nominees/:id/statistics", s.handleNomineeStatistics())
	apirouter.GET("/positions", s.handleListPositions())
	apirouter.GET("/positions/:id", s.handleGetPosition())
	apirouter.GET("/districts", s.handleListDistricts())
	apirouter.GET("/districts/:id", s.handleGetDistrict())
	apirouter.GET("/rating-categories", s.handleListNomineeCategories())
	apirouter.GET("/institution-rating-categories", s.handleListInstitutionCategories())
	apirouter.GET("/comments", s.handleListComments())
	apirouter.GET("/leaderboard/institutions", s.handleTopInstitutions())
	apirouter.GET("/leaderboard/nominees", s.handleTopNominees())
	apirouter.GET("/statistics", s.handleGetStatistics())

	authorized := apirouter.Group("/")
	authorized.Use(s.Authorize())
	authorized.GET("/auth/verify", s.handleVerify())
	authorized.GET("/me", s.handleShowProfile())
	limitRatings := s.limitRate()
	authorized.POST("/institutions/:id/rate", limitRatings, s.handleRateInstitution())
	authorized.POST("/nominees/:id/rate", limitRatings, s.handleRateNominee())
	authorized.POST("/comments", s.limitRate(), s.handleCreateComment())

	admin := authorized.Group("/")
	admin.Use(s.RequireAdmin())
	admin.POST("/institutions", s.handleCreateInstitution())
	admin.PATCH("/institutions/:id", s.handleUpdateInstitution())
	admin.DELETE("/institutions/:id", s.handleDeleteInstitution())
	admin.POST("/nominees", s.handleCreateNominee())
	admin.PATCH("/nominees/:id", s.handleUpdateNominee())
	admin.DELETE("/nominees/:id", s.handleDeleteNominee())
	admin.POST("/positions", s.handleCreatePosition())
	admin.PATCH("/positions/:id", s.handleUpdatePosition())
	admin.DELETE("/positions/:id", s.handleDeletePosition())
	admin.POST("/districts", s.handleCreateDistrict())
	admin.PATCH("/districts/:id", s.handleUpdateDistrict())
	admin.DELETE("/districts/:id", s.handleDeleteDistrict())
	admin.POST("/rating-categories", s.handleCreateNomineeCategory())
	admin.POST("/institution-rating-categories", s.handleCreateInstitutionCategory())
}
