package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/db"
	"github.com/techagentng/citizenrate/mailingservices"
	"github.com/techagentng/citizenrate/services"
)

// Server holds the application's collaborators.
type Server struct {
	Config             *config.Config
	DB                 *db.GormDB
	Mail               mailingservices.Mailer
	AuthRepository     db.AuthRepository
	AuthService        services.AuthService
	InstitutionService services.InstitutionService
	NomineeService     services.NomineeService
	PositionService    services.PositionService
	DistrictService    services.DistrictService
	CategoryService    services.CategoryService
	LeaderboardService services.LeaderboardService
	CommentService     services.CommentService
	StatisticsService  services.StatisticsService
}

// New wires repositories and services over an open database.
func New(conf *config.Config, gormDB *db.GormDB, mail mailingservices.Mailer) *Server {
	authRepo := db.NewAuthRepo(gormDB)
	institutionRepo := db.NewInstitutionRepo(gormDB)
	nomineeRepo := db.NewNomineeRepo(gormDB)
	ratingRepo := db.NewRatingRepo(gormDB)
	categoryRepo := db.NewCategoryRepo(gormDB)

	return &Server{
		Config:             conf,
		DB:                 gormDB,
		Mail:               mail,
		AuthRepository:     authRepo,
		AuthService:        services.NewAuthService(authRepo, mail, conf),
		InstitutionService: services.NewInstitutionService(institutionRepo, ratingRepo, categoryRepo, conf),
		NomineeService:     services.NewNomineeService(nomineeRepo, ratingRepo, categoryRepo, conf),
		PositionService:    services.NewPositionService(db.NewPositionRepo(gormDB), conf),
		DistrictService:    services.NewDistrictService(db.NewDistrictRepo(gormDB), conf),
		CategoryService:    services.NewCategoryService(categoryRepo, conf),
		LeaderboardService: services.NewLeaderboardService(institutionRepo, nomineeRepo, ratingRepo, conf),
		CommentService:     services.NewCommentService(db.NewCommentRepo(gormDB), conf),
		StatisticsService:  services.NewStatisticsService(db.NewStatisticsRepo(gormDB), conf),
	}
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Start() {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Port),
		Handler:      s.setupRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server started on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
