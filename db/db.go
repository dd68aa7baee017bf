package db

import (
	"fmt"
	"log"

	"github.com/techagentng/citizenrate/config"
	"github.com/techagentng/citizenrate/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

// Connect opens the postgres connection without touching the schema.
func Connect(c *config.Config) *GormDB {
	return &GormDB{DB: getPostgresDB(c)}
}

// NewGormDB wraps an already opened connection.
func NewGormDB(db *gorm.DB) *GormDB {
	return &GormDB{DB: db}
}

// GormConfig is shared by every connection so store errors are translated the same way.
func GormConfig(c *config.Config) *gorm.Config {
	gormConfig := &gorm.Config{TranslateError: true}
	if c != nil && !c.IsProd() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	return gormConfig
}

func getPostgresDB(c *config.Config) *gorm.DB {
	log.Printf("Connecting to postgres at %s:%d/%s", c.PostgresHost, c.PostgresPort, c.PostgresDB)
	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d TimeZone=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresTimeZone)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN: postgresDSN,
	}), GormConfig(c))
	if err != nil {
		log.Fatal(err)
	}

	return gormDB
}

// Migrate creates or updates every table. Parents are listed before children.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Institution{},
		&models.Position{},
		&models.District{},
		&models.RatingCategory{},
		&models.InstitutionRatingCategory{},
		&models.Nominee{},
		&models.NomineeRating{},
		&models.InstitutionRating{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}
	return nil
}
