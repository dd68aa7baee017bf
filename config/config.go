package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Debug              bool          `envconfig:"debug"`
	Port               int           `envconfig:"port" default:"8080"`
	Env                string        `envconfig:"env" default:"dev"`
	BaseUrl            string        `envconfig:"base_url"`
	PostgresHost       string        `envconfig:"postgres_host" default:"localhost"`
	PostgresPort       int           `envconfig:"postgres_port" default:"5432"`
	PostgresUser       string        `envconfig:"postgres_user"`
	PostgresPassword   string        `envconfig:"postgres_password"`
	PostgresDB         string        `envconfig:"postgres_db"`
	PostgresTimeZone   string        `envconfig:"postgres_timezone" default:"UTC"`
	JWTSecret          string        `envconfig:"jwt_secret"`
	TokenTTL           time.Duration `envconfig:"token_ttl" default:"24h"`
	MailgunApiKey      string        `envconfig:"mg_public_api_key"`
	MgDomain           string        `envconfig:"mg_domain"`
	MgEmailFrom        string        `envconfig:"email_from"`
	AllowedOrigins     []string      `envconfig:"allowed_origins"`
	RateLimitPerMinute uint          `envconfig:"rate_limit_per_minute" default:"30"`
	LeaderboardSize    int           `envconfig:"leaderboard_size" default:"5"`
}

// IsProd reports whether the service runs with production settings.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func Load() (*Config, error) {
	env := os.Getenv("GIN_MODE")
	if env != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	err := envconfig.Process("citizenrate", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
