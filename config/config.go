package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env  string `envconfig:"ENV" default:"dev"`
	Port string `envconfig:"PORT" default:"8080"`

	// Auth
	SecretKey      string        `envconfig:"SECRET_KEY"`
	AccessTokenTTL time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"1h"`
	BcryptCost     int           `envconfig:"BCRYPT_COST" default:"10"`

	// DB
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBUser      string `envconfig:"DB_USER"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"recipe.db"`
	TokenDBPath string `envconfig:"TOKEN_DB_PATH" default:"token_blacklist.db"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"false"`

	// Uploaded recipe images
	MediaRoot string `envconfig:"MEDIA_ROOT" default:"media"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// RequireSecret fails when no JWT signing key is configured.
// migrations や createsuperuser はトークンを発行しないため、API サーバーだけが呼ぶ
func (c *Config) RequireSecret() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	return nil
}

// UsePostgres reports whether a PostgreSQL database is configured.
// Without DB_NAME the service falls back to SQLite.
func (c *Config) UsePostgres() bool {
	return c.DBName != ""
}

func (c *Config) PostgresDSN() string {
	// 本番環境ではsslmode=require、それ以外はsslmode=disable
	sslmode := "disable"
	if c.Env == "prod" {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		sslmode,
	)
}
