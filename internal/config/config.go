package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/stockroom-app/inventory/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	// PostgreSQL is used when DBHost is set, SQLite in DataDir otherwise
	DBHost          string
	DBPort          int
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	DBMaxOpenConns  int
	DBWatchInterval time.Duration
	DataDir         string

	Port             int
	AdminPassword    string
	SessionSecret    string
	CORSAllowOrigins []string
	EnablePprof      bool
}

var ErrInvalid = errors.New("invalid configuration")

// Load reads the configuration. Variables from a .env file in the working
// directory are loaded first if the file exists.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("error reading .env file: %w", err)
	}

	c := Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_DATABASE", os.Getenv("DB_NAME")),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DataDir:       getEnv("DATA_DIR", "data"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		EnablePprof:   getEnvAsBool("ENABLE_PPROF"),
	}

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.CORSAllowOrigins = append(c.CORSAllowOrigins, origin)
			}
		}
	}

	if c.DBPort, err = getEnvAsInt("DB_PORT", 5432); err != nil {
		return Config{}, err
	}

	if c.DBMaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return Config{}, err
	}

	if c.Port, err = getEnvAsInt("PORT", 3000); err != nil {
		return Config{}, err
	}

	if c.DBWatchInterval, err = getEnvAsDuration("DB_WATCH_INTERVAL", 30*time.Second); err != nil {
		return Config{}, err
	}

	// Sessions only need to survive as long as the process when no
	// secret is configured
	if c.SessionSecret == "" {
		log.Warn().Msg("SESSION_SECRET is not set, sessions are invalidated on restart")
		c.SessionSecret = uuid.NewString()
	}

	if c.AdminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD is not set, categories cannot be deleted")
	}

	return c, nil
}

// UsePostgres reports if PostgreSQL is configured.
func (c Config) UsePostgres() bool {
	return c.DBHost != ""
}

// Dialector returns the dialector for the configured database.
//
// For SQLite, the data directory is created if it does not exist.
func (c Config) Dialector() (gorm.Dialector, error) {
	if c.UsePostgres() {
		return postgres.Open(c.postgresDSN()), nil
	}

	err := os.MkdirAll(c.DataDir, 0o750)
	if err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	return models.SQLite(filepath.Join(c.DataDir, "inventory.db")), nil
}

// Pool returns the connection pool configuration. SQLite only allows one
// writer, so it uses a single connection.
func (c Config) Pool() models.PoolConfig {
	if !c.UsePostgres() {
		return models.PoolConfig{MaxOpenConns: 1}
	}

	return models.PoolConfig{
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxOpenConns,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) postgresDSN() string {
	parts := []string{
		"host=" + c.DBHost,
		fmt.Sprintf("port=%d", c.DBPort),
		"sslmode=" + c.DBSSLMode,
	}

	if c.DBUser != "" {
		parts = append(parts, "user="+c.DBUser)
	}

	if c.DBPassword != "" {
		parts = append(parts, "password="+c.DBPassword)
	}

	if c.DBName != "" {
		parts = append(parts, "dbname="+c.DBName)
	}

	return strings.Join(parts, " ")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string) bool {
	value := strings.ToLower(os.Getenv(key))
	return value == "true" || value == "1"
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %q", ErrInvalid, key, value)
	}
	return result, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	result, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration like 30s, got %q", ErrInvalid, key, value)
	}
	return result, nil
}
