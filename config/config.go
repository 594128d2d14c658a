package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the API and the seeder read from the environment.
type Config struct {
	Env      string
	HTTPPort string

	DBDriver string // mysql | postgres
	DBDSN    string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
	CookieSecure       bool
	CORSOrigins        string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	SeedAdminEmail    string
	SeedAdminPassword string
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:      GetEnv("APP_ENV", "development"),
		HTTPPort: GetEnv("HTTP_PORT", "3000"),

		DBDriver: strings.ToLower(GetEnv("DB_DRIVER", "mysql")),
		DBDSN:    GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/hr_inventory?charset=utf8mb4&parseTime=True&loc=Local"),

		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:     GetEnvAsDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		RefreshTokenTTL:    GetEnvAsDuration("REFRESH_TOKEN_TTL", 10*24*time.Hour),
		CookieSecure:       GetEnvAsBool("COOKIE_SECURE", true),
		CORSOrigins:        GetEnv("CORS_ORIGINS", "*"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     GetEnv("SMTP_FROM", "no-reply@hrims.local"),

		SeedAdminEmail:    GetEnv("SEED_ADMIN_EMAIL", "admin@hrms.com"),
		SeedAdminPassword: GetEnv("SEED_ADMIN_PASSWORD", "admin123"),
	}

	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return cfg, errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET are required")
	}
	if cfg.DBDriver != "mysql" && cfg.DBDriver != "postgres" {
		return cfg, errors.New("DB_DRIVER must be mysql or postgres")
	}
	return cfg, nil
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsDuration accepts Go durations ("15m") or a bare number of seconds.
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
