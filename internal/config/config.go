package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	DBTimeZone string
	SQLitePath string

	JWTSecret       string
	JWTExpiresDays  int
	AdminSecretCode string

	UploadDir  string
	MaxCVBytes int64

	RedisURL    string
	RabbitMQURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPSender   string

	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Load reads the process environment. Call godotenv.Load beforehand to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Port:    get("PORT", "8080"),
		GinMode: get("GIN_MODE", "release"),

		DBDriver:   strings.ToLower(get("DB_DRIVER", "postgres")),
		DBHost:     get("DB_HOST", "localhost"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", ""),
		DBName:     get("DB_NAME", "jobportal"),
		DBPort:     get("DB_PORT", "5432"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),
		DBTimeZone: get("DB_TIMEZONE", "UTC"),
		SQLitePath: get("SQLITE_PATH", "jobportal.db"),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		AdminSecretCode: os.Getenv("ADMIN_SECRET_CODE"),

		UploadDir: get("UPLOAD_DIR", "uploads/cvs"),

		RedisURL:    os.Getenv("REDIS_URL"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     get("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPSender:   os.Getenv("SMTP_SENDER"),
	}

	var err error
	if cfg.JWTExpiresDays, err = getInt("JWT_EXPIRES_DAYS", 30); err != nil {
		return Config{}, err
	}
	if cfg.LoginRateLimit, err = getInt("LOGIN_RATE_LIMIT", 10); err != nil {
		return Config{}, err
	}
	maxBytes, err := getInt("MAX_CV_BYTES", 5*1024*1024)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxCVBytes = int64(maxBytes)

	window, err := time.ParseDuration(get("LOGIN_RATE_WINDOW", "1m"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOGIN_RATE_WINDOW: %w", err)
	}
	cfg.LoginRateWindow = window

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("missing env: JWT_SECRET")
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

// TokenTTL is the lifetime of issued bearer tokens.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s "+
			"application_name=jobportal TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimeZone,
	)
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return n, nil
}
