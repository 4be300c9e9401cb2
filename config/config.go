package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	JWTSecret       string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	DBHost          string
	DBPort          string
	DBUser          string
	DBPass          string
	DBName          string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	RedisDB         int
	MinioHost       string
	MinioPort       string
	MinioUsername   string
	MinioPassword   string
	BucketName      string
	PresignExpiry   time.Duration
	LoginRatePerMin int
	LoginRateBurst  int
	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	SMTPTLS         bool
	SMTPStartTLS    bool
}

var AppConfig Config

// getEnv returns the environment value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// InitConfig loads configuration from the environment.
func InitConfig() {
	AppConfig = Config{
		JWTSecret:       getEnv("JWT_SECRET", "l=ax+b"),
		RefreshSecret:   getEnv("REFRESH_SECRET", "l=ax+2b"),
		AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "root"),
		DBPass:          getEnv("DB_PASS", "root"),
		DBName:          getEnv("DB_NAME", "VidTube"),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         0,
		MinioHost:       getEnv("MINIO_HOST", "localhost"),
		MinioPort:       getEnv("MINIO_PORT", "9000"),
		MinioUsername:   getEnv("MINIO_USERNAME", "minioadmin"),
		MinioPassword:   getEnv("MINIO_PASSWORD", "minioadmin"),
		BucketName:      getEnv("BUCKET_NAME", "vidtube"),
		PresignExpiry:   getEnvDuration("PRESIGN_EXPIRY", 24*time.Hour),
		LoginRatePerMin: getEnvInt("LOGIN_RATE_PER_MIN", 10),
		LoginRateBurst:  getEnvInt("LOGIN_RATE_BURST", 5),
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnv("SMTP_PORT", ""),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPass:        getEnv("SMTP_PASS", ""),
		SMTPFrom:        getEnv("SMTP_FROM", ""),
		SMTPTLS:         getEnvBool("SMTP_TLS", false),
		SMTPStartTLS:    getEnvBool("SMTP_STARTTLS", false),
	}
}
