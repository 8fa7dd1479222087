package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds MySQL connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig selects and configures the upload storage backend.
// Backend is "local" (content directory on disk) or "minio" (S3-compatible
// object store).
type StorageConfig struct {
	Backend        string
	ContentDir     string
	PlaceholderURL string
	MinIO          MinIOConfig
}

// MinIOConfig holds object storage settings for the minio backend.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// LogConfig holds structured-logging settings. File output (with rotation)
// is enabled only when Path is non-empty.
type LogConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port     string
	Database DatabaseConfig
	Storage  StorageConfig
	Log      LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Host:               getEnv("MYSQL_HOST", "localhost"),
			Port:               getEnv("MYSQL_PORT", "3306"),
			User:               getEnv("MYSQL_USER", "root"),
			Password:           getEnv("MYSQL_PASSWORD", ""),
			Name:               getEnv("MYSQL_DATABASE", "shipdocs"),
			MaxOpenConns:       getEnvInt("MYSQL_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("MYSQL_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("MYSQL_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Backend:        getEnv("STORAGE_BACKEND", "local"),
			ContentDir:     getEnv("CONTENT_DIR", "public/uploads/documents_gallery"),
			PlaceholderURL: getEnv("PLACEHOLDER_IMAGE_URL", "https://picsum.photos/seed/placeholder/920/600"),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Path:       getEnv("LOG_PATH", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_COMPRESS", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
