package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"whisper-batch/internal/app/storage"
)

// LoadEnv loads variables from a .env file when one exists. Missing files
// are fine; variables may be set system-wide instead.
func LoadEnv() error {
	envPaths := []string{".env", ".env.local"}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}
	return nil
}

// Provider returns the selected transcription backend name.
func Provider() string {
	if p := strings.TrimSpace(os.Getenv("WHISPER_PROVIDER")); p != "" {
		return p
	}
	return "whisper_cpp"
}

// DBBackend returns the history store backend: sqlite (default), postgres,
// or none.
func DBBackend() string {
	if b := strings.TrimSpace(os.Getenv("WHISPER_DB")); b != "" {
		return strings.ToLower(b)
	}
	return "sqlite"
}

// DBPath returns the sqlite history database path.
func DBPath() string {
	if p := strings.TrimSpace(os.Getenv("WHISPER_DB_PATH")); p != "" {
		return p
	}
	return "data/transcription.db"
}

// PostgresDSN returns the connection string for WHISPER_DB=postgres.
func PostgresDSN() string {
	return strings.TrimSpace(os.Getenv("WHISPER_PG_DSN"))
}

// MinioFromEnv returns the archive bucket configuration; ok is false when
// archiving is not configured.
func MinioFromEnv() (storage.MinioConfig, bool) {
	endpoint := strings.TrimSpace(os.Getenv("MINIO_ENDPOINT"))
	if endpoint == "" {
		return storage.MinioConfig{}, false
	}

	cfg := storage.MinioConfig{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    os.Getenv("MINIO_BUCKET"),
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "whisper-batch-transcripts"
	}
	return cfg, true
}
