// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// OCR engine selectors.
const (
	EngineVision    = "vision"
	EngineTesseract = "tesseract"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	BaseURL     string

	DataDir         string
	PersonalDir     string
	EducationalDir  string
	UploadMaxSizeMB int64

	OCREngine         string
	GoogleCredentials string
	OCRMinTextLength  int

	GeminiAPIKey string
	LLMModel     string

	NameThreshold float64
	ShareSecret   string
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() Config {
	_ = godotenv.Load()

	dataDir := getenv("DATA_DIR", "data")
	return Config{
		Port:        getenv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		BaseURL:     getenv("BASE_URL", "http://localhost:8000"),

		DataDir:         dataDir,
		PersonalDir:     filepath.Join(dataDir, "documents", "personal"),
		EducationalDir:  filepath.Join(dataDir, "documents", "educational"),
		UploadMaxSizeMB: getenvInt64("UPLOAD_MAX_SIZE_MB", 20),

		OCREngine:         getenv("OCR_ENGINE", EngineVision),
		GoogleCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		OCRMinTextLength:  int(getenvInt64("OCR_MIN_TEXT_LENGTH", 50)),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		LLMModel:     os.Getenv("LLM_MODEL"),

		NameThreshold: getenvFloat("VERIFICATION_NAME_THRESHOLD", 0.85),
		ShareSecret:   os.Getenv("SHARE_TOKEN_SECRET"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
