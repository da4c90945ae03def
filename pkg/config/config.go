package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	OpenRouter OpenRouterConfig
	Upload     UploadConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// OpenRouterConfig points the extraction client at an OpenAI-compatible chat
// completions endpoint. All values are opaque strings to the core.
type OpenRouterConfig struct {
	APIKey  string
	APIBase string
	Model   string
}

type UploadConfig struct {
	// MaxSize caps the accepted request body in bytes.
	MaxSize int
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	maxUpload, _ := strconv.Atoi(getEnv("MAX_UPLOAD_SIZE", strconv.Itoa(10*1024*1024)))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "finextract"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			APIBase: getEnv("OPENROUTER_API_BASE", "https://openrouter.ai/api/v1"),
			Model:   getEnv("OPENROUTER_MODEL", "mistralai/mistral-small-3.1-24b-instruct"),
		},
		Upload: UploadConfig{
			MaxSize: maxUpload,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
