package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Mock    MockConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	StreamLogFilePath  string
	CorsAllowedOrigins string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// MockConfig tunes the simulated backend. The delays exist purely to
// make the demo feel like real retrieval; tests shrink them to
// milliseconds.
type MockConfig struct {
	QueryDelay      time.Duration
	IngestStepDelay time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/activity.log"),
			StreamLogFilePath:  getEnv("STREAM_LOG_FILE_PATH", "logs/stream.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "default_secret"),
			TTL:    getEnvAsDuration("SESSION_TTL", time.Hour),
		},
		Mock: MockConfig{
			QueryDelay:      getEnvAsDuration("QUERY_DELAY", 2*time.Second),
			IngestStepDelay: getEnvAsDuration("INGEST_STEP_DELAY", time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
