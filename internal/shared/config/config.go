package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Host              string
	Port              string
	Debug             bool
	SecretKey         string
	CORSAllowOrigin   []string
	MongoURI          string
	DatabaseName      string
	QuestionsDatabase string
	ProjectID         string
	Region            string
	DefaultModel      string
	Env               string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local .env for dev convenience.
	_ = godotenv.Load()

	return Config{
		Host:              getEnv("HOST", "0.0.0.0"),
		Port:              getEnv("PORT", "8080"),
		Debug:             parseBool(getEnv("DEBUG", "false")),
		SecretKey:         getEnv("SECRET_KEY", "dev-secret-key-change-in-production"),
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,https://quickq-frontend.vercel.app")),
		MongoURI:          os.Getenv("MONGODB_URI"),
		DatabaseName:      getEnv("DATABASE_NAME", "job_postings_db"),
		QuestionsDatabase: getEnv("QUESTIONS_DATABASE_NAME", "software_questions_db"),
		ProjectID:         os.Getenv("GOOGLE_CLOUD_PROJECT_ID"),
		Region:            getEnv("GOOGLE_CLOUD_REGION", "us-central1"),
		DefaultModel:      getEnv("DEFAULT_MODEL", "gemini-2.0-flash"),
		Env:               normalizeEnv(getEnv("ENV", "dev")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
