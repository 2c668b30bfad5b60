package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"Wayn-App/internal/domain/service"
)

// Config holds everything the service reads from the environment,
// resolved once at startup.
type Config struct {
	Port               string
	BaseURL            string
	FirestoreProjectID string
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseDBPassword string
	GoogleClientID     string
	GoogleClientSecret string
	PexelsAPIKey       string

	// Seasonal is evaluated here, at load time, and passed into the
	// selector as a value. Nothing reads the calendar after startup.
	Seasonal service.SeasonalPolicy
}

// Load reads the .env file if present and resolves the configuration
// from the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseDBPassword: os.Getenv("SUPABASE_DB_PASSWORD"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		PexelsAPIKey:       os.Getenv("PEXELS_API_KEY"),
		Seasonal:           service.NewSeasonalPolicy(time.Now()),
	}
}

// GoogleRedirectURL is the absolute OAuth callback, pinned to BaseURL
// so the registered redirect URI always matches.
func (c *Config) GoogleRedirectURL() string {
	return c.BaseURL + "/api/auth/google/callback"
}

// Missing returns the names of required variables that are not set.
func (c *Config) Missing() []string {
	var missing []string
	if c.FirestoreProjectID == "" {
		missing = append(missing, "FIRESTORE_PROJECT_ID")
	}
	if c.SupabaseURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if c.SupabaseAnonKey == "" && c.SupabaseDBPassword == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	return missing
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
