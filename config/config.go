package config

import (
	"os"
	"strconv"
	"time"

	"dispatch-backend/logger"
)

// Config holds every environment-derived setting. Loaded once in main and
// passed to constructors so business logic never reads os.Getenv directly.
type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	Naver    Naver
	CORS     CORS
}

type Server struct {
	Host string
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWT struct {
	Secret string
	TTL    time.Duration
}

// Naver holds the map API integration settings. When Enabled is false the
// distance estimator returns a fixed dummy result instead of calling out.
type Naver struct {
	Enabled       bool
	ClientID      string
	ClientSecret  string
	GeocodeURL    string
	DirectionsURL string
}

type CORS struct {
	AllowOrigins string
}

// Load reads the configuration from environment variables with defaults.
func Load() *Config {
	cfg := &Config{
		Server: Server{
			Host: getEnv("APP_HOST", ""),
			Port: getEnv("APP_PORT", "4000"),
		},
		Database: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USERNAME", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_DATABASE", "dispatch"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWT{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    getDuration("JWT_TTL", 7*24*time.Hour),
		},
		Naver: Naver{
			Enabled:       getBool("USE_NAVER_DISTANCE", false),
			ClientID:      getEnv("NAVER_MAP_CLIENT_ID", ""),
			ClientSecret:  getEnv("NAVER_MAP_CLIENT_SECRET", ""),
			GeocodeURL:    getEnv("NAVER_GEOCODE_URL", "https://maps.apigw.ntruss.com/map-geocode/v2/geocode"),
			DirectionsURL: getEnv("NAVER_DIRECTIONS_URL", "https://maps.apigw.ntruss.com/map-direction/v1/driving"),
		},
		CORS: CORS{
			AllowOrigins: getEnv("FRONTEND_URL", "*"),
		},
	}

	if cfg.JWT.Secret == "" {
		logger.Warning("JWT_SECRET is not set, falling back to an insecure dev secret")
		cfg.JWT.Secret = "dev-secret-change-me"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
