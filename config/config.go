package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Booking  BookingConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	CorsOrigins []string
}

type DatabaseConfig struct {
	// Driver is one of "mysql", "postgres" or "sqlite".
	Driver string
	URL    string

	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	SQLitePath string
	LogLevel   string
	Seed       bool
}

type BookingConfig struct {
	// SameDayTurnover lets a booking start on the day another one ends.
	SameDayTurnover bool
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	driver := strings.ToLower(envOrDefault("DB_DRIVER", "mysql"))

	return &Config{
		Server: ServerConfig{
			Port:        envOrDefault("PORT", "8080"),
			GinMode:     envOrDefault("GIN_MODE", "debug"),
			CorsOrigins: parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Driver:     driver,
			URL:        firstNonEmpty(os.Getenv("DATABASE_URL"), os.Getenv("MYSQL_URL")),
			Host:       envOrDefault("DB_HOST", "127.0.0.1"),
			Port:       envOrDefault("DB_PORT", defaultPort(driver)),
			User:       envOrDefault("DB_USER", "root"),
			Password:   envOrDefault("DB_PASS", ""),
			Name:       envOrDefault("DB_NAME", "hotel_admin"),
			SSLMode:    envOrDefault("DB_SSL_MODE", "disable"),
			SQLitePath: envOrDefault("SQLITE_PATH", "hotel_admin.db"),
			LogLevel:   envOrDefault("DB_LOG_LEVEL", "warn"),
			Seed:       envAsBool("DB_SEED", false),
		},
		Booking: BookingConfig{
			SameDayTurnover: envAsBool("BOOKING_SAME_DAY_TURNOVER", false),
		},
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envAsBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("⚠️  invalid boolean for %s=%q, using %v", key, raw, def)
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func defaultPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
