package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string
	// Database
	DBUrl          string
	DBDriver       string // "pgx" (pgxpool) or "postgres" (lib/pq via database/sql)
	DBMaxConns     int
	DBMinConns     int
	DBQueryTimeout time.Duration
	// Logging
	LogLevel string
	// CORS
	CORSAllowedOrigins []string
	// Redis/Upstash Configuration (rate limiting store)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitRequests      int
	RateLimitWindowSeconds int
	// Server lifecycle
	ShutdownTimeout time.Duration
	// Audit trail of record changes
	AuditLogEnabled bool
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", "development"),
		DBUrl:          getEnv("DATABASE_URL", ""),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "pgx")),
		DBMaxConns:     getEnvInt("DB_MAX_CONNS", 25),
		DBMinConns:     getEnvInt("DB_MIN_CONNS", 5),
		DBQueryTimeout: getEnvDuration("DB_QUERY_TIMEOUT", 10*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(
			getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitRequests:      getEnvInt("RATE_LIMIT_REQUESTS", 60),       // 60 writes
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // per minute
		ShutdownTimeout:        getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		AuditLogEnabled:        getEnvBool("AUDIT_LOG_ENABLED", true),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.DBDriver != "pgx" && cfg.DBDriver != "postgres" {
		log.Printf("WARNING: unknown DB_DRIVER %q, falling back to pgx", cfg.DBDriver)
		cfg.DBDriver = "pgx"
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("5s") or plain seconds ("5").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
