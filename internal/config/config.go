package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret    string
	JWTExpiresIn string // minutes

	AdminEmail    string
	AdminPassword string
	AdminFullName string

	// Upload ceilings differ per call site: the certification slots keep
	// the 1 MiB limit, the evaluation bundle allows 10 MiB.
	CertUploadMaxBytes int64
	EvalUploadMaxBytes int64

	LogLevel  string
	LogFormat string

	SeedSampleOperators bool
}

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "opcert_db"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret:    getenv("JWT_SECRET", "supersecret_change_me"),
		JWTExpiresIn: getenv("JWT_EXPIRES_IN", "60"),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		AdminFullName: getenv("ADMIN_FULL_NAME", "Administrator"),

		CertUploadMaxBytes: getenvInt64("CERT_UPLOAD_MAX_BYTES", 1<<20),
		EvalUploadMaxBytes: getenvInt64("EVAL_UPLOAD_MAX_BYTES", 10<<20),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "console"),

		SeedSampleOperators: getenv("SEED_SAMPLE_OPERATORS", "false") == "true",
	}
}

// JWTExpiry parses the configured token lifetime, falling back to an hour.
func (c *Config) JWTExpiry() time.Duration {
	d, err := time.ParseDuration(c.JWTExpiresIn + "m")
	if err != nil || d == 0 {
		return 60 * time.Minute
	}
	return d
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
