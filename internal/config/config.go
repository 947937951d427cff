package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultSessionSecret = "dev-secret-change-me"

type Config struct {
	// Application
	AppEnv string
	Port   string

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration
	SessionStore  string // "memory" or "database"
	CookieSecure  bool

	// Database
	DBDriver   string // "postgres" or "sqlite"
	DSN        string
	DBPoolSize int

	// Security
	BcryptCost int

	// Uploads
	UploadBackend  string // "disk" or "s3"
	UploadDir      string
	UploadMaxBytes int64

	// S3-compatible storage, only read when UploadBackend is "s3"
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string

	CORSOrigins []string

	// Observability (optional)
	SentryDSN string
}

// Load reads .env.local when present and then the process environment.
// Every value has a default suitable for local development only.
func Load() (*Config, error) {
	if err := godotenv.Load(".env.local"); err != nil {
		slog.Debug("no .env.local file found, using environment variables")
	}

	cfg := &Config{
		AppEnv: envString("APP_ENV", "development"),
		Port:   envString("PORT", "5050"),

		SessionSecret: envString("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:    envDuration("SESSION_TTL", 8*time.Hour),
		SessionStore:  strings.ToLower(envString("SESSION_STORE", "memory")),
		CookieSecure:  envBool("COOKIE_SECURE", false),

		DBDriver:   strings.ToLower(envString("DB_DRIVER", "postgres")),
		DSN:        os.Getenv("DATABASE_URL"),
		DBPoolSize: envInt("DB_POOL_SIZE", 10),

		BcryptCost: envInt("BCRYPT_COST", 12),

		UploadBackend:  strings.ToLower(envString("UPLOAD_BACKEND", "disk")),
		UploadDir:      envString("UPLOAD_DIR", "uploads"),
		UploadMaxBytes: int64(envInt("UPLOAD_MAX_BYTES", 5<<20)),

		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),

		CORSOrigins: envList("CORS_ORIGINS"),

		SentryDSN: os.Getenv("SENTRY_DSN"),
	}

	if cfg.DSN == "" {
		cfg.DSN = defaultDSN(cfg.DBDriver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option values that have a fixed set of choices.
func (c *Config) Validate() error {
	switch c.SessionStore {
	case "memory", "database":
	default:
		return fmt.Errorf("SESSION_STORE must be memory or database, got %q", c.SessionStore)
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver)
	}
	switch c.UploadBackend {
	case "disk":
	case "s3":
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when UPLOAD_BACKEND=s3")
		}
	default:
		return fmt.Errorf("UPLOAD_BACKEND must be disk or s3, got %q", c.UploadBackend)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if c.IsProduction() && c.SessionSecret == DefaultSessionSecret {
		return fmt.Errorf("production deployment requires SESSION_SECRET")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// defaultDSN assembles a connection string from the DB_* variables.
func defaultDSN(driver string) string {
	if driver == "sqlite" {
		return envString("DB_NAME", "./data/musicdb.db")
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(envString("DB_USER", "postgres"), os.Getenv("DB_PASSWORD")),
		Host:     envString("DB_HOST", "localhost") + ":" + envString("DB_PORT", "5432"),
		Path:     "/" + envString("DB_NAME", "musicdb"),
		RawQuery: "sslmode=" + envString("DB_SSLMODE", "disable"),
	}
	return u.String()
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
