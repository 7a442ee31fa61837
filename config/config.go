package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds application configuration loaded from environment variables,
// with defaults suited to local development. Optional integrations (Redis,
// Elasticsearch, GCS, RabbitMQ) are off while their address is empty.
type Config struct {
	AppName string
	AppURL  string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Storage backend: postgres or memory
	StoreDriver string

	// Database
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration
	MigrationsDir string

	// Redis
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SuggestCacheTTL time.Duration

	// Session
	JWTSecret    string
	CookieDomain string
	CookieSecure bool

	// HTTP
	CORSAllowedOrigins string // comma-separated
	TrustProxy         bool

	// Google Cloud Storage
	GCSBucket              string
	GCSCredentialsJSONPath string // optional; if empty, Application Default Credentials are used
	LogoMaxBytes           int64

	// Elasticsearch
	ElasticsearchAddrs string // comma-separated
	ElasticsearchUser  string
	ElasticsearchPass  string
	ESJobsIndex        string

	// RabbitMQ
	RabbitMQURL        string
	RabbitMQEmailQueue string

	// Mailgun
	MailgunDomain   string
	MailgunAPIKey   string
	MailgunSender   string
	MailSendEnabled bool

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	env := getenv("APP_ENV", "development")
	return &Config{
		AppName: getenv("APP_NAME", "go-job-board"),
		AppURL:  getenv("APP_URL", "http://localhost:3000"),
		Env:     env,
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		StoreDriver: strings.ToLower(getenv("STORE_DRIVER", StorePostgres)),

		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", "postgres"),
		DBName:        getenv("DB_NAME", "jobboard"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),
		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),

		RedisAddr:       getenv("REDIS_ADDR", ""),
		RedisPassword:   getenv("REDIS_PASSWORD", ""),
		RedisDB:         getint("REDIS_DB", 0),
		SuggestCacheTTL: getdur("SUGGEST_CACHE_TTL", 30*time.Second),

		JWTSecret:    getenv("JWT_SECRET", "devsessionsecret"),
		CookieDomain: getenv("COOKIE_DOMAIN", ""),
		CookieSecure: getbool("COOKIE_SECURE", env == "production"),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		TrustProxy:         getbool("TRUST_PROXY", false),

		GCSBucket:              getenv("GCS_BUCKET", ""),
		GCSCredentialsJSONPath: getenv("GCS_CREDENTIALS_JSON", ""),
		LogoMaxBytes:           int64(getint("LOGO_MAX_BYTES", 2<<20)),

		ElasticsearchAddrs: getenv("ELASTICSEARCH_ADDRS", ""),
		ElasticsearchUser:  getenv("ELASTICSEARCH_USERNAME", ""),
		ElasticsearchPass:  getenv("ELASTICSEARCH_PASSWORD", ""),
		ESJobsIndex:        getenv("ES_JOBS_INDEX", "jobs"),

		RabbitMQURL:        getenv("RABBITMQ_URL", ""),
		RabbitMQEmailQueue: getenv("RABBITMQ_EMAIL_QUEUE", "emails"),

		MailgunDomain:   getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:   getenv("MAILGUN_API_KEY", ""),
		MailgunSender:   getenv("MAILGUN_SENDER", ""),
		MailSendEnabled: getbool("MAIL_SEND_ENABLED", false),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", false),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
	}
}

// PostgresDSN returns a DSN compatible with pgx.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string { return splitList(c.CORSAllowedOrigins) }

// ESAddrs returns Elasticsearch addresses as a slice
func (c *Config) ESAddrs() []string { return splitList(c.ElasticsearchAddrs) }

// UseMemoryStore reports whether repositories are process-local.
func (c *Config) UseMemoryStore() bool { return c.StoreDriver == StoreMemory }
