package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth         AuthConfig
	Translate    TranslateConfig
	CORS         CORSConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values. User through Name are required;
// the DSN is derived from them.
type PostgresConfig struct {
	User           string
	Password       string
	Host           string
	Port           string
	Name           string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	CacheTTLSec int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines token signing parameters. All fields are required and
// validated before any endpoint is reachable.
type AuthConfig struct {
	SecretKey             string
	Algorithm             string
	AccessTokenTTLMinutes int
}

// TranslateBackend selects the inference implementation.
type TranslateBackend string

const (
	BackendLocal  TranslateBackend = "local"
	BackendRemote TranslateBackend = "remote"
)

// TranslateConfig configures the translation backends.
type TranslateConfig struct {
	Backend        TranslateBackend
	LocalURL       string
	RemoteURL      string
	RemoteToken    string
	TimeoutSeconds int
}

// CORSConfig lists allowed browser origins.
type CORSConfig struct {
	AllowOrigins string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	WebhookURL string
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Load reads configuration from environment variables. Required values that
// are missing or malformed make Load fail so the process never starts
// half-configured.
func Load() (*Config, error) {
	_ = godotenv.Load()

	pg, err := loadPostgres()
	if err != nil {
		return nil, err
	}

	auth, err := loadAuth()
	if err != nil {
		return nil, err
	}

	translate, err := loadTranslate()
	if err != nil {
		return nil, err
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "translate-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: pg,
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:    os.Getenv("REDIS_PASSWORD"),
			DB:          redisDB,
			CacheTTLSec: getEnvAsInt("TRANSLATION_CACHE_TTL_SECONDS", 3600),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth:      auth,
		Translate: translate,
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

func loadPostgres() (PostgresConfig, error) {
	cfg := PostgresConfig{
		User:           os.Getenv("DB_USER"),
		Password:       os.Getenv("DB_PASSWORD"),
		Host:           os.Getenv("DB_HOST"),
		Port:           os.Getenv("DB_PORT"),
		Name:           os.Getenv("DB_NAME"),
		MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
		MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
		RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
		ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
		ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
	}

	required := map[string]string{
		"DB_USER":     cfg.User,
		"DB_PASSWORD": cfg.Password,
		"DB_HOST":     cfg.Host,
		"DB_PORT":     cfg.Port,
		"DB_NAME":     cfg.Name,
	}
	for key, val := range required {
		if val == "" {
			return PostgresConfig{}, fmt.Errorf("missing required environment variable %s", key)
		}
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return PostgresConfig{}, fmt.Errorf("invalid DB_PORT %q: %w", cfg.Port, err)
	}
	return cfg, nil
}

func loadAuth() (AuthConfig, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return AuthConfig{}, fmt.Errorf("missing required environment variable SECRET_KEY")
	}

	algorithm := getEnv("ALGORITHM", "HS256")
	if !supportedAlgorithms[algorithm] {
		return AuthConfig{}, fmt.Errorf("unsupported ALGORITHM %q (want HS256, HS384 or HS512)", algorithm)
	}

	ttlRaw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")
	if ttlRaw == "" {
		return AuthConfig{}, fmt.Errorf("missing required environment variable ACCESS_TOKEN_EXPIRE_MINUTES")
	}
	ttl, err := strconv.Atoi(ttlRaw)
	if err != nil {
		return AuthConfig{}, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES %q: %w", ttlRaw, err)
	}
	if ttl <= 0 {
		return AuthConfig{}, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", ttl)
	}

	return AuthConfig{
		SecretKey:             secret,
		Algorithm:             algorithm,
		AccessTokenTTLMinutes: ttl,
	}, nil
}

func loadTranslate() (TranslateConfig, error) {
	backend := TranslateBackend(getEnv("TRANSLATE_BACKEND", string(BackendRemote)))
	if backend != BackendLocal && backend != BackendRemote {
		return TranslateConfig{}, fmt.Errorf("unsupported TRANSLATE_BACKEND %q (want local or remote)", backend)
	}

	cfg := TranslateConfig{
		Backend:        backend,
		LocalURL:       getEnv("TRANSLATE_LOCAL_URL", "http://127.0.0.1:5000"),
		RemoteURL:      os.Getenv("TRANSLATE_REMOTE_URL"),
		RemoteToken:    os.Getenv("TRANSLATE_REMOTE_TOKEN"),
		TimeoutSeconds: getEnvAsInt("TRANSLATE_TIMEOUT_SECONDS", 30),
	}

	if backend == BackendRemote && cfg.RemoteURL == "" {
		return TranslateConfig{}, fmt.Errorf("missing required environment variable TRANSLATE_REMOTE_URL")
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", p.User, p.Password, p.Host, p.Port, p.Name)
}

// AccessTokenTTL returns the token lifetime as a duration.
func (a AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(a.AccessTokenTTLMinutes) * time.Minute
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns the translation cache entry lifetime.
func (r RedisConfig) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSec) * time.Second
}

// Timeout returns the backend HTTP timeout.
func (t TranslateConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
