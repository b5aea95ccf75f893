package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	App               AppConfig
	HTTP              ServerConfig
	GRPC              ServerConfig
	Database          DatabaseConfig
	Log               LogConfig
	InternalEndpoints InternalEndpointsConfig
	Backend           BackendConfig
	Tracking          TrackingConfig
	Jobs              JobsConfig
	Session           SessionConfig
}

type AppConfig struct {
	ServiceName   string
	PublicBaseURL string
}

type ServerConfig struct {
	Host string
	Port string
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type InternalEndpointsConfig struct {
	AuthGRPCAddr string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
	// ServiceToken authenticates background jobs that run without a user request.
	ServiceToken string
}

type TrackingConfig struct {
	PollInterval time.Duration
	MaxDuration  time.Duration
	SuccessDelay time.Duration
}

type JobsConfig struct {
	ReconcileInterval  time.Duration
	ReconcileBatchSize int
}

type SessionConfig struct {
	Path string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	if driver != DriverMySQL && driver != DriverSQLite {
		return nil, fmt.Errorf("DB_DRIVER must be %s or %s, got %q", DriverMySQL, DriverSQLite, driver)
	}

	cfg := &Config{
		App: AppConfig{
			ServiceName:   getEnv("APP_SERVICE_NAME", "inteliwallet-billing"),
			PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: ServerConfig{
			Host: getEnv("GRPC_HOST", "0.0.0.0"),
			Port: getEnv("GRPC_PORT", "9090"),
		},
		Database: DatabaseConfig{
			Driver:          driver,
			DSN:             getEnv("DB_DSN", ""),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME_MINUTES", 30*time.Minute),
		},
		Log: LogConfig{Level: getEnv("LOG_LEVEL", "info")},
		InternalEndpoints: InternalEndpointsConfig{
			AuthGRPCAddr: getEnv("AUTH_SERVICE_GRPC_ADDR", "localhost:9090"),
		},
		Backend: BackendConfig{
			BaseURL:      strings.TrimRight(getEnv("BACKEND_API_URL", "http://localhost:3001/api"), "/"),
			Timeout:      getSecondsEnv("BACKEND_TIMEOUT_SECONDS", 30*time.Second),
			ServiceToken: getEnv("BACKEND_SERVICE_TOKEN", ""),
		},
		Tracking: TrackingConfig{
			PollInterval: getSecondsEnv("TRACKING_POLL_INTERVAL_SECONDS", 5*time.Second),
			MaxDuration:  getSecondsEnv("TRACKING_MAX_DURATION_SECONDS", 300*time.Second),
			SuccessDelay: getSecondsEnv("TRACKING_SUCCESS_DELAY_SECONDS", 2*time.Second),
		},
		Jobs: JobsConfig{
			ReconcileInterval:  getDurationEnv("RECONCILE_INTERVAL_MINUTES", 10*time.Minute),
			ReconcileBatchSize: getIntEnv("RECONCILE_BATCH_SIZE", 50),
		},
		Session: SessionConfig{
			Path: getEnv("SESSION_FILE", defaultSessionPath()),
		},
	}

	if cfg.Tracking.PollInterval <= 0 || cfg.Tracking.MaxDuration <= 0 {
		return nil, errors.New("tracking poll interval and max duration must be positive")
	}
	if cfg.Tracking.MaxDuration < cfg.Tracking.PollInterval {
		return nil, errors.New("TRACKING_MAX_DURATION_SECONDS must not be shorter than the poll interval")
	}

	return cfg, nil
}

// RequireDatabase is checked by the commands that persist tracking records.
func (c DatabaseConfig) RequireDatabase() error {
	if strings.TrimSpace(c.DSN) == "" {
		return errors.New("DB_DSN environment variable is required")
	}
	return nil
}

func defaultSessionPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "inteliwallet", "session.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "inteliwallet", "session.toml")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
