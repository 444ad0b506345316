package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" validate:"required,numeric"`
	RequestTimeout  time.Duration `yaml:"requestTimeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" validate:"gt=0"`
}

type StoreConfig struct {
	Backend         string        `yaml:"backend" validate:"oneof=memory sqlite postgres redis"`
	SQLitePath      string        `yaml:"sqlitePath" validate:"required_if=Backend sqlite"`
	PostgresDSN     string        `yaml:"postgresDSN" validate:"required_if=Backend postgres"`
	ConnectAttempts int           `yaml:"connectAttempts" validate:"min=1"`
	ConnectDelay    time.Duration `yaml:"connectDelay"`
	RedisAddr       string        `yaml:"redisAddr" validate:"required_if=Backend redis"`
	RedisPassword   string        `yaml:"redisPassword"`
	RedisDB         int           `yaml:"redisDB" validate:"min=0"`
	RedisPrefix     string        `yaml:"redisPrefix"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8080",
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Backend:         "sqlite",
			SQLitePath:      "./relief.db",
			ConnectAttempts: 15,
			ConnectDelay:    2 * time.Second,
			RedisAddr:       "localhost:6379",
			RedisPrefix:     "relief:",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads .env (if present), then the YAML file named by RELIEF_CONFIG
// (if set), then environment overrides, and validates the result.
func Load() (*Config, error) {
	return LoadFromPath(os.Getenv("RELIEF_CONFIG"))
}

// LoadFromPath is Load with an explicit YAML file. An empty path skips the
// file; .env and environment overrides apply either way.
func LoadFromPath(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Default()
	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return nil, err
		}
	}
	applyEnv(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.RequestTimeout = getEnvAsDuration("REQUEST_TIMEOUT", cfg.Server.RequestTimeout)
	cfg.Server.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)

	cfg.Store.Backend = getEnv("STORE_BACKEND", cfg.Store.Backend)
	cfg.Store.SQLitePath = getEnv("SQLITE_PATH", cfg.Store.SQLitePath)
	cfg.Store.PostgresDSN = getEnv("DATABASE_URL", cfg.Store.PostgresDSN)
	cfg.Store.ConnectAttempts = getEnvAsInt("DB_CONNECT_ATTEMPTS", cfg.Store.ConnectAttempts)
	cfg.Store.ConnectDelay = getEnvAsDuration("DB_CONNECT_DELAY", cfg.Store.ConnectDelay)
	cfg.Store.RedisAddr = getEnv("REDIS_ADDR", cfg.Store.RedisAddr)
	cfg.Store.RedisPassword = getEnv("REDIS_PASSWORD", cfg.Store.RedisPassword)
	cfg.Store.RedisDB = getEnvAsInt("REDIS_DB", cfg.Store.RedisDB)
	cfg.Store.RedisPrefix = getEnv("REDIS_PREFIX", cfg.Store.RedisPrefix)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
