package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all service settings. Values come from an optional YAML
// file and are overridden by environment variables.
type Config struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`

	DatabaseURL string `yaml:"databaseURL"`

	JWTSecret      string        `yaml:"jwtSecret"`
	TokenTTL       time.Duration `yaml:"tokenTTL"`
	RedisAddr      string        `yaml:"redisAddr"`
	RedisPassword  string        `yaml:"redisPassword"`

	AMQPURL      string `yaml:"amqpURL"`
	AMQPExchange string `yaml:"amqpExchange"`

	UploadDir     string `yaml:"uploadDir"`
	MinioEndpoint string `yaml:"minioEndpoint"`
	MinioAccess   string `yaml:"minioAccessKey"`
	MinioSecret   string `yaml:"minioSecretKey"`
	MinioBucket   string `yaml:"minioBucket"`
	MinioUseSSL   bool   `yaml:"minioUseSSL"`

	OTLPEndpoint string `yaml:"otlpEndpoint"`
	DebugRoutes  bool   `yaml:"debugRoutes"`
}

// Load reads config from path (empty path skips the file) and applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:         "8080",
		Environment:  "development",
		TokenTTL:     24 * time.Hour,
		AMQPExchange: "jobmarket.events",
		UploadDir:    "uploads",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Port, "PORT")
	setString(&cfg.Environment, "ENVIRONMENT")
	setString(&cfg.DatabaseURL, "DB_DSN")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.AMQPURL, "AMQP_URL")
	setString(&cfg.AMQPExchange, "AMQP_EXCHANGE")
	setString(&cfg.UploadDir, "UPLOAD_DIR")
	setString(&cfg.MinioEndpoint, "MINIO_ENDPOINT")
	setString(&cfg.MinioAccess, "MINIO_ACCESS_KEY")
	setString(&cfg.MinioSecret, "MINIO_SECRET_KEY")
	setString(&cfg.MinioBucket, "MINIO_BUCKET")
	setString(&cfg.OTLPEndpoint, "OTLP_ENDPOINT")

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.TokenTTL = ttl
		}
	}
	if v := os.Getenv("DEBUG_ROUTES"); v == "true" || v == "1" {
		cfg.DebugRoutes = true
	}
	if v := os.Getenv("MINIO_USE_SSL"); v == "true" || v == "1" {
		cfg.MinioUseSSL = true
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func validate(cfg Config) error {
	if cfg.Port == "" {
		return errors.New("config: port is required")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("config: databaseURL is required (set in config.yaml or DB_DSN)")
	}
	if cfg.JWTSecret == "" {
		return errors.New("config: jwtSecret is required (set in config.yaml or JWT_SECRET)")
	}
	if cfg.TokenTTL <= 0 {
		return errors.New("config: tokenTTL must be positive")
	}
	return nil
}
