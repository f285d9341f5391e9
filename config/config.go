// Package config loads the gateway configuration from an optional config
// file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Storage backends understood by stores.GetStore.
const (
	StorageFilesystem = "filesystem"
	StorageMemory     = "memory"
	StorageSQLite     = "sqlite"
	StorageS3         = "s3"
	StorageRedis      = "redis"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port                   string `mapstructure:"PORT"`
	StorageType            string `mapstructure:"STORAGE_TYPE"`
	LocalStoragePath       string `mapstructure:"LOCAL_STORAGE_PATH"`
	DocumentKey            string `mapstructure:"DOCUMENT_KEY"`
	SeedPath               string `mapstructure:"SEED_PATH"`
	DataSourceName         string `mapstructure:"DATA_SOURCE_NAME"`
	S3BucketName           string `mapstructure:"S3_BUCKET_NAME"`
	S3Prefix               string `mapstructure:"S3_PREFIX"`
	RedisURL               string `mapstructure:"REDIS_URL"`
	LogLevel               string `mapstructure:"LOG_LEVEL"`
	LogFormat              string `mapstructure:"LOG_FORMAT"`
	AllowedOrigins         string `mapstructure:"ALLOWED_ORIGINS"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	// A missing .env is the normal case outside local development.
	if err := godotenv.Load(); err == nil {
		logrus.Debug("Loaded environment from .env")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("STORAGE_TYPE", StorageFilesystem)
	viper.SetDefault("LOCAL_STORAGE_PATH", "/tmp")
	viper.SetDefault("DOCUMENT_KEY", "db.json")
	viper.SetDefault("SEED_PATH", "db.json")
	viper.SetDefault("DATA_SOURCE_NAME", "")
	viper.SetDefault("S3_BUCKET_NAME", "")
	viper.SetDefault("S3_PREFIX", "")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.StorageType = strings.ToLower(strings.TrimSpace(config.StorageType))

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures the selected storage backend has what it needs.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.DocumentKey == "" {
		return errors.New("DOCUMENT_KEY is required")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	switch c.StorageType {
	case StorageFilesystem:
		if c.LocalStoragePath == "" {
			return errors.New("LOCAL_STORAGE_PATH is required for filesystem storage")
		}
		if c.SeedPath != "" && samePath(filepath.Join(c.LocalStoragePath, c.DocumentKey), c.SeedPath) {
			return fmt.Errorf("working copy %s would overwrite SEED_PATH, change LOCAL_STORAGE_PATH or DOCUMENT_KEY", c.SeedPath)
		}
	case StorageSQLite:
		if c.DataSourceName == "" {
			return errors.New("DATA_SOURCE_NAME is required for sqlite storage")
		}
	case StorageS3:
		if c.S3BucketName == "" {
			return errors.New("S3_BUCKET_NAME is required for s3 storage")
		}
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required for redis storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_TYPE %q", c.StorageType)
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// ConfigureLogging applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c *Config) ConfigureLogging() {
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
