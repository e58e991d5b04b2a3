package config

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Site     SiteConfig     `mapstructure:"site"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Scroll   ScrollConfig   `mapstructure:"scroll"`
	Locale   LocaleConfig   `mapstructure:"locale"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

// SiteConfig describes where the exported site and its content live
type SiteConfig struct {
	// BaseURL of the deployed site; when empty content is read from ContentsDir
	BaseURL     string `mapstructure:"base_url"`
	BasePath    string `mapstructure:"base_path"`
	ContentsDir string `mapstructure:"contents_dir"`
	IndexRoot   string `mapstructure:"index_root"`
	ArticleRoot string `mapstructure:"article_root"`

	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	InsecureSkipVerify   bool   `mapstructure:"insecure_skip_verify"`
	Proxy                string `mapstructure:"proxy"`
}

// StorageConfig selects the durable key/value medium
type StorageConfig struct {
	Driver     string `mapstructure:"driver"` // sqlite, redis, postgres or memory
	SQLitePath string `mapstructure:"sqlite_path"`
	KeyPrefix  string `mapstructure:"key_prefix"`
}

type ScrollConfig struct {
	StorageKey     string `mapstructure:"storage_key"`
	RestoreDelayMs int    `mapstructure:"restore_delay_ms"`
}

type LocaleConfig struct {
	Default    string `mapstructure:"default"`
	StorageKey string `mapstructure:"storage_key"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// Load loads configuration from a YAML file with environment variable
// overrides. An explicit path must exist; without one ./config.yaml is used
// when present and defaults otherwise.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MORINOLAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug("No config.yaml found, using defaults and environment")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("site.base_url", "")
	v.SetDefault("site.base_path", "")
	v.SetDefault("site.contents_dir", "./public")
	v.SetDefault("site.index_root", "generated_contents")
	v.SetDefault("site.article_root", "generated_contents")
	v.SetDefault("site.timeout", 30)
	v.SetDefault("site.max_retries", 2)
	v.SetDefault("site.max_requests_per_second", 0)
	v.SetDefault("site.insecure_skip_verify", false)
	v.SetDefault("site.proxy", "")

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.sqlite_path", "./.morinolab/state.db")
	v.SetDefault("storage.key_prefix", "morinolab:")

	v.SetDefault("scroll.storage_key", "scrollPositions")
	v.SetDefault("scroll.restore_delay_ms", 100)

	v.SetDefault("locale.default", "ja")
	v.SetDefault("locale.storage_key", "locale")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "morinolab")
	v.SetDefault("database.user", "morinolab")
	v.SetDefault("database.password", "")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// ConfigureLogging applies the log section to the global logrus logger
func ConfigureLogging(cfg LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
