package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"yuragi/internal/generator"
	"yuragi/internal/normalize"
)

// EnvPrefix prefixes environment overrides, e.g. YURAGI_SERVER_ADDR.
const EnvPrefix = "YURAGI"

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Store     StoreConfig     `mapstructure:"store"`
	Server    ServerConfig    `mapstructure:"server"`
	Ingest    IngestConfig    `mapstructure:"ingest"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Dir        string `mapstructure:"dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type GeneratorConfig struct {
	Groups             []string `mapstructure:"groups"`
	MinLength          int      `mapstructure:"min_length"`
	DividedMaxLength   int      `mapstructure:"divided_max_length"`
	SubtitleDelimiters []string `mapstructure:"subtitle_delimiters"`
	SeriesMarkers      []string `mapstructure:"series_markers"`
	Flatten            bool     `mapstructure:"flatten"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"` // debug, release or test
}

type IngestConfig struct {
	Workers int `mapstructure:"workers"`
	Buffer  int `mapstructure:"buffer"`
}

// Load reads yuragi.yaml from path (or the working directory), applies
// defaults and YURAGI_* environment overrides. A missing file is fine.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("yuragi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if path != "" {
			v.AddConfigPath(path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("log.compress", false)

	v.SetDefault("generator.groups", generator.DefaultGroups)
	v.SetDefault("generator.min_length", generator.DefaultMinLength)
	v.SetDefault("generator.divided_max_length", generator.DefaultDividedMaxLength)
	v.SetDefault("generator.subtitle_delimiters", []string{normalize.DefaultSubtitleDelimiter})
	v.SetDefault("generator.series_markers", normalize.DefaultSeriesMarkers)
	v.SetDefault("generator.flatten", true)

	v.SetDefault("store.path", "data/yuragi.db")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("ingest.workers", 4)
	v.SetDefault("ingest.buffer", 100)
}

// Validate rejects settings the generator cannot work with.
func (c *Config) Validate() error {
	if c.Generator.MinLength < 1 {
		return fmt.Errorf("invalid generator.min_length: %d", c.Generator.MinLength)
	}
	if c.Generator.DividedMaxLength < 2 {
		return fmt.Errorf("invalid generator.divided_max_length: %d", c.Generator.DividedMaxLength)
	}
	if _, err := generator.Named(c.Generator.Groups, c.Generator.DividedMaxLength); err != nil {
		return fmt.Errorf("invalid generator.groups: %w", err)
	}
	if c.Ingest.Workers < 1 {
		return fmt.Errorf("invalid ingest.workers: %d", c.Ingest.Workers)
	}
	return nil
}
