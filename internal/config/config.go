// Package config loads dictcorrector settings from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"dictcorrector/pkg/options"
)

type Config struct {
	Separators string `yaml:"separators"`
	Threshold  int    `yaml:"threshold"`
	LogLevel   string `yaml:"log_level"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

func Default() *Config {
	return &Config{
		Separators: options.DefaultSeparators,
		Threshold:  options.DefaultThreshold,
		LogLevel:   "info",
		Redis:      Redis{Addr: "localhost:6379"},
	}
}

// Load starts from Default, applies the YAML file at path when path is
// not empty, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Separators = getenv("CORRECTOR_SEPARATORS", c.Separators)
	c.Threshold = getEnvInt("CORRECTOR_THRESHOLD", c.Threshold)
	c.LogLevel = getenv("CORRECTOR_LOG_LEVEL", c.LogLevel)
	c.Redis.Addr = getenv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getenv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)
	c.Redis.Key = getenv("REDIS_KEY", c.Redis.Key)
}

func (c *Config) Validate() error {
	if c.Separators == "" {
		return errors.New("config: separators must not be empty")
	}
	if c.Threshold < 0 {
		return fmt.Errorf("config: threshold %d is negative", c.Threshold)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, info when it does not parse.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return l, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
