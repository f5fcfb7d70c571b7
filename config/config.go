// Package config loads calc-api settings from a TOML or YAML file, applies
// CALC_* environment overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const envPrefix = "CALC_"

// Duration decodes "15s"-style strings from both TOML and YAML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

type ServerConfig struct {
	Addr            string   `toml:"addr" yaml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type RateLimitConfig struct {
	Capacity int      `toml:"capacity" yaml:"capacity"`
	Refill   Duration `toml:"refill" yaml:"refill"`
}

type RedisConfig struct {
	Enabled bool     `toml:"enabled" yaml:"enabled"`
	Addr    string   `toml:"addr" yaml:"addr"`
	JobTTL  Duration `toml:"job_ttl" yaml:"job_ttl"`
}

type FilesConfig struct {
	MaxPDFBytes      int64    `toml:"max_pdf_bytes" yaml:"max_pdf_bytes"`
	MaxImageBytes    int64    `toml:"max_image_bytes" yaml:"max_image_bytes"`
	ProgressDuration Duration `toml:"progress_duration" yaml:"progress_duration"`
	ProgressSteps    int      `toml:"progress_steps" yaml:"progress_steps"`
}

type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
}

type Config struct {
	Server    ServerConfig    `toml:"server" yaml:"server"`
	RateLimit RateLimitConfig `toml:"rate_limit" yaml:"rate_limit"`
	Redis     RedisConfig     `toml:"redis" yaml:"redis"`
	Files     FilesConfig     `toml:"files" yaml:"files"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		RateLimit: RateLimitConfig{
			Capacity: 60,
			Refill:   Duration{time.Minute},
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			JobTTL: Duration{time.Hour},
		},
		Files: FilesConfig{
			MaxPDFBytes:      50 << 20,
			MaxImageBytes:    10 << 20,
			ProgressDuration: Duration{2 * time.Second},
			ProgressSteps:    20,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path skips the file. The
// format follows the extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			if _, err := toml.Decode(string(data), &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		default:
			return Config{}, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v, ok := lookupEnv("ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookupEnv("REDIS_ADDR"); ok {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	if v, ok := lookupEnv("REDIS_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sREDIS_ENABLED: %w", envPrefix, err)
		}
		c.Redis.Enabled = b
	}
	if v, ok := lookupEnv("RATE_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sRATE_LIMIT: %w", envPrefix, err)
		}
		c.RateLimit.Capacity = n
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.RateLimit.Capacity <= 0 {
		errs = append(errs, errors.New("rate_limit.capacity must be positive"))
	}
	if c.RateLimit.Refill.Duration <= 0 {
		errs = append(errs, errors.New("rate_limit.refill must be positive"))
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}
	if c.Files.MaxPDFBytes <= 0 || c.Files.MaxImageBytes <= 0 {
		errs = append(errs, errors.New("files size limits must be positive"))
	}
	if c.Files.ProgressSteps <= 0 || c.Files.ProgressSteps > 100 {
		errs = append(errs, errors.New("files.progress_steps must be between 1 and 100"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	return errors.Join(errs...)
}
