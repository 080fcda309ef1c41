package rankengine

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pumppro/rankengine/rankengine/config"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig is what an empty config file decodes to.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: slog.LevelInfo, Format: "text"},
		DB: DBConfig{
			Host:     "localhost",
			Port:     5432,
			PoolSize: 10,
		},
		Engine: EngineConfig{
			Timezone:               "UTC",
			SweepWorkers:           config.DefaultSweepWorkers,
			DefaultLimit:           config.DefaultPageSize,
			MaxLimit:               config.MaxPageSize,
			ProfileCacheSize:       config.ProfileCacheSize,
			ProfileCacheTTLSeconds: int(config.ProfileCacheExpiration / time.Second),
		},
		Spaces: SpacesConfig{Prefix: "leaderboards"},
	}
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	DB     DBConfig     `toml:"db"`
	Engine EngineConfig `toml:"engine"`
	Spaces SpacesConfig `toml:"spaces"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

type EngineConfig struct {
	Timezone               string `toml:"timezone"`
	SweepWorkers           int    `toml:"sweep_workers"`
	DefaultLimit           int    `toml:"default_limit"`
	MaxLimit               int    `toml:"max_limit"`
	ProfileCacheSize       int    `toml:"profile_cache_size"`
	ProfileCacheTTLSeconds int    `toml:"profile_cache_ttl_seconds"`
}

// Location resolves the calendar time zone used for streaks and monthly windows.
func (c EngineConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid engine timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c EngineConfig) ProfileCacheTTL() time.Duration {
	return time.Duration(c.ProfileCacheTTLSeconds) * time.Second
}

type SpacesConfig struct {
	Key    string `toml:"key"`
	Secret string `toml:"secret"`
	Region string `toml:"region"`
	Bucket string `toml:"bucket"`
	Prefix string `toml:"prefix"`
}

func (c SpacesConfig) Enabled() bool {
	return c.Bucket != "" && c.Key != "" && c.Secret != ""
}

func (c *Config) Validate() error {
	if _, err := c.Engine.Location(); err != nil {
		return err
	}
	if c.Engine.SweepWorkers <= 0 {
		return fmt.Errorf("engine.sweep_workers must be positive, got %d", c.Engine.SweepWorkers)
	}
	if c.Engine.DefaultLimit <= 0 || c.Engine.MaxLimit < c.Engine.DefaultLimit {
		return fmt.Errorf("engine limits invalid: default %d, max %d", c.Engine.DefaultLimit, c.Engine.MaxLimit)
	}
	return nil
}
