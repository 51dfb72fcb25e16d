// Package config reads filecache settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/unkn0wn-root/filecache"
	"github.com/unkn0wn-root/filecache/codec"
)

// Config mirrors the FILECACHE_* environment variables.
type Config struct {
	// Dir is the base directory; empty falls back to os.UserConfigDir()/App.
	Dir         string `env:"FILECACHE_DIR"`
	App         string `env:"FILECACHE_APP" envDefault:"filecache"`
	File        string `env:"FILECACHE_FILE" envDefault:"items.json"`
	Format      string `env:"FILECACHE_FORMAT" envDefault:"json"`
	Encoding    string `env:"FILECACHE_ENCODING" envDefault:"json"`
	MaxFileSize int    `env:"FILECACHE_MAX_FILE_SIZE" envDefault:"0"`
	LogLevel    string `env:"FILECACHE_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := filecache.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := codec.ParseEncoding(c.Encoding); err != nil {
		return err
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("config: FILECACHE_MAX_FILE_SIZE must be >= 0, got %d", c.MaxFileSize)
	}
	return nil
}

// Resolver returns Dir(c.Dir) when set, else UserDir(c.App).
func (c Config) Resolver() filecache.Resolver {
	if c.Dir != "" {
		return filecache.Dir(c.Dir)
	}
	return filecache.UserDir(c.App)
}

func (c Config) FileFormat() (filecache.Format, error) {
	return filecache.ParseFormat(c.Format)
}

// Options builds cache options; logger and hooks are left to the caller.
func (c Config) Options() (filecache.Options, error) {
	doc, err := codec.ParseEncoding(c.Encoding)
	if err != nil {
		return filecache.Options{}, err
	}
	return filecache.Options{
		Resolver:    c.Resolver(),
		Codec:       doc,
		MaxFileSize: c.MaxFileSize,
	}, nil
}
