package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the startup defaults. Command-line flags override it.
type Config struct {
	Is24Hour     bool   `env:"SEGCLOCK_24H" envDefault:"false"`
	ShowDayMonth bool   `env:"SEGCLOCK_DATE" envDefault:"true"`
	DarkMode     bool   `env:"SEGCLOCK_DARK" envDefault:"false"`
	Scale        int    `env:"SEGCLOCK_SCALE" envDefault:"2"`
	Tint         string `env:"SEGCLOCK_TINT" envDefault:"off"`
	Scanlines    bool   `env:"SEGCLOCK_SCANLINES" envDefault:"false"`
	Plain        bool   `env:"SEGCLOCK_PLAIN" envDefault:"false"`

	Log           string `env:"SEGCLOCK_LOG"`
	LogMaxSize    int    `env:"SEGCLOCK_LOG_MAX_SIZE" envDefault:"10"` // megabytes
	LogMaxBackups int    `env:"SEGCLOCK_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"SEGCLOCK_LOG_MAX_AGE" envDefault:"28"` // days
}

// LoadConfig reads envfile (if it exists) into the environment without
// overriding variables that are already set, then parses the environment.
func LoadConfig(envfile string) (Config, error) {
	if envfile != "" {
		file, err := filepath.Abs(envfile)
		if err != nil {
			return Config{}, fmt.Errorf("resolve %s: %w", envfile, err)
		}
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", file, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Scale < minScale || c.Scale > maxScale {
		return fmt.Errorf("invalid scale: %d (use %d-%d)", c.Scale, minScale, maxScale)
	}
	if _, err := parseTint(c.Tint); err != nil {
		return err
	}
	return nil
}

func (c Config) displayFlags() DisplayFlags {
	return DisplayFlags{
		Is24Hour:     c.Is24Hour,
		ShowDayMonth: c.ShowDayMonth,
		DarkMode:     c.DarkMode,
	}
}

// setupLog points the standard logger at a rotating file, or discards it
// when no file is configured; the terminal belongs to the clock.
func setupLog(c Config) io.Closer {
	log.SetPrefix("segclock ")
	if c.Log == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}
	}
	out := &lumberjack.Logger{
		Filename:   c.Log,
		MaxSize:    c.LogMaxSize,
		MaxBackups: c.LogMaxBackups,
		MaxAge:     c.LogMaxAge,
		LocalTime:  true,
	}
	log.SetOutput(out)
	return out
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
