// Package config resolves runtime settings. Precedence is command-line
// flags, then RHR_* environment variables, then built-in defaults.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/problem"
)

// Environment variable names.
const (
	EnvAddr      = "RHR_ADDR"
	EnvLogLevel  = "RHR_LOG_LEVEL"
	EnvLogFormat = "RHR_LOG_FORMAT"
	EnvLogFile   = "RHR_LOG_FILE"
	EnvPool      = "RHR_POOL"
	EnvSeed      = "RHR_SEED"
)

// Defaults.
const (
	DefaultAddr      = "127.0.0.1:8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = string(logging.FormatText)
)

// Config holds the resolved settings.
type Config struct {
	ListenAddr string
	LogLevel   string
	LogFormat  string
	LogFile    string

	// Pool is a comma-separated list of problem type IDs; empty means all.
	Pool string

	// Seed makes problem generation reproducible when HasSeed is set.
	Seed    uint64
	HasSeed bool
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		ListenAddr: DefaultAddr,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// FromEnv overlays environment variables read through getenv on the
// defaults. A nil getenv reads the process environment.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	c := Default()
	if v := getenv(EnvAddr); v != "" {
		c.ListenAddr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	c.LogFile = getenv(EnvLogFile)
	c.Pool = getenv(EnvPool)
	if v := getenv(EnvSeed); v != "" {
		if err := c.SetSeed(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	return c, c.Validate()
}

// SetSeed parses and sets the generation seed.
func (c *Config) SetSeed(v string) error {
	seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q: %w", v, err)
	}
	c.Seed, c.HasSeed = seed, true
	return nil
}

// Validate checks the log settings.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch logging.Format(strings.ToLower(c.LogFormat)) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Rand returns a seeded source when a seed is configured and the shared
// source otherwise.
func (c Config) Rand() problem.Rand {
	if !c.HasSeed {
		return problem.DefaultRand()
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
}

// Logger builds the logger described by c. When quiet is set (the terminal
// UI owns the screen) logs go only to LogFile, or nowhere. The returned
// closer must be called to release the log file.
func (c Config) Logger(quiet bool) (*logging.Logger, io.Closer, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	opts := logging.Options{Level: c.Level(), Format: logging.Format(strings.ToLower(c.LogFormat))}

	if c.LogFile == "" {
		if quiet {
			return logging.Discard(), io.NopCloser(nil), nil
		}
		opts.Output = os.Stderr
		return logging.New(opts), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	opts.Output = f
	return logging.New(opts), f, nil
}

// Level returns the parsed log level, or info when it does not parse.
func (c Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}
