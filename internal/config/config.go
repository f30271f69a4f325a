// Package config loads linerange settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name, e.g. LINERANGE_LOG_LEVEL.
const Prefix = "LINERANGE"

// Defaults, kept in sync with the struct tags below.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatText
	DefaultColor     = ColorAuto
)

// LogFormat selects the diagnostics log encoding.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// ColorMode controls colored diagnostics.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Env holds environment based configuration. Command-line flags take precedence.
type Env struct {
	// LogLevel is the diagnostics verbosity: debug, info, warn or error.
	// Env: LINERANGE_LOG_LEVEL (default: warn)
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// LogFormat is the diagnostics encoding: text or json.
	// Env: LINERANGE_LOG_FORMAT (default: text)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"text"`

	// Color controls colored error output: auto, always or never.
	// Env: LINERANGE_COLOR (default: auto)
	Color ColorMode `envconfig:"COLOR" default:"auto"`
}

// Load reads the environment and validates the result.
func Load() (Env, error) {
	var env Env
	if err := envconfig.Process(Prefix, &env); err != nil {
		return Env{}, fmt.Errorf("load environment: %w", err)
	}
	env = env.Normalize()
	if err := env.Validate(); err != nil {
		return Env{}, err
	}
	return env, nil
}

// Normalize lower-cases values so "DEBUG" and "debug" are equivalent.
func (e Env) Normalize() Env {
	e.LogLevel = strings.ToLower(strings.TrimSpace(e.LogLevel))
	e.LogFormat = LogFormat(strings.ToLower(strings.TrimSpace(string(e.LogFormat))))
	e.Color = ColorMode(strings.ToLower(strings.TrimSpace(string(e.Color))))
	return e
}

// Validate reports the first unsupported value.
func (e Env) Validate() error {
	switch e.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid %s_LOG_LEVEL %q: must be one of debug, info, warn, error", Prefix, e.LogLevel)
	}
	switch e.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid %s_LOG_FORMAT %q: must be text or json", Prefix, e.LogFormat)
	}
	if _, err := ParseColorMode(string(e.Color)); err != nil {
		return fmt.Errorf("invalid %s_COLOR: %w", Prefix, err)
	}
	return nil
}

// ParseColorMode parses a -color flag or LINERANGE_COLOR value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("unknown color mode %q: must be auto, always or never", s)
}
