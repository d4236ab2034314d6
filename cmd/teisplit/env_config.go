package main

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-teisplit/internal/config"
)

// envPrefix marks the environment variables read by teisplit.
const envPrefix = "TEISPLIT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // TEISPLIT_CONFIG: config file name or path
	Input      string        // TEISPLIT_INPUT: source TEI document
	OutputDir  string        // TEISPLIT_OUTPUT_DIR: output directory
	Stylesheet string        // TEISPLIT_STYLESHEET: stylesheet name or path
	AssetPath  string        // TEISPLIT_ASSET_PATH: custom stylesheet directory
	Year       string        // TEISPLIT_YEAR: volume year
	XSLTProc   string        // TEISPLIT_XSLTPROC: external processor binary
	Timeout    time.Duration // TEISPLIT_TIMEOUT: run timeout
}

// knownEnvVars lists valid TEISPLIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TEISPLIT_CONFIG":     true,
	"TEISPLIT_INPUT":      true,
	"TEISPLIT_OUTPUT_DIR": true,
	"TEISPLIT_STYLESHEET": true,
	"TEISPLIT_ASSET_PATH": true,
	"TEISPLIT_YEAR":       true,
	"TEISPLIT_XSLTPROC":   true,
	"TEISPLIT_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable TEISPLIT_TIMEOUT is ignored with a warning.
func loadEnvConfig(env *Environment, logger *zap.Logger) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.Getenv("TEISPLIT_CONFIG"),
		Input:      env.Getenv("TEISPLIT_INPUT"),
		OutputDir:  env.Getenv("TEISPLIT_OUTPUT_DIR"),
		Stylesheet: env.Getenv("TEISPLIT_STYLESHEET"),
		AssetPath:  env.Getenv("TEISPLIT_ASSET_PATH"),
		Year:       env.Getenv("TEISPLIT_YEAR"),
		XSLTProc:   env.Getenv("TEISPLIT_XSLTPROC"),
	}

	if timeout := env.Getenv("TEISPLIT_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err == nil && d > 0 {
			cfg.Timeout = d
		} else {
			logger.Warn("ignoring invalid TEISPLIT_TIMEOUT", zap.String("value", timeout))
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized TEISPLIT_* variables.
// Helps catch typos like TEISPLIT_OUTPUTDIR instead of TEISPLIT_OUTPUT_DIR.
func warnUnknownEnvVars(env *Environment, logger *zap.Logger) {
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", zap.String("name", name))
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later via
// mergeFlags. This ensures: CLI flags > env vars > config file > defaults
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input.Path = env.Input
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Stylesheet != "" {
		cfg.Stylesheet = env.Stylesheet
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Year != "" {
		cfg.Volume.Year = env.Year
	}
}
