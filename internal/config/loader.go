package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvVarName is the environment variable holding a JSON overlay that is
// merged over the file-based app config with the highest priority.
const EnvVarName = "BLUEBERRY_CONFIG"

// Configuration file names looked up in the resolved directory.
const (
	appYAML = "app.yml"
	// appOverrideYAML is a local-only file deep-merged over app.yml.
	appOverrideYAML = "app.override.yml"
	loggingYAML     = "logging.yml"
	bundlesYAML     = "bundles.yml"
)

// Loader reads the layered configuration files for one environment.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads configuration from configDir for the given environment and
// returns the merged Configuration. The environment selects a
// subdirectory: "production" reads prod/, "test_suite" reads test/ when
// it exists, anything else reads dev/. Missing optional files are
// skipped; the env-var JSON overlay is applied last.
func (l *Loader) Load(configDir, environment string) (*Configuration, error) {
	resolved := resolveEnvDir(configDir, environment)

	cfg := &Configuration{
		ConfigDir:   resolved,
		Environment: environment,
	}

	appPath := filepath.Join(resolved, appYAML)
	app, found, err := loadYAMLMap(appPath)
	if err != nil {
		return nil, err
	}
	if found {
		cfg.AppConfig = app
		cfg.FilePaths = append(cfg.FilePaths, appPath)
	}

	overridePath := filepath.Join(resolved, appOverrideYAML)
	override, found, err := loadYAMLMap(overridePath)
	if err != nil {
		return nil, err
	}
	if found {
		cfg.AppConfig = MergeMaps(cfg.AppConfig, override)
		cfg.FilePaths = append(cfg.FilePaths, overridePath)
	}

	loggingPath := filepath.Join(resolved, loggingYAML)
	logging, found, err := loadYAMLMap(loggingPath)
	if err != nil {
		return nil, err
	}
	if found {
		cfg.LoggingConfig = logging
		cfg.FilePaths = append(cfg.FilePaths, loggingPath)
	}

	bundlesPath := filepath.Join(resolved, bundlesYAML)
	bundles, found, err := loadYAMLMap(bundlesPath)
	if err != nil {
		return nil, err
	}
	if found {
		cfg.Bundles = bundles
		cfg.FilePaths = append(cfg.FilePaths, bundlesPath)
	}

	// Env-var overlay has the highest priority.
	if overlay := l.loadEnvOverlay(); overlay != nil {
		cfg.AppConfig = MergeMaps(cfg.AppConfig, overlay)
	}

	return cfg, nil
}

// loadEnvOverlay parses the JSON overlay from EnvVarName. A malformed
// value is logged and ignored rather than aborting the load.
func (l *Loader) loadEnvOverlay() map[string]any {
	raw := os.Getenv(EnvVarName)
	if raw == "" {
		return nil
	}

	var overlay map[string]any
	if err := json.Unmarshal([]byte(raw), &overlay); err != nil {
		l.logger.Error("env overlay is not valid JSON, ignoring",
			"var", EnvVarName, "error", err)
		return nil
	}
	return overlay
}

// resolveEnvDir maps an environment name to its config subdirectory.
func resolveEnvDir(configDir, environment string) string {
	configDir = filepath.Clean(configDir)

	switch environment {
	case EnvProduction:
		return filepath.Join(configDir, "prod")
	case EnvTestSuite:
		testDir := filepath.Join(configDir, "test")
		if info, err := os.Stat(testDir); err == nil && info.IsDir() {
			return testDir
		}
	}
	return filepath.Join(configDir, "dev")
}

// loadYAMLMap reads a YAML file into a string-keyed map. Returns
// (nil, false, nil) when the file does not exist.
func loadYAMLMap(path string) (map[string]any, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", filepath.Base(path), ErrInvalidYAML)
	}
	return m, true, nil
}
