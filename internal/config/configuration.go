package config

import (
	"strings"

	"github.com/blueberrypy/blueberry/internal/manifest"
)

// Environment names recognized when resolving the configuration directory.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTestSuite   = "test_suite"
)

// Configuration is the merged, validated application configuration.
// Subsystem toggles are derived from the app config on demand; nothing
// is cached between calls.
type Configuration struct {
	// ConfigDir is the resolved environment-specific directory the
	// files were read from.
	ConfigDir string

	// Environment is the environment name the configuration was
	// resolved for ("" means development).
	Environment string

	// AppConfig is the merged application configuration tree.
	AppConfig map[string]any

	// LoggingConfig is the optional logging configuration tree.
	LoggingConfig map[string]any

	// Bundles is the optional asset-bundle configuration tree.
	Bundles map[string]any

	// FilePaths lists the configuration files that were actually read,
	// in load order.
	FilePaths []string
}

// ProjectMetadata returns the project_metadata section, or nil.
func (c *Configuration) ProjectMetadata() map[string]any {
	return asMap(c.AppConfig["project_metadata"])
}

// ControllersConfig returns the controllers section, or nil.
func (c *Configuration) ControllersConfig() map[string]any {
	return asMap(c.AppConfig["controllers"])
}

// UseLogging reports whether the logging engine is switched on.
func (c *Configuration) UseLogging() bool {
	return globalFlag(c.AppConfig, "engine.logging.on")
}

// UseSQLAlchemy reports whether the SQLAlchemy engine is switched on.
func (c *Configuration) UseSQLAlchemy() bool {
	return globalFlag(c.AppConfig, "engine.sqlalchemy.on")
}

// UseRedis reports whether any controller stores sessions in redis.
func (c *Configuration) UseRedis() bool {
	for _, section := range c.ControllersConfig() {
		sm := asMap(section)
		for key, pathCfg := range sm {
			if key == "controller" {
				continue
			}
			pm := asMap(pathCfg)
			if pm == nil {
				continue
			}
			if storage, ok := pm["tools.sessions.storage_type"].(string); ok && storage == "redis" {
				return true
			}
		}
	}
	return false
}

// UseJinja2 reports whether a jinja2 section is configured.
func (c *Configuration) UseJinja2() bool {
	_, ok := c.AppConfig["jinja2"]
	return ok
}

// UseWebassets reports whether the jinja2 section enables webassets.
func (c *Configuration) UseWebassets() bool {
	if !c.UseJinja2() {
		return false
	}
	j := asMap(c.AppConfig["jinja2"])
	if j == nil {
		return false
	}
	use, ok := j["use_webassets"].(bool)
	return ok && use
}

// UseEmail reports whether an email section is configured.
func (c *Configuration) UseEmail() bool {
	_, ok := c.AppConfig["email"]
	return ok
}

// SQLAlchemyConfig returns the SQLAlchemy engine configuration keyed by
// section name. A single "sqlalchemy_engine" section wins; otherwise all
// sections with that prefix (multi-engine setups) are collected.
func (c *Configuration) SQLAlchemyConfig() map[string]any {
	if !c.UseSQLAlchemy() {
		return nil
	}
	if engine := asMap(c.AppConfig["sqlalchemy_engine"]); engine != nil {
		return map[string]any{"sqlalchemy_engine": engine}
	}

	engines := make(map[string]any)
	for k, v := range c.AppConfig {
		if strings.HasPrefix(k, "sqlalchemy_engine") {
			engines[k] = v
		}
	}
	if len(engines) == 0 {
		return nil
	}
	return engines
}

// EmailConfig returns the email section, or nil.
func (c *Configuration) EmailConfig() map[string]any {
	return asMap(c.AppConfig["email"])
}

// ProjectConfig assembles the manifest generator's input record:
// metadata strings come from project_metadata, toggles are derived from
// the configured subsystems. The rest-controller toggle and driver name
// have no structural footprint in the app config, so they are read from
// project_metadata when present.
func (c *Configuration) ProjectConfig() manifest.ProjectConfig {
	meta := c.ProjectMetadata()

	cfg := manifest.ProjectConfig{
		Package:       stringKey(meta, "package"),
		Version:       stringKey(meta, "version"),
		Author:        stringKey(meta, "author"),
		Email:         stringKey(meta, "email"),
		UseSQLAlchemy: c.UseSQLAlchemy(),
		UseRedis:      c.UseRedis(),
		UseWebassets:  c.UseWebassets(),
	}

	if meta != nil {
		if rest, ok := meta["use_rest_controller"].(bool); ok {
			cfg.UseRESTController = rest
		}
		cfg.Driver = stringKey(meta, "driver")
	}

	return cfg
}

// globalFlag reads a boolean flag from the global section.
func globalFlag(app map[string]any, key string) bool {
	g := asMap(app["global"])
	if g == nil {
		return false
	}
	on, ok := g[key].(bool)
	return ok && on
}

// asMap narrows an any to a string-keyed map, or nil.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// stringKey reads a string value from a possibly-nil map.
func stringKey(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
