package config

import "fmt"

// Validate checks the configuration for sanity. Severe problems are
// returned as a ValidationErrors aggregate; less severe ones come back
// as warning strings in the style of the subsystem they concern.
func Validate(cfg *Configuration) ([]string, error) {
	if cfg == nil || len(cfg.AppConfig) == 0 {
		return nil, ErrNotConfigured
	}

	var errs []ValidationError
	var warnings []string

	if cfg.UseSQLAlchemy() && cfg.SQLAlchemyConfig() == nil {
		errs = append(errs, ValidationError{
			Field:   "sqlalchemy_engine",
			Message: "SQLAlchemy engine is switched on but no engine configuration was found",
			Wrapped: ErrNotConfigured,
		})
	}

	if cfg.UseWebassets() {
		if cfg.Bundles == nil {
			errs = append(errs, ValidationError{
				Field:   "bundles",
				Message: "webassets is enabled but bundles.yml was not found",
				Wrapped: ErrNotConfigured,
			})
		} else if len(cfg.Bundles) == 0 {
			errs = append(errs, ValidationError{
				Field:   "bundles",
				Message: "webassets is enabled but no bundles are defined",
				Wrapped: ErrNotConfigured,
			})
		}
	}

	if cfg.UseJinja2() && asMap(cfg.AppConfig["jinja2"]) == nil {
		errs = append(errs, ValidationError{
			Field:   "jinja2",
			Message: "jinja2 section must be a mapping",
			Wrapped: ErrInvalidConfig,
		})
	}

	if cfg.UseLogging() && cfg.LoggingConfig == nil {
		warnings = append(warnings,
			"logging engine is switched on but logging.yml was not found; continuing without it")
	}

	if cfg.UseEmail() && len(cfg.EmailConfig()) == 0 {
		warnings = append(warnings, "email configuration is empty")
	}

	errs = append(errs, validateControllers(cfg)...)

	if len(errs) > 0 {
		return warnings, &ValidationErrors{Errors: errs}
	}
	return warnings, nil
}

// validateControllers checks that at least one controller is declared
// and that every controller section names its controller.
func validateControllers(cfg *Configuration) []ValidationError {
	controllers := cfg.ControllersConfig()
	if len(controllers) == 0 {
		return []ValidationError{{
			Field:   "controllers",
			Message: "you must declare at least one controller",
			Wrapped: ErrNoControllers,
		}}
	}

	var errs []ValidationError
	for scriptName, section := range controllers {
		sm := asMap(section)
		if sm == nil || sm["controller"] == nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("controllers.%s", scriptName),
				Message: "controller entry is required in this section",
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}
