package config

import (
	"errors"
	"strings"
	"testing"
)

// validControllers is the minimal controllers section Validate accepts.
func validControllers() map[string]any {
	return map[string]any{
		"/": map[string]any{"controller": "demo.controllers.Root"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("nil_configuration", func(t *testing.T) {
		_, err := Validate(nil)
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("error = %v, want ErrNotConfigured", err)
		}
	})

	t.Run("empty_app_config", func(t *testing.T) {
		_, err := Validate(&Configuration{})
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("error = %v, want ErrNotConfigured", err)
		}
	})

	t.Run("minimal_valid_config", func(t *testing.T) {
		warnings, err := Validate(&Configuration{AppConfig: map[string]any{
			"controllers": validControllers(),
		}})
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if len(warnings) != 0 {
			t.Errorf("warnings = %v, want none", warnings)
		}
	})

	t.Run("no_controllers", func(t *testing.T) {
		_, err := Validate(&Configuration{AppConfig: map[string]any{
			"global": map[string]any{},
		}})
		if !errors.Is(err, ErrNoControllers) {
			t.Errorf("error = %v, want ErrNoControllers", err)
		}
	})

	t.Run("controller_section_missing_controller", func(t *testing.T) {
		_, err := Validate(&Configuration{AppConfig: map[string]any{
			"controllers": map[string]any{
				"/api": map[string]any{"tools.json_out.on": true},
			},
		}})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("error = %v, want ErrInvalidConfig", err)
		}
		if !strings.Contains(err.Error(), "controllers./api") {
			t.Errorf("error %q does not name the offending section", err)
		}
	})

	t.Run("sqlalchemy_on_without_engine", func(t *testing.T) {
		_, err := Validate(&Configuration{AppConfig: map[string]any{
			"global":      map[string]any{"engine.sqlalchemy.on": true},
			"controllers": validControllers(),
		}})
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("error = %v, want ErrNotConfigured", err)
		}
	})

	t.Run("webassets_without_bundles", func(t *testing.T) {
		_, err := Validate(&Configuration{AppConfig: map[string]any{
			"jinja2":      map[string]any{"use_webassets": true},
			"controllers": validControllers(),
		}})
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("error = %v, want ErrNotConfigured", err)
		}
	})

	t.Run("webassets_with_empty_bundles", func(t *testing.T) {
		_, err := Validate(&Configuration{
			AppConfig: map[string]any{
				"jinja2":      map[string]any{"use_webassets": true},
				"controllers": validControllers(),
			},
			Bundles: map[string]any{},
		})
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("error = %v, want ErrNotConfigured", err)
		}
	})

	t.Run("webassets_with_bundles_passes", func(t *testing.T) {
		_, err := Validate(&Configuration{
			AppConfig: map[string]any{
				"jinja2":      map[string]any{"use_webassets": true},
				"controllers": validControllers(),
			},
			Bundles: map[string]any{"app_css": map[string]any{"output": "app.css"}},
		})
		if err != nil {
			t.Errorf("Validate error: %v", err)
		}
	})

	t.Run("logging_without_file_warns", func(t *testing.T) {
		warnings, err := Validate(&Configuration{AppConfig: map[string]any{
			"global":      map[string]any{"engine.logging.on": true},
			"controllers": validControllers(),
		}})
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "logging.yml") {
			t.Errorf("warnings = %v, want a logging.yml warning", warnings)
		}
	})

	t.Run("empty_email_warns", func(t *testing.T) {
		warnings, err := Validate(&Configuration{AppConfig: map[string]any{
			"email":       map[string]any{},
			"controllers": validControllers(),
		}})
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "email") {
			t.Errorf("warnings = %v, want an email warning", warnings)
		}
	})

	t.Run("aggregate_collects_all_errors", func(t *testing.T) {
		_, err := Validate(&Configuration{AppConfig: map[string]any{
			"global": map[string]any{"engine.sqlalchemy.on": true},
			"jinja2": map[string]any{"use_webassets": true},
		}})
		var verrs *ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("error = %v, want *ValidationErrors", err)
		}
		if len(verrs.Errors) != 3 {
			t.Errorf("collected %d errors, want 3: %v", len(verrs.Errors), verrs)
		}
	})
}
