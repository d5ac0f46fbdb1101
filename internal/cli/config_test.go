package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigCheck(t *testing.T) {
	t.Run("valid_configuration", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config/dev/app.yml", `
global:
  engine.sqlalchemy.on: true
sqlalchemy_engine:
  url: sqlite://
controllers:
  /:
    controller: demo.controller.Root
`)

		out, err := execute(t, "config", "check", "--config-dir", filepath.Join(dir, "config"))
		if err != nil {
			t.Fatalf("check error: %v\n%s", err, out)
		}
		if !strings.Contains(out, "Configuration looks good") {
			t.Errorf("output = %s", out)
		}
	})

	t.Run("missing_configuration", func(t *testing.T) {
		if _, err := execute(t, "config", "check", "--config-dir", filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing configuration")
		}
	})

	t.Run("invalid_configuration_lists_errors", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config/dev/app.yml", `
global:
  engine.sqlalchemy.on: true
`)

		out, err := execute(t, "config", "check", "--config-dir", filepath.Join(dir, "config"))
		if err == nil {
			t.Fatal("expected validation failure")
		}
		if !strings.Contains(out, "sqlalchemy_engine") || !strings.Contains(out, "controllers") {
			t.Errorf("error listing incomplete:\n%s", out)
		}
	})
}
