package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testOptions(root string) InitOptions {
	return InitOptions{
		ProjectRoot:       root,
		ProjectName:       "Bookstore",
		Package:           "bookstore",
		Version:           "0.1.1",
		Author:            "Rebecca",
		Email:             "rebecca@example.com",
		UseController:     true,
		UseRESTController: false,
		UseJinja2:         true,
		UseWebassets:      true,
		UseSQLAlchemy:     true,
		Driver:            "psycopg2",
		SQLAlchemyURL:     "postgresql://localhost/bookstore",
	}
}

func TestInit(t *testing.T) {
	t.Run("creates_full_skeleton", func(t *testing.T) {
		root := t.TempDir()

		result, err := NewInitializer(nil, nil).Init(context.Background(), testOptions(root))
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}
		if result.ManifestPath == "" {
			t.Error("ManifestPath not set")
		}

		for _, dir := range []string{
			"config/dev",
			"config/prod",
			"src/bookstore",
			"tests",
		} {
			info, err := os.Stat(filepath.Join(root, dir))
			if err != nil || !info.IsDir() {
				t.Errorf("directory %s missing", dir)
			}
		}

		for _, file := range []string{
			"README.rst",
			"config/dev/app.yml",
			"config/dev/logging.yml",
			"config/dev/bundles.yml",
			"config/prod/app.yml",
			"src/bookstore/__init__.py",
			"src/bookstore/controller.py",
			"src/bookstore/model.py",
			ManifestFileName,
		} {
			if _, err := os.Stat(filepath.Join(root, file)); err != nil {
				t.Errorf("file %s missing: %v", file, err)
			}
		}
	})

	t.Run("manifest_reflects_options", func(t *testing.T) {
		root := t.TempDir()

		result, err := NewInitializer(nil, nil).Init(context.Background(), testOptions(root))
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}

		data, err := os.ReadFile(result.ManifestPath)
		if err != nil {
			t.Fatalf("read manifest: %v", err)
		}
		content := string(data)

		for _, want := range []string{
			"name: bookstore",
			"version: 0.1.1",
			"author: Rebecca",
			`install_requires: ["SQLAlchemy", "yuicompressor", "webassets", "psycopg2"]`,
			"zip_safe: false",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("manifest missing %q:\n%s", want, content)
			}
		}
	})

	t.Run("toggled_off_files_absent", func(t *testing.T) {
		root := t.TempDir()
		opts := testOptions(root)
		opts.UseJinja2 = false
		opts.UseWebassets = false
		opts.UseSQLAlchemy = false
		opts.Driver = ""

		if _, err := NewInitializer(nil, nil).Init(context.Background(), opts); err != nil {
			t.Fatalf("Init error: %v", err)
		}

		for _, absent := range []string{
			"config/dev/bundles.yml",
			"src/bookstore/model.py",
			"src/bookstore/templates/base.html",
		} {
			if _, err := os.Stat(filepath.Join(root, absent)); !os.IsNotExist(err) {
				t.Errorf("%s deployed with its subsystem off", absent)
			}
		}
	})

	t.Run("controller_off_drops_webassets_everywhere", func(t *testing.T) {
		root := t.TempDir()
		opts := testOptions(root)
		opts.UseController = false

		result, err := NewInitializer(nil, nil).Init(context.Background(), opts)
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}

		// Webassets rides on the templating controllers, so neither its
		// skeleton files nor its manifest entries survive.
		for _, absent := range []string{
			"config/dev/bundles.yml",
			"src/bookstore/controller.py",
			"src/bookstore/templates/base.html",
			"src/bookstore/static/css/style.css",
		} {
			if _, err := os.Stat(filepath.Join(root, absent)); !os.IsNotExist(err) {
				t.Errorf("%s deployed with controllers off", absent)
			}
		}

		data, err := os.ReadFile(result.ManifestPath)
		if err != nil {
			t.Fatalf("read manifest: %v", err)
		}
		manifest := string(data)
		if strings.Contains(manifest, "webassets") || strings.Contains(manifest, "yuicompressor") {
			t.Errorf("manifest requires webassets with controllers off:\n%s", manifest)
		}
		if !strings.Contains(manifest, `install_requires: ["SQLAlchemy", "psycopg2"]`) {
			t.Errorf("install_requires wrong:\n%s", manifest)
		}
	})

	t.Run("missing_root_is_created", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "new", "project")

		result, err := NewInitializer(nil, nil).Init(context.Background(), testOptions(root))
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}
		if len(result.CreatedDirs) == 0 || result.CreatedDirs[0] != "." {
			t.Errorf("CreatedDirs = %v, want root first", result.CreatedDirs)
		}
	})

	t.Run("missing_package_rejected", func(t *testing.T) {
		opts := testOptions(t.TempDir())
		opts.Package = ""

		_, err := NewInitializer(nil, nil).Init(context.Background(), opts)
		if !errors.Is(err, ErrMissingPackage) {
			t.Errorf("error = %v, want ErrMissingPackage", err)
		}
	})

	t.Run("existing_project_rejected", func(t *testing.T) {
		root := t.TempDir()
		init := NewInitializer(nil, nil)

		if _, err := init.Init(context.Background(), testOptions(root)); err != nil {
			t.Fatalf("first Init error: %v", err)
		}
		_, err := init.Init(context.Background(), testOptions(root))
		if !errors.Is(err, ErrProjectExists) {
			t.Errorf("error = %v, want ErrProjectExists", err)
		}
	})

	t.Run("force_recreates_over_existing", func(t *testing.T) {
		root := t.TempDir()
		init := NewInitializer(nil, nil)

		if _, err := init.Init(context.Background(), testOptions(root)); err != nil {
			t.Fatalf("first Init error: %v", err)
		}

		opts := testOptions(root)
		opts.Force = true
		result, err := init.Init(context.Background(), opts)
		if err != nil {
			t.Fatalf("forced Init error: %v", err)
		}
		if len(result.SkippedFiles) == 0 {
			t.Error("expected existing skeleton files to be reported as skipped")
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := NewInitializer(nil, nil).Init(ctx, testOptions(t.TempDir())); err == nil {
			t.Error("expected cancellation error")
		}
	})
}
