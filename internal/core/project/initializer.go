package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/blueberrypy/blueberry/internal/manifest"
	"github.com/blueberrypy/blueberry/internal/template"
	"github.com/blueberrypy/blueberry/pkg/version"
)

// ManifestFileName is the manifest written into the project root.
const ManifestFileName = "package.manifest"

// InitOptions configures project creation.
type InitOptions struct {
	ProjectRoot string // Absolute or relative path to the project root.
	ProjectName string // Human-readable project name.
	Package     string // Package name (lowercase identifier).
	Version     string // Initial version string.
	Author      string // Author display name.
	Email       string // Author email address.

	UseController     bool // Templating-engine-backed controllers.
	UseRESTController bool // RESTful controllers.
	UseJinja2         bool // Jinja2 templating engine.
	UseWebassets      bool // webassets asset management.
	UseRedis          bool // redis-backed sessions.
	UseSQLAlchemy     bool // SQLAlchemy ORM.

	Driver        string // Database driver package, or "".
	SQLAlchemyURL string // Database connection URL.

	Force bool // If true, allow creating over an existing project.
}

// Normalize applies the dependencies between toggles: Jinja2 and
// webassets ride on the templating controllers, and the database
// settings require the ORM. The deployed skeleton and the generated
// manifest both see the normalized options, so they cannot disagree.
func (o InitOptions) Normalize() InitOptions {
	if !o.UseController {
		o.UseJinja2 = false
		o.UseWebassets = false
	}
	if !o.UseSQLAlchemy {
		o.Driver = ""
		o.SQLAlchemyURL = ""
	}
	return o
}

// ScaffoldContext maps the options onto the skeleton renderer's context.
func (o InitOptions) ScaffoldContext() *template.ScaffoldContext {
	return template.NewScaffoldContext(
		template.WithProject(o.ProjectName, o.Package, o.Version),
		template.WithAuthor(o.Author, o.Email),
		template.WithControllers(o.UseController, o.UseRESTController),
		template.WithTemplating(o.UseJinja2, o.UseWebassets),
		template.WithRedis(o.UseRedis),
		template.WithSQLAlchemy(o.UseSQLAlchemy, o.Driver, o.SQLAlchemyURL),
		template.WithToolVersion(version.GetVersion()),
	)
}

// ManifestConfig maps the options onto the manifest generator's input
// record.
func (o InitOptions) ManifestConfig() manifest.ProjectConfig {
	return manifest.ProjectConfig{
		Package:           o.Package,
		Version:           o.Version,
		Author:            o.Author,
		Email:             o.Email,
		UseSQLAlchemy:     o.UseSQLAlchemy,
		UseRedis:          o.UseRedis,
		UseWebassets:      o.UseWebassets,
		UseRESTController: o.UseRESTController,
		Driver:            o.Driver,
	}
}

// InitResult summarizes the outcome of project creation.
type InitResult struct {
	CreatedDirs  []string // Directories that were created.
	CreatedFiles []string // Files that were created.
	SkippedFiles []string // Existing files that were left alone.
	ManifestPath string   // Path of the generated manifest file.
	Warnings     []string // Non-fatal warnings during creation.
}

// Initializer handles project skeleton creation.
type Initializer interface {
	// Init creates a new project with the given options.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)
}

type projectInitializer struct {
	deployer template.Deployer
	logger   *slog.Logger
}

// NewInitializer creates an Initializer with the given dependencies. A
// nil deployer falls back to the embedded skeleton; a nil logger
// discards log output.
func NewInitializer(deployer template.Deployer, logger *slog.Logger) Initializer {
	if deployer == nil {
		deployer = template.NewDeployer(template.SkeletonFS())
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectInitializer{deployer: deployer, logger: logger}
}

// projectDirs lists directories created even when the skeleton deploys
// no file into them.
var projectDirs = []string{
	"config/dev",
	"config/prod",
	"tests",
}

// Init creates a new project with the given options.
func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if opts.Package == "" {
		return nil, ErrMissingPackage
	}
	opts = opts.Normalize()
	opts.ProjectRoot = filepath.Clean(opts.ProjectRoot)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i.logger.Info("creating project skeleton",
		"root", opts.ProjectRoot,
		"package", opts.Package,
	)

	result := &InitResult{}

	if err := i.prepareRoot(opts, result); err != nil {
		return nil, err
	}

	if err := i.createDirs(opts, result); err != nil {
		return nil, fmt.Errorf("create project structure: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := i.deploySkeleton(ctx, opts, result); err != nil {
		return nil, fmt.Errorf("deploy skeleton: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := i.writeManifest(opts, result); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	i.logger.Info("project created",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)

	return result, nil
}

// prepareRoot creates the project root and refuses to reuse a root that
// already holds a generated manifest unless Force is set.
func (i *projectInitializer) prepareRoot(opts InitOptions, result *InitResult) error {
	info, err := os.Stat(opts.ProjectRoot)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(opts.ProjectRoot, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRoot, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, ".")
		i.logger.Info("path not found, directory created", "path", opts.ProjectRoot)
		return nil
	case err != nil:
		return fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	case !info.IsDir():
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, opts.ProjectRoot)
	}

	if _, err := os.Stat(filepath.Join(opts.ProjectRoot, ManifestFileName)); err == nil && !opts.Force {
		return fmt.Errorf("%w: %s", ErrProjectExists, opts.ProjectRoot)
	}
	return nil
}

// createDirs creates the base directory structure.
func (i *projectInitializer) createDirs(opts InitOptions, result *InitResult) error {
	dirs := append([]string{}, projectDirs...)
	dirs = append(dirs, filepath.Join("src", opts.Package))

	for _, dir := range dirs {
		dirPath := filepath.Join(opts.ProjectRoot, dir)
		if err := os.MkdirAll(dirPath, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dirPath, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}
	return nil
}

// deploySkeleton renders and writes the embedded skeleton.
func (i *projectInitializer) deploySkeleton(ctx context.Context, opts InitOptions, result *InitResult) error {
	deployResult, err := i.deployer.Deploy(ctx, opts.ProjectRoot, opts.ScaffoldContext())
	if err != nil {
		return err
	}

	result.CreatedFiles = append(result.CreatedFiles, deployResult.Written...)
	result.SkippedFiles = append(result.SkippedFiles, deployResult.Skipped...)
	for _, skipped := range deployResult.Skipped {
		i.logger.Warn("existing file left alone", "path", skipped)
	}
	return nil
}

// writeManifest generates the project manifest and writes it to the
// project root.
func (i *projectInitializer) writeManifest(opts InitOptions, result *InitResult) error {
	content := manifest.Generate(opts.ManifestConfig())

	// Write-then-rename so a crash never leaves a truncated manifest.
	manifestPath := filepath.Join(opts.ProjectRoot, ManifestFileName)
	tmpPath := manifestPath + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, manifestPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	result.ManifestPath = manifestPath
	result.CreatedFiles = append(result.CreatedFiles, ManifestFileName)
	return nil
}