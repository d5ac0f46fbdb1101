package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// packagePlaceholder is the skeleton path segment replaced with the
// project's package name at deploy time.
const packagePlaceholder = "__package__"

// tmplSuffix marks skeleton files that are rendered before writing.
const tmplSuffix = ".tmpl"

// DeployResult reports what a Deploy call did.
type DeployResult struct {
	// Written lists the relative paths of files written, in walk order.
	Written []string

	// Skipped lists the relative paths of files left alone because they
	// already existed at the destination.
	Skipped []string
}

// Deployer extracts the embedded project skeleton and deploys it to a
// project root directory, rendering templates against a ScaffoldContext.
type Deployer interface {
	// Deploy walks the skeleton and writes every applicable file under
	// projectRoot. Files ending in .tmpl are rendered with scaffoldCtx
	// and saved without the suffix; a __package__ path segment is
	// replaced with the package name. Files whose subsystem is switched
	// off in scaffoldCtx are not deployed. Existing files are skipped.
	Deploy(ctx context.Context, projectRoot string, scaffoldCtx *ScaffoldContext) (*DeployResult, error)

	// ExtractTemplate returns the raw content of a single template by name.
	ExtractTemplate(name string) ([]byte, error)

	// ListTemplates returns the relative paths of the skeleton files
	// Deploy would consider for scaffoldCtx, before destination checks.
	// A nil context lists every file.
	ListTemplates(scaffoldCtx *ScaffoldContext) []string
}

type deployer struct {
	fsys     fs.FS
	renderer Renderer
}

// NewDeployer creates a Deployer backed by the given filesystem. In
// production the fs.FS comes from go:embed; in tests use
// testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys, renderer: NewRenderer(fsys)}
}

// Deploy walks the skeleton filesystem and writes every applicable file.
func (d *deployer) Deploy(ctx context.Context, projectRoot string, scaffoldCtx *ScaffoldContext) (*DeployResult, error) {
	if scaffoldCtx == nil {
		scaffoldCtx = NewScaffoldContext()
	}
	projectRoot = filepath.Clean(projectRoot)
	result := &DeployResult{}

	walkErr := fs.WalkDir(d.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if p == "." || entry.IsDir() {
			return nil
		}

		if skipForContext(p, scaffoldCtx) {
			return nil
		}

		destRelPath := DestinationPath(p, scaffoldCtx.Package)
		if err := validateDeployPath(projectRoot, destRelPath); err != nil {
			return err
		}

		var content []byte
		if strings.HasSuffix(p, tmplSuffix) {
			rendered, renderErr := d.renderer.Render(p, scaffoldCtx)
			if renderErr != nil {
				return fmt.Errorf("skeleton render %q: %w", p, renderErr)
			}
			content = rendered
		} else {
			raw, readErr := fs.ReadFile(d.fsys, p)
			if readErr != nil {
				return fmt.Errorf("skeleton read %q: %w", p, readErr)
			}
			content = raw
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(destRelPath))

		// Never clobber files the user already has.
		if _, statErr := os.Stat(destPath); statErr == nil {
			result.Skipped = append(result.Skipped, destRelPath)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return fmt.Errorf("skeleton deploy mkdir %q: %w", filepath.Dir(destPath), err)
		}
		if err := os.WriteFile(destPath, content, 0o644); err != nil {
			return fmt.Errorf("skeleton deploy write %q: %w", destPath, err)
		}

		result.Written = append(result.Written, destRelPath)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return result, nil
}

// ExtractTemplate returns the content of a single named template.
func (d *deployer) ExtractTemplate(name string) ([]byte, error) {
	data, err := fs.ReadFile(d.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return data, nil
}

// ListTemplates returns the relative paths of the skeleton files that
// apply to scaffoldCtx, using the same subsystem filter as Deploy.
func (d *deployer) ListTemplates(scaffoldCtx *ScaffoldContext) []string {
	var list []string

	_ = fs.WalkDir(d.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p == "." || entry.IsDir() {
			return nil
		}
		if scaffoldCtx != nil && skipForContext(p, scaffoldCtx) {
			return nil
		}
		list = append(list, p)
		return nil
	})

	return list
}

// DestinationPath maps a skeleton path to its deploy target: the
// __package__ segment becomes the package name and the .tmpl suffix is
// dropped.
func DestinationPath(skeletonPath, packageName string) string {
	parts := strings.Split(path.Clean(skeletonPath), "/")
	for i, part := range parts {
		if part == packagePlaceholder && packageName != "" {
			parts[i] = packageName
		}
	}
	dest := strings.Join(parts, "/")
	return strings.TrimSuffix(dest, tmplSuffix)
}

// skipForContext reports whether a skeleton file belongs to a subsystem
// that is switched off.
func skipForContext(skeletonPath string, ctx *ScaffoldContext) bool {
	base := strings.TrimSuffix(path.Base(skeletonPath), tmplSuffix)

	switch {
	case base == "bundles.yml":
		return !ctx.UseWebassets
	case base == "rest_controller.py":
		return !ctx.UseRESTController
	case base == "controller.py", base == "test_controller.py":
		return !ctx.UseController
	case base == "model.py":
		return !ctx.UseSQLAlchemy
	case strings.Contains(skeletonPath, "/templates/"):
		return !ctx.UseJinja2
	case strings.Contains(skeletonPath, "/static/"):
		return !ctx.UseWebassets
	}
	return false
}

// validateDeployPath ensures a skeleton path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	absPath := filepath.Join(absProjectRoot, cleaned)
	if absPath != absProjectRoot && !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}
	return nil
}
