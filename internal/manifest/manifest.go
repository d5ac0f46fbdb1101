package manifest

import (
	"bytes"
	"fmt"
)

// Package discovery defaults shared by every generated manifest.
const (
	// PackageSourceRoot is the directory scanned for packages.
	PackageSourceRoot = "src"

	// PackageDiscoveryExclude is the glob excluding test packages from discovery.
	PackageDiscoveryExclude = "test*"
)

// Manifest is the declarative package record consumed by a packaging or
// installation tool downstream.
type Manifest struct {
	Name                    string   `yaml:"name" json:"name" toml:"name"`
	Version                 string   `yaml:"version" json:"version" toml:"version"`
	Author                  string   `yaml:"author" json:"author" toml:"author"`
	AuthorEmail             string   `yaml:"author_email" json:"author_email" toml:"author_email"`
	PackageSourceRoot       string   `yaml:"package_source_root" json:"package_source_root" toml:"package_source_root"`
	PackageDiscoveryExclude []string `yaml:"package_discovery_exclude" json:"package_discovery_exclude" toml:"package_discovery_exclude"`
	InstallRequires         []string `yaml:"install_requires" json:"install_requires" toml:"install_requires"`

	// ZipSafe is always false: the package must be installed as expanded
	// files, never run from a compressed archive. Packaging ecosystems
	// without that distinction treat the flag as a no-op.
	ZipSafe bool `yaml:"zip_safe" json:"zip_safe" toml:"zip_safe"`
}

// Build maps a ProjectConfig to its Manifest. Empty metadata fields pass
// through unchanged; any resulting failure surfaces downstream, not here.
func Build(cfg ProjectConfig) Manifest {
	deps := cfg.Dependencies()
	if deps == nil {
		deps = []string{}
	}
	return Manifest{
		Name:                    cfg.Package,
		Version:                 cfg.Version,
		Author:                  cfg.Author,
		AuthorEmail:             cfg.Email,
		PackageSourceRoot:       PackageSourceRoot,
		PackageDiscoveryExclude: []string{PackageDiscoveryExclude},
		InstallRequires:         deps,
		ZipSafe:                 false,
	}
}

// Generate derives the textual manifest for cfg. Output is byte-identical
// for identical inputs.
func Generate(cfg ProjectConfig) []byte {
	return Build(cfg).Render()
}

// Render emits the manifest in its canonical line-oriented text form.
func (m Manifest) Render() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "name: %s\n", m.Name)
	fmt.Fprintf(&buf, "version: %s\n", m.Version)
	fmt.Fprintf(&buf, "author: %s\n", m.Author)
	fmt.Fprintf(&buf, "author_email: %s\n", m.AuthorEmail)
	fmt.Fprintf(&buf, "package_source_root: %s\n", m.PackageSourceRoot)
	fmt.Fprintf(&buf, "package_discovery_exclude: %s\n", renderList(m.PackageDiscoveryExclude))
	fmt.Fprintf(&buf, "install_requires: %s\n", renderList(m.InstallRequires))
	fmt.Fprintf(&buf, "zip_safe: %t\n", m.ZipSafe)

	return buf.Bytes()
}

// renderList formats a string slice as a JSON-style quoted list.
func renderList(items []string) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%q", item)
	}
	buf.WriteByte(']')
	return buf.String()
}
