package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a manifest serialization format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []Format{FormatText, FormatYAML, FormatTOML, FormatJSON}

// IsValidFormat reports whether name is a supported format.
func IsValidFormat(name string) bool {
	for _, f := range ValidFormats {
		if string(f) == name {
			return true
		}
	}
	return false
}

// Encode serializes the manifest in the requested format.
func (m Manifest) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return m.Render(), nil
	case FormatYAML:
		return m.EncodeYAML()
	case FormatTOML:
		return m.EncodeTOML()
	case FormatJSON:
		return m.EncodeJSON()
	default:
		return nil, fmt.Errorf("unknown manifest format %q", format)
	}
}

// EncodeYAML serializes the manifest as a YAML document.
func (m Manifest) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest yaml: %w", err)
	}
	return data, nil
}

// EncodeTOML serializes the manifest as a TOML document.
func (m Manifest) EncodeTOML() ([]byte, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest toml: %w", err)
	}
	return data, nil
}

// EncodeJSON serializes the manifest as indented JSON.
func (m Manifest) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest json: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeProjectConfig parses a YAML project configuration document.
func DecodeProjectConfig(data []byte) (ProjectConfig, error) {
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return cfg, nil
}
