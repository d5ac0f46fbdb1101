// Package manifest derives a distributable package manifest from a
// project configuration record. The derivation is a pure function: the
// dependency list and manifest fields are recomputed from the input on
// every call, with no validation, caching, or I/O.
package manifest

import "errors"

// Sentinel errors for manifest operations.
var (
	// ErrInvalidManifest indicates a manifest document failed schema validation.
	ErrInvalidManifest = errors.New("manifest: document does not conform to schema")

	// ErrDecode indicates a manifest or project config document could not be parsed.
	ErrDecode = errors.New("manifest: invalid document syntax")
)
