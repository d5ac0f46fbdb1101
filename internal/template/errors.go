// Package template renders and deploys the embedded project skeleton.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a template referenced a key absent
	// from the rendering context.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates rendered output still contains an
	// unexpanded template token.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrPathTraversal indicates a skeleton path would escape the
	// project root.
	ErrPathTraversal = errors.New("template: path traversal detected")
)
