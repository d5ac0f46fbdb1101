// Package project implements project skeleton creation for the
// "blueberry create" CLI command: directory scaffolding, skeleton
// deployment and manifest generation.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the project root already contains a
	// generated manifest.
	ErrProjectExists = errors.New("project already created")

	// ErrInvalidRoot indicates the given project root path is invalid or
	// inaccessible.
	ErrInvalidRoot = errors.New("invalid project root path")

	// ErrMissingPackage indicates no package name was provided.
	ErrMissingPackage = errors.New("package name is required")
)
