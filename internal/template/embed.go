package template

import (
	"embed"
	"io/fs"
)

//go:embed all:skeleton
var skeletonFS embed.FS

// SkeletonFS returns the embedded project skeleton rooted at its
// top-level directory.
func SkeletonFS() fs.FS {
	sub, err := fs.Sub(skeletonFS, "skeleton")
	if err != nil {
		// The subdirectory is compiled in; failure here is a build defect.
		panic(err)
	}
	return sub
}
