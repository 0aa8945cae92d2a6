// File: resources.go
// Title: Resource Lookup
// Description: Optional hook for checking that referenced textures exist.
//              The managedmaterials extractor downgrades missing textures to
//              a warning and substitutes the damaged/specular fallbacks the
//              same way the simulator does.

package parser

import (
	"os"
	"path/filepath"
)

// ResourceChecker answers whether a resource file is available. A nil
// checker disables existence checks entirely.
type ResourceChecker interface {
	Exists(name string) bool
}

// DirChecker looks resources up in a fixed set of directory roots.
type DirChecker struct {
	Roots []string
}

// Exists reports whether name is a file under any of the roots.
func (c *DirChecker) Exists(name string) bool {
	for _, root := range c.Roots {
		info, err := os.Stat(filepath.Join(root, name))
		if err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
