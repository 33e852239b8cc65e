package config

import (
	"path/filepath"
)

// PathResolver resolves paths in a config relative to the config file
type PathResolver struct {
	baseDir string
}

func NewPathResolver(baseDir string) *PathResolver {
	return &PathResolver{baseDir: baseDir}
}

// ResolvePath leaves absolute paths alone and joins relative ones to the base
// directory
func (pr *PathResolver) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(pr.baseDir, path)
}
