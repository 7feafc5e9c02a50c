package filesystem

import (
	"path/filepath"

	"rkanban/pkg/slug"
)

const (
	boardsDirName      = "boards"
	boardCacheFileName = ".yml"
)

// PathBuilder constructs paths for locally kept board data
type PathBuilder struct {
	dataPath string
}

// NewPathBuilder creates a new PathBuilder
func NewPathBuilder(dataPath string) *PathBuilder {
	return &PathBuilder{dataPath: dataPath}
}

// BoardsRoot returns the directory holding cached boards
func (pb *PathBuilder) BoardsRoot() string {
	return filepath.Join(pb.dataPath, boardsDirName)
}

// BoardCache returns the cache file for the server at apiURL
func (pb *PathBuilder) BoardCache(apiURL string) string {
	return filepath.Join(pb.BoardsRoot(), slug.FromURL(apiURL)+boardCacheFileName)
}
