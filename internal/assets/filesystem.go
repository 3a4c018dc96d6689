package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads the web UI sources from a project directory.
// Implements SourceLoader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given project root.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// BasePath returns the resolved project root.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// LoadSource reads the fixed file for role below basePath.
func (f *FilesystemLoader) LoadSource(role Role) (Source, error) {
	rel, err := RelPath(role)
	if err != nil {
		return Source{}, err
	}

	// Symlinks are followed: rel is a constant, so nothing outside the
	// project can be requested.
	filePath := filepath.Join(f.basePath, filepath.FromSlash(rel))
	data, err := os.ReadFile(filePath) // #nosec G304 -- fixed relative path
	if err != nil {
		if os.IsNotExist(err) {
			return Source{}, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, rel, err)
		}
		return Source{}, fmt.Errorf("%w: %s: %w", ErrSourceRead, rel, err)
	}

	content, err := decodeUTF8(data)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", rel, err)
	}

	return Source{Role: role, Path: rel, Content: content}, nil
}

// Compile-time interface check.
var _ SourceLoader = (*FilesystemLoader)(nil)
