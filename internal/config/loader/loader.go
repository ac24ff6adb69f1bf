// Package loader reads configuration and menu fragment files.
//
// Files are decoded by extension: .toml with go-toml, .yaml/.yml with
// yaml.v3 and .json with encoding/json. A missing file is not an error; Load
// returns nil, nil for it.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("loader: unsupported file format")

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// FileLoader is the interface for loaders that read from files.
type FileLoader interface {
	Loader
	// LoadFrom reads configuration from a specific path.
	LoadFrom(path string) (map[string]any, error)
	// LoadInto decodes the file at path into v. A missing file leaves v
	// untouched and reports false.
	LoadInto(path string, v any) (bool, error)
}

// ReaderLoader is the interface for loaders that read from io.Reader.
type ReaderLoader interface {
	// LoadFromReader reads configuration from a reader.
	LoadFromReader(r io.Reader) (map[string]any, error)
}

// FileSystem is an abstraction for file system operations.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// FS adapts an fs.FS, such as testing/fstest.MapFS or an embed.FS.
func FS(fsys fs.FS) FileSystem {
	return fsAdapter{fsys}
}

type fsAdapter struct {
	fsys fs.FS
}

func (a fsAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(a.fsys, path)
}

// Format decodes one file format.
type Format struct {
	// Name identifies the format in errors.
	Name string
	// Unmarshal decodes data into v.
	Unmarshal func(data []byte, v any) error
	// position extracts a line and column from a decode error, if known.
	position func(err error) (line, col int)
}

// FormatFor returns the format for path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ForPath returns a loader for path chosen by its extension.
func ForPath(path string) (*FormatLoader, error) {
	return ForPathWithFS(DefaultFS(), path)
}

// ForPathWithFS is ForPath over a custom file system.
func ForPathWithFS(fsys FileSystem, path string) (*FormatLoader, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	return &FormatLoader{fs: fsys, path: path, format: f}, nil
}

// FormatLoader loads files of one format.
type FormatLoader struct {
	fs     FileSystem
	path   string
	format Format
}

// NewFormatLoader creates a loader for path in the given format.
func NewFormatLoader(fsys FileSystem, path string, format Format) *FormatLoader {
	if fsys == nil {
		fsys = DefaultFS()
	}
	return &FormatLoader{fs: fsys, path: path, format: format}
}

// Path returns the configured path.
func (l *FormatLoader) Path() string {
	return l.path
}

// Load reads configuration from the configured path.
func (l *FormatLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads configuration from a specific path.
func (l *FormatLoader) LoadFrom(path string) (map[string]any, error) {
	var config map[string]any
	found, err := l.LoadInto(path, &config)
	if err != nil || !found {
		return nil, err
	}
	if config == nil {
		config = make(map[string]any)
	}
	return config, nil
}

// LoadInto decodes the file at path into v.
func (l *FormatLoader) LoadInto(path string, v any) (bool, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil // File doesn't exist, not an error
		}
		return false, fmt.Errorf("reading file %s: %w", path, err)
	}
	return true, l.parse(path, data, v)
}

// LoadFromReader reads configuration from an io.Reader.
func (l *FormatLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config map[string]any
	if err := l.parse("<reader>", data, &config); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *FormatLoader) parse(source string, data []byte, v any) error {
	if err := l.format.Unmarshal(data, v); err != nil {
		pe := &ParseError{
			Path:    source,
			Format:  l.format.Name,
			Message: err.Error(),
			Err:     err,
		}
		if l.format.position != nil {
			pe.Line, pe.Column = l.format.position(err)
		}
		return pe
	}
	return nil
}

// ParseError represents an error while parsing a file.
type ParseError struct {
	Path    string
	Format  string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
