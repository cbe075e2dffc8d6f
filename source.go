package figmahtmlgen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hellenic-development/figma-htmlgen/pkg/figma"
	"github.com/hellenic-development/figma-htmlgen/pkg/renderer"
)

// MarkupName is the fixed file name the directory sink writes the markup
// under, next to the stylesheet it references.
const MarkupName = "index.html"

// DocumentSource yields the raw design document. Retrieval failures are
// surfaced to the caller unchanged; the pipeline performs no retries of its
// own.
type DocumentSource interface {
	Document() (*figma.File, error)
}

// ArtifactSink persists the two generated text artifacts.
type ArtifactSink interface {
	WriteArtifacts(markup, stylesheet string) error
}

// APISource retrieves the document from the Figma REST API.
type APISource struct {
	client  *figma.Client
	fileKey string
}

// NewAPISource creates a source for the given client and file key.
func NewAPISource(client *figma.Client, fileKey string) *APISource {
	return &APISource{client: client, fileKey: fileKey}
}

// Document fetches the complete file from the API.
func (s *APISource) Document() (*figma.File, error) {
	return s.client.GetFile(s.fileKey)
}

// FileCache wraps a DocumentSource with an on-disk JSON cache of the raw
// document. A readable, fresh cache file short-circuits retrieval; otherwise
// the inner source is consulted and the cache rewritten. Cache writes are
// best effort: a failed write never fails the run.
type FileCache struct {
	Path   string
	MaxAge time.Duration // 0 = cache never expires
	Source DocumentSource
	Logger Logger
}

// Document returns the cached document when available, delegating to the
// wrapped source otherwise.
func (c *FileCache) Document() (*figma.File, error) {
	if c.fresh() {
		if data, err := os.ReadFile(c.Path); err == nil {
			var file figma.File
			if err := json.Unmarshal(data, &file); err == nil {
				return &file, nil
			}
			// Corrupt cache: fall through to the source.
		}
	}

	file, err := c.Source.Document()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(file); err == nil {
		if dir := filepath.Dir(c.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil && c.Logger != nil {
				c.Logger.Warnf("Could not create cache directory %s: %v", dir, err)
			}
		}
		if err := os.WriteFile(c.Path, data, 0644); err != nil && c.Logger != nil {
			c.Logger.Warnf("Could not write document cache %s: %v", c.Path, err)
		}
	}

	return file, nil
}

func (c *FileCache) fresh() bool {
	info, err := os.Stat(c.Path)
	if err != nil {
		return false
	}
	if c.MaxAge <= 0 {
		return true
	}
	return time.Since(info.ModTime()) <= c.MaxAge
}

// DirSink writes the two artifacts into a directory under their fixed names:
// MarkupName for the markup and renderer.StylesheetName for the stylesheet,
// matching the relative reference the markup carries.
type DirSink struct {
	Dir string
}

// WriteArtifacts creates the directory if needed and writes both files.
func (s *DirSink) WriteArtifacts(markup, stylesheet string) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", s.Dir, err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, MarkupName), []byte(markup), 0644); err != nil {
		return fmt.Errorf("failed to write markup: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, renderer.StylesheetName), []byte(stylesheet), 0644); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	return nil
}
