package figmahtmlgen

import (
	"fmt"
	"time"

	"github.com/hellenic-development/figma-htmlgen/pkg/figma"
	"github.com/hellenic-development/figma-htmlgen/pkg/ir"
	"github.com/hellenic-development/figma-htmlgen/pkg/renderer"
	"github.com/hellenic-development/figma-htmlgen/pkg/styles"
)

// Version is the release version of the generator.
const Version = "0.1.0"

// Options configures a generation run.
type Options struct {
	AccessToken string
	FileURL     string        // Figma file URL
	OutputDir   string        // where DirSink writes index.html and style.css
	CacheFile   string        // optional path for the raw-document cache; empty = no cache
	CacheMaxAge time.Duration // cache freshness window; 0 = never expires

	// Source overrides API retrieval entirely when set; AccessToken,
	// FileURL, and CacheFile are then ignored.
	Source DocumentSource
	// Sink overrides the directory sink when set; OutputDir is then ignored.
	Sink ArtifactSink

	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the generation output.
type Result struct {
	FileName   string // Figma file name
	Markup     string // generated markup document
	Stylesheet string // generated stylesheet
	Registry   *styles.Registry
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// Run executes the generation pipeline: retrieve the raw document, normalize
// it into the IR, collect the style registry, emit both artifacts, and hand
// them to the sink. The pipeline is a pure function of the raw document, so
// re-running it on the same input reproduces the same two artifacts
// byte-for-byte.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.OutputDir == "" {
		opts.OutputDir = "figma-site"
	}

	source := opts.Source
	if source == nil {
		opts.logInfo("Extracting file key from URL...")
		fileKey, err := figma.ExtractFileKey(opts.FileURL)
		if err != nil {
			return nil, fmt.Errorf("extract file key: %w", err)
		}
		opts.logInfo("File key: %s", fileKey)

		opts.logInfo("Authenticating with Figma API...")
		source = NewAPISource(figma.NewClient(opts.AccessToken), fileKey)
		if opts.CacheFile != "" {
			source = &FileCache{Path: opts.CacheFile, MaxAge: opts.CacheMaxAge, Source: source, Logger: opts.Logger}
		}
	}

	opts.logInfo("Fetching file data...")
	file, err := source.Document()
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	opts.logInfo("File: %s", file.Name)

	opts.logInfo("Normalizing document tree...")
	forest, err := ir.NormalizeDocument(file)
	if err != nil {
		return nil, fmt.Errorf("normalize document: %w", err)
	}

	opts.logInfo("Collecting style registry...")
	reg := styles.Collect(forest)

	opts.logInfo("Emitting stylesheet and markup...")
	stylesheet := renderer.Stylesheet(reg)
	markup := renderer.Markup(forest, reg, file.Name)

	sink := opts.Sink
	if sink == nil {
		sink = &DirSink{Dir: opts.OutputDir}
	}
	if err := sink.WriteArtifacts(markup, stylesheet); err != nil {
		return nil, fmt.Errorf("write artifacts: %w", err)
	}

	return &Result{
		FileName:   file.Name,
		Markup:     markup,
		Stylesheet: stylesheet,
		Registry:   reg,
	}, nil
}
