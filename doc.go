// Package figmahtmlgen converts a Figma design frame into a pixel-faithful
// static document: an absolutely positioned HTML page plus a deduplicated
// stylesheet in which identical text styles, fills, and strokes share one
// class each.
//
// The CLI lives in cmd/figma-htmlgen; this root package exposes the same
// pipeline as a Go API so that callers can embed generation in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmahtmlgen:
//
//	import "github.com/hellenic-development/figma-htmlgen" // package figmahtmlgen
//
// # Quick start
//
//	result, err := figmahtmlgen.Run(figmahtmlgen.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	    OutputDir:   "site",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("rendered", result.FileName)
//
// # Pipeline
//
// The raw document is normalized into an intermediate tree with
// parent-relative coordinates (pkg/ir), a style registry deduplicates the
// visual descriptors encountered during a fixed pre-order traversal
// (pkg/styles), and two pure emitters produce the stylesheet and the markup
// (pkg/renderer). The whole pipeline is deterministic: the same document
// yields byte-identical artifacts on every run.
//
// # Collaborators
//
// Retrieval and persistence are pluggable. [Options.Source] accepts any
// [DocumentSource]; by default the Figma REST API is used, optionally behind
// the on-disk [FileCache]. [Options.Sink] accepts any [ArtifactSink]; by
// default [DirSink] writes index.html and style.css into the output
// directory.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Rendering model
//
// The generator renders the first FRAME on the first page whose name
// contains "frame" (case-insensitive); a document without one fails with
// [ir.StructuralError]. Output is always absolutely positioned at the
// fidelity of the source bounding boxes: no responsive layout, auto-layout
// resolution, rotation, or blend modes.
package figmahtmlgen
