// Package ir normalizes the raw Figma document tree into an intermediate
// representation with parent-relative coordinates. The IR tree is built once
// and read-only afterwards: the style registry and both emitters traverse it
// without mutating it.
package ir

import (
	"strings"

	"github.com/hellenic-development/figma-htmlgen/pkg/figma"
)

// Node is a single node of the normalized tree. X and Y are relative to the
// immediate parent's top-left corner; Width and Height are absolute sizes
// copied from the source bounding box. Children are owned by their parent and
// appear in source order.
type Node struct {
	ID   string
	Name string
	Type string

	X, Y          float64
	Width, Height float64

	Fills        []figma.Paint
	Strokes      []figma.Paint
	StrokeWeight float64
	Effects      []figma.Effect
	Opacity      float64
	CornerRadius *float64
	CornerRadii  *[4]float64

	// Text is set only for TEXT nodes.
	Text *Text

	Children []*Node
}

// Text carries the content and typography of a TEXT node. Style is the
// node's own typography descriptor, zero-valued when the source omitted it.
type Text struct {
	Characters string
	Style      figma.TypeStyle
}

// Normalize converts a raw node and its subtree into IR form. The origin is
// the absolute position of the parent's top-left corner; the node's relative
// position is a pure subtraction against it, so negative coordinates are
// allowed and meaningful (stroke overflow above/left of the parent).
//
// A missing bounding box is not an error: the node becomes a degenerate
// (0,0,0,0) entry and normalization continues.
func Normalize(raw *figma.Node, originX, originY float64) *Node {
	n := &Node{
		ID:           raw.ID,
		Name:         raw.Name,
		Type:         raw.Type,
		Fills:        raw.Fills,
		Strokes:      raw.Strokes,
		StrokeWeight: raw.StrokeWeight,
		Effects:      raw.Effects,
		Opacity:      1,
		CornerRadius: raw.CornerRadius,
		CornerRadii:  raw.RectangleCornerRadii,
	}

	if raw.Opacity != nil {
		n.Opacity = *raw.Opacity
	}

	// Children are positioned against this node's own absolute origin, so
	// relative coordinates compose correctly at any nesting depth.
	childOriginX, childOriginY := originX, originY
	if box := raw.AbsoluteBoundingBox; box != nil {
		n.X = box.X - originX
		n.Y = box.Y - originY
		n.Width = box.Width
		n.Height = box.Height
		childOriginX, childOriginY = box.X, box.Y
	}

	if raw.Type == figma.NodeTypeText {
		text := &Text{Characters: raw.Characters}
		if raw.Style != nil {
			text.Style = *raw.Style
		}
		n.Text = text
	}

	for i := range raw.Children {
		n.Children = append(n.Children, Normalize(&raw.Children[i], childOriginX, childOriginY))
	}

	return n
}

// FindRootFrame locates the node the document is rendered from: among the
// first page's children, the first FRAME whose name contains "frame"
// (case-insensitive). Sibling content on the page is discarded.
func FindRootFrame(file *figma.File) (*figma.Node, error) {
	if len(file.Document.Children) == 0 {
		return nil, &StructuralError{Reason: "document has no pages"}
	}

	page := &file.Document.Children[0]
	for i := range page.Children {
		child := &page.Children[i]
		if child.Type == figma.NodeTypeFrame && strings.Contains(strings.ToLower(child.Name), "frame") {
			return child, nil
		}
	}

	return nil, &StructuralError{Reason: `no FRAME named "*frame*" on the first page`}
}

// NormalizeDocument selects the root frame and normalizes its subtree against
// its own origin, so the root always lands at (0,0). The result is the
// single-root forest the registry and emitters consume.
func NormalizeDocument(file *figma.File) ([]*Node, error) {
	root, err := FindRootFrame(file)
	if err != nil {
		return nil, err
	}

	originX, originY := 0.0, 0.0
	if box := root.AbsoluteBoundingBox; box != nil {
		originX, originY = box.X, box.Y
	}

	return []*Node{Normalize(root, originX, originY)}, nil
}
