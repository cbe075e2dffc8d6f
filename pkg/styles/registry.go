package styles

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-htmlgen/pkg/figma"
	"github.com/hellenic-development/figma-htmlgen/pkg/ir"
)

// Registry deduplicates visual style descriptors into stable class
// identifiers. Three independent tables: text styles (ts-*), fills (fs-*),
// and strokes (bs-*, keyed jointly with the stroke weight). Identifiers are
// assigned in first-registration order during a fixed pre-order traversal, so
// re-running collection on the same tree yields the same ids.
//
// A Registry is populated once by Collect and read-only afterwards.
type Registry struct {
	textStyles []TextClass
	fills      []FillClass
	strokes    []StrokeClass

	textIndex   map[string]string
	fillIndex   map[string]string
	strokeIndex map[string]string
}

// TextClass is one registered typography descriptor with its identifier.
type TextClass struct {
	ID    string
	Style figma.TypeStyle
}

// FillClass is one registered fill paint with its identifier.
type FillClass struct {
	ID    string
	Paint figma.Paint
}

// StrokeClass is one registered stroke paint + weight with its identifier.
// The same paint with a different weight is a distinct class.
type StrokeClass struct {
	ID     string
	Paint  figma.Paint
	Weight float64
}

// Collect traverses the IR forest pre-order (node, then fill, then stroke,
// then children) and registers every unique style descriptor it encounters.
// Re-encountering a structurally identical descriptor is a lookup, not a new
// entry.
func Collect(forest []*ir.Node) *Registry {
	r := &Registry{
		textIndex:   make(map[string]string),
		fillIndex:   make(map[string]string),
		strokeIndex: make(map[string]string),
	}
	for _, root := range forest {
		r.collect(root)
	}
	return r
}

func (r *Registry) collect(n *ir.Node) {
	if n.Text != nil {
		r.registerText(n.Text.Style)
	}
	if fill := FirstVisible(n.Fills); fill != nil {
		r.registerFill(*fill)
	}
	if stroke := FirstVisible(n.Strokes); stroke != nil && n.StrokeWeight > 0 {
		r.registerStroke(*stroke, n.StrokeWeight)
	}
	for _, child := range n.Children {
		r.collect(child)
	}
}

func (r *Registry) registerText(s figma.TypeStyle) string {
	key := typeStyleKey(s)
	if id, ok := r.textIndex[key]; ok {
		return id
	}
	id := fmt.Sprintf("ts-%d", len(r.textStyles))
	r.textStyles = append(r.textStyles, TextClass{ID: id, Style: s})
	r.textIndex[key] = id
	return id
}

func (r *Registry) registerFill(p figma.Paint) string {
	key := paintKey(p)
	if id, ok := r.fillIndex[key]; ok {
		return id
	}
	id := fmt.Sprintf("fs-%d", len(r.fills))
	r.fills = append(r.fills, FillClass{ID: id, Paint: p})
	r.fillIndex[key] = id
	return id
}

func (r *Registry) registerStroke(p figma.Paint, weight float64) string {
	key := strokeKey(p, weight)
	if id, ok := r.strokeIndex[key]; ok {
		return id
	}
	id := fmt.Sprintf("bs-%d", len(r.strokes))
	r.strokes = append(r.strokes, StrokeClass{ID: id, Paint: p, Weight: weight})
	r.strokeIndex[key] = id
	return id
}

// TextClassID returns the class identifier for the node's typography
// descriptor, or false for non-text nodes.
func (r *Registry) TextClassID(n *ir.Node) (string, bool) {
	if n.Text == nil {
		return "", false
	}
	id, ok := r.textIndex[typeStyleKey(n.Text.Style)]
	return id, ok
}

// FillClassID returns the class identifier for the node's first visible fill,
// or false when the node has none.
func (r *Registry) FillClassID(n *ir.Node) (string, bool) {
	fill := FirstVisible(n.Fills)
	if fill == nil {
		return "", false
	}
	id, ok := r.fillIndex[paintKey(*fill)]
	return id, ok
}

// StrokeClassID returns the class identifier for the node's first visible
// stroke and weight, or false when the node has no registrable stroke.
func (r *Registry) StrokeClassID(n *ir.Node) (string, bool) {
	stroke := FirstVisible(n.Strokes)
	if stroke == nil || n.StrokeWeight <= 0 {
		return "", false
	}
	id, ok := r.strokeIndex[strokeKey(*stroke, n.StrokeWeight)]
	return id, ok
}

// TextStyles returns the registered text styles in registration order.
func (r *Registry) TextStyles() []TextClass { return r.textStyles }

// Fills returns the registered fills in registration order.
func (r *Registry) Fills() []FillClass { return r.fills }

// Strokes returns the registered strokes in registration order.
func (r *Registry) Strokes() []StrokeClass { return r.strokes }

// Canonical structural keys. Fields are enumerated in a fixed order here, so
// key stability never depends on serialization or source attribute order:
// two descriptors with the same field values always share one key.

func typeStyleKey(s figma.TypeStyle) string {
	return fmt.Sprintf("family=%s|ps=%s|weight=%g|size=%g|lh=%g|ls=%g|ah=%s|av=%s|case=%s",
		s.FontFamily, s.FontPostScriptName, s.FontWeight, s.FontSize,
		s.LineHeightPx, s.LetterSpacing,
		s.TextAlignHorizontal, s.TextAlignVertical, s.TextCase)
}

func paintKey(p figma.Paint) string {
	var sb strings.Builder
	sb.WriteString("type=")
	sb.WriteString(p.Type)
	sb.WriteString("|visible=")
	sb.WriteString(triState(p.Visible))
	sb.WriteString("|opacity=")
	if p.Opacity != nil {
		fmt.Fprintf(&sb, "%g", *p.Opacity)
	} else {
		sb.WriteString("nil")
	}
	sb.WriteString("|color=")
	sb.WriteString(colorKey(p.Color))
	sb.WriteString("|stops=")
	for i := range p.GradientStops {
		stop := &p.GradientStops[i]
		fmt.Fprintf(&sb, "%g@%s;", stop.Position, colorKey(&stop.Color))
	}
	return sb.String()
}

func strokeKey(p figma.Paint, weight float64) string {
	return fmt.Sprintf("%s|weight=%g", paintKey(p), weight)
}

func colorKey(c *figma.Color) string {
	if c == nil {
		return "nil"
	}
	return fmt.Sprintf("%g,%g,%g,%g", c.R, c.G, c.B, c.A)
}

func triState(b *bool) string {
	switch {
	case b == nil:
		return "nil"
	case *b:
		return "true"
	default:
		return "false"
	}
}
