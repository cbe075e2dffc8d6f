package figma

import "encoding/json"

// File represents the complete response from the Figma file API endpoint.
// The Document node is the root of the design tree; its immediate children
// are the pages (CANVAS nodes) of the file.
type File struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	Version       string `json:"version"`
	Document      Node   `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, shapes, or other Figma elements, each
// with their own geometry, fills, strokes, effects, and children.
//
// Attributes whose absence is semantically different from their zero value
// (opacity, corner radii, paint visibility) are pointers so that a missing
// field survives decoding as nil rather than collapsing to zero.
type Node struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	Type                 string      `json:"type"`
	Children             []Node      `json:"children,omitempty"`
	Fills                []Paint     `json:"fills,omitempty"`
	Strokes              []Paint     `json:"strokes,omitempty"`
	StrokeWeight         float64     `json:"strokeWeight,omitempty"`
	Effects              []Effect    `json:"effects,omitempty"`
	Opacity              *float64    `json:"opacity,omitempty"`
	CornerRadius         *float64    `json:"cornerRadius,omitempty"`
	RectangleCornerRadii *[4]float64 `json:"rectangleCornerRadii,omitempty"`
	Characters           string      `json:"characters,omitempty"`
	Style                *TypeStyle  `json:"style,omitempty"`
	AbsoluteBoundingBox  *Rectangle  `json:"absoluteBoundingBox,omitempty"`
}

// Node type tags used by the pipeline. The Figma API defines more; anything
// not listed here is treated as a generic container.
const (
	NodeTypeCanvas = "CANVAS"
	NodeTypeFrame  = "FRAME"
	NodeTypeText   = "TEXT"
)

// Color represents an RGBA color with float values ranging from 0 to 1.
// A missing alpha channel decodes as 1 (opaque), so an explicit "a":0 stays
// distinguishable from an omitted one.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// UnmarshalJSON decodes a color, defaulting the alpha channel to 1 when the
// field is absent.
func (c *Color) UnmarshalJSON(data []byte) error {
	type plain Color
	tmp := plain{A: 1}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = Color(tmp)
	return nil
}

// Paint represents a fill or stroke applied to a Figma node.
//
// Visible is a pointer because the API omits the field when it is true:
// a paint is hidden only when the flag is explicitly false.
type Paint struct {
	Type          string      `json:"type"`
	Visible       *bool       `json:"visible,omitempty"`
	Opacity       *float64    `json:"opacity,omitempty"`
	Color         *Color      `json:"color,omitempty"`
	GradientStops []ColorStop `json:"gradientStops,omitempty"`
}

// Paint type tags the pipeline distinguishes. Unrecognized types degrade to
// a transparent expression rather than failing.
const (
	PaintTypeSolid          = "SOLID"
	PaintTypeGradientLinear = "GRADIENT_LINEAR"
)

// Hidden reports whether the paint's visibility flag is explicitly false.
func (p Paint) Hidden() bool {
	return p.Visible != nil && !*p.Visible
}

// ColorStop is a single stop in a gradient paint, positioned from 0 to 1.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Effect represents a visual effect applied to a Figma node such as drop
// shadows, inner shadows, or blur effects.
type Effect struct {
	Type      string  `json:"type"`
	Visible   bool    `json:"visible"`
	Radius    float64 `json:"radius,omitempty"`
	Color     *Color  `json:"color,omitempty"`
	Offset    *Vector `json:"offset,omitempty"`
	Spread    float64 `json:"spread,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`
}

// Vector represents a 2D coordinate or offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents the typography properties of a TEXT node: font family,
// weight, size, line height, letter spacing, alignment, and casing.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontPostScriptName  string  `json:"fontPostScriptName,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string  `json:"textAlignVertical,omitempty"`
	TextCase            string  `json:"textCase,omitempty"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions
// (Width, Height) in the absolute coordinate space of the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
