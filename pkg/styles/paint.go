// Package styles turns paint and typography descriptors into CSS expressions
// and deduplicates them into stable, shared class identifiers.
package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/hellenic-development/figma-htmlgen/pkg/figma"
)

// ColorExpression converts a solid paint into an rgba() expression with 8-bit
// rounded channels. The alpha channel is the paint's own opacity when present,
// else the color's alpha, else 1, formatted to three decimal places. Any
// non-solid or absent paint yields the literal "transparent".
//
// The registry and both emitters all resolve colors through this function so
// the three stay visually consistent.
func ColorExpression(p *figma.Paint) string {
	if p == nil || p.Type != figma.PaintTypeSolid || p.Color == nil {
		return "transparent"
	}

	c := p.Color
	alpha := c.A
	if p.Opacity != nil {
		alpha = *p.Opacity
	}

	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))

	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", r, g, b, alpha)
}

// GradientExpression converts a paint with gradient stops into a CSS gradient
// expression. Linear gradients always render at a fixed 90° angle; every
// other gradient kind renders as a radial gradient. Returns the empty string
// for paints without stops.
func GradientExpression(p *figma.Paint) string {
	if p == nil || len(p.GradientStops) == 0 {
		return ""
	}

	stops := make([]string, 0, len(p.GradientStops))
	for i := range p.GradientStops {
		stop := &p.GradientStops[i]
		color := ColorExpression(&figma.Paint{Type: figma.PaintTypeSolid, Color: &stop.Color})
		stops = append(stops, fmt.Sprintf("%s %d%%", color, int(math.Round(stop.Position*100))))
	}

	if p.Type == figma.PaintTypeGradientLinear {
		return fmt.Sprintf("linear-gradient(90deg, %s)", strings.Join(stops, ", "))
	}
	return fmt.Sprintf("radial-gradient(%s)", strings.Join(stops, ", "))
}

// FirstVisible returns the first paint whose visibility flag is not
// explicitly false, or nil when none qualifies. Collection and class lookup
// must share this selection rule or class references would dangle.
func FirstVisible(paints []figma.Paint) *figma.Paint {
	for i := range paints {
		if !paints[i].Hidden() {
			return &paints[i]
		}
	}
	return nil
}
