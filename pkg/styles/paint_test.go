package styles

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-htmlgen/pkg/figma"
)

func solid(r, g, b, a float64) figma.Paint {
	return figma.Paint{Type: figma.PaintTypeSolid, Color: &figma.Color{R: r, G: g, B: b, A: a}}
}

func TestColorExpression(t *testing.T) {
	half := 0.25

	tests := []struct {
		name  string
		paint *figma.Paint
		want  string
	}{
		{
			name:  "opaque white",
			paint: &figma.Paint{Type: figma.PaintTypeSolid, Color: &figma.Color{R: 1, G: 1, B: 1, A: 1}},
			want:  "rgba(255,255,255,1.000)",
		},
		{
			name:  "channels are 8-bit rounded",
			paint: &figma.Paint{Type: figma.PaintTypeSolid, Color: &figma.Color{R: 0.5, G: 0.2, B: 0.8, A: 1}},
			want:  "rgba(128,51,204,1.000)",
		},
		{
			name:  "color alpha used when paint opacity absent",
			paint: &figma.Paint{Type: figma.PaintTypeSolid, Color: &figma.Color{R: 0, G: 0, B: 0, A: 0.5}},
			want:  "rgba(0,0,0,0.500)",
		},
		{
			name:  "paint opacity wins over color alpha",
			paint: &figma.Paint{Type: figma.PaintTypeSolid, Opacity: &half, Color: &figma.Color{R: 0, G: 0, B: 0, A: 0.9}},
			want:  "rgba(0,0,0,0.250)",
		},
		{
			name:  "non-solid paint degrades",
			paint: &figma.Paint{Type: "IMAGE"},
			want:  "transparent",
		},
		{
			name:  "solid without color degrades",
			paint: &figma.Paint{Type: figma.PaintTypeSolid},
			want:  "transparent",
		},
		{
			name:  "absent paint degrades",
			paint: nil,
			want:  "transparent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorExpression(tt.paint))
		})
	}
}

func TestColorExpressionAbsentAlphaIsOpaque(t *testing.T) {
	// A solid paint whose color JSON omits "a" must render opaque, not
	// transparent: the alpha fallback chain ends at 1.
	var p figma.Paint
	require.NoError(t, json.Unmarshal([]byte(`{"type":"SOLID","color":{"r":1,"g":1,"b":1}}`), &p))

	assert.Equal(t, "rgba(255,255,255,1.000)", ColorExpression(&p))
}

func TestGradientExpression(t *testing.T) {
	stops := []figma.ColorStop{
		{Position: 0, Color: figma.Color{R: 1, G: 0, B: 0, A: 1}},
		{Position: 0.499, Color: figma.Color{R: 0, G: 1, B: 0, A: 1}},
		{Position: 1, Color: figma.Color{R: 0, G: 0, B: 1, A: 1}},
	}

	t.Run("linear at fixed angle", func(t *testing.T) {
		p := &figma.Paint{Type: figma.PaintTypeGradientLinear, GradientStops: stops}
		want := "linear-gradient(90deg, rgba(255,0,0,1.000) 0%, rgba(0,255,0,1.000) 50%, rgba(0,0,255,1.000) 100%)"
		assert.Equal(t, want, GradientExpression(p))
	})

	t.Run("non-linear kinds render radial", func(t *testing.T) {
		p := &figma.Paint{Type: "GRADIENT_RADIAL", GradientStops: stops[:2]}
		want := "radial-gradient(rgba(255,0,0,1.000) 0%, rgba(0,255,0,1.000) 50%)"
		assert.Equal(t, want, GradientExpression(p))
	})

	t.Run("no stops yields nothing", func(t *testing.T) {
		assert.Equal(t, "", GradientExpression(&figma.Paint{Type: figma.PaintTypeGradientLinear}))
		assert.Equal(t, "", GradientExpression(nil))
	})
}

func TestFirstVisible(t *testing.T) {
	hidden := false

	t.Run("skips explicitly hidden paints", func(t *testing.T) {
		first := solid(1, 0, 0, 1)
		first.Visible = &hidden
		second := solid(0, 1, 0, 1)

		got := FirstVisible([]figma.Paint{first, second})
		require.NotNil(t, got)
		assert.Equal(t, 1.0, got.Color.G)
	})

	t.Run("absent flag counts as visible", func(t *testing.T) {
		paints := []figma.Paint{solid(0, 0, 1, 1)}
		got := FirstVisible(paints)
		require.NotNil(t, got)
		assert.Equal(t, 1.0, got.Color.B)
	})

	t.Run("empty and all-hidden lists", func(t *testing.T) {
		assert.Nil(t, FirstVisible(nil))
		p := solid(1, 1, 1, 1)
		p.Visible = &hidden
		assert.Nil(t, FirstVisible([]figma.Paint{p}))
	})
}
