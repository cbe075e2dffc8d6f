package figma

import (
	"encoding/json"
	"testing"
)

func TestColorUnmarshalAlphaDefault(t *testing.T) {
	tests := []struct {
		name string
		data string
		want float64
	}{
		{name: "absent alpha is opaque", data: `{"r":1,"g":1,"b":1}`, want: 1},
		{name: "explicit zero alpha survives", data: `{"r":1,"g":1,"b":1,"a":0}`, want: 0},
		{name: "fractional alpha survives", data: `{"r":0,"g":0,"b":0,"a":0.5}`, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			if err := json.Unmarshal([]byte(tt.data), &c); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if c.A != tt.want {
				t.Errorf("A = %v, want %v", c.A, tt.want)
			}
		})
	}
}

func TestNodeUnmarshalNestedColorAlpha(t *testing.T) {
	data := `{
		"id": "1:1",
		"type": "RECTANGLE",
		"fills": [{"type": "SOLID", "color": {"r": 1, "g": 1, "b": 1}}]
	}`

	var n Node
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(n.Fills) != 1 || n.Fills[0].Color == nil {
		t.Fatalf("fills not decoded: %+v", n.Fills)
	}
	if got := n.Fills[0].Color.A; got != 1 {
		t.Errorf("fill color alpha = %v, want 1", got)
	}
}
