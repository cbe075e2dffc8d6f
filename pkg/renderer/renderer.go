// Package renderer emits the final text artifacts from the IR tree and the
// populated style registry: a stylesheet and a markup document referencing it.
// Both emitters are pure functions over read-only inputs, so the same input
// always produces byte-identical output.
package renderer

import "strconv"

// StylesheetName is the fixed relative name the markup links the stylesheet
// by. The artifact sink must persist the stylesheet under this exact name.
const StylesheetName = "style.css"

// num formats a float without a trailing mantissa: 20 not 20.000000, 20.5
// when fractional.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// px formats a pixel length.
func px(f float64) string {
	return num(f) + "px"
}
