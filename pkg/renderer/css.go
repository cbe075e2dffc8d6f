package renderer

import (
	"strings"

	"github.com/hellenic-development/figma-htmlgen/pkg/figma"
	"github.com/hellenic-development/figma-htmlgen/pkg/styles"
)

// cssPreamble holds the global reset and the two structural positioning
// primitives: .page for each root (relative anchor) and .node for all
// descendants (absolute, parent-relative).
const cssPreamble = `* {
  box-sizing:border-box;
  margin:0;
  padding:0;
}

body {
  display:flex;
  flex-direction:column;
  align-items:center;
  justify-content:center;
  min-height:100vh;
}

.page {
  position:relative;
}

.node {
  position:absolute;
}
`

// Stylesheet emits the complete stylesheet text: the reset preamble, then one
// rule block per registered text style, fill, and stroke, each table in
// registration order. Tables the registry left empty contribute nothing.
func Stylesheet(reg *styles.Registry) string {
	var sb strings.Builder
	sb.WriteString(cssPreamble)

	for _, ts := range reg.TextStyles() {
		writeRule(&sb, ts.ID, typeStyleDecls(ts.Style))
	}
	for _, fc := range reg.Fills() {
		writeRule(&sb, fc.ID, fillDecls(fc.Paint))
	}
	for _, sc := range reg.Strokes() {
		writeRule(&sb, sc.ID, strokeDecls(sc.Paint, sc.Weight))
	}

	return sb.String()
}

func writeRule(sb *strings.Builder, class string, decls []string) {
	sb.WriteString("\n.")
	sb.WriteString(class)
	sb.WriteString(" {\n")
	for _, d := range decls {
		sb.WriteString("  ")
		sb.WriteString(d)
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
}

// typeStyleDecls emits each typography declaration only when the source
// attribute was present; a zero-valued descriptor yields an empty rule.
func typeStyleDecls(s figma.TypeStyle) []string {
	var decls []string
	if s.FontFamily != "" {
		decls = append(decls, "font-family:'"+s.FontFamily+"';")
	}
	if s.FontSize > 0 {
		decls = append(decls, "font-size:"+px(s.FontSize)+";")
	}
	if s.FontWeight > 0 {
		decls = append(decls, "font-weight:"+num(s.FontWeight)+";")
	}
	if s.LineHeightPx > 0 {
		decls = append(decls, "line-height:"+px(s.LineHeightPx)+";")
	}
	if s.LetterSpacing != 0 {
		decls = append(decls, "letter-spacing:"+px(s.LetterSpacing)+";")
	}
	if s.TextAlignHorizontal != "" {
		decls = append(decls, "text-align:"+textAlign(s.TextAlignHorizontal)+";")
	}
	if s.TextCase == "UPPER" {
		decls = append(decls, "text-transform:uppercase;")
	}
	return decls
}

func fillDecls(p figma.Paint) []string {
	if g := styles.GradientExpression(&p); g != "" {
		return []string{"background:" + g + ";"}
	}
	return []string{"background-color:" + styles.ColorExpression(&p) + ";"}
}

func strokeDecls(p figma.Paint, weight float64) []string {
	return []string{"border:" + px(weight) + " solid " + styles.ColorExpression(&p) + ";"}
}

// textAlign maps Figma's horizontal alignment tags to CSS values.
func textAlign(figmaAlign string) string {
	switch figmaAlign {
	case "JUSTIFIED":
		return "justify"
	default:
		return strings.ToLower(figmaAlign)
	}
}
