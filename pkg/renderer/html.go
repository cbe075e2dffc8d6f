package renderer

import (
	"strings"

	"github.com/hellenic-development/figma-htmlgen/pkg/ir"
	"github.com/hellenic-development/figma-htmlgen/pkg/styles"
)

// textEscaper rewrites the three markup metacharacters. Whitespace and
// newlines in text content pass through verbatim.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeText escapes text content for embedding in markup.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// Markup emits the markup document for the IR forest. Each root becomes a
// page-level section sized to its own bounds; descendants render as
// absolutely positioned containers, text nodes as vertically centered
// wrappers around an inline text element.
func Markup(forest []*ir.Node, reg *styles.Registry, title string) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	sb.WriteString("<title>" + EscapeText(title) + "</title>\n")
	sb.WriteString("<link rel=\"stylesheet\" href=\"" + StylesheetName + "\">\n")
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")

	for _, root := range forest {
		writePage(&sb, root, reg)
	}

	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return sb.String()
}

// writePage renders a root of the forest: a relative-positioned section that
// carries the root's own fill/stroke classes and clips to its rounded box
// when a corner radius is present.
func writePage(sb *strings.Builder, root *ir.Node, reg *styles.Registry) {
	classes := []string{"page"}
	if id, ok := reg.FillClassID(root); ok {
		classes = append(classes, id)
	}
	if id, ok := reg.StrokeClassID(root); ok {
		classes = append(classes, id)
	}

	var style strings.Builder
	style.WriteString("width:" + px(root.Width) + ";")
	style.WriteString("height:" + px(root.Height) + ";")
	if radius := radiusDecls(root); radius != "" {
		style.WriteString(radius)
		style.WriteString("overflow:hidden;")
	}

	sb.WriteString("<div class=\"" + strings.Join(classes, " ") + "\" style=\"" + style.String() + "\">\n")
	for _, child := range root.Children {
		writeNode(sb, child, reg, 1)
	}
	sb.WriteString("</div>\n")
}

// writeNode renders one descendant node at the given nesting depth.
func writeNode(sb *strings.Builder, n *ir.Node, reg *styles.Registry, depth int) {
	indent := strings.Repeat("  ", depth)

	// Fills on text nodes render as foreground color on the text element,
	// never as a background class on the container.
	classes := []string{"node"}
	if n.Text == nil {
		if id, ok := reg.FillClassID(n); ok {
			classes = append(classes, id)
		}
	}
	if id, ok := reg.StrokeClassID(n); ok {
		classes = append(classes, id)
	}

	var style strings.Builder
	style.WriteString("left:" + px(n.X) + ";")
	style.WriteString("top:" + px(n.Y) + ";")
	style.WriteString("width:" + px(n.Width) + ";")
	style.WriteString("height:" + px(n.Height) + ";")
	if n.Opacity != 1 {
		style.WriteString("opacity:" + num(n.Opacity) + ";")
	}
	style.WriteString(radiusDecls(n))

	if n.Text != nil {
		// Flex cross-axis centering approximates Figma's vertical alignment.
		style.WriteString("display:flex;align-items:center;")
		sb.WriteString(indent + "<div class=\"" + strings.Join(classes, " ") + "\" style=\"" + style.String() + "\">\n")
		writeTextElement(sb, n, reg, depth+1)
		sb.WriteString(indent + "</div>\n")
		return
	}

	open := indent + "<div class=\"" + strings.Join(classes, " ") + "\" style=\"" + style.String() + "\">"
	if len(n.Children) == 0 {
		sb.WriteString(open + "</div>\n")
		return
	}

	sb.WriteString(open + "\n")
	for _, child := range n.Children {
		writeNode(sb, child, reg, depth+1)
	}
	sb.WriteString(indent + "</div>\n")
}

// writeTextElement renders the inline text element of a TEXT node. The shared
// ts-* class is attached, and alignment, color, and sizing declarations are
// additionally duplicated inline from the node's own typography descriptor so
// the element stays fully specified on its own.
func writeTextElement(sb *strings.Builder, n *ir.Node, reg *styles.Registry, depth int) {
	indent := strings.Repeat("  ", depth)
	s := n.Text.Style

	var style strings.Builder
	if s.TextAlignHorizontal != "" {
		style.WriteString("text-align:" + textAlign(s.TextAlignHorizontal) + ";")
	}
	if fill := styles.FirstVisible(n.Fills); fill != nil {
		style.WriteString("color:" + styles.ColorExpression(fill) + ";")
	}
	if s.FontSize > 0 {
		style.WriteString("font-size:" + px(s.FontSize) + ";")
	}
	if s.FontWeight > 0 {
		style.WriteString("font-weight:" + num(s.FontWeight) + ";")
	}
	if s.LineHeightPx > 0 {
		style.WriteString("line-height:" + px(s.LineHeightPx) + ";")
	}
	if s.LetterSpacing != 0 {
		style.WriteString("letter-spacing:" + px(s.LetterSpacing) + ";")
	}

	class := ""
	if id, ok := reg.TextClassID(n); ok {
		class = " class=\"" + id + "\""
	}

	sb.WriteString(indent + "<span" + class + " style=\"" + style.String() + "\">" + EscapeText(n.Text.Characters) + "</span>\n")
}

// radiusDecls emits the border-radius declarations: the scalar radius first,
// then the 4-tuple (top-left, top-right, bottom-right, bottom-left). When
// both are present the tuple declaration comes last and wins in the cascade.
func radiusDecls(n *ir.Node) string {
	var sb strings.Builder
	if n.CornerRadius != nil {
		sb.WriteString("border-radius:" + px(*n.CornerRadius) + ";")
	}
	if n.CornerRadii != nil {
		r := n.CornerRadii
		sb.WriteString("border-radius:" + px(r[0]) + " " + px(r[1]) + " " + px(r[2]) + " " + px(r[3]) + ";")
	}
	return sb.String()
}
