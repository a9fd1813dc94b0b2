package contribs

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Theme selects the recoloring applied to the rendered SVG.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// textColor returns the label fill for a theme: gray-700 on light, slate-300
// on dark, matching the surrounding page.
func (t Theme) textColor() string {
	if t == ThemeLight {
		return "#374151"
	}
	return "#cbd5e1"
}

// Retheme rewrites an SVG's embedded stylesheet so it blends into the page:
// no cell strokes, transparent background, theme-colored 12px labels. The
// existing <style> block is replaced in place, or one is inserted as the
// first child of <svg> when absent. The document is parsed and serialized
// once; no text splicing.
func Retheme(svgText string, theme Theme) (string, error) {
	svg, err := parseSVG(svgText)
	if err != nil {
		return "", err
	}

	css := fmt.Sprintf(
		"rect{stroke:none!important}svg{background:transparent!important}"+
			"text{display:block!important;visibility:visible!important;opacity:1!important;"+
			"fill:%s!important;font-size:12px!important;font-weight:400!important}",
		theme.textColor(),
	)

	if style := findElement(svg, "style"); style != nil {
		for c := style.FirstChild; c != nil; {
			next := c.NextSibling
			style.RemoveChild(c)
			c = next
		}
		style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	} else {
		style := &html.Node{Type: html.ElementNode, Data: "style"}
		style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
		if svg.FirstChild != nil {
			svg.InsertBefore(style, svg.FirstChild)
		} else {
			svg.AppendChild(style)
		}
	}

	var b strings.Builder
	if err := html.Render(&b, svg); err != nil {
		return "", fmt.Errorf("render svg: %w", err)
	}
	return b.String(), nil
}
