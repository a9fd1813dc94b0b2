package contribs

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// DefaultPalette is the level 0..4 legend fallback, darkest to brightest,
// used for any level the fetched SVG does not contain.
var DefaultPalette = [5]string{"#0b1113", "#064e3b", "#0b7a52", "#15c38b", "#39d353"}

// ErrParse means the payload could not be parsed into an <svg> element.
var ErrParse = errors.New("contribs: svg parse failed")

// First digit run, optional thousands separators.
var countPattern = regexp.MustCompile(`\d[\d,]*`)

// parseSVG parses markup and returns the first <svg> element node.
func parseSVG(text string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, ErrParse
	}
	svg := findElement(doc, "svg")
	if svg == nil {
		return nil, ErrParse
	}
	return svg, nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// totalContributions sums the first number found in every <title> under svg.
// Titles without a digit run ("No contributions on ...") are skipped.
func totalContributions(svg *html.Node) int {
	total := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" {
			m := countPattern.FindString(textContent(n))
			if m != "" {
				if v, err := strconv.Atoi(strings.ReplaceAll(m, ",", "")); err == nil {
					total += v
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(svg)
	return total
}

// legendColors derives the 5-swatch legend: for each level 0..4 the fill of
// the first day cell tagged with that level, or the default palette entry
// when the level is absent. The fallback is silent, so a graph with no tagged
// cells at all still produces a full legend.
func legendColors(svg *html.Node) [5]string {
	legend := DefaultPalette
	for level := 0; level < 5; level++ {
		want := strconv.Itoa(level)
		if cell := findDayCell(svg, want); cell != nil {
			if fill, ok := attr(cell, "fill"); ok && strings.TrimSpace(fill) != "" {
				legend[level] = strings.TrimSpace(fill)
			}
		}
	}
	return legend
}

func findDayCell(n *html.Node, level string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "rect" {
		if v, ok := attr(n, "data-level"); ok && v == level {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findDayCell(c, level); found != nil {
			return found
		}
	}
	return nil
}
