package contribs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSVG = `<svg width="700" height="112">
<style>.old { fill: red; }</style>
<g>
<rect data-level="0" fill="#161b22" width="10" height="10"><title>No contributions</title></rect>
<rect data-level="2" fill="#0b7a52" width="10" height="10"><title>3 contributions</title></rect>
<rect data-level="2" fill="#ffffff" width="10" height="10"><title>5 contributions</title></rect>
<rect data-level="4" fill="#39d353" width="10" height="10"><title>1,024 contributions</title></rect>
</g>
<text x="0" y="20">May</text>
</svg>`

func TestTotalContributions(t *testing.T) {
	svg, err := parseSVG(sampleSVG)
	require.NoError(t, err)

	// 3 + 5 + 1024; the "No contributions" title has no digits and is skipped.
	assert.Equal(t, 1032, totalContributions(svg))
}

func TestTotalContributionsNoParseableTitles(t *testing.T) {
	svg, err := parseSVG(`<svg><rect data-level="0"><title>No contributions</title></rect></svg>`)
	require.NoError(t, err)
	assert.Equal(t, 0, totalContributions(svg))
}

func TestLegendColors(t *testing.T) {
	svg, err := parseSVG(sampleSVG)
	require.NoError(t, err)

	legend := legendColors(svg)
	assert.Equal(t, "#161b22", legend[0], "level 0 from the svg")
	assert.Equal(t, DefaultPalette[1], legend[1], "level 1 absent, default palette")
	assert.Equal(t, "#0b7a52", legend[2], "first matching cell wins")
	assert.Equal(t, DefaultPalette[3], legend[3])
	assert.Equal(t, "#39d353", legend[4])
}

func TestLegendDeterministic(t *testing.T) {
	svg, err := parseSVG(sampleSVG)
	require.NoError(t, err)
	first := legendColors(svg)

	again, err := parseSVG(sampleSVG)
	require.NoError(t, err)
	assert.Equal(t, first, legendColors(again))
}

func TestLegendAllAbsentFallsBackSilently(t *testing.T) {
	svg, err := parseSVG(`<svg><rect fill="#123456"/></svg>`)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette, legendColors(svg))
}

func TestParseSVGRejectsNonSVG(t *testing.T) {
	_, err := parseSVG(`<html><body>plain page</body></html>`)
	assert.ErrorIs(t, err, ErrParse)
}

func TestRethemeReplacesExistingStyle(t *testing.T) {
	out, err := Retheme(sampleSVG, ThemeDark)
	require.NoError(t, err)

	assert.Contains(t, out, "stroke:none!important")
	assert.Contains(t, out, "background:transparent!important")
	assert.Contains(t, out, "fill:#cbd5e1!important")
	assert.NotContains(t, out, ".old", "existing style content is replaced, not kept")

	// Day cells and titles survive the rewrite.
	assert.Contains(t, out, `data-level="4"`)
	assert.Contains(t, out, "1,024 contributions")
}

func TestRethemeInjectsStyleWhenAbsent(t *testing.T) {
	out, err := Retheme(`<svg><rect data-level="1" fill="#064e3b"/></svg>`, ThemeLight)
	require.NoError(t, err)
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, "fill:#374151!important")
}

func TestRethemeThemeColors(t *testing.T) {
	dark, err := Retheme(sampleSVG, ThemeDark)
	require.NoError(t, err)
	light, err := Retheme(sampleSVG, ThemeLight)
	require.NoError(t, err)

	assert.Contains(t, dark, "#cbd5e1")
	assert.Contains(t, light, "#374151")
	assert.NotContains(t, light, "#cbd5e1")
}

func TestRethemeRoundTripsThroughAnalysis(t *testing.T) {
	out, err := Retheme(sampleSVG, ThemeDark)
	require.NoError(t, err)

	svg, err := parseSVG(out)
	require.NoError(t, err)
	assert.Equal(t, 1032, totalContributions(svg))
}
