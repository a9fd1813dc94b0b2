package contribs

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/VehanRajintha/vehan-dev/internal/async"
)

// Year selector values offered by the graph.
const (
	YearLast = "Last Year"
	Year2025 = "2025"
	Year2024 = "2024"
	Year2023 = "2023"
)

// Years lists the selectors in display order.
var Years = []string{YearLast, Year2025, Year2024, Year2023}

// ErrNoData means neither the local asset nor the upstream fallback produced
// an SVG. The widget degrades to its placeholder; nothing is surfaced to the
// surrounding page.
var ErrNoData = errors.New("contribs: no svg from asset or fallback")

// ErrUnknownSelection means the year/theme pair is not in the asset table.
var ErrUnknownSelection = errors.New("contribs: unknown year or theme")

type assetKey struct {
	year  string
	theme Theme
}

// assetTable maps every (year, theme) pair to its pre-rendered SVG file.
// The dark "Last Year" name predates the yearly exports and is kept as-is.
var assetTable = map[assetKey]string{
	{YearLast, ThemeDark}:  "contrib-pattern.svg",
	{Year2025, ThemeDark}:  "contrib-2025.svg",
	{Year2024, ThemeDark}:  "contrib-2024.svg",
	{Year2023, ThemeDark}:  "contrib-2023.svg",
	{YearLast, ThemeLight}: "lightthemelastyear.svg",
	{Year2025, ThemeLight}: "lighttheme2025.svg",
	{Year2024, ThemeLight}: "lighttheme2024.svg",
	{Year2023, ThemeLight}: "lighttheme2023.svg",
}

// DefaultMinDelay is how long a load takes at minimum, matching the skeleton
// animation so the widget never flickers.
const DefaultMinDelay = 1500 * time.Millisecond

// View is the rendered result: the re-themed SVG, the summed total (nil when
// nothing parseable was found, so the caption shows no misleading zero), the
// 5-color legend and the human-readable period.
type View struct {
	SVG    string   `json:"svg"`
	Total  *int     `json:"total"`
	Legend []string `json:"legend"`
	Period string   `json:"period"`
}

// Viewer renders themed, year-filtered contribution calendars. It prefers the
// pre-rendered local asset and falls back to the live Service only when the
// asset is missing; the fallback runs after the asset attempt, not alongside.
type Viewer struct {
	assets   *AssetStore
	service  *Service
	username string
	minDelay time.Duration
	log      *zap.Logger
}

// NewViewer wires a Viewer. minDelay <= 0 selects DefaultMinDelay.
func NewViewer(assets *AssetStore, service *Service, username string, minDelay time.Duration, log *zap.Logger) *Viewer {
	if username == "" {
		username = DefaultUsername
	}
	if minDelay <= 0 {
		minDelay = DefaultMinDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewer{assets: assets, service: service, username: username, minDelay: minDelay, log: log}
}

// Load runs the full pipeline for one selection: resolve the asset, obtain
// SVG text (asset first, service fallback), hold for the minimum delay, then
// analyze and re-theme. Fetch and parse failures inside the pipeline are
// swallowed into ErrNoData; only cancellation is returned as itself.
func (v *Viewer) Load(ctx context.Context, year string, theme Theme) (View, error) {
	name, ok := assetTable[assetKey{year, theme}]
	if !ok {
		return View{}, ErrUnknownSelection
	}

	text, err := async.WithMinDelay(ctx, v.minDelay, func(ctx context.Context) (string, error) {
		return v.obtainSVG(ctx, name), nil
	})
	if err != nil {
		// Only cancellation reaches here; obtainSVG never fails.
		return View{}, err
	}
	if text == "" {
		return View{}, ErrNoData
	}

	svg, err := parseSVG(text)
	if err != nil {
		v.log.Warn("svg unparseable", zap.String("asset", name), zap.Error(err))
		return View{}, ErrNoData
	}

	legend := legendColors(svg)
	view := View{
		Legend: legend[:],
		Period: periodLabel(year),
	}
	if total := totalContributions(svg); total > 0 {
		view.Total = &total
	}

	themed, err := Retheme(text, theme)
	if err != nil {
		v.log.Warn("retheme failed", zap.String("asset", name), zap.Error(err))
		return View{}, ErrNoData
	}
	view.SVG = themed
	return view, nil
}

// obtainSVG tries the local asset, then the live service. Both failures are
// logged and absorbed; the empty string signals "nothing obtained".
func (v *Viewer) obtainSVG(ctx context.Context, name string) string {
	if text, err := v.assets.Get(name); err == nil {
		return text
	} else {
		v.log.Debug("asset miss, falling back to live fetch",
			zap.String("asset", name), zap.Error(err))
	}

	text, err := v.service.Fetch(ctx, v.username)
	if err != nil {
		v.log.Warn("live fetch fallback failed", zap.Error(err))
		return ""
	}
	return text
}

func periodLabel(year string) string {
	if year == YearLast {
		return "the last year"
	}
	return year
}
