// Package contribs fetches, analyzes and re-themes GitHub contribution
// calendars: a small upstream proxy that extracts the SVG from the public
// contributions page, and a viewer that serves pre-rendered yearly SVGs with
// computed totals and a legend.
package contribs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"go.uber.org/zap"
)

// DefaultUpstream is the public endpoint serving contribution calendars.
const DefaultUpstream = "https://github.com"

// DefaultUsername is used when a request carries no username.
const DefaultUsername = "VehanRajintha"

var (
	// ErrFetchFailed means the upstream was unreachable or answered non-2xx.
	ErrFetchFailed = errors.New("contribs: upstream fetch failed")
	// ErrNoSVG means the upstream page contained no <svg> element.
	ErrNoSVG = errors.New("contribs: no svg in upstream response")
)

// First <svg>...</svg> span, shortest match, case-insensitive.
var svgPattern = regexp.MustCompile(`(?is)<svg.*?</svg>`)

// Service proxies the upstream contributions page. It is stateless; every
// Fetch is independent and safe to retry.
type Service struct {
	upstream string
	username string
	client   *http.Client
	log      *zap.Logger
}

// NewService builds a Service. upstream and defaultUser fall back to the
// package defaults when empty; the upstream override exists for tests.
func NewService(upstream, defaultUser string, log *zap.Logger) *Service {
	if upstream == "" {
		upstream = DefaultUpstream
	}
	if defaultUser == "" {
		defaultUser = DefaultUsername
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		upstream: upstream,
		username: defaultUser,
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      log,
	}
}

// Fetch retrieves the contributions page for username (the configured default
// when empty) and returns the first embedded SVG element verbatim.
func (s *Service) Fetch(ctx context.Context, username string) (string, error) {
	if username == "" {
		username = s.username
	}

	url := fmt.Sprintf("%s/users/%s/contributions", s.upstream, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warn("upstream returned non-2xx",
			zap.String("user", username), zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	svg := svgPattern.FindString(string(body))
	if svg == "" {
		return "", ErrNoSVG
	}
	return svg, nil
}
