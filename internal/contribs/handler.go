package contribs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// cacheControl lets shared caches hold the SVG for 5 minutes with a minute of
// stale-while-revalidate, while browsers always revalidate.
const cacheControl = "public, max-age=0, s-maxage=300, stale-while-revalidate=60"

// Handler exposes the contributions endpoints.
type Handler struct {
	service *Service
	viewer  *Viewer
	log     *zap.Logger
}

func NewHandler(service *Service, viewer *Viewer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{service: service, viewer: viewer, log: log}
}

// Register mounts /api/contribs and /contribs/view.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/api/contribs", h.proxy)
	r.GET("/contribs/view", h.view)
}

// proxy serves the extracted upstream SVG. Every path terminates in a
// response; an unexpected panic becomes a plain 500 JSON body.
func (h *Handler) proxy(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("contribs proxy panicked", zap.Any("panic", r))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Exception"})
		}
	}()

	svg, err := h.service.Fetch(c.Request.Context(), c.Query("user"))
	switch {
	case errors.Is(err, ErrFetchFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch"})
	case errors.Is(err, ErrNoSVG):
		c.JSON(http.StatusBadGateway, gin.H{"error": "No svg"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Exception"})
	default:
		c.Header("Cache-Control", cacheControl)
		c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
	}
}

// view serves the analyzed, re-themed view model. The widget is decorative:
// load failures degrade to an empty view with 200, never an error page.
func (h *Handler) view(c *gin.Context) {
	year := c.DefaultQuery("year", YearLast)
	theme := Theme(c.DefaultQuery("theme", string(ThemeDark)))

	view, err := h.viewer.Load(c.Request.Context(), year, theme)
	if errors.Is(err, ErrUnknownSelection) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown year or theme"})
		return
	}
	if err != nil {
		h.log.Debug("view load degraded", zap.String("year", year), zap.Error(err))
		c.JSON(http.StatusOK, View{Legend: DefaultPalette[:], Period: periodLabel(year)})
		return
	}
	c.JSON(http.StatusOK, view)
}
