package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/graviti/shiptracker/internal/core/analysis"
	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/ports"
)

// ChartHandler serves the selected vessel's charts as PNG images.
type ChartHandler struct {
	trackService ports.TrackService
	renderer     ports.ChartRenderer
}

func NewChartHandler(trackService ports.TrackService, renderer ports.ChartRenderer) *ChartHandler {
	return &ChartHandler{trackService: trackService, renderer: renderer}
}

// Chart handles GET /charts/:name. Without a dataset or selection the
// renderer's no-data placeholder is returned instead of an error.
func (h *ChartHandler) Chart(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	records, err := h.trackService.Subset(sess)
	if err != nil && !errors.Is(err, domain.ErrNoData) && !errors.Is(err, domain.ErrNoSelection) {
		return err
	}

	key := strings.TrimSuffix(c.Param("name"), ".png")
	ch, err := analysis.ChartFor(key, records)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderPNG(c.Request().Context(), ch, &buf); err != nil {
		return err
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
