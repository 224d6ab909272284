package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/api/metrics"
	"github.com/graviti/shiptracker/internal/core/analysis"
	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/ports"
	"github.com/graviti/shiptracker/internal/infrastructure/csvio"
)

// maxTableRows caps the rows drawn in the upload page table. Exports are
// never truncated.
const maxTableRows = 1000

// TrackHandler serves the upload page: dataset upload, vessel selection,
// search and the filtered export.
type TrackHandler struct {
	trackService ports.TrackService
	logger       zerolog.Logger
}

func NewTrackHandler(trackService ports.TrackService, logger zerolog.Logger) *TrackHandler {
	return &TrackHandler{trackService: trackService, logger: logger}
}

type uploadView struct {
	Query     string
	Columns   []string
	Rows      [][]string
	Matched   int
	Truncated bool
	ExportURL string
	Error     string
}

// Index sends the bare root to the first view.
func (h *TrackHandler) Index(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/upload")
}

func (h *TrackHandler) UploadPage(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	p := newPage(sess, TemplateUpload, "Ship Data & Select MMSI")
	view := uploadView{Query: c.QueryParam("q"), Columns: domain.TrackColumns}
	p.Body = &view

	subset, err := h.trackService.Subset(sess)
	if errors.Is(err, domain.ErrNoData) || errors.Is(err, domain.ErrNoSelection) {
		return c.Render(http.StatusOK, TemplateUpload, p)
	}
	if err != nil {
		return err
	}

	matched := analysis.Search(subset, view.Query)
	view.Matched = len(matched)
	if len(matched) > maxTableRows {
		matched = matched[:maxTableRows]
		view.Truncated = true
	}
	view.Rows = make([][]string, len(matched))
	for i, r := range matched {
		view.Rows[i] = r.Fields()
	}
	view.ExportURL = "/export/data.csv"
	if view.Query != "" {
		view.ExportURL += "?q=" + url.QueryEscape(view.Query)
	}
	return c.Render(http.StatusOK, TemplateUpload, p)
}

// Upload replaces the session's dataset with the submitted CSV file.
func (h *TrackHandler) Upload(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "choose a CSV file to upload")
	}
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	n, err := h.trackService.Upload(c.Request().Context(), sess, fh.Filename, f)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrSchemaMismatch) {
			result = "schema_mismatch"
		}
		metrics.UploadsTotal.WithLabelValues(result).Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	metrics.RecordsLoaded.Observe(float64(n))
	return c.Redirect(http.StatusSeeOther, "/upload")
}

type selectRequest struct {
	MMSI string `form:"mmsi" validate:"required,max=32"`
	Next string `form:"next"`
}

// Select changes the current vessel and returns to the view it was made on.
func (h *TrackHandler) Select(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.trackService.Select(c.Request().Context(), sess, req.MMSI); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, safeNext(req.Next))
}

// ExportData downloads the selected vessel's rows matching ?q=.
func (h *TrackHandler) ExportData(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	subset, err := h.trackService.Subset(sess)
	if err != nil {
		return err
	}

	rows := analysis.Search(subset, c.QueryParam("q"))
	setAttachment(c, "text/csv; charset=utf-8", domain.DataFileName(sess.SelectedMMSI))
	c.Response().WriteHeader(http.StatusOK)
	if err := csvio.WriteTracks(c.Response(), rows); err != nil {
		h.logger.Error().Err(err).Msg("data export interrupted")
		return nil
	}
	metrics.ExportsTotal.WithLabelValues("data").Inc()
	return nil
}

// safeNext keeps redirects on the views of this site.
func safeNext(next string) string {
	if ActiveView(next) != "" {
		return next
	}
	return "/upload"
}

func setAttachment(c echo.Context, contentType, filename string) {
	h := c.Response().Header()
	h.Set(echo.HeaderContentType, contentType)
	h.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
