package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/api/metrics"
	"github.com/graviti/shiptracker/internal/core/analysis"
	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/ports"
	"github.com/graviti/shiptracker/internal/infrastructure/csvio"
)

// ViewHandler serves the analysis views and the report download. Each view
// derives its data from the selected vessel's subset through the analysis
// package, so pages, exports and the PDF agree.
type ViewHandler struct {
	trackService  ports.TrackService
	reportService ports.ReportService
	logger        zerolog.Logger
}

func NewViewHandler(trackService ports.TrackService, reportService ports.ReportService, logger zerolog.Logger) *ViewHandler {
	return &ViewHandler{trackService: trackService, reportService: reportService, logger: logger}
}

type routeView struct {
	Route    analysis.Route
	Center   analysis.LatLng
	Points   int
	ChartURL string
}

type speedView struct {
	SpeedChartURL   string
	HeadingChartURL string
}

type codesView struct {
	NavigationChartURL string
	MessageChartURL    string
	NavigationHeader   []string
	NavigationRows     [][]string
	MessageHeader      []string
	MessageRows        [][]string
	ExportURL          string
}

type reportView struct {
	Rows     int
	FileName string
}

// subset loads the session and its selected vessel rows.
func (h *ViewHandler) subset(c echo.Context) (*domain.Session, []domain.TrackRecord, error) {
	sess, err := ctxSession(c)
	if err != nil {
		return nil, nil, err
	}
	records, err := h.trackService.Subset(sess)
	if err != nil {
		return nil, nil, err
	}
	return sess, records, nil
}

func (h *ViewHandler) Route(c echo.Context) error {
	sess, records, err := h.subset(c)
	if err != nil {
		return err
	}

	route := analysis.BuildRoute(records)
	center, ok := route.Center()
	if !ok {
		return c.Render(http.StatusOK, TemplateAdvisory, AdvisoryPage(c, TemplateRoute, AdvisoryNoData))
	}

	p := newPage(sess, TemplateRoute, "Ship Route Map")
	p.Body = routeView{
		Route:    route,
		Center:   center,
		Points:   len(route.Path),
		ChartURL: chartURL(analysis.ChartRateOfTurn),
	}
	return c.Render(http.StatusOK, TemplateRoute, p)
}

func (h *ViewHandler) Speed(c echo.Context) error {
	sess, _, err := h.subset(c)
	if err != nil {
		return err
	}

	p := newPage(sess, TemplateSpeed, "Ship Data Analysis")
	p.Body = speedView{
		SpeedChartURL:   chartURL(analysis.ChartSpeed),
		HeadingChartURL: chartURL(analysis.ChartHeadingCourse),
	}
	return c.Render(http.StatusOK, TemplateSpeed, p)
}

func (h *ViewHandler) Codes(c echo.Context) error {
	sess, records, err := h.subset(c)
	if err != nil {
		return err
	}

	statuses := analysis.DecodeStatuses(records)
	p := newPage(sess, TemplateCodes, "Ship Codes")
	p.Body = codesView{
		NavigationChartURL: chartURL(analysis.ChartNavigationStatus),
		MessageChartURL:    chartURL(analysis.ChartMessageType),
		NavigationHeader:   analysis.NavigationTableHeader,
		NavigationRows:     analysis.NavigationTable(statuses),
		MessageHeader:      analysis.MessageTableHeader,
		MessageRows:        analysis.MessageTable(statuses),
		ExportURL:          "/export/codes.csv",
	}
	return c.Render(http.StatusOK, TemplateCodes, p)
}

// ExportCodes downloads the decoded status table of the selected vessel.
func (h *ViewHandler) ExportCodes(c echo.Context) error {
	sess, records, err := h.subset(c)
	if err != nil {
		return err
	}

	rows := analysis.StatusExportRows(analysis.DecodeStatuses(records))
	setAttachment(c, "text/csv; charset=utf-8", domain.CodesFileName(sess.SelectedMMSI))
	c.Response().WriteHeader(http.StatusOK)
	if err := csvio.WriteTable(c.Response(), analysis.StatusExportHeader, rows); err != nil {
		h.logger.Error().Err(err).Msg("codes export interrupted")
		return nil
	}
	metrics.ExportsTotal.WithLabelValues("codes").Inc()
	return nil
}

func (h *ViewHandler) ReportPage(c echo.Context) error {
	sess, records, err := h.subset(c)
	if err != nil {
		return err
	}

	p := newPage(sess, TemplateReport, "Download Ship Report")
	p.Body = reportView{Rows: len(records), FileName: domain.ReportFileName(sess.SelectedMMSI)}
	return c.Render(http.StatusOK, TemplateReport, p)
}

// GenerateReport builds the PDF for the selected vessel and sends it as a
// download.
func (h *ViewHandler) GenerateReport(c echo.Context) error {
	sess, records, err := h.subset(c)
	if err != nil {
		return err
	}

	start := time.Now()
	name, pdf, err := h.reportService.Generate(c.Request().Context(), sess.SelectedMMSI, records)
	metrics.ReportDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ReportsGeneratedTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.ReportsGeneratedTotal.WithLabelValues("ok").Inc()

	setAttachment(c, "application/pdf", name)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func chartURL(key string) string {
	return "/charts/" + key + ".png"
}
