// Package metrics defines and registers all custom Prometheus metrics for the
// ship tracker dashboard. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry on package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shiptracker"

// ── Dataset metrics ───────────────────────────────────────────────────────────

// UploadsTotal counts CSV uploads.
// Label:
//   - result: "ok", "schema_mismatch" or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of dataset uploads, by result.",
	},
	[]string{"result"},
)

// RecordsLoaded observes the row count of each accepted upload.
var RecordsLoaded = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "records_loaded",
		Help:      "Number of track records per accepted upload.",
		Buckets:   prometheus.ExponentialBuckets(10, 4, 8), // 10 … ~164k
	},
)

// ExportsTotal counts CSV downloads.
// Label:
//   - kind: "data" (filtered track rows) or "codes" (decoded status rows)
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of CSV exports, by kind.",
	},
	[]string{"kind"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "rejected" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsGeneratedTotal counts PDF report requests.
// Label:
//   - result: "ok" or "error"
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of PDF reports generated, by result.",
	},
	[]string{"result"},
)

// ReportDuration measures end-to-end PDF generation time.
var ReportDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Duration of PDF report generation.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ChartRenderDuration measures PNG rasterisation per chart.
// Label:
//   - chart: chart key ("rot", "speed", "heading", "navstatus", "msgtype")
var ChartRenderDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chart_render_duration_seconds",
		Help:      "Duration of chart rendering, by chart.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"chart"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method, route (the registered path, not the raw URL), code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status code.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration measures request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
