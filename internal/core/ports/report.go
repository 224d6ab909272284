package ports

import (
	"context"
	"io"

	"github.com/graviti/shiptracker/internal/core/analysis"
	"github.com/graviti/shiptracker/internal/core/domain"
)

// ChartRenderer rasterises chart data to PNG.
type ChartRenderer interface {
	RenderPNG(ctx context.Context, chart analysis.Chart, w io.Writer) error
}

// ReportWriter lays out a report document as a paginated file.
type ReportWriter interface {
	Write(ctx context.Context, doc domain.ReportDocument, w io.Writer) error
}

// ArchivedReport is a generated report handed over for archiving.
type ArchivedReport struct {
	MMSI string
	Name string
	PDF  []byte
}

// ReportArchiver accepts generated reports and stores them off the request
// path.
type ReportArchiver interface {
	Enqueue(report ArchivedReport)
}

// ReportStore persists archived report files by name.
type ReportStore interface {
	Put(ctx context.Context, name string, pdf []byte) error
}
