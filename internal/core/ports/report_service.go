package ports

import (
	"context"

	"github.com/graviti/shiptracker/internal/core/domain"
)

type ReportService interface {
	// Generate returns the download file name and the rendered PDF.
	Generate(ctx context.Context, mmsi string, records []domain.TrackRecord) (string, []byte, error)
}
