package ports

import (
	"io"

	"github.com/graviti/shiptracker/internal/core/domain"
)

// TrackDecoder reads an uploaded dataset.
type TrackDecoder interface {
	Decode(r io.Reader) ([]domain.TrackRecord, error)
}
