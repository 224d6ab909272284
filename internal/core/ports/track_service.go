package ports

import (
	"context"
	"io"

	"github.com/graviti/shiptracker/internal/core/domain"
)

type TrackService interface {
	Upload(ctx context.Context, session *domain.Session, filename string, r io.Reader) (int, error)
	Select(ctx context.Context, session *domain.Session, mmsi string) error
	Subset(session *domain.Session) ([]domain.TrackRecord, error)
}
