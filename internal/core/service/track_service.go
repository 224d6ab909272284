package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/core/analysis"
	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/ports"
	"github.com/graviti/shiptracker/pkg/logger"
)

// TrackService owns a session's Track Store and vessel selection.
type TrackService struct {
	sessions ports.SessionRepository
	decoder  ports.TrackDecoder
	logger   zerolog.Logger
	now      func() time.Time
}

func NewTrackService(sessions ports.SessionRepository, decoder ports.TrackDecoder, log zerolog.Logger) *TrackService {
	return &TrackService{
		sessions: sessions,
		decoder:  decoder,
		logger:   logger.Component(log, "track_service"),
		now:      time.Now,
	}
}

// Upload decodes r and replaces the session's Track Store with it. On a
// decode failure the previous store is left untouched.
func (s *TrackService) Upload(ctx context.Context, session *domain.Session, filename string, r io.Reader) (int, error) {
	records, err := s.decoder.Decode(r)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", session.ID).Str("file", filename).Msg("upload rejected")
		return 0, fmt.Errorf("decode %s: %w", filename, err)
	}

	session.ReplaceTracks(filename, records, s.now().UTC())
	if err := s.sessions.Save(ctx, session); err != nil {
		return 0, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info().
		Str("session_id", session.ID).
		Str("file", filename).
		Int("records", len(records)).
		Int("vessels", len(analysis.Vessels(records))).
		Msg("track store replaced")
	return len(records), nil
}

// Select makes mmsi the session's current vessel.
func (s *TrackService) Select(ctx context.Context, session *domain.Session, mmsi string) error {
	if !session.HasData() {
		return domain.ErrNoData
	}
	if !analysis.HasVessel(session.Tracks, mmsi) {
		return fmt.Errorf("select %q: %w", mmsi, domain.ErrUnknownVessel)
	}
	if session.SelectedMMSI == mmsi {
		return nil
	}

	session.SelectedMMSI = mmsi
	if err := s.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Subset returns the selected vessel's rows in file order.
func (s *TrackService) Subset(session *domain.Session) ([]domain.TrackRecord, error) {
	if !session.HasData() {
		return nil, domain.ErrNoData
	}
	if session.SelectedMMSI == "" {
		return nil, domain.ErrNoSelection
	}
	subset := analysis.ForVessel(session.Tracks, session.SelectedMMSI)
	if len(subset) == 0 {
		return nil, domain.ErrNoSelection
	}
	return subset, nil
}
