package handler

import (
	"context"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/graviti/shiptracker/internal/core/analysis"
	"github.com/graviti/shiptracker/internal/core/domain"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, username, password string) (string, *domain.Session, error)
	loggedOut []string
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = append(s.loggedOut, sessionID)
	return nil
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

type stubTrackService struct {
	records  []domain.TrackRecord
	err      error
	uploadFn func(filename string, r io.Reader) (int, error)
	selected string
}

func (s *stubTrackService) Upload(_ context.Context, _ *domain.Session, filename string, r io.Reader) (int, error) {
	return s.uploadFn(filename, r)
}

func (s *stubTrackService) Select(_ context.Context, sess *domain.Session, mmsi string) error {
	if mmsi != "111" {
		return domain.ErrUnknownVessel
	}
	s.selected = mmsi
	sess.SelectedMMSI = mmsi
	return nil
}

func (s *stubTrackService) Subset(*domain.Session) ([]domain.TrackRecord, error) {
	return s.records, s.err
}

type stubReportService struct {
	mmsi string
	rows int
	err  error
}

func (s *stubReportService) Generate(_ context.Context, mmsi string, records []domain.TrackRecord) (string, []byte, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	s.mmsi, s.rows = mmsi, len(records)
	return domain.ReportFileName(mmsi), []byte("%PDF-1.3 stub"), nil
}

type stubChartRenderer struct {
	last analysis.Chart
}

func (r *stubChartRenderer) RenderPNG(_ context.Context, ch analysis.Chart, w io.Writer) error {
	r.last = ch
	_, err := w.Write([]byte("\x89PNG"))
	return err
}

// recordingRenderer stands in for the HTML templates.
type recordingRenderer struct {
	name string
	page Page
}

func (r *recordingRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	r.name = name
	r.page, _ = data.(Page)
	_, err := io.WriteString(w, "template:"+name)
	return err
}

func newTestEcho() (*echo.Echo, *recordingRenderer) {
	e := echo.New()
	r := &recordingRenderer{}
	e.Renderer = r
	e.Validator = NewValidator()
	return e, r
}

func testSession() *domain.Session {
	return &domain.Session{
		ID:            "s1",
		Username:      "alice",
		Authenticated: true,
		Tracks:        testRecords(),
		SourceName:    "tracks.csv",
		SelectedMMSI:  "111",
	}
}

func testRecords() []domain.TrackRecord {
	ts1, _ := domain.ParseTimestamp("2024-03-01 10:00:00")
	ts2, _ := domain.ParseTimestamp("2024-03-01 10:05:00")
	ist1, _ := domain.ParseTimestamp("2024-03-01 15:30:00")
	ist2, _ := domain.ParseTimestamp("2024-03-01 15:35:00")
	return []domain.TrackRecord{
		{MMSI: "111", Timestamp: ts1, TimestampIST: ist1, Latitude: 18.9, Longitude: 72.8, SpeedOverGround: 12, NavigationStatus: 0, MessageType: 1},
		{MMSI: "111", Timestamp: ts2, TimestampIST: ist2, Latitude: 19.0, Longitude: 72.9, SpeedOverGround: 13, NavigationStatus: 5, MessageType: 3},
	}
}
