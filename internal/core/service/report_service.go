package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/core/analysis"
	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/ports"
	"github.com/graviti/shiptracker/pkg/logger"
)

// ReportService assembles the per-vessel PDF report.
type ReportService struct {
	charts   ports.ChartRenderer
	writer   ports.ReportWriter
	branding *domain.Branding
	archiver ports.ReportArchiver
	logger   zerolog.Logger
}

// NewReportService wires the report pipeline. branding and archiver may be
// nil.
func NewReportService(charts ports.ChartRenderer, writer ports.ReportWriter, branding *domain.Branding, archiver ports.ReportArchiver, log zerolog.Logger) *ReportService {
	return &ReportService{
		charts:   charts,
		writer:   writer,
		branding: branding,
		archiver: archiver,
		logger:   logger.Component(log, "report_service"),
	}
}

func (s *ReportService) Generate(ctx context.Context, mmsi string, records []domain.TrackRecord) (string, []byte, error) {
	if len(records) == 0 {
		return "", nil, domain.ErrNoData
	}

	dir, err := os.MkdirTemp("", "shiptracker-report-*")
	if err != nil {
		return "", nil, fmt.Errorf("report temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	doc := domain.ReportDocument{
		Branding: s.branding,
		Title:    "Ship Report for MMSI: " + mmsi,
	}

	for _, ch := range analysis.ReportCharts(records) {
		path := filepath.Join(dir, ch.Key+".png")
		if err := s.renderChart(ctx, ch, path); err != nil {
			return "", nil, err
		}
		doc.Images = append(doc.Images, domain.ReportImage{Title: ch.Title, Path: path})
	}

	statuses := analysis.DecodeStatuses(records)
	doc.Tables = []domain.ReportTable{
		{Title: "Navigation Status Analysis", Header: analysis.NavigationTableHeader, Rows: analysis.NavigationTable(statuses)},
		{Title: "AIS Message Type Analysis", Header: analysis.MessageTableHeader, Rows: analysis.MessageTable(statuses)},
	}

	var buf bytes.Buffer
	if err := s.writer.Write(ctx, doc, &buf); err != nil {
		return "", nil, fmt.Errorf("write report: %w", err)
	}

	name := domain.ReportFileName(mmsi)
	if s.archiver != nil {
		s.archiver.Enqueue(ports.ArchivedReport{MMSI: mmsi, Name: name, PDF: buf.Bytes()})
	}

	s.logger.Info().Str("mmsi", mmsi).Int("rows", len(records)).Int("bytes", buf.Len()).Msg("report generated")
	return name, buf.Bytes(), nil
}

func (s *ReportService) renderChart(ctx context.Context, ch analysis.Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := s.charts.RenderPNG(ctx, ch, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render %s chart: %w", ch.Key, err)
	}
	return f.Close()
}

// LoadBranding reads the report logo at path. An empty path yields text-only
// branding (or nil when there is no text either).
func LoadBranding(path, subtitle, tagline string) (*domain.Branding, error) {
	if path == "" {
		if subtitle == "" && tagline == "" {
			return nil, nil
		}
		return &domain.Branding{Subtitle: subtitle, Tagline: tagline}, nil
	}

	logo, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("branding logo: %w", err)
	}
	return &domain.Branding{
		Logo:     logo,
		LogoType: imageType(path),
		Subtitle: subtitle,
		Tagline:  tagline,
	}, nil
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".gif":
		return "GIF"
	default:
		return "PNG"
	}
}
