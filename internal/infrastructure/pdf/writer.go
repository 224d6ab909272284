// Package pdf lays out report documents with gofpdf.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/pkg/logger"
)

// Page geometry in millimetres (Letter, portrait).
const (
	margin      = 15.0
	logoSize    = 28.0
	imageWidth  = 150.0
	imageHeight = 75.0
	rowHeight   = 7.0
	timeWidth   = 35.0
	codeWidth   = 40.0
)

// Writer renders domain.ReportDocument as a paginated PDF.
type Writer struct {
	logger zerolog.Logger
}

func NewWriter(log zerolog.Logger) *Writer {
	return &Writer{logger: logger.Component(log, "pdf_writer")}
}

type page struct {
	*gofpdf.Fpdf
	tr     func(string) string
	width  float64
	height float64
}

func (w *Writer) Write(ctx context.Context, doc domain.ReportDocument, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p := &page{Fpdf: gofpdf.New("P", "mm", "Letter", "")}
	p.tr = p.UnicodeTranslatorFromDescriptor("")
	p.width, p.height = p.GetPageSize()
	p.SetMargins(margin, margin, margin)
	p.SetAutoPageBreak(true, margin)
	p.AddPage()

	if doc.Branding != nil {
		w.drawBranding(p, doc.Branding)
	}

	p.SetFont("Helvetica", "B", 18)
	p.SetTextColor(0, 0, 0)
	p.CellFormat(0, 12, p.tr(doc.Title), "", 1, "C", false, 0, "")
	p.Ln(6)

	x := (p.width - imageWidth) / 2
	for _, img := range doc.Images {
		p.ImageOptions(img.Path, x, 0, imageWidth, imageHeight, true, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		p.Ln(4)
	}

	for _, t := range doc.Tables {
		drawTable(p, t)
	}

	if err := p.Output(out); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}

// drawBranding places the logo and the subtitle/tagline lines. A logo that
// cannot be decoded is skipped.
func (w *Writer) drawBranding(p *page, b *domain.Branding) {
	if len(b.Logo) > 0 {
		imgType := b.LogoType
		if imgType == "" {
			imgType = "PNG"
		}
		opts := gofpdf.ImageOptions{ImageType: imgType}
		p.RegisterImageOptionsReader("branding-logo", opts, bytes.NewReader(b.Logo))
		if p.Err() {
			w.logger.Warn().Err(p.Error()).Msg("branding logo skipped")
			p.ClearError()
		} else {
			p.ImageOptions("branding-logo", (p.width-logoSize)/2, p.GetY(), logoSize, logoSize, false, opts, 0, "")
			p.SetY(p.GetY() + logoSize + 4)
		}
	}

	if b.Subtitle != "" {
		p.SetFont("Helvetica", "", 12)
		p.SetTextColor(0, 0, 128)
		p.CellFormat(0, 7, p.tr(b.Subtitle), "", 1, "C", false, 0, "")
	}
	if b.Tagline != "" {
		p.SetFont("Helvetica", "", 10)
		p.SetTextColor(128, 128, 128)
		p.CellFormat(0, 6, p.tr(b.Tagline), "", 1, "C", false, 0, "")
	}
	p.Ln(6)
}

func drawTable(p *page, t domain.ReportTable) {
	widths := columnWidths(p.width, len(t.Header))

	if p.GetY()+3*rowHeight > p.height-margin {
		p.AddPage()
	}
	p.Ln(4)
	p.SetFont("Helvetica", "B", 13)
	p.SetTextColor(0, 0, 0)
	p.CellFormat(0, 9, p.tr(t.Title), "", 1, "L", false, 0, "")

	drawHeader(p, t.Header, widths)
	p.SetFont("Helvetica", "", 9)
	for _, row := range t.Rows {
		if p.GetY()+rowHeight > p.height-margin {
			p.AddPage()
			drawHeader(p, t.Header, widths)
			p.SetFont("Helvetica", "", 9)
		}
		p.SetTextColor(0, 0, 0)
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			p.CellFormat(widths[i], rowHeight, p.tr(cell), "1", 0, "C", false, 0, "")
		}
		p.Ln(-1)
	}
}

// drawHeader repeats on every page a table spans.
func drawHeader(p *page, header []string, widths []float64) {
	p.SetFont("Helvetica", "B", 10)
	p.SetFillColor(128, 128, 128)
	p.SetTextColor(245, 245, 245)
	p.SetDrawColor(0, 0, 0)
	for i, h := range header {
		p.CellFormat(widths[i], rowHeight, p.tr(h), "1", 0, "C", true, 0, "")
	}
	p.Ln(-1)
}

// columnWidths gives the leading time and code columns fixed widths and the
// rest of the line to the description.
func columnWidths(pageWidth float64, n int) []float64 {
	usable := pageWidth - 2*margin
	if n != 3 {
		out := make([]float64, n)
		for i := range out {
			out[i] = usable / float64(n)
		}
		return out
	}
	return []float64{timeWidth, codeWidth, usable - timeWidth - codeWidth}
}
