package chart

import (
	"bytes"
	"context"
	"image/png"
	"math"
	"testing"

	"github.com/graviti/shiptracker/internal/core/analysis"
)

func decodePNG(t *testing.T, b []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRenderPNG_Series(t *testing.T) {
	ch := analysis.Chart{
		Key:    analysis.ChartHeadingCourse,
		Title:  "Heading",
		XLabel: "Time",
		YLabel: "Degrees",
		Labels: []string{"15:30:00", "15:31:00", "15:32:00"},
		Series: []analysis.Series{
			{Name: "True Heading (TH)", Values: []float64{10, 20, 30}},
			{Name: "Course Over Ground (COG)", Values: []float64{12, 18, 33}},
		},
		Markers: true,
	}

	var buf bytes.Buffer
	if err := NewRenderer().RenderPNG(context.Background(), ch, &buf); err != nil {
		t.Fatalf("RenderPNG returned error: %v", err)
	}
	w, h := decodePNG(t, buf.Bytes())
	if w != defaultWidth || h != defaultHeight {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}

func TestRenderPNG_SinglePointFlatSeries(t *testing.T) {
	ch := analysis.Chart{
		Key:    analysis.ChartSpeed,
		Labels: []string{"15:30:00"},
		Series: []analysis.Series{{Name: "Speed", Values: []float64{7}}},
	}

	var buf bytes.Buffer
	if err := NewRenderer().RenderPNG(context.Background(), ch, &buf); err != nil {
		t.Fatalf("RenderPNG returned error: %v", err)
	}
	decodePNG(t, buf.Bytes())
}

func TestBuild_SinglePointSpansTwoTicks(t *testing.T) {
	ch := analysis.RateOfTurnChart(nil)
	ch.Labels = []string{"15:30:00"}
	ch.Series[0].Values = []float64{2.5}

	gc, ok := NewRenderer().build(ch)
	if !ok {
		t.Fatalf("expected a drawable chart")
	}
	ticks := gc.XAxis.Ticks
	if len(ticks) != 2 || ticks[0].Value != 0 || ticks[1].Value != 1 {
		t.Fatalf("expected ticks at 0 and 1, got %+v", ticks)
	}
	if ticks[0].Label != "15:30:00" || ticks[1].Label != "" {
		t.Fatalf("unexpected tick labels: %+v", ticks)
	}
}

func TestRenderPNG_SkipsNonFiniteValues(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"nan", []float64{1, math.NaN(), 3}},
		{"positive inf", []float64{math.Inf(1), 2, 3}},
		{"negative inf", []float64{1, 2, math.Inf(-1)}},
		{"single finite point", []float64{math.NaN(), 4, math.NaN()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ch := analysis.Chart{
				Key:    analysis.ChartRateOfTurn,
				Labels: []string{"15:30:00", "15:31:00", "15:32:00"},
				Series: []analysis.Series{{Name: "Rate of Turn", Values: tc.values}},
			}
			var buf bytes.Buffer
			if err := NewRenderer().RenderPNG(context.Background(), ch, &buf); err != nil {
				t.Fatalf("RenderPNG returned error: %v", err)
			}
			decodePNG(t, buf.Bytes())
		})
	}
}

func TestRenderPNG_AllNonFiniteIsPlaceholder(t *testing.T) {
	ch := analysis.Chart{
		Key:    analysis.ChartSpeed,
		Labels: []string{"15:30:00", "15:31:00"},
		Series: []analysis.Series{{Name: "Speed", Values: []float64{math.NaN(), math.Inf(1)}}},
	}
	if _, ok := NewRenderer().build(ch); ok {
		t.Fatalf("expected no drawable series")
	}

	r := &Renderer{Width: 120, Height: 60}
	var buf bytes.Buffer
	if err := r.RenderPNG(context.Background(), ch, &buf); err != nil {
		t.Fatalf("RenderPNG returned error: %v", err)
	}
	w, h := decodePNG(t, buf.Bytes())
	if w != 120 || h != 60 {
		t.Fatalf("expected placeholder size, got %dx%d", w, h)
	}
}

func TestRenderPNG_NoDataPlaceholder(t *testing.T) {
	r := &Renderer{Width: 200, Height: 80}

	var buf bytes.Buffer
	if err := r.RenderPNG(context.Background(), analysis.Chart{Key: analysis.ChartRateOfTurn}, &buf); err != nil {
		t.Fatalf("RenderPNG returned error: %v", err)
	}
	w, h := decodePNG(t, buf.Bytes())
	if w != 200 || h != 80 {
		t.Fatalf("unexpected placeholder size %dx%d", w, h)
	}
}

func TestRenderPNG_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := NewRenderer().RenderPNG(ctx, analysis.Chart{}, &buf); err == nil {
		t.Fatalf("expected context error")
	}
}
