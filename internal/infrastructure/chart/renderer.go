// Package chart rasterises analysis.Chart data with go-chart.
package chart

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/graviti/shiptracker/internal/core/analysis"
)

const (
	defaultWidth  = 1000
	defaultHeight = 400

	// NoDataText is drawn in place of a chart with no points.
	NoDataText = "No data available"
)

var palette = []drawing.Color{
	gochart.ColorBlue,
	gochart.ColorOrange,
	gochart.ColorGreen,
	gochart.ColorRed,
}

// Renderer draws line charts as PNG images.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() *Renderer {
	return &Renderer{Width: defaultWidth, Height: defaultHeight}
}

// RenderPNG writes ch as a PNG. Non-finite values are left out of the plot;
// a chart without any plottable point is drawn as a placeholder image
// carrying NoDataText.
func (r *Renderer) RenderPNG(ctx context.Context, ch analysis.Chart, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ch.Len() == 0 || len(ch.Series) == 0 {
		return r.placeholder(w, NoDataText)
	}

	gc, ok := r.build(ch)
	if !ok {
		return r.placeholder(w, NoDataText)
	}
	if err := gc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render chart %s: %w", ch.Key, err)
	}
	return nil
}

// build lays ch out as a go-chart line chart. It reports false when no
// series has a finite value to draw.
func (r *Renderer) build(ch analysis.Chart) (gochart.Chart, bool) {
	n := ch.Len()

	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	series := make([]gochart.Series, 0, len(ch.Series))
	for i, s := range ch.Series {
		xs, ys := finitePoints(s.Values, n)
		if len(xs) == 0 {
			continue
		}
		// a lone point is drawn as a flat segment across the padded axis
		if n == 1 {
			xs, ys = []float64{0, 1}, []float64{ys[0], ys[0]}
		}
		for _, v := range ys {
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   seriesStyle(palette[i%len(palette)], ch.Markers),
		})
	}
	if len(series) == 0 {
		return gochart.Chart{}, false
	}

	// go-chart takes the X range from the ticks, so it must span two values
	ticks := make([]gochart.Tick, 0, analysis.MaxTickLabels+1)
	for _, i := range ch.TickIndices(analysis.MaxTickLabels) {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: ch.Labels[i]})
	}
	xMax := float64(n - 1)
	if n == 1 {
		ticks = append(ticks, gochart.Tick{Value: 1})
		xMax = 1
	}

	// a flat series has no extent; give the axis one
	var yRange gochart.Range
	if maxY <= minY {
		yRange = &gochart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	gc := gochart.Chart{
		Title:      ch.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 64}},
		XAxis: gochart.XAxis{
			Name:      ch.XLabel,
			Range:     &gochart.ContinuousRange{Min: 0, Max: xMax},
			Ticks:     ticks,
			TickStyle: gochart.Style{TextRotationDegrees: 45},
		},
		YAxis:  gochart.YAxis{Name: ch.YLabel, Range: yRange},
		Series: series,
	}
	gc.Elements = []gochart.Renderable{gochart.Legend(&gc)}
	return gc, true
}

// finitePoints pairs the first n values with their row positions, dropping
// NaN and infinite values.
func finitePoints(values []float64, n int) (xs, ys []float64) {
	if len(values) < n {
		n = len(values)
	}
	xs = make([]float64, 0, n)
	ys = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := values[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v)
	}
	return xs, ys
}

func seriesStyle(col drawing.Color, markers bool) gochart.Style {
	st := gochart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
	if markers {
		st.DotWidth = 3
		st.DotColor = col
	}
	return st
}

func (r *Renderer) placeholder(w io.Writer, text string) error {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: img, Src: image.NewUniform(color.Gray{Y: 96}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := (r.Width - tw) / 2
	y := (r.Height + face.Metrics().Ascent.Ceil()) / 2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)

	return png.Encode(w, img)
}
