package metrics

import (
	"context"
	"io"
	"time"

	"github.com/graviti/shiptracker/internal/core/analysis"
	"github.com/graviti/shiptracker/internal/core/ports"
)

type timedRenderer struct {
	next ports.ChartRenderer
}

// InstrumentChartRenderer records ChartRenderDuration around every render.
func InstrumentChartRenderer(next ports.ChartRenderer) ports.ChartRenderer {
	return timedRenderer{next: next}
}

func (r timedRenderer) RenderPNG(ctx context.Context, ch analysis.Chart, w io.Writer) error {
	start := time.Now()
	err := r.next.RenderPNG(ctx, ch, w)
	ChartRenderDuration.WithLabelValues(ch.Key).Observe(time.Since(start).Seconds())
	return err
}
