package analysis

import "github.com/graviti/shiptracker/internal/core/domain"

// MaxTickLabels caps the number of X-axis labels drawn on a time chart.
const MaxTickLabels = 8

// Chart keys, also used as the chart endpoint names.
const (
	ChartRateOfTurn       = "rot"
	ChartSpeed            = "speed"
	ChartHeadingCourse    = "heading"
	ChartNavigationStatus = "navstatus"
	ChartMessageType      = "msgtype"
)

// ChartKeys lists every chart a vessel subset can be drawn as.
var ChartKeys = []string{
	ChartRateOfTurn,
	ChartSpeed,
	ChartHeadingCourse,
	ChartNavigationStatus,
	ChartMessageType,
}

// Series is one named line of Y values, aligned with Chart.Labels.
type Series struct {
	Name   string
	Values []float64
}

// Chart is renderer-independent chart data. Points are plotted in row order
// at X positions 0..n-1 and labelled with Labels.
type Chart struct {
	Key     string
	Title   string
	XLabel  string
	YLabel  string
	Labels  []string
	Series  []Series
	Markers bool
}

// Len is the number of points per series.
func (c Chart) Len() int {
	return len(c.Labels)
}

// TickIndices returns at most max evenly spaced point indices to label,
// always starting with the first point and ending with the last when the
// chart has more than one point.
func (c Chart) TickIndices(max int) []int {
	n := c.Len()
	if n == 0 || max <= 0 {
		return nil
	}
	if n <= max {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if max == 1 {
		return []int{0}
	}

	out := make([]int, 0, max)
	step := float64(n-1) / float64(max-1)
	prev := -1
	for k := 0; k < max; k++ {
		idx := int(float64(k)*step + 0.5)
		if idx >= n {
			idx = n - 1
		}
		if idx != prev {
			out = append(out, idx)
			prev = idx
		}
	}
	return out
}

// ClockLabels formats each row's local timestamp as HH:MM:SS.
func ClockLabels(records []domain.TrackRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.TimestampIST.Clock()
	}
	return out
}

func column(records []domain.TrackRecord, pick func(domain.TrackRecord) float64) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = pick(r)
	}
	return out
}

// RateOfTurnChart plots Rate_of_turn against local time.
func RateOfTurnChart(records []domain.TrackRecord) Chart {
	return Chart{
		Key:    ChartRateOfTurn,
		Title:  "Ship's Rate of Turn Over Time",
		XLabel: "Time (HH:MM:SS)",
		YLabel: "Rate of Turn (°/min)",
		Labels: ClockLabels(records),
		Series: []Series{{
			Name:   "Rate of Turn",
			Values: column(records, func(r domain.TrackRecord) float64 { return r.RateOfTurn }),
		}},
		Markers: true,
	}
}

// SpeedChart plots Speed_over_ground against local time.
func SpeedChart(records []domain.TrackRecord) Chart {
	return Chart{
		Key:    ChartSpeed,
		Title:  "Ship Speed Over Time",
		XLabel: "Time (HH:MM:SS)",
		YLabel: "Speed (knots)",
		Labels: ClockLabels(records),
		Series: []Series{{
			Name:   "Speed over ground",
			Values: column(records, func(r domain.TrackRecord) float64 { return r.SpeedOverGround }),
		}},
	}
}

// HeadingCourseChart overlays True_heading and Course_over_ground.
func HeadingCourseChart(records []domain.TrackRecord) Chart {
	return Chart{
		Key:    ChartHeadingCourse,
		Title:  "True Heading vs. Course Over Ground Over Time",
		XLabel: "Time (HH:MM:SS)",
		YLabel: "Angle (°)",
		Labels: ClockLabels(records),
		Series: []Series{
			{
				Name:   "True Heading (TH)",
				Values: column(records, func(r domain.TrackRecord) float64 { return r.TrueHeading }),
			},
			{
				Name:   "Course Over Ground (COG)",
				Values: column(records, func(r domain.TrackRecord) float64 { return r.CourseOverGround }),
			},
		},
	}
}

// NavigationStatusChart plots the raw navigation status code over time.
func NavigationStatusChart(records []domain.TrackRecord) Chart {
	return Chart{
		Key:    ChartNavigationStatus,
		Title:  "Navigation Status Changes Over Time",
		XLabel: "Time (HH:MM:SS)",
		YLabel: "Navigation Status Code",
		Labels: ClockLabels(records),
		Series: []Series{{
			Name:   "Navigation status",
			Values: column(records, func(r domain.TrackRecord) float64 { return float64(r.NavigationStatus) }),
		}},
		Markers: true,
	}
}

// MessageTypeChart plots the raw AIS message type over time.
func MessageTypeChart(records []domain.TrackRecord) Chart {
	return Chart{
		Key:    ChartMessageType,
		Title:  "Message Code Changes Over Time",
		XLabel: "Time (HH:MM:SS)",
		YLabel: "Message Type Code",
		Labels: ClockLabels(records),
		Series: []Series{{
			Name:   "Message type",
			Values: column(records, func(r domain.TrackRecord) float64 { return float64(r.MessageType) }),
		}},
		Markers: true,
	}
}

// ChartFor builds the chart named key.
func ChartFor(key string, records []domain.TrackRecord) (Chart, error) {
	switch key {
	case ChartRateOfTurn:
		return RateOfTurnChart(records), nil
	case ChartSpeed:
		return SpeedChart(records), nil
	case ChartHeadingCourse:
		return HeadingCourseChart(records), nil
	case ChartNavigationStatus:
		return NavigationStatusChart(records), nil
	case ChartMessageType:
		return MessageTypeChart(records), nil
	}
	return Chart{}, domain.ErrUnknownChart
}

// ReportCharts are the time-series charts embedded in the PDF report.
func ReportCharts(records []domain.TrackRecord) []Chart {
	return []Chart{
		RateOfTurnChart(records),
		SpeedChart(records),
		HeadingCourseChart(records),
	}
}
