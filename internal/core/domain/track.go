package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Column names of the uploaded AIS CSV.
const (
	ColMMSI             = "MMSI"
	ColTimestamp        = "Timestamp"
	ColTimestampIST     = "Timestamp_IST"
	ColLatitude         = "Latitude"
	ColLongitude        = "Longitude"
	ColSpeedOverGround  = "Speed_over_ground"
	ColCourseOverGround = "Course_over_ground"
	ColTrueHeading      = "True_heading"
	ColRateOfTurn       = "Rate_of_turn"
	ColNavigationStatus = "Navigation_Status"
	ColMessageType      = "Message_Type"
)

// TrackColumns lists the required columns in export order.
var TrackColumns = []string{
	ColMMSI,
	ColTimestamp,
	ColTimestampIST,
	ColLatitude,
	ColLongitude,
	ColSpeedOverGround,
	ColCourseOverGround,
	ColTrueHeading,
	ColRateOfTurn,
	ColNavigationStatus,
	ColMessageType,
}

// TrackRecord is one AIS position report.
type TrackRecord struct {
	MMSI             string    `json:"mmsi"`
	Timestamp        Timestamp `json:"timestamp"`
	TimestampIST     Timestamp `json:"timestamp_ist"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	SpeedOverGround  float64   `json:"speed_over_ground"`
	CourseOverGround float64   `json:"course_over_ground"`
	TrueHeading      float64   `json:"true_heading"`
	RateOfTurn       float64   `json:"rate_of_turn"`
	NavigationStatus int       `json:"navigation_status"`
	MessageType      int       `json:"message_type"`
}

// Fields returns the string representation of every column, in TrackColumns order.
func (r TrackRecord) Fields() []string {
	return []string{
		r.MMSI,
		r.Timestamp.String(),
		r.TimestampIST.String(),
		FormatFloat(r.Latitude),
		FormatFloat(r.Longitude),
		FormatFloat(r.SpeedOverGround),
		FormatFloat(r.CourseOverGround),
		FormatFloat(r.TrueHeading),
		FormatFloat(r.RateOfTurn),
		strconv.Itoa(r.NavigationStatus),
		strconv.Itoa(r.MessageType),
	}
}

// Timestamp is a parsed CSV date-time that renders back in the dataset's
// "2006-01-02 15:04:05" style.
type Timestamp struct {
	time.Time
}

const (
	timestampLayout     = "2006-01-02 15:04:05"
	timestampZoneLayout = "2006-01-02 15:04:05-07:00"

	// ClockLayout is the hour:minute:second label used on chart axes and tables.
	ClockLayout = "15:04:05"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"02-01-2006 15:04:05",
	"02/01/2006 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts the date-time spellings found in AIS exports. Values
// without zone information are taken as UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised date-time %q", s)
}

// String formats the timestamp; the zone offset is kept only for non-UTC values.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	if _, offset := t.Zone(); offset != 0 {
		return t.Format(timestampZoneLayout)
	}
	return t.Format(timestampLayout)
}

// Clock returns the HH:MM:SS label.
func (t Timestamp) Clock() string {
	return t.Format(ClockLayout)
}

// FormatFloat renders a float the shortest way that round-trips.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
