package analysis

import (
	"sort"

	"github.com/graviti/shiptracker/internal/core/domain"
)

// Marker tags.
const (
	TagStart = "Start"
	TagEnd   = "End"
)

// Marker colours, in the palette the map page understands.
const (
	ColorStart    = "green"
	ColorEnd      = "red"
	ColorInterior = "blue"
)

// LatLng is a polyline vertex.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteMarker annotates one position report on the map.
type RouteMarker struct {
	Position LatLng  `json:"position"`
	MMSI     string  `json:"mmsi"`
	Time     string  `json:"time"`
	Speed    float64 `json:"speed"`
	Heading  float64 `json:"heading"`
	Course   float64 `json:"course"`
	Tag      string  `json:"tag"`
	Color    string  `json:"color"`
}

// Route is the polyline and markers of one vessel's track, ordered by time.
type Route struct {
	Path    []LatLng      `json:"path"`
	Markers []RouteMarker `json:"markers"`
}

// Empty reports whether there is nothing to draw. An empty route has no
// start location, so the map must not be rendered.
func (r Route) Empty() bool {
	return len(r.Path) == 0
}

// Center is the map's initial location: the first position of the route.
func (r Route) Center() (LatLng, bool) {
	if r.Empty() {
		return LatLng{}, false
	}
	return r.Path[0], true
}

// SortByTimestamp returns a copy of records ordered by Timestamp ascending;
// rows with equal timestamps keep their file order.
func SortByTimestamp(records []domain.TrackRecord) []domain.TrackRecord {
	out := make([]domain.TrackRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp.Time)
	})
	return out
}

// BuildRoute turns a vessel subset into a route. With two or more rows the
// first is tagged Start and the last End. A single row is a point on its
// own and is tagged End.
func BuildRoute(records []domain.TrackRecord) Route {
	sorted := SortByTimestamp(records)
	route := Route{
		Path:    make([]LatLng, 0, len(sorted)),
		Markers: make([]RouteMarker, 0, len(sorted)),
	}

	last := len(sorted) - 1
	for i, r := range sorted {
		pos := LatLng{Lat: r.Latitude, Lng: r.Longitude}
		tag, color := "", ColorInterior
		switch {
		case len(sorted) == 1:
			tag, color = TagEnd, ColorEnd
		case i == 0:
			tag, color = TagStart, ColorStart
		case i == last:
			tag, color = TagEnd, ColorEnd
		}

		route.Path = append(route.Path, pos)
		route.Markers = append(route.Markers, RouteMarker{
			Position: pos,
			MMSI:     r.MMSI,
			Time:     r.TimestampIST.String(),
			Speed:    r.SpeedOverGround,
			Heading:  r.TrueHeading,
			Course:   r.CourseOverGround,
			Tag:      tag,
			Color:    color,
		})
	}
	return route
}
