package analysis

import (
	"testing"
	"time"

	"github.com/graviti/shiptracker/internal/core/domain"
)

func rec(t *testing.T, mmsi, ts string, lat, lon float64) domain.TrackRecord {
	t.Helper()
	stamp, err := domain.ParseTimestamp(ts)
	if err != nil {
		t.Fatalf("parse %q: %v", ts, err)
	}
	return domain.TrackRecord{
		MMSI:             mmsi,
		Timestamp:        stamp,
		TimestampIST:     domain.Timestamp{Time: stamp.Add(5*time.Hour + 30*time.Minute)},
		Latitude:         lat,
		Longitude:        lon,
		SpeedOverGround:  12.5,
		CourseOverGround: 90,
		TrueHeading:      88,
		RateOfTurn:       -2,
		NavigationStatus: 0,
		MessageType:      1,
	}
}
