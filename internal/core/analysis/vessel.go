package analysis

import "github.com/graviti/shiptracker/internal/core/domain"

// Vessels returns the distinct MMSIs in order of first appearance.
func Vessels(records []domain.TrackRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.MMSI]; ok {
			continue
		}
		seen[r.MMSI] = struct{}{}
		out = append(out, r.MMSI)
	}
	return out
}

// ForVessel returns the rows of one vessel in file order.
func ForVessel(records []domain.TrackRecord, mmsi string) []domain.TrackRecord {
	out := make([]domain.TrackRecord, 0)
	for _, r := range records {
		if r.MMSI == mmsi {
			out = append(out, r)
		}
	}
	return out
}

// HasVessel reports whether mmsi occurs in records.
func HasVessel(records []domain.TrackRecord, mmsi string) bool {
	for _, r := range records {
		if r.MMSI == mmsi {
			return true
		}
	}
	return false
}
