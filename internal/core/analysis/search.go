package analysis

import (
	"strings"

	"github.com/graviti/shiptracker/internal/core/domain"
)

// Search keeps the rows where any column's text contains query, ignoring
// case. The query is matched as typed, surrounding spaces included. An
// empty query returns records unchanged.
func Search(records []domain.TrackRecord, query string) []domain.TrackRecord {
	if query == "" {
		return records
	}
	q := strings.ToLower(query)

	out := make([]domain.TrackRecord, 0, len(records))
	for _, r := range records {
		if rowContains(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func rowContains(r domain.TrackRecord, lowered string) bool {
	for _, f := range r.Fields() {
		if strings.Contains(strings.ToLower(f), lowered) {
			return true
		}
	}
	return false
}
