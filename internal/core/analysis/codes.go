package analysis

import (
	"strconv"

	"github.com/graviti/shiptracker/internal/core/domain"
)

// StatusRow is one row's decoded navigation status and message type.
type StatusRow struct {
	MMSI                  string
	Time                  string
	NavigationStatus      int
	NavigationDescription string
	MessageType           int
	MessageDescription    string
}

// DecodeStatuses decodes both code columns of every row, in row order.
// Codes missing from the tables decode to an empty description.
func DecodeStatuses(records []domain.TrackRecord) []StatusRow {
	out := make([]StatusRow, len(records))
	for i, r := range records {
		out[i] = StatusRow{
			MMSI:                  r.MMSI,
			Time:                  r.TimestampIST.Clock(),
			NavigationStatus:      r.NavigationStatus,
			NavigationDescription: domain.NavigationStatusLabel(r.NavigationStatus),
			MessageType:           r.MessageType,
			MessageDescription:    domain.MessageTypeLabel(r.MessageType),
		}
	}
	return out
}

// Header rows of the decoded status tables and export.
var (
	NavigationTableHeader = []string{"Time", "Navigation Status", "Description"}
	MessageTableHeader    = []string{"Time", "Message Type", "Description"}
	StatusExportHeader    = []string{
		"MMSI",
		"Formatted_Time",
		"Navigation_Status",
		"Navigation Status Description",
		"Message_Type",
		"Message Type Description",
	}
)

// NavigationTable is the (time, code, label) grid for navigation status.
func NavigationTable(rows []StatusRow) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{r.Time, strconv.Itoa(r.NavigationStatus), r.NavigationDescription}
	}
	return out
}

// MessageTable is the (time, code, label) grid for message type.
func MessageTable(rows []StatusRow) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{r.Time, strconv.Itoa(r.MessageType), r.MessageDescription}
	}
	return out
}

// StatusExportRows are the rows of the decoded status CSV, matching
// StatusExportHeader.
func StatusExportRows(rows []StatusRow) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			r.MMSI,
			r.Time,
			strconv.Itoa(r.NavigationStatus),
			r.NavigationDescription,
			strconv.Itoa(r.MessageType),
			r.MessageDescription,
		}
	}
	return out
}
