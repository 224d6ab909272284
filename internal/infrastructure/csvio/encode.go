package csvio

import (
	"encoding/csv"
	"io"

	"github.com/graviti/shiptracker/internal/core/domain"
)

// WriteTracks writes records with the upload column layout, so an export can
// be uploaded again.
func WriteTracks(w io.Writer, records []domain.TrackRecord) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Fields()
	}
	return WriteTable(w, domain.TrackColumns, rows)
}

// WriteTable writes a header row followed by rows.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
