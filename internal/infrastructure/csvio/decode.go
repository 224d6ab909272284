// Package csvio reads and writes the dashboard's CSV files: uploaded AIS
// track datasets and the filtered/decoded exports.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/graviti/shiptracker/internal/core/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TrackDecoder parses uploaded AIS datasets.
type TrackDecoder struct{}

func NewTrackDecoder() *TrackDecoder {
	return &TrackDecoder{}
}

// Decode reads a full dataset. Every required column must be present in the
// header; extra columns are ignored. Schema problems wrap
// domain.ErrSchemaMismatch.
func (d *TrackDecoder) Decode(r io.Reader) ([]domain.TrackRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrSchemaMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", domain.ErrSchemaMismatch, err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []domain.TrackRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrSchemaMismatch, err)
		}
		line, _ := cr.FieldPos(0)

		rec, err := decodeRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrSchemaMismatch, line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range domain.TrackColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing column(s) %s", domain.ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return idx, nil
}

type rowReader struct {
	row  []string
	cols map[string]int
	err  error
}

func (r *rowReader) cell(col string) string {
	i := r.cols[col]
	if i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

func (r *rowReader) timestamp(col string) domain.Timestamp {
	if r.err != nil {
		return domain.Timestamp{}
	}
	ts, err := domain.ParseTimestamp(r.cell(col))
	if err != nil {
		r.err = fmt.Errorf("column %s: %w", col, err)
	}
	return ts
}

// float treats a missing value as zero: an empty cell, NaN or an infinity.
func (r *rowReader) float(col string) float64 {
	if r.err != nil {
		return 0
	}
	s := r.cell(col)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.err = fmt.Errorf("column %s: invalid number %q", col, s)
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// code accepts integral values written either as "5" or "5.0".
func (r *rowReader) code(col string) int {
	if r.err != nil {
		return 0
	}
	s := r.cell(col)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		r.err = fmt.Errorf("column %s: invalid code %q", col, s)
		return 0
	}
	return int(f)
}

func decodeRow(row []string, cols map[string]int) (domain.TrackRecord, error) {
	r := &rowReader{row: row, cols: cols}
	rec := domain.TrackRecord{
		MMSI:             r.cell(domain.ColMMSI),
		Timestamp:        r.timestamp(domain.ColTimestamp),
		TimestampIST:     r.timestamp(domain.ColTimestampIST),
		Latitude:         r.float(domain.ColLatitude),
		Longitude:        r.float(domain.ColLongitude),
		SpeedOverGround:  r.float(domain.ColSpeedOverGround),
		CourseOverGround: r.float(domain.ColCourseOverGround),
		TrueHeading:      r.float(domain.ColTrueHeading),
		RateOfTurn:       r.float(domain.ColRateOfTurn),
		NavigationStatus: r.code(domain.ColNavigationStatus),
		MessageType:      r.code(domain.ColMessageType),
	}
	if r.err == nil && rec.MMSI == "" {
		r.err = fmt.Errorf("column %s: empty value", domain.ColMMSI)
	}
	return rec, r.err
}
