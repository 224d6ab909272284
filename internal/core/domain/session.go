package domain

import "time"

// Session is the per-login dashboard state: who is logged in, the uploaded
// Track Store and the selected vessel. Handlers receive it from the session
// gate and hand it to services; it is never stored in package state.
type Session struct {
	ID            string        `json:"id"`
	Username      string        `json:"username"`
	Authenticated bool          `json:"authenticated"`
	Tracks        []TrackRecord `json:"tracks,omitempty"`
	SourceName    string        `json:"source_name,omitempty"`
	UploadedAt    time.Time     `json:"uploaded_at,omitempty"`
	SelectedMMSI  string        `json:"selected_mmsi,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// HasData reports whether a non-empty dataset has been uploaded.
func (s *Session) HasData() bool {
	return s != nil && len(s.Tracks) > 0
}

// ReplaceTracks swaps in a new Track Store wholesale and resets the selection.
func (s *Session) ReplaceTracks(name string, records []TrackRecord, at time.Time) {
	s.Tracks = records
	s.SourceName = name
	s.UploadedAt = at
	s.SelectedMMSI = ""
	if len(records) > 0 {
		s.SelectedMMSI = records[0].MMSI
	}
}

// Clone returns a copy that shares no mutable state with s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.Tracks != nil {
		c.Tracks = make([]TrackRecord, len(s.Tracks))
		copy(c.Tracks, s.Tracks)
	}
	return &c
}
