package service

import (
	"context"
	"io"
	"time"

	"github.com/graviti/shiptracker/internal/core/domain"
)

type stubSessionRepo struct {
	sessions map[string]*domain.Session
	saves    int
	saveErr  error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (r *stubSessionRepo) Save(_ context.Context, s *domain.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.sessions[s.ID] = s.Clone()
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type stubDecoder struct {
	records []domain.TrackRecord
	err     error
}

func (d *stubDecoder) Decode(_ io.Reader) ([]domain.TrackRecord, error) {
	return d.records, d.err
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = user.Username
	r.users[user.Username] = &clone
	out := clone
	return &out, nil
}

func track(mmsi string, minute int) domain.TrackRecord {
	ts := time.Date(2024, 3, 1, 10, minute, 0, 0, time.UTC)
	return domain.TrackRecord{
		MMSI:            mmsi,
		Timestamp:       domain.Timestamp{Time: ts},
		TimestampIST:    domain.Timestamp{Time: ts.Add(330 * time.Minute)},
		Latitude:        18.9 + float64(minute)/100,
		Longitude:       72.8,
		SpeedOverGround: 10 + float64(minute),
		TrueHeading:     90,
		RateOfTurn:      1,
	}
}
