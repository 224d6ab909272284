package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/ports"
	"github.com/graviti/shiptracker/pkg/logger"
)

// AuthService implements the session gate: login, logout and token checks.
type AuthService struct {
	verifier  ports.CredentialVerifier
	sessions  ports.SessionRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(verifier ports.CredentialVerifier, sessions ports.SessionRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthService{
		verifier:  verifier,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger.Component(log, "auth_service"),
	}
}

// TokenTTL is how long issued tokens (and their cookies) stay valid.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Login checks the credentials, opens a fresh session and returns its token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	ok, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return "", nil, fmt.Errorf("verify credentials: %w", err)
	}
	if !ok {
		s.logger.Info().Str("username", username).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:            uuid.NewString(),
		Username:      username,
		Authenticated: true,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", nil, fmt.Errorf("save session: %w", err)
	}

	token, err := s.generateToken(session)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", username).Str("session_id", session.ID).Msg("session opened")
	return token, session, nil
}

// Logout discards the session and its Track Store.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}

// Authenticate validates token and loads the session it names. Any token or
// lookup problem other than a backend failure is reported as
// domain.ErrSessionNotFound.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrSessionNotFound
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !session.Authenticated {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      session.ID,
		"username": session.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
