package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// SessionService is the token verifier behind the auth middleware. It parses
// the cookie token, then confirms the referenced session still exists server
// side. A missing cookie, a bad signature, an expired token, a revoked
// session and a session-store outage all collapse to ErrUnauthenticated:
// this layer deliberately does not distinguish transient infra errors from
// genuine auth failures.
type SessionService struct {
	sessions  ports.SessionStore
	jwtSecret string
}

func NewSessionService(sessions ports.SessionStore, jwtSecret string) *SessionService {
	return &SessionService{sessions: sessions, jwtSecret: jwtSecret}
}

func (s *SessionService) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	sid, err := s.sessionID(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if session.Expired(time.Now().UTC()) {
		return nil, domain.ErrUnauthenticated
	}

	role := session.Role
	if role == "" {
		role = domain.RoleUser
	}

	return &domain.Principal{
		ID:    session.UserID,
		Email: session.Email,
		Name:  session.Name,
		Role:  role,
	}, nil
}

func (s *SessionService) Revoke(ctx context.Context, token string) error {
	sid, err := s.sessionID(token)
	if err != nil {
		return domain.ErrUnauthenticated
	}
	return s.sessions.Delete(ctx, sid)
}

// sessionID validates the token signature and expiry and extracts the
// server-side session id claim.
func (s *SessionService) sessionID(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrUnauthenticated
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrUnauthenticated
	}
	return sid, nil
}
