package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// AuthService implements credential login. A successful login stores a
// server-side session and returns a signed token referencing it, so a logout
// can revoke the token before its expiry.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	session := domain.Session{
		ID:        newSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      role,
		ExpiresAt: time.Now().UTC().Add(s.tokenTTL),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return "", nil, err
	}

	token, err := s.signToken(session)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("session opened")
	return token, user, nil
}

func (s *AuthService) signToken(session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   session.UserID,
		"email": session.Email,
		"name":  session.Name,
		"role":  session.Role,
		"sid":   session.ID,
		"exp":   session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newSessionID returns a 128-bit random hex id.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: nanosecond timestamp, still unique enough per process
		return hex.EncodeToString([]byte(time.Now().UTC().Format("20060102150405.000000000")))
	}
	return hex.EncodeToString(b)
}
