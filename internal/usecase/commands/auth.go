package commands

import (
	"context"
	"errors"
	"time"

	"booking-intake/internal/domain/auth"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/pkg/jwt"
	"booking-intake/internal/pkg/password"
)

// AdminPasswordHash is the bcrypt hash every login attempt is checked against.
type AdminPasswordHash string

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	TTL       time.Duration
}

type authCommandsImpl struct {
	hash       AdminPasswordHash
	sessions   SessionStore
	jwtService *jwt.Service
}

func NewAuthCommands(hash AdminPasswordHash, sessions SessionStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		hash:       hash,
		sessions:   sessions,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, pw string) (*LoginResult, error) {
	candidate, err := auth.NewPassword(pw)
	if err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrAuth)
	}

	if err := password.ComparePassword(string(a.hash), candidate.Value()); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, errs.Mark(ErrInvalidCredentials, errs.ErrAuth)
		}
		return nil, errs.Mark(errs.Wrap(err, "compare admin password"), ErrSessionIssue)
	}

	sess := a.sessions.Create()
	token, err := a.jwtService.GenerateSessionToken(sess.ID, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		a.sessions.Delete(sess.ID)
		return nil, errs.Mark(errs.Wrap(err, "sign session token"), ErrSessionIssue)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
		TTL:       sess.ExpiresAt.Sub(sess.CreatedAt),
	}, nil
}

// Logout forgets the session behind token. Unknown or invalid tokens are ignored.
func (a *authCommandsImpl) Logout(_ context.Context, token string) {
	if token == "" {
		return
	}
	claims, err := a.jwtService.ValidateSessionToken(token)
	if err != nil {
		return
	}
	a.sessions.Delete(claims.SessionID)
}
