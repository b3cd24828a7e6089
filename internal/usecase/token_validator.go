package usecase

import (
	"booking-intake/internal/domain/auth"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/pkg/jwt"
	"booking-intake/internal/usecase/commands"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

var ErrSessionInvalid = errs.New("authentication required")

// SessionValidator resolves a session cookie value to a live admin session.
type SessionValidator interface {
	ValidateSession(token string) (auth.Session, error)
}

type sessionValidatorImpl struct {
	jwtService *jwt.Service
	sessions   commands.SessionStore
}

func NewSessionValidator(jwtService *jwt.Service, sessions commands.SessionStore) SessionValidator {
	return &sessionValidatorImpl{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (v *sessionValidatorImpl) ValidateSession(token string) (auth.Session, error) {
	if token == "" {
		return auth.Session{}, errs.Mark(ErrSessionInvalid, errs.ErrAuth)
	}

	claims, err := v.jwtService.ValidateSessionToken(token)
	if err != nil {
		return auth.Session{}, errs.Mark(errs.Wrap(err, "validate session token"), errs.ErrAuth)
	}

	sess, ok := v.sessions.Get(claims.SessionID)
	if !ok {
		return auth.Session{}, errs.Mark(ErrSessionInvalid, errs.ErrAuth)
	}
	return sess, nil
}
