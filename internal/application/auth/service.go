// Package auth exchanges credentials for access tokens and resolves tokens
// back to users.
package auth

import (
	"context"
	"strings"

	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
)

type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

type PasswordVerifier interface {
	Verify(password, hash string) bool
}

type TokenService interface {
	Issue(subject string) (string, error)
	ResolveSubject(token string) (string, error)
}

type TokenResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

type Service struct {
	users     UserLookup
	passwords PasswordVerifier
	tokens    TokenService
	expiresIn int64
	logger    logger.Interface
}

func NewService(users UserLookup, passwords PasswordVerifier, tokens TokenService, expiresInSeconds int64, log logger.Interface) *Service {
	return &Service{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		expiresIn: expiresInSeconds,
		logger:    log.Named("auth.service"),
	}
}

// Login verifies username and password and issues a bearer token whose
// subject is the username. Unknown users and wrong passwords fail alike.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenResult, error) {
	s.logger.Infow("authenticating", "username", username)

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Errorw("failed to load user for login", "username", username, "error", err)
		return nil, err
	}
	if u == nil {
		s.logger.Warnw("authentication failed: user not found", "username", username)
		return nil, errors.NewIncorrectLoginError()
	}
	if !s.passwords.Verify(password, u.PasswordHash()) {
		s.logger.Warnw("authentication failed: invalid password", "username", username)
		return nil, errors.NewIncorrectLoginError()
	}

	token, err := s.tokens.Issue(u.Username())
	if err != nil {
		s.logger.Errorw("failed to issue token", "username", username, "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	s.logger.Infow("authentication success", "username", username, "user_id", u.ID())
	return &TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.expiresIn,
	}, nil
}

// CurrentUser resolves a bearer token to the user it names, read fresh
// from the store.
func (s *Service) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.NewCredentialsInvalidError()
	}

	username, err := s.tokens.ResolveSubject(token)
	if err != nil {
		s.logger.Warnw("token rejected", "error", err)
		return nil, err
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Errorw("failed to load token subject", "username", username, "error", err)
		return nil, err
	}
	if u == nil {
		s.logger.Warnw("token subject not found", "username", username)
		return nil, errors.NewCredentialsInvalidError()
	}
	return u, nil
}
