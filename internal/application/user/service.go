// Package user manages user accounts on top of the generic entity service,
// hashing secrets before they reach the store.
package user

import (
	"context"
	"fmt"

	"github.com/orris-inc/warden/internal/application/crud"
	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/db"
	"github.com/orris-inc/warden/internal/shared/errors"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/query"
)

const EntityName = "User"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// SaveUserCommand carries a full user record. Update replaces every field,
// including the password.
type SaveUserCommand struct {
	Username    string
	DisplayName string
	Email       string
	Password    string
	OriginIP    string
	Login       string
}

type Service struct {
	crud   *crud.Service[*user.User]
	repo   user.Repository
	hasher PasswordHasher
	logger logger.Interface
}

func NewService(repo user.Repository, tx db.Runner, hasher PasswordHasher, log logger.Interface) *Service {
	return &Service{
		crud:   crud.NewService[*user.User](EntityName, repo, tx, log),
		repo:   repo,
		hasher: hasher,
		logger: log.Named("user.service"),
	}
}

func (s *Service) Create(ctx context.Context, cmd SaveUserCommand) (*user.User, error) {
	u, err := s.build(cmd)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("creating user", "username", cmd.Username, "email", cmd.Email, "ip", cmd.OriginIP)
	return s.crud.Create(ctx, u)
}

func (s *Service) Update(ctx context.Context, id uint, cmd SaveUserCommand) (*user.User, error) {
	u, err := s.build(cmd)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("updating user", "id", id, "username", cmd.Username, "by", cmd.Login, "ip", cmd.OriginIP)
	return s.crud.Update(ctx, id, u)
}

func (s *Service) Get(ctx context.Context, id uint) (*user.User, error) {
	return s.crud.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, q query.ListQuery) ([]*user.User, error) {
	return s.crud.List(ctx, q)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.crud.Delete(ctx, id)
}

// GetByUsername returns nil without error when no user matches exactly.
func (s *Service) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

func (s *Service) build(cmd SaveUserCommand) (*user.User, error) {
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}
	hash, err := s.hasher.Hash(cmd.Password)
	if appErr := errors.GetAppError(err); appErr != nil {
		return nil, appErr
	}
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}
	return user.NewUser(cmd.Username, cmd.DisplayName, cmd.Email, hash, shared.NewAudit(cmd.OriginIP, cmd.Login))
}
