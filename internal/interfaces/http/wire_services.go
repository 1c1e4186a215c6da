package http

import (
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/application/auth"
	"github.com/orris-inc/warden/internal/application/authorization"
	"github.com/orris-inc/warden/internal/application/crud"
	appUser "github.com/orris-inc/warden/internal/application/user"
	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/infrastructure/config"
	infraAuth "github.com/orris-inc/warden/internal/infrastructure/auth"
	"github.com/orris-inc/warden/internal/shared/db"
	"github.com/orris-inc/warden/internal/shared/logger"
)

// services holds the application services built on top of the repositories.
type services struct {
	users          *appUser.Service
	roles          *crud.Service[*access.Role]
	transactions   *crud.Service[*access.Transaction]
	assignments    *crud.Service[*access.Assignment]
	authorizations *crud.Service[*access.Authorization]
	auth           *auth.Service
	resolver       *authorization.Resolver
}

func newServices(gdb *gorm.DB, repos *repositories, cfg *config.Config, log logger.Interface) *services {
	tm := db.NewTxRunner(gdb)
	hasher := infraAuth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokens := infraAuth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)

	return &services{
		users:          appUser.NewService(repos.userRepo, tm, hasher, log),
		roles:          crud.NewService[*access.Role](access.EntityRole, repos.roleRepo, tm, log),
		transactions:   crud.NewService[*access.Transaction](access.EntityTransaction, repos.transactionRepo, tm, log),
		assignments:    crud.NewService[*access.Assignment](access.EntityAssignment, repos.assignmentRepo, tm, log),
		authorizations: crud.NewService[*access.Authorization](access.EntityAuthorization, repos.authorizationRepo, tm, log),
		auth:           auth.NewService(repos.userRepo, hasher, tokens, int64(tokens.TTL().Seconds()), log),
		resolver:       authorization.NewResolver(repos.grantRepo, log),
	}
}
