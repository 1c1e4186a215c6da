package http

import (
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo          user.Repository
	roleRepo          access.RoleRepository
	transactionRepo   access.TransactionRepository
	assignmentRepo    access.AssignmentRepository
	authorizationRepo access.AuthorizationRepository
	grantRepo         access.GrantRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:          repository.NewUserRepository(db),
		roleRepo:          repository.NewRoleRepository(db),
		transactionRepo:   repository.NewTransactionRepository(db),
		assignmentRepo:    repository.NewAssignmentRepository(db),
		authorizationRepo: repository.NewAuthorizationRepository(db),
		grantRepo:         repository.NewGrantRepository(db),
	}
}
