package http

import (
	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/interfaces/dto"
	"github.com/orris-inc/warden/internal/interfaces/http/handlers"
	"github.com/orris-inc/warden/internal/shared/logger"
	"github.com/orris-inc/warden/internal/shared/services/sanitize"
)

type httpHandlers struct {
	user          *handlers.UserHandler
	auth          *handlers.AuthHandler
	health        *handlers.HealthHandler
	role          *handlers.EntityHandler[*access.Role, dto.RoleRequest]
	transaction   *handlers.EntityHandler[*access.Transaction, dto.TransactionRequest]
	assignment    *handlers.EntityHandler[*access.Assignment, dto.AssignmentRequest]
	authorization *handlers.EntityHandler[*access.Authorization, dto.AuthorizationRequest]
}

func newHandlers(svc *services, store handlers.Pinger, log logger.Interface) *httpHandlers {
	s := sanitize.NewTextSanitizer()

	return &httpHandlers{
		user:   handlers.NewUserHandler(svc.users, svc.resolver, s, log),
		auth:   handlers.NewAuthHandler(svc.auth, log),
		health: handlers.NewHealthHandler(store, log),
		role: handlers.NewEntityHandler[*access.Role, dto.RoleRequest](svc.roles,
			func(r *dto.RoleRequest, c dto.Caller) (*access.Role, error) { return r.ToEntity(s, c) },
			func(e *access.Role) any { return dto.ToRoleResponse(e) },
			log, "name"),
		transaction: handlers.NewEntityHandler[*access.Transaction, dto.TransactionRequest](svc.transactions,
			func(r *dto.TransactionRequest, c dto.Caller) (*access.Transaction, error) { return r.ToEntity(s, c) },
			func(e *access.Transaction) any { return dto.ToTransactionResponse(e) },
			log, "op_code", "name"),
		assignment: handlers.NewEntityHandler[*access.Assignment, dto.AssignmentRequest](svc.assignments,
			func(r *dto.AssignmentRequest, c dto.Caller) (*access.Assignment, error) { return r.ToEntity(s, c) },
			func(e *access.Assignment) any { return dto.ToAssignmentResponse(e) },
			log, "user_id", "role_id"),
		authorization: handlers.NewEntityHandler[*access.Authorization, dto.AuthorizationRequest](svc.authorizations,
			func(r *dto.AuthorizationRequest, c dto.Caller) (*access.Authorization, error) { return r.ToEntity(s, c) },
			func(e *access.Authorization) any { return dto.ToAuthorizationResponse(e) },
			log, "role_id", "transaction_id"),
	}
}
