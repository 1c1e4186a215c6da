package dto

import (
	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/shared/mapper"
	"github.com/orris-inc/warden/internal/shared/services/sanitize"
)

type RoleRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description"`
}

func (r *RoleRequest) ToEntity(s sanitize.TextSanitizer, caller Caller) (*access.Role, error) {
	return access.NewRole(s.Clean(r.Name), s.Clean(r.Description), caller.audit())
}

type RoleResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditResponse
}

func ToRoleResponse(r *access.Role) *RoleResponse {
	if r == nil {
		return nil
	}
	return &RoleResponse{
		ID:            r.ID(),
		Name:          r.Name(),
		Description:   r.Description(),
		AuditResponse: toAuditResponse(r.Audit()),
	}
}

type TransactionRequest struct {
	OperationCode string `json:"operation_code" binding:"required,opcode"`
	Name          string `json:"name" binding:"required,max=100"`
	Description   string `json:"description"`
}

func (r *TransactionRequest) ToEntity(s sanitize.TextSanitizer, caller Caller) (*access.Transaction, error) {
	return access.NewTransaction(r.OperationCode, s.Clean(r.Name), s.Clean(r.Description), caller.audit())
}

type TransactionResponse struct {
	ID            uint   `json:"id"`
	OperationCode string `json:"operation_code"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	AuditResponse
}

func ToTransactionResponse(t *access.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:            t.ID(),
		OperationCode: t.OperationCode(),
		Name:          t.Name(),
		Description:   t.Description(),
		AuditResponse: toAuditResponse(t.Audit()),
	}
}

func ToTransactionResponses(items []*access.Transaction) []*TransactionResponse {
	return mapper.MapSlice(items, ToTransactionResponse)
}

type AssignmentRequest struct {
	UserID uint `json:"user_id" binding:"required,gt=0"`
	RoleID uint `json:"role_id" binding:"required,gt=0"`
}

func (r *AssignmentRequest) ToEntity(_ sanitize.TextSanitizer, caller Caller) (*access.Assignment, error) {
	return access.NewAssignment(r.UserID, r.RoleID, caller.audit())
}

type AssignmentResponse struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`
	RoleID uint `json:"role_id"`
	AuditResponse
}

func ToAssignmentResponse(a *access.Assignment) *AssignmentResponse {
	if a == nil {
		return nil
	}
	return &AssignmentResponse{
		ID:            a.ID(),
		UserID:        a.UserID(),
		RoleID:        a.RoleID(),
		AuditResponse: toAuditResponse(a.Audit()),
	}
}

type AuthorizationRequest struct {
	RoleID        uint `json:"role_id" binding:"required,gt=0"`
	TransactionID uint `json:"transaction_id" binding:"required,gt=0"`
}

func (r *AuthorizationRequest) ToEntity(_ sanitize.TextSanitizer, caller Caller) (*access.Authorization, error) {
	return access.NewAuthorization(r.RoleID, r.TransactionID, caller.audit())
}

type AuthorizationResponse struct {
	ID            uint `json:"id"`
	RoleID        uint `json:"role_id"`
	TransactionID uint `json:"transaction_id"`
	AuditResponse
}

func ToAuthorizationResponse(a *access.Authorization) *AuthorizationResponse {
	if a == nil {
		return nil
	}
	return &AuthorizationResponse{
		ID:            a.ID(),
		RoleID:        a.RoleID(),
		TransactionID: a.TransactionID(),
		AuditResponse: toAuditResponse(a.Audit()),
	}
}
