package dto

import (
	appUser "github.com/orris-inc/warden/internal/application/user"
	"github.com/orris-inc/warden/internal/domain/user"
	"github.com/orris-inc/warden/internal/shared/mapper"
	"github.com/orris-inc/warden/internal/shared/services/sanitize"
)

// SaveUserRequest is used for both create and full replacement.
type SaveUserRequest struct {
	Username    string `json:"username" binding:"required,max=50"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=120"`
	Password    string `json:"password" binding:"required,max=72"`
}

// ToCommand converts the request into the application command.
// The display name is stripped of markup.
func (r *SaveUserRequest) ToCommand(s sanitize.TextSanitizer, caller Caller) appUser.SaveUserCommand {
	return appUser.SaveUserCommand{
		Username:    r.Username,
		DisplayName: s.Clean(r.DisplayName),
		Email:       r.Email,
		Password:    r.Password,
		OriginIP:    caller.OriginIP,
		Login:       caller.Login,
	}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	AuditResponse
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:            u.ID(),
		Username:      u.Username(),
		DisplayName:   u.DisplayName(),
		Email:         u.Email(),
		AuditResponse: toAuditResponse(u.Audit()),
	}
}

func ToUserResponses(users []*user.User) []*UserResponse {
	return mapper.MapSlice(users, ToUserResponse)
}
