package dto

import "github.com/orris-inc/warden/internal/application/auth"

// TokenRequest accepts both a urlencoded form and a JSON body.
type TokenRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func ToTokenResponse(r *auth.TokenResult) *TokenResponse {
	return &TokenResponse{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
		ExpiresIn:   r.ExpiresIn,
	}
}
