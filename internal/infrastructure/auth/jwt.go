package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orris-inc/warden/internal/shared/biztime"
	"github.com/orris-inc/warden/internal/shared/errors"
)

// JWTService issues and validates HS256 access tokens whose subject is the
// username.
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTService(secret, issuer string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    time.Duration(accessExpMinutes) * time.Minute,
	}
}

// Issue signs a token for subject with iat, nbf, exp and iss set.
func (s *JWTService) Issue(subject string) (string, error) {
	now := biztime.NowUTC()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ResolveSubject validates tokenString and returns its subject. Any
// signature, expiry, issuer or structure failure, and a missing subject,
// is reported as TokenInvalid.
func (s *JWTService) ResolveSubject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", errors.NewTokenInvalidError(err.Error())
	}

	if claims.Subject == "" {
		return "", errors.NewTokenInvalidError("token has no subject")
	}
	return claims.Subject, nil
}

// TTL returns the access token lifetime.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}
