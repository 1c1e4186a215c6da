package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/warden/internal/domain/shared"
	"github.com/orris-inc/warden/internal/shared/errors"
)

func TestNewUser(t *testing.T) {
	audit := shared.NewAudit("10.0.0.1", "system")

	tests := []struct {
		name        string
		username    string
		displayName string
		email       string
		hash        string
		wantErr     string
	}{
		{name: "valid", username: "alice", displayName: "Alice", email: "alice@example.com", hash: "h"},
		{name: "missing username", username: " ", displayName: "Alice", email: "alice@example.com", hash: "h", wantErr: "username is required"},
		{name: "long username", username: strings.Repeat("a", 51), displayName: "Alice", email: "alice@example.com", hash: "h", wantErr: "username too long"},
		{name: "missing display name", username: "alice", displayName: "", email: "alice@example.com", hash: "h", wantErr: "display name is required"},
		{name: "missing email", username: "alice", displayName: "Alice", email: "", hash: "h", wantErr: "email is required"},
		{name: "missing hash", username: "alice", displayName: "Alice", email: "alice@example.com", hash: "", wantErr: "password hash is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.username, tt.displayName, tt.email, tt.hash, audit)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, u.Username())
			assert.Equal(t, uint(0), u.ID())
			assert.Equal(t, "10.0.0.1", u.Audit().OriginIP())
			assert.Equal(t, "system", u.Audit().Login())
		})
	}
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("bob", "Bob", "bob@example.com", "h", shared.NewAudit("::1", "system"))
	require.NoError(t, err)

	require.Error(t, u.SetID(0))
	require.NoError(t, u.SetID(7))
	assert.Equal(t, uint(7), u.ID())
	assert.Error(t, u.SetID(8))
}

func TestReconstructUser_RequiresID(t *testing.T) {
	_, err := ReconstructUser(0, "bob", "Bob", "bob@example.com", "h", shared.Audit{})
	assert.Error(t, err)
}
