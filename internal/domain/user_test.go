package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "secret")

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "secret", user.Password)
}

func TestUser_IsValid(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{
			name: "should be valid with all fields set",
			user: NewUser("alice", "alice@example.com", "secret"),
			want: true,
		},
		{
			name: "should be invalid without username",
			user: NewUser("", "alice@example.com", "secret"),
			want: false,
		},
		{
			name: "should be invalid without email",
			user: NewUser("alice", "", "secret"),
			want: false,
		},
		{
			name: "should be invalid without password",
			user: NewUser("alice", "alice@example.com", ""),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.IsValid())
		})
	}
}

func TestUser_String(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "secret")
	assert.Equal(t, "alice", user.String())
}
