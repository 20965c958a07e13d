//go:build unit

package usecase

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra/store/memory"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) AuthUseCase {
	t.Helper()

	clk := clock.NewMockClock(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	users := memory.NewUserStore(clk)
	jwtService := jwt.NewService("test-secret-key-for-auth-tests", time.Hour)
	return NewAuthUseCase(users, jwtService)
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("creates a user and returns a usable token", func(t *testing.T) {
		uc := newAuthFixture(t)

		created, token, err := uc.Register(context.Background(), "Ana Silva", "Ana@Example.com", "correct-horse")

		require.NoError(t, err)
		assert.Equal(t, "Ana Silva", created.FullName)
		assert.Equal(t, "ana@example.com", created.Email)
		assert.Equal(t, user.RoleUser, created.Role)
		assert.NotEmpty(t, token)
	})

	t.Run("rejects a taken email regardless of case", func(t *testing.T) {
		uc := newAuthFixture(t)

		_, _, err := uc.Register(context.Background(), "Ana Silva", "ana@example.com", "correct-horse")
		require.NoError(t, err)

		_, _, err = uc.Register(context.Background(), "Other Ana", "ANA@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("validates input", func(t *testing.T) {
		uc := newAuthFixture(t)

		tests := []struct {
			name     string
			fullName string
			email    string
			password string
		}{
			{"empty name", "  ", "ana@example.com", "correct-horse"},
			{"bad email", "Ana", "not-an-email", "correct-horse"},
			{"short password", "Ana", "ana@example.com", "short"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, _, err := uc.Register(context.Background(), tt.fullName, tt.email, tt.password)
				assert.ErrorIs(t, err, ErrInvalidUser)
			})
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("authenticates with the registered password", func(t *testing.T) {
		uc := newAuthFixture(t)
		registered, _, err := uc.Register(context.Background(), "Ana Silva", "ana@example.com", "correct-horse")
		require.NoError(t, err)

		found, token, err := uc.Login(context.Background(), "ana@example.com", "correct-horse")

		require.NoError(t, err)
		assert.Equal(t, registered.ID, found.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		uc := newAuthFixture(t)
		_, _, err := uc.Register(context.Background(), "Ana Silva", "ana@example.com", "correct-horse")
		require.NoError(t, err)

		_, _, err = uc.Login(context.Background(), "ana@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = uc.Login(context.Background(), "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthUseCase_CurrentUser(t *testing.T) {
	uc := newAuthFixture(t)
	registered, _, err := uc.Register(context.Background(), "Ana Silva", "ana@example.com", "correct-horse")
	require.NoError(t, err)

	found, err := uc.CurrentUser(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, found.Email)
}
