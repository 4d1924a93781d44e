package service_test

import (
	"context"
	"testing"

	"github.com/dailydiet/daily-diet-api/internal/domain"
	repoPostgres "github.com/dailydiet/daily-diet-api/internal/repository/postgres"
	"github.com/dailydiet/daily-diet-api/internal/service"
	"github.com/dailydiet/daily-diet-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	svc := service.NewAuthService(repoPostgres.NewUserRepository(testDB.DB), testutil.TestConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, service.RegisterInput{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.SessionID)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	// duplicate email is rejected
	_, err = svc.Register(ctx, service.RegisterInput{
		Name:     "Other Maria",
		Email:    "maria@example.com",
		Password: "different",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	svc := service.NewAuthService(repoPostgres.NewUserRepository(testDB.DB), testutil.TestConfig())
	ctx := context.Background()

	registered, err := svc.Register(ctx, service.RegisterInput{
		Name:     "Joao",
		Email:    "joao@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name:  "correct credentials",
			input: service.LoginInput{Email: "joao@example.com", Password: "secret123"},
		},
		{
			name:    "wrong password",
			input:   service.LoginInput{Email: "joao@example.com", Password: "nope"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "unknown email",
			input:   service.LoginInput{Email: "ghost@example.com", Password: "secret123"},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			// login never rotates the session token
			assert.Equal(t, registered.SessionID, user.SessionID)
		})
	}
}
