package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dailydiet/daily-diet-api/internal/domain"
	"github.com/dailydiet/daily-diet-api/internal/repository/postgres"
	"github.com/dailydiet/daily-diet-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr bool
	}{
		{
			name: "successful creation",
			user: &domain.User{
				ID:           uuid.New(),
				Name:         "testuser",
				Email:        "testuser@example.com",
				PasswordHash: "hashedpassword",
				SessionID:    uuid.New().String(),
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			user: &domain.User{
				ID:           uuid.New(),
				Name:         "testuser2",
				Email:        "testuser@example.com", // Same as above
				PasswordHash: "hashedpassword2",
				SessionID:    uuid.New().String(),
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_GetBySessionID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	sessionID := uuid.New().String()
	user, _ := testutil.NewUserBuilder().
		WithSessionID(sessionID).
		Build(t, testDB.DB)

	tests := []struct {
		name      string
		sessionID string
		wantErr   bool
	}{
		{
			name:      "existing session",
			sessionID: sessionID,
			wantErr:   false,
		},
		{
			name:      "unknown session",
			sessionID: uuid.New().String(),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetBySessionID(ctx, tt.sessionID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, user.Email, got.Email)
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("getbyemail@example.com").
		Build(t, testDB.DB)

	got, err := repo.GetByEmail(ctx, "getbyemail@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.Error(t, err)
}
