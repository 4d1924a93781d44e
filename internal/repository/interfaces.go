package repository

import (
	"context"

	"github.com/dailydiet/daily-diet-api/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.User, error)
}

type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error)
	Update(ctx context.Context, meal *domain.Meal) error
}

type Repositories struct {
	User UserRepository
	Meal MealRepository
}
