package postgres

import (
	"context"

	"github.com/dailydiet/daily-diet-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *mealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meal, error) {
	var meal domain.Meal
	err := r.db.WithContext(ctx).First(&meal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// GetByUserID returns the owner's meals ordered by date descending, most
// recent first. The result is never nil.
func (r *mealRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	meals := make([]*domain.Meal, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) Update(ctx context.Context, meal *domain.Meal) error {
	// Save writes every column, including zero values such as is_on_diet=false.
	return r.db.WithContext(ctx).Save(meal).Error
}
