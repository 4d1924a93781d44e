package service

import (
	"context"
	"errors"
	"time"

	"github.com/dailydiet/daily-diet-api/internal/domain"
	"github.com/dailydiet/daily-diet-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	mealRepo repository.MealRepository
}

func NewMealService(mealRepo repository.MealRepository) *MealService {
	return &MealService{mealRepo: mealRepo}
}

type MealInput struct {
	Name        string
	Description string
	IsOnDiet    bool
	Date        time.Time
}

func (s *MealService) Create(ctx context.Context, ownerID uuid.UUID, input MealInput) (*domain.Meal, error) {
	meal := &domain.Meal{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		IsOnDiet:    input.IsOnDiet,
		Date:        input.Date.UnixMilli(),
		UserID:      ownerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.mealRepo.Create(ctx, meal); err != nil {
		return nil, err
	}

	return meal, nil
}

// ListForOwner returns the owner's meals, most recent date first. An owner
// with no meals gets an empty slice, not an error.
func (s *MealService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Meal, error) {
	return s.mealRepo.GetByUserID(ctx, ownerID)
}

// GetByID fetches a meal by id alone. It does not check that the caller owns
// the meal, and a miss yields (nil, nil) rather than an error.
func (s *MealService) GetByID(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error) {
	meal, err := s.mealRepo.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return meal, nil
}

// UpdateByID overwrites name, description, is_on_diet and date in place.
// ID and UserID never change.
func (s *MealService) UpdateByID(ctx context.Context, mealID uuid.UUID, input MealInput) error {
	meal, err := s.mealRepo.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}

	meal.Name = input.Name
	meal.Description = input.Description
	meal.IsOnDiet = input.IsOnDiet
	meal.Date = input.Date.UnixMilli()
	meal.UpdatedAt = time.Now()

	return s.mealRepo.Update(ctx, meal)
}

// Metrics summarizes the owner's history. The best on-diet sequence is
// counted over meals in ascending date order.
func (s *MealService) Metrics(ctx context.Context, ownerID uuid.UUID) (*domain.MealMetrics, error) {
	meals, err := s.mealRepo.GetByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	metrics := &domain.MealMetrics{TotalMeals: len(meals)}

	// meals arrive date-descending; walk backwards for chronological order
	current := 0
	for i := len(meals) - 1; i >= 0; i-- {
		if meals[i].IsOnDiet {
			metrics.TotalMealsOnDiet++
			current++
			if current > metrics.BestOnDietSequence {
				metrics.BestOnDietSequence = current
			}
		} else {
			metrics.TotalMealsOffDiet++
			current = 0
		}
	}

	return metrics, nil
}
