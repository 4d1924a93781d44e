package domain

import (
	"time"

	"github.com/google/uuid"
)

// Meal is one logged meal event. Date is stored as epoch milliseconds so
// ordering and comparison never depend on a string format.
type Meal struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	IsOnDiet    bool      `json:"is_on_diet" gorm:"not null"`
	Date        int64     `json:"date" gorm:"not null"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MealMetrics summarizes an owner's diet history. BestOnDietSequence is the
// longest run of consecutive on-diet meals in date order.
type MealMetrics struct {
	TotalMeals         int `json:"totalMeals"`
	TotalMealsOnDiet   int `json:"totalMealsOnDiet"`
	TotalMealsOffDiet  int `json:"totalMealsOffDiet"`
	BestOnDietSequence int `json:"bestOnDietSequence"`
}
