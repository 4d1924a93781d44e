package service

import (
	"github.com/dailydiet/daily-diet-api/internal/config"
	"github.com/dailydiet/daily-diet-api/internal/repository"
)

type Services struct {
	Auth *AuthService
	Meal *MealService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, cfg),
		Meal: NewMealService(repos.Meal),
	}
}
