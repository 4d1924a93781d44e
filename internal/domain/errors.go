package domain

import "errors"

// Auth errors
var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Meal errors
var (
	ErrMealNotFound = errors.New("meal not found")
)
