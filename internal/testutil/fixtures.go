package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/dailydiet/daily-diet-api/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name      string
	email     string
	password  string
	sessionID string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:      fmt.Sprintf("testuser_%s", suffix),
		email:     fmt.Sprintf("testuser_%s@example.com", suffix),
		password:  "testpassword123",
		sessionID: uuid.New().String(),
	}
}

// WithName sets the name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithSessionID sets the session token
func (b *UserBuilder) WithSessionID(sessionID string) *UserBuilder {
	b.sessionID = sessionID
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		SessionID:    b.sessionID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user, b.password
}

// MealBuilder creates test meals with a builder pattern
type MealBuilder struct {
	name        string
	description string
	isOnDiet    bool
	date        time.Time
	userID      uuid.UUID
}

// NewMealBuilder creates a new MealBuilder with default values
func NewMealBuilder(userID uuid.UUID) *MealBuilder {
	return &MealBuilder{
		name:        fmt.Sprintf("meal_%s", uuid.New().String()[:8]),
		description: "a test meal",
		isOnDiet:    true,
		date:        time.Now().Truncate(time.Millisecond),
		userID:      userID,
	}
}

// WithName sets the meal name
func (b *MealBuilder) WithName(name string) *MealBuilder {
	b.name = name
	return b
}

// WithDescription sets the description
func (b *MealBuilder) WithDescription(description string) *MealBuilder {
	b.description = description
	return b
}

// WithIsOnDiet sets the diet flag
func (b *MealBuilder) WithIsOnDiet(isOnDiet bool) *MealBuilder {
	b.isOnDiet = isOnDiet
	return b
}

// WithDate sets the meal date
func (b *MealBuilder) WithDate(date time.Time) *MealBuilder {
	b.date = date
	return b
}

// Build creates the meal in the database
func (b *MealBuilder) Build(t *testing.T, db *gorm.DB) *domain.Meal {
	t.Helper()

	meal := &domain.Meal{
		ID:          uuid.New(),
		Name:        b.name,
		Description: b.description,
		IsOnDiet:    b.isOnDiet,
		Date:        b.date.UnixMilli(),
		UserID:      b.userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(meal).Error; err != nil {
		t.Fatalf("failed to create test meal: %v", err)
	}

	return meal
}
