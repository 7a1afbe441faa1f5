package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// SignupRequest is the request body for creating an account.
// @Description Request payload for account creation.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email" example:"night.owl@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"hunter2hunter2"`
}

// LoginRequest is the request body for logging in.
// @Description Request payload for credential verification.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"night.owl@example.com"`
	Password string `json:"password" validate:"required" example:"hunter2hunter2"`
}

// AuthResponse is the response body for signup and login.
// @Description Authenticated user identity.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email  string    `json:"email" example:"night.owl@example.com"`
	// False until the onboarding flow has been completed; the client must
	// route to onboarding while this is false.
	OnboardingComplete bool `json:"onboarding_complete"`
}
