package service

import (
	"context"
	"testing"

	"github.com/rsweeney/sleepaid/internal/domain"
)

func TestUserService_Signup(t *testing.T) {
	userRepo := NewMockUserRepository()
	profileRepo := NewMockProfileRepository()
	svc := NewUserService(userRepo, profileRepo)

	resp, err := svc.Signup(context.Background(), &domain.SignupRequest{
		Email:    "night.owl@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if resp.Email != "night.owl@example.com" {
		t.Errorf("Signup() email = %q", resp.Email)
	}
	if resp.OnboardingComplete {
		t.Error("Signup() should start with onboarding incomplete")
	}

	stored, err := userRepo.GetByID(context.Background(), resp.UserID)
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "hunter2hunter2" || stored.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
}

func TestUserService_SignupDuplicateEmail(t *testing.T) {
	userRepo := NewMockUserRepository()
	svc := NewUserService(userRepo, NewMockProfileRepository())

	req := &domain.SignupRequest{Email: "dup@example.com", Password: "hunter2hunter2"}
	if _, err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("first Signup() error = %v", err)
	}
	if _, err := svc.Signup(context.Background(), req); err != domain.ErrEmailTaken {
		t.Errorf("second Signup() error = %v, want ErrEmailTaken", err)
	}
}

func TestUserService_Login(t *testing.T) {
	userRepo := NewMockUserRepository()
	profileRepo := NewMockProfileRepository()
	svc := NewUserService(userRepo, profileRepo)

	signup, err := svc.Signup(context.Background(), &domain.SignupRequest{
		Email:    "night.owl@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"correct credentials", "night.owl@example.com", "hunter2hunter2", nil},
		{"wrong password", "night.owl@example.com", "nope", domain.ErrInvalidCredentials},
		{"unknown email", "stranger@example.com", "hunter2hunter2", domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), &domain.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})
			if err != tt.wantErr {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && resp.UserID != signup.UserID {
				t.Errorf("Login() user = %v, want %v", resp.UserID, signup.UserID)
			}
		})
	}
}

func TestUserService_LoginReportsOnboarding(t *testing.T) {
	userRepo := NewMockUserRepository()
	profileRepo := NewMockProfileRepository()
	svc := NewUserService(userRepo, profileRepo)

	signup, err := svc.Signup(context.Background(), &domain.SignupRequest{
		Email:    "done@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	login := &domain.LoginRequest{Email: "done@example.com", Password: "hunter2hunter2"}

	resp, err := svc.Login(context.Background(), login)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.OnboardingComplete {
		t.Error("OnboardingComplete = true before onboarding")
	}

	profileRepo.Save(context.Background(), signup.UserID, onboardedProfile())

	resp, err = svc.Login(context.Background(), login)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !resp.OnboardingComplete {
		t.Error("OnboardingComplete = false after onboarding")
	}
}
