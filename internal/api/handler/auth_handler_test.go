package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rsweeney/sleepaid/internal/domain"
)

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockUserService
		wantStatusCode int
	}{
		{
			name:           "valid signup",
			body:           `{"email": "night.owl@example.com", "password": "hunter2hunter2"}`,
			mockService:    &MockUserService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockUserService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed email",
			body:           `{"email": "not-an-email", "password": "hunter2hunter2"}`,
			mockService:    &MockUserService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "short password",
			body:           `{"email": "night.owl@example.com", "password": "short"}`,
			mockService:    &MockUserService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "duplicate email",
			body: `{"email": "dup@example.com", "password": "hunter2hunter2"}`,
			mockService: &MockUserService{
				signupFunc: func(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error) {
					return nil, domain.ErrEmailTaken
				},
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Signup(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Signup() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockUserService
		wantStatusCode int
	}{
		{
			name:           "valid login",
			body:           `{"email": "night.owl@example.com", "password": "hunter2hunter2"}`,
			mockService:    &MockUserService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "wrong credentials",
			body: `{"email": "night.owl@example.com", "password": "wrong-password"}`,
			mockService: &MockUserService{
				loginFunc: func(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
					return nil, domain.ErrInvalidCredentials
				},
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           `{"email": "night.owl@example.com"}`,
			mockService:    &MockUserService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Login() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_LoginResponseShape(t *testing.T) {
	handler := NewAuthHandler(&MockUserService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		bytes.NewBufferString(`{"email": "night.owl@example.com", "password": "hunter2hunter2"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	var resp domain.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Email != "night.owl@example.com" {
		t.Errorf("email = %q", resp.Email)
	}
	if !resp.OnboardingComplete {
		t.Error("onboarding flag lost in response")
	}
}
