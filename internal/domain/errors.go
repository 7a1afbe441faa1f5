package domain

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrEmailTaken indicates the signup email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrOnboardingIncomplete indicates the user has not finished
	// onboarding and cannot use logging or insight features yet.
	ErrOnboardingIncomplete = errors.New("onboarding not complete")

	// ErrInvalidInput indicates the request payload failed domain checks
	// beyond field-level validation.
	ErrInvalidInput = errors.New("invalid input")
)
