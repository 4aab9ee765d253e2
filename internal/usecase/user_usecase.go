// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"excerpta/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user together with the raw key of
// their auto-provisioned Web device. The raw key is shown exactly once.
type RegisterOutput struct {
	User         *entity.User
	WebDeviceKey string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns a fresh token pair after a refresh-token exchange.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates a new account and its reserved Web device.
	RegisterUser(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshTokens exchanges a valid refresh token for a new token pair,
	// rotating the stored refresh token.
	RefreshTokens(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout revokes the given refresh token, ending that session.
	Logout(ctx context.Context, refreshToken string) error
}
