// Package user provides repository interface and types for user records
package user

import (
	"context"

	"github.com/KirkDiggler/intrigue-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=usermock github.com/KirkDiggler/intrigue-api/internal/repositories/user Repository

// CreateInput contains parameters for creating a user
type CreateInput struct {
	User *entities.User
}

// CreateOutput contains the result of creating a user
type CreateOutput struct {
	User *entities.User
}

// GetInput contains parameters for retrieving a user
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a user
type GetOutput struct {
	User *entities.User
}

// Repository defines the interface for user storage operations
type Repository interface {
	// Create stores a new user, failing if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}
