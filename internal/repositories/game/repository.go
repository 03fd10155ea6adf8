// Package game provides repository interface and types for game aggregates.
// The whole aggregate (players, characters, tokens, cards, event log, turn
// snapshot) is stored and updated as one unit so every mutation commits
// atomically with its log entry.
package game

import (
	"context"

	"github.com/KirkDiggler/intrigue-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamemock github.com/KirkDiggler/intrigue-api/internal/repositories/game Repository

// CreateInput contains parameters for creating a game
type CreateInput struct {
	Game *entities.Game
}

// CreateOutput contains the result of creating a game
type CreateOutput struct {
	Game *entities.Game
}

// GetInput contains parameters for retrieving a game
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a game
type GetOutput struct {
	Game *entities.Game
}

// UpdateInput contains parameters for updating a game. The game's
// Version must match the stored version or the update is rejected.
type UpdateInput struct {
	Game *entities.Game
}

// UpdateOutput contains the result of updating a game
type UpdateOutput struct {
	Game *entities.Game
}

// Repository defines the interface for game storage operations
type Repository interface {
	// Create stores a new game, failing if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a game by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the stored aggregate under optimistic concurrency:
	// a concurrent writer since the aggregate was read surfaces as Aborted.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}
