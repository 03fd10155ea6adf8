// Package game implements the game orchestrator: dealing new games,
// validating and applying player actions against the event log, managing
// guesses, and projecting per-player views.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/intrigue-api/internal/orchestrators/game Service

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/intrigue-api/internal/errors"
	"github.com/KirkDiggler/intrigue-api/internal/pkg/clock"
	"github.com/KirkDiggler/intrigue-api/internal/pkg/idgen"
	gamerepo "github.com/KirkDiggler/intrigue-api/internal/repositories/game"
	userrepo "github.com/KirkDiggler/intrigue-api/internal/repositories/user"
)

// maxUpdateAttempts bounds the optimistic-concurrency retry loop. Every
// attempt re-reads the aggregate and re-validates actor and phase before
// committing, so a retry can never replay a stale decision.
const maxUpdateAttempts = 3

// Service defines the interface for game operations
type Service interface {
	// CreateGame deals a new game for 2-6 players
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// ApplyAction validates and applies the acting player's next action
	ApplyAction(ctx context.Context, input *ApplyActionInput) (*ApplyActionOutput, error)

	// UpsertGuess records or replaces a deduction claim
	UpsertGuess(ctx context.Context, input *UpsertGuessInput) (*UpsertGuessOutput, error)

	// DeleteGuess removes a deduction claim
	DeleteGuess(ctx context.Context, input *DeleteGuessInput) (*DeleteGuessOutput, error)

	// GetPlayerView renders the game as seen by one participant
	GetPlayerView(ctx context.Context, input *GetPlayerViewInput) (*GetPlayerViewOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	GameRepo gamerepo.Repository
	UserRepo userrepo.Repository

	// IDGenerator mints game IDs; CardIDGenerator mints card IDs
	IDGenerator     idgen.Generator
	CardIDGenerator idgen.Generator

	Clock      clock.Clock
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameRepo == nil {
		vb.RequiredField("GameRepo")
	}
	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.CardIDGenerator == nil {
		vb.RequiredField("CardIDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

type orchestrator struct {
	gameRepo   gamerepo.Repository
	userRepo   userrepo.Repository
	idGen      idgen.Generator
	cardIDGen  idgen.Generator
	clock      clock.Clock
	diceRoller dice.Roller
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		gameRepo:   cfg.GameRepo,
		userRepo:   cfg.UserRepo,
		idGen:      cfg.IDGenerator,
		cardIDGen:  cfg.CardIDGenerator,
		clock:      cfg.Clock,
		diceRoller: cfg.DiceRoller,
	}, nil
}
