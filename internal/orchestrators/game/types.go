package game

import (
	"github.com/KirkDiggler/intrigue-api/internal/board"
	"github.com/KirkDiggler/intrigue-api/internal/entities"
)

// CreateGameInput defines the request for dealing a new game
type CreateGameInput struct {
	OwnerID string
	Name    string

	// PlayerIDs lists 2-6 registered users in seating order; the first
	// entry takes the opening turn
	PlayerIDs []string
}

// CreateGameOutput defines the response for dealing a new game
type CreateGameOutput struct {
	GameID string
	Game   *entities.Game
}

// Action describes a single player action submission
type Action struct {
	Type entities.ActionType

	// Character to move (MOVE)
	Character entities.CharacterID

	// MoveTo is the destination cell (MOVE)
	MoveTo *board.Cell

	// Token requested (PICK_TOKEN)
	Token entities.TokenID

	// CardID selects the hand card for phase 3 and 4
	CardID string

	// TargetID is the spied-on player (SIGHT)
	TargetID string
}

// ApplyActionInput defines the request for applying a player action
type ApplyActionInput struct {
	GameID string
	UserID string
	Action Action
}

// ApplyActionOutput defines the response for applying a player action
type ApplyActionOutput struct {
	Game  *entities.Game
	Event *entities.Event
	Stage entities.Stage

	// EliminatedCharacter is set for ELIMINATE actions
	EliminatedCharacter entities.CharacterID

	// SightResult is set for SIGHT actions; private to the acting player
	SightResult *bool
}

// UpsertGuessInput defines the request for recording a deduction claim
type UpsertGuessInput struct {
	GameID    string
	UserID    string
	TargetID  string
	Character entities.CharacterID
	Guess     bool
}

// UpsertGuessOutput defines the response for recording a deduction claim
type UpsertGuessOutput struct {
	Game              *entities.Game
	Stage             entities.Stage
	DeductionComplete bool
}

// DeleteGuessInput defines the request for removing a deduction claim
type DeleteGuessInput struct {
	GameID    string
	UserID    string
	TargetID  string
	Character entities.CharacterID
}

// DeleteGuessOutput defines the response for removing a deduction claim
type DeleteGuessOutput struct {
	Game              *entities.Game
	Stage             entities.Stage
	DeductionComplete bool
}

// GetPlayerViewInput defines the request for a per-player projection
type GetPlayerViewInput struct {
	GameID string
	UserID string
}

// GetPlayerViewOutput defines the response for a per-player projection
type GetPlayerViewOutput struct {
	View *GameView
}
