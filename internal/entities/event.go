package entities

import (
	"time"

	"github.com/KirkDiggler/intrigue-api/internal/board"
)

// Event is one append-only log entry. IDs are per-game, strictly
// increasing from 1. Only the payload fields relevant to the event's
// type are populated.
type Event struct {
	ID        int64      `json:"id"`
	ActorID   string     `json:"actor_id"`
	Type      ActionType `json:"type"`
	CreatedAt time.Time  `json:"created_at"`

	// ROLL: the two die faces; empty string means the die came up blank
	DieOne CharacterID `json:"die_one,omitempty"`
	DieTwo CharacterID `json:"die_two,omitempty"`

	// MOVE: the character moved and its pre-move location
	Character CharacterID `json:"character,omitempty"`
	From      board.Cell  `json:"from,omitempty"`
	To        board.Cell  `json:"to,omitempty"`

	// PICK_TOKEN / SPECIFIC_TOKEN
	Token TokenID `json:"token,omitempty"`

	// Card-phase actions record the card used
	CardID string `json:"card_id,omitempty"`

	// SIGHT: target player and the private visibility result
	TargetID string `json:"target_id,omitempty"`
	Result   *bool  `json:"result,omitempty"`

	// ELIMINATE: the privately revealed character
	Eliminated CharacterID `json:"eliminated,omitempty"`
}
