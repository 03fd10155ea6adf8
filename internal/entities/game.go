// Package entities defines the game aggregate and its catalog types.
// A Game is persisted and updated as a single unit; the embedded event
// log is the durable record of every action taken.
package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Stage is the lifecycle stage of a game
type Stage string

// Game stages. Transitions are one-directional:
// PLAYING -> GUESSING -> FINISHED, with PLAYING -> FINISHED possible when
// deduction completes as a token type runs out.
const (
	StagePlaying  Stage = "PLAYING"
	StageGuessing Stage = "GUESSING"
	StageFinished Stage = "FINISHED"
)

// Turn is the materialized turn snapshot: who acts next and in which
// phase, plus the dice rolled at the start of the turn and the card
// locked in at phase 3. It is recomputed incrementally on every log
// append; the log itself stays authoritative (see TurnFromEvents).
type Turn struct {
	ActivePlayerID string      `json:"active_player_id"`
	Phase          int         `json:"phase"`
	DieOne         CharacterID `json:"die_one,omitempty"`
	DieTwo         CharacterID `json:"die_two,omitempty"`
	CardID         string      `json:"card_id,omitempty"`
}

// Game is the aggregate root: players, character and token state, the
// card deck, the append-only event log, and the turn snapshot. Version
// supports optimistic concurrency in the repository.
type Game struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Stage     Stage     `json:"stage"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Players    []Player         `json:"players"`
	Characters []CharacterState `json:"characters"`
	Tokens     []TokenState     `json:"tokens"`
	Cards      []Card           `json:"cards"`
	Events     []Event          `json:"events"`
	Turn       Turn             `json:"turn"`
}

// GetID implements core.Entity
func (g *Game) GetID() string {
	return g.ID
}

// GetType implements core.Entity
func (g *Game) GetType() string {
	return "game"
}

// Compile-time checks that aggregate types implement core.Entity
var (
	_ core.Entity = (*Game)(nil)
	_ core.Entity = (*Player)(nil)
)

// PlayerByUser returns the player for the given user, or nil
func (g *Game) PlayerByUser(userID string) *Player {
	for i := range g.Players {
		if g.Players[i].UserID == userID {
			return &g.Players[i]
		}
	}
	return nil
}

// PlayerByOrder returns the player at the given turn order, or nil
func (g *Game) PlayerByOrder(order int) *Player {
	for i := range g.Players {
		if g.Players[i].Order == order {
			return &g.Players[i]
		}
	}
	return nil
}

// Character returns the per-game state for a catalog character, or nil
func (g *Game) Character(id CharacterID) *CharacterState {
	for i := range g.Characters {
		if g.Characters[i].ID == id {
			return &g.Characters[i]
		}
	}
	return nil
}

// Token returns the per-game state for a token type, or nil
func (g *Game) Token(id TokenID) *TokenState {
	for i := range g.Tokens {
		if g.Tokens[i].ID == id {
			return &g.Tokens[i]
		}
	}
	return nil
}

// Card returns the card with the given ID, or nil
func (g *Game) Card(id string) *Card {
	for i := range g.Cards {
		if g.Cards[i].ID == id {
			return &g.Cards[i]
		}
	}
	return nil
}

// IsControlled reports whether any player secretly controls the character
func (g *Game) IsControlled(id CharacterID) bool {
	for i := range g.Players {
		if g.Players[i].CharacterID == id {
			return true
		}
	}
	return false
}

// MinTokenStock returns the smallest remaining stock across token types
func (g *Game) MinTokenStock() int {
	min := -1
	for i := range g.Tokens {
		if min < 0 || g.Tokens[i].Stock < min {
			min = g.Tokens[i].Stock
		}
	}
	return min
}

// AppendEvent assigns the next event ID, appends the entry to the log,
// and advances the turn snapshot. Returns the stored entry.
func (g *Game) AppendEvent(ev Event) *Event {
	ev.ID = int64(len(g.Events)) + 1
	g.Events = append(g.Events, ev)

	if ev.Type == ActionRoll {
		g.Turn = Turn{
			ActivePlayerID: ev.ActorID,
			Phase:          1,
			DieOne:         ev.DieOne,
			DieTwo:         ev.DieTwo,
		}
	} else {
		g.Turn.Phase++
		if ev.CardID != "" && g.Turn.CardID == "" {
			g.Turn.CardID = ev.CardID
		}
	}

	return &g.Events[len(g.Events)-1]
}

// TurnFromEvents rederives the turn snapshot from the log alone: the
// active player is the actor of the last entry, the phase is the length
// of the maximal suffix of consecutive entries by that actor. Used to
// audit the materialized snapshot against the source of truth.
func TurnFromEvents(events []Event) Turn {
	if len(events) == 0 {
		return Turn{}
	}

	last := events[len(events)-1]
	n := 0
	for i := len(events) - 1; i >= 0 && events[i].ActorID == last.ActorID; i-- {
		n++
	}

	t := Turn{ActivePlayerID: last.ActorID, Phase: n}

	first := events[len(events)-n]
	if first.Type == ActionRoll {
		t.DieOne = first.DieOne
		t.DieTwo = first.DieTwo
	}
	if n >= 4 {
		t.CardID = last.CardID
	}
	return t
}

// DeductionComplete reports whether every player has exactly one
// confirmed (true) claim about every other player's character.
func (g *Game) DeductionComplete() bool {
	for i := range g.Players {
		for j := range g.Players {
			if i == j {
				continue
			}
			if g.Players[i].ConfirmedGuesses(g.Players[j].UserID) != 1 {
				return false
			}
		}
	}
	return true
}
