package entities

import "github.com/KirkDiggler/intrigue-api/internal/board"

// CharacterID identifies one of the ten characters in the shared catalog
type CharacterID string

// The character catalog. Every game uses all ten; each player secretly
// controls exactly one.
const (
	CharacterAmbassador CharacterID = "ambassador"
	CharacterBaroness   CharacterID = "baroness"
	CharacterColonel    CharacterID = "colonel"
	CharacterCourier    CharacterID = "courier"
	CharacterDiplomat   CharacterID = "diplomat"
	CharacterEnvoy      CharacterID = "envoy"
	CharacterGeneral    CharacterID = "general"
	CharacterJournalist CharacterID = "journalist"
	CharacterProfessor  CharacterID = "professor"
	CharacterSmuggler   CharacterID = "smuggler"
)

// CharacterIDs lists the catalog in stable order
var CharacterIDs = []CharacterID{
	CharacterAmbassador,
	CharacterBaroness,
	CharacterColonel,
	CharacterCourier,
	CharacterDiplomat,
	CharacterEnvoy,
	CharacterGeneral,
	CharacterJournalist,
	CharacterProfessor,
	CharacterSmuggler,
}

// TokenID identifies one of the three token types
type TokenID string

// The token catalog
const (
	TokenCipher    TokenID = "cipher"
	TokenMicrofilm TokenID = "microfilm"
	TokenPassport  TokenID = "passport"
)

// TokenIDs lists the catalog in stable order
var TokenIDs = []TokenID{TokenCipher, TokenMicrofilm, TokenPassport}

// TokenBoardLocations are the fixed pickup cells per token type. They are
// identical for every game and never change as pieces are picked up; only
// the stock count decreases.
var TokenBoardLocations = map[TokenID][]board.Cell{
	TokenCipher:    {0, 5, 7, 10},
	TokenMicrofilm: {2, 4, 9, 11},
	TokenPassport:  {1, 3, 6, 8},
}

// CharacterState is the per-game state of a catalog character
type CharacterState struct {
	ID         CharacterID `json:"id"`
	Location   board.Cell  `json:"location"`
	Eliminated bool        `json:"eliminated"`
}

// TokenState is the per-game state of a token type
type TokenState struct {
	ID        TokenID      `json:"id"`
	Stock     int          `json:"stock"`
	Locations []board.Cell `json:"locations"`
}
