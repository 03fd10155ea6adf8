package game

import (
	"context"
	"time"

	"github.com/KirkDiggler/intrigue-api/internal/board"
	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
	gamerepo "github.com/KirkDiggler/intrigue-api/internal/repositories/game"
)

// ViewRole labels how much of a player's state the viewer may see
type ViewRole string

// View roles
const (
	RoleSelf     ViewRole = "self"
	RoleOther    ViewRole = "other"
	RoleFinished ViewRole = "finished"
)

// GameView is the per-viewer projection of a game. Hidden information
// is redacted at projection time, never at storage time, so the same
// aggregate serves every viewer.
type GameView struct {
	GameID   string
	Name     string
	Stage    entities.Stage
	ViewerID string

	// Turn is zeroed once the game leaves PLAYING
	Turn entities.Turn

	Players    []PlayerView
	Characters []CharacterView
	Tokens     []TokenView
	Events     []EventView
}

// PlayerView projects one player's state under a role
type PlayerView struct {
	UserID   string
	Order    int
	Role     ViewRole
	HandSize int

	// CharacterID is set for self and finished roles only
	CharacterID entities.CharacterID

	// Hand is populated for self and finished roles only
	Hand []CardView

	// Tokens held are public information
	Tokens map[entities.TokenID]int

	// Guesses are set for self and finished roles only
	Guesses map[string]map[entities.CharacterID]bool
}

// CardView projects a card's two action slots
type CardView struct {
	ID        string
	ActionOne entities.CardAction
	ActionTwo entities.CardAction
}

// CharacterView projects one board character. Eliminated only shows the
// eliminations the viewer is entitled to see.
type CharacterView struct {
	ID         entities.CharacterID
	Location   board.Cell
	Eliminated bool
}

// TokenView projects one token type's board state
type TokenView struct {
	ID        entities.TokenID
	Stock     int
	Locations []board.Cell
}

// EventView projects one log entry with private payloads redacted
type EventView struct {
	ID        int64
	ActorID   string
	Type      entities.ActionType
	CreatedAt time.Time

	DieOne entities.CharacterID
	DieTwo entities.CharacterID

	Character entities.CharacterID
	From      board.Cell
	To        board.Cell

	Token  entities.TokenID
	CardID string

	TargetID string

	// Result is nil unless the viewer may see the sight outcome
	Result *bool

	// Eliminated is empty unless the viewer may see the drawn character
	Eliminated entities.CharacterID
}

// GetPlayerView builds the viewer's projection of the game. Only
// participants may view; secret state belonging to other players stays
// hidden until the game finishes.
func (o *orchestrator) GetPlayerView(ctx context.Context, input *GetPlayerViewInput) (*GetPlayerViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.GameID == "" {
		vb.RequiredField("GameID")
	}
	if input.UserID == "" {
		vb.RequiredField("UserID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOut, err := o.gameRepo.Get(ctx, gamerepo.GetInput{ID: input.GameID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load game")
	}
	g := getOut.Game

	if g.PlayerByUser(input.UserID) == nil {
		return nil, errors.PermissionDeniedf("user %s is not a participant", input.UserID)
	}

	return &GetPlayerViewOutput{View: projectGame(g, input.UserID)}, nil
}

func projectGame(g *entities.Game, viewerID string) *GameView {
	finished := g.Stage == entities.StageFinished

	view := &GameView{
		GameID:   g.ID,
		Name:     g.Name,
		Stage:    g.Stage,
		ViewerID: viewerID,
		Turn:     g.Turn,
	}

	for i := range g.Players {
		view.Players = append(view.Players, projectPlayer(g, &g.Players[i], viewerID, finished))
	}

	// The viewer only learns of an elimination they performed until the
	// game finishes and everything is on the table.
	revealed := make(map[entities.CharacterID]bool)
	for _, ev := range g.Events {
		if ev.Type == entities.ActionEliminate && (finished || ev.ActorID == viewerID) {
			revealed[ev.Eliminated] = true
		}
	}
	for _, cs := range g.Characters {
		view.Characters = append(view.Characters, CharacterView{
			ID:         cs.ID,
			Location:   cs.Location,
			Eliminated: cs.Eliminated && revealed[cs.ID],
		})
	}

	for _, ts := range g.Tokens {
		locations := make([]board.Cell, len(ts.Locations))
		copy(locations, ts.Locations)
		view.Tokens = append(view.Tokens, TokenView{
			ID:        ts.ID,
			Stock:     ts.Stock,
			Locations: locations,
		})
	}

	for _, ev := range g.Events {
		view.Events = append(view.Events, projectEvent(ev, viewerID, finished))
	}

	return view
}

func projectPlayer(g *entities.Game, p *entities.Player, viewerID string, finished bool) PlayerView {
	role := RoleOther
	switch {
	case finished:
		role = RoleFinished
	case p.UserID == viewerID:
		role = RoleSelf
	}

	pv := PlayerView{
		UserID:   p.UserID,
		Order:    p.Order,
		Role:     role,
		HandSize: len(p.Hand),
		Tokens:   make(map[entities.TokenID]int, len(p.Tokens)),
	}
	for tid, n := range p.Tokens {
		pv.Tokens[tid] = n
	}

	if role == RoleOther {
		return pv
	}

	pv.CharacterID = p.CharacterID
	for _, cardID := range p.Hand {
		if card := g.Card(cardID); card != nil {
			pv.Hand = append(pv.Hand, CardView{
				ID:        card.ID,
				ActionOne: card.ActionOne,
				ActionTwo: card.ActionTwo,
			})
		}
	}
	pv.Guesses = make(map[string]map[entities.CharacterID]bool, len(p.Guesses))
	for target, claims := range p.Guesses {
		claimsCopy := make(map[entities.CharacterID]bool, len(claims))
		for cid, v := range claims {
			claimsCopy[cid] = v
		}
		pv.Guesses[target] = claimsCopy
	}
	return pv
}

func projectEvent(ev entities.Event, viewerID string, finished bool) EventView {
	out := EventView{
		ID:        ev.ID,
		ActorID:   ev.ActorID,
		Type:      ev.Type,
		CreatedAt: ev.CreatedAt,
		DieOne:    ev.DieOne,
		DieTwo:    ev.DieTwo,
		Character: ev.Character,
		From:      ev.From,
		To:        ev.To,
		Token:     ev.Token,
		CardID:    ev.CardID,
		TargetID:  ev.TargetID,
	}

	if finished || ev.ActorID == viewerID {
		if ev.Result != nil {
			r := *ev.Result
			out.Result = &r
		}
		out.Eliminated = ev.Eliminated
	}
	return out
}
