package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/intrigue-api/internal/board"
	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
	gamerepo "github.com/KirkDiggler/intrigue-api/internal/repositories/game"
	userrepo "github.com/KirkDiggler/intrigue-api/internal/repositories/user"
)

// Player count limits
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// handSize is the number of cards dealt to each player
const handSize = 2

// CreateGame deals a new game: token stock and locations, the 28-card
// deck, starting positions, character assignment, opening hands, and the
// opening dice roll attributed to the first player.
func (o *orchestrator) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.OwnerID == "" {
		vb.RequiredField("OwnerID")
	}
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if len(input.PlayerIDs) < MinPlayers || len(input.PlayerIDs) > MaxPlayers {
		vb.Fieldf("PlayerIDs", "player count %d outside [%d,%d]", len(input.PlayerIDs), MinPlayers, MaxPlayers)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(input.PlayerIDs))
	for _, id := range input.PlayerIDs {
		if seen[id] {
			return nil, errors.InvalidArgumentf("duplicate player %s", id)
		}
		seen[id] = true

		if _, err := o.userRepo.Get(ctx, userrepo.GetInput{ID: id}); err != nil {
			return nil, errors.Wrapf(err, "failed to verify player %s", id)
		}
	}

	g := &entities.Game{
		ID:      o.idGen.Generate(),
		OwnerID: input.OwnerID,
		Name:    input.Name,
		Stage:   entities.StagePlaying,
	}

	// Token stock scales with player count; pickup cells are fixed per type.
	stock := len(input.PlayerIDs) + 2
	for _, tid := range entities.TokenIDs {
		locations := make([]board.Cell, len(entities.TokenBoardLocations[tid]))
		copy(locations, entities.TokenBoardLocations[tid])
		g.Tokens = append(g.Tokens, entities.TokenState{
			ID:        tid,
			Stock:     stock,
			Locations: locations,
		})
	}

	deck, err := o.buildDeck()
	if err != nil {
		return nil, err
	}

	// Opening roll, attributed to the first player in the supplied order.
	dieOne, dieTwo, err := o.rollDice()
	if err != nil {
		return nil, err
	}

	// Starting positions: the first five of a shuffled order take cells
	// 0-4, the last five take 7-11, leaving the middle cells 5 and 6 open.
	positions, err := o.shuffledCharacters()
	if err != nil {
		return nil, err
	}
	for i, id := range positions {
		cell := board.Cell(i)
		if i >= 5 {
			cell = board.Cell(i + 2)
		}
		g.Characters = append(g.Characters, entities.CharacterState{ID: id, Location: cell})
	}

	// Shuffle the deck and assign sequential deck order.
	err = o.shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	if err != nil {
		return nil, err
	}
	for i := range deck {
		order := i
		deck[i].DeckOrder = &order
	}

	// Assign characters and deal two cards per player off the deck's end.
	assignment, err := o.shuffledCharacters()
	if err != nil {
		return nil, err
	}
	top := len(deck) - 1
	for i, userID := range input.PlayerIDs {
		p := entities.Player{
			UserID:      userID,
			CharacterID: assignment[i],
			Order:       i,
			Tokens:      make(map[entities.TokenID]int, len(entities.TokenIDs)),
		}
		for range handSize {
			card := &deck[top]
			top--
			card.DeckOrder = nil
			card.HolderID = userID
			p.Hand = append(p.Hand, card.ID)
		}
		g.Players = append(g.Players, p)
	}
	g.Cards = deck

	g.AppendEvent(entities.Event{
		ActorID:   input.PlayerIDs[0],
		Type:      entities.ActionRoll,
		CreatedAt: o.clock.Now(),
		DieOne:    dieOne,
		DieTwo:    dieTwo,
	})

	createOut, err := o.gameRepo.Create(ctx, gamerepo.CreateInput{Game: g})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create game")
	}

	slog.Info("Game created",
		"game_id", g.ID,
		"owner_id", input.OwnerID,
		"players", len(input.PlayerIDs),
	)

	return &CreateGameOutput{
		GameID: createOut.Game.ID,
		Game:   createOut.Game,
	}, nil
}

// buildDeck constructs the 28-card deck: two generic cards, two per token
// type, and two per character bound to SIGHT on that character. The
// character halves alternate MOVE and ELIMINATE over a shuffled order.
func (o *orchestrator) buildDeck() ([]entities.Card, error) {
	cards := []entities.Card{
		o.newCard(
			entities.CardAction{Type: entities.ActionPickToken},
			entities.CardAction{Type: entities.ActionMove},
		),
		o.newCard(
			entities.CardAction{Type: entities.ActionPickToken},
			entities.CardAction{Type: entities.ActionEliminate},
		),
	}

	for _, tid := range entities.TokenIDs {
		cards = append(cards,
			o.newCard(
				entities.CardAction{Type: entities.ActionSpecificToken, Token: tid},
				entities.CardAction{Type: entities.ActionMove},
			),
			o.newCard(
				entities.CardAction{Type: entities.ActionSpecificToken, Token: tid},
				entities.CardAction{Type: entities.ActionEliminate},
			),
		)
	}

	sightOrder, err := o.shuffledCharacters()
	if err != nil {
		return nil, err
	}
	for i, cid := range sightOrder {
		paired := entities.ActionMove
		if i%2 == 1 {
			paired = entities.ActionEliminate
		}
		cards = append(cards,
			o.newCard(
				entities.CardAction{Type: entities.ActionPickToken},
				entities.CardAction{Type: entities.ActionSight, Character: cid},
			),
			o.newCard(
				entities.CardAction{Type: paired},
				entities.CardAction{Type: entities.ActionSight, Character: cid},
			),
		)
	}

	return cards, nil
}

func (o *orchestrator) newCard(one, two entities.CardAction) entities.Card {
	return entities.Card{
		ID:        o.cardIDGen.Generate(),
		ActionOne: one,
		ActionTwo: two,
	}
}
