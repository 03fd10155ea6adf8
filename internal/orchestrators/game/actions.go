package game

import (
	"github.com/KirkDiggler/intrigue-api/internal/board"
	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
)

// resolve dispatches a committed card slot to its action resolver. Every
// resolver appends exactly one log entry carrying enough payload to
// reconstruct the action.
func (o *orchestrator) resolve(g *entities.Game, player *entities.Player, card *entities.Card, slot entities.CardAction, action Action) (*ApplyActionOutput, error) {
	switch slot.Type {
	case entities.ActionMove:
		return o.resolveMove(g, player, card, action)
	case entities.ActionEliminate:
		return o.resolveEliminate(g, player, card)
	case entities.ActionPickToken:
		return o.resolvePickToken(g, player, card, action)
	case entities.ActionSpecificToken:
		return o.resolveSpecificToken(g, player, card, slot)
	case entities.ActionSight:
		return o.resolveSight(g, player, card, slot, action)
	default:
		return nil, errors.InvariantViolationf("card %s carries unresolvable action %s", card.ID, slot.Type)
	}
}

// resolveMove relocates any character to any cell other than its current
// one. Unlike the forced opening moves, card moves are not bound to the
// dice or to a distance of 1.
func (o *orchestrator) resolveMove(g *entities.Game, player *entities.Player, card *entities.Card, action Action) (*ApplyActionOutput, error) {
	if action.Character == "" {
		return nil, errors.InvalidArgument("Character is required for MOVE")
	}
	if action.MoveTo == nil {
		return nil, errors.InvalidArgument("MoveTo is required for MOVE")
	}
	dest := *action.MoveTo
	if !board.Valid(dest) {
		return nil, errors.InvalidArgumentf("cell %d is off the board", dest)
	}

	cs := g.Character(action.Character)
	if cs == nil {
		return nil, errors.NotFoundf("unknown character %s", action.Character)
	}
	if cs.Location == dest {
		return nil, errors.FailedPrecondition("destination equals the character's current location")
	}

	ev := g.AppendEvent(entities.Event{
		ActorID:   player.UserID,
		Type:      entities.ActionMove,
		CreatedAt: o.clock.Now(),
		Character: action.Character,
		From:      cs.Location,
		To:        dest,
		CardID:    card.ID,
	})
	cs.Location = dest

	evCopy := *ev
	return &ApplyActionOutput{Game: g, Event: &evCopy}, nil
}

// resolveEliminate draws a uniformly random character from the eliminable
// pool: not eliminated and not secretly controlled by any player. An
// exhausted pool resets every character's eliminated flag game-wide and
// draws again, so the action never blocks.
func (o *orchestrator) resolveEliminate(g *entities.Game, player *entities.Player, card *entities.Card) (*ApplyActionOutput, error) {
	pool := o.eliminablePool(g)
	if len(pool) == 0 {
		for i := range g.Characters {
			g.Characters[i].Eliminated = false
		}
		pool = o.eliminablePool(g)
	}
	if len(pool) == 0 {
		return nil, errors.InvariantViolation("no uncontrolled characters to eliminate")
	}

	r, err := o.diceRoller.Roll(len(pool))
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw elimination entropy")
	}
	chosen := pool[r-1]

	g.Character(chosen).Eliminated = true

	ev := g.AppendEvent(entities.Event{
		ActorID:    player.UserID,
		Type:       entities.ActionEliminate,
		CreatedAt:  o.clock.Now(),
		Eliminated: chosen,
		CardID:     card.ID,
	})

	evCopy := *ev
	return &ApplyActionOutput{
		Game:                g,
		Event:               &evCopy,
		EliminatedCharacter: chosen,
	}, nil
}

func (o *orchestrator) eliminablePool(g *entities.Game) []entities.CharacterID {
	var pool []entities.CharacterID
	for i := range g.Characters {
		cs := &g.Characters[i]
		if !cs.Eliminated && !g.IsControlled(cs.ID) {
			pool = append(pool, cs.ID)
		}
	}
	return pool
}

// resolvePickToken picks up one piece of the requested token type from
// the cell the acting player's character stands on.
func (o *orchestrator) resolvePickToken(g *entities.Game, player *entities.Player, card *entities.Card, action Action) (*ApplyActionOutput, error) {
	if action.Token == "" {
		return nil, errors.InvalidArgument("Token is required for PICK_TOKEN")
	}
	ts := g.Token(action.Token)
	if ts == nil {
		return nil, errors.NotFoundf("unknown token %s", action.Token)
	}

	return o.pickToken(g, player, card, ts, entities.ActionPickToken)
}

// resolveSpecificToken picks up the card-bound token instead of a
// requested one.
func (o *orchestrator) resolveSpecificToken(g *entities.Game, player *entities.Player, card *entities.Card, slot entities.CardAction) (*ApplyActionOutput, error) {
	if slot.Token == "" {
		return nil, errors.InvariantViolationf("card %s has no bound token", card.ID)
	}
	ts := g.Token(slot.Token)
	if ts == nil {
		return nil, errors.InvariantViolationf("card %s binds unknown token %s", card.ID, slot.Token)
	}

	return o.pickToken(g, player, card, ts, entities.ActionSpecificToken)
}

func (o *orchestrator) pickToken(g *entities.Game, player *entities.Player, card *entities.Card, ts *entities.TokenState, eventType entities.ActionType) (*ApplyActionOutput, error) {
	location := g.Character(player.CharacterID).Location

	present := false
	for _, cell := range ts.Locations {
		if cell == location {
			present = true
			break
		}
	}
	if !present {
		return nil, errors.FailedPreconditionf("token %s is not available at cell %d", ts.ID, location)
	}
	if ts.Stock <= 0 {
		return nil, errors.FailedPreconditionf("token %s stock is depleted", ts.ID)
	}

	ts.Stock--
	player.Tokens[ts.ID]++

	ev := g.AppendEvent(entities.Event{
		ActorID:   player.UserID,
		Type:      eventType,
		CreatedAt: o.clock.Now(),
		Token:     ts.ID,
		CardID:    card.ID,
	})

	evCopy := *ev
	return &ApplyActionOutput{Game: g, Event: &evCopy}, nil
}

// resolveSight tests line of sight between the card-bound character and
// the target player's secret character: mutually visible iff they share
// a row or a column. The result stays private to the acting player until
// the game finishes.
func (o *orchestrator) resolveSight(g *entities.Game, player *entities.Player, card *entities.Card, slot entities.CardAction, action Action) (*ApplyActionOutput, error) {
	if action.TargetID == "" {
		return nil, errors.InvalidArgument("TargetID is required for SIGHT")
	}
	target := g.PlayerByUser(action.TargetID)
	if target == nil {
		return nil, errors.NotFoundf("target player %s is not in the game", action.TargetID)
	}
	if slot.Character == "" {
		return nil, errors.InvariantViolationf("card %s has no bound character", card.ID)
	}

	bound := g.Character(slot.Character)
	targetCharacter := g.Character(target.CharacterID)
	if bound == nil || targetCharacter == nil {
		return nil, errors.InvariantViolationf("card %s or player %s references an unknown character", card.ID, target.UserID)
	}

	result := board.SameRowOrColumn(bound.Location, targetCharacter.Location)

	ev := g.AppendEvent(entities.Event{
		ActorID:   player.UserID,
		Type:      entities.ActionSight,
		CreatedAt: o.clock.Now(),
		Character: slot.Character,
		TargetID:  action.TargetID,
		Result:    &result,
		CardID:    card.ID,
	})

	evCopy := *ev
	return &ApplyActionOutput{
		Game:        g,
		Event:       &evCopy,
		SightResult: &result,
	}, nil
}
