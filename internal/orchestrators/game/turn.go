package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/intrigue-api/internal/board"
	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
	gamerepo "github.com/KirkDiggler/intrigue-api/internal/repositories/game"
)

// Turn phases: two forced moves, then a two-part card action.
const (
	phaseFirstMove  = 1
	phaseSecondMove = 2
	phaseCardFirst  = 3
	phaseCardSecond = 4
)

// ApplyAction validates and applies one player action. The whole
// load-validate-mutate-commit sequence runs under optimistic concurrency:
// on a version conflict the aggregate is reloaded and every check reruns
// against the fresh log tail.
func (o *orchestrator) ApplyAction(ctx context.Context, input *ApplyActionInput) (*ApplyActionOutput, error) {
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
	if input.Action.Type == "" {
		vb.RequiredField("Action.Type")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		getOut, err := o.gameRepo.Get(ctx, gamerepo.GetInput{ID: input.GameID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load game")
		}
		g := getOut.Game

		out, err := o.applyToGame(g, input)
		if err != nil {
			if errors.IsInvariantViolation(err) {
				slog.Error("Game state invariant violated",
					"game_id", input.GameID,
					"error", err.Error(),
				)
				return nil, errors.Internal("game state is corrupted")
			}
			return nil, err
		}

		if _, err := o.gameRepo.Update(ctx, gamerepo.UpdateInput{Game: g}); err != nil {
			if errors.IsAborted(err) {
				continue
			}
			return nil, errors.Wrap(err, "failed to store game")
		}

		slog.Info("Action applied",
			"game_id", g.ID,
			"user_id", input.UserID,
			"action", input.Action.Type,
			"stage", g.Stage,
		)
		return out, nil
	}

	return nil, errors.Abortedf("game %s is receiving concurrent actions, retry", input.GameID)
}

// applyToGame runs all validation and mutation against the loaded
// aggregate. It performs no I/O, so it is safe to rerun on a conflict.
func (o *orchestrator) applyToGame(g *entities.Game, input *ApplyActionInput) (*ApplyActionOutput, error) {
	if g.Stage != entities.StagePlaying {
		return nil, errors.FailedPreconditionf("game is in stage %s and no longer accepts actions", g.Stage)
	}
	if g.PlayerByUser(input.UserID) == nil {
		return nil, errors.PermissionDeniedf("user %s is not a participant", input.UserID)
	}
	if len(g.Events) == 0 {
		return nil, errors.InvariantViolation("event log is empty")
	}

	// The log is the source of truth; the materialized snapshot must agree.
	turn := entities.TurnFromEvents(g.Events)
	if turn != g.Turn {
		return nil, errors.InvariantViolationf("turn snapshot diverged from event log (snapshot %+v, log %+v)", g.Turn, turn)
	}

	if turn.ActivePlayerID != input.UserID {
		return nil, errors.PermissionDenied("not your turn")
	}
	player := g.PlayerByUser(input.UserID)

	var (
		out *ApplyActionOutput
		err error
	)
	switch turn.Phase {
	case phaseFirstMove, phaseSecondMove:
		out, err = o.applyMovePhase(g, turn, input.Action)
	case phaseCardFirst:
		out, err = o.applyCardFirst(g, player, input.Action)
	case phaseCardSecond:
		out, err = o.applyCardSecond(g, player, turn, input.Action)
	default:
		return nil, errors.InvariantViolationf("derived phase %d outside 1-4", turn.Phase)
	}
	if err != nil {
		return nil, err
	}

	if turn.Phase >= phaseCardFirst {
		if err := o.evaluateRound(g, player, turn.Phase, out.Event.CardID); err != nil {
			return nil, err
		}
	}

	out.Stage = g.Stage
	return out, nil
}

// applyMovePhase handles the two forced moves that open every turn. The
// moved character must be pairable with the turn's dice and the step must
// cover a distance of exactly 1.
func (o *orchestrator) applyMovePhase(g *entities.Game, turn entities.Turn, action Action) (*ApplyActionOutput, error) {
	if action.Type != entities.ActionMove {
		return nil, errors.FailedPreconditionf("phase %d requires a MOVE action, got %s", turn.Phase, action.Type)
	}
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

	if turn.Phase == phaseFirstMove {
		if !dieMatches(turn.DieOne, action.Character) && !dieMatches(turn.DieTwo, action.Character) {
			return nil, errors.FailedPreconditionf("character %s matches neither die", action.Character)
		}
	} else {
		// Both turn moves together must cover the two dice in some order.
		firstMoved := g.Events[len(g.Events)-1].Character
		if !movesPairWithDice(firstMoved, action.Character, turn.DieOne, turn.DieTwo) {
			return nil, errors.FailedPreconditionf("moves %s and %s cannot be paired with the dice", firstMoved, action.Character)
		}
	}

	if !board.Adjacent(cs.Location, dest) {
		return nil, errors.FailedPreconditionf("distance from %d to %d must be exactly 1", cs.Location, dest)
	}

	ev := g.AppendEvent(entities.Event{
		ActorID:   turn.ActivePlayerID,
		Type:      entities.ActionMove,
		CreatedAt: o.clock.Now(),
		Character: action.Character,
		From:      cs.Location,
		To:        dest,
	})
	cs.Location = dest

	evCopy := *ev
	return &ApplyActionOutput{Game: g, Event: &evCopy}, nil
}

// dieMatches reports whether a die face allows moving the character. A
// blank face acts as a wildcard.
func dieMatches(die, character entities.CharacterID) bool {
	return die == "" || die == character
}

// movesPairWithDice reports whether the turn's two moved characters can
// be assigned to the two dice in either order.
func movesPairWithDice(first, second, dieOne, dieTwo entities.CharacterID) bool {
	if dieMatches(dieOne, first) && dieMatches(dieTwo, second) {
		return true
	}
	return dieMatches(dieTwo, first) && dieMatches(dieOne, second)
}

// applyCardFirst handles phase 3: the player commits a hand card and
// performs one of its two actions.
func (o *orchestrator) applyCardFirst(g *entities.Game, player *entities.Player, action Action) (*ApplyActionOutput, error) {
	card, err := o.cardForAction(g, player, action.CardID)
	if err != nil {
		return nil, err
	}

	slot, ok := card.Slot(action.Type)
	if !ok {
		return nil, errors.FailedPreconditionf("card %s does not allow action %s", card.ID, action.Type)
	}

	return o.resolve(g, player, card, slot, action)
}

// applyCardSecond handles phase 4: the same card must be replayed and the
// action must be the card's other slot, so the two phases together cover
// both of the card's action types.
func (o *orchestrator) applyCardSecond(g *entities.Game, player *entities.Player, turn entities.Turn, action Action) (*ApplyActionOutput, error) {
	card, err := o.cardForAction(g, player, action.CardID)
	if err != nil {
		return nil, err
	}
	if card.ID != turn.CardID {
		return nil, errors.FailedPreconditionf("phase 4 must reuse card %s from phase 3", turn.CardID)
	}

	committed := g.Events[len(g.Events)-1]
	expected := card.OtherSlot(committed.Type)
	if action.Type != expected.Type {
		return nil, errors.FailedPreconditionf("phase 4 action must be the card's other action %s", expected.Type)
	}

	return o.resolve(g, player, card, expected, action)
}

// cardForAction validates the card selection shared by phases 3 and 4
func (o *orchestrator) cardForAction(g *entities.Game, player *entities.Player, cardID string) (*entities.Card, error) {
	if cardID == "" {
		return nil, errors.InvalidArgument("CardID is required for card actions")
	}
	if !player.HoldsCard(cardID) {
		return nil, errors.NotFoundf("card %s is not in your hand", cardID)
	}

	card := g.Card(cardID)
	if card == nil {
		return nil, errors.InvariantViolationf("held card %s missing from game", cardID)
	}
	if card.ActionOne.Type == card.ActionTwo.Type {
		return nil, errors.InvariantViolationf("card %s carries identical action types %s", card.ID, card.ActionOne.Type)
	}
	return card, nil
}
