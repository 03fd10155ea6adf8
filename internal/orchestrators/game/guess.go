package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
	gamerepo "github.com/KirkDiggler/intrigue-api/internal/repositories/game"
)

// UpsertGuess records or revises a deduction claim: the caller's belief
// about whether another player secretly controls a character. Guesses
// are private and accepted at any point before the game finishes; when
// every player has exactly one affirmed claim per opponent the game
// moves to FINISHED.
func (o *orchestrator) UpsertGuess(ctx context.Context, input *UpsertGuessInput) (*UpsertGuessOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateGuessFields(input.GameID, input.UserID, input.TargetID, input.Character); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		g, player, err := o.loadForGuess(ctx, input.GameID, input.UserID, input.TargetID, input.Character)
		if err != nil {
			return nil, err
		}

		player.SetGuess(input.TargetID, input.Character, input.Guess)
		complete := o.checkDeduction(g)

		if _, err := o.gameRepo.Update(ctx, gamerepo.UpdateInput{Game: g}); err != nil {
			if errors.IsAborted(err) {
				continue
			}
			return nil, errors.Wrap(err, "failed to store game")
		}

		slog.Info("Guess recorded",
			"game_id", g.ID,
			"user_id", input.UserID,
			"stage", g.Stage,
		)
		return &UpsertGuessOutput{Game: g, Stage: g.Stage, DeductionComplete: complete}, nil
	}

	return nil, errors.Abortedf("game %s is receiving concurrent actions, retry", input.GameID)
}

// DeleteGuess removes a previously recorded claim. Deleting is a no-op
// error when the claim does not exist.
func (o *orchestrator) DeleteGuess(ctx context.Context, input *DeleteGuessInput) (*DeleteGuessOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateGuessFields(input.GameID, input.UserID, input.TargetID, input.Character); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		g, player, err := o.loadForGuess(ctx, input.GameID, input.UserID, input.TargetID, input.Character)
		if err != nil {
			return nil, err
		}

		if !player.DeleteGuess(input.TargetID, input.Character) {
			return nil, errors.NotFoundf("no guess on %s for player %s", input.Character, input.TargetID)
		}
		complete := o.checkDeduction(g)

		if _, err := o.gameRepo.Update(ctx, gamerepo.UpdateInput{Game: g}); err != nil {
			if errors.IsAborted(err) {
				continue
			}
			return nil, errors.Wrap(err, "failed to store game")
		}

		slog.Info("Guess removed",
			"game_id", g.ID,
			"user_id", input.UserID,
			"stage", g.Stage,
		)
		return &DeleteGuessOutput{Game: g, Stage: g.Stage, DeductionComplete: complete}, nil
	}

	return nil, errors.Abortedf("game %s is receiving concurrent actions, retry", input.GameID)
}

func validateGuessFields(gameID, userID, targetID string, character entities.CharacterID) error {
	vb := errors.NewValidationBuilder()
	if gameID == "" {
		vb.RequiredField("GameID")
	}
	if userID == "" {
		vb.RequiredField("UserID")
	}
	if targetID == "" {
		vb.RequiredField("TargetID")
	}
	if character == "" {
		vb.RequiredField("Character")
	}
	return vb.Build()
}

// loadForGuess fetches the game and validates the claim's participants.
func (o *orchestrator) loadForGuess(ctx context.Context, gameID, userID, targetID string, character entities.CharacterID) (*entities.Game, *entities.Player, error) {
	getOut, err := o.gameRepo.Get(ctx, gamerepo.GetInput{ID: gameID})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load game")
	}
	g := getOut.Game

	if g.Stage == entities.StageFinished {
		return nil, nil, errors.FailedPrecondition("game is finished, guesses are frozen")
	}
	player := g.PlayerByUser(userID)
	if player == nil {
		return nil, nil, errors.PermissionDeniedf("user %s is not a participant", userID)
	}
	if targetID == userID {
		return nil, nil, errors.InvalidArgument("cannot guess your own character")
	}
	if g.PlayerByUser(targetID) == nil {
		return nil, nil, errors.NotFoundf("target player %s is not in the game", targetID)
	}
	if g.Character(character) == nil {
		return nil, nil, errors.NotFoundf("unknown character %s", character)
	}
	return g, player, nil
}

// checkDeduction flips the stage to FINISHED when deduction completes.
// The transition is one-directional: a later guess edit cannot reopen a
// finished game because finished games reject guesses outright.
func (o *orchestrator) checkDeduction(g *entities.Game) bool {
	complete := g.DeductionComplete()
	if complete {
		g.Stage = entities.StageFinished
		g.Turn = entities.Turn{}
	}
	return complete
}
