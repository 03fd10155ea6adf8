package game_test

import (
	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
	"github.com/KirkDiggler/intrigue-api/internal/orchestrators/game"
)

func (s *OrchestratorTestSuite) TestUpsertGuess() {
	s.storeGame(s.fixtureGame("", ""))

	out, err := s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "bob",
		Character: entities.CharacterSmuggler,
		Guess:     true,
	})
	s.Require().NoError(err)
	s.False(out.DeductionComplete)
	s.Equal(entities.StagePlaying, out.Stage)

	alice := out.Game.PlayerByUser("alice")
	s.True(alice.Guesses["bob"][entities.CharacterSmuggler])

	// Upsert replaces the claim in place.
	out, err = s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "bob",
		Character: entities.CharacterSmuggler,
		Guess:     false,
	})
	s.Require().NoError(err)
	s.False(out.Game.PlayerByUser("alice").Guesses["bob"][entities.CharacterSmuggler])
}

func (s *OrchestratorTestSuite) TestUpsertGuess_Validation() {
	s.storeGame(s.fixtureGame("", ""))

	// Not a participant.
	_, err := s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "mallory",
		TargetID:  "bob",
		Character: entities.CharacterSmuggler,
		Guess:     true,
	})
	s.True(errors.IsPermissionDenied(err))

	// Guessing yourself.
	_, err = s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "alice",
		Character: entities.CharacterSmuggler,
		Guess:     true,
	})
	s.True(errors.IsInvalidArgument(err))

	// Target not in the game.
	_, err = s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "mallory",
		Character: entities.CharacterSmuggler,
		Guess:     true,
	})
	s.True(errors.IsNotFound(err))

	// Unknown character.
	_, err = s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "bob",
		Character: "imposter",
		Guess:     true,
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUpsertGuess_CompletesDeduction() {
	s.storeGame(s.fixtureGame("", ""))

	_, err := s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "bob",
		Character: entities.CharacterBaroness,
		Guess:     true,
	})
	s.Require().NoError(err)

	out, err := s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "bob",
		TargetID:  "alice",
		Character: entities.CharacterAmbassador,
		Guess:     true,
	})
	s.Require().NoError(err)

	s.True(out.DeductionComplete)
	s.Equal(entities.StageFinished, out.Stage)
	s.Equal(entities.Turn{}, out.Game.Turn)

	// Finished games freeze guesses.
	_, err = s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "bob",
		Character: entities.CharacterBaroness,
		Guess:     false,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDeleteGuess() {
	s.storeGame(s.fixtureGame("", ""))

	_, err := s.service.UpsertGuess(s.ctx, &game.UpsertGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "bob",
		Character: entities.CharacterSmuggler,
		Guess:     true,
	})
	s.Require().NoError(err)

	out, err := s.service.DeleteGuess(s.ctx, &game.DeleteGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "bob",
		Character: entities.CharacterSmuggler,
	})
	s.Require().NoError(err)
	s.Empty(out.Game.PlayerByUser("alice").Guesses)

	// Deleting a claim that is not there.
	_, err = s.service.DeleteGuess(s.ctx, &game.DeleteGuessInput{
		GameID:    "game_1",
		UserID:    "alice",
		TargetID:  "bob",
		Character: entities.CharacterSmuggler,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
