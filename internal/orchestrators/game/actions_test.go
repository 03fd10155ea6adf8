package game_test

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
	"github.com/KirkDiggler/intrigue-api/internal/orchestrators/game"
	"github.com/KirkDiggler/intrigue-api/internal/pkg/clock"
	"github.com/KirkDiggler/intrigue-api/internal/pkg/idgen"
)

// serviceWithRoller builds a second orchestrator over the same
// repositories with a custom entropy source.
func (s *OrchestratorTestSuite) serviceWithRoller(roller dice.Roller) game.Service {
	svc, err := game.NewOrchestrator(&game.Config{
		GameRepo:        s.gameRepo,
		UserRepo:        s.userRepo,
		IDGenerator:     idgen.NewSequential("game"),
		CardIDGenerator: idgen.NewSequential("card"),
		Clock:           &clock.Fixed{T: s.now},
		DiceRoller:      roller,
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) TestCardMove_AnyDistanceButNotInPlace() {
	s.storeGame(s.fixtureGame("", ""))
	s.advanceToCardPhase()

	// Staying put is not a move.
	_, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		CardID:    "c2",
		Character: entities.CharacterSmuggler,
		MoveTo:    cellPtr(11),
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	// Card moves are unconstrained by dice and distance.
	out, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		CardID:    "c2",
		Character: entities.CharacterSmuggler,
		MoveTo:    cellPtr(2),
	})
	s.Require().NoError(err)
	s.EqualValues(2, out.Game.Character(entities.CharacterSmuggler).Location)
	s.Equal("c2", out.Event.CardID)
}

func (s *OrchestratorTestSuite) TestEliminate_SkipsControlledCharacters() {
	s.storeGame(s.fixtureGame("", ""))
	s.advanceToCardPhase()

	// The pool excludes ambassador and baroness (player-controlled);
	// drawing 1 from the remaining eight picks the colonel.
	svc := s.serviceWithRoller(&scriptedRoller{rolls: []int{1}})
	out, err := svc.ApplyAction(s.ctx, &game.ApplyActionInput{
		GameID: "game_1",
		UserID: "alice",
		Action: game.Action{Type: entities.ActionEliminate, CardID: "c2"},
	})
	s.Require().NoError(err)

	s.Equal(entities.CharacterColonel, out.EliminatedCharacter)
	s.True(out.Game.Character(entities.CharacterColonel).Eliminated)
	s.Equal(entities.CharacterColonel, out.Event.Eliminated)
}

func (s *OrchestratorTestSuite) TestEliminate_ResetsExhaustedPool() {
	g := s.fixtureGame("", "")
	for i := range g.Characters {
		if !g.IsControlled(g.Characters[i].ID) {
			g.Characters[i].Eliminated = true
		}
	}
	s.storeGame(g)
	s.advanceToCardPhase()

	svc := s.serviceWithRoller(&scriptedRoller{rolls: []int{1}})
	out, err := svc.ApplyAction(s.ctx, &game.ApplyActionInput{
		GameID: "game_1",
		UserID: "alice",
		Action: game.Action{Type: entities.ActionEliminate, CardID: "c2"},
	})
	s.Require().NoError(err)

	// The flags were wiped before the fresh draw, so exactly one
	// uncontrolled character ends up eliminated.
	s.Equal(entities.CharacterColonel, out.EliminatedCharacter)
	eliminated := 0
	for _, cs := range out.Game.Characters {
		if cs.Eliminated {
			eliminated++
		}
	}
	s.Equal(1, eliminated)
}

func (s *OrchestratorTestSuite) TestPickToken_RequiresLocationAndStock() {
	s.storeGame(s.fixtureGame("", ""))
	s.advanceToCardPhase()

	// Ambassador stands on cell 0; passports live on 1, 3, 6 and 8.
	_, err := s.apply("alice", game.Action{
		Type:   entities.ActionPickToken,
		Token:  entities.TokenPassport,
		CardID: "c1",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSpecificToken_UsesCardBoundToken() {
	g := s.fixtureGame("", "")

	// Hand bob's SPECIFIC_TOKEN passport card to alice.
	g.Players[0].Hand = []string{"c3", "c2"}
	g.Players[1].Hand = []string{"c1", "c4"}
	g.Card("c3").HolderID = "alice"
	g.Card("c1").HolderID = "bob"
	s.storeGame(g)

	// End the forced moves with the ambassador on a passport cell.
	_, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(1),
	})
	s.Require().NoError(err)
	_, err = s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterSmuggler,
		MoveTo:    cellPtr(10),
	})
	s.Require().NoError(err)

	out, err := s.apply("alice", game.Action{
		Type:   entities.ActionSpecificToken,
		CardID: "c3",
	})
	s.Require().NoError(err)

	s.Equal(3, out.Game.Token(entities.TokenPassport).Stock)
	s.Equal(1, out.Game.PlayerByUser("alice").Tokens[entities.TokenPassport])
	s.Equal(entities.ActionSpecificToken, out.Event.Type)
	s.Equal(entities.TokenPassport, out.Event.Token)
}

func (s *OrchestratorTestSuite) TestTokenDepletion_EndsPlaying() {
	g := s.fixtureGame("", "")
	for i := range g.Tokens {
		g.Tokens[i].Stock = 1
	}
	s.storeGame(g)
	s.advanceToCardPhase()

	out, err := s.apply("alice", game.Action{
		Type:   entities.ActionPickToken,
		Token:  entities.TokenCipher,
		CardID: "c1",
	})
	s.Require().NoError(err)

	s.Equal(entities.StageGuessing, out.Stage)
	s.Equal(entities.Turn{}, out.Game.Turn)
	s.Zero(out.Game.Token(entities.TokenCipher).Stock)

	// No further actions once the action stage is over.
	_, err = s.apply("alice", game.Action{
		Type:     entities.ActionSight,
		CardID:   "c1",
		TargetID: "bob",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestTokenDepletion_FinishesWhenDeductionComplete() {
	g := s.fixtureGame("", "")
	for i := range g.Tokens {
		g.Tokens[i].Stock = 1
	}
	g.Players[0].SetGuess("bob", entities.CharacterBaroness, true)
	g.Players[1].SetGuess("alice", entities.CharacterAmbassador, true)
	s.storeGame(g)
	s.advanceToCardPhase()

	out, err := s.apply("alice", game.Action{
		Type:   entities.ActionPickToken,
		Token:  entities.TokenCipher,
		CardID: "c1",
	})
	s.Require().NoError(err)
	s.Equal(entities.StageFinished, out.Stage)
}
