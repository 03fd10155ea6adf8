package game_test

import (
	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
	"github.com/KirkDiggler/intrigue-api/internal/orchestrators/game"
	gamerepo "github.com/KirkDiggler/intrigue-api/internal/repositories/game"
)

func (s *OrchestratorTestSuite) TestApplyAction_NotYourTurn() {
	s.storeGame(s.fixtureGame("", ""))

	_, err := s.apply("bob", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterBaroness,
		MoveTo:    cellPtr(0),
	})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestApplyAction_NotAParticipant() {
	s.storeGame(s.fixtureGame("", ""))

	_, err := s.apply("mallory", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(1),
	})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestApplyAction_StageGuard() {
	g := s.fixtureGame("", "")
	g.Stage = entities.StageGuessing
	g.Turn = entities.Turn{}
	s.storeGame(g)

	_, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(1),
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestApplyAction_CorruptedSnapshot() {
	g := s.fixtureGame("", "")
	g.Turn.ActivePlayerID = "bob"
	s.storeGame(g)

	_, err := s.apply("bob", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterBaroness,
		MoveTo:    cellPtr(0),
	})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.NotContains(err.Error(), "snapshot")
}

func (s *OrchestratorTestSuite) TestFirstMove_DiceBindCharacter() {
	s.storeGame(s.fixtureGame(entities.CharacterAmbassador, entities.CharacterEnvoy))

	// The colonel matches neither die.
	_, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterColonel,
		MoveTo:    cellPtr(1),
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestFirstMove_DistanceOne() {
	s.storeGame(s.fixtureGame("", ""))

	// Ambassador sits on cell 0; cell 2 is two steps away.
	_, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(2),
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	// Cells 3 and 4 are adjacent numerically but sit on different rows.
	_, err = s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterCourier,
		MoveTo:    cellPtr(4),
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestFirstMove_Succeeds() {
	s.storeGame(s.fixtureGame(entities.CharacterAmbassador, entities.CharacterEnvoy))

	out, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(4),
	})
	s.Require().NoError(err)

	s.Equal(entities.ActionMove, out.Event.Type)
	s.EqualValues(2, out.Event.ID)
	s.Equal(2, out.Game.Turn.Phase)
	s.EqualValues(4, out.Game.Character(entities.CharacterAmbassador).Location)

	// The write went through the version gate.
	stored, err := s.gameRepo.Get(s.ctx, gamerepo.GetInput{ID: "game_1"})
	s.Require().NoError(err)
	s.Equal(int64(2), stored.Game.Version)
	s.Equal(out.Game.Turn, stored.Game.Turn)
}

func (s *OrchestratorTestSuite) TestSecondMove_MustPairWithDice() {
	s.storeGame(s.fixtureGame(entities.CharacterAmbassador, entities.CharacterEnvoy))

	_, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(4),
	})
	s.Require().NoError(err)

	// Ambassador again: the pair (ambassador, ambassador) cannot cover
	// both dice.
	_, err = s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(0),
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	// Envoy covers the second die.
	out, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterEnvoy,
		MoveTo:    cellPtr(6),
	})
	s.Require().NoError(err)
	s.Equal(3, out.Game.Turn.Phase)
}

func (s *OrchestratorTestSuite) TestSecondMove_BlankDieIsWildcard() {
	s.storeGame(s.fixtureGame(entities.CharacterAmbassador, ""))

	_, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(4),
	})
	s.Require().NoError(err)

	// Blank second die lets any character take the second step.
	out, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterSmuggler,
		MoveTo:    cellPtr(10),
	})
	s.Require().NoError(err)
	s.Equal(3, out.Game.Turn.Phase)
}

func (s *OrchestratorTestSuite) TestMovePhase_RejectsCardActions() {
	s.storeGame(s.fixtureGame("", ""))

	_, err := s.apply("alice", game.Action{
		Type:   entities.ActionPickToken,
		Token:  entities.TokenCipher,
		CardID: "c1",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

// advanceToCardPhase plays alice's two forced moves under blank dice,
// leaving the fixture in phase 3.
func (s *OrchestratorTestSuite) advanceToCardPhase() {
	_, err := s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(4),
	})
	s.Require().NoError(err)

	_, err = s.apply("alice", game.Action{
		Type:      entities.ActionMove,
		Character: entities.CharacterAmbassador,
		MoveTo:    cellPtr(0),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestCardPhase_CardNotHeld() {
	s.storeGame(s.fixtureGame("", ""))
	s.advanceToCardPhase()

	// c3 belongs to bob.
	_, err := s.apply("alice", game.Action{
		Type:   entities.ActionMove,
		CardID: "c3",
		MoveTo: cellPtr(5),
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCardPhase_ActionMustMatchSlot() {
	s.storeGame(s.fixtureGame("", ""))
	s.advanceToCardPhase()

	// c1 offers PICK_TOKEN and SIGHT, not ELIMINATE.
	_, err := s.apply("alice", game.Action{
		Type:   entities.ActionEliminate,
		CardID: "c1",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestCardPhase_FullTurn() {
	s.storeGame(s.fixtureGame("", ""))
	s.advanceToCardPhase()

	// Phase 3: pick a cipher off cell 0.
	out, err := s.apply("alice", game.Action{
		Type:   entities.ActionPickToken,
		Token:  entities.TokenCipher,
		CardID: "c1",
	})
	s.Require().NoError(err)
	s.Equal(3, out.Game.Token(entities.TokenCipher).Stock)
	s.Equal(1, out.Game.PlayerByUser("alice").Tokens[entities.TokenCipher])
	s.Equal(4, out.Game.Turn.Phase)
	s.Equal("c1", out.Game.Turn.CardID)

	// Phase 4 must replay the same card.
	_, err = s.apply("alice", game.Action{
		Type:     entities.ActionEliminate,
		CardID:   "c2",
		TargetID: "bob",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	// Phase 4 must be the card's other action.
	_, err = s.apply("alice", game.Action{
		Type:   entities.ActionPickToken,
		Token:  entities.TokenCipher,
		CardID: "c1",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	// Phase 4: the sight half closes the turn.
	out, err = s.apply("alice", game.Action{
		Type:     entities.ActionSight,
		CardID:   "c1",
		TargetID: "bob",
	})
	s.Require().NoError(err)

	// Smuggler at 11 and baroness at 1 share neither row nor column.
	s.Require().NotNil(out.SightResult)
	s.False(*out.SightResult)

	g := out.Game
	alice := g.PlayerByUser("alice")

	// Used card discarded, replacement drawn in ascending deck order:
	// d1 (order 0) before d2 (order 1).
	s.False(alice.HoldsCard("c1"))
	s.True(alice.HoldsCard("d1"))
	s.Empty(g.Card("c1").HolderID)
	s.Nil(g.Card("d1").DeckOrder)
	s.Equal("alice", g.Card("d1").HolderID)
	s.True(g.Card("d2").InDeck())

	// Bob's turn opens with a fresh roll.
	s.Equal("bob", g.Turn.ActivePlayerID)
	s.Equal(1, g.Turn.Phase)
	last := g.Events[len(g.Events)-1]
	s.Equal(entities.ActionRoll, last.Type)
	s.Equal("bob", last.ActorID)
}
