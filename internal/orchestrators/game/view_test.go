package game_test

import (
	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
	"github.com/KirkDiggler/intrigue-api/internal/orchestrators/game"
)

// fixtureWithSecrets seeds the fixture with a sight result, an
// elimination, and a private guess so projections have something to
// hide.
func (s *OrchestratorTestSuite) fixtureWithSecrets() *entities.Game {
	g := s.fixtureGame("", "")

	sight := false
	g.AppendEvent(entities.Event{
		ActorID:   "alice",
		Type:      entities.ActionSight,
		CreatedAt: s.now,
		Character: entities.CharacterSmuggler,
		TargetID:  "bob",
		Result:    &sight,
		CardID:    "c1",
	})
	g.Character(entities.CharacterColonel).Eliminated = true
	g.AppendEvent(entities.Event{
		ActorID:    "alice",
		Type:       entities.ActionEliminate,
		CreatedAt:  s.now,
		Eliminated: entities.CharacterColonel,
		CardID:     "c2",
	})
	g.Players[0].SetGuess("bob", entities.CharacterBaroness, true)
	return g
}

func (s *OrchestratorTestSuite) view(userID string) *game.GameView {
	out, err := s.service.GetPlayerView(s.ctx, &game.GetPlayerViewInput{
		GameID: "game_1",
		UserID: userID,
	})
	s.Require().NoError(err)
	return out.View
}

func (s *OrchestratorTestSuite) TestGetPlayerView_RequiresParticipant() {
	s.storeGame(s.fixtureGame("", ""))

	_, err := s.service.GetPlayerView(s.ctx, &game.GetPlayerViewInput{
		GameID: "game_1",
		UserID: "mallory",
	})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestGetPlayerView_SelfSeesOwnSecrets() {
	s.storeGame(s.fixtureWithSecrets())
	view := s.view("alice")

	var self, other *game.PlayerView
	for i := range view.Players {
		switch view.Players[i].UserID {
		case "alice":
			self = &view.Players[i]
		case "bob":
			other = &view.Players[i]
		}
	}
	s.Require().NotNil(self)
	s.Require().NotNil(other)

	s.Equal(game.RoleSelf, self.Role)
	s.Equal(entities.CharacterAmbassador, self.CharacterID)
	s.Len(self.Hand, 2)
	s.True(self.Guesses["bob"][entities.CharacterBaroness])

	s.Equal(game.RoleOther, other.Role)
	s.Empty(other.CharacterID)
	s.Empty(other.Hand)
	s.Equal(2, other.HandSize)
	s.Nil(other.Guesses)
}

func (s *OrchestratorTestSuite) TestGetPlayerView_HidesOthersResults() {
	s.storeGame(s.fixtureWithSecrets())

	// Alice performed the sight and the elimination, so she sees both.
	aliceView := s.view("alice")
	var sight, eliminate *game.EventView
	for i := range aliceView.Events {
		switch aliceView.Events[i].Type {
		case entities.ActionSight:
			sight = &aliceView.Events[i]
		case entities.ActionEliminate:
			eliminate = &aliceView.Events[i]
		}
	}
	s.Require().NotNil(sight)
	s.Require().NotNil(eliminate)
	s.Require().NotNil(sight.Result)
	s.False(*sight.Result)
	s.Equal(entities.CharacterColonel, eliminate.Eliminated)

	// Bob sees the events happened but not their outcomes.
	bobView := s.view("bob")
	for _, ev := range bobView.Events {
		switch ev.Type {
		case entities.ActionSight:
			s.Nil(ev.Result)
			s.Equal("bob", ev.TargetID)
		case entities.ActionEliminate:
			s.Empty(ev.Eliminated)
		}
	}

	// The board hides the elimination from bob too.
	for _, cs := range bobView.Characters {
		s.False(cs.Eliminated, "character %s", cs.ID)
	}
	for _, cs := range aliceView.Characters {
		if cs.ID == entities.CharacterColonel {
			s.True(cs.Eliminated)
		}
	}
}

func (s *OrchestratorTestSuite) TestGetPlayerView_FinishedRevealsAll() {
	g := s.fixtureWithSecrets()
	g.Stage = entities.StageFinished
	g.Turn = entities.Turn{}
	s.storeGame(g)

	view := s.view("bob")

	for _, pv := range view.Players {
		s.Equal(game.RoleFinished, pv.Role)
		s.NotEmpty(pv.CharacterID)
		s.Len(pv.Hand, 2)
	}

	for _, ev := range view.Events {
		if ev.Type == entities.ActionSight {
			s.NotNil(ev.Result)
		}
		if ev.Type == entities.ActionEliminate {
			s.Equal(entities.CharacterColonel, ev.Eliminated)
		}
	}

	for _, cs := range view.Characters {
		if cs.ID == entities.CharacterColonel {
			s.True(cs.Eliminated)
		}
	}
}
