package game

import (
	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
)

// evaluateRound runs after each card-phase action: it checks the stage
// exit condition and, at the end of phase 4, discards the played card,
// refills the hand, and opens the next player's turn with a fresh roll.
func (o *orchestrator) evaluateRound(g *entities.Game, player *entities.Player, phase int, cardID string) error {
	// Depleting any token type ends the action stage immediately, even
	// mid-turn.
	if g.MinTokenStock() == 0 {
		g.Stage = entities.StageGuessing
		if g.DeductionComplete() {
			g.Stage = entities.StageFinished
		}
		g.Turn = entities.Turn{}
		return nil
	}

	if phase != phaseCardSecond {
		return nil
	}

	// Discard the played card and draw the replacement from the deck.
	if !player.RemoveCard(cardID) {
		return errors.InvariantViolationf("played card %s missing from hand", cardID)
	}
	played := g.Card(cardID)
	if played == nil {
		return errors.InvariantViolationf("played card %s missing from game", cardID)
	}
	played.HolderID = ""

	drawn := o.topOfDeck(g)
	if drawn == nil {
		return errors.InvariantViolation("card deck exhausted")
	}
	drawn.DeckOrder = nil
	drawn.HolderID = player.UserID
	player.Hand = append(player.Hand, drawn.ID)

	dieOne, dieTwo, err := o.rollDice()
	if err != nil {
		return err
	}

	next := g.PlayerByOrder((player.Order + 1) % len(g.Players))
	if next == nil {
		return errors.InvariantViolationf("no player at order %d", (player.Order+1)%len(g.Players))
	}

	g.AppendEvent(entities.Event{
		ActorID:   next.UserID,
		Type:      entities.ActionRoll,
		CreatedAt: o.clock.Now(),
		DieOne:    dieOne,
		DieTwo:    dieTwo,
	})
	return nil
}

// topOfDeck returns the next card by ascending deck order, or nil when
// the deck is empty.
func (o *orchestrator) topOfDeck(g *entities.Game) *entities.Card {
	var top *entities.Card
	for i := range g.Cards {
		c := &g.Cards[i]
		if !c.InDeck() {
			continue
		}
		if top == nil || *c.DeckOrder < *top.DeckOrder {
			top = c
		}
	}
	return top
}
