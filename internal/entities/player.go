package entities

// Player is a game participant. CharacterID is the player's secret
// identity; Order is the 0-based turn order, contiguous per game.
type Player struct {
	UserID      string          `json:"user_id"`
	CharacterID CharacterID     `json:"character_id"`
	Order       int             `json:"order"`
	Hand        []string        `json:"hand"`
	Tokens      map[TokenID]int `json:"tokens"`

	// Guesses maps a target player's user ID to that player's claimed
	// characters: true means "I believe the target IS this character".
	// At most one claim per (target, character) pair; upsert semantics.
	Guesses map[string]map[CharacterID]bool `json:"guesses,omitempty"`
}

// GetID implements core.Entity
func (p *Player) GetID() string {
	return p.UserID
}

// GetType implements core.Entity
func (p *Player) GetType() string {
	return "player"
}

// HoldsCard reports whether the card is in the player's hand
func (p *Player) HoldsCard(cardID string) bool {
	for _, id := range p.Hand {
		if id == cardID {
			return true
		}
	}
	return false
}

// RemoveCard takes the card out of the player's hand, reporting whether
// it was held
func (p *Player) RemoveCard(cardID string) bool {
	for i, id := range p.Hand {
		if id == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// SetGuess records or replaces the claim for (target, character)
func (p *Player) SetGuess(targetID string, character CharacterID, guess bool) {
	if p.Guesses == nil {
		p.Guesses = make(map[string]map[CharacterID]bool)
	}
	if p.Guesses[targetID] == nil {
		p.Guesses[targetID] = make(map[CharacterID]bool)
	}
	p.Guesses[targetID][character] = guess
}

// DeleteGuess removes the claim for (target, character), reporting
// whether one existed
func (p *Player) DeleteGuess(targetID string, character CharacterID) bool {
	claims, ok := p.Guesses[targetID]
	if !ok {
		return false
	}
	if _, ok := claims[character]; !ok {
		return false
	}
	delete(claims, character)
	if len(claims) == 0 {
		delete(p.Guesses, targetID)
	}
	return true
}

// ConfirmedGuesses counts the player's true claims about the target
func (p *Player) ConfirmedGuesses(targetID string) int {
	count := 0
	for _, guess := range p.Guesses[targetID] {
		if guess {
			count++
		}
	}
	return count
}
