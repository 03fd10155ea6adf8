package entities

// ActionType is the kind of a player action or logged event
type ActionType string

// Action types. Roll only ever appears in the event log; the rest appear
// both on cards and in the log.
const (
	ActionRoll          ActionType = "ROLL"
	ActionMove          ActionType = "MOVE"
	ActionEliminate     ActionType = "ELIMINATE"
	ActionPickToken     ActionType = "PICK_TOKEN"
	ActionSight         ActionType = "SIGHT"
	ActionSpecificToken ActionType = "SPECIFIC_TOKEN"
)

// CardAction is one of the two action slots on a card. Depending on the
// type it may bind a character (SIGHT) or a token (SPECIFIC_TOKEN).
type CardAction struct {
	Type      ActionType  `json:"type"`
	Character CharacterID `json:"character,omitempty"`
	Token     TokenID     `json:"token,omitempty"`
}

// Card is a dealt two-action card. The two slot types always differ.
// Lifecycle: in the draw pile (DeckOrder set), held by a player (HolderID
// set), or discarded (neither).
type Card struct {
	ID        string     `json:"id"`
	ActionOne CardAction `json:"action_one"`
	ActionTwo CardAction `json:"action_two"`
	DeckOrder *int       `json:"deck_order,omitempty"`
	HolderID  string     `json:"holder_id,omitempty"`
}

// InDeck reports whether the card is still in the draw pile
func (c *Card) InDeck() bool {
	return c.DeckOrder != nil
}

// Slot returns the card action matching the given type, if any
func (c *Card) Slot(t ActionType) (CardAction, bool) {
	if c.ActionOne.Type == t {
		return c.ActionOne, true
	}
	if c.ActionTwo.Type == t {
		return c.ActionTwo, true
	}
	return CardAction{}, false
}

// OtherSlot returns the card action whose type differs from t
func (c *Card) OtherSlot(t ActionType) CardAction {
	if c.ActionOne.Type == t {
		return c.ActionTwo
	}
	return c.ActionOne
}
