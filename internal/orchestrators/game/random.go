package game

import (
	"github.com/KirkDiggler/intrigue-api/internal/entities"
	"github.com/KirkDiggler/intrigue-api/internal/errors"
)

// dieSides is the number of faces on each die: five character faces plus
// one blank, so a die misses with probability 1/6.
const dieSides = 6

// shuffle is a Fisher-Yates shuffle drawing from the injected roller so
// that all randomness flows through one entropy source.
func (o *orchestrator) shuffle(n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		r, err := o.diceRoller.Roll(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to draw shuffle entropy")
		}
		swap(i, r-1)
	}
	return nil
}

// shuffledCharacters returns a fresh shuffled copy of the character catalog
func (o *orchestrator) shuffledCharacters() ([]entities.CharacterID, error) {
	ids := make([]entities.CharacterID, len(entities.CharacterIDs))
	copy(ids, entities.CharacterIDs)

	err := o.shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// rollDice rolls the turn's two dice over a freshly shuffled character
// order: die one picks among the first five characters, die two among the
// last five. A blank face yields an empty ID, which move validation
// treats as a wildcard.
func (o *orchestrator) rollDice() (dieOne, dieTwo entities.CharacterID, err error) {
	order, err := o.shuffledCharacters()
	if err != nil {
		return "", "", err
	}

	faceOne, err := o.diceRoller.Roll(dieSides)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to roll die one")
	}
	if faceOne < dieSides {
		dieOne = order[faceOne-1]
	}

	faceTwo, err := o.diceRoller.Roll(dieSides)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to roll die two")
	}
	if faceTwo < dieSides {
		dieTwo = order[5+faceTwo-1]
	}

	return dieOne, dieTwo, nil
}
