package builder

import (
	"fmt"

	"github.com/ruinahall/deckwright/internal/card"
)

// ValidateDeck confirms a candidate deck satisfies the hard constraints:
// exactly DeckSize cards, no id repeated, and when keywords are supplied at
// least one card matching at least one of them. The size and duplicate
// checks are defensive; decks built by the engine already hold them by
// construction. Keyword failures come back as *KeywordCoverageError so the
// engine can keep scanning its ranked survivors.
func ValidateDeck(cards []*card.Card, keywords []string) error {
	if len(cards) != DeckSize {
		return fmt.Errorf("deck has %d cards, want %d", len(cards), DeckSize)
	}
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			return fmt.Errorf("duplicate card in deck: %s", c.ID)
		}
		seen[c.ID] = true
	}
	if len(keywords) == 0 {
		return nil
	}
	for _, c := range cards {
		if c.MatchesAny(keywords) {
			return nil
		}
	}
	return &KeywordCoverageError{Keywords: keywords}
}
