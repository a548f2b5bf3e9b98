package builder

import (
	"strings"

	"github.com/ruinahall/deckwright/internal/card"
)

// AffinityTable overrides per-card affinities: card id -> effect -> value.
// The table is treated as immutable; callers must not mutate it after
// handing it to a Scorer.
type AffinityTable map[string]map[string]float64

// Scorer assigns effect relevance to cards and decks. It is pure: the same
// card and effect always produce the same score, and scoring holds no state
// across calls.
type Scorer struct {
	effect string
	table  AffinityTable
}

// NewScorer returns a scorer for the named effect. The optional table takes
// precedence over the affinities authored on the cards themselves; pass nil
// to score from card profiles alone.
func NewScorer(effect string, table AffinityTable) *Scorer {
	return &Scorer{effect: strings.ToLower(effect), table: table}
}

// Effect returns the effect the scorer was built for.
func (s *Scorer) Effect() string { return s.effect }

// Card returns the relevance of a single card for the scorer's effect.
// Cards with no defined affinity score 0, never negative.
func (s *Scorer) Card(c *card.Card) float64 {
	if overrides, ok := s.table[c.ID]; ok {
		if v, ok := overrides[s.effect]; ok {
			if v < 0 {
				return 0
			}
			return v
		}
	}
	return c.AffinityFor(s.effect)
}

// Deck returns the aggregate score of a deck: the plain sum of per-card
// scores, with no cross-card interaction terms.
func (s *Scorer) Deck(cards []*card.Card) float64 {
	var total float64
	for _, c := range cards {
		total += s.Card(c)
	}
	return total
}
