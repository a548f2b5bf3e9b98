package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruinahall/deckwright/internal/card"
)

func TestScorerCard(t *testing.T) {
	c := &card.Card{
		ID:       "urban-legend.sample",
		Affinity: map[string]float64{"bleed": 4, "burn": -2},
	}

	tests := []struct {
		name   string
		effect string
		want   float64
	}{
		{"known affinity", "bleed", 4},
		{"case-insensitive effect", "Bleed", 4},
		{"missing affinity scores zero", "smoke", 0},
		{"negative affinity clamps to zero", "burn", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScorer(tt.effect, nil)
			assert.Equal(t, tt.want, s.Card(c))
		})
	}
}

func TestScorerOverrideTable(t *testing.T) {
	c := &card.Card{ID: "canard.sample", Affinity: map[string]float64{"bleed": 1}}
	table := AffinityTable{"canard.sample": {"bleed": 7}}

	assert.Equal(t, 7.0, NewScorer("bleed", table).Card(c))
	// effects absent from the override fall back to the card profile
	assert.Equal(t, 1.0, NewScorer("bleed", AffinityTable{"canard.sample": {"burn": 9}}).Card(c))
}

func TestScorerDeckIsAdditive(t *testing.T) {
	s := NewScorer("bleed", nil)
	cards := rankedCatalog(5, card.UrbanMyth) // affinities 1..5

	assert.Equal(t, 15.0, s.Deck(cards))
	// adding a card never changes the contribution of the others
	assert.Equal(t, s.Deck(cards[:4])+s.Card(cards[4]), s.Deck(cards))
}

func TestScorerIsPure(t *testing.T) {
	s := NewScorer("bleed", nil)
	c := bleedCard("x", card.Canard, 3.5)
	first := s.Card(c)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, s.Card(c))
	}
}
