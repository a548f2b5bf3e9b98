package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruinahall/deckwright/internal/card"
)

func testDeck() []*card.Card {
	return []*card.Card{
		{
			ID: "a", Cost: 2,
			Effect: "On Use, restore 3 Light and draw 1 page",
			Dice: []card.Die{
				{Kind: card.Slash, Min: 2, Max: 6},
				{Kind: card.Blunt, Min: 3, Max: 5},
			},
		},
		{
			ID: "b", Cost: 4,
			Effect: "On Play, gain 2 light",
			Dice: []card.Die{
				{Kind: card.Block, Min: 4, Max: 8},
				{Kind: card.Pierce, Min: 1, Max: 9, Effect: "On hit, draw 2 pages"},
			},
		},
	}
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(testDeck())

	assert.InDelta(t, 3.0, s.AverageCost, 1e-9)
	assert.InDelta(t, 2.0, s.DicePerCard, 1e-9)
	assert.Equal(t, 3, s.OffensiveDice)
	assert.Equal(t, 1, s.DefensiveDice)
	assert.InDelta(t, 3.0, s.AttackDefenseRate, 1e-9)
	assert.Equal(t, 1, s.DiceByKind[card.Slash])
	assert.Equal(t, 1, s.DiceByKind[card.Block])

	// die values: (2+6)/2=4, (3+5)/2=4, (4+8)/2=6, (1+9)/2=5 -> mean 4.75
	assert.InDelta(t, 4.75, s.AverageDieValue, 1e-9)
	// weighted by cost: (4*2 + 4*2 + 6*4 + 5*4) / (2+4) = 60/6
	assert.InDelta(t, 10.0, s.WeightedDieValue, 1e-9)

	assert.Equal(t, 5, s.TotalLightRegen) // restore 3 + gain 2
	assert.Equal(t, 3, s.TotalDraw)       // draw 1 page + draw 2 pages
}

func TestComputeStatsEmptyDeck(t *testing.T) {
	s := ComputeStats(nil)
	assert.Zero(t, s.AverageCost)
	assert.Zero(t, s.AttackDefenseRate)
}

func TestBattleFitness(t *testing.T) {
	t.Run("prolonged needs light and draw", func(t *testing.T) {
		s := Stats{AverageCost: 1, TotalLightRegen: 2, TotalDraw: 5}
		assert.True(t, s.SustainsProlonged()) // 2 >= 6.38*1-6.88

		s.TotalDraw = 3
		assert.False(t, s.SustainsProlonged())

		s = Stats{AverageCost: 3, TotalLightRegen: 5, TotalDraw: 6}
		assert.False(t, s.SustainsProlonged()) // needs 6.38*3-6.88 = 12.26
	})

	t.Run("short battles want dense offense", func(t *testing.T) {
		s := Stats{DicePerCard: 3, WeightedDicePer: 2.5, AttackDefenseRate: 6}
		assert.True(t, s.SuitsShortBattle())

		s.AttackDefenseRate = 4
		assert.False(t, s.SuitsShortBattle())
	})
}
