package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruinahall/deckwright/internal/card"
)

const wikiFixture = `<html><body><table>
<tr><th>Canard <span>Collapse</span></th></tr>
<tr>
  <td><span>Downpour</span><img src="downpour.png"/></td>
  <td>1</td>
  <td data-sort-value="Melee">icon</td>
  <td>Slash 2-5<br/>Slash 1-4 On hit, inflict 1Bleed</td>
</tr>
<tr>
  <td><span>Downpour</span><img src="downpour2.png"/></td>
  <td>1</td>
  <td data-sort-value="Melee">icon</td>
  <td>Slash 2-5</td>
</tr>
<tr><th>Urban Legend Collapse</th></tr>
<tr>
  <td><span>Will o' the Wisp</span><img src="wisp.png"/></td>
  <td>2</td>
  <td data-sort-value="Ranged">icon</td>
  <td>On Use, inflict 3Burn<br/>Pierce 3-7 On hit, inflict 2Burn</td>
</tr>
<tr><td>row without an image is not a card</td><td>9</td><td>x</td><td>y</td></tr>
</table></body></html>`

func TestParseWikiHTML(t *testing.T) {
	cards, err := ParseWikiHTML(strings.NewReader(wikiFixture))
	require.NoError(t, err)
	require.Len(t, cards, 3)

	downpour := cards[0]
	assert.Equal(t, "canard.downpour", downpour.ID)
	assert.Equal(t, "Downpour", downpour.Name)
	assert.Equal(t, card.Canard, downpour.Rank)
	assert.Equal(t, 1, downpour.Cost)
	assert.Equal(t, "melee", downpour.Range)
	require.Len(t, downpour.Dice, 2)
	assert.Equal(t, card.Die{Kind: card.Slash, Min: 2, Max: 5}, downpour.Dice[0])
	// dice-effect text is spacing-normalized
	assert.Equal(t, "On hit, inflict 1 Bleed", downpour.Dice[1].Effect)

	// the reprint gets a suffixed id
	assert.Equal(t, "canard.downpour-2", cards[1].ID)

	wisp := cards[2]
	assert.Equal(t, "urban-legend.will-o-the-wisp", wisp.ID)
	assert.Equal(t, card.UrbanLegend, wisp.Rank)
	assert.Equal(t, "On Use, inflict 3 Burn", wisp.Effect)
	require.Len(t, wisp.Dice, 1)
	assert.Equal(t, card.Pierce, wisp.Dice[0].Kind)
	assert.Equal(t, 3, wisp.Dice[0].Min)
	assert.Equal(t, 7, wisp.Dice[0].Max)

	// affinity authored at import: 3 burn on use + 2 burn on hit
	assert.Equal(t, 5.0, wisp.Affinity["burn"])
	assert.Equal(t, 1.0, downpour.Affinity["bleed"])
}

func TestParseWikiHTMLEmpty(t *testing.T) {
	_, err := ParseWikiHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	assert.ErrorContains(t, err, "no combat pages")
}

func TestNormalizeSpacing(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Gain1Haste", "Gain 1 Haste"},
		{"inflict 2Burn", "inflict 2 Burn"},
		{"nextScene", "next Scene"},
		{"Draw2Pages", "Draw 2 Pages"},
		{"already spaced text", "already spaced text"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSpacing(tt.in), tt.in)
	}
}

func TestBuildAffinity(t *testing.T) {
	c := &card.Card{
		Name:   "Smoke Screen",
		Effect: "On Use, gain 3 Smoke and draw 1 page",
		Dice: []card.Die{
			{Kind: card.Block, Min: 3, Max: 8, Effect: "On clash win, gain 2 Smoke"},
			{Kind: card.Evade, Min: 2, Max: 6, Effect: "Restore Light equal to Smoke"},
		},
	}
	BuildAffinity(c)

	// 3 + 2 from numbered phrases, +1 for the unnumbered mention in the
	// evade die, +1 for the card name
	assert.Equal(t, 7.0, c.Affinity["smoke"])
	_, hasBleed := c.Affinity["bleed"]
	assert.False(t, hasBleed)
}

func TestBuildAffinityLeavesPlainCardsAlone(t *testing.T) {
	c := &card.Card{Name: "Plain", Effect: "Nothing special"}
	BuildAffinity(c)
	assert.Nil(t, c.Affinity)
}
