package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruinahall/deckwright/internal/card"
)

func TestFilterRankExclusion(t *testing.T) {
	var catalog []*card.Card
	for _, r := range card.Ranks {
		catalog = append(catalog, rankedCatalog(3, r)...)
	}

	t.Run("no exclusion keeps everything", func(t *testing.T) {
		set := mustFilter(t, catalog, Constraints{})
		assert.Equal(t, len(catalog), set.Len())
	})

	t.Run("low exclusion drops four ranks", func(t *testing.T) {
		set := mustFilter(t, catalog, Constraints{ExcludeLowRank: true})
		assert.Equal(t, 9, set.Len()) // Urban Nightmare + the two high ranks
		for _, cand := range set.Candidates {
			assert.False(t, cand.Card.Rank.Low())
		}
	})

	t.Run("both exclusions leave only the middle", func(t *testing.T) {
		_, err := Filter(catalog, Constraints{ExcludeLowRank: true, ExcludeHighRank: true})
		// only 3 Urban Nightmare cards remain, not enough for a deck
		var emptyErr *EmptyCandidateSetError
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, 3, emptyErr.Eligible)
	})
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	catalog := rankedCatalog(12, card.UrbanLegend)
	set := mustFilter(t, catalog, Constraints{})
	for i, cand := range set.Candidates {
		assert.Equal(t, catalog[i].ID, cand.Card.ID)
	}
}

func TestFilterKeywordFlagging(t *testing.T) {
	catalog := rankedCatalog(12, card.UrbanNightmare)
	catalog[2].Effect = "On Hit, inflict 2 Bleed"
	catalog[5].Dice = []card.Die{{Kind: card.Slash, Min: 2, Max: 6, Effect: "On hit, inflict 1 bleed"}}

	set := mustFilter(t, catalog, Constraints{MayInclude: []string{"BLEED"}})

	// non-matching cards stay in the set, only the flag differs
	assert.Equal(t, 12, set.Len())
	for i, cand := range set.Candidates {
		want := i == 2 || i == 5
		assert.Equal(t, want, cand.KeywordEligible, "card %d", i)
	}
	assert.True(t, set.AnyKeywordEligible())
}

func TestFilterNoEligibleKeywordIsNotFatal(t *testing.T) {
	set := mustFilter(t, rankedCatalog(10, card.Canard), Constraints{MayInclude: []string{"guillotine"}})
	assert.False(t, set.AnyKeywordEligible())
}
