package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruinahall/deckwright/internal/builder"
	"github.com/ruinahall/deckwright/internal/card"
)

func TestSplitKeywords(t *testing.T) {
	assert.Nil(t, splitKeywords(nil))
	assert.Equal(t, []string{"bleed"}, splitKeywords([]string{"bleed"}))
	assert.Equal(t, []string{"bleed", "urban nightmare"}, splitKeywords([]string{"bleed, urban nightmare"}))
	assert.Equal(t, []string{"a", "b", "c"}, splitKeywords([]string{"a,b", "c", " "}))
}

func TestExportDeck(t *testing.T) {
	deck := &builder.Deck{
		Cards: []*card.Card{
			{ID: "canard.downpour", Name: "Downpour", Rank: card.Canard},
		},
		Score: 1.5,
	}
	path := filepath.Join(t.TempDir(), "decks", "out.json")
	require.NoError(t, exportDeck(deck, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cards []*card.Card
	require.NoError(t, json.Unmarshal(data, &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "canard.downpour", cards[0].ID)
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)

	assert.Equal(t, []string{""}, wrapText("", 20))
}
