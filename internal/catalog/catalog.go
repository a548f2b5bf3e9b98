// Package catalog manages the combat page catalog: the JSON card file the
// search engine consumes, the wiki scrape that produces it, and the
// effect-profile authoring step that runs at import time.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruinahall/deckwright/internal/card"
)

// Catalog is the full, ordered list of combat pages available to the
// builder, with unique ids.
type Catalog struct {
	Cards []*card.Card

	byID map[string]*card.Card
}

// New wraps a card list into a catalog, enforcing the input contract:
// unique non-empty ids and a known rank on every card.
func New(cards []*card.Card) (*Catalog, error) {
	c := &Catalog{Cards: cards, byID: make(map[string]*card.Card, len(cards))}
	for _, cc := range cards {
		if cc.ID == "" {
			return nil, fmt.Errorf("card %q has no id", cc.Name)
		}
		if cc.Rank.Tier() < 0 {
			return nil, fmt.Errorf("card %s has unknown rank %q", cc.ID, cc.Rank)
		}
		if _, dup := c.byID[cc.ID]; dup {
			return nil, fmt.Errorf("duplicate card id: %s", cc.ID)
		}
		c.byID[cc.ID] = cc
	}
	return c, nil
}

// Load reads a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %v", err)
	}
	var cards []*card.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("error parsing catalog %s: %v", path, err)
	}
	return New(cards)
}

// Save writes the catalog to a JSON file, creating parent directories as
// needed.
func (c *Catalog) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating catalog directory: %v", err)
	}
	data, err := json.MarshalIndent(c.Cards, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding catalog: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing catalog: %v", err)
	}
	return nil
}

// Get returns the card with the given id.
func (c *Catalog) Get(id string) (*card.Card, bool) {
	cc, ok := c.byID[id]
	return cc, ok
}

// RankCount pairs a rank with the number of catalog cards in it.
type RankCount struct {
	Rank  card.Rank
	Count int
}

// CountByRank returns how many cards each rank has, in tier order.
func (c *Catalog) CountByRank() []RankCount {
	counts := make(map[card.Rank]int)
	for _, cc := range c.Cards {
		counts[cc.Rank]++
	}
	out := make([]RankCount, 0, len(counts))
	for _, r := range card.Ranks {
		if counts[r] > 0 {
			out = append(out, RankCount{Rank: r, Count: counts[r]})
		}
	}
	return out
}
