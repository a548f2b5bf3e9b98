package card

import (
	"fmt"
	"strings"
)

// Rank is the tier classification of a combat page, in wiki order.
type Rank string

const (
	Canard             Rank = "Canard"
	UrbanMyth          Rank = "Urban Myth"
	UrbanLegend        Rank = "Urban Legend"
	UrbanPlague        Rank = "Urban Plague"
	UrbanNightmare     Rank = "Urban Nightmare"
	StarOfTheCity      Rank = "Star of the City"
	ImpuritasCivitatis Rank = "Impuritas Civitatis"
)

// Ranks lists every rank in ascending tier order.
var Ranks = []Rank{
	Canard, UrbanMyth, UrbanLegend, UrbanPlague,
	UrbanNightmare, StarOfTheCity, ImpuritasCivitatis,
}

// ParseRank matches a rank name case-insensitively. The wiki sometimes writes
// "Stars of the City"; that spelling is accepted too.
func ParseRank(s string) (Rank, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "Stars of the City") {
		return StarOfTheCity, nil
	}
	for _, r := range Ranks {
		if strings.EqualFold(trimmed, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown rank: %q", s)
}

// Tier returns the position of the rank in ascending order, or -1 if unknown.
func (r Rank) Tier() int {
	for i, known := range Ranks {
		if r == known {
			return i
		}
	}
	return -1
}

// Low reports whether the rank belongs to the lower tiers removed by
// the exclude-low-rank constraint. Urban Nightmare sits between the two
// groups and is never excluded.
func (r Rank) Low() bool {
	switch r {
	case Canard, UrbanMyth, UrbanLegend, UrbanPlague:
		return true
	}
	return false
}

// High reports whether the rank belongs to the upper tiers removed by
// the exclude-high-rank constraint.
func (r Rank) High() bool {
	return r == StarOfTheCity || r == ImpuritasCivitatis
}

// DieKind classifies a combat die.
type DieKind string

const (
	Slash  DieKind = "slash"
	Blunt  DieKind = "blunt"
	Pierce DieKind = "pierce"
	Block  DieKind = "block"
	Evade  DieKind = "evade"
)

// Offensive reports whether the die attacks (slash, blunt, pierce).
func (k DieKind) Offensive() bool {
	return k == Slash || k == Blunt || k == Pierce
}

// Defensive reports whether the die defends (block, evade).
func (k DieKind) Defensive() bool {
	return k == Block || k == Evade
}

// Die is a single combat die on a page.
type Die struct {
	Kind   DieKind `json:"kind"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Effect string  `json:"effect,omitempty"` // dice-effect text, e.g. "On hit, inflict 2 Burn"
}

// Card is a single combat page from the catalog. Records are immutable once
// loaded; the search engine never mutates them.
type Card struct {
	ID       string             `json:"id"`   // unique slug, e.g. "urban_legend.will-o-the-wisp"
	Name     string             `json:"name"` // display name from the wiki
	Rank     Rank               `json:"rank"`
	Cost     int                `json:"cost"`             // light cost
	Range    string             `json:"range"`            // melee, ranged, mass
	Effect   string             `json:"effect,omitempty"` // on play / on use text
	Dice     []Die              `json:"dice,omitempty"`
	Tags     []string           `json:"tags,omitempty"`
	Affinity map[string]float64 `json:"affinity,omitempty"` // effect name -> affinity
}

// AffinityFor returns the card's affinity for the named effect. Cards with no
// entry score 0; negative authored values are clamped to 0 so an irrelevant
// card is never penalized.
func (c *Card) AffinityFor(effect string) float64 {
	v, ok := c.Affinity[strings.ToLower(effect)]
	if !ok || v < 0 {
		return 0
	}
	return v
}

// MatchesKeyword reports whether the word appears anywhere on the card: name,
// rank, effect text, dice-effect text, or tags. Matching is case-insensitive
// substring matching, so "urban" matches every Urban-tier page and "bleed"
// matches "Inflict 3 Bleed".
func (c *Card) MatchesKeyword(word string) bool {
	w := strings.ToLower(word)
	if w == "" {
		return false
	}
	if strings.Contains(strings.ToLower(c.Name), w) ||
		strings.Contains(strings.ToLower(string(c.Rank)), w) ||
		strings.Contains(strings.ToLower(c.Effect), w) {
		return true
	}
	for _, d := range c.Dice {
		if strings.Contains(strings.ToLower(d.Effect), w) {
			return true
		}
	}
	for _, t := range c.Tags {
		if strings.Contains(strings.ToLower(t), w) {
			return true
		}
	}
	return false
}

// MatchesAny reports whether any of the words matches the card.
func (c *Card) MatchesAny(words []string) bool {
	for _, w := range words {
		if c.MatchesKeyword(w) {
			return true
		}
	}
	return false
}
