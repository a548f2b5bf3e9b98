package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ruinahall/deckwright/internal/card"
)

// StatusEffects is the vocabulary the affinity author knows about. Values
// for effects outside this list can still be supplied through a scorer
// override table at search time.
var StatusEffects = []string{
	"bleed", "burn", "paralysis", "fragile", "feeble", "disarm", "bind",
	"haste", "strength", "endurance", "protection", "smoke", "charge", "erosion",
}

var amountPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(StatusEffects))
	for _, effect := range StatusEffects {
		m[effect] = regexp.MustCompile(`(?i)(\d+)\s+` + effect)
	}
	return m
}()

// BuildAffinity authors the card's effect profile from its text: the numeric
// amounts of "inflict/gain/give N <effect>" phrases are summed across the on
// play text and every dice effect, and each unnumbered mention adds one.
// The result is deterministic for a given card, so re-importing the catalog
// reproduces identical profiles.
func BuildAffinity(c *card.Card) {
	texts := []string{c.Name, c.Effect}
	for _, d := range c.Dice {
		texts = append(texts, d.Effect)
	}
	profile := make(map[string]float64)
	for _, effect := range StatusEffects {
		amount := amountPatterns[effect]
		total := 0.0
		for _, text := range texts {
			lowered := strings.ToLower(text)
			matched := amount.FindAllStringSubmatch(text, -1)
			for _, m := range matched {
				n, err := strconv.Atoi(m[1])
				if err != nil {
					continue
				}
				total += float64(n)
			}
			// unnumbered mentions still signal relevance
			mentions := strings.Count(lowered, effect)
			if extra := mentions - len(matched); extra > 0 {
				total += float64(extra)
			}
		}
		if total > 0 {
			profile[effect] = total
		}
	}
	if len(profile) > 0 {
		c.Affinity = profile
	}
}
