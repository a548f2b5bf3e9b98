package builder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ruinahall/deckwright/internal/card"
)

// Stats summarizes a deck for display and for the battle-fitness heuristics.
type Stats struct {
	AverageCost       float64
	DiceByKind        map[card.DieKind]int
	OffensiveDice     int
	DefensiveDice     int
	AverageDieValue   float64 // mean of (min+max)/2 over all dice, ignoring buffs
	WeightedDieValue  float64 // same, weighted by the owning card's cost
	DicePerCard       float64
	WeightedDicePer   float64 // dice per card, weighted by cost
	AttackDefenseRate float64 // offensive dice / defensive dice
	TotalLightRegen   int
	TotalDraw         int
}

var (
	lightRegenPattern = regexp.MustCompile(`(?i)(?:restore|gain|regenerate)\s+(\d+)\s+light`)
	drawPattern       = regexp.MustCompile(`(?i)draw\s+(\d+)\s+page`)
)

func sumMatches(pattern *regexp.Regexp, text string) int {
	total := 0
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		total += n
	}
	return total
}

func cardText(c *card.Card) string {
	var b strings.Builder
	b.WriteString(c.Effect)
	for _, d := range c.Dice {
		b.WriteByte('\n')
		b.WriteString(d.Effect)
	}
	return b.String()
}

// ComputeStats derives deck attribute statistics: costs, dice composition,
// average and cost-weighted die values, attack-to-defense ratio, and the
// light regen and page draw totals mined from effect text. Buffs and
// conditional card effects are not simulated.
func ComputeStats(cards []*card.Card) Stats {
	s := Stats{DiceByKind: make(map[card.DieKind]int)}
	if len(cards) == 0 {
		return s
	}

	var totalCost, totalDice, weightedDice int
	var valueSum, weightedValueSum float64
	var weightSum int
	for _, c := range cards {
		totalCost += c.Cost
		totalDice += len(c.Dice)
		weightedDice += len(c.Dice) * c.Cost
		weightSum += c.Cost
		for _, d := range c.Dice {
			s.DiceByKind[d.Kind]++
			if d.Kind.Offensive() {
				s.OffensiveDice++
			}
			if d.Kind.Defensive() {
				s.DefensiveDice++
			}
			v := float64(d.Min+d.Max) / 2
			valueSum += v
			weightedValueSum += v * float64(c.Cost)
		}
		text := cardText(c)
		s.TotalLightRegen += sumMatches(lightRegenPattern, text)
		s.TotalDraw += sumMatches(drawPattern, text)
	}

	s.AverageCost = float64(totalCost) / float64(len(cards))
	s.DicePerCard = float64(totalDice) / float64(len(cards))
	if weightSum > 0 {
		s.WeightedDicePer = float64(weightedDice) / float64(weightSum)
		s.WeightedDieValue = weightedValueSum / float64(weightSum)
	}
	if totalDice > 0 {
		s.AverageDieValue = valueSum / float64(totalDice)
	}
	if s.DefensiveDice > 0 {
		s.AttackDefenseRate = float64(s.OffensiveDice) / float64(s.DefensiveDice)
	} else if s.OffensiveDice > 0 {
		s.AttackDefenseRate = float64(s.OffensiveDice)
	}
	return s
}

// SustainsProlonged reports whether the deck can sustain a long battle.
// The light-regen line comes from a linear fit to the leanest
// self-sustaining decks per cost category; the draw threshold is roughly
// one standard deviation under the observed mean.
func (s Stats) SustainsProlonged() bool {
	return float64(s.TotalLightRegen) >= 6.38*s.AverageCost-6.88 && s.TotalDraw >= 4
}

// SuitsShortBattle reports whether the deck frontloads enough dice and
// offense for a short battle.
func (s Stats) SuitsShortBattle() bool {
	return s.DicePerCard >= 2.6 && s.WeightedDicePer >= 2.3 && s.AttackDefenseRate >= 5
}
