package builder

import (
	"fmt"
	"math"
	"strings"

	"github.com/ruinahall/deckwright/internal/card"
)

// Checkpoint remembers the best partial deck seen during a search, so a
// failed run can still report how far it got and why the last candidate was
// rejected. Attach one with WithCheckpoint.
type Checkpoint struct {
	Best       []*card.Card
	BestScore  float64
	LastReason string
}

// NewCheckpoint returns an empty checkpoint.
func NewCheckpoint() *Checkpoint {
	return &Checkpoint{BestScore: math.Inf(-1)}
}

// Update records the deck if it beats the best score seen so far. The reason
// is kept regardless, as the most recent failure explanation.
func (cp *Checkpoint) Update(cards []*card.Card, score float64, reason string) {
	if score > cp.BestScore {
		cp.BestScore = score
		cp.Best = append([]*card.Card(nil), cards...)
	}
	if reason != "" {
		cp.LastReason = reason
	}
}

func (cp *Checkpoint) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "best partial deck (score %.2f):\n", cp.BestScore)
	for _, c := range cp.Best {
		b.WriteString(c.Name)
		b.WriteByte('\n')
	}
	if cp.LastReason != "" {
		fmt.Fprintf(&b, "last failure: %s", cp.LastReason)
	}
	return b.String()
}
