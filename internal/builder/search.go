package builder

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/ruinahall/deckwright/internal/card"
)

const (
	// DefaultBeamWidth bounds how many partial decks survive each layer.
	DefaultBeamWidth = 6
	// DefaultTemperature is the default sampling randomness.
	DefaultTemperature = 0.6
	// TemperatureFloor is the smallest effective temperature. Requested
	// values at or below it clamp to the floor, where selection takes the
	// strict greedy top-k path the softmax degenerates to.
	TemperatureFloor = 0.01
)

// Deck is the terminal artifact of a search: exactly DeckSize distinct cards
// in insertion order, with their aggregate score. Immutable once returned.
type Deck struct {
	Cards []*card.Card
	Score float64
}

// IDs returns the card ids in insertion order.
func (d *Deck) IDs() []string {
	ids := make([]string, len(d.Cards))
	for i, c := range d.Cards {
		ids[i] = c.ID
	}
	return ids
}

// Engine runs beam search over a candidate set. One engine serves one
// configuration; each Search call is independent and single-threaded.
type Engine struct {
	scorer     *Scorer
	width      int
	temp       float64
	rng        *rand.Rand
	checkpoint *Checkpoint
}

// Option configures an Engine.
type Option func(*Engine)

// WithBeamWidth sets the number of partial decks kept between layers.
func WithBeamWidth(w int) Option {
	return func(e *Engine) {
		if w > 0 {
			e.width = w
		}
	}
}

// WithTemperature sets the sampling randomness in [0,1]. Values at or below
// TemperatureFloor clamp to the floor; values above 1 clamp to 1.
func WithTemperature(t float64) Option {
	return func(e *Engine) { e.temp = clampTemperature(t) }
}

// WithSeed makes the run reproducible: identical inputs and seed always
// yield an identical deck.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithCheckpoint records the best partial deck per layer into cp.
func WithCheckpoint(cp *Checkpoint) Option {
	return func(e *Engine) { e.checkpoint = cp }
}

// NewEngine returns a search engine for the scorer's effect.
func NewEngine(scorer *Scorer, opts ...Option) *Engine {
	e := &Engine{
		scorer: scorer,
		width:  DefaultBeamWidth,
		temp:   DefaultTemperature,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

func clampTemperature(t float64) float64 {
	if t <= TemperatureFloor {
		return TemperatureFloor
	}
	if t > 1 {
		return 1
	}
	return t
}

// partial is an ordered sequence of chosen candidate indexes with its
// cumulative score.
type partial struct {
	picks []int
	score float64
}

func (p partial) has(idx int) bool {
	for _, i := range p.picks {
		if i == idx {
			return true
		}
	}
	return false
}

func (p partial) extend(idx int, gain float64) partial {
	picks := make([]int, len(p.picks)+1)
	copy(picks, p.picks)
	picks[len(p.picks)] = idx
	return partial{picks: picks, score: p.score + gain}
}

// Search explores DeckSize-card combinations of the candidate set and
// returns the best deck found that passes validation. The beam is seeded
// with single-card decks, grown one card per layer with successors pooled
// across all parents, and cut back to the beam width by temperature-scaled
// softmax sampling (strict top-k at the temperature floor). The final
// survivors are scanned in score-descending order and the first one
// satisfying keyword coverage is returned; if none does, the error is a
// *NoValidDeckError.
func (e *Engine) Search(set *CandidateSet) (*Deck, error) {
	if set.Len() < DeckSize {
		return nil, &EmptyCandidateSetError{Eligible: set.Len(), Constraints: Constraints{MayInclude: set.Keywords}}
	}

	// per-candidate scores are fixed for the whole run
	gains := make([]float64, set.Len())
	for i, cand := range set.Candidates {
		gains[i] = e.scorer.Card(cand.Card)
	}

	// layer 1: every single-card deck is a successor of the empty deck
	beam := make([]partial, 0, set.Len())
	for i := range set.Candidates {
		beam = append(beam, partial{picks: []int{i}, score: gains[i]})
	}
	beam = e.cut(beam)
	e.record(set, beam)

	for layer := 2; layer <= DeckSize; layer++ {
		pool := make([]partial, 0, len(beam)*set.Len())
		for _, p := range beam {
			for i := range set.Candidates {
				if p.has(i) {
					continue
				}
				pool = append(pool, p.extend(i, gains[i]))
			}
		}
		beam = e.cut(pool)
		e.record(set, beam)
	}

	for _, p := range beam {
		cards := e.materialize(set, p)
		if err := ValidateDeck(cards, set.Keywords); err != nil {
			if e.checkpoint != nil {
				e.checkpoint.Update(cards, p.score, err.Error())
			}
			continue
		}
		return &Deck{Cards: cards, Score: p.score}, nil
	}
	return nil, &NoValidDeckError{
		Effect:    e.scorer.Effect(),
		Keywords:  set.Keywords,
		BeamWidth: e.width,
	}
}

func (e *Engine) materialize(set *CandidateSet, p partial) []*card.Card {
	cards := make([]*card.Card, len(p.picks))
	for i, idx := range p.picks {
		cards[i] = set.Candidates[idx].Card
	}
	return cards
}

func (e *Engine) record(set *CandidateSet, beam []partial) {
	if e.checkpoint == nil || len(beam) == 0 {
		return
	}
	e.checkpoint.Update(e.materialize(set, beam[0]), beam[0].score, "")
}

// cut reduces a successor pool to the beam width, returning the survivors in
// score-descending order. The pool is generated in a deterministic order, so
// the stable sort breaks score ties by catalog order. Above the temperature
// floor, survivors are drawn without replacement with probability
// proportional to exp(score/T) over min-max normalized scores; subtracting
// the maximum before exponentiating keeps the weights finite.
func (e *Engine) cut(pool []partial) []partial {
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].score > pool[j].score })
	if len(pool) <= e.width {
		return pool
	}
	if e.temp <= TemperatureFloor {
		return pool[:e.width]
	}

	lo, hi := pool[len(pool)-1].score, pool[0].score
	span := hi - lo
	weights := make([]float64, len(pool))
	for i, p := range pool {
		norm := 1.0
		if span > 0 {
			norm = (p.score - lo) / span
		}
		// max of norm/temp is 1/temp, subtracted for stability
		weights[i] = math.Exp(norm/e.temp - 1/e.temp)
	}

	// draw without replacement; a drawn index is retired by zeroing its
	// weight. With temp above the floor the exponent is at least -1/temp,
	// so live weights never underflow to zero.
	chosen := make([]partial, 0, e.width)
	for len(chosen) < e.width {
		total := 0.0
		for _, w := range weights {
			total += w
		}
		r := e.rng.Float64() * total
		picked := -1
		for i, w := range weights {
			if w == 0 {
				continue
			}
			picked = i
			r -= w
			if r <= 0 {
				break
			}
		}
		chosen = append(chosen, pool[picked])
		weights[picked] = 0
	}
	sort.SliceStable(chosen, func(i, j int) bool { return chosen[i].score > chosen[j].score })
	return chosen
}
