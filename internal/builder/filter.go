// Package builder implements the deck construction core: the constraint
// filter, the effect scorer, the beam search engine and the deck validator.
// The package never logs or prints; fatal conditions come back as typed
// errors carrying the offending parameters.
package builder

import (
	"strings"

	"github.com/ruinahall/deckwright/internal/card"
)

// DeckSize is the fixed number of combat pages in a deck.
const DeckSize = 9

// Constraints narrows the catalog before the search runs.
type Constraints struct {
	ExcludeLowRank  bool     // drop Canard, Urban Myth, Urban Legend, Urban Plague
	ExcludeHighRank bool     // drop Star of the City, Impuritas Civitatis
	MayInclude      []string // keywords at least one returned card must match
}

func (c Constraints) describeRanks() string {
	var parts []string
	if c.ExcludeLowRank {
		parts = append(parts, "low ranks excluded")
	}
	if c.ExcludeHighRank {
		parts = append(parts, "high ranks excluded")
	}
	if len(parts) == 0 {
		return "no ranks excluded"
	}
	return strings.Join(parts, ", ")
}

// Candidate is a catalog card admitted into the search, annotated with
// whether it can satisfy the keyword coverage requirement.
type Candidate struct {
	Card            *card.Card
	KeywordEligible bool
}

// CandidateSet is the filtered collection of cards eligible for selection,
// in catalog order.
type CandidateSet struct {
	Candidates []Candidate
	Keywords   []string // the MayInclude list the set was built with
}

// Len returns the number of eligible cards.
func (s *CandidateSet) Len() int { return len(s.Candidates) }

// AnyKeywordEligible reports whether at least one candidate can satisfy
// keyword coverage. A false result is not fatal at filter time: the search
// still runs, and the validator rejects every survivor afterwards.
func (s *CandidateSet) AnyKeywordEligible() bool {
	for _, c := range s.Candidates {
		if c.KeywordEligible {
			return true
		}
	}
	return false
}

// Filter reduces the catalog to the candidate set for one search run.
// Rank-excluded cards are dropped; keyword matching only flags which cards
// can cover the MayInclude requirement, since non-matching cards remain
// selectable for the other slots. Fewer than DeckSize survivors is an
// *EmptyCandidateSetError.
func Filter(catalog []*card.Card, cons Constraints) (*CandidateSet, error) {
	set := &CandidateSet{Keywords: cons.MayInclude}
	for _, c := range catalog {
		if cons.ExcludeLowRank && c.Rank.Low() {
			continue
		}
		if cons.ExcludeHighRank && c.Rank.High() {
			continue
		}
		set.Candidates = append(set.Candidates, Candidate{
			Card:            c,
			KeywordEligible: len(cons.MayInclude) > 0 && c.MatchesAny(cons.MayInclude),
		})
	}
	if set.Len() < DeckSize {
		return nil, &EmptyCandidateSetError{Eligible: set.Len(), Constraints: cons}
	}
	return set, nil
}
