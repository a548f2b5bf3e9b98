package builder

import (
	"fmt"
	"strings"
)

// EmptyCandidateSetError is returned when rank exclusion leaves fewer than
// DeckSize eligible cards, so no search is attempted.
type EmptyCandidateSetError struct {
	Eligible    int
	Constraints Constraints
}

func (e *EmptyCandidateSetError) Error() string {
	return fmt.Sprintf("only %d eligible cards after rank exclusion (%s), need %d",
		e.Eligible, e.Constraints.describeRanks(), DeckSize)
}

// NoValidDeckError is returned when the search completed but no surviving
// 9-card deck satisfies keyword coverage. The caller may retry with a wider
// beam or relaxed keywords.
type NoValidDeckError struct {
	Effect    string
	Keywords  []string
	BeamWidth int
}

func (e *NoValidDeckError) Error() string {
	return fmt.Sprintf("no valid deck for effect %q with keywords [%s] at beam width %d",
		e.Effect, strings.Join(e.Keywords, ", "), e.BeamWidth)
}

// KeywordCoverageError reports that a candidate deck contains no card matching
// any of the required keywords. It is internal to the validation scan and is
// never surfaced to callers of Search.
type KeywordCoverageError struct {
	Keywords []string
}

func (e *KeywordCoverageError) Error() string {
	return fmt.Sprintf("no card matches any of the keywords [%s]", strings.Join(e.Keywords, ", "))
}
