package catalog

import "regexp"

// The wiki's dice-effect text arrives with the whitespace stripped out
// ("Gain1Haste nextScene"). These boundaries are where words were glued
// together.
var (
	digitLetter = regexp.MustCompile(`(\d)([A-Za-z])`)
	letterDigit = regexp.MustCompile(`([A-Za-z])(\d)`)
	lowerUpper  = regexp.MustCompile(`([a-z])([A-Z])`)
)

// NormalizeSpacing re-inserts spaces at digit/letter and lower/upper case
// boundaries, turning "Gain1Haste nextScene" into "Gain 1 Haste next Scene".
func NormalizeSpacing(text string) string {
	text = digitLetter.ReplaceAllString(text, "$1 $2")
	text = letterDigit.ReplaceAllString(text, "$1 $2")
	text = lowerUpper.ReplaceAllString(text, "$1 $2")
	return text
}
