package statblock

import (
	"strconv"
	"strings"
	"unicode"
)

// TitleCase lower-cases s and upper-cases the first rune of every
// whitespace-separated token. Runs of whitespace collapse to a single
// space. Lossy, but stylesheets downstream depend on this exact shape.
// An empty (or all-whitespace) input yields "".
func TitleCase(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	for i, tok := range tokens {
		r := []rune(tok)
		r[0] = unicode.ToUpper(r[0])
		tokens[i] = string(r)
	}
	return strings.Join(tokens, " ")
}

// FormatModifier renders a modifier with an explicit plus sign for positive
// values. Zero and negative values carry no prefix; strconv already emits
// the minus sign.
func FormatModifier(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// AbilityModifier renders the parenthesized modifier for a raw ability
// score: floor((score-10)/2), e.g. 12 -> " (+1)", 7 -> " (-2)".
func AbilityModifier(score int) string {
	return " (" + FormatModifier(floorHalf(score-10)) + ")"
}

// floorHalf divides by two rounding toward negative infinity. Go's integer
// division truncates toward zero, which is wrong for odd negative deltas.
func floorHalf(n int) int {
	q := n / 2
	if n < 0 && n%2 != 0 {
		q--
	}
	return q
}
