package model

import "strings"

// Choice is a move in the game
type Choice string

const (
	// ChoiceEmpty is the sentinel for "not yet revealed"
	ChoiceEmpty    Choice = ""
	ChoiceRock     Choice = "rock"
	ChoicePaper    Choice = "paper"
	ChoiceScissors Choice = "scissors"
)

// beats is the cyclic dominance relation. It is deliberately a lookup table:
// the relation is non-transitive (rock > scissors > paper > rock) and cannot
// be modelled as an ordering on the enum.
var beats = map[Choice]Choice{
	ChoiceRock:     ChoiceScissors,
	ChoiceScissors: ChoicePaper,
	ChoicePaper:    ChoiceRock,
}

// Beats reports whether c wins against other.
// ChoiceEmpty never beats anything and is never beaten.
func (c Choice) Beats(other Choice) bool {
	return c != ChoiceEmpty && beats[c] == other
}

// IsRevealed reports whether c is a concrete move rather than the sentinel
func (c Choice) IsRevealed() bool {
	return c != ChoiceEmpty
}

// ParseChoice maps a free-form string to a Choice.
// Matching is case-insensitive. Anything outside the domain is an error;
// unrecognised input is never collapsed to ChoiceEmpty.
func ParseChoice(s string) (Choice, error) {
	switch Choice(strings.ToLower(strings.TrimSpace(s))) {
	case ChoiceRock:
		return ChoiceRock, nil
	case ChoicePaper:
		return ChoicePaper, nil
	case ChoiceScissors:
		return ChoiceScissors, nil
	default:
		return ChoiceEmpty, ErrInvalidChoice
	}
}
