// Package scoring resolves a round of simultaneous choices into per-player
// score deltas using round-robin pairwise comparison.
package scoring

import (
	"github.com/rpsgame/rpsgame-go/internal/model"
)

// Service provides round scoring
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// Score compares every unordered pair of players exactly once and returns
// the score delta for each player: +1 for each pairing won, 0 for a loss or
// a tie on that pairing. The result has an entry for every player, including
// those whose delta is 0.
//
// Every choice must be revealed. A player whose choice is still the empty
// sentinel is a contract violation by the caller and yields
// model.ErrChoiceNotRevealed.
func (s *Service) Score(revealed []model.RevealedChoice) (map[string]int, error) {
	deltas := make(map[string]int, len(revealed))
	for _, rc := range revealed {
		if !rc.Choice.IsRevealed() {
			return nil, model.ErrChoiceNotRevealed
		}
		deltas[rc.Name] = 0
	}

	for i := 0; i < len(revealed); i++ {
		for j := i + 1; j < len(revealed); j++ {
			a, b := revealed[i], revealed[j]
			switch {
			case a.Choice.Beats(b.Choice):
				deltas[a.Name]++
			case b.Choice.Beats(a.Choice):
				deltas[b.Name]++
			}
			// Same choice: no score change on this pairing
		}
	}

	return deltas, nil
}

// Winner returns the name of the player with the strictly highest delta, or
// an empty string when the top delta is shared. The round "winner" is a
// presentation convenience; the deltas themselves are the real output.
func (s *Service) Winner(deltas map[string]int) string {
	best := ""
	bestDelta := -1
	tied := false

	for name, delta := range deltas {
		switch {
		case delta > bestDelta:
			best = name
			bestDelta = delta
			tied = false
		case delta == bestDelta:
			tied = true
		}
	}

	if tied || bestDelta <= 0 {
		return ""
	}
	return best
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(revealed []model.RevealedChoice) (map[string]int, error)
	Winner(deltas map[string]int) string
}

var _ ServiceInterface = (*Service)(nil)
