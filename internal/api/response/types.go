package response

import (
	"time"

	"github.com/rpsgame/rpsgame-go/internal/model"
)

// Player represents a session participant in API responses.
// The commitment digest is public; the choice only appears once revealed.
type Player struct {
	Name       string    `json:"name"`
	Phase      string    `json:"phase"`
	Commitment string    `json:"commitment,omitempty"`
	Choice     string    `json:"choice,omitempty"`
	JoinedAt   time.Time `json:"joined_at"`
}

// PlayerFromModel converts a model.PlayerEntry to a response Player
func PlayerFromModel(p *model.PlayerEntry) Player {
	out := Player{
		Name:     p.Name,
		Phase:    string(p.Phase),
		JoinedAt: p.JoinedAt,
	}
	if !p.Commitment.IsZero() {
		out.Commitment = p.Commitment.String()
	}
	if p.Choice.IsRevealed() {
		out.Choice = string(p.Choice)
	}
	return out
}

// Round represents a completed round in API responses
type Round struct {
	Number   int               `json:"number"`
	Winner   *string           `json:"winner"`
	Choices  map[string]string `json:"choices"`
	Deltas   map[string]int    `json:"deltas"`
	ScoredAt time.Time         `json:"scored_at"`
}

// RoundFromModel converts model.RoundSummary
func RoundFromModel(r model.RoundSummary) Round {
	choices := make(map[string]string, len(r.Choices))
	for name, choice := range r.Choices {
		choices[name] = string(choice)
	}
	var winner *string
	if r.Winner != "" {
		w := r.Winner
		winner = &w
	}
	return Round{
		Number:   r.Number,
		Winner:   winner,
		Choices:  choices,
		Deltas:   r.Deltas,
		ScoredAt: r.ScoredAt,
	}
}

// Session represents a session in API responses
type Session struct {
	Code      string         `json:"code"`
	State     string         `json:"state"`
	Round     int            `json:"round"`
	Players   []Player       `json:"players"`
	Scores    map[string]int `json:"scores"`
	Rounds    []Round        `json:"rounds,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s *model.Session) Session {
	players := make([]Player, len(s.Players))
	for i := range s.Players {
		players[i] = PlayerFromModel(&s.Players[i])
	}

	rounds := make([]Round, len(s.Rounds))
	for i, r := range s.Rounds {
		rounds[i] = RoundFromModel(r)
	}

	return Session{
		Code:      string(s.Code),
		State:     string(s.State),
		Round:     s.Round,
		Players:   players,
		Scores:    s.Scores,
		Rounds:    rounds,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Scores is the standalone score table response
type Scores struct {
	Code   string         `json:"code"`
	Scores map[string]int `json:"scores"`
}
