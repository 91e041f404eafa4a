package model

import "time"

// SessionCode uniquely identifies a game session
type SessionCode string

// SessionState represents the current phase of a session's round
type SessionState string

const (
	SessionStateJoining    SessionState = "joining"    // Collecting players before round 1
	SessionStateCommitting SessionState = "committing" // Waiting for per-round commitments
	SessionStateRevealing  SessionState = "revealing"  // All commitments in, collecting reveals
	SessionStateScored     SessionState = "scored"     // Round resolved, scores applied
)

// PlayerPhase tracks a single player's progress through the current round
type PlayerPhase string

const (
	PhaseAwaitingCommit PlayerPhase = "awaiting_commit"
	PhaseAwaitingReveal PlayerPhase = "awaiting_reveal"
	PhaseRevealed       PlayerPhase = "revealed"
)

// PlayerEntry is a session participant. The name is unique per session.
// The commitment is fixed for the round once set; the choice transitions
// from empty to concrete exactly once, on a successful reveal.
type PlayerEntry struct {
	Name       string
	Commitment Commitment
	Choice     Choice
	Phase      PlayerPhase
	JoinedAt   time.Time
}

// RevealedChoice pairs a player name with their revealed move
type RevealedChoice struct {
	Name   string
	Choice Choice
}

// RoundSummary is a record of a completed round
type RoundSummary struct {
	Number   int
	Winner   string // Empty if tie
	Choices  map[string]Choice
	Deltas   map[string]int
	ScoredAt time.Time
}

// Session represents one commit/reveal game session
type Session struct {
	Code  SessionCode
	State SessionState

	// Round is the 1-indexed current round number
	Round int

	// Players in join order; the roster is fixed once round 1 starts
	Players []PlayerEntry

	// Scores is the accumulated score table, keyed by player name.
	// Entries only ever increase and are never removed within a session.
	Scores map[string]int

	// Rounds holds the history of completed rounds
	Rounds []RoundSummary

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetPlayer returns the entry for the named player, or nil
func (s *Session) GetPlayer(name string) *PlayerEntry {
	for i := range s.Players {
		if s.Players[i].Name == name {
			return &s.Players[i]
		}
	}
	return nil
}

// AllCommitted reports whether every player has committed this round
func (s *Session) AllCommitted() bool {
	for i := range s.Players {
		if s.Players[i].Phase == PhaseAwaitingCommit {
			return false
		}
	}
	return true
}

// AllRevealed reports whether every player has revealed this round
func (s *Session) AllRevealed() bool {
	for i := range s.Players {
		if s.Players[i].Phase != PhaseRevealed {
			return false
		}
	}
	return true
}

// RevealedChoices returns the (name, choice) pairs for the current round
func (s *Session) RevealedChoices() []RevealedChoice {
	revealed := make([]RevealedChoice, len(s.Players))
	for i, p := range s.Players {
		revealed[i] = RevealedChoice{Name: p.Name, Choice: p.Choice}
	}
	return revealed
}
