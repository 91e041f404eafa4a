package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventPlayerJoined    EventType = "player_joined"
	EventCommitReceived  EventType = "commit_received"
	EventRevealsOpened   EventType = "reveals_opened"
	EventChoiceRevealed  EventType = "choice_revealed"
	EventRoundScored     EventType = "round_scored"
	EventNextRoundOpened EventType = "next_round_opened"
)

// Event is the base structure for all session events
type Event struct {
	Type        EventType   `json:"type"`
	Timestamp   time.Time   `json:"timestamp"`
	SessionCode SessionCode `json:"session_code"`
	PlayerName  string      `json:"player_name,omitempty"`
	Payload     any         `json:"payload,omitempty"`
}

// PlayerJoinedPayload contains data for player joined events
type PlayerJoinedPayload struct {
	Name        string `json:"name"`
	PlayerCount int    `json:"player_count"`
}

// CommitReceivedPayload carries the commitment digest so spectators can
// audit that reveals are checked against what was originally locked in
type CommitReceivedPayload struct {
	Name       string `json:"name"`
	Commitment string `json:"commitment"`
	Round      int    `json:"round"`
}

// RevealsOpenedPayload contains data for reveals opened events
type RevealsOpenedPayload struct {
	Round       int `json:"round"`
	PlayerCount int `json:"player_count"`
}

// ChoiceRevealedPayload contains data for choice revealed events
type ChoiceRevealedPayload struct {
	Name   string `json:"name"`
	Choice Choice `json:"choice"`
	Round  int    `json:"round"`
}

// RoundScoredPayload contains data for round scored events
type RoundScoredPayload struct {
	Round  int            `json:"round"`
	Winner string         `json:"winner,omitempty"`
	Deltas map[string]int `json:"deltas"`
	Scores map[string]int `json:"scores"`
}

// NextRoundOpenedPayload contains data for next round opened events
type NextRoundOpenedPayload struct {
	Round int `json:"round"`
}
