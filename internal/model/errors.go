package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotJoining   = errors.New("session is not accepting players")
	ErrInsufficientPlayers = errors.New("at least two players are required")
	ErrCommitsClosed       = errors.New("commit phase is closed")
	ErrRevealsNotOpen      = errors.New("reveal phase has not opened")
	ErrRoundNotComplete    = errors.New("not all players have revealed")
	ErrRoundNotScored      = errors.New("round has not been scored")

	// Player errors
	ErrPlayerNotFound   = errors.New("player not found in session")
	ErrInvalidName      = errors.New("player name must not be empty")
	ErrNameTaken        = errors.New("player name is already taken")
	ErrAlreadyCommitted = errors.New("player has already committed this round")
	ErrAlreadyRevealed  = errors.New("player has already revealed this round")

	// Protocol errors
	ErrInvalidChoice     = errors.New("choice must be rock, paper or scissors")
	ErrInvalidCommitment = errors.New("invalid commitment digest")
	ErrRevealMismatch    = errors.New("reveal does not match commitment")

	// Scoring errors
	ErrChoiceNotRevealed = errors.New("cannot score a player whose choice is not revealed")
)
