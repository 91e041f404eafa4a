package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpsgame/rpsgame-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidChoice       = "INVALID_CHOICE"
	CodeInvalidCommitment   = "INVALID_COMMITMENT"
	CodeInvalidName         = "INVALID_NAME"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeSessionNotJoining   = "SESSION_NOT_JOINING"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeNameTaken           = "NAME_TAKEN"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeCommitsClosed       = "COMMITS_CLOSED"
	CodeRevealsNotOpen      = "REVEALS_NOT_OPEN"
	CodeAlreadyCommitted    = "ALREADY_COMMITTED"
	CodeAlreadyRevealed     = "ALREADY_REVEALED"
	CodeRevealMismatch      = "REVEAL_MISMATCH"
	CodeRoundNotComplete    = "ROUND_NOT_COMPLETE"
	CodeRoundNotScored      = "ROUND_NOT_SCORED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrSessionNotJoining):
		return &httpError{http.StatusConflict, APIError{CodeSessionNotJoining, "Session is no longer accepting players"}}
	case errors.Is(err, model.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "Player name is already taken"}}
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "At least two players are required"}}
	case errors.Is(err, model.ErrCommitsClosed):
		return &httpError{http.StatusConflict, APIError{CodeCommitsClosed, "Commitments are not being accepted"}}
	case errors.Is(err, model.ErrRevealsNotOpen):
		return &httpError{http.StatusConflict, APIError{CodeRevealsNotOpen, "Reveals are not open"}}
	case errors.Is(err, model.ErrAlreadyCommitted):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyCommitted, "Player has already committed this round"}}
	case errors.Is(err, model.ErrAlreadyRevealed):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyRevealed, "Player has already revealed this round"}}
	case errors.Is(err, model.ErrRevealMismatch):
		return &httpError{http.StatusConflict, APIError{CodeRevealMismatch, "Reveal does not match the commitment"}}
	case errors.Is(err, model.ErrRoundNotComplete):
		return &httpError{http.StatusConflict, APIError{CodeRoundNotComplete, "Not all players have revealed"}}
	case errors.Is(err, model.ErrRoundNotScored):
		return &httpError{http.StatusConflict, APIError{CodeRoundNotScored, "Round has not been scored"}}
	case errors.Is(err, model.ErrInvalidChoice):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidChoice, "Choice must be rock, paper, or scissors"}}
	case errors.Is(err, model.ErrInvalidCommitment):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCommitment, "Commitment must be a 64-character hex digest"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
