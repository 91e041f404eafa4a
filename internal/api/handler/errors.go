package handler

import (
	"net/http"

	"github.com/rpsgame/rpsgame-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeInvalidChoice       = apierr.CodeInvalidChoice
	CodeInvalidCommitment   = apierr.CodeInvalidCommitment
	CodeInvalidName         = apierr.CodeInvalidName
	CodeSessionNotFound     = apierr.CodeSessionNotFound
	CodeSessionNotJoining   = apierr.CodeSessionNotJoining
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeNameTaken           = apierr.CodeNameTaken
	CodeInsufficientPlayers = apierr.CodeInsufficientPlayers
	CodeCommitsClosed       = apierr.CodeCommitsClosed
	CodeRevealsNotOpen      = apierr.CodeRevealsNotOpen
	CodeAlreadyCommitted    = apierr.CodeAlreadyCommitted
	CodeAlreadyRevealed     = apierr.CodeAlreadyRevealed
	CodeRevealMismatch      = apierr.CodeRevealMismatch
	CodeRoundNotComplete    = apierr.CodeRoundNotComplete
	CodeRoundNotScored      = apierr.CodeRoundNotScored
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
