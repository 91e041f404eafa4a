package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rpsgame/rpsgame-go/internal/api/request"
	"github.com/rpsgame/rpsgame-go/internal/api/response"
	"github.com/rpsgame/rpsgame-go/internal/model"
	"github.com/rpsgame/rpsgame-go/internal/services/session"
	"github.com/rpsgame/rpsgame-go/internal/sse"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	controller  *session.Controller
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller, hubManager *sse.HubManager, logger *slog.Logger) *SessionHandler {
	var broadcaster *sse.Broadcaster
	if hubManager != nil {
		broadcaster = sse.NewBroadcaster(hubManager, logger)
	}
	return &SessionHandler{
		controller:  controller,
		hubManager:  hubManager,
		broadcaster: broadcaster,
	}
}

// getBroadcaster returns the broadcaster if available
func (h *SessionHandler) getBroadcaster() *sse.Broadcaster {
	return h.broadcaster
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.controller.CreateSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.SessionFromModel(sess))
}

// Get handles GET /api/v1/sessions/{code}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.SessionCode(mux.Vars(r)["code"])

	sess, err := h.controller.GetSession(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Join handles POST /api/v1/sessions/{code}/players
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := model.SessionCode(mux.Vars(r)["code"])

	var req request.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sess, err := h.controller.Join(r.Context(), code, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	if b := h.getBroadcaster(); b != nil {
		b.BroadcastPlayerJoined(sess, req.Name)
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Start handles POST /api/v1/sessions/{code}/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := model.SessionCode(mux.Vars(r)["code"])

	sess, err := h.controller.Start(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Commit handles POST /api/v1/sessions/{code}/commits
func (h *SessionHandler) Commit(w http.ResponseWriter, r *http.Request) {
	code := model.SessionCode(mux.Vars(r)["code"])

	var req request.CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	digest, err := model.ParseCommitment(req.Commitment)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess, err := h.controller.Commit(r.Context(), code, req.Name, digest)
	if err != nil {
		WriteError(w, err)
		return
	}

	if b := h.getBroadcaster(); b != nil {
		b.BroadcastCommitReceived(sess, req.Name)
		if sess.State == model.SessionStateRevealing {
			b.BroadcastRevealsOpened(sess)
		}
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Reveal handles POST /api/v1/sessions/{code}/reveals
func (h *SessionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	code := model.SessionCode(mux.Vars(r)["code"])

	var req request.RevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sess, err := h.controller.Reveal(r.Context(), code, req.Name, req.Choice, req.Salt)
	if err != nil {
		WriteError(w, err)
		return
	}

	if b := h.getBroadcaster(); b != nil {
		b.BroadcastChoiceRevealed(sess, req.Name)
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Score handles POST /api/v1/sessions/{code}/score
func (h *SessionHandler) Score(w http.ResponseWriter, r *http.Request) {
	code := model.SessionCode(mux.Vars(r)["code"])

	sess, err := h.controller.ScoreRound(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	if b := h.getBroadcaster(); b != nil {
		b.BroadcastRoundScored(sess)
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// NextRound handles POST /api/v1/sessions/{code}/next-round
func (h *SessionHandler) NextRound(w http.ResponseWriter, r *http.Request) {
	code := model.SessionCode(mux.Vars(r)["code"])

	sess, err := h.controller.NextRound(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	if b := h.getBroadcaster(); b != nil {
		b.BroadcastNextRoundOpened(sess)
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Scores handles GET /api/v1/sessions/{code}/scores
func (h *SessionHandler) Scores(w http.ResponseWriter, r *http.Request) {
	code := model.SessionCode(mux.Vars(r)["code"])

	scores, err := h.controller.Scores(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Scores{
		Code:   string(code),
		Scores: scores,
	})
}
