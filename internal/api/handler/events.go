package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rpsgame/rpsgame-go/internal/model"
	"github.com/rpsgame/rpsgame-go/internal/services/session"
	"github.com/rpsgame/rpsgame-go/internal/sse"
)

// EventsHandler streams session events over SSE
type EventsHandler struct {
	controller *session.Controller
	hubManager *sse.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(controller *session.Controller, hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{
		controller: controller,
		hubManager: hubManager,
	}
}

// Stream handles GET /api/v1/sessions/{code}/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	code := model.SessionCode(mux.Vars(r)["code"])

	// Reject streams for sessions that don't exist
	if _, err := h.controller.GetSession(r.Context(), code); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(code)
	sse.ServeSSE(w, r, hub)
}
