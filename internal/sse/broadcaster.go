package sse

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/rpsgame/rpsgame-go/internal/model"
)

// Broadcaster publishes protocol events to a session's SSE clients as JSON.
// Commitment digests are broadcast as received so spectators can audit that
// later reveals are checked against what was originally locked in.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// broadcastEvent serialises and sends an event to the session's hub, if any
func (b *Broadcaster) broadcastEvent(code model.SessionCode, eventType model.EventType, playerName string, payload any) {
	hub := b.hubManager.GetHub(code)
	if hub == nil {
		return
	}

	event := model.Event{
		Type:        eventType,
		Timestamp:   time.Now(),
		SessionCode: code,
		PlayerName:  playerName,
		Payload:     payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("sse failed to marshal event",
			slog.String("session", string(code)),
			slog.String("event", string(eventType)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(eventType), string(data))
}

// BroadcastPlayerJoined announces a new roster member
func (b *Broadcaster) BroadcastPlayerJoined(session *model.Session, name string) {
	b.broadcastEvent(session.Code, model.EventPlayerJoined, name, model.PlayerJoinedPayload{
		Name:        name,
		PlayerCount: len(session.Players),
	})
}

// BroadcastCommitReceived echoes a player's commitment digest for audit
func (b *Broadcaster) BroadcastCommitReceived(session *model.Session, name string) {
	player := session.GetPlayer(name)
	if player == nil {
		return
	}
	b.broadcastEvent(session.Code, model.EventCommitReceived, name, model.CommitReceivedPayload{
		Name:       name,
		Commitment: player.Commitment.String(),
		Round:      session.Round,
	})
}

// BroadcastRevealsOpened announces that all commitments are in
func (b *Broadcaster) BroadcastRevealsOpened(session *model.Session) {
	b.broadcastEvent(session.Code, model.EventRevealsOpened, "", model.RevealsOpenedPayload{
		Round:       session.Round,
		PlayerCount: len(session.Players),
	})
}

// BroadcastChoiceRevealed announces a verified reveal
func (b *Broadcaster) BroadcastChoiceRevealed(session *model.Session, name string) {
	player := session.GetPlayer(name)
	if player == nil {
		return
	}
	b.broadcastEvent(session.Code, model.EventChoiceRevealed, name, model.ChoiceRevealedPayload{
		Name:   name,
		Choice: player.Choice,
		Round:  session.Round,
	})
}

// BroadcastRoundScored announces the resolved round and updated score table
func (b *Broadcaster) BroadcastRoundScored(session *model.Session) {
	if len(session.Rounds) == 0 {
		return
	}
	round := session.Rounds[len(session.Rounds)-1]
	b.broadcastEvent(session.Code, model.EventRoundScored, "", model.RoundScoredPayload{
		Round:  round.Number,
		Winner: round.Winner,
		Deltas: round.Deltas,
		Scores: session.Scores,
	})
}

// BroadcastNextRoundOpened announces a fresh commit phase
func (b *Broadcaster) BroadcastNextRoundOpened(session *model.Session) {
	b.broadcastEvent(session.Code, model.EventNextRoundOpened, "", model.NextRoundOpenedPayload{
		Round: session.Round,
	})
}
