package sse

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rpsgame/rpsgame-go/internal/commitment"
	"github.com/rpsgame/rpsgame-go/internal/model"
	"github.com/rpsgame/rpsgame-go/internal/testutil"
)

func receiveEvent(t *testing.T, client *Client) string {
	t.Helper()
	select {
	case msg := <-client.send:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func testSession() *model.Session {
	return &model.Session{
		Code:  "ABC123",
		State: model.SessionStateCommitting,
		Round: 1,
		Players: []model.PlayerEntry{
			{
				Name:       "alice",
				Commitment: commitment.Commit("rock", "abhi"),
				Phase:      model.PhaseAwaitingReveal,
			},
		},
		Scores: map[string]int{"alice": 0},
	}
}

func TestBroadcastCommitReceivedEchoesDigest(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("ABC123")
	client := NewClient(hub)
	hub.Register(client)

	broadcaster.BroadcastCommitReceived(testSession(), "alice")

	msg := receiveEvent(t, client)
	if !strings.HasPrefix(msg, "event: commit_received\n") {
		t.Errorf("unexpected event framing: %q", msg)
	}

	// The audit echo must contain the exact digest that was committed
	data := strings.TrimSuffix(strings.TrimPrefix(msg, "event: commit_received\ndata: "), "\n\n")
	var event model.Event
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		t.Fatalf("event payload is not valid JSON: %v", err)
	}
	if event.Type != model.EventCommitReceived {
		t.Errorf("got event type %q", event.Type)
	}
	if !strings.Contains(data, commitment.Commit("rock", "abhi").String()) {
		t.Errorf("expected commitment digest in payload: %s", data)
	}
}

func TestBroadcastToSessionWithoutHubIsNoOp(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	// No hub exists for this session; must not panic
	broadcaster.BroadcastPlayerJoined(testSession(), "alice")
	broadcaster.BroadcastRoundScored(testSession())
}

func TestBroadcastRoundScored(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("ABC123")
	client := NewClient(hub)
	hub.Register(client)

	session := testSession()
	session.Scores = map[string]int{"alice": 1, "bob": 0}
	session.Rounds = []model.RoundSummary{
		{
			Number:  1,
			Winner:  "alice",
			Choices: map[string]model.Choice{"alice": model.ChoiceRock, "bob": model.ChoiceScissors},
			Deltas:  map[string]int{"alice": 1, "bob": 0},
		},
	}

	broadcaster.BroadcastRoundScored(session)

	msg := receiveEvent(t, client)
	if !strings.HasPrefix(msg, "event: round_scored\n") {
		t.Errorf("unexpected event framing: %q", msg)
	}
	if !strings.Contains(msg, `"winner":"alice"`) {
		t.Errorf("expected winner in payload: %q", msg)
	}
}
