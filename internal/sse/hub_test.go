package sse

import (
	"testing"
	"time"

	"github.com/rpsgame/rpsgame-go/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "commit_received",
			data:      `{"name":"alice"}`,
			expected:  "event: commit_received\ndata: {\"name\":\"alice\"}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "round_scored",
			data:      "line1\nline2",
			expected:  "event: round_scored\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := NewHub("ABC123", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)

	hub.BroadcastEvent("commit_received", "payload")

	select {
	case msg := <-client.send:
		expected := "event: commit_received\ndata: payload\n\n"
		if string(msg) != expected {
			t.Errorf("got %q, want %q", string(msg), expected)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub("ABC123", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)
	hub.Unregister(client)

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestHubManagerGetOrCreate(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	hub1 := manager.GetOrCreateHub("ABC123")
	hub2 := manager.GetOrCreateHub("ABC123")
	if hub1 != hub2 {
		t.Error("expected the same hub for the same session code")
	}

	if manager.GetHub("OTHER1") != nil {
		t.Error("expected nil hub for unknown session")
	}

	hub3 := manager.GetOrCreateHub("OTHER1")
	if hub3 == hub1 {
		t.Error("expected distinct hubs for distinct sessions")
	}
}

func TestHubManagerCloseHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	manager.GetOrCreateHub("ABC123")
	manager.CloseHub("ABC123")

	if manager.GetHub("ABC123") != nil {
		t.Error("expected hub to be removed after close")
	}
}
