package web

import (
	"encoding/json"
	"testing"
	"time"

	"propsTracker/models"
)

func waitFor(t *testing.T, check func() bool, message string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !check() {
		if time.Now().After(deadline) {
			t.Fatal(message)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcastsRefreshedBets(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.register <- client

	hub.BroadcastRefresh([]models.Bet{{ID: "bet-1", UserID: "user-1"}})

	select {
	case raw := <-client.send:
		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal broadcast: %v", err)
		}
		if msg.Type != "bets_refreshed" {
			t.Errorf("expected bets_refreshed, got %q", msg.Type)
		}
		if msg.UserID != "user-1" {
			t.Errorf("expected user-1, got %q", msg.UserID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("client never received the broadcast")
	}
}

func TestHubFiltersByUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	subscribed := &Client{hub: hub, send: make(chan []byte, 4), userIDs: map[string]bool{"user-1": true}}
	other := &Client{hub: hub, send: make(chan []byte, 4), userIDs: map[string]bool{"user-2": true}}
	hub.register <- subscribed
	hub.register <- other

	hub.BroadcastRefresh([]models.Bet{{ID: "bet-1", UserID: "user-1"}})

	select {
	case <-subscribed.send:
	case <-time.After(2 * time.Second):
		t.Fatal("subscribed client never received the broadcast")
	}

	select {
	case <-other.send:
		t.Fatal("client subscribed to another user received the broadcast")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubDropsStalledClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	healthy := &Client{hub: hub, send: make(chan []byte, 4)}
	stalled := &Client{hub: hub, send: make(chan []byte)} // nothing ever reads
	hub.register <- healthy
	hub.register <- stalled

	hub.BroadcastRefresh([]models.Bet{{ID: "bet-1", UserID: "user-1"}})

	select {
	case <-healthy.send:
	case <-time.After(2 * time.Second):
		t.Fatal("healthy client never received the broadcast")
	}

	waitFor(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		_, ok := hub.clients[stalled]
		return !ok
	}, "stalled client was not dropped")

	select {
	case _, open := <-stalled.send:
		if open {
			t.Fatal("expected stalled client's channel closed, got a message")
		}
	default:
		t.Fatal("expected stalled client's channel closed")
	}
}
