package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibeplace/vibeplace/internal/engine"
)

func TestWebSocketHubBroadcastProgress(t *testing.T) {
	hub := NewWebSocketHub(nil)
	go hub.Run()
	defer hub.Stop()

	client := &MockClient{SendChan: make(chan []byte, 8)}
	hub.Register(client)

	hub.BroadcastProgress("req-1", engine.ProgressEvent{
		PlaceID: "p1",
		Name:    "The Spot",
		Stage:   "scored",
		Score:   0.72,
	})

	select {
	case data := <-client.SendChan:
		var msg ProgressMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "progress", msg.Type)
		assert.Equal(t, "req-1", msg.RequestID)
		assert.Equal(t, "p1", msg.Event.PlaceID)
		assert.Equal(t, "scored", msg.Event.Stage)
		assert.Equal(t, 0.72, msg.Event.Score)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestWebSocketHubUnregister(t *testing.T) {
	hub := NewWebSocketHub(nil)
	go hub.Run()
	defer hub.Stop()

	client := &MockClient{SendChan: make(chan []byte, 1)}
	hub.Register(client)
	hub.Unregister(client)

	// The hub closes the send channel on unregister.
	select {
	case _, ok := <-client.SendChan:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
