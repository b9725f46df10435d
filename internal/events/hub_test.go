package events

import (
	"encoding/json"
	"testing"
	"time"

	"notes-server/internal/domain"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub) *Client {
	// No conn and no pumps: the hub only ever touches the send channel.
	return &Client{hub: hub, send: make(chan []byte, 8)}
}

func receive(t *testing.T, c *Client) *Event {
	t.Helper()
	select {
	case raw := <-c.send:
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		return &event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestHub_BroadcastsToAllClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	first := newTestClient(hub)
	second := newTestClient(hub)
	hub.register <- first
	hub.register <- second

	hub.NoteCreated(&domain.NoteResponse{ID: "507f1f77bcf86cd799439011", Title: "Groceries"})

	for _, c := range []*Client{first, second} {
		event := receive(t, c)
		assert.Equal(t, TypeNoteCreated, event.Type)
		require.NotNil(t, event.Note)
		assert.Equal(t, "Groceries", event.Note.Title)
	}
}

func TestHub_DeleteEventCarriesID(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	c := newTestClient(hub)
	hub.register <- c

	hub.NoteDeleted("507f1f77bcf86cd799439011")

	event := receive(t, c)
	assert.Equal(t, TypeNoteDeleted, event.Type)
	assert.Equal(t, "507f1f77bcf86cd799439011", event.ID)
	assert.Nil(t, event.Note)
}

func TestHub_UnregisteredClientStopsReceiving(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	c := newTestClient(hub)
	hub.register <- c
	hub.unregister <- c

	// The send channel is closed on unregister.
	select {
	case _, ok := <-c.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
