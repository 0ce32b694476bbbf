package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubRoomLifecycle(t *testing.T) {
	h := NewHub()

	h.join("ws-1", nil)
	h.join("ws-1", nil)
	assert.Len(t, h.rooms["ws-1"], 1)

	h.leave("ws-1", nil)
	// empty rooms are reclaimed
	assert.NotContains(t, h.rooms, "ws-1")

	// leaving a room never joined is a no-op
	h.leave("ws-2", nil)
	assert.Empty(t, h.rooms)
}

func TestBroadcastUnknownRoom(t *testing.T) {
	h := NewHub()
	// no subscribers, nothing to write, must not panic
	h.Broadcast("ws-1", map[string]string{"content": "bonjour"})
}

func TestBroadcastUnmarshalablePayload(t *testing.T) {
	h := NewHub()
	h.join("ws-1", nil)
	// channels cannot be serialized; the broadcast is dropped before any write
	h.Broadcast("ws-1", make(chan int))
}
