package feed

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-arena/internal/element"
	"elemental-arena/internal/event"
	"elemental-arena/internal/utils"
)

type fixedClock struct {
	session string
	now     float64
}

func (c fixedClock) SessionID() string { return c.session }
func (c fixedClock) Now() float64      { return c.now }

func TestEncode(t *testing.T) {
	out, err := Encode(fixedClock{"s-1", 2.5}, event.Event{
		Type: event.WallBroken,
		Data: event.WallData{ID: 7, Element: element.Earth, Position: utils.Vec3{X: 1}, BrokenBy: 9},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"session": "s-1",
		"type": "WallBroken",
		"time": 2.5,
		"data": {"id": 7, "element": "earth", "position": {"x": 1, "y": 0, "z": 0}, "broken_by": 9}
	}`, string(out))

	out, err = Encode(fixedClock{"s-1", 0}, event.Event{Type: event.GameOver})
	require.NoError(t, err)
	assert.JSONEq(t, `{"session": "s-1", "type": "GameOver", "time": 0}`, string(out))
}

func TestHub_BroadcastsToSpectators(t *testing.T) {
	hub := NewHub(fixedClock{"s-2", 1})
	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	hub.OnEvent(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{Player: 1, Projectile: 4, Element: element.Water}})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Session string          `json:"session"`
		Type    string          `json:"type"`
		Time    float64         `json:"time"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "s-2", msg.Session)
	assert.Equal(t, "PlayerHit", msg.Type)
	assert.Equal(t, 1.0, msg.Time)

	var hit event.PlayerHitData
	require.NoError(t, json.Unmarshal(msg.Data, &hit))
	assert.Equal(t, element.Water, hit.Element)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := NewHub(fixedClock{"s-3", 0})
	slow := &client{send: make(chan []byte, 1)}
	hub.register(slow)

	hub.OnEvent(event.Event{Type: event.GameReset})
	assert.Equal(t, 1, hub.Clients())

	// Буфер полон: клиент отключается, тик не блокируется.
	hub.OnEvent(event.Event{Type: event.GameReset})
	assert.Equal(t, 0, hub.Clients())

	_, ok := <-slow.send
	assert.True(t, ok, "buffered message is still delivered")
	_, ok = <-slow.send
	assert.False(t, ok, "channel closed after drop")

	hub.unregister(slow)
}
