package spectate_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/plus3/blockfall/spectate"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandom struct{}

func (fixedRandom) IntN(n int) int { return n - 1 }

func newServer(t *testing.T) (*spectate.Hub, string) {
	t.Helper()
	hub := spectate.NewHub(zerolog.Nop())
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) tetris.Snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var s tetris.Snapshot
	require.NoError(t, conn.ReadJSON(&s))
	return s
}

func startedGame() *tetris.Game {
	g := tetris.NewGame(tetris.WithRandom(fixedRandom{}))
	g.Start()
	return g
}

func TestHubSendsLatestOnConnect(t *testing.T) {
	hub, url := newServer(t)
	game := startedGame()

	require.NoError(t, hub.Broadcast(game.Snapshot(3)))

	conn := dial(t, url)
	s := readSnapshot(t, conn)

	assert.Equal(t, tetris.PieceI, s.PieceType)
	assert.Equal(t, []tetris.PieceType{tetris.PieceL, tetris.PieceJ, tetris.PieceO}, s.Next)
	assert.Equal(t, 10, s.Columns)
	assert.Equal(t, "running", s.State)
}

func TestHubBroadcast(t *testing.T) {
	hub, url := newServer(t)
	game := startedGame()

	a := dial(t, url)
	b := dial(t, url)
	assert.Eventually(t, func() bool { return hub.Len() == 2 }, time.Second, 5*time.Millisecond)

	game.HardDrop()
	require.NoError(t, hub.Broadcast(game.Snapshot(1)))

	for _, conn := range []*websocket.Conn{a, b} {
		s := readSnapshot(t, conn)
		assert.Equal(t, tetris.PieceL, s.PieceType)
		assert.Equal(t, tetris.Cell(5), s.Grid[19][4])
	}
}

func TestHubDropsDisconnectedClient(t *testing.T) {
	hub, url := newServer(t)

	conn := dial(t, url)
	assert.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 5*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 5*time.Millisecond)

	assert.NoError(t, hub.Broadcast(startedGame().Snapshot(0)))
}

func TestHubIgnoresInbound(t *testing.T) {
	hub, url := newServer(t)
	game := startedGame()

	conn := dial(t, url)
	assert.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`"HardDrop"`)))
	require.NoError(t, hub.Broadcast(game.Snapshot(0)))

	s := readSnapshot(t, conn)
	assert.Equal(t, 0, s.Position.Y)
	assert.Equal(t, 1, hub.Len())
}

func TestHubClose(t *testing.T) {
	hub, url := newServer(t)

	conn := dial(t, url)
	assert.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.Close())
	assert.Zero(t, hub.Len())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	_, _, err = websocket.DefaultDialer.Dial(url, nil)
	assert.ErrorIs(t, err, websocket.ErrBadHandshake)
}
