package ws_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockgames/loadout-api/internal/handlers/ws"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

// actionsFake answers every request with a success echoing the action
type actionsFake struct{}

func (actionsFake) HandleRequest(_ context.Context, _ int, req *protocol.Request, respond func(*protocol.Response)) {
	respond(protocol.OK(req, "handled "+string(req.ActionType)))
}

// snapshotsFake serves a canned connect-time push
type snapshotsFake struct {
	push *protocol.CachePush
}

func (f *snapshotsFake) CachePush(_ context.Context, _ int) (*protocol.CachePush, error) {
	return f.push, nil
}

type wsFixture struct {
	hub        *ws.Hub
	server     *httptest.Server
	mu         sync.Mutex
	disconnect []int
}

func newFixture(t *testing.T) *wsFixture {
	t.Helper()

	f := &wsFixture{hub: ws.NewHub()}
	handler, err := ws.NewHandler(&ws.Config{
		Hub:     f.hub,
		Actions: actionsFake{},
		Snapshots: &snapshotsFake{push: &protocol.CachePush{
			ValidSlots: map[string][]int{"US": {1, 3}},
		}},
		OnDisconnect: func(playerID int) {
			f.mu.Lock()
			f.disconnect = append(f.disconnect, playerID)
			f.mu.Unlock()
		},
	})
	require.NoError(t, err)

	f.server = httptest.NewServer(handler)
	t.Cleanup(f.server.Close)
	return f
}

func (f *wsFixture) dial(t *testing.T, playerID int) *websocket.Conn {
	t.Helper()
	url := fmt.Sprintf("%s/?playerId=%d",
		"ws"+strings.TrimPrefix(f.server.URL, "http"), playerID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) *protocol.Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	env, err := protocol.DecodeEnvelope(payload)
	require.NoError(t, err)
	return env
}

func TestConnectReceivesCachePush(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, 7)

	env := readEnvelope(t, conn)
	require.Equal(t, protocol.MsgCachePush, env.Type)
	require.NotNil(t, env.CachePush)
	assert.Equal(t, []int{1, 3}, env.CachePush.ValidSlots["US"])
}

func TestRequestResponseRoundTrip(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, 7)
	readEnvelope(t, conn) // connect push

	req := protocol.NewLoadoutRequest(protocol.ActionGetLoadouts, 0, -1)
	payload, err := protocol.EncodeEnvelope(&protocol.Envelope{Type: protocol.MsgRequest, Request: req})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, payload))

	env := readEnvelope(t, conn)
	require.Equal(t, protocol.MsgResponse, env.Type)
	require.NotNil(t, env.Response)
	assert.True(t, env.Response.Success)
	assert.Equal(t, protocol.ActionGetLoadouts, env.Response.Request.ActionType)
}

func TestMalformedMessageIsSkipped(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, 7)
	readEnvelope(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	// the session survives and still answers the next request
	req := protocol.NewLoadoutRequest(protocol.ActionGetLoadouts, 0, -1)
	payload, err := protocol.EncodeEnvelope(&protocol.Envelope{Type: protocol.MsgRequest, Request: req})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, payload))

	env := readEnvelope(t, conn)
	assert.Equal(t, protocol.MsgResponse, env.Type)
}

func TestBroadcastReachesAllClients(t *testing.T) {
	f := newFixture(t)
	first := f.dial(t, 1)
	second := f.dial(t, 2)
	readEnvelope(t, first)
	readEnvelope(t, second)

	f.hub.BroadcastAdminLoadouts([]protocol.LoadoutSummary{
		{SlotID: 0, DisplayName: "Loadout 1: SVD", HasData: true},
	})

	for _, conn := range []*websocket.Conn{first, second} {
		env := readEnvelope(t, conn)
		require.Equal(t, protocol.MsgAdminLoadouts, env.Type)
		require.Len(t, env.AdminLoadouts, 1)
		assert.Equal(t, "Loadout 1: SVD", env.AdminLoadouts[0].DisplayName)
	}
}

func TestDisconnectEvictsPlayerState(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, 9)
	readEnvelope(t, conn)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return len(f.disconnect) == 1 && f.disconnect[0] == 9
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, f.hub.Connected())
}

func TestRejectsMissingPlayerID(t *testing.T) {
	f := newFixture(t)

	url := "ws" + strings.TrimPrefix(f.server.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 400, resp.StatusCode)
}
