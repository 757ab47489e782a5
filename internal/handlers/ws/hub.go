// Package ws implements the websocket transport: one connection per
// player, requests client-to-server, responses and pushes server-to-owner,
// and the admin-loadout broadcast to every connected client.
package ws

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/paddockgames/loadout-api/internal/protocol"
)

// sendBuffer bounds per-session outbound queueing; a client that cannot
// drain this many frames is disconnected as a slow consumer
const sendBuffer = 32

// session is one player's connection with its outbound write pump.
// gorilla connections do not allow concurrent writers, so every outbound
// frame goes through the send channel.
type session struct {
	playerID int
	conn     *websocket.Conn
	send     chan []byte
	once     sync.Once
	done     chan struct{}
}

func newSession(playerID int, conn *websocket.Conn) *session {
	return &session{
		playerID: playerID,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		done:     make(chan struct{}),
	}
}

// writePump drains the send channel onto the connection until the
// session closes or a write fails
func (s *session) writePump() {
	for {
		select {
		case data := <-s.send:
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.close()
				return
			}
		case <-s.done:
			return
		}
	}
}

// enqueue queues one frame, reporting false when the session is closed
// or the buffer is full
func (s *session) enqueue(data []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.send <- data:
		return true
	default:
		return false
	}
}

func (s *session) close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

// Hub tracks connected players and delivers server-to-client messages.
// It implements the action layer's Publisher.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int]*session
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{sessions: make(map[int]*session)}
}

// attach registers a connection for a player, displacing any prior one.
// A second connection for the same player closes the first; the game
// allows one editor session per client.
func (h *Hub) attach(playerID int, conn *websocket.Conn) *session {
	s := newSession(playerID, conn)

	h.mu.Lock()
	prior := h.sessions[playerID]
	h.sessions[playerID] = s
	h.mu.Unlock()

	if prior != nil {
		prior.close()
	}

	go s.writePump()
	return s
}

// detach removes a player's session if it is still the registered one
func (h *Hub) detach(s *session) {
	h.mu.Lock()
	if h.sessions[s.playerID] == s {
		delete(h.sessions, s.playerID)
	}
	h.mu.Unlock()
	s.close()
}

// Connected returns the number of attached players
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// sendTo encodes and queues an envelope for one player, dropping the
// session on encode failure or backpressure
func (h *Hub) sendTo(playerID int, env *protocol.Envelope) {
	h.mu.RLock()
	s, ok := h.sessions[playerID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	data, err := protocol.EncodeEnvelope(env)
	if err != nil {
		slog.Warn("failed to encode envelope", "player_id", playerID, "error", err)
		return
	}

	if !s.enqueue(data) {
		slog.Warn("dropping slow websocket session", "player_id", playerID)
		h.detach(s)
	}
}

// SendResponse delivers a correlated action response to its owner
func (h *Hub) SendResponse(playerID int, resp *protocol.Response) {
	h.sendTo(playerID, &protocol.Envelope{Type: protocol.MsgResponse, Response: resp})
}

// PushCache implements the Publisher full-snapshot push
func (h *Hub) PushCache(playerID int, push *protocol.CachePush) {
	h.sendTo(playerID, &protocol.Envelope{Type: protocol.MsgCachePush, CachePush: push})
}

// PushSlotUpdate implements the Publisher single-slot push
func (h *Hub) PushSlotUpdate(playerID int, update *protocol.SlotUpdate) {
	h.sendTo(playerID, &protocol.Envelope{Type: protocol.MsgSlotUpdate, SlotUpdate: update})
}

// BroadcastAdminLoadouts implements the Publisher broadcast to every
// connected client
func (h *Hub) BroadcastAdminLoadouts(summaries []protocol.LoadoutSummary) {
	env := &protocol.Envelope{Type: protocol.MsgAdminLoadouts, AdminLoadouts: summaries}
	data, err := protocol.EncodeEnvelope(env)
	if err != nil {
		slog.Warn("failed to encode admin broadcast", "error", err)
		return
	}

	h.mu.RLock()
	sessions := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		if !s.enqueue(data) {
			slog.Warn("dropping slow websocket session", "player_id", s.playerID)
			h.detach(s)
		}
	}
}
