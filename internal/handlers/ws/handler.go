package ws

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

// Actions is the request entry point of the action orchestrator
type Actions interface {
	HandleRequest(ctx context.Context, playerID int, req *protocol.Request, respond func(*protocol.Response))
}

// Snapshots builds the connect-time prediction cache push
type Snapshots interface {
	CachePush(ctx context.Context, playerID int) (*protocol.CachePush, error)
}

// Config holds the dependencies for the websocket handler
type Config struct {
	Hub       *Hub
	Actions   Actions
	Snapshots Snapshots
	// OnDisconnect evicts per-player server state (loadout cache,
	// pending respawn entries) when the connection drops
	OnDisconnect func(playerID int)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Hub == nil {
		vb.InvalidField("Hub", "is required")
	}
	if c.Actions == nil {
		vb.InvalidField("Actions", "is required")
	}
	if c.Snapshots == nil {
		vb.InvalidField("Snapshots", "is required")
	}

	return vb.Build()
}

// Handler upgrades player connections and runs their read loops
type Handler struct {
	hub          *Hub
	actions      Actions
	snapshots    Snapshots
	onDisconnect func(playerID int)
	upgrader     websocket.Upgrader
}

// NewHandler creates a websocket handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		hub:          cfg.Hub,
		actions:      cfg.Actions,
		snapshots:    cfg.Snapshots,
		onDisconnect: cfg.OnDisconnect,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// the game host terminates auth before this handler
				return true
			},
		},
	}, nil
}

// ServeHTTP upgrades the connection and serves the player session until
// the connection drops
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(r.URL.Query().Get("playerId"))
	if err != nil {
		http.Error(w, "missing or invalid playerId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "player_id", playerID, "error", err)
		return
	}

	h.serve(r.Context(), playerID, conn)
}

func (h *Handler) serve(ctx context.Context, playerID int, conn *websocket.Conn) {
	s := h.hub.attach(playerID, conn)
	defer func() {
		h.hub.detach(s)
		if h.onDisconnect != nil {
			h.onDisconnect(playerID)
		}
	}()

	slog.InfoContext(ctx, "player connected", "player_id", playerID)

	// connect-time snapshot so the deploy screen has validity data
	// before the player opens the editor
	if push, err := h.snapshots.CachePush(ctx, playerID); err != nil {
		slog.WarnContext(ctx, "failed to build connect snapshot",
			"player_id", playerID, "error", err)
	} else {
		h.hub.PushCache(playerID, push)
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			slog.InfoContext(ctx, "player disconnected", "player_id", playerID)
			return
		}

		env, err := protocol.DecodeEnvelope(payload)
		if err != nil {
			slog.WarnContext(ctx, "discarding malformed message",
				"player_id", playerID, "error", err)
			continue
		}
		if env.Type != protocol.MsgRequest {
			slog.WarnContext(ctx, "unexpected message type from client",
				"player_id", playerID, "type", env.Type)
			continue
		}

		h.actions.HandleRequest(ctx, playerID, env.Request, func(resp *protocol.Response) {
			h.hub.SendResponse(playerID, resp)
		})
	}
}
