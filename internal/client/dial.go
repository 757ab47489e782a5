package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

// Conn is a live connection to the loadout server: a websocket transport
// plus the controller fed by its read loop.
type Conn struct {
	conn       *websocket.Conn
	controller *Controller
	done       chan struct{}
}

// Dial connects to addr (host:port) as the given player and starts the
// read loop. Close the returned Conn when finished.
func Dial(ctx context.Context, addr string, playerID int) (*Conn, error) {
	url := fmt.Sprintf("ws://%s/?playerId=%d", addr, playerID)
	wsConn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to loadout server")
	}

	c := &Conn{conn: wsConn, done: make(chan struct{})}
	controller, err := New(&Config{Transport: c})
	if err != nil {
		_ = wsConn.Close()
		return nil, err
	}
	c.controller = controller

	go c.readLoop(ctx)
	return c, nil
}

// Controller returns the connection's request controller
func (c *Conn) Controller() *Controller {
	return c.controller
}

// Done is closed when the read loop exits
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Close tears down the websocket
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Send implements Transport
func (c *Conn) Send(env *protocol.Envelope) error {
	payload, err := protocol.EncodeEnvelope(env)
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *Conn) readLoop(ctx context.Context) {
	defer close(c.done)
	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		env, err := protocol.DecodeEnvelope(payload)
		if err != nil {
			slog.WarnContext(ctx, "dropping malformed server message", "error", err.Error())
			continue
		}
		c.controller.HandleEnvelope(env)
	}
}
