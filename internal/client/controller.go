// Package client implements the editor-side controller used by the debug
// client: it serializes requests against a single connection, keeps the
// local prediction cache current from server pushes, and tracks the
// shared admin loadout list.
package client

import (
	"context"
	"sync"

	"github.com/paddockgames/loadout-api/internal/clientcache"
	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

// Transport sends one envelope to the server
type Transport interface {
	Send(env *protocol.Envelope) error
}

// Controller owns the client end of the action protocol. The protocol
// carries no per-request correlation beyond the echoed request, so only
// one request may be outstanding at a time; while one is in flight the
// controller reports itself busy and rejects further requests.
type Controller struct {
	transport Transport

	mu      sync.Mutex
	waiting bool
	respCh  chan *protocol.Response

	cache *clientcache.Cache
	admin []protocol.LoadoutSummary
}

// Config holds the controller dependencies
type Config struct {
	Transport Transport
}

// Validate checks required fields
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Transport == nil {
		vb.InvalidField("transport", "is required")
	}
	return vb.Build()
}

// New creates a controller with an empty, optimistic prediction cache
func New(cfg *Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		transport: cfg.Transport,
		cache:     clientcache.New(),
	}, nil
}

// Cache returns the controller's prediction cache
func (c *Controller) Cache() *clientcache.Cache {
	return c.cache
}

// Waiting reports whether a request is outstanding
func (c *Controller) Waiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waiting
}

// AdminLoadouts returns the last broadcast admin loadout list
func (c *Controller) AdminLoadouts() []protocol.LoadoutSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]protocol.LoadoutSummary, len(c.admin))
	copy(out, c.admin)
	return out
}

// Do sends one request and blocks until its response arrives or ctx is
// done. A second Do while one is outstanding fails immediately rather
// than queueing, mirroring the UI's disabled-input waiting state.
func (c *Controller) Do(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	c.mu.Lock()
	if c.waiting {
		c.mu.Unlock()
		return nil, errors.FailedPrecondition("a request is already outstanding")
	}
	respCh := make(chan *protocol.Response, 1)
	c.waiting = true
	c.respCh = respCh
	c.mu.Unlock()

	err := c.transport.Send(&protocol.Envelope{Type: protocol.MsgRequest, Request: req})
	if err != nil {
		c.clearWaiting()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to send request")
	}

	select {
	case resp := <-respCh:
		return resp, nil
	case <-ctx.Done():
		c.clearWaiting()
		return nil, errors.WrapWithCode(ctx.Err(), errors.CodeUnavailable, "request timed out")
	}
}

func (c *Controller) clearWaiting() {
	c.mu.Lock()
	c.waiting = false
	c.respCh = nil
	c.mu.Unlock()
}

// HandleEnvelope dispatches one server message. The read loop calls this
// for every frame; unknown frames are ignored.
func (c *Controller) HandleEnvelope(env *protocol.Envelope) {
	switch env.Type {
	case protocol.MsgResponse:
		c.mu.Lock()
		ch := c.respCh
		c.waiting = false
		c.respCh = nil
		c.mu.Unlock()
		if ch != nil && env.Response != nil {
			ch <- env.Response
		}
	case protocol.MsgCachePush:
		if env.CachePush != nil {
			c.cache.ApplyPush(env.CachePush)
		}
	case protocol.MsgSlotUpdate:
		if env.SlotUpdate != nil {
			c.cache.ApplySlotUpdate(env.SlotUpdate)
		}
	case protocol.MsgAdminLoadouts:
		c.mu.Lock()
		c.admin = env.AdminLoadouts
		c.mu.Unlock()
	}
}
