package action

import (
	"context"
	"log/slog"

	"github.com/paddockgames/loadout-api/internal/engine"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

// Storage mutation handlers. The validation order is fixed: resolve
// references, gate rank, gate supplies, then hand off to the inventory
// subsystem. The completion callback owns the response from that point.

func (o *Orchestrator) handleAddItem(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	if req.Prefab == "" {
		reply(protocol.Fail(req, "No item selected."))
		return
	}

	storage, _, msg := o.resolveSlot(req)
	if msg != "" {
		reply(protocol.Fail(req, msg))
		return
	}

	charged, msg := o.charge(ctx, playerID, req.ArsenalEntityID, req.Prefab)
	if msg != "" {
		reply(protocol.Fail(req, msg))
		return
	}

	o.inventory.InsertItem(ctx, storage, req.StorageSlotID, req.Prefab, func(err error) {
		if err != nil {
			slog.WarnContext(ctx, "item insert failed",
				"player_id", playerID, "prefab", req.Prefab, "error", err)
			o.rollback(ctx, req.ArsenalEntityID, charged)
			reply(protocol.Fail(req, "Could not add item."))
			return
		}
		reply(protocol.OK(req, "Item added."))
	})
}

func (o *Orchestrator) handleRemoveItem(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	storage, slot, msg := o.resolveSlot(req)
	if msg != "" {
		reply(protocol.Fail(req, msg))
		return
	}

	removed := slot.AttachedPrefab()
	if removed == "" {
		reply(protocol.Fail(req, "Slot is already empty."))
		return
	}

	o.inventory.DeleteItem(ctx, storage, req.StorageSlotID, func(err error) {
		if err != nil {
			slog.WarnContext(ctx, "item delete failed",
				"player_id", playerID, "prefab", removed, "error", err)
			reply(protocol.Fail(req, "Could not remove item."))
			return
		}
		o.refundRemoved(ctx, req.ArsenalEntityID, removed)
		reply(protocol.OK(req, "Item removed."))
	})
}

// handleReplaceItem chains delete-then-insert through completion
// callbacks. A failure between the two leaves the slot empty, which is
// the intended fail-safe: an open slot, never a duplicated item.
func (o *Orchestrator) handleReplaceItem(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	if req.Prefab == "" {
		reply(protocol.Fail(req, "No item selected."))
		return
	}

	storage, slot, msg := o.resolveSlot(req)
	if msg != "" {
		reply(protocol.Fail(req, msg))
		return
	}

	removed := slot.AttachedPrefab()
	if removed == "" {
		// nothing to replace, degrade to a plain add
		o.handleAddItem(ctx, playerID, req, reply)
		return
	}

	charged, msg := o.charge(ctx, playerID, req.ArsenalEntityID, req.Prefab)
	if msg != "" {
		reply(protocol.Fail(req, msg))
		return
	}

	o.inventory.DeleteItem(ctx, storage, req.StorageSlotID, func(err error) {
		if err != nil {
			slog.WarnContext(ctx, "replace delete phase failed",
				"player_id", playerID, "prefab", removed, "error", err)
			o.rollback(ctx, req.ArsenalEntityID, charged)
			reply(protocol.Fail(req, "Could not replace item."))
			return
		}

		o.refundRemoved(ctx, req.ArsenalEntityID, removed)

		o.inventory.InsertItem(ctx, storage, req.StorageSlotID, req.Prefab, func(err error) {
			if err != nil {
				slog.WarnContext(ctx, "replace insert phase failed, slot left empty",
					"player_id", playerID, "prefab", req.Prefab, "error", err)
				o.rollback(ctx, req.ArsenalEntityID, charged)
				reply(protocol.Fail(req, "Could not place the new item."))
				return
			}
			reply(protocol.OK(req, "Item replaced."))
		})
	})
}

// handleChangeIdentity swaps a visual or sound identity. The requested
// identity is re-validated against the faction's roster; the client's
// picker reads the same listing, but it is never trusted.
func (o *Orchestrator) handleChangeIdentity(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response), list func(string) ([]engine.Identity, error), apply func(context.Context, engine.Entity, string) error) {
	if req.Prefab == "" {
		reply(protocol.Fail(req, "No identity selected."))
		return
	}

	entity, ok := o.players.ControlledEntity(playerID)
	if !ok || !entity.Valid() {
		reply(protocol.Fail(req, "No character to change."))
		return
	}

	factionKey, err := o.players.FactionKey(playerID)
	if err != nil {
		reply(protocol.Fail(req, "Could not change identity."))
		return
	}
	identities, err := list(factionKey)
	if err != nil {
		slog.WarnContext(ctx, "identity listing failed",
			"player_id", playerID, "faction", factionKey, "error", err)
		reply(protocol.Fail(req, "Could not change identity."))
		return
	}
	if !identityOffered(identities, req.Prefab) {
		reply(protocol.Fail(req, "That identity is not available to your faction."))
		return
	}

	if err := apply(ctx, entity, req.Prefab); err != nil {
		slog.WarnContext(ctx, "identity change failed",
			"player_id", playerID, "identity", req.Prefab, "error", err)
		reply(protocol.Fail(req, "Could not change identity."))
		return
	}

	reply(protocol.OK(req, "Identity changed."))
}

// identityOffered reports whether the roster contains the requested
// identity, matched by name or body prefab.
func identityOffered(identities []engine.Identity, requested string) bool {
	for _, id := range identities {
		if id.Name == requested || id.BodyPrefab == requested {
			return true
		}
	}
	return false
}
