package action

import (
	"context"
	"log/slog"

	"github.com/paddockgames/loadout-api/internal/errors"
	loadoutstore "github.com/paddockgames/loadout-api/internal/orchestrators/loadouts"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

// Saved-loadout handlers. Mutating actions answer with the refreshed
// list payload so the client re-renders without a second round trip,
// and feed the owner's prediction cache through the publisher.

func (o *Orchestrator) handleGetLoadouts(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	output, err := o.store.List(ctx, &loadoutstore.ListInput{PlayerID: playerID})
	if err != nil {
		reply(protocol.Fail(req, "Could not load your loadouts."))
		return
	}
	o.replyWithSummaries(req, reply, output.Summaries)
}

func (o *Orchestrator) handleSaveLoadout(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	output, err := o.store.Save(ctx, &loadoutstore.SaveInput{
		PlayerID:  playerID,
		SlotIndex: req.LoadoutSlotID,
	})
	if err != nil {
		reply(protocol.Fail(req, saveFailureMessage(err)))
		return
	}

	o.publisher.PushSlotUpdate(playerID, &protocol.SlotUpdate{
		FactionKey: output.FactionKey,
		SlotIndex:  req.LoadoutSlotID,
		Valid:      output.Record.HasData(),
	})
	o.pushCache(ctx, playerID)

	o.replyWithList(ctx, playerID, req, reply, "Loadout saved.")
}

func (o *Orchestrator) handleClearLoadout(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	output, err := o.store.Clear(ctx, &loadoutstore.ClearInput{
		PlayerID:  playerID,
		SlotIndex: req.LoadoutSlotID,
	})
	if err != nil {
		reply(protocol.Fail(req, saveFailureMessage(err)))
		return
	}

	o.publisher.PushSlotUpdate(playerID, &protocol.SlotUpdate{
		FactionKey: output.FactionKey,
		SlotIndex:  req.LoadoutSlotID,
		Valid:      false,
	})
	o.pushCache(ctx, playerID)

	o.replyWithList(ctx, playerID, req, reply, "Loadout cleared.")
}

func (o *Orchestrator) handleApplyLoadout(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	output, err := o.store.Get(ctx, &loadoutstore.GetInput{
		PlayerID:  playerID,
		SlotIndex: req.LoadoutSlotID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			reply(protocol.Fail(req, "That slot holds no loadout."))
			return
		}
		reply(protocol.Fail(req, "Could not load that slot."))
		return
	}

	if err := o.applier.RequestApply(ctx, playerID, output.FactionKey, output.Record); err != nil {
		slog.WarnContext(ctx, "loadout application staging failed",
			"player_id", playerID, "slot", req.LoadoutSlotID, "error", err)
		reply(protocol.Fail(req, "Could not apply the loadout."))
		return
	}

	reply(protocol.OK(req, "Applying loadout."))
}

func (o *Orchestrator) handleGetAdminLoadouts(ctx context.Context, req *protocol.Request, reply func(*protocol.Response)) {
	summaries, err := o.store.ListAdmin(ctx)
	if err != nil {
		reply(protocol.Fail(req, "Could not load admin loadouts."))
		return
	}
	o.replyWithSummaries(req, reply, summaries)
}

func (o *Orchestrator) handleSaveAdminLoadout(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	_, err := o.store.SaveAdmin(ctx, &loadoutstore.SaveAdminInput{
		PlayerID:  playerID,
		SlotIndex: req.LoadoutSlotID,
	})
	if err != nil {
		reply(protocol.Fail(req, saveFailureMessage(err)))
		return
	}

	o.broadcastAdmin(ctx)
	o.replyWithAdminList(ctx, req, reply)
}

func (o *Orchestrator) handleClearAdminLoadout(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	_, err := o.store.ClearAdmin(ctx, &loadoutstore.ClearAdminInput{
		PlayerID:  playerID,
		SlotIndex: req.LoadoutSlotID,
	})
	if err != nil {
		reply(protocol.Fail(req, saveFailureMessage(err)))
		return
	}

	o.broadcastAdmin(ctx)
	o.replyWithAdminList(ctx, req, reply)
}

func (o *Orchestrator) handleApplyAdminLoadout(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response)) {
	rec, err := o.store.GetAdmin(ctx, req.LoadoutSlotID)
	if err != nil {
		if errors.IsNotFound(err) {
			reply(protocol.Fail(req, "That slot holds no loadout."))
			return
		}
		reply(protocol.Fail(req, "Could not load that slot."))
		return
	}

	factionKey, err := o.players.FactionKey(playerID)
	if err != nil {
		reply(protocol.Fail(req, "Could not resolve your faction."))
		return
	}

	if err := o.applier.RequestApply(ctx, playerID, factionKey, rec); err != nil {
		slog.WarnContext(ctx, "admin loadout application staging failed",
			"player_id", playerID, "slot", req.LoadoutSlotID, "error", err)
		reply(protocol.Fail(req, "Could not apply the loadout."))
		return
	}

	reply(protocol.OK(req, "Applying loadout."))
}

func (o *Orchestrator) handleSetAILoadout(ctx context.Context, req *protocol.Request, reply func(*protocol.Response)) {
	if req.LoadoutSlotID < 0 || req.LoadoutSlotID >= loadoutstore.MaxAdminLoadouts {
		reply(protocol.Fail(req, "Invalid slot."))
		return
	}

	o.mu.Lock()
	o.aiSlot = req.LoadoutSlotID
	o.mu.Unlock()

	slog.InfoContext(ctx, "AI loadout slot designated", "slot", req.LoadoutSlotID)
	reply(protocol.OK(req, "AI loadout set."))
}

// pushCache refreshes the owner's prediction cache after a mutation
func (o *Orchestrator) pushCache(ctx context.Context, playerID int) {
	push, err := o.store.CachePush(ctx, playerID)
	if err != nil {
		slog.WarnContext(ctx, "failed to build cache push",
			"player_id", playerID, "error", err)
		return
	}
	o.publisher.PushCache(playerID, push)
}

func (o *Orchestrator) broadcastAdmin(ctx context.Context) {
	summaries, err := o.store.ListAdmin(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to build admin broadcast", "error", err)
		return
	}
	o.publisher.BroadcastAdminLoadouts(summaries)
}

// replyWithList answers a mutating loadout action with the refreshed
// per-player list, falling back to a bare success message if the list
// cannot be rebuilt.
func (o *Orchestrator) replyWithList(ctx context.Context, playerID int, req *protocol.Request, reply func(*protocol.Response), fallback string) {
	output, err := o.store.List(ctx, &loadoutstore.ListInput{PlayerID: playerID})
	if err != nil {
		reply(protocol.OK(req, fallback))
		return
	}
	o.replyWithSummaries(req, reply, output.Summaries)
}

func (o *Orchestrator) replyWithAdminList(ctx context.Context, req *protocol.Request, reply func(*protocol.Response)) {
	summaries, err := o.store.ListAdmin(ctx)
	if err != nil {
		reply(protocol.OK(req, "Done."))
		return
	}
	o.replyWithSummaries(req, reply, summaries)
}

func (o *Orchestrator) replyWithSummaries(req *protocol.Request, reply func(*protocol.Response), summaries []protocol.LoadoutSummary) {
	payload, err := protocol.MarshalSummaries(summaries)
	if err != nil {
		reply(protocol.Fail(req, "Could not encode loadout list."))
		return
	}
	reply(protocol.OK(req, payload))
}

// saveFailureMessage maps store errors onto user-facing text
func saveFailureMessage(err error) string {
	switch {
	case errors.IsInvalidArgument(err):
		return "Invalid slot."
	case errors.IsFailedPrecondition(err):
		return "Your character cannot be saved right now."
	case errors.IsPermissionDenied(err):
		return "Admin rights required."
	default:
		return "Something went wrong."
	}
}
