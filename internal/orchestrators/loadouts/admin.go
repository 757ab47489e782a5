package loadouts

import (
	"context"
	"log/slog"

	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/protocol"
	loadoutrepo "github.com/paddockgames/loadout-api/internal/repositories/loadouts"
)

// Admin pool operations. The pool is one shared bundle owned by no real
// player; mutating it requires admin rights and is broadcast by the
// caller to every connected client.

// SaveAdminInput defines the input for saving into the admin pool
type SaveAdminInput struct {
	// PlayerID is the acting admin, whose controlled entity is captured
	PlayerID  int
	SlotIndex int
	Name      string
}

// SaveAdminOutput defines the output of an admin save
type SaveAdminOutput struct {
	Record    *loadout.Record
	Persisted bool
}

// SaveAdmin captures the acting admin's equipped state into a shared slot.
// Returns errors.PermissionDenied when the player lacks admin rights
func (o *Orchestrator) SaveAdmin(ctx context.Context, input *SaveAdminInput) (*SaveAdminOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.requireAdmin(input.PlayerID); err != nil {
		return nil, err
	}
	if input.SlotIndex < 0 || input.SlotIndex >= MaxAdminLoadouts {
		return nil, errors.InvalidArgumentf("admin slot index %d out of range", input.SlotIndex)
	}

	entity, ok := o.players.ControlledEntity(input.PlayerID)
	if !ok || !entity.Valid() {
		return nil, errors.FailedPrecondition("no controlled entity to save")
	}
	if !o.characters.CanSaveLoadout(entity) {
		return nil, errors.FailedPrecondition("character is not in a saveable state")
	}

	factionKey, err := o.players.FactionKey(input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve player faction")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	storage, err := o.ensureAdminLocked(ctx)
	if err != nil {
		return nil, err
	}

	rec := storage.Faction(AdminFactionKey, MaxAdminLoadouts)[loadout.SlotKey(input.SlotIndex)]
	if err := o.captureInto(ctx, rec, entity, factionKey, input.Name); err != nil {
		return nil, err
	}

	persisted := o.persistAdminLocked(ctx, storage)

	return &SaveAdminOutput{Record: rec.Copy(), Persisted: persisted}, nil
}

// ClearAdminInput defines the input for clearing an admin slot
type ClearAdminInput struct {
	PlayerID  int
	SlotIndex int
}

// ClearAdminOutput defines the output of an admin clear
type ClearAdminOutput struct {
	Record    *loadout.Record
	Persisted bool
}

// ClearAdmin soft-resets a shared slot
func (o *Orchestrator) ClearAdmin(ctx context.Context, input *ClearAdminInput) (*ClearAdminOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.requireAdmin(input.PlayerID); err != nil {
		return nil, err
	}
	if input.SlotIndex < 0 || input.SlotIndex >= MaxAdminLoadouts {
		return nil, errors.InvalidArgumentf("admin slot index %d out of range", input.SlotIndex)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	storage, err := o.ensureAdminLocked(ctx)
	if err != nil {
		return nil, err
	}

	rec := storage.Faction(AdminFactionKey, MaxAdminLoadouts)[loadout.SlotKey(input.SlotIndex)]
	rec.Clear()

	persisted := o.persistAdminLocked(ctx, storage)

	return &ClearAdminOutput{Record: rec.Copy(), Persisted: persisted}, nil
}

// GetAdmin returns a copy of one admin slot. Reading the pool does not
// require admin rights; every player may spawn a shared loadout.
// Returns errors.NotFound when the slot holds no loadout
func (o *Orchestrator) GetAdmin(ctx context.Context, slotIndex int) (*loadout.Record, error) {
	if slotIndex < 0 || slotIndex >= MaxAdminLoadouts {
		return nil, errors.InvalidArgumentf("admin slot index %d out of range", slotIndex)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	storage, err := o.ensureAdminLocked(ctx)
	if err != nil {
		return nil, err
	}

	rec := storage.Slot(AdminFactionKey, slotIndex)
	if rec == nil || !rec.HasData() {
		return nil, errors.NotFoundf("admin slot %d holds no loadout", slotIndex)
	}

	return rec.Copy(), nil
}

// ListAdmin returns display summaries for the shared pool
func (o *Orchestrator) ListAdmin(ctx context.Context) ([]protocol.LoadoutSummary, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	storage, err := o.ensureAdminLocked(ctx)
	if err != nil {
		return nil, err
	}

	storage.Faction(AdminFactionKey, MaxAdminLoadouts)
	return summarize(storage, AdminFactionKey, MaxAdminLoadouts), nil
}

func (o *Orchestrator) requireAdmin(playerID int) error {
	if !o.players.IsAdmin(playerID) {
		return errors.PermissionDenied("admin rights required")
	}
	return nil
}

func (o *Orchestrator) ensureAdminLocked(ctx context.Context) (*loadout.FactionStorage, error) {
	if o.admin != nil {
		return o.admin, nil
	}

	output, err := o.repo.Load(ctx, loadoutrepo.LoadInput{Admin: true})
	switch {
	case err == nil:
		o.admin = output.Storage
	case errors.IsNotFound(err):
		o.admin = loadout.NewFactionStorage()
	default:
		return nil, err
	}
	o.admin.Faction(AdminFactionKey, MaxAdminLoadouts)

	return o.admin, nil
}

func (o *Orchestrator) persistAdminLocked(ctx context.Context, storage *loadout.FactionStorage) bool {
	_, err := o.repo.Save(ctx, loadoutrepo.SaveInput{Admin: true, Storage: storage})
	if err != nil {
		slog.WarnContext(ctx, "admin loadouts saved in memory but repository write failed",
			"error", err)
		return false
	}
	return true
}
