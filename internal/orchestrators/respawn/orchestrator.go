// Package respawn implements the entity replacement fallback. Applying a
// saved loadout onto an already-spawned character in place is unreliable,
// so a fresh character is spawned, equipped non-interactively from the
// saved snapshot, control is transferred, and the old entity is deleted.
// Every pending application resolves exactly once: success, or retry
// exhaustion that fails open to the default-spawned character.
package respawn

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/paddockgames/loadout-api/internal/engine"
	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	loadoutstore "github.com/paddockgames/loadout-api/internal/orchestrators/loadouts"
	"github.com/paddockgames/loadout-api/internal/pkg/clock"
)

// Timing and retry policy for application attempts
const (
	// applyDelay lets the freshly spawned default entity settle before
	// the replacement starts
	applyDelay = 500 * time.Millisecond
	// retryDelay spaces sequential retries of a failed attempt
	retryDelay  = 1000 * time.Millisecond
	maxAttempts = 3

	// minRestoredItems is the sanity floor for a restored inventory; a
	// lower count is logged, never treated as a failure
	minRestoredItems = 2
)

// Records resolves saved loadout data when a staged selection carries
// only a slot reference
type Records interface {
	Get(ctx context.Context, input *loadoutstore.GetInput) (*loadoutstore.GetOutput, error)
	GetAdmin(ctx context.Context, slotIndex int) (*loadout.Record, error)
}

// Config holds the dependencies for the respawn orchestrator
type Config struct {
	Records    Records
	Players    engine.PlayerService
	Characters engine.CharacterService
	Factions   engine.FactionService
	Scheduler  clock.Scheduler
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Records == nil {
		vb.InvalidField("Records", "is required")
	}
	if c.Players == nil {
		vb.InvalidField("Players", "is required")
	}
	if c.Characters == nil {
		vb.InvalidField("Characters", "is required")
	}
	if c.Factions == nil {
		vb.InvalidField("Factions", "is required")
	}
	if c.Scheduler == nil {
		vb.InvalidField("Scheduler", "is required")
	}

	return vb.Build()
}

// pending is one staged loadout application for a player
type pending struct {
	factionKey string
	slotIndex  int
	admin      bool

	// rec is nil until the selection resolves against the record store
	rec *loadout.Record

	// old is the entity the player controlled when the attempt was
	// scheduled; the attempt aborts if control moved in the meantime
	old      engine.Entity
	attempts int
	timer    clock.Timer
}

// Orchestrator tracks at most one pending application per player
type Orchestrator struct {
	records    Records
	players    engine.PlayerService
	characters engine.CharacterService
	factions   engine.FactionService
	scheduler  clock.Scheduler

	mu      sync.Mutex
	pending map[int]*pending
}

// New creates a new respawn orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		records:    cfg.Records,
		players:    cfg.Players,
		characters: cfg.Characters,
		factions:   cfg.Factions,
		scheduler:  cfg.Scheduler,
		pending:    make(map[int]*pending),
	}, nil
}

// RequestApply stages a fully resolved record for a player and schedules
// the replacement. Called by the action layer when the player asks to
// apply a loadout while already spawned.
func (o *Orchestrator) RequestApply(ctx context.Context, playerID int, factionKey string, rec *loadout.Record) error {
	if rec == nil || !rec.HasData() {
		return errors.InvalidArgument("record holds no loadout data")
	}

	old, ok := o.players.ControlledEntity(playerID)
	if !ok || !old.Valid() {
		return errors.FailedPrecondition("player controls no entity")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.cancelLocked(playerID)
	entry := &pending{
		factionKey: factionKey,
		slotIndex:  rec.SlotID,
		rec:        rec,
		old:        old,
	}
	o.pending[playerID] = entry
	o.scheduleLocked(ctx, playerID, entry, applyDelay)

	slog.InfoContext(ctx, "loadout application staged",
		"player_id", playerID, "faction_key", factionKey, "slot", rec.SlotID)
	return nil
}

// RecordSelection pre-stages a deploy-menu selection before any data is
// resolved. The data resolves when HandlePlayerSpawned fires.
func (o *Orchestrator) RecordSelection(playerID int, factionKey string, slotIndex int, admin bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.cancelLocked(playerID)
	o.pending[playerID] = &pending{
		factionKey: factionKey,
		slotIndex:  slotIndex,
		admin:      admin,
	}
}

// HandlePlayerSpawned resolves a staged selection against the record
// store and schedules the replacement of the default-spawned entity.
// Players without a staged selection are ignored.
func (o *Orchestrator) HandlePlayerSpawned(ctx context.Context, playerID int, spawned engine.Entity) {
	o.mu.Lock()
	entry, ok := o.pending[playerID]
	if !ok {
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()

	if entry.rec == nil {
		rec, err := o.resolve(ctx, playerID, entry)
		if err != nil {
			slog.WarnContext(ctx, "staged loadout selection did not resolve, keeping default spawn",
				"player_id", playerID, "slot", entry.slotIndex, "error", err)
			o.CancelPending(playerID)
			return
		}
		entry.rec = rec
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending[playerID] != entry {
		return
	}
	entry.old = spawned
	o.scheduleLocked(ctx, playerID, entry, applyDelay)
}

// CancelPending drops any staged application, called on disconnect
func (o *Orchestrator) CancelPending(playerID int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancelLocked(playerID)
}

// Pending reports whether a player has a staged application
func (o *Orchestrator) Pending(playerID int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.pending[playerID]
	return ok
}

func (o *Orchestrator) resolve(ctx context.Context, playerID int, entry *pending) (*loadout.Record, error) {
	if entry.admin {
		return o.records.GetAdmin(ctx, entry.slotIndex)
	}
	output, err := o.records.Get(ctx, &loadoutstore.GetInput{
		PlayerID:   playerID,
		FactionKey: entry.factionKey,
		SlotIndex:  entry.slotIndex,
	})
	if err != nil {
		return nil, err
	}
	return output.Record, nil
}

func (o *Orchestrator) cancelLocked(playerID int) {
	if entry, ok := o.pending[playerID]; ok {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		delete(o.pending, playerID)
	}
}

func (o *Orchestrator) scheduleLocked(ctx context.Context, playerID int, entry *pending, delay time.Duration) {
	entry.timer = o.scheduler.AfterFunc(delay, func() {
		o.attempt(ctx, playerID, entry)
	})
}

// attempt runs one application try. Retries are strictly sequential;
// on exhaustion the entry is dropped and the player keeps the default
// spawn.
func (o *Orchestrator) attempt(ctx context.Context, playerID int, entry *pending) {
	o.mu.Lock()
	if o.pending[playerID] != entry {
		// cancelled or superseded while the timer was in flight
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()

	old, ok := o.players.ControlledEntity(playerID)
	if !ok || !old.Valid() || old != entry.old {
		slog.WarnContext(ctx, "controlled entity changed before application, dropping staged loadout",
			"player_id", playerID)
		o.CancelPending(playerID)
		return
	}

	if err := o.applyOnto(ctx, playerID, entry, old); err != nil {
		o.retry(ctx, playerID, entry, err)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending[playerID] == entry {
		delete(o.pending, playerID)
	}
	slog.InfoContext(ctx, "loadout applied",
		"player_id", playerID, "slot", entry.slotIndex, "attempts", entry.attempts+1)
}

func (o *Orchestrator) applyOnto(ctx context.Context, playerID int, entry *pending, old engine.Entity) error {
	prefab := entry.rec.Prefab
	if prefab == "" {
		def, err := o.factions.DefaultCharacterPrefab(entry.factionKey)
		if err != nil {
			return errors.Wrap(err, "no character prefab for faction")
		}
		prefab = def
	}

	fresh, err := o.characters.Spawn(ctx, prefab)
	if err != nil {
		return errors.Wrap(err, "failed to spawn replacement character")
	}

	o.characters.MarkPlayerPending(fresh, playerID)
	o.characters.StripRightHand(fresh)

	if err := o.characters.ApplySnapshot(ctx, fresh, entry.rec.Data); err != nil {
		o.discard(ctx, fresh)
		return errors.Wrap(err, "failed to apply loadout snapshot")
	}

	if count := o.characters.ItemCount(fresh); count < minRestoredItems {
		slog.WarnContext(ctx, "restored loadout looks sparse",
			"player_id", playerID, "item_count", count)
	}

	o.characters.SetRank(fresh, o.characters.Rank(old))

	if err := o.players.TransferControl(ctx, playerID, fresh); err != nil {
		o.discard(ctx, fresh)
		return errors.Wrap(err, "failed to transfer control")
	}

	if err := o.characters.Delete(ctx, old); err != nil {
		// the player already controls the new entity, the leak is cosmetic
		slog.WarnContext(ctx, "failed to delete replaced entity",
			"player_id", playerID, "error", err)
	}

	return nil
}

func (o *Orchestrator) discard(ctx context.Context, e engine.Entity) {
	if err := o.characters.Delete(ctx, e); err != nil {
		slog.WarnContext(ctx, "failed to discard partially equipped entity", "error", err)
	}
}

func (o *Orchestrator) retry(ctx context.Context, playerID int, entry *pending, cause error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending[playerID] != entry {
		return
	}

	entry.attempts++
	if entry.attempts >= maxAttempts {
		slog.ErrorContext(ctx, "loadout application exhausted retries, keeping default spawn",
			"player_id", playerID, "slot", entry.slotIndex, "error", cause)
		delete(o.pending, playerID)
		return
	}

	slog.WarnContext(ctx, "loadout application failed, retrying",
		"player_id", playerID, "attempt", entry.attempts, "error", cause)
	o.scheduleLocked(ctx, playerID, entry, retryDelay)
}
