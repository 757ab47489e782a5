// Package loadouts implements the loadout store orchestrator: the
// in-memory cache of per-player saved loadouts plus the shared admin
// pool, loaded lazily from the repository and written back memory-first.
// A failed write never fails the player's save; the in-memory copy stays
// authoritative for the session and the failure is logged.
package loadouts

import (
	"context"
	"log/slog"
	"sync"

	"github.com/paddockgames/loadout-api/internal/engine"
	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/pkg/clock"
	"github.com/paddockgames/loadout-api/internal/protocol"
	loadoutrepo "github.com/paddockgames/loadout-api/internal/repositories/loadouts"
)

// Slot pool sizes and the reserved owner of the admin pool
const (
	MaxLoadoutsPerPlayer = 5
	MaxAdminLoadouts     = 10

	// AdminPlayerID is the synthetic owner of the shared admin pool
	AdminPlayerID = -100
	// AdminFactionKey partitions admin loadouts inside their bundle
	AdminFactionKey = "admin"
)

// Config holds the dependencies for the loadout store orchestrator
type Config struct {
	Repository loadoutrepo.Repository
	Players    engine.PlayerService
	Characters engine.CharacterService
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.InvalidField("Repository", "is required")
	}
	if c.Players == nil {
		vb.InvalidField("Players", "is required")
	}
	if c.Characters == nil {
		vb.InvalidField("Characters", "is required")
	}
	if c.Clock == nil {
		vb.InvalidField("Clock", "is required")
	}

	return vb.Build()
}

type playerState struct {
	identityID string
	factions   map[string]*loadout.FactionStorage
}

// Orchestrator is the loadout store
type Orchestrator struct {
	repo       loadoutrepo.Repository
	players    engine.PlayerService
	characters engine.CharacterService
	clock      clock.Clock

	mu    sync.Mutex
	state map[int]*playerState
	admin *loadout.FactionStorage
}

// New creates a new loadout store orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		repo:       cfg.Repository,
		players:    cfg.Players,
		characters: cfg.Characters,
		clock:      cfg.Clock,
		state:      make(map[int]*playerState),
	}, nil
}

// SaveInput defines the input for saving the player's current equipment
// into a slot
type SaveInput struct {
	PlayerID  int
	SlotIndex int
	// Name optionally sets a custom display name on the slot
	Name string
}

// SaveOutput defines the output of a save
type SaveOutput struct {
	Record *loadout.Record
	// FactionKey is the faction the slot was saved under
	FactionKey string
	// Persisted is false when the write-behind to the repository failed;
	// the save itself still succeeded in memory
	Persisted bool
}

// Save captures the player's currently equipped character state into the
// given slot. The in-memory record is updated first; repository failure
// is logged and reported via Persisted, never as an error.
func (o *Orchestrator) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= MaxLoadoutsPerPlayer {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
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

	state, storage, err := o.ensureLocked(ctx, input.PlayerID, factionKey)
	if err != nil {
		return nil, err
	}

	rec := storage.Faction(factionKey, MaxLoadoutsPerPlayer)[loadout.SlotKey(input.SlotIndex)]
	if err := o.captureInto(ctx, rec, entity, factionKey, input.Name); err != nil {
		return nil, err
	}

	persisted := o.persistLocked(ctx, state.identityID, factionKey, storage)

	return &SaveOutput{Record: rec.Copy(), FactionKey: factionKey, Persisted: persisted}, nil
}

// GetInput defines the input for reading one slot
type GetInput struct {
	PlayerID  int
	SlotIndex int
	// FactionKey selects the faction partition; empty means the player's
	// current faction
	FactionKey string
}

// GetOutput defines the output of a slot read
type GetOutput struct {
	Record     *loadout.Record
	FactionKey string
}

// Get returns a copy of one saved slot.
// Returns errors.NotFound when the slot has never been saved or was cleared
func (o *Orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= MaxLoadoutsPerPlayer {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
	}

	factionKey, err := o.resolveFaction(input.PlayerID, input.FactionKey)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	_, storage, err := o.ensureLocked(ctx, input.PlayerID, factionKey)
	if err != nil {
		return nil, err
	}

	rec := storage.Slot(factionKey, input.SlotIndex)
	if rec == nil || !rec.HasData() {
		return nil, errors.NotFoundf("slot %d holds no loadout", input.SlotIndex)
	}

	return &GetOutput{Record: rec.Copy(), FactionKey: factionKey}, nil
}

// ClearInput defines the input for clearing one slot
type ClearInput struct {
	PlayerID  int
	SlotIndex int
}

// ClearOutput defines the output of a clear
type ClearOutput struct {
	Record     *loadout.Record
	FactionKey string
	Persisted  bool
}

// Clear soft-resets one slot, keeping its positional identity. Clearing
// an already empty slot succeeds.
func (o *Orchestrator) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= MaxLoadoutsPerPlayer {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
	}

	factionKey, err := o.resolveFaction(input.PlayerID, "")
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, storage, err := o.ensureLocked(ctx, input.PlayerID, factionKey)
	if err != nil {
		return nil, err
	}

	rec := storage.Faction(factionKey, MaxLoadoutsPerPlayer)[loadout.SlotKey(input.SlotIndex)]
	rec.Clear()

	persisted := o.persistLocked(ctx, state.identityID, factionKey, storage)

	return &ClearOutput{Record: rec.Copy(), FactionKey: factionKey, Persisted: persisted}, nil
}

// ListInput defines the input for listing a player's slots
type ListInput struct {
	PlayerID   int
	FactionKey string
}

// ListOutput defines the output of a list
type ListOutput struct {
	FactionKey string
	Summaries  []protocol.LoadoutSummary
}

// List returns display summaries for every slot, empty slots included,
// ordered by slot index.
func (o *Orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	factionKey, err := o.resolveFaction(input.PlayerID, input.FactionKey)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	_, storage, err := o.ensureLocked(ctx, input.PlayerID, factionKey)
	if err != nil {
		return nil, err
	}

	storage.Faction(factionKey, MaxLoadoutsPerPlayer)
	return &ListOutput{
		FactionKey: factionKey,
		Summaries:  summarize(storage, factionKey, MaxLoadoutsPerPlayer),
	}, nil
}

// CachePush builds the full validity-and-data snapshot for the player's
// current faction, sent on connect and after every mutation.
func (o *Orchestrator) CachePush(ctx context.Context, playerID int) (*protocol.CachePush, error) {
	factionKey, err := o.resolveFaction(playerID, "")
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	_, storage, err := o.ensureLocked(ctx, playerID, factionKey)
	if err != nil {
		return nil, err
	}

	push := &protocol.CachePush{
		ValidSlots: map[string][]int{factionKey: {}},
	}
	for i := 0; i < MaxLoadoutsPerPlayer; i++ {
		rec := storage.Slot(factionKey, i)
		if rec == nil || !rec.HasData() {
			continue
		}
		push.ValidSlots[factionKey] = append(push.ValidSlots[factionKey], i)
		push.LoadoutData = append(push.LoadoutData, protocol.LoadoutTransfer{
			FactionKey:   factionKey,
			SlotIndex:    i,
			Prefab:       rec.Prefab,
			LoadoutData:  rec.Data,
			Cost:         rec.SupplyCost,
			RequiredRank: rec.RequiredRank,
		})
	}

	return push, nil
}

// EvictPlayer drops a player's cached bundles, called on disconnect
func (o *Orchestrator) EvictPlayer(playerID int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.state, playerID)
}

// ForceReload discards the cached bundles so the next access re-reads
// the repository
func (o *Orchestrator) ForceReload(playerID int) {
	o.EvictPlayer(playerID)
}

// CachedPlayers returns the number of players with loaded bundles
func (o *Orchestrator) CachedPlayers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.state)
}

func (o *Orchestrator) resolveFaction(playerID int, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	factionKey, err := o.players.FactionKey(playerID)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve player faction")
	}
	return factionKey, nil
}

// ensureLocked returns the player's cached bundle for factionKey, loading
// it from the repository on first access. Callers hold o.mu.
func (o *Orchestrator) ensureLocked(ctx context.Context, playerID int, factionKey string) (*playerState, *loadout.FactionStorage, error) {
	state, ok := o.state[playerID]
	if !ok {
		identityID, err := o.players.IdentityID(playerID)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to resolve player identity")
		}
		state = &playerState{
			identityID: identityID,
			factions:   make(map[string]*loadout.FactionStorage),
		}
		o.state[playerID] = state
	}

	storage, ok := state.factions[factionKey]
	if !ok {
		output, err := o.repo.Load(ctx, loadoutrepo.LoadInput{
			IdentityID: state.identityID,
			FactionKey: factionKey,
		})
		switch {
		case err == nil:
			storage = output.Storage
		case errors.IsNotFound(err):
			storage = loadout.NewFactionStorage()
		default:
			return nil, nil, err
		}
		storage.Faction(factionKey, MaxLoadoutsPerPlayer)
		state.factions[factionKey] = storage
	}

	return state, storage, nil
}

// captureInto fills rec from the entity's current equipped state,
// preserving CreatedAt across overwrites of the same slot.
func (o *Orchestrator) captureInto(ctx context.Context, rec *loadout.Record, entity engine.Entity, factionKey, name string) error {
	snapshot, err := o.characters.Serialize(entity)
	if err != nil {
		return errors.Wrap(err, "failed to serialize character state")
	}

	clothes, weapons, maxRank, err := o.characters.Metadata(entity)
	if err != nil {
		return errors.Wrap(err, "failed to summarize character equipment")
	}

	cost, err := o.characters.SnapshotCost(entity, factionKey)
	if err != nil {
		slog.WarnContext(ctx, "failed to price loadout, saving with zero cost",
			"error", err)
		cost = 0
	}

	now := o.clock.Now().Unix()
	createdAt := rec.CreatedAt
	if !rec.HasData() || createdAt == 0 {
		createdAt = now
	}

	rec.MetadataClothes = clothes
	rec.MetadataWeapons = weapons
	rec.Name = name
	rec.Prefab = entity.Prefab()
	rec.Data = snapshot
	rec.RequiredRank = maxRank.String()
	rec.SupplyCost = cost
	rec.CreatedAt = createdAt
	rec.ModifiedAt = now
	rec.FormatVersion = loadout.RecordFormatVersion

	return nil
}

// persistLocked writes the bundle behind the in-memory update. Failure is
// logged and reported, never propagated: the session keeps running on the
// in-memory copy.
func (o *Orchestrator) persistLocked(ctx context.Context, identityID, factionKey string, storage *loadout.FactionStorage) bool {
	_, err := o.repo.Save(ctx, loadoutrepo.SaveInput{
		IdentityID: identityID,
		FactionKey: factionKey,
		Storage:    storage,
	})
	if err != nil {
		slog.WarnContext(ctx, "loadout saved in memory but repository write failed",
			"identity_id", identityID, "faction_key", factionKey, "error", err)
		return false
	}
	return true
}

func summarize(storage *loadout.FactionStorage, factionKey string, count int) []protocol.LoadoutSummary {
	summaries := make([]protocol.LoadoutSummary, 0, count)
	for i := 0; i < count; i++ {
		rec := storage.Slot(factionKey, i)
		if rec == nil {
			rec = loadout.NewEmptyRecord(i)
		}
		summaries = append(summaries, protocol.LoadoutSummary{
			SlotID:       rec.SlotID,
			DisplayName:  rec.DisplayName(),
			Clothes:      rec.MetadataClothes,
			Weapons:      rec.MetadataWeapons,
			SupplyCost:   rec.SupplyCost,
			RequiredRank: rec.RequiredRank,
			CreatedAt:    rec.CreatedAt,
			ModifiedAt:   rec.ModifiedAt,
			HasData:      rec.HasData(),
		})
	}
	return summaries
}
