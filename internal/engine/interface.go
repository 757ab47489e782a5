// Package engine declares the narrow interfaces through which the loadout
// subsystem consumes the game engine: probe spawning, inventory mutation,
// the supply economy, and player/faction/identity services. Everything
// here is implemented by engine bindings in production and by mocks in
// tests; the loadout core never reaches past these boundaries.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock -source=interface.go

import (
	"context"

	"github.com/paddockgames/loadout-api/internal/entities/arsenal"
	"github.com/paddockgames/loadout-api/internal/entities/loadout"
)

// Entity is an opaque handle to a live game entity
type Entity interface {
	// ID returns the replicated entity identifier
	ID() uint64
	// Prefab returns the resource name the entity was spawned from
	Prefab() string
	// Valid reports whether the entity still exists. Completion callbacks
	// must check this before touching an entity that may have despawned.
	Valid() bool
}

// Probe is a throwaway locally spawned instance of a candidate prefab,
// used only to answer structural compatibility questions. Callers must
// Destroy every probe they spawn.
type Probe interface {
	// HasInventoryItem reports whether the probe carries an inventory
	// item component at all; items without one can never be slotted
	HasInventoryItem() bool
	// ClothingAreaType returns the probe's loadout area type name, empty
	// when the probe is not a clothing item
	ClothingAreaType() string
	// MagazineWellType returns the probe's magazine well type name, empty
	// when the probe has no magazine component or well
	MagazineWellType() string
	// Visible reports whether the item is visible in arsenal listings
	Visible() bool
	// IsArsenal reports whether the probe itself is a nested arsenal
	IsArsenal() bool
	// Destroy releases the probe entity
	Destroy()
}

// Spawner instantiates prefabs locally for compatibility probing
type Spawner interface {
	// SpawnProbe spawns a local throwaway instance of prefab. A nil
	// probe with a non-nil error means the prefab failed to load; the
	// caller skips the candidate rather than aborting the query.
	SpawnProbe(ctx context.Context, prefab string) (Probe, error)
}

// Slot is a single attachment point within a storage
type Slot interface {
	// Descriptor classifies the slot for the compatibility cache
	Descriptor() arsenal.SlotDescriptor
	// CanAttach answers the slot-specific structural check for a probe
	CanAttach(p Probe) bool
	// AttachedPrefab returns the prefab currently in the slot, empty if none
	AttachedPrefab() string
}

// Storage is a resolved inventory storage component
type Storage interface {
	ID() uint64
	Type() arsenal.StorageType
	SlotCount() int
	Slot(index int) (Slot, bool)
}

// Inventory exposes the engine's transactional item operations. Insert
// and delete complete asynchronously; done is invoked exactly once with
// the operation outcome, possibly after the caller has returned.
type Inventory interface {
	// ResolveStorage maps a replicated storage identifier to a live
	// storage, false if the reference no longer resolves
	ResolveStorage(id uint64) (Storage, bool)
	InsertItem(ctx context.Context, storage Storage, slotIndex int, prefab string, done func(error))
	DeleteItem(ctx context.Context, storage Storage, slotIndex int, done func(error))
}

// ConsumeReason explains the outcome of a supply consumption attempt
type ConsumeReason int

// Consume outcomes
const (
	ConsumeOK ConsumeReason = iota
	ConsumeInsufficient
	ConsumeUnavailable
)

// ResourceService is the supply economy attached to an arsenal
type ResourceService interface {
	// SuppliesEnabled reports whether the arsenal charges supplies at all
	SuppliesEnabled(arsenalID uint64) bool
	// BuyMultiplier scales catalog costs at purchase time
	BuyMultiplier(arsenalID uint64) float64
	// Available returns the pool balance
	Available(arsenalID uint64) (float64, error)
	// Consume debits amount, reporting sufficiency without partial deduction
	Consume(ctx context.Context, arsenalID uint64, amount float64) (ConsumeReason, error)
	// Credit refunds amount into the pool, best effort
	Credit(ctx context.Context, arsenalID uint64, amount float64) error
	// RefundAmount computes the partial refund for removing an item of
	// the given catalog cost
	RefundAmount(arsenalID uint64, cost float64) float64
}

// ArsenalCatalog is an arsenal's own item listing
type ArsenalCatalog interface {
	// Items returns the mode-filtered catalog for an arsenal entity. An
	// empty result with a nil error is valid: an arsenal may offer nothing.
	Items(arsenalID uint64) ([]arsenal.Item, error)
	// RankLocked reports whether item rank requirements are enforced on
	// this server
	RankLocked() bool
	// SubArsenalItems lists the catalog of a nested arsenal prefab
	SubArsenalItems(prefab string) ([]arsenal.Item, error)
}

// PlayerService resolves connected players and their game state
type PlayerService interface {
	// IdentityID returns the player's persistent identity string
	IdentityID(playerID int) (string, error)
	// Rank returns the player's current progression rank
	Rank(playerID int) loadout.Rank
	// FactionKey returns the player's current faction
	FactionKey(playerID int) (string, error)
	// IsAdmin reports whether the player holds admin rights
	IsAdmin(playerID int) bool
	// ControlledEntity returns the entity the player controls, false if none
	ControlledEntity(playerID int) (Entity, bool)
	// TransferControl switches the player's control to target
	TransferControl(ctx context.Context, playerID int, target Entity) error
}

// CharacterService spawns characters and moves equipped state between a
// live entity and its opaque serialized snapshot form.
type CharacterService interface {
	// Spawn instantiates a character entity from prefab
	Spawn(ctx context.Context, prefab string) (Entity, error)
	// Delete removes a character entity from the world
	Delete(ctx context.Context, e Entity) error
	// Serialize captures the character's equipped state as an opaque blob
	Serialize(e Entity) (string, error)
	// ApplySnapshot restores equipped state from a serialize blob
	ApplySnapshot(ctx context.Context, e Entity, snapshot string) error
	// StripRightHand removes the default right-hand equip from a fresh spawn
	StripRightHand(e Entity)
	// ItemCount counts carried items, used as a post-apply sanity check
	ItemCount(e Entity) int
	// Rank reads the rank stored on a character entity
	Rank(e Entity) loadout.Rank
	// SetRank stamps a rank onto a character entity
	SetRank(e Entity, r loadout.Rank)
	// MarkPlayerPending flags a fresh spawn as reserved for a player so
	// AI and editable-character hooks leave it alone
	MarkPlayerPending(e Entity, playerID int)
	// Metadata summarizes the character's equipped clothing and weapons
	// and the highest item rank requirement carried
	Metadata(e Entity) (clothes, weapons string, maxRank loadout.Rank, err error)
	// SnapshotCost totals the supply cost of everything equipped, priced
	// against a faction's catalog
	SnapshotCost(e Entity, factionKey string) (float64, error)
	// CanSaveLoadout reports whether the entity is in a saveable state
	CanSaveLoadout(e Entity) bool
	// SetVisualIdentity swaps the character's visual identity
	SetVisualIdentity(ctx context.Context, e Entity, identity string) error
	// SetSoundIdentity swaps the character's voice identity
	SetSoundIdentity(ctx context.Context, e Entity, identity string) error
}

// Identity is one selectable visual or sound identity for a faction
type Identity struct {
	Name       string
	BodyPrefab string
	FactionKey string
}

// FactionService resolves faction-scoped data
type FactionService interface {
	// Exists reports whether a faction key is registered
	Exists(factionKey string) bool
	// DefaultCharacterPrefab returns the faction's base character prefab
	DefaultCharacterPrefab(factionKey string) (string, error)
	// VisualIdentities lists the faction's selectable visual identities
	VisualIdentities(factionKey string) ([]Identity, error)
	// SoundIdentities lists the faction's selectable voice identities
	SoundIdentities(factionKey string) ([]Identity, error)
}
