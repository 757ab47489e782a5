package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/paddockgames/loadout-api/internal/engine"
	"github.com/paddockgames/loadout-api/internal/entities/arsenal"
	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/pkg/idgen"
)

// simEngine is the in-memory engine binding behind the standalone
// server: enough of a world to exercise the full protocol from the debug
// client without a game host. Production deployments replace this with
// real engine bindings.
type simEngine struct {
	mu         sync.Mutex
	identities idgen.Generator
	players    map[int]*simPlayer
	storages   map[uint64]*simStorage
	nextID     uint64

	catalog []arsenal.Item
	prices  map[string]arsenal.Details

	pool            float64
	suppliesEnabled bool
	buyMultiplier   float64
}

var (
	_ engine.PlayerService    = (*simEngine)(nil)
	_ engine.Inventory        = (*simEngine)(nil)
	_ engine.ResourceService  = (*simEngine)(nil)
	_ engine.ArsenalCatalog   = (*simEngine)(nil)
	_ engine.FactionService   = (*simEngine)(nil)
	_ engine.CharacterService = simCharacters{}
)

type simPlayer struct {
	identity string
	faction  string
	rank     loadout.Rank
	admin    bool
	entity   *simEntity
}

type simEntity struct {
	id     uint64
	prefab string
	valid  bool
	rank   loadout.Rank
	items  *simStorage
}

type simStorage struct {
	id    uint64
	slots []string
}

type simSlot struct {
	storage *simStorage
	index   int
}

const (
	simFaction       = "US"
	simSlotsPerChar  = 8
	simStartingPool  = 1000
	simDefaultPrefab = "{SIM}Character_Base.et"
)

func newSimEngine(suppliesEnabled bool, buyMultiplier float64) *simEngine {
	return &simEngine{
		identities: idgen.NewUUID("identity-"),
		players:    make(map[int]*simPlayer),
		storages:   make(map[uint64]*simStorage),
		catalog: []arsenal.Item{
			{Prefab: "{SIM}Rifle_M16A2.et", Mode: arsenal.ModeWeapon, Type: arsenal.TypeRifle, SupplyCost: 100, RequiredRank: loadout.RankPrivate},
			{Prefab: "{SIM}Rifle_M21.et", Mode: arsenal.ModeWeapon, Type: arsenal.TypeSniperRifle, SupplyCost: 250, RequiredRank: loadout.RankSergeant},
			{Prefab: "{SIM}Pistol_M9.et", Mode: arsenal.ModeWeapon, Type: arsenal.TypePistol, SupplyCost: 40, RequiredRank: loadout.RankPrivate},
			{Prefab: "{SIM}MG_M60.et", Mode: arsenal.ModeWeapon, Type: arsenal.TypeMachineGun, SupplyCost: 400, RequiredRank: loadout.RankLieutenant},
			{Prefab: "{SIM}Jacket_Field.et", Mode: arsenal.ModeDefault, Type: arsenal.TypeClothes, SupplyCost: 20, RequiredRank: loadout.RankPrivate},
			{Prefab: "{SIM}Helmet_PASGT.et", Mode: arsenal.ModeDefault, Type: arsenal.TypeClothes, SupplyCost: 15, RequiredRank: loadout.RankPrivate},
			{Prefab: "{SIM}Bandage.et", Mode: arsenal.ModeConsumable, Type: arsenal.TypeHealthItem, SupplyCost: 5, RequiredRank: loadout.RankPrivate},
			{Prefab: "{SIM}Radio_ANPRC68.et", Mode: arsenal.ModeDefault, Type: arsenal.TypeRadio, SupplyCost: 0, RequiredRank: loadout.RankPrivate},
		},
		pool:            simStartingPool,
		suppliesEnabled: suppliesEnabled,
		buyMultiplier:   buyMultiplier,
	}
}

func (s *simEngine) player(playerID int) *simPlayer {
	p, ok := s.players[playerID]
	if !ok {
		p = &simPlayer{
			identity: s.identities.Generate(),
			faction:  simFaction,
			rank:     loadout.RankSergeant,
			admin:    playerID == 1,
		}
		s.players[playerID] = p
	}
	return p
}

func (s *simEngine) newEntity(prefab string) *simEntity {
	s.nextID++
	items := &simStorage{id: s.nextID + 1<<32, slots: make([]string, simSlotsPerChar)}
	s.storages[items.id] = items
	return &simEntity{id: s.nextID, prefab: prefab, valid: true, rank: loadout.RankPrivate, items: items}
}

func (s *simEngine) details(prefab string) (arsenal.Details, bool) {
	if s.prices == nil {
		s.prices = make(map[string]arsenal.Details, len(s.catalog))
		for _, item := range s.catalog {
			s.prices[item.Prefab] = arsenal.Details{SupplyCost: item.SupplyCost, RequiredRank: item.RequiredRank}
		}
	}
	d, ok := s.prices[prefab]
	return d, ok
}

// Entity

func (e *simEntity) ID() uint64     { return e.id }
func (e *simEntity) Prefab() string { return e.prefab }
func (e *simEntity) Valid() bool    { return e.valid }

// Storage / Slot

func (st *simStorage) ID() uint64                { return st.id }
func (st *simStorage) Type() arsenal.StorageType { return arsenal.StorageCharacter }
func (st *simStorage) SlotCount() int            { return len(st.slots) }

func (st *simStorage) Slot(index int) (engine.Slot, bool) {
	if index < 0 || index >= len(st.slots) {
		return nil, false
	}
	return &simSlot{storage: st, index: index}, true
}

func (sl *simSlot) Descriptor() arsenal.SlotDescriptor {
	return arsenal.SlotDescriptor{Category: arsenal.SlotEquipment, Subtype: "SIM"}
}
func (sl *simSlot) CanAttach(engine.Probe) bool { return true }
func (sl *simSlot) AttachedPrefab() string      { return sl.storage.slots[sl.index] }

// PlayerService

func (s *simEngine) IdentityID(playerID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player(playerID).identity, nil
}

func (s *simEngine) Rank(playerID int) loadout.Rank {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player(playerID).rank
}

func (s *simEngine) FactionKey(playerID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player(playerID).faction, nil
}

func (s *simEngine) IsAdmin(playerID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player(playerID).admin
}

func (s *simEngine) ControlledEntity(playerID int) (engine.Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.player(playerID)
	if p.entity == nil {
		p.entity = s.newEntity(simDefaultPrefab)
	}
	return p.entity, true
}

func (s *simEngine) TransferControl(_ context.Context, playerID int, target engine.Entity) error {
	ent, ok := target.(*simEntity)
	if !ok || !ent.valid {
		return errors.FailedPrecondition("target entity is not controllable")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player(playerID).entity = ent
	return nil
}

// CharacterService

func (s *simEngine) Spawn(_ context.Context, prefab string) (engine.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newEntity(prefab), nil
}

func (s *simEngine) Delete(_ context.Context, e engine.Entity) error {
	ent, ok := e.(*simEntity)
	if !ok {
		return errors.InvalidArgument("not a sim entity")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ent.valid = false
	delete(s.storages, ent.items.id)
	return nil
}

func (s *simEngine) Serialize(e engine.Entity) (string, error) {
	ent, ok := e.(*simEntity)
	if !ok || !ent.valid {
		return "", errors.FailedPrecondition("entity is gone")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(ent.items.slots)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize character")
	}
	return string(raw), nil
}

func (s *simEngine) ApplySnapshot(_ context.Context, e engine.Entity, snapshot string) error {
	ent, ok := e.(*simEntity)
	if !ok || !ent.valid {
		return errors.FailedPrecondition("entity is gone")
	}
	var slots []string
	if err := json.Unmarshal([]byte(snapshot), &slots); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed snapshot")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(ent.items.slots, slots)
	return nil
}

func (s *simEngine) StripRightHand(e engine.Entity) {}

func (s *simEngine) ItemCount(e engine.Entity) int {
	ent, ok := e.(*simEntity)
	if !ok {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, prefab := range ent.items.slots {
		if prefab != "" {
			count++
		}
	}
	return count
}

// simCharacters is the CharacterService view of the sim world. It exists
// because PlayerService and CharacterService both declare Rank with
// different signatures.
type simCharacters struct {
	*simEngine
}

func (c simCharacters) Rank(e engine.Entity) loadout.Rank {
	if ent, ok := e.(*simEntity); ok {
		return ent.rank
	}
	return loadout.RankInvalid
}

func (s *simEngine) SetRank(e engine.Entity, r loadout.Rank) {
	if ent, ok := e.(*simEntity); ok {
		ent.rank = r
	}
}

func (s *simEngine) MarkPlayerPending(e engine.Entity, playerID int) {}

func (s *simEngine) Metadata(e engine.Entity) (string, string, loadout.Rank, error) {
	ent, ok := e.(*simEntity)
	if !ok || !ent.valid {
		return "", "", loadout.RankInvalid, errors.FailedPrecondition("entity is gone")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var clothes, weapons string
	maxRank := loadout.RankPrivate
	for _, prefab := range ent.items.slots {
		if prefab == "" {
			continue
		}
		item, ok := s.details(prefab)
		if !ok {
			continue
		}
		if item.RequiredRank > maxRank {
			maxRank = item.RequiredRank
		}
		name := displayName(prefab)
		if itemType(s.catalog, prefab).HasAny(arsenal.TypeAnyWeapon) {
			weapons = appendLine(weapons, name)
		} else {
			clothes = appendLine(clothes, name)
		}
	}
	return clothes, weapons, maxRank, nil
}

func (s *simEngine) SnapshotCost(e engine.Entity, factionKey string) (float64, error) {
	ent, ok := e.(*simEntity)
	if !ok || !ent.valid {
		return 0, errors.FailedPrecondition("entity is gone")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, prefab := range ent.items.slots {
		if d, ok := s.details(prefab); ok {
			total += d.SupplyCost
		}
	}
	return total, nil
}

func (s *simEngine) CanSaveLoadout(e engine.Entity) bool {
	return e != nil && e.Valid()
}

func (s *simEngine) SetVisualIdentity(_ context.Context, e engine.Entity, identity string) error {
	if !e.Valid() {
		return errors.FailedPrecondition("entity is gone")
	}
	return nil
}

func (s *simEngine) SetSoundIdentity(_ context.Context, e engine.Entity, identity string) error {
	if !e.Valid() {
		return errors.FailedPrecondition("entity is gone")
	}
	return nil
}

// Inventory

func (s *simEngine) ResolveStorage(id uint64) (engine.Storage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.storages[id]
	return st, ok
}

func (s *simEngine) InsertItem(_ context.Context, storage engine.Storage, slotIndex int, prefab string, done func(error)) {
	st, ok := storage.(*simStorage)
	if !ok || slotIndex < 0 || slotIndex >= len(st.slots) {
		done(errors.InvalidArgument("bad storage slot"))
		return
	}
	s.mu.Lock()
	st.slots[slotIndex] = prefab
	s.mu.Unlock()
	done(nil)
}

func (s *simEngine) DeleteItem(_ context.Context, storage engine.Storage, slotIndex int, done func(error)) {
	st, ok := storage.(*simStorage)
	if !ok || slotIndex < 0 || slotIndex >= len(st.slots) {
		done(errors.InvalidArgument("bad storage slot"))
		return
	}
	s.mu.Lock()
	st.slots[slotIndex] = ""
	s.mu.Unlock()
	done(nil)
}

// ResourceService

func (s *simEngine) SuppliesEnabled(arsenalID uint64) bool { return s.suppliesEnabled }
func (s *simEngine) BuyMultiplier(arsenalID uint64) float64 {
	return s.buyMultiplier
}

func (s *simEngine) Available(arsenalID uint64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool, nil
}

func (s *simEngine) Consume(_ context.Context, arsenalID uint64, amount float64) (engine.ConsumeReason, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if amount > s.pool {
		return engine.ConsumeInsufficient, nil
	}
	s.pool -= amount
	return engine.ConsumeOK, nil
}

func (s *simEngine) Credit(_ context.Context, arsenalID uint64, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool += amount
	return nil
}

func (s *simEngine) RefundAmount(arsenalID uint64, cost float64) float64 {
	return cost * 0.5
}

// ArsenalCatalog

func (s *simEngine) Items(arsenalID uint64) ([]arsenal.Item, error) {
	return s.catalog, nil
}

func (s *simEngine) RankLocked() bool { return true }

func (s *simEngine) SubArsenalItems(prefab string) ([]arsenal.Item, error) {
	return nil, nil
}

// FactionService

func (s *simEngine) Exists(factionKey string) bool {
	return factionKey == simFaction
}

func (s *simEngine) DefaultCharacterPrefab(factionKey string) (string, error) {
	if factionKey != simFaction {
		return "", errors.NotFoundf("unknown faction %q", factionKey)
	}
	return simDefaultPrefab, nil
}

func (s *simEngine) VisualIdentities(factionKey string) ([]engine.Identity, error) {
	return []engine.Identity{
		{Name: "Rifleman A", BodyPrefab: "{SIM}Identity_A.et", FactionKey: simFaction},
		{Name: "Rifleman B", BodyPrefab: "{SIM}Identity_B.et", FactionKey: simFaction},
	}, nil
}

func (s *simEngine) SoundIdentities(factionKey string) ([]engine.Identity, error) {
	return []engine.Identity{
		{Name: "Voice A", FactionKey: simFaction},
	}, nil
}

func displayName(prefab string) string {
	// strip the {GUID}Path prefix down to the file stem
	name := prefab
	if i := strings.LastIndexByte(name, '}'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name
}

func appendLine(existing, line string) string {
	if existing == "" {
		return line
	}
	return fmt.Sprintf("%s\n%s", existing, line)
}

func itemType(catalog []arsenal.Item, prefab string) arsenal.ItemType {
	for _, item := range catalog {
		if item.Prefab == prefab {
			return item.Type
		}
	}
	return 0
}
