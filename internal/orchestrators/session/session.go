// Package session implements the per-arsenal editing session: the
// mode-filtered item catalog pulled once at open, per-prefab cost/rank
// lookup, and the memoized slot-compatibility queries that back the
// editor's choice lists.
//
// Compatibility is structural, so deciding whether a candidate prefab
// fits a slot means spawning a throwaway probe of it and inspecting the
// result. That is expensive across hundreds of candidates, which is why
// results are memoized per slot subtype: two slots with the same
// category and subtype always admit the same items.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paddockgames/loadout-api/internal/engine"
	"github.com/paddockgames/loadout-api/internal/entities/arsenal"
	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
)

// Config holds the session dependencies
type Config struct {
	ArsenalID uint64
	Catalog   engine.ArsenalCatalog
	Spawner   engine.Spawner
}

// Validate ensures required dependencies are set
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Catalog == nil {
		vb.InvalidField("catalog", "is required")
	}
	if cfg.Spawner == nil {
		vb.InvalidField("spawner", "is required")
	}
	return vb.Build()
}

// Session is one arsenal-open editing session. It is exclusive: opening
// a new editor replaces the session wholesale, which is what bounds the
// memoized results' lifetime. Not safe for concurrent use.
type Session struct {
	arsenalID uint64
	catalog   engine.ArsenalCatalog
	spawner   engine.Spawner

	items       []arsenal.Item
	details     map[string]arsenal.Details
	rankLocked  bool
	initialized bool

	slotChoices map[string][]string
	itemsByMode map[string][]arsenal.Item
	subArsenals map[string]struct{}
	subItems    map[string]struct{}
}

// New creates an uninitialized session
func New(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		arsenalID:   cfg.ArsenalID,
		catalog:     cfg.Catalog,
		spawner:     cfg.Spawner,
		details:     make(map[string]arsenal.Details),
		slotChoices: make(map[string][]string),
		itemsByMode: make(map[string][]arsenal.Item),
		subArsenals: make(map[string]struct{}),
		subItems:    make(map[string]struct{}),
	}, nil
}

// ArsenalID returns the arsenal entity this session edits against
func (s *Session) ArsenalID() uint64 {
	return s.arsenalID
}

// Initialized reports whether Init completed
func (s *Session) Initialized() bool {
	return s.initialized
}

// Init pulls the full item catalog once and builds the per-prefab detail
// map. Returns false when the arsenal offers no items; that is a valid
// state the caller surfaces as a warning, not an error.
func (s *Session) Init(ctx context.Context) (bool, error) {
	items, err := s.catalog.Items(s.arsenalID)
	if err != nil {
		return false, errors.Wrap(err, "failed to load arsenal catalog")
	}

	s.items = items
	s.rankLocked = s.catalog.RankLocked()
	s.initialized = true

	for _, item := range items {
		s.details[item.Prefab] = arsenal.Details{
			SupplyCost:   item.SupplyCost,
			RequiredRank: item.RequiredRank,
		}
	}

	slog.InfoContext(ctx, "arsenal session initialized",
		"arsenal_id", s.arsenalID,
		"items", len(items),
		"rank_locked", s.rankLocked,
	)
	return len(items) > 0, nil
}

// CostAndRank returns the supply cost and required rank for a prefab.
// Unknown prefabs cost nothing and require nothing rather than failing.
// When the server runs with rank locking off, every item reports no
// rank requirement.
func (s *Session) CostAndRank(prefab string) (float64, loadout.Rank) {
	d, ok := s.details[prefab]
	if !ok {
		return 0, loadout.RankInvalid
	}
	if !s.rankLocked {
		return d.SupplyCost, loadout.RankInvalid
	}
	return d.SupplyCost, d.RequiredRank
}

// ItemRank returns a prefab's raw rank requirement, ignoring the server's
// rank-lock setting. Loadout metadata records the true requirement even
// when enforcement is off.
func (s *Session) ItemRank(prefab string) loadout.Rank {
	d, ok := s.details[prefab]
	if !ok {
		return loadout.RankInvalid
	}
	return d.RequiredRank
}

// SlotChoices returns the prefabs usable in the given slot, memoized by
// the slot's category+subtype key. The first call per key probes every
// candidate; later calls are pure lookups.
func (s *Session) SlotChoices(ctx context.Context, slot engine.Slot) ([]string, error) {
	if !s.initialized {
		return nil, errors.FailedPrecondition("arsenal session not initialized")
	}

	desc := slot.Descriptor()
	key := desc.CacheKey()

	if cached, ok := s.slotChoices[key]; ok {
		slog.DebugContext(ctx, "slot choice cache hit", "key", key, "items", len(cached))
		return append([]string(nil), cached...), nil
	}

	var choices []string
	switch desc.Category {
	case arsenal.SlotClothing:
		choices = s.probeClothing(ctx, desc.Subtype)
	case arsenal.SlotAttachment:
		choices = s.probeAttachments(ctx, slot)
	case arsenal.SlotWeapon:
		choices = s.probeWeapons(ctx, desc.Subtype)
	case arsenal.SlotEquipment:
		choices = s.probeEquipment(ctx, slot)
	case arsenal.SlotMagazine:
		choices = s.probeMagazines(ctx, desc.Subtype)
	default:
		return nil, errors.InvalidArgumentf("unknown slot category %d", desc.Category)
	}

	s.slotChoices[key] = choices
	slog.DebugContext(ctx, "slot choices cached", "key", key, "items", len(choices))
	return append([]string(nil), choices...), nil
}

// spawn probes a candidate, returning nil when the prefab fails to load.
// A broken prefab is skipped with a warning, never fatal to the query.
func (s *Session) spawn(ctx context.Context, prefab string) engine.Probe {
	probe, err := s.spawner.SpawnProbe(ctx, prefab)
	if err != nil {
		slog.WarnContext(ctx, "failed to spawn probe", "prefab", prefab, "error", err)
		return nil
	}
	return probe
}

func (s *Session) probeClothing(ctx context.Context, areaType string) []string {
	choices := []string{}
	for _, item := range s.items {
		if item.Mode != arsenal.ModeDefault {
			continue
		}

		probe := s.spawn(ctx, item.Prefab)
		if probe == nil {
			continue
		}

		if probe.ClothingAreaType() == areaType && areaType != "" {
			choices = append(choices, item.Prefab)
		}
		probe.Destroy()
	}
	return choices
}

func (s *Session) probeAttachments(ctx context.Context, slot engine.Slot) []string {
	choices := []string{}
	for _, item := range s.items {
		if item.Mode != arsenal.ModeAttachment || item.Type != arsenal.TypeWeaponAttachment {
			continue
		}

		probe := s.spawn(ctx, item.Prefab)
		if probe == nil {
			continue
		}

		if !probe.HasInventoryItem() {
			slog.WarnContext(ctx, "prefab has no inventory item component", "prefab", item.Prefab)
			probe.Destroy()
			continue
		}

		if slot.CanAttach(probe) {
			choices = append(choices, item.Prefab)
		}
		probe.Destroy()
	}
	return choices
}

func (s *Session) probeWeapons(ctx context.Context, weaponSlotType string) []string {
	modes, types, ok := arsenal.WeaponSlotFilter(weaponSlotType)
	if !ok {
		slog.WarnContext(ctx, "unknown weapon slot type", "slot_type", weaponSlotType)
		return []string{}
	}

	choices := []string{}
	for _, item := range s.items {
		if !item.Mode.HasAny(modes) || !item.Type.HasAny(types) {
			continue
		}

		probe := s.spawn(ctx, item.Prefab)
		if probe == nil {
			continue
		}

		if !probe.HasInventoryItem() {
			slog.WarnContext(ctx, "prefab has no inventory item component", "prefab", item.Prefab)
			probe.Destroy()
			continue
		}

		choices = append(choices, item.Prefab)
		probe.Destroy()
	}
	return choices
}

func (s *Session) probeEquipment(ctx context.Context, slot engine.Slot) []string {
	choices := []string{}
	for _, item := range s.items {
		if item.Mode != arsenal.ModeDefault || item.Type != arsenal.TypeEquipment {
			continue
		}

		probe := s.spawn(ctx, item.Prefab)
		if probe == nil {
			continue
		}

		if !probe.HasInventoryItem() {
			slog.WarnContext(ctx, "prefab has no inventory item component", "prefab", item.Prefab)
			probe.Destroy()
			continue
		}

		if slot.CanAttach(probe) {
			choices = append(choices, item.Prefab)
		}
		probe.Destroy()
	}
	return choices
}

func (s *Session) probeMagazines(ctx context.Context, magazineWellType string) []string {
	choices := []string{}
	for _, item := range s.items {
		if item.Mode != arsenal.ModeAmmunition {
			continue
		}

		probe := s.spawn(ctx, item.Prefab)
		if probe == nil {
			continue
		}

		if !probe.HasInventoryItem() {
			slog.WarnContext(ctx, "prefab has no inventory item component", "prefab", item.Prefab)
			probe.Destroy()
			continue
		}

		well := probe.MagazineWellType()
		if well == "" {
			slog.WarnContext(ctx, "prefab has no magazine well", "prefab", item.Prefab)
			probe.Destroy()
			continue
		}

		// hidden items are only excluded when they are nested arsenals
		if !probe.Visible() && probe.IsArsenal() {
			probe.Destroy()
			continue
		}

		if well == magazineWellType {
			choices = append(choices, item.Prefab)
		}
		probe.Destroy()
	}
	return choices
}

// ItemsByMode returns catalog items matching any of the given mode and
// type flags, memoized per flag combination.
func (s *Session) ItemsByMode(ctx context.Context, modes arsenal.ItemMode, types arsenal.ItemType) []arsenal.Item {
	key := fmt.Sprintf("ARSENAL_ITEMS_%s_%s", modes, types)
	if cached, ok := s.itemsByMode[key]; ok {
		return append([]arsenal.Item(nil), cached...)
	}

	matched := []arsenal.Item{}
	for _, item := range s.items {
		if !item.Mode.HasAny(modes) || !item.Type.HasAny(types) {
			continue
		}
		matched = append(matched, item)
	}

	s.itemsByMode[key] = matched
	slog.DebugContext(ctx, "items-by-mode cached", "key", key, "items", len(matched))
	return append([]arsenal.Item(nil), matched...)
}

// RegisterSubArsenal records the catalog of a nested arsenal discovered
// while browsing. Membership is additive for the session's lifetime and
// suppresses purchase/refund logic for items sourced from nested
// containers.
func (s *Session) RegisterSubArsenal(ctx context.Context, prefab string) error {
	if _, ok := s.subArsenals[prefab]; ok {
		return nil
	}

	items, err := s.catalog.SubArsenalItems(prefab)
	if err != nil {
		return errors.Wrapf(err, "failed to read sub-arsenal %s", prefab)
	}
	if len(items) == 0 {
		return nil
	}

	s.subArsenals[prefab] = struct{}{}
	for _, item := range items {
		s.subItems[item.Prefab] = struct{}{}
	}

	slog.DebugContext(ctx, "registered sub-arsenal", "prefab", prefab, "items", len(items))
	return nil
}

// InSubArsenal reports whether a prefab came from any registered
// nested arsenal
func (s *Session) InSubArsenal(prefab string) bool {
	_, ok := s.subItems[prefab]
	return ok
}
