// Package action implements the server-side action orchestrator: it
// receives decoded requests, re-validates everything the client claims
// (reference resolution, rank eligibility, affordability), executes the
// mutation through the engine's transactional inventory primitives, and
// delivers exactly one correlated response per request.
package action

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/paddockgames/loadout-api/internal/engine"
	"github.com/paddockgames/loadout-api/internal/entities/arsenal"
	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	loadoutstore "github.com/paddockgames/loadout-api/internal/orchestrators/loadouts"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

//go:generate mockgen -destination=mock/mock_action.go -package=actionmock -source=orchestrator.go

// Store is the slice of the loadout store the action layer drives
type Store interface {
	Save(ctx context.Context, input *loadoutstore.SaveInput) (*loadoutstore.SaveOutput, error)
	Get(ctx context.Context, input *loadoutstore.GetInput) (*loadoutstore.GetOutput, error)
	Clear(ctx context.Context, input *loadoutstore.ClearInput) (*loadoutstore.ClearOutput, error)
	List(ctx context.Context, input *loadoutstore.ListInput) (*loadoutstore.ListOutput, error)
	CachePush(ctx context.Context, playerID int) (*protocol.CachePush, error)
	SaveAdmin(ctx context.Context, input *loadoutstore.SaveAdminInput) (*loadoutstore.SaveAdminOutput, error)
	ClearAdmin(ctx context.Context, input *loadoutstore.ClearAdminInput) (*loadoutstore.ClearAdminOutput, error)
	GetAdmin(ctx context.Context, slotIndex int) (*loadout.Record, error)
	ListAdmin(ctx context.Context) ([]protocol.LoadoutSummary, error)
}

// Applier stages a resolved loadout record for the entity replacement
// fallback to pick up on the player's next spawn
type Applier interface {
	RequestApply(ctx context.Context, playerID int, factionKey string, rec *loadout.Record) error
}

// Publisher delivers server pushes outside the request/response pair
type Publisher interface {
	// PushCache sends a full validity snapshot to one player
	PushCache(playerID int, push *protocol.CachePush)
	// PushSlotUpdate sends a single-slot validity change to one player
	PushSlotUpdate(playerID int, update *protocol.SlotUpdate)
	// BroadcastAdminLoadouts announces an admin pool change to everyone
	BroadcastAdminLoadouts(summaries []protocol.LoadoutSummary)
}

// Config holds the dependencies for the action orchestrator
type Config struct {
	Store     Store
	Applier   Applier
	Publisher Publisher

	Inventory  engine.Inventory
	Resources  engine.ResourceService
	Catalog    engine.ArsenalCatalog
	Players    engine.PlayerService
	Characters engine.CharacterService
	Factions   engine.FactionService
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.InvalidField("Store", "is required")
	}
	if c.Applier == nil {
		vb.InvalidField("Applier", "is required")
	}
	if c.Publisher == nil {
		vb.InvalidField("Publisher", "is required")
	}
	if c.Inventory == nil {
		vb.InvalidField("Inventory", "is required")
	}
	if c.Resources == nil {
		vb.InvalidField("Resources", "is required")
	}
	if c.Catalog == nil {
		vb.InvalidField("Catalog", "is required")
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

	return vb.Build()
}

// Orchestrator executes action requests with full server-side authority
type Orchestrator struct {
	store      Store
	applier    Applier
	publisher  Publisher
	inventory  engine.Inventory
	resources  engine.ResourceService
	catalog    engine.ArsenalCatalog
	players    engine.PlayerService
	characters engine.CharacterService
	factions   engine.FactionService

	mu sync.Mutex
	// prices memoizes per-arsenal catalog lookups for the authority-side
	// cost and rank gates
	prices map[uint64]map[string]arsenal.Details
	// subArsenal marks prefabs sourced from nested arsenals; purchases
	// and refunds are suppressed for them
	subArsenal map[string]struct{}
	// aiSlot is the admin slot designated for AI characters, -1 when unset
	aiSlot int
}

// New creates a new action orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		store:      cfg.Store,
		applier:    cfg.Applier,
		publisher:  cfg.Publisher,
		inventory:  cfg.Inventory,
		resources:  cfg.Resources,
		catalog:    cfg.Catalog,
		players:    cfg.Players,
		characters: cfg.Characters,
		factions:   cfg.Factions,
		prices:     make(map[uint64]map[string]arsenal.Details),
		subArsenal: make(map[string]struct{}),
		aiSlot:     -1,
	}, nil
}

// HandleRequest processes one decoded request. respond is invoked exactly
// once with the correlated outcome, possibly after HandleRequest returns
// when the mutation completes asynchronously.
func (o *Orchestrator) HandleRequest(ctx context.Context, playerID int, req *protocol.Request, respond func(*protocol.Response)) {
	if req == nil || !req.ActionType.Valid() {
		respond(protocol.Fail(req, "Unknown request."))
		return
	}

	reply := respondOnce(respond)

	if req.ActionType.IsAdmin() && !o.players.IsAdmin(playerID) {
		slog.DebugContext(ctx, "admin action rejected",
			"player_id", playerID, "action", req.ActionType)
		reply(protocol.Fail(req, "Admin rights required."))
		return
	}

	switch req.ActionType {
	case protocol.ActionAddItem:
		o.handleAddItem(ctx, playerID, req, reply)
	case protocol.ActionRemoveItem:
		o.handleRemoveItem(ctx, playerID, req, reply)
	case protocol.ActionReplaceItem:
		o.handleReplaceItem(ctx, playerID, req, reply)
	case protocol.ActionChangeVisualIdentity:
		o.handleChangeIdentity(ctx, playerID, req, reply, o.factions.VisualIdentities, o.characters.SetVisualIdentity)
	case protocol.ActionChangeSoundIdentity:
		o.handleChangeIdentity(ctx, playerID, req, reply, o.factions.SoundIdentities, o.characters.SetSoundIdentity)
	case protocol.ActionGetLoadouts:
		o.handleGetLoadouts(ctx, playerID, req, reply)
	case protocol.ActionSaveLoadout:
		o.handleSaveLoadout(ctx, playerID, req, reply)
	case protocol.ActionClearLoadout:
		o.handleClearLoadout(ctx, playerID, req, reply)
	case protocol.ActionApplyLoadout:
		o.handleApplyLoadout(ctx, playerID, req, reply)
	case protocol.ActionGetAdminLoadouts:
		o.handleGetAdminLoadouts(ctx, req, reply)
	case protocol.ActionSaveLoadoutAdmin:
		o.handleSaveAdminLoadout(ctx, playerID, req, reply)
	case protocol.ActionClearLoadoutAdmin:
		o.handleClearAdminLoadout(ctx, playerID, req, reply)
	case protocol.ActionApplyLoadoutAdmin:
		o.handleApplyAdminLoadout(ctx, playerID, req, reply)
	case protocol.ActionSetAILoadoutAdmin:
		o.handleSetAILoadout(ctx, req, reply)
	default:
		reply(protocol.Fail(req, "Unknown request."))
	}
}

// RegisterSubArsenal marks prefabs as sourced from a nested arsenal.
// The set only grows within a server session.
func (o *Orchestrator) RegisterSubArsenal(prefabs []string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, prefab := range prefabs {
		o.subArsenal[prefab] = struct{}{}
	}
}

// AILoadoutSlot returns the admin slot designated for AI characters,
// -1 when none is set
func (o *Orchestrator) AILoadoutSlot() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.aiSlot
}

// respondOnce guards the exactly-one-response contract against double
// invocation from chained completion callbacks
func respondOnce(respond func(*protocol.Response)) func(*protocol.Response) {
	var once sync.Once
	return func(resp *protocol.Response) {
		once.Do(func() { respond(resp) })
	}
}

// costAndRank resolves a prefab's catalog cost and rank requirement for
// an arsenal, memoizing the catalog per arsenal. Unknown prefabs price
// as free with no rank requirement.
func (o *Orchestrator) costAndRank(arsenalID uint64, prefab string) (float64, loadout.Rank, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	prices, ok := o.prices[arsenalID]
	if !ok {
		items, err := o.catalog.Items(arsenalID)
		if err != nil {
			return 0, loadout.RankInvalid, errors.Unavailablef("arsenal %d catalog unavailable", arsenalID)
		}
		prices = make(map[string]arsenal.Details, len(items))
		for _, item := range items {
			prices[item.Prefab] = arsenal.Details{
				SupplyCost:   item.SupplyCost,
				RequiredRank: item.RequiredRank,
			}
		}
		o.prices[arsenalID] = prices
	}

	details, ok := prices[prefab]
	if !ok {
		return 0, loadout.RankInvalid, nil
	}

	rank := details.RequiredRank
	if !o.catalog.RankLocked() {
		rank = loadout.RankInvalid
	}
	return details.SupplyCost, rank, nil
}

func (o *Orchestrator) inSubArsenal(prefab string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.subArsenal[prefab]
	return ok
}

// charge runs the authority-side rank and supply gates for acquiring
// prefab from the arsenal. It returns the amount actually debited, or a
// user-facing failure message.
func (o *Orchestrator) charge(ctx context.Context, playerID int, arsenalID uint64, prefab string) (float64, string) {
	cost, requiredRank, err := o.costAndRank(arsenalID, prefab)
	if err != nil {
		return 0, "Arsenal is unavailable."
	}

	if !o.players.Rank(playerID).Meets(requiredRank) {
		slog.DebugContext(ctx, "rank gate rejected item",
			"player_id", playerID, "prefab", prefab, "required_rank", requiredRank.String())
		return 0, fmt.Sprintf("Requires rank %s.", requiredRank)
	}

	if cost <= 0 || o.inSubArsenal(prefab) || !o.resources.SuppliesEnabled(arsenalID) {
		return 0, ""
	}

	amount := cost * o.resources.BuyMultiplier(arsenalID)
	reason, err := o.resources.Consume(ctx, arsenalID, amount)
	if err != nil {
		return 0, "Supply system is unavailable."
	}
	switch reason {
	case engine.ConsumeOK:
		return amount, ""
	case engine.ConsumeInsufficient:
		return 0, "Not enough supplies."
	default:
		return 0, "Supply system is unavailable."
	}
}

// rollback credits back a failed charge, best effort
func (o *Orchestrator) rollback(ctx context.Context, arsenalID uint64, amount float64) {
	if amount <= 0 {
		return
	}
	if err := o.resources.Credit(ctx, arsenalID, amount); err != nil {
		slog.WarnContext(ctx, "failed to roll back supply charge",
			"arsenal_id", arsenalID, "amount", amount, "error", err)
	}
}

// refundRemoved credits the partial refund for a removed item, best
// effort, suppressed for nested-arsenal items
func (o *Orchestrator) refundRemoved(ctx context.Context, arsenalID uint64, prefab string) {
	if prefab == "" || o.inSubArsenal(prefab) {
		return
	}
	cost, _, err := o.costAndRank(arsenalID, prefab)
	if err != nil || cost <= 0 {
		return
	}
	refund := o.resources.RefundAmount(arsenalID, cost)
	if refund <= 0 {
		return
	}
	if err := o.resources.Credit(ctx, arsenalID, refund); err != nil {
		slog.WarnContext(ctx, "failed to credit removal refund",
			"arsenal_id", arsenalID, "prefab", prefab, "error", err)
	}
}

// resolveSlot maps a request's storage reference to a live slot. A nil
// slot with a non-empty message means resolution failed.
func (o *Orchestrator) resolveSlot(req *protocol.Request) (engine.Storage, engine.Slot, string) {
	storage, ok := o.inventory.ResolveStorage(req.StorageID)
	if !ok {
		return nil, nil, "Storage no longer exists."
	}
	slot, ok := storage.Slot(req.StorageSlotID)
	if !ok {
		return nil, nil, "Storage slot no longer exists."
	}
	return storage, slot, ""
}
