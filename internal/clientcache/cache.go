// Package clientcache implements the client-side prediction cache for
// saved-loadout validity. The deploy screen opens before any editor
// state exists, so it reads this cache instead of waiting on a round
// trip per slot. The cache is advisory: the server re-validates at
// spawn time, so a stale entry costs at worst one rejected selection.
package clientcache

import (
	"sync"

	"github.com/paddockgames/loadout-api/internal/protocol"
)

// Cache holds the last pushed validity snapshot. Before the first push
// it answers every query optimistically so the UI never renders empty
// on first paint.
type Cache struct {
	mu          sync.RWMutex
	initialized bool
	validSlots  map[string]map[int]struct{}
	data        map[string]map[int]protocol.LoadoutTransfer
}

// New creates an empty, uninitialized cache
func New() *Cache {
	return &Cache{
		validSlots: make(map[string]map[int]struct{}),
		data:       make(map[string]map[int]protocol.LoadoutTransfer),
	}
}

// Initialized reports whether a server push has been received
func (c *Cache) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// IsValid reports whether a slot holds a usable loadout. Uninitialized
// caches answer true for every slot.
func (c *Cache) IsValid(factionKey string, slotIndex int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return true
	}
	slots, ok := c.validSlots[factionKey]
	if !ok {
		return false
	}
	_, ok = slots[slotIndex]
	return ok
}

// GetDenormalizedData returns the pushed per-slot payload, false when the
// slot has none
func (c *Cache) GetDenormalizedData(factionKey string, slotIndex int) (protocol.LoadoutTransfer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slots, ok := c.data[factionKey]
	if !ok {
		return protocol.LoadoutTransfer{}, false
	}
	transfer, ok := slots[slotIndex]
	return transfer, ok
}

// ApplyPush ingests a full snapshot. Factions present in the push are
// replaced wholesale; factions absent from it keep their prior entries.
// The first push flips the cache out of its optimistic state.
func (c *Cache) ApplyPush(push *protocol.CachePush) {
	if push == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.initialized = true

	for factionKey, indexes := range push.ValidSlots {
		slots := make(map[int]struct{}, len(indexes))
		for _, idx := range indexes {
			slots[idx] = struct{}{}
		}
		c.validSlots[factionKey] = slots
		delete(c.data, factionKey)
	}

	for _, transfer := range push.LoadoutData {
		slots, ok := c.data[transfer.FactionKey]
		if !ok {
			slots = make(map[int]protocol.LoadoutTransfer)
			c.data[transfer.FactionKey] = slots
		}
		slots[transfer.SlotIndex] = transfer
	}
}

// ApplySlotUpdate ingests a single-slot validity change. Updates for an
// uninitialized cache are ignored; a full push must arrive first.
func (c *Cache) ApplySlotUpdate(update *protocol.SlotUpdate) {
	if update == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	slots, ok := c.validSlots[update.FactionKey]
	if !ok {
		slots = make(map[int]struct{})
		c.validSlots[update.FactionKey] = slots
	}

	if update.Valid {
		slots[update.SlotIndex] = struct{}{}
		return
	}
	delete(slots, update.SlotIndex)
	if faction, ok := c.data[update.FactionKey]; ok {
		delete(faction, update.SlotIndex)
	}
}

// Clear resets the cache to its optimistic pre-push state, called on
// disconnect
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.initialized = false
	c.validSlots = make(map[string]map[int]struct{})
	c.data = make(map[string]map[int]protocol.LoadoutTransfer)
}
