package clientcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockgames/loadout-api/internal/clientcache"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

func TestOptimisticBeforeFirstPush(t *testing.T) {
	cache := clientcache.New()

	assert.False(t, cache.Initialized())
	assert.True(t, cache.IsValid("US", 0))
	assert.True(t, cache.IsValid("USSR", 4))
}

func TestPushReplacesOptimism(t *testing.T) {
	cache := clientcache.New()

	cache.ApplyPush(&protocol.CachePush{
		ValidSlots: map[string][]int{"US": {1, 3}},
	})

	require.True(t, cache.Initialized())
	assert.False(t, cache.IsValid("US", 0))
	assert.True(t, cache.IsValid("US", 1))
	assert.False(t, cache.IsValid("US", 2))
	assert.True(t, cache.IsValid("US", 3))
}

func TestPushReplacesIncludedFactionsWholesale(t *testing.T) {
	cache := clientcache.New()

	cache.ApplyPush(&protocol.CachePush{
		ValidSlots: map[string][]int{"US": {0, 1}, "USSR": {2}},
	})
	cache.ApplyPush(&protocol.CachePush{
		ValidSlots: map[string][]int{"US": {4}},
	})

	// US was replaced wholesale, USSR untouched
	assert.False(t, cache.IsValid("US", 0))
	assert.False(t, cache.IsValid("US", 1))
	assert.True(t, cache.IsValid("US", 4))
	assert.True(t, cache.IsValid("USSR", 2))
}

func TestUnknownFactionAfterInitIsInvalid(t *testing.T) {
	cache := clientcache.New()
	cache.ApplyPush(&protocol.CachePush{ValidSlots: map[string][]int{"US": {0}}})

	assert.False(t, cache.IsValid("FIA", 0))
}

func TestDenormalizedData(t *testing.T) {
	cache := clientcache.New()

	cache.ApplyPush(&protocol.CachePush{
		ValidSlots: map[string][]int{"US": {2}},
		LoadoutData: []protocol.LoadoutTransfer{
			{FactionKey: "US", SlotIndex: 2, Prefab: "{CHAR}US.et", LoadoutData: "SNAPSHOT", Cost: 120},
		},
	})

	transfer, ok := cache.GetDenormalizedData("US", 2)
	require.True(t, ok)
	assert.Equal(t, "SNAPSHOT", transfer.LoadoutData)
	assert.Equal(t, 120.0, transfer.Cost)

	_, ok = cache.GetDenormalizedData("US", 0)
	assert.False(t, ok)
}

func TestSlotUpdate(t *testing.T) {
	cache := clientcache.New()

	// updates before the first push are ignored
	cache.ApplySlotUpdate(&protocol.SlotUpdate{FactionKey: "US", SlotIndex: 1, Valid: true})
	assert.False(t, cache.Initialized())

	cache.ApplyPush(&protocol.CachePush{ValidSlots: map[string][]int{"US": {1}}})

	cache.ApplySlotUpdate(&protocol.SlotUpdate{FactionKey: "US", SlotIndex: 3, Valid: true})
	assert.True(t, cache.IsValid("US", 3))

	cache.ApplySlotUpdate(&protocol.SlotUpdate{FactionKey: "US", SlotIndex: 1, Valid: false})
	assert.False(t, cache.IsValid("US", 1))
}

func TestClearReturnsToOptimism(t *testing.T) {
	cache := clientcache.New()
	cache.ApplyPush(&protocol.CachePush{ValidSlots: map[string][]int{"US": {1}}})
	require.False(t, cache.IsValid("US", 0))

	cache.Clear()

	assert.False(t, cache.Initialized())
	assert.True(t, cache.IsValid("US", 0))
}
