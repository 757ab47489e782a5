package respawn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	enginemock "github.com/paddockgames/loadout-api/internal/engine/mock"
	"github.com/paddockgames/loadout-api/internal/errors"
	loadoutstore "github.com/paddockgames/loadout-api/internal/orchestrators/loadouts"
	"github.com/paddockgames/loadout-api/internal/orchestrators/respawn"
)

func TestSlotNameRoundTrip(t *testing.T) {
	for i := 0; i < loadoutstore.MaxLoadoutsPerPlayer; i++ {
		name := respawn.SlotName(i)
		idx, ok := respawn.ParseSlotName(name)
		require.True(t, ok, name)
		assert.Equal(t, i, idx)
	}

	assert.Equal(t, "Slot1", respawn.SlotName(0))
	assert.Equal(t, "Slot5", respawn.SlotName(4))
}

func TestParseSlotNameRejectsBadNames(t *testing.T) {
	cases := []string{"", "Slot", "Slot0", "Slot6", "Slotx", "Loadout1", "slot1"}
	for _, name := range cases {
		_, ok := respawn.ParseSlotName(name)
		assert.False(t, ok, name)
	}
}

func TestRegistrySlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factions := enginemock.NewMockFactionService(ctrl)
	factions.EXPECT().Exists("US").Return(true)
	factions.EXPECT().DefaultCharacterPrefab("US").Return("{CHAR_US}Character_US.et", nil)

	registry, err := respawn.NewSlotRegistry(factions)
	require.NoError(t, err)

	options, err := registry.Slots("US")
	require.NoError(t, err)
	require.Len(t, options, loadoutstore.MaxLoadoutsPerPlayer)
	assert.Equal(t, "Slot1", options[0].Name)
	assert.Equal(t, 0, options[0].Index)
	assert.Equal(t, "{CHAR_US}Character_US.et", options[0].Prefab)
}

func TestRegistryUnknownFaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factions := enginemock.NewMockFactionService(ctrl)
	factions.EXPECT().Exists("PIRATES").Return(false)

	registry, err := respawn.NewSlotRegistry(factions)
	require.NoError(t, err)

	_, err = registry.Slots("PIRATES")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
