package loadout_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockgames/loadout-api/internal/entities/loadout"
)

func TestHasData(t *testing.T) {
	rec := loadout.NewEmptyRecord(0)
	assert.False(t, rec.HasData())

	rec.MetadataWeapons = loadout.MetadataEmpty
	assert.False(t, rec.HasData())

	rec.MetadataWeapons = "M16A2"
	assert.True(t, rec.HasData())
}

func TestDisplayNameFromFirstWeapon(t *testing.T) {
	rec := loadout.NewEmptyRecord(2)
	rec.MetadataWeapons = "Rifle\n"
	rec.Data = "{}"
	rec.Prefab = "Characters/US_Rifleman.et"

	assert.Equal(t, "Loadout 3: Rifle", rec.DisplayName())
}

func TestDisplayNameCustomNameWins(t *testing.T) {
	rec := loadout.NewEmptyRecord(0)
	rec.MetadataWeapons = "Rifle"
	rec.Name = "CQB kit"

	assert.Equal(t, "CQB kit", rec.DisplayName())
}

func TestDisplayNameEmptySlot(t *testing.T) {
	rec := loadout.NewEmptyRecord(4)
	assert.Equal(t, "Loadout Slot 5", rec.DisplayName())
}

func TestClearIsIdempotent(t *testing.T) {
	rec := loadout.NewEmptyRecord(3)
	rec.MetadataClothes = "Helmet"
	rec.MetadataWeapons = "Rifle"
	rec.Name = "kit"
	rec.Prefab = "p"
	rec.Data = "d"
	rec.RequiredRank = "CORPORAL"
	rec.SupplyCost = 120
	rec.CreatedAt = 100
	rec.ModifiedAt = 200

	rec.Clear()
	first := *rec
	rec.Clear()

	assert.Equal(t, first, *rec)
	assert.False(t, rec.HasData())
	assert.Equal(t, 3, rec.SlotID, "clear keeps slot position")
}

func TestRecordJSONFieldNames(t *testing.T) {
	rec := loadout.NewEmptyRecord(1)
	rec.MetadataWeapons = "Rifle"
	rec.RequiredRank = "SERGEANT"

	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{
		"metadata_clothes", "metadata_weapons", "loadoutName", "prefab",
		"data", "required_rank", "supplyCost", "slotId",
		"createdAt", "modifiedAt", "formatVersion",
	} {
		assert.Contains(t, fields, key)
	}
}

func TestFactionCreatesEmptySlots(t *testing.T) {
	store := loadout.NewFactionStorage()
	slots := store.Faction("US", 5)

	require.Len(t, slots, 5)
	for i := 0; i < 5; i++ {
		rec := slots[loadout.SlotKey(i)]
		require.NotNil(t, rec)
		assert.Equal(t, i, rec.SlotID)
		assert.False(t, rec.HasData())
	}

	// second access returns the same map, no reset
	slots["2"].MetadataWeapons = "Rifle"
	again := store.Faction("US", 5)
	assert.True(t, again["2"].HasData())
}

func TestFactionBackfillsSparseBundle(t *testing.T) {
	// older writers persisted only slots that were ever saved
	store := loadout.NewFactionStorage()
	store.PlayerLoadouts["US"] = map[string]*loadout.Record{
		"2": {SlotID: 2, MetadataWeapons: "Rifle", Data: "{}"},
	}

	slots := store.Faction("US", 5)

	require.Len(t, slots, 5)
	for i := 0; i < 5; i++ {
		rec := slots[loadout.SlotKey(i)]
		require.NotNil(t, rec)
		assert.Equal(t, i, rec.SlotID)
	}
	assert.True(t, slots["2"].HasData())
}

func TestNormalizeHealsSlotMismatch(t *testing.T) {
	store := loadout.NewFactionStorage()
	store.Faction("US", 3)
	store.PlayerLoadouts["US"]["2"].SlotID = 7

	fixed := store.Normalize()

	assert.Equal(t, 1, fixed)
	assert.Equal(t, 2, store.PlayerLoadouts["US"]["2"].SlotID)
}

func TestRankMeets(t *testing.T) {
	assert.True(t, loadout.RankPrivate.Meets(loadout.RankInvalid), "no requirement always passes")
	assert.True(t, loadout.RankSergeant.Meets(loadout.RankCorporal))
	assert.True(t, loadout.RankCorporal.Meets(loadout.RankCorporal))
	assert.False(t, loadout.RankPrivate.Meets(loadout.RankSergeant))
	assert.False(t, loadout.RankInvalid.Meets(loadout.RankPrivate), "unranked player fails real requirements")
}

func TestParseRankDefaultsToInvalid(t *testing.T) {
	assert.Equal(t, loadout.RankCorporal, loadout.ParseRank("CORPORAL"))
	assert.Equal(t, loadout.RankInvalid, loadout.ParseRank(""))
	assert.Equal(t, loadout.RankInvalid, loadout.ParseRank("FIELD_MARSHAL"))
}

func TestMaxRank(t *testing.T) {
	assert.Equal(t, loadout.RankSergeant, loadout.MaxRank(loadout.RankPrivate, loadout.RankSergeant))
	assert.Equal(t, loadout.RankPrivate, loadout.MaxRank(loadout.RankPrivate, loadout.RankInvalid))
	assert.Equal(t, loadout.RankInvalid, loadout.MaxRank(loadout.RankInvalid, loadout.RankInvalid))
}
