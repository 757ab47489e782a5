// Package arsenal defines the catalog-side item model: what an arsenal
// offers, how items are classified, and how slots describe themselves to
// the compatibility cache.
package arsenal

import (
	"sort"
	"strings"

	"github.com/paddockgames/loadout-api/internal/entities/loadout"
)

// ItemMode is a bit flag classifying how an item is acquired and slotted
type ItemMode uint32

// Item modes
const (
	ModeDefault ItemMode = 1 << iota
	ModeWeapon
	ModeWeaponVariants
	ModeAttachment
	ModeAmmunition
	ModeConsumable
)

var itemModeNames = []struct {
	mode ItemMode
	name string
}{
	{ModeDefault, "DEFAULT"},
	{ModeWeapon, "WEAPON"},
	{ModeWeaponVariants, "WEAPON_VARIANTS"},
	{ModeAttachment, "ATTACHMENT"},
	{ModeAmmunition, "AMMUNITION"},
	{ModeConsumable, "CONSUMABLE"},
}

// HasAny reports whether the mode shares at least one flag with mask
func (m ItemMode) HasAny(mask ItemMode) bool {
	return m&mask != 0
}

// String renders the set flags joined by underscores, for cache keys
func (m ItemMode) String() string {
	var parts []string
	for _, e := range itemModeNames {
		if m&e.mode != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "_")
}

// ItemType is a bit flag classifying what an item is
type ItemType uint32

// Item types
const (
	TypeRifle ItemType = 1 << iota
	TypePistol
	TypeMachineGun
	TypeSniperRifle
	TypeRocketLauncher
	TypeLethalThrowable
	TypeNonLethalThrowable
	TypeExplosives
	TypeWeaponAttachment
	TypeMagazine
	TypeEquipment
	TypeHealthItem
	TypeRadio
	TypeClothes
)

// TypeAnyWeapon covers everything holdable in a weapon slot
const TypeAnyWeapon = TypeRifle | TypePistol | TypeMachineGun | TypeSniperRifle | TypeRocketLauncher

var itemTypeNames = []struct {
	typ  ItemType
	name string
}{
	{TypeRifle, "RIFLE"},
	{TypePistol, "PISTOL"},
	{TypeMachineGun, "MACHINE_GUN"},
	{TypeSniperRifle, "SNIPER_RIFLE"},
	{TypeRocketLauncher, "ROCKET_LAUNCHER"},
	{TypeLethalThrowable, "LETHAL_THROWABLE"},
	{TypeNonLethalThrowable, "NON_LETHAL_THROWABLE"},
	{TypeExplosives, "EXPLOSIVES"},
	{TypeWeaponAttachment, "WEAPON_ATTACHMENT"},
	{TypeMagazine, "MAGAZINE"},
	{TypeEquipment, "EQUIPMENT"},
	{TypeHealthItem, "HEALTH_ITEM"},
	{TypeRadio, "RADIO"},
	{TypeClothes, "CLOTHES"},
}

// HasAny reports whether the type shares at least one flag with mask
func (t ItemType) HasAny(mask ItemType) bool {
	return t&mask != 0
}

// String renders the set flags joined by underscores, for cache keys
func (t ItemType) String() string {
	var parts []string
	for _, e := range itemTypeNames {
		if t&e.typ != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "_")
}

// Item is one equippable prefab known to an arsenal catalog
type Item struct {
	Prefab       string
	Mode         ItemMode
	Type         ItemType
	SupplyCost   float64
	RequiredRank loadout.Rank
}

// Details is the per-prefab cost/rank pair memoized for O(1) lookup
type Details struct {
	SupplyCost   float64
	RequiredRank loadout.Rank
}

// SortItems orders items by prefab name for stable choice lists
func SortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Prefab < items[j].Prefab
	})
}
