package arsenal

import "fmt"

// SlotCategory classifies an equip point for compatibility filtering.
// Two slots of the same category and subtype always admit the same items,
// which is what makes memoization by key sound.
type SlotCategory int

// Slot categories, one per compatibility predicate
const (
	SlotClothing SlotCategory = iota
	SlotAttachment
	SlotWeapon
	SlotEquipment
	SlotMagazine
)

var slotCategoryNames = map[SlotCategory]string{
	SlotClothing:   "CHARACTER_LOADOUT",
	SlotAttachment: "ATTACHMENT",
	SlotWeapon:     "CHARACTER_WEAPON",
	SlotEquipment:  "CHARACTER_EQUIPMENT",
	SlotMagazine:   "MAGAZINE",
}

// String returns the category's cache-key name
func (c SlotCategory) String() string {
	if name, ok := slotCategoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("SLOT_CATEGORY_%d", int(c))
}

// SlotDescriptor identifies the compatibility class of a single equip
// point: the category plus a category-specific subtype string (clothing
// area type, attachment slot type, weapon slot type, equipment source
// name, or magazine well type).
type SlotDescriptor struct {
	Category SlotCategory
	Subtype  string
}

// CacheKey returns the composite memoization key for the descriptor
func (d SlotDescriptor) CacheKey() string {
	return fmt.Sprintf("%s_%s", d.Category, d.Subtype)
}

// StorageType classifies where a storage reference points on a character
type StorageType int

// Storage types
const (
	StorageUnknown StorageType = iota
	StorageCharacter
	StorageWeapon
	StorageClothing
	StorageArsenal
)

// SlotRef identifies a single equip point over the wire: an opaque
// replicated storage identifier plus the slot index within it.
type SlotRef struct {
	StorageID uint64 `json:"storageId"`
	SlotIndex int    `json:"slotIndex"`
}

// WeaponSlotFilter resolves a weapon slot subtype to the item mode/type
// mask admitted by that slot. Unknown subtypes return ok=false and the
// caller treats the slot as offering nothing.
func WeaponSlotFilter(weaponSlotType string) (mode ItemMode, typ ItemType, ok bool) {
	switch weaponSlotType {
	case "primary":
		return ModeWeapon | ModeWeaponVariants, TypeRifle | TypeSniperRifle | TypeMachineGun | TypeRocketLauncher, true
	case "launcher":
		return ModeWeapon | ModeWeaponVariants, TypeRocketLauncher, true
	case "secondary":
		return ModeWeapon | ModeWeaponVariants, TypePistol, true
	case "grenade":
		return ModeDefault, TypeLethalThrowable, true
	case "throwable":
		return ModeDefault, TypeLethalThrowable | TypeNonLethalThrowable, true
	default:
		return 0, 0, false
	}
}
