// Package loadout defines the persisted loadout record model: per-player,
// per-faction, slot-indexed character snapshots with display metadata.
package loadout

import (
	"fmt"
	"strconv"
	"strings"
)

// MetadataEmpty is the sentinel written into a summary field when the
// corresponding item list is empty. It is part of the file format.
const MetadataEmpty = "N/A"

// RecordFormatVersion is stamped into every record written by this build
const RecordFormatVersion = 1

// Record is one saved loadout slot. JSON field names are fixed by the
// persisted file format and must not change.
type Record struct {
	MetadataClothes string  `json:"metadata_clothes"`
	MetadataWeapons string  `json:"metadata_weapons"`
	Name            string  `json:"loadoutName"`
	Prefab          string  `json:"prefab"`
	Data            string  `json:"data"`
	RequiredRank    string  `json:"required_rank"`
	SupplyCost      float64 `json:"supplyCost"`
	SlotID          int     `json:"slotId"`
	CreatedAt       int64   `json:"createdAt"`
	ModifiedAt      int64   `json:"modifiedAt"`
	FormatVersion   int     `json:"formatVersion"`
}

// NewEmptyRecord returns a cleared record holding only its slot position
func NewEmptyRecord(slotID int) *Record {
	return &Record{
		SlotID:        slotID,
		FormatVersion: RecordFormatVersion,
	}
}

// HasData reports whether the slot holds a usable saved loadout. The
// weapons summary doubles as the presence marker: empty or the N/A
// sentinel means the slot is clear.
func (r *Record) HasData() bool {
	return r.MetadataWeapons != "" && r.MetadataWeapons != MetadataEmpty
}

// DisplayName returns the UI label for the slot. Custom names win;
// otherwise the first weapon in the summary names the loadout. Slot
// numbering is 1-indexed for display.
func (r *Record) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}

	if r.HasData() {
		weapons := strings.Split(r.MetadataWeapons, "\n")
		if len(weapons) > 0 && weapons[0] != "" {
			return fmt.Sprintf("Loadout %d: %s", r.SlotID+1, weapons[0])
		}
	}

	return fmt.Sprintf("Loadout Slot %d", r.SlotID+1)
}

// Clear resets every content field but keeps the slot position. Clearing
// is a soft delete so slots retain positional identity.
func (r *Record) Clear() {
	r.MetadataClothes = ""
	r.MetadataWeapons = ""
	r.Name = ""
	r.Prefab = ""
	r.Data = ""
	r.RequiredRank = ""
	r.SupplyCost = 0
	r.CreatedAt = 0
	r.ModifiedAt = 0
}

// Copy returns a detached copy of the record
func (r *Record) Copy() *Record {
	c := *r
	return &c
}

// FactionStorage is the full per-identity loadout bundle persisted as one
// file: faction key → slot index (as string) → record.
type FactionStorage struct {
	StorageFormatVersion int                           `json:"storageFormatVersion"`
	PlayerLoadouts       map[string]map[string]*Record `json:"playerLoadouts"`
}

// StorageFormatVersionCurrent is stamped into bundles written by this build
const StorageFormatVersionCurrent = 1

// NewFactionStorage returns an empty bundle at the current format version
func NewFactionStorage() *FactionStorage {
	return &FactionStorage{
		StorageFormatVersion: StorageFormatVersionCurrent,
		PlayerLoadouts:       make(map[string]map[string]*Record),
	}
}

// SlotKey renders a slot index as the map key used in the persisted format
func SlotKey(slotIndex int) string {
	return strconv.Itoa(slotIndex)
}

// Faction returns the slot map for a faction, creating empty records for
// every missing slot so all slotCount slots exist from the start. Loaded
// bundles can be sparse: older writers persisted only slots that were
// ever saved, so an existing faction map still needs backfilling.
func (s *FactionStorage) Faction(factionKey string, slotCount int) map[string]*Record {
	if s.PlayerLoadouts == nil {
		s.PlayerLoadouts = make(map[string]map[string]*Record)
	}
	slots, ok := s.PlayerLoadouts[factionKey]
	if !ok {
		slots = make(map[string]*Record, slotCount)
		s.PlayerLoadouts[factionKey] = slots
	}
	for i := 0; i < slotCount; i++ {
		if key := SlotKey(i); slots[key] == nil {
			slots[key] = NewEmptyRecord(i)
		}
	}
	return slots
}

// Slot returns the record at (faction, slotIndex), or nil if the faction
// has never been touched or the index is absent.
func (s *FactionStorage) Slot(factionKey string, slotIndex int) *Record {
	slots, ok := s.PlayerLoadouts[factionKey]
	if !ok {
		return nil
	}
	return slots[SlotKey(slotIndex)]
}

// Normalize cross-checks every record's stored slot index against its map
// key and corrects mismatches in place. Returns the number of corrections,
// so callers can log when a file needed healing.
func (s *FactionStorage) Normalize() int {
	fixed := 0
	for _, slots := range s.PlayerLoadouts {
		for key, rec := range slots {
			if rec == nil {
				continue
			}
			idx, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			if rec.SlotID != idx {
				rec.SlotID = idx
				fixed++
			}
			if rec.FormatVersion == 0 {
				rec.FormatVersion = RecordFormatVersion
			}
		}
	}
	return fixed
}
