package respawn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paddockgames/loadout-api/internal/engine"
	"github.com/paddockgames/loadout-api/internal/errors"
	loadoutstore "github.com/paddockgames/loadout-api/internal/orchestrators/loadouts"
)

// slotNamePrefix is the synthetic deploy-menu slot naming scheme,
// "Slot1" through "SlotN", 1-indexed for display
const slotNamePrefix = "Slot"

// SlotOption is one selectable saved-loadout entry in the deploy menu
type SlotOption struct {
	// Name is the synthetic slot identifier, e.g. "Slot3"
	Name string
	// Index is the zero-based loadout slot the name maps to
	Index int
	// Prefab is the faction's base character prefab, used when the
	// saved record carries none
	Prefab string
}

// SlotRegistry maps the deploy menu's synthetic slot names onto loadout
// slot indexes, with per-faction character prefab defaults.
type SlotRegistry struct {
	factions engine.FactionService
}

// NewSlotRegistry creates a slot registry backed by the faction service
func NewSlotRegistry(factions engine.FactionService) (*SlotRegistry, error) {
	if factions == nil {
		return nil, errors.InvalidArgument("faction service is required")
	}
	return &SlotRegistry{factions: factions}, nil
}

// SlotName renders the synthetic name for a loadout slot index
func SlotName(index int) string {
	return fmt.Sprintf("%s%d", slotNamePrefix, index+1)
}

// ParseSlotName resolves a synthetic slot name back to its index.
// Returns false for names outside the scheme or the slot range.
func ParseSlotName(name string) (int, bool) {
	if !strings.HasPrefix(name, slotNamePrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(slotNamePrefix):])
	if err != nil || n < 1 || n > loadoutstore.MaxLoadoutsPerPlayer {
		return 0, false
	}
	return n - 1, true
}

// Slots lists the deploy-menu slot options for a faction.
// Returns errors.NotFound for unregistered factions
func (r *SlotRegistry) Slots(factionKey string) ([]SlotOption, error) {
	if !r.factions.Exists(factionKey) {
		return nil, errors.NotFoundf("faction %q is not registered", factionKey)
	}

	prefab, err := r.factions.DefaultCharacterPrefab(factionKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve faction character prefab")
	}

	options := make([]SlotOption, 0, loadoutstore.MaxLoadoutsPerPlayer)
	for i := 0; i < loadoutstore.MaxLoadoutsPerPlayer; i++ {
		options = append(options, SlotOption{
			Name:   SlotName(i),
			Index:  i,
			Prefab: prefab,
		})
	}
	return options, nil
}
