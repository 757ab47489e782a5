// Package loadouts defines the interface for loadout bundle persistence
package loadouts

//go:generate mockgen -destination=mock/mock_repository.go -package=loadoutsmock github.com/paddockgames/loadout-api/internal/repositories/loadouts Repository

import (
	"context"

	"github.com/paddockgames/loadout-api/internal/entities/loadout"
)

// AdminIdentity is the reserved bundle name for the shared admin pool.
// Admin loadouts are not partitioned by player identity or faction.
const AdminIdentity = "admin_loadouts"

// Repository persists per-identity loadout bundles. A bundle is the whole
// FactionStorage object; saves always write the full bundle so a reader
// observes either the previous bundle or the new one, never a partial.
type Repository interface {
	// Load retrieves a stored bundle, consulting the legacy location as a
	// one-time migration source when the current one is absent.
	// Returns errors.InvalidArgument for unusable identities
	// Returns errors.NotFound if no bundle exists at either location,
	// including when the stored data is corrupt (treated as no data)
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save persists the full bundle to the current-version location
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// LoadInput defines the input for loading a bundle
type LoadInput struct {
	// IdentityID is the player's persistent identity string, ignored
	// when Admin is set
	IdentityID string
	// FactionKey partitions the storage location, ignored when Admin is set
	FactionKey string
	// Admin selects the shared admin pool bundle
	Admin bool
}

// LoadOutput defines the output for loading a bundle
type LoadOutput struct {
	Storage *loadout.FactionStorage
	// Migrated is true when the bundle came from the legacy location and
	// has been re-saved to the current one
	Migrated bool
	// Healed counts slot-index corrections applied after load
	Healed int
}

// SaveInput defines the input for saving a bundle
type SaveInput struct {
	IdentityID string
	FactionKey string
	Admin      bool
	Storage    *loadout.FactionStorage
}

// SaveOutput defines the output for saving a bundle
type SaveOutput struct {
	// Empty for now, can be extended later
}
