package loadouts

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
)

// Storage location versions. The legacy location is read-only migration
// input; everything written goes under the current version.
const (
	currentVersion = "1.1.0"
	legacyVersion  = "1.0.0"
)

// FileConfig holds file repository configuration
type FileConfig struct {
	// Root is the base directory for all loadout bundles
	Root string
}

// FileRepository persists bundles as JSON files under a version-stamped
// directory tree: <root>/<version>/<faction>/<identity[0:2]>/<identity>,
// with the admin pool as a single <root>/<version>/admin_loadouts file.
// The two-character identity shard keeps faction directories from
// growing into huge flat listings.
type FileRepository struct {
	root string
}

var _ Repository = (*FileRepository)(nil)

// NewFileRepository creates a file-backed repository
func NewFileRepository(cfg *FileConfig) (*FileRepository, error) {
	if cfg == nil || cfg.Root == "" {
		return nil, errors.InvalidArgument("file repository root is required")
	}
	return &FileRepository{root: cfg.Root}, nil
}

func (r *FileRepository) path(version string, input LoadInput) (string, error) {
	if input.Admin {
		return filepath.Join(r.root, version, AdminIdentity), nil
	}

	if err := errors.NewValidationBuilder().
		RequiredField("identity_id", input.IdentityID).
		RequiredField("faction_key", input.FactionKey).
		Build(); err != nil {
		return "", err
	}
	if len(input.IdentityID) < 2 {
		return "", errors.InvalidArgumentf("identity ID too short: %q", input.IdentityID)
	}

	return filepath.Join(r.root, version, input.FactionKey, input.IdentityID[:2], input.IdentityID), nil
}

// Load implements Repository.Load
func (r *FileRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	current, err := r.path(currentVersion, input)
	if err != nil {
		return nil, err
	}

	path := current
	migrated := false

	raw, readErr := os.ReadFile(path) // #nosec G304 // path is built from validated segments
	if readErr != nil {
		if !os.IsNotExist(readErr) {
			return nil, errors.WrapWithCode(readErr, errors.CodeInternal, "failed to read loadout bundle")
		}

		legacy, err := r.path(legacyVersion, input)
		if err != nil {
			return nil, err
		}

		raw, readErr = os.ReadFile(legacy) // #nosec G304
		if readErr != nil {
			if os.IsNotExist(readErr) {
				return nil, errors.NotFoundf("no loadout bundle for identity %q", input.IdentityID)
			}
			return nil, errors.WrapWithCode(readErr, errors.CodeInternal, "failed to read legacy loadout bundle")
		}

		slog.InfoContext(ctx, "found legacy loadout bundle, migrating", "path", legacy)
		path = legacy
		migrated = true
	}

	storage := loadout.NewFactionStorage()
	if err := json.Unmarshal(raw, storage); err != nil {
		// corrupt bundles are treated as no data, never as a crash
		slog.WarnContext(ctx, "corrupt loadout bundle, treating as empty",
			"path", path, "error", err)
		return nil, errors.NotFoundf("loadout bundle at %q is unreadable", path)
	}

	healed := storage.Normalize()
	if healed > 0 {
		slog.WarnContext(ctx, "healed slot index mismatches in loadout bundle",
			"path", path, "corrections", healed)
	}

	if migrated {
		if _, err := r.Save(ctx, SaveInput{
			IdentityID: input.IdentityID,
			FactionKey: input.FactionKey,
			Admin:      input.Admin,
			Storage:    storage,
		}); err != nil {
			// migration re-save failure is not fatal: the legacy file remains
			slog.WarnContext(ctx, "failed to re-save migrated bundle", "error", err)
		}
	}

	return &LoadOutput{Storage: storage, Migrated: migrated, Healed: healed}, nil
}

// Save implements Repository.Save. The bundle is written to a temporary
// file and renamed into place so readers never observe a half-written
// bundle.
func (r *FileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Storage == nil {
		return nil, errors.InvalidArgument("storage bundle is required")
	}

	path, err := r.path(currentVersion, LoadInput{
		IdentityID: input.IdentityID,
		FactionKey: input.FactionKey,
		Admin:      input.Admin,
	})
	if err != nil {
		return nil, err
	}

	raw, err := json.MarshalIndent(input.Storage, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize loadout bundle")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create loadout directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create temp bundle file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to write loadout bundle")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to close loadout bundle")
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to replace loadout bundle")
	}

	slog.DebugContext(ctx, "loadout bundle saved", "path", path)
	return &SaveOutput{}, nil
}
