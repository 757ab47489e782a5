package loadouts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/redis"
)

const redisKeyPrefix = "loadouts"

// RedisConfig holds redis repository configuration
type RedisConfig struct {
	Client redis.Client
}

// RedisRepository persists bundles in Redis for hosts without a writable
// profile directory. Keys carry the same version partitioning as the
// file layout so legacy data migrates the same way.
type RedisRepository struct {
	client redis.Client
}

var _ Repository = (*RedisRepository)(nil)

// NewRedisRepository creates a redis-backed repository
func NewRedisRepository(cfg *RedisConfig) (*RedisRepository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}
	return &RedisRepository{client: cfg.Client}, nil
}

func (r *RedisRepository) key(version string, input LoadInput) (string, error) {
	if input.Admin {
		return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, version, AdminIdentity), nil
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

	return fmt.Sprintf("%s:%s:%s:%s", redisKeyPrefix, version, input.FactionKey, input.IdentityID), nil
}

// Load implements Repository.Load
func (r *RedisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	current, err := r.key(currentVersion, input)
	if err != nil {
		return nil, err
	}

	key := current
	migrated := false

	raw, getErr := r.client.Get(ctx, key).Result()
	if getErr != nil {
		if getErr != goredis.Nil {
			return nil, errors.WrapWithCode(getErr, errors.CodeInternal, "failed to read loadout bundle")
		}

		legacy, err := r.key(legacyVersion, input)
		if err != nil {
			return nil, err
		}

		raw, getErr = r.client.Get(ctx, legacy).Result()
		if getErr != nil {
			if getErr == goredis.Nil {
				return nil, errors.NotFoundf("no loadout bundle for identity %q", input.IdentityID)
			}
			return nil, errors.WrapWithCode(getErr, errors.CodeInternal, "failed to read legacy loadout bundle")
		}

		slog.InfoContext(ctx, "found legacy loadout bundle, migrating", "key", legacy)
		key = legacy
		migrated = true
	}

	storage := loadout.NewFactionStorage()
	if err := json.Unmarshal([]byte(raw), storage); err != nil {
		slog.WarnContext(ctx, "corrupt loadout bundle, treating as empty",
			"key", key, "error", err)
		return nil, errors.NotFoundf("loadout bundle at %q is unreadable", key)
	}

	healed := storage.Normalize()
	if healed > 0 {
		slog.WarnContext(ctx, "healed slot index mismatches in loadout bundle",
			"key", key, "corrections", healed)
	}

	if migrated {
		if _, err := r.Save(ctx, SaveInput{
			IdentityID: input.IdentityID,
			FactionKey: input.FactionKey,
			Admin:      input.Admin,
			Storage:    storage,
		}); err != nil {
			slog.WarnContext(ctx, "failed to re-save migrated bundle", "error", err)
		}
	}

	return &LoadOutput{Storage: storage, Migrated: migrated, Healed: healed}, nil
}

// Save implements Repository.Save
func (r *RedisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Storage == nil {
		return nil, errors.InvalidArgument("storage bundle is required")
	}

	key, err := r.key(currentVersion, LoadInput{
		IdentityID: input.IdentityID,
		FactionKey: input.FactionKey,
		Admin:      input.Admin,
	})
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(input.Storage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize loadout bundle")
	}

	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to write loadout bundle")
	}

	slog.DebugContext(ctx, "loadout bundle saved", "key", key)
	return &SaveOutput{}, nil
}
