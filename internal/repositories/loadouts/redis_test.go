package loadouts_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/redis"
	"github.com/paddockgames/loadout-api/internal/repositories/loadouts"
	"github.com/paddockgames/loadout-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	client  redis.Client
	cleanup func()
	repo    *loadouts.RedisRepository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())

	repo, err := loadouts.NewRedisRepository(&loadouts.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) seed(key string, storage *loadout.FactionStorage) {
	s.T().Helper()
	raw, err := json.Marshal(storage)
	s.Require().NoError(err)
	s.Require().NoError(s.client.Set(s.ctx, key, raw, 0).Err())
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoadRoundTrip() {
	storage := loadout.NewFactionStorage()
	rec := storage.Faction("USSR", 5)[loadout.SlotKey(3)]
	rec.MetadataWeapons = "AK-74\nPM"
	rec.SupplyCost = 85

	_, err := s.repo.Save(s.ctx, loadouts.SaveInput{
		IdentityID: "abc123",
		FactionKey: "USSR",
		Storage:    storage,
	})
	s.Require().NoError(err)

	output, err := s.repo.Load(s.ctx, loadouts.LoadInput{
		IdentityID: "abc123",
		FactionKey: "USSR",
	})
	s.Require().NoError(err)
	s.False(output.Migrated)
	s.Equal("AK-74\nPM", output.Storage.Slot("USSR", 3).MetadataWeapons)
}

func (s *RedisRepositoryTestSuite) TestLoadMissingReturnsNotFound() {
	_, err := s.repo.Load(s.ctx, loadouts.LoadInput{
		IdentityID: "nobody99",
		FactionKey: "US",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestLegacyKeyMigratesOnLoad() {
	storage := loadout.NewFactionStorage()
	storage.Faction("US", 5)[loadout.SlotKey(0)].MetadataWeapons = "M16A2"
	s.seed("loadouts:1.0.0:US:abc123", storage)

	output, err := s.repo.Load(s.ctx, loadouts.LoadInput{
		IdentityID: "abc123",
		FactionKey: "US",
	})
	s.Require().NoError(err)
	s.True(output.Migrated)
	s.Equal("M16A2", output.Storage.Slot("US", 0).MetadataWeapons)

	// migration re-saved under the current version key
	raw, err := s.client.Get(s.ctx, "loadouts:1.1.0:US:abc123").Result()
	s.Require().NoError(err)
	s.NotEmpty(raw)

	output, err = s.repo.Load(s.ctx, loadouts.LoadInput{
		IdentityID: "abc123",
		FactionKey: "US",
	})
	s.Require().NoError(err)
	s.False(output.Migrated)
}

func (s *RedisRepositoryTestSuite) TestCorruptValueTreatedAsMissing() {
	s.Require().NoError(s.client.Set(s.ctx, "loadouts:1.1.0:US:abc123", "{not json", 0).Err())

	_, err := s.repo.Load(s.ctx, loadouts.LoadInput{
		IdentityID: "abc123",
		FactionKey: "US",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestLoadHealsSlotIndexMismatch() {
	storage := loadout.NewFactionStorage()
	slots := storage.Faction("US", 5)
	slots[loadout.SlotKey(1)].SlotID = 4
	s.seed("loadouts:1.1.0:US:abc123", storage)

	output, err := s.repo.Load(s.ctx, loadouts.LoadInput{
		IdentityID: "abc123",
		FactionKey: "US",
	})
	s.Require().NoError(err)
	s.Equal(1, output.Healed)
	s.Equal(1, output.Storage.Slot("US", 1).SlotID)
}

func (s *RedisRepositoryTestSuite) TestAdminKeyIgnoresIdentity() {
	storage := loadout.NewFactionStorage()
	storage.Faction("admin", 10)[loadout.SlotKey(0)].MetadataWeapons = "SVD"

	_, err := s.repo.Save(s.ctx, loadouts.SaveInput{Admin: true, Storage: storage})
	s.Require().NoError(err)

	raw, err := s.client.Get(s.ctx, "loadouts:1.1.0:admin_loadouts").Result()
	s.Require().NoError(err)
	s.NotEmpty(raw)

	output, err := s.repo.Load(s.ctx, loadouts.LoadInput{Admin: true})
	s.Require().NoError(err)
	s.Equal("SVD", output.Storage.Slot("admin", 0).MetadataWeapons)
}

func (s *RedisRepositoryTestSuite) TestRejectsUnusableIdentity() {
	_, err := s.repo.Load(s.ctx, loadouts.LoadInput{IdentityID: "a", FactionKey: "US"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
