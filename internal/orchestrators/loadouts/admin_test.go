package loadouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginemock "github.com/paddockgames/loadout-api/internal/engine/mock"
	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/orchestrators/loadouts"
	"github.com/paddockgames/loadout-api/internal/pkg/clock"
	loadoutrepo "github.com/paddockgames/loadout-api/internal/repositories/loadouts"
	loadoutsmock "github.com/paddockgames/loadout-api/internal/repositories/loadouts/mock"
)

type AdminPoolTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ctx        context.Context
	repo       *loadoutsmock.MockRepository
	players    *enginemock.MockPlayerService
	characters *enginemock.MockCharacterService
	orc        *loadouts.Orchestrator
}

func (s *AdminPoolTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.repo = loadoutsmock.NewMockRepository(s.ctrl)
	s.players = enginemock.NewMockPlayerService(s.ctrl)
	s.characters = enginemock.NewMockCharacterService(s.ctrl)

	orc, err := loadouts.New(&loadouts.Config{
		Repository: s.repo,
		Players:    s.players,
		Characters: s.characters,
		Clock:      clock.NewFixed(time.Unix(1700000000, 0)),
	})
	s.Require().NoError(err)
	s.orc = orc
}

func (s *AdminPoolTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AdminPoolTestSuite) expectEmptyAdminLoad() {
	s.repo.EXPECT().
		Load(s.ctx, loadoutrepo.LoadInput{Admin: true}).
		Return(nil, errors.NotFoundf("no bundle"))
}

func (s *AdminPoolTestSuite) TestSaveAdminRequiresAdminRights() {
	s.players.EXPECT().IsAdmin(testPlayerID).Return(false)

	_, err := s.orc.SaveAdmin(s.ctx, &loadouts.SaveAdminInput{PlayerID: testPlayerID, SlotIndex: 0})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *AdminPoolTestSuite) TestClearAdminRequiresAdminRights() {
	s.players.EXPECT().IsAdmin(testPlayerID).Return(false)

	_, err := s.orc.ClearAdmin(s.ctx, &loadouts.ClearAdminInput{PlayerID: testPlayerID, SlotIndex: 0})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *AdminPoolTestSuite) TestSaveAdminIntoSharedPool() {
	entity := enginemock.NewMockEntity(s.ctrl)
	entity.EXPECT().Valid().Return(true)
	entity.EXPECT().Prefab().Return("{CHAR_US}Character_US.et")

	s.players.EXPECT().IsAdmin(testPlayerID).Return(true)
	s.players.EXPECT().ControlledEntity(testPlayerID).Return(entity, true)
	s.players.EXPECT().FactionKey(testPlayerID).Return(testFaction, nil)
	s.characters.EXPECT().CanSaveLoadout(entity).Return(true)
	s.characters.EXPECT().Serialize(entity).Return("ADMIN_SNAPSHOT", nil)
	s.characters.EXPECT().Metadata(entity).
		Return("Officer Uniform", "SVD", loadout.RankCaptain, nil)
	s.characters.EXPECT().SnapshotCost(entity, testFaction).Return(300.0, nil)

	s.expectEmptyAdminLoad()
	s.repo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input loadoutrepo.SaveInput) (*loadoutrepo.SaveOutput, error) {
			s.True(input.Admin)
			return &loadoutrepo.SaveOutput{}, nil
		})

	output, err := s.orc.SaveAdmin(s.ctx, &loadouts.SaveAdminInput{PlayerID: testPlayerID, SlotIndex: 6})
	s.Require().NoError(err)
	s.True(output.Persisted)
	s.Equal("ADMIN_SNAPSHOT", output.Record.Data)
	s.Equal(6, output.Record.SlotID)

	// reading the shared pool needs no admin rights
	rec, err := s.orc.GetAdmin(s.ctx, 6)
	s.Require().NoError(err)
	s.Equal("ADMIN_SNAPSHOT", rec.Data)
}

func (s *AdminPoolTestSuite) TestListAdminCoversWholePool() {
	s.expectEmptyAdminLoad()

	summaries, err := s.orc.ListAdmin(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, loadouts.MaxAdminLoadouts)
	for _, summary := range summaries {
		s.False(summary.HasData)
	}
}

func (s *AdminPoolTestSuite) TestGetAdminEmptySlotNotFound() {
	s.expectEmptyAdminLoad()

	_, err := s.orc.GetAdmin(s.ctx, 0)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *AdminPoolTestSuite) TestAdminSlotRangeIsWiderThanPlayerRange() {
	s.expectEmptyAdminLoad()

	// indexes beyond the per-player pool are valid for the admin pool
	_, err := s.orc.GetAdmin(s.ctx, loadouts.MaxAdminLoadouts-1)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err), "in-range empty slot reads as not found")

	_, err = s.orc.GetAdmin(s.ctx, loadouts.MaxAdminLoadouts)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestAdminPoolTestSuite(t *testing.T) {
	suite.Run(t, new(AdminPoolTestSuite))
}
