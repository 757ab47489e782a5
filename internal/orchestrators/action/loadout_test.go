package action_test

import (
	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	loadoutstore "github.com/paddockgames/loadout-api/internal/orchestrators/loadouts"
	"github.com/paddockgames/loadout-api/internal/protocol"
)

func (s *ActionTestSuite) sampleSummaries() []protocol.LoadoutSummary {
	return []protocol.LoadoutSummary{
		{SlotID: 0, DisplayName: "Loadout 1: M16A2", Weapons: "M16A2", HasData: true},
		{SlotID: 1, DisplayName: "Loadout Slot 2"},
	}
}

func (s *ActionTestSuite) TestGetLoadoutsAnswersWithListPayload() {
	s.store.EXPECT().
		List(s.ctx, &loadoutstore.ListInput{PlayerID: testPlayerID}).
		Return(&loadoutstore.ListOutput{FactionKey: "US", Summaries: s.sampleSummaries()}, nil)

	req := protocol.NewLoadoutRequest(protocol.ActionGetLoadouts, 0, -1)
	s.orc.HandleRequest(s.ctx, testPlayerID, req, s.respond)

	resp := s.lastResponse()
	s.True(resp.Success)

	summaries := protocol.UnmarshalSummaries(resp.Message)
	s.Require().Len(summaries, 2)
	s.Equal("Loadout 1: M16A2", summaries[0].DisplayName)
	s.True(summaries[0].HasData)
}

func (s *ActionTestSuite) TestSaveLoadoutPushesAndAnswersWithList() {
	rec := loadout.NewEmptyRecord(2)
	rec.MetadataWeapons = "M16A2"

	s.store.EXPECT().
		Save(s.ctx, &loadoutstore.SaveInput{PlayerID: testPlayerID, SlotIndex: 2}).
		Return(&loadoutstore.SaveOutput{Record: rec, FactionKey: "US", Persisted: true}, nil)
	s.publisher.EXPECT().
		PushSlotUpdate(testPlayerID, &protocol.SlotUpdate{FactionKey: "US", SlotIndex: 2, Valid: true})
	push := &protocol.CachePush{ValidSlots: map[string][]int{"US": {2}}}
	s.store.EXPECT().CachePush(s.ctx, testPlayerID).Return(push, nil)
	s.publisher.EXPECT().PushCache(testPlayerID, push)
	s.store.EXPECT().
		List(s.ctx, &loadoutstore.ListInput{PlayerID: testPlayerID}).
		Return(&loadoutstore.ListOutput{FactionKey: "US", Summaries: s.sampleSummaries()}, nil)

	req := protocol.NewLoadoutRequest(protocol.ActionSaveLoadout, 0, 2)
	s.orc.HandleRequest(s.ctx, testPlayerID, req, s.respond)

	resp := s.lastResponse()
	s.True(resp.Success)
	s.NotNil(protocol.UnmarshalSummaries(resp.Message))
}

func (s *ActionTestSuite) TestSaveLoadoutPreconditionFailure() {
	s.store.EXPECT().
		Save(s.ctx, &loadoutstore.SaveInput{PlayerID: testPlayerID, SlotIndex: 0}).
		Return(nil, errors.FailedPrecondition("no controlled entity to save"))

	req := protocol.NewLoadoutRequest(protocol.ActionSaveLoadout, 0, 0)
	s.orc.HandleRequest(s.ctx, testPlayerID, req, s.respond)

	resp := s.lastResponse()
	s.False(resp.Success)
	s.Contains(resp.Message, "cannot be saved")
}

func (s *ActionTestSuite) TestClearLoadoutPushesInvalidSlot() {
	rec := loadout.NewEmptyRecord(1)

	s.store.EXPECT().
		Clear(s.ctx, &loadoutstore.ClearInput{PlayerID: testPlayerID, SlotIndex: 1}).
		Return(&loadoutstore.ClearOutput{Record: rec, FactionKey: "US", Persisted: true}, nil)
	s.publisher.EXPECT().
		PushSlotUpdate(testPlayerID, &protocol.SlotUpdate{FactionKey: "US", SlotIndex: 1, Valid: false})
	push := &protocol.CachePush{ValidSlots: map[string][]int{"US": {}}}
	s.store.EXPECT().CachePush(s.ctx, testPlayerID).Return(push, nil)
	s.publisher.EXPECT().PushCache(testPlayerID, push)
	s.store.EXPECT().
		List(s.ctx, &loadoutstore.ListInput{PlayerID: testPlayerID}).
		Return(&loadoutstore.ListOutput{FactionKey: "US", Summaries: s.sampleSummaries()}, nil)

	req := protocol.NewLoadoutRequest(protocol.ActionClearLoadout, 0, 1)
	s.orc.HandleRequest(s.ctx, testPlayerID, req, s.respond)

	s.True(s.lastResponse().Success)
}

func (s *ActionTestSuite) TestApplyLoadoutStagesRecord() {
	rec := loadout.NewEmptyRecord(2)
	rec.MetadataWeapons = "M16A2"
	rec.Data = "SNAPSHOT"

	s.store.EXPECT().
		Get(s.ctx, &loadoutstore.GetInput{PlayerID: testPlayerID, SlotIndex: 2}).
		Return(&loadoutstore.GetOutput{Record: rec, FactionKey: "US"}, nil)
	s.applier.EXPECT().RequestApply(s.ctx, testPlayerID, "US", rec).Return(nil)

	req := protocol.NewLoadoutRequest(protocol.ActionApplyLoadout, 0, 2)
	s.orc.HandleRequest(s.ctx, testPlayerID, req, s.respond)

	s.True(s.lastResponse().Success)
}

func (s *ActionTestSuite) TestApplyEmptySlotFails() {
	s.store.EXPECT().
		Get(s.ctx, &loadoutstore.GetInput{PlayerID: testPlayerID, SlotIndex: 4}).
		Return(nil, errors.NotFoundf("slot 4 holds no loadout"))

	req := protocol.NewLoadoutRequest(protocol.ActionApplyLoadout, 0, 4)
	s.orc.HandleRequest(s.ctx, testPlayerID, req, s.respond)

	resp := s.lastResponse()
	s.False(resp.Success)
	s.Contains(resp.Message, "no loadout")
}

func (s *ActionTestSuite) TestSaveAdminLoadoutBroadcasts() {
	rec := loadout.NewEmptyRecord(0)
	rec.MetadataWeapons = "SVD"

	s.players.EXPECT().IsAdmin(testPlayerID).Return(true)
	s.store.EXPECT().
		SaveAdmin(s.ctx, &loadoutstore.SaveAdminInput{PlayerID: testPlayerID, SlotIndex: 0}).
		Return(&loadoutstore.SaveAdminOutput{Record: rec, Persisted: true}, nil)
	s.store.EXPECT().ListAdmin(s.ctx).Return(s.sampleSummaries(), nil).Times(2)
	s.publisher.EXPECT().BroadcastAdminLoadouts(s.sampleSummaries())

	req := protocol.NewLoadoutRequest(protocol.ActionSaveLoadoutAdmin, 0, 0)
	s.orc.HandleRequest(s.ctx, testPlayerID, req, s.respond)

	s.True(s.lastResponse().Success)
}

func (s *ActionTestSuite) TestApplyAdminLoadoutUsesPlayerFaction() {
	rec := loadout.NewEmptyRecord(3)
	rec.MetadataWeapons = "SVD"

	s.players.EXPECT().IsAdmin(testPlayerID).Return(true)
	s.store.EXPECT().GetAdmin(s.ctx, 3).Return(rec, nil)
	s.players.EXPECT().FactionKey(testPlayerID).Return("USSR", nil)
	s.applier.EXPECT().RequestApply(s.ctx, testPlayerID, "USSR", rec).Return(nil)

	req := protocol.NewLoadoutRequest(protocol.ActionApplyLoadoutAdmin, 0, 3)
	s.orc.HandleRequest(s.ctx, testPlayerID, req, s.respond)

	s.True(s.lastResponse().Success)
}
