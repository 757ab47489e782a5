package session_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/paddockgames/loadout-api/internal/engine"
	enginemock "github.com/paddockgames/loadout-api/internal/engine/mock"
	"github.com/paddockgames/loadout-api/internal/entities/arsenal"
	"github.com/paddockgames/loadout-api/internal/entities/loadout"
	"github.com/paddockgames/loadout-api/internal/errors"
	"github.com/paddockgames/loadout-api/internal/orchestrators/session"
)

type fakeProbe struct {
	hasItem   bool
	area      string
	magWell   string
	visible   bool
	isArsenal bool
}

func (p *fakeProbe) HasInventoryItem() bool   { return p.hasItem }
func (p *fakeProbe) ClothingAreaType() string { return p.area }
func (p *fakeProbe) MagazineWellType() string { return p.magWell }
func (p *fakeProbe) Visible() bool            { return p.visible }
func (p *fakeProbe) IsArsenal() bool          { return p.isArsenal }
func (p *fakeProbe) Destroy()                 {}

// countingSpawner tracks how many probes were spawned so memoization is
// observable.
type countingSpawner struct {
	probes map[string]*fakeProbe
	spawns int
}

func (s *countingSpawner) SpawnProbe(_ context.Context, prefab string) (engine.Probe, error) {
	s.spawns++
	p, ok := s.probes[prefab]
	if !ok {
		return nil, stderrors.New("prefab failed to load")
	}
	return p, nil
}

type SessionTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *enginemock.MockArsenalCatalog
	spawner     *countingSpawner
	session     *session.Session
	ctx         context.Context
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = enginemock.NewMockArsenalCatalog(s.ctrl)
	s.spawner = &countingSpawner{probes: map[string]*fakeProbe{}}
	s.ctx = context.Background()

	sess, err := session.New(&session.Config{
		ArsenalID: 99,
		Catalog:   s.mockCatalog,
		Spawner:   s.spawner,
	})
	s.Require().NoError(err)
	s.session = sess
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionTestSuite) initWith(items []arsenal.Item, rankLocked bool) {
	s.mockCatalog.EXPECT().Items(uint64(99)).Return(items, nil)
	s.mockCatalog.EXPECT().RankLocked().Return(rankLocked)
	found, err := s.session.Init(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(len(items) > 0, found)
}

func (s *SessionTestSuite) magazineCatalog() []arsenal.Item {
	s.spawner.probes["Magazines/M16_556.et"] = &fakeProbe{hasItem: true, magWell: "MagWell_556", visible: true}
	s.spawner.probes["Magazines/Stanag_556.et"] = &fakeProbe{hasItem: true, magWell: "MagWell_556", visible: true}
	s.spawner.probes["Magazines/AK_762.et"] = &fakeProbe{hasItem: true, magWell: "MagWell_762", visible: true}

	return []arsenal.Item{
		{Prefab: "Magazines/M16_556.et", Mode: arsenal.ModeAmmunition, Type: arsenal.TypeMagazine},
		{Prefab: "Magazines/Stanag_556.et", Mode: arsenal.ModeAmmunition, Type: arsenal.TypeMagazine},
		{Prefab: "Magazines/AK_762.et", Mode: arsenal.ModeAmmunition, Type: arsenal.TypeMagazine},
		// non-ammunition item filtered without spawning
		{Prefab: "Clothes/Helmet.et", Mode: arsenal.ModeDefault, Type: arsenal.TypeClothes},
	}
}

func magazineSlot(ctrl *gomock.Controller, wellType string) *enginemock.MockSlot {
	slot := enginemock.NewMockSlot(ctrl)
	slot.EXPECT().Descriptor().Return(arsenal.SlotDescriptor{
		Category: arsenal.SlotMagazine,
		Subtype:  wellType,
	}).AnyTimes()
	return slot
}

func (s *SessionTestSuite) TestMagazineQueryIsMemoized() {
	s.initWith(s.magazineCatalog(), true)

	slot := magazineSlot(s.ctrl, "MagWell_556")

	first, err := s.session.SlotChoices(s.ctx, slot)
	s.Require().NoError(err)
	s.Equal([]string{"Magazines/M16_556.et", "Magazines/Stanag_556.et"}, first)
	s.Equal(3, s.spawner.spawns, "only ammunition candidates are probed")

	second, err := s.session.SlotChoices(s.ctx, slot)
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Equal(3, s.spawner.spawns, "second query must not probe")
}

func (s *SessionTestSuite) TestSameSubtypeDifferentSlotSharesCache() {
	s.initWith(s.magazineCatalog(), true)

	first, err := s.session.SlotChoices(s.ctx, magazineSlot(s.ctrl, "MagWell_556"))
	s.Require().NoError(err)

	spawnsAfterFirst := s.spawner.spawns
	second, err := s.session.SlotChoices(s.ctx, magazineSlot(s.ctrl, "MagWell_556"))
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(spawnsAfterFirst, s.spawner.spawns)
}

func (s *SessionTestSuite) TestDifferentSubtypeProbesAgain() {
	s.initWith(s.magazineCatalog(), true)

	_, err := s.session.SlotChoices(s.ctx, magazineSlot(s.ctrl, "MagWell_556"))
	s.Require().NoError(err)

	other, err := s.session.SlotChoices(s.ctx, magazineSlot(s.ctrl, "MagWell_762"))
	s.Require().NoError(err)
	s.Equal([]string{"Magazines/AK_762.et"}, other)
	s.Equal(6, s.spawner.spawns)
}

func (s *SessionTestSuite) TestClothingAreaMatching() {
	s.spawner.probes["Clothes/Helmet.et"] = &fakeProbe{hasItem: true, area: "LoadoutHeadCoverArea", visible: true}
	s.spawner.probes["Clothes/Jacket.et"] = &fakeProbe{hasItem: true, area: "LoadoutJacketArea", visible: true}

	s.initWith([]arsenal.Item{
		{Prefab: "Clothes/Helmet.et", Mode: arsenal.ModeDefault, Type: arsenal.TypeClothes},
		{Prefab: "Clothes/Jacket.et", Mode: arsenal.ModeDefault, Type: arsenal.TypeClothes},
	}, true)

	slot := enginemock.NewMockSlot(s.ctrl)
	slot.EXPECT().Descriptor().Return(arsenal.SlotDescriptor{
		Category: arsenal.SlotClothing,
		Subtype:  "LoadoutHeadCoverArea",
	})

	choices, err := s.session.SlotChoices(s.ctx, slot)
	s.Require().NoError(err)
	s.Equal([]string{"Clothes/Helmet.et"}, choices)
}

func (s *SessionTestSuite) TestEquipmentSlotUsesCanAttach() {
	s.spawner.probes["Equipment/Radio.et"] = &fakeProbe{hasItem: true, visible: true}
	s.spawner.probes["Equipment/Shovel.et"] = &fakeProbe{hasItem: true, visible: true}

	s.initWith([]arsenal.Item{
		{Prefab: "Equipment/Radio.et", Mode: arsenal.ModeDefault, Type: arsenal.TypeEquipment},
		{Prefab: "Equipment/Shovel.et", Mode: arsenal.ModeDefault, Type: arsenal.TypeEquipment},
	}, true)

	slot := enginemock.NewMockSlot(s.ctrl)
	slot.EXPECT().Descriptor().Return(arsenal.SlotDescriptor{
		Category: arsenal.SlotEquipment,
		Subtype:  "RadioSlot",
	})
	slot.EXPECT().CanAttach(s.spawner.probes["Equipment/Radio.et"]).Return(true)
	slot.EXPECT().CanAttach(s.spawner.probes["Equipment/Shovel.et"]).Return(false)

	choices, err := s.session.SlotChoices(s.ctx, slot)
	s.Require().NoError(err)
	s.Equal([]string{"Equipment/Radio.et"}, choices)
}

func (s *SessionTestSuite) TestWeaponSlotFiltering() {
	s.spawner.probes["Weapons/M16A2.et"] = &fakeProbe{hasItem: true, visible: true}
	s.spawner.probes["Weapons/M9.et"] = &fakeProbe{hasItem: true, visible: true}

	s.initWith([]arsenal.Item{
		{Prefab: "Weapons/M16A2.et", Mode: arsenal.ModeWeapon, Type: arsenal.TypeRifle},
		{Prefab: "Weapons/M9.et", Mode: arsenal.ModeWeapon, Type: arsenal.TypePistol},
	}, true)

	slot := enginemock.NewMockSlot(s.ctrl)
	slot.EXPECT().Descriptor().Return(arsenal.SlotDescriptor{
		Category: arsenal.SlotWeapon,
		Subtype:  "secondary",
	})

	choices, err := s.session.SlotChoices(s.ctx, slot)
	s.Require().NoError(err)
	s.Equal([]string{"Weapons/M9.et"}, choices)
}

func (s *SessionTestSuite) TestUnknownWeaponSlotTypeYieldsNothing() {
	s.initWith(s.magazineCatalog(), true)

	slot := enginemock.NewMockSlot(s.ctrl)
	slot.EXPECT().Descriptor().Return(arsenal.SlotDescriptor{
		Category: arsenal.SlotWeapon,
		Subtype:  "bayonet",
	})

	choices, err := s.session.SlotChoices(s.ctx, slot)
	s.Require().NoError(err)
	s.Empty(choices)
	s.Zero(s.spawner.spawns)
}

func (s *SessionTestSuite) TestBrokenPrefabIsSkipped() {
	// Stanag probe missing from the spawner: spawn fails, candidate skipped
	items := s.magazineCatalog()
	delete(s.spawner.probes, "Magazines/Stanag_556.et")
	s.initWith(items, true)

	choices, err := s.session.SlotChoices(s.ctx, magazineSlot(s.ctrl, "MagWell_556"))
	s.Require().NoError(err)
	s.Equal([]string{"Magazines/M16_556.et"}, choices)
}

func (s *SessionTestSuite) TestCostAndRank() {
	s.initWith([]arsenal.Item{
		{Prefab: "Weapons/M16A2.et", Mode: arsenal.ModeWeapon, Type: arsenal.TypeRifle, SupplyCost: 120, RequiredRank: loadout.RankCorporal},
	}, true)

	cost, rank := s.session.CostAndRank("Weapons/M16A2.et")
	s.Equal(120.0, cost)
	s.Equal(loadout.RankCorporal, rank)

	cost, rank = s.session.CostAndRank("Weapons/Unknown.et")
	s.Zero(cost)
	s.Equal(loadout.RankInvalid, rank)
}

func (s *SessionTestSuite) TestRankLockOffDisablesRequirements() {
	s.initWith([]arsenal.Item{
		{Prefab: "Weapons/M16A2.et", Mode: arsenal.ModeWeapon, Type: arsenal.TypeRifle, SupplyCost: 120, RequiredRank: loadout.RankCorporal},
	}, false)

	cost, rank := s.session.CostAndRank("Weapons/M16A2.et")
	s.Equal(120.0, cost)
	s.Equal(loadout.RankInvalid, rank, "rank lock off: no requirement reported")

	s.Equal(loadout.RankCorporal, s.session.ItemRank("Weapons/M16A2.et"),
		"raw rank still available for metadata")
}

func (s *SessionTestSuite) TestItemsByModeMemoized() {
	items := []arsenal.Item{
		{Prefab: "Weapons/M16A2.et", Mode: arsenal.ModeWeapon, Type: arsenal.TypeRifle},
		{Prefab: "Magazines/M16_556.et", Mode: arsenal.ModeAmmunition, Type: arsenal.TypeMagazine},
	}
	s.initWith(items, true)

	first := s.session.ItemsByMode(s.ctx, arsenal.ModeWeapon, arsenal.TypeAnyWeapon)
	s.Require().Len(first, 1)
	s.Equal("Weapons/M16A2.et", first[0].Prefab)

	second := s.session.ItemsByMode(s.ctx, arsenal.ModeWeapon, arsenal.TypeAnyWeapon)
	s.Equal(first, second)
}

func (s *SessionTestSuite) TestSubArsenalMembership() {
	s.initWith(s.magazineCatalog(), true)

	s.mockCatalog.EXPECT().SubArsenalItems("Props/AmmoBox.et").Return([]arsenal.Item{
		{Prefab: "Magazines/AK_762.et", Mode: arsenal.ModeAmmunition, Type: arsenal.TypeMagazine},
	}, nil)

	s.Require().NoError(s.session.RegisterSubArsenal(s.ctx, "Props/AmmoBox.et"))
	s.True(s.session.InSubArsenal("Magazines/AK_762.et"))
	s.False(s.session.InSubArsenal("Magazines/M16_556.et"))

	// re-registering the same container is a no-op, no catalog call
	s.Require().NoError(s.session.RegisterSubArsenal(s.ctx, "Props/AmmoBox.et"))
}

func (s *SessionTestSuite) TestQueryBeforeInitFails() {
	slot := magazineSlot(s.ctrl, "MagWell_556")
	_, err := s.session.SlotChoices(s.ctx, slot)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SessionTestSuite) TestInitEmptyArsenal() {
	s.mockCatalog.EXPECT().Items(uint64(99)).Return(nil, nil)
	s.mockCatalog.EXPECT().RankLocked().Return(true)

	found, err := s.session.Init(s.ctx)
	s.Require().NoError(err)
	s.False(found, "empty arsenal is valid, surfaced as a warning")
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
