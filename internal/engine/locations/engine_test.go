package locations_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/CWSpear/stumpy/internal/engine/locations"
	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
)

type items = map[entities.ItemKey]int

type EngineTestSuite struct {
	suite.Suite
	settings  *entities.Settings
	inv       *entities.Inventory
	dungeons  *entities.Registry
	locations *entities.Locations
	engine    *locations.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	settings := entities.DefaultSettings()
	s.settings = &settings
	s.inv = entities.NewInventory(s.settings)
	s.dungeons = entities.NewRegistry()
	s.locations = entities.NewLocations(s.settings)

	engine, err := locations.New(&locations.Config{
		Inventory: s.inv,
		Dungeons:  s.dungeons,
		Locations: s.locations,
		Settings:  s.settings,
	})
	s.Require().NoError(err)
	s.engine = engine
}

func (s *EngineTestSuite) grant(levels items) {
	for key, level := range levels {
		s.Require().NoError(s.inv.SetLevel(key, level))
	}
}

func (s *EngineTestSuite) defeat(keys ...entities.DungeonKey) {
	for _, key := range keys {
		s.dungeons.Get(key).ToggleDefeat()
	}
}

type ruleCase struct {
	name     string
	items    items
	defeated []entities.DungeonKey
	expected entities.Availability
}

func (s *EngineTestSuite) runCases(key entities.LocationKey, cases []ruleCase) {
	for _, tc := range cases {
		s.Run(string(key)+"/"+tc.name, func() {
			s.inv.Reset(s.settings)
			s.dungeons.Reset()
			s.grant(tc.items)
			s.defeat(tc.defeated...)
			s.Equal(tc.expected, s.engine.Availability(key))
		})
	}
}

func (s *EngineTestSuite) TestNewRequiresDependencies() {
	_, err := locations.New(&locations.Config{Inventory: s.inv})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Dungeons")
}

func (s *EngineTestSuite) TestEveryLocationHasARule() {
	for _, key := range entities.AllLocationKeys() {
		s.NotPanics(func() { s.engine.Availability(key) }, key)
	}
	s.Panics(func() { s.engine.Availability("ganons_pantry") })
}

func (s *EngineTestSuite) TestFreeLocations() {
	for _, key := range []entities.LocationKey{
		entities.LightWorldSwamp,
		entities.LinksHouse,
		entities.KakarikoTavern,
		entities.BlindsHideout,
		entities.BottleVendor,
		entities.ForestHideout,
		entities.Mushroom,
		entities.RaceMinigame,
		entities.CastleSecretEntrance,
		entities.HyruleCastleDungeon,
		entities.Sanctuary,
	} {
		s.Equal(entities.Available, s.engine.Availability(key), key)
	}
}

func (s *EngineTestSuite) TestKingsTomb() {
	s.runCases(entities.KingsTomb, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "boots and titans mitt", items: items{entities.ItemBoots: 1, entities.ItemGlove: 2}, expected: entities.Available},
		{name: "power glove and pearl", items: items{entities.ItemGlove: 1, entities.ItemMoonPearl: 1}, expected: entities.Unavailable},
		{
			name:     "mirror from the outcasts",
			items:    items{entities.ItemMoonPearl: 1, entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMirror: 1, entities.ItemBoots: 1},
			expected: entities.Available,
		},
		{
			name:     "mirror after agahnim",
			items:    items{entities.ItemHookshot: 1, entities.ItemMoonPearl: 1, entities.ItemFlippers: 1, entities.ItemMirror: 1, entities.ItemBoots: 1},
			defeated: []entities.DungeonKey{entities.CastleTower},
			expected: entities.Available,
		},
	})
}

func (s *EngineTestSuite) TestSpiralCave() {
	s.runCases(entities.SpiralCave, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "power glove alone", items: items{entities.ItemGlove: 1}, expected: entities.Unavailable},
		{name: "dark climb with hookshot", items: items{entities.ItemGlove: 1, entities.ItemHookshot: 1}, expected: entities.Glitches},
		{name: "flute mirror hammer", items: items{entities.ItemFlute: 1, entities.ItemMirror: 1, entities.ItemHammer: 1}, expected: entities.Available},
	})
}

func (s *EngineTestSuite) TestParadoxCave() {
	s.runCases(entities.ParadoxCave, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "without bombs", items: items{entities.ItemFlute: 1, entities.ItemHookshot: 1}, expected: entities.Possible},
		{name: "with bombs", items: items{entities.ItemFlute: 1, entities.ItemHookshot: 1, entities.ItemBomb: 1}, expected: entities.Available},
		{
			name:     "dark climb",
			items:    items{entities.ItemGlove: 1, entities.ItemMirror: 1, entities.ItemHammer: 1, entities.ItemBomb: 1},
			expected: entities.Glitches,
		},
	})
}

func (s *EngineTestSuite) TestLightWorldBasics() {
	s.runCases(entities.BonkRocks, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "boots", items: items{entities.ItemBoots: 1}, expected: entities.Available},
	})
	s.runCases(entities.KakarikoWell, []ruleCase{
		{name: "fresh", expected: entities.Possible},
		{name: "bombs", items: items{entities.ItemBomb: 1}, expected: entities.Available},
	})
	s.runCases(entities.SahasrahlasHut, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "boots", items: items{entities.ItemBoots: 1}, expected: entities.Available},
	})
	s.runCases(entities.SickKid, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "bottle", items: items{entities.ItemBottle: 1}, expected: entities.Available},
	})
	s.runCases(entities.BridgeHideout, []ruleCase{
		{name: "fake flippers", expected: entities.Glitches},
		{name: "flippers", items: items{entities.ItemFlippers: 1}, expected: entities.Available},
	})
	s.runCases(entities.KingZora, []ruleCase{
		{name: "fake flippers", expected: entities.Glitches},
		{name: "power glove", items: items{entities.ItemGlove: 1}, expected: entities.Available},
	})
	s.runCases(entities.PotionShop, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "mushroom", items: items{entities.ItemMushroom: 1}, expected: entities.Available},
	})
	s.runCases(entities.Library, []ruleCase{
		{name: "fresh", expected: entities.Visible},
		{name: "boots", items: items{entities.ItemBoots: 1}, expected: entities.Available},
	})
	s.runCases(entities.LumberjackTree, []ruleCase{
		{name: "agahnim only", defeated: []entities.DungeonKey{entities.CastleTower}, expected: entities.Visible},
		{name: "agahnim and boots", items: items{entities.ItemBoots: 1}, defeated: []entities.DungeonKey{entities.CastleTower}, expected: entities.Available},
	})
	s.runCases(entities.BuriedItem, []ruleCase{
		{name: "shovel", items: items{entities.ItemShovel: 1}, expected: entities.Available},
	})
	s.runCases(entities.WaterfallOfWishing, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "fake flippers", items: items{entities.ItemMoonPearl: 1}, expected: entities.Glitches},
		{name: "flippers", items: items{entities.ItemFlippers: 1}, expected: entities.Available},
	})
}

func (s *EngineTestSuite) TestDeathMountainWest() {
	s.runCases(entities.SpectacleRockCave, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "flute", items: items{entities.ItemFlute: 1}, expected: entities.Available},
		{name: "dark climb", items: items{entities.ItemGlove: 1}, expected: entities.Glitches},
	})
	s.runCases(entities.LostOldMan, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "flute without lantern", items: items{entities.ItemFlute: 1}, expected: entities.Glitches},
		{name: "glove and lantern", items: items{entities.ItemGlove: 1, entities.ItemLantern: 1}, expected: entities.Available},
	})
	s.runCases(entities.SpectacleRock, []ruleCase{
		{name: "dark climb", items: items{entities.ItemGlove: 1}, expected: entities.GlitchesVisible},
		{name: "dark climb with mirror", items: items{entities.ItemGlove: 1, entities.ItemMirror: 1}, expected: entities.Glitches},
		{name: "flute", items: items{entities.ItemFlute: 1}, expected: entities.Visible},
		{name: "flute and mirror", items: items{entities.ItemFlute: 1, entities.ItemMirror: 1}, expected: entities.Available},
	})
}

func (s *EngineTestSuite) TestTablets() {
	s.runCases(entities.EtherTablet, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{
			name:     "no sword",
			items:    items{entities.ItemBook: 1, entities.ItemGlove: 1, entities.ItemLantern: 1, entities.ItemHookshot: 1, entities.ItemHammer: 1},
			expected: entities.Visible,
		},
		{
			name:     "master sword",
			items:    items{entities.ItemBook: 1, entities.ItemFlute: 1, entities.ItemMirror: 1, entities.ItemSword: 2},
			expected: entities.Available,
		},
		{
			name:     "dark climb",
			items:    items{entities.ItemBook: 1, entities.ItemGlove: 1, entities.ItemMirror: 1, entities.ItemSword: 2},
			expected: entities.Glitches,
		},
	})
	s.runCases(entities.BombosTablet, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{
			name:     "no sword",
			items:    items{entities.ItemBook: 1, entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMoonPearl: 1, entities.ItemMirror: 1},
			expected: entities.Visible,
		},
		{
			name:     "master sword",
			items:    items{entities.ItemBook: 1, entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMoonPearl: 1, entities.ItemMirror: 1, entities.ItemSword: 2},
			expected: entities.Available,
		},
	})
}

func (s *EngineTestSuite) TestFloatingIsland() {
	s.runCases(entities.FloatingIsland, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "seen from the dark climb", items: items{entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMirror: 1}, expected: entities.GlitchesVisible},
		{
			name:     "reached in the dark",
			items:    items{entities.ItemGlove: 2, entities.ItemHammer: 1, entities.ItemMirror: 1, entities.ItemMoonPearl: 1},
			expected: entities.Glitches,
		},
		{
			name:     "reached with lantern",
			items:    items{entities.ItemGlove: 2, entities.ItemHammer: 1, entities.ItemMirror: 1, entities.ItemMoonPearl: 1, entities.ItemLantern: 1},
			expected: entities.Available,
		},
	})
}

func (s *EngineTestSuite) TestWaterLedges() {
	s.runCases(entities.ZoraLedge, []ruleCase{
		{name: "fresh", expected: entities.GlitchesVisible},
		{name: "power glove", items: items{entities.ItemGlove: 1}, expected: entities.Visible},
		{name: "fake flippers", items: items{entities.ItemBoots: 1}, expected: entities.Glitches},
		{name: "flippers", items: items{entities.ItemFlippers: 1}, expected: entities.Available},
	})
	s.runCases(entities.LakeHyliaIsland, []ruleCase{
		{name: "fresh", expected: entities.Visible},
		{name: "flippers and pearl", items: items{entities.ItemFlippers: 1, entities.ItemMoonPearl: 1}, expected: entities.Visible},
		{
			name:     "no way to the dark world",
			items:    items{entities.ItemFlippers: 1, entities.ItemMoonPearl: 1, entities.ItemMirror: 1},
			expected: entities.Visible,
		},
		{
			name:     "mirror from the dark world",
			items:    items{entities.ItemFlippers: 1, entities.ItemMoonPearl: 1, entities.ItemMirror: 1, entities.ItemGlove: 2},
			expected: entities.Available,
		},
		{
			name:     "fake flippers",
			items:    items{entities.ItemBoots: 1, entities.ItemMoonPearl: 1, entities.ItemMirror: 1, entities.ItemGlove: 2},
			expected: entities.Glitches,
		},
	})
	s.runCases(entities.DesertWestLedge, []ruleCase{
		{name: "fresh", expected: entities.Visible},
		{name: "book", items: items{entities.ItemBook: 1}, expected: entities.Available},
	})
}

func (s *EngineTestSuite) TestSewers() {
	s.runCases(entities.SewerEscapeSideRoom, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "lantern and bombs", items: items{entities.ItemLantern: 1, entities.ItemBomb: 1}, expected: entities.Possible},
		{name: "boots and glove", items: items{entities.ItemBoots: 1, entities.ItemGlove: 1}, expected: entities.Available},
	})
	s.runCases(entities.SewerEscapeDarkRoom, []ruleCase{
		{name: "fresh", expected: entities.Glitches},
		{name: "lantern", items: items{entities.ItemLantern: 1}, expected: entities.Available},
	})

	s.Run("standard start lights the sewers", func() {
		s.settings.Start = entities.StartStateStandard
		s.inv.Reset(s.settings)
		s.Equal(entities.Available, s.engine.Availability(entities.SewerEscapeDarkRoom))
		s.Equal(entities.Unavailable, s.engine.Availability(entities.SewerEscapeSideRoom))

		s.grant(items{entities.ItemBomb: 1})
		s.Equal(entities.Available, s.engine.Availability(entities.SewerEscapeSideRoom))
	})
}

func (s *EngineTestSuite) TestMadBatter() {
	s.runCases(entities.MadBatter, []ruleCase{
		{name: "hammer alone", items: items{entities.ItemHammer: 1}, expected: entities.Unavailable},
		{name: "hammer and mushroom", items: items{entities.ItemHammer: 1, entities.ItemMushroom: 1}, expected: entities.Glitches},
		{name: "hammer and powder", items: items{entities.ItemHammer: 1, entities.ItemPowder: 1}, expected: entities.Available},
		{
			name:     "mirror from the outcasts",
			items:    items{entities.ItemGlove: 2, entities.ItemMirror: 1, entities.ItemMoonPearl: 1, entities.ItemPowder: 1},
			expected: entities.Available,
		},
	})
}

func (s *EngineTestSuite) TestMirrorCaves() {
	s.runCases(entities.GraveyardCliffCave, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "mirror from the outcasts", items: items{entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMirror: 1, entities.ItemMoonPearl: 1}, expected: entities.Available},
	})
	s.runCases(entities.CheckerboardCave, []ruleCase{
		{name: "no mirror", items: items{entities.ItemFlute: 1, entities.ItemGlove: 2}, expected: entities.Unavailable},
		{name: "flute mitt mirror", items: items{entities.ItemFlute: 1, entities.ItemGlove: 2, entities.ItemMirror: 1}, expected: entities.Available},
	})
	s.runCases(entities.SouthOfGrove, []ruleCase{
		{name: "mirror alone", items: items{entities.ItemMirror: 1}, expected: entities.Unavailable},
		{name: "mirror from the south", items: items{entities.ItemMirror: 1, entities.ItemGlove: 2, entities.ItemMoonPearl: 1}, expected: entities.Available},
	})
}

func (s *EngineTestSuite) TestRewardGatedLocations() {
	s.Equal(entities.Unavailable, s.engine.Availability(entities.SahasrahlasReward))
	s.Equal(entities.Unavailable, s.engine.Availability(entities.MasterSwordPedestal))

	s.Run("green pendant opens sahasrahla", func() {
		eastern := s.dungeons.Get(entities.EasternPalace)
		eastern.CycleReward()
		s.Require().Equal(entities.RewardGreenPendant, eastern.Reward())
		s.Equal(entities.Unavailable, s.engine.Availability(entities.SahasrahlasReward))

		eastern.ToggleDefeat()
		s.Equal(entities.Available, s.engine.Availability(entities.SahasrahlasReward))
	})

	s.Run("pedestal is readable with the book", func() {
		s.grant(items{entities.ItemBook: 1})
		s.Equal(entities.Visible, s.engine.Availability(entities.MasterSwordPedestal))
	})

	s.Run("every reward dungeon beaten pulls the pedestal", func() {
		for _, d := range s.dungeons.All() {
			if d.HasReward && !d.IsBossDefeated() {
				d.ToggleDefeat()
			}
		}
		s.Equal(entities.Available, s.engine.Availability(entities.MasterSwordPedestal))
	})
}

func (s *EngineTestSuite) TestDarkDeathMountain() {
	s.runCases(entities.SuperBunnyCave, []ruleCase{
		{name: "power glove", items: items{entities.ItemGlove: 1}, expected: entities.Unavailable},
		{name: "mitt without crossing", items: items{entities.ItemGlove: 2}, expected: entities.Unavailable},
		{name: "bunny with hookshot", items: items{entities.ItemGlove: 2, entities.ItemHookshot: 1}, expected: entities.Glitches},
		{name: "bunny with mirror and hammer", items: items{entities.ItemGlove: 2, entities.ItemMirror: 1, entities.ItemHammer: 1}, expected: entities.Glitches},
		{
			name:     "pearl and flute",
			items:    items{entities.ItemGlove: 2, entities.ItemHookshot: 1, entities.ItemFlute: 1, entities.ItemMoonPearl: 1},
			expected: entities.Available,
		},
	})
	s.runCases(entities.HookshotCaveBottom, []ruleCase{
		{name: "no crossing", items: items{entities.ItemMoonPearl: 1, entities.ItemGlove: 2}, expected: entities.Unavailable},
		{name: "hookshot in the dark", items: items{entities.ItemMoonPearl: 1, entities.ItemGlove: 2, entities.ItemHookshot: 1}, expected: entities.Glitches},
		{
			name: "boots with flute",
			items: items{
				entities.ItemMoonPearl: 1, entities.ItemGlove: 2, entities.ItemBoots: 1,
				entities.ItemHammer: 1, entities.ItemMirror: 1, entities.ItemFlute: 1,
			},
			expected: entities.Available,
		},
	})
	s.runCases(entities.HookshotCaveTop, []ruleCase{
		{
			name:     "hookshot with flute",
			items:    items{entities.ItemMoonPearl: 1, entities.ItemGlove: 2, entities.ItemHookshot: 1, entities.ItemFlute: 1},
			expected: entities.Available,
		},
		{
			name:     "boots clip",
			items:    items{entities.ItemMoonPearl: 1, entities.ItemGlove: 2, entities.ItemBoots: 1, entities.ItemMirror: 1, entities.ItemHammer: 1},
			expected: entities.Glitches,
		},
	})
	s.runCases(entities.SpikeCave, []ruleCase{
		{name: "power glove", items: items{entities.ItemGlove: 1}, expected: entities.Unavailable},
		{name: "no protection", items: items{entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMoonPearl: 1}, expected: entities.Unavailable},
		{
			name:     "byrna in the dark",
			items:    items{entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMoonPearl: 1, entities.ItemByrna: 1},
			expected: entities.Glitches,
		},
		{
			name:     "cape with flute",
			items:    items{entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMoonPearl: 1, entities.ItemCape: 1, entities.ItemFlute: 1},
			expected: entities.Available,
		},
		{
			name:     "bottles only",
			items:    items{entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMoonPearl: 1, entities.ItemBottle: 1, entities.ItemFlute: 1},
			expected: entities.Possible,
		},
	})
}

func (s *EngineTestSuite) TestDarkWorld() {
	s.runCases(entities.HypeCave, []ruleCase{
		{name: "no bombs", items: items{entities.ItemGlove: 2, entities.ItemMoonPearl: 1}, expected: entities.Unavailable},
		{name: "mitt and bombs", items: items{entities.ItemGlove: 2, entities.ItemMoonPearl: 1, entities.ItemBomb: 1}, expected: entities.Available},
		{
			name:     "through agahnims portal",
			items:    items{entities.ItemMoonPearl: 1, entities.ItemHammer: 1, entities.ItemBomb: 1},
			defeated: []entities.DungeonKey{entities.CastleTower},
			expected: entities.Available,
		},
	})
	s.runCases(entities.BombableHut, []ruleCase{
		{name: "no bombs", items: items{entities.ItemGlove: 2, entities.ItemMoonPearl: 1}, expected: entities.Unavailable},
		{name: "bombs", items: items{entities.ItemGlove: 2, entities.ItemMoonPearl: 1, entities.ItemBomb: 1}, expected: entities.Available},
	})
	s.runCases(entities.TreasureChestMinigame, []ruleCase{
		{name: "mitt and pearl", items: items{entities.ItemGlove: 2, entities.ItemMoonPearl: 1}, expected: entities.Available},
	})
	s.runCases(entities.HammerPegCave, []ruleCase{
		{name: "no hammer", items: items{entities.ItemGlove: 2, entities.ItemMoonPearl: 1}, expected: entities.Unavailable},
		{name: "hammer", items: items{entities.ItemGlove: 2, entities.ItemMoonPearl: 1, entities.ItemHammer: 1}, expected: entities.Available},
	})
	s.runCases(entities.BumperCave, []ruleCase{
		{name: "no cape", items: items{entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMoonPearl: 1}, expected: entities.Visible},
		{name: "cape", items: items{entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMoonPearl: 1, entities.ItemCape: 1}, expected: entities.Available},
	})
	s.runCases(entities.Pyramid, []ruleCase{
		{name: "fresh", expected: entities.Unavailable},
		{name: "agahnim", defeated: []entities.DungeonKey{entities.CastleTower}, expected: entities.Available},
		{name: "fake flippers", items: items{entities.ItemMoonPearl: 1, entities.ItemGlove: 2, entities.ItemBoots: 1}, expected: entities.Glitches},
	})
	s.runCases(entities.Catfish, []ruleCase{
		{name: "no way in", items: items{entities.ItemMoonPearl: 1, entities.ItemGlove: 1}, expected: entities.Unavailable},
		{name: "after agahnim", items: items{entities.ItemMoonPearl: 1, entities.ItemGlove: 1}, defeated: []entities.DungeonKey{entities.CastleTower}, expected: entities.Available},
		{name: "fake flippers", items: items{entities.ItemMoonPearl: 1, entities.ItemGlove: 2, entities.ItemBoots: 1}, expected: entities.Glitches},
	})
	s.runCases(entities.MireHut, []ruleCase{
		{name: "flute", items: items{entities.ItemFlute: 1}, expected: entities.Unavailable},
		{name: "flute and mitt", items: items{entities.ItemFlute: 1, entities.ItemGlove: 2}, expected: entities.Unavailable},
		{name: "pearl", items: items{entities.ItemFlute: 1, entities.ItemGlove: 2, entities.ItemMoonPearl: 1}, expected: entities.Available},
		{name: "bunny with mirror", items: items{entities.ItemFlute: 1, entities.ItemGlove: 2, entities.ItemMirror: 1}, expected: entities.Glitches},
	})
	s.runCases(entities.DwarfEscort, []ruleCase{
		{name: "mitt and pearl", items: items{entities.ItemGlove: 2, entities.ItemMoonPearl: 1}, expected: entities.Available},
	})
}

func (s *EngineTestSuite) TestPurpleChestFollowsDwarfEscort() {
	s.Equal(entities.Unavailable, s.engine.Availability(entities.PurpleChest))

	s.locations.Get(entities.DwarfEscort).ToggleOpened()
	s.Equal(entities.Available, s.engine.Availability(entities.PurpleChest))

	s.locations.Get(entities.DwarfEscort).ToggleOpened()
	s.Equal(entities.Unavailable, s.engine.Availability(entities.PurpleChest))
}

func (s *EngineTestSuite) TestPyramidFairy() {
	fairy := []entities.DungeonKey{entities.PalaceOfDarkness, entities.SwampPalace}
	for _, key := range fairy {
		d := s.dungeons.Get(key)
		for d.Reward() != entities.RewardFairyCrystal {
			d.CycleReward()
		}
		d.ToggleDefeat()
	}

	s.grant(items{entities.ItemMoonPearl: 1})
	s.Equal(entities.Unavailable, s.engine.Availability(entities.PyramidFairy))

	s.grant(items{entities.ItemHammer: 1, entities.ItemGlove: 1})
	s.Equal(entities.Available, s.engine.Availability(entities.PyramidFairy))

	s.Run("one fairy crystal is not enough", func() {
		s.dungeons.Get(entities.SwampPalace).ToggleDefeat()
		s.Equal(entities.Unavailable, s.engine.Availability(entities.PyramidFairy))
	})
}

func (s *EngineTestSuite) TestMimicCaveFollowsTurtleRockMedallion() {
	s.grant(items{
		entities.ItemMoonPearl: 1,
		entities.ItemHammer:    1,
		entities.ItemSomaria:   1,
		entities.ItemMirror:    1,
		entities.ItemGlove:     2,
		entities.ItemFireRod:   1,
		entities.ItemSword:     1,
	})
	s.Equal(entities.Unavailable, s.engine.Availability(entities.MimicCave))

	s.grant(items{entities.ItemBombos: 1, entities.ItemEther: 1})
	s.Equal(entities.Possible, s.engine.Availability(entities.MimicCave))

	turtle := s.dungeons.Get(entities.TurtleRock)
	for turtle.EntranceLock() != entities.LockQuake {
		turtle.CycleEntranceLock()
	}
	s.Equal(entities.Unavailable, s.engine.Availability(entities.MimicCave))

	turtle.CycleEntranceLock()
	turtle.CycleEntranceLock()
	s.Require().Equal(entities.LockBombos, turtle.EntranceLock())
	s.Equal(entities.Glitches, s.engine.Availability(entities.MimicCave))

	s.grant(items{entities.ItemLantern: 1})
	s.Equal(entities.Available, s.engine.Availability(entities.MimicCave))
}

func (s *EngineTestSuite) TestSwordlessMimicCave() {
	s.settings.Sword = entities.SwordLogicSwordless
	s.grant(items{
		entities.ItemMoonPearl: 1,
		entities.ItemHammer:    1,
		entities.ItemSomaria:   1,
		entities.ItemMirror:    1,
		entities.ItemGlove:     2,
		entities.ItemBombos:    1,
		entities.ItemFireRod:   1,
		entities.ItemLantern:   1,
	})
	s.Require().Equal(0, s.inv.SwordLevel())

	s.Equal(entities.Possible, s.engine.Availability(entities.MimicCave))

	turtle := s.dungeons.Get(entities.TurtleRock)
	for turtle.EntranceLock() != entities.LockBombos {
		turtle.CycleEntranceLock()
	}
	s.Equal(entities.Available, s.engine.Availability(entities.MimicCave))

	s.grant(items{entities.ItemFireRod: 0})
	s.Equal(entities.Possible, s.engine.Availability(entities.MimicCave))

	s.grant(items{entities.ItemFireRod: 1})
	for turtle.EntranceLock() != entities.LockQuake {
		turtle.CycleEntranceLock()
	}
	s.Equal(entities.Unavailable, s.engine.Availability(entities.MimicCave))
}

func (s *EngineTestSuite) TestSwordlessTablets() {
	s.settings.Sword = entities.SwordLogicSwordless

	s.runCases(entities.EtherTablet, []ruleCase{
		{
			name:     "hammer",
			items:    items{entities.ItemBook: 1, entities.ItemGlove: 1, entities.ItemLantern: 1, entities.ItemMirror: 1, entities.ItemHammer: 1},
			expected: entities.Available,
		},
		{
			name:     "no hammer",
			items:    items{entities.ItemBook: 1, entities.ItemFlute: 1, entities.ItemMirror: 1},
			expected: entities.Visible,
		},
		{
			name:     "hammer on the dark climb",
			items:    items{entities.ItemBook: 1, entities.ItemGlove: 1, entities.ItemMirror: 1, entities.ItemHammer: 1},
			expected: entities.Glitches,
		},
	})
	s.runCases(entities.BombosTablet, []ruleCase{
		{
			name:     "hammer",
			items:    items{entities.ItemBook: 1, entities.ItemGlove: 1, entities.ItemHammer: 1, entities.ItemMoonPearl: 1, entities.ItemMirror: 1},
			expected: entities.Available,
		},
		{
			name:     "no hammer",
			items:    items{entities.ItemBook: 1, entities.ItemGlove: 2, entities.ItemMoonPearl: 1, entities.ItemMirror: 1},
			expected: entities.Visible,
		},
	})
}

func (s *EngineTestSuite) TestVerdictsAreRecomputed() {
	first := s.engine.Availability(entities.KingsTomb)
	s.Equal(first, s.engine.Availability(entities.KingsTomb))

	s.grant(items{entities.ItemBoots: 1, entities.ItemGlove: 2})
	s.Equal(entities.Available, s.engine.Availability(entities.KingsTomb))

	s.inv.Reset(s.settings)
	s.Equal(entities.Unavailable, s.engine.Availability(entities.KingsTomb))
}

// More items never take a location away under any sword logic or start
// state.
func TestMoreItemsNeverHurt(t *testing.T) {
	catalog := entities.AllItems()
	dungeonKeys := entities.AllDungeonKeys()

	rapid.Check(t, func(rt *rapid.T) {
		settings := entities.Settings{
			Sword: rapid.SampledFrom([]entities.SwordLogic{
				entities.SwordLogicNormal,
				entities.SwordLogicRandomized,
				entities.SwordLogicSwordless,
			}).Draw(rt, "sword"),
			Start: rapid.SampledFrom([]entities.StartState{entities.StartStateOpen, entities.StartStateStandard}).Draw(rt, "start"),
		}
		inv := entities.NewInventory(&settings)
		for _, info := range catalog {
			level := rapid.IntRange(0, info.MaxLevel).Draw(rt, string(info.Key))
			if err := inv.SetLevel(info.Key, level); err != nil {
				rt.Fatalf("set %s: %v", info.Key, err)
			}
		}

		dungeons := entities.NewRegistry()
		for _, key := range dungeonKeys {
			d := dungeons.Get(key)
			if rapid.Bool().Draw(rt, "defeated_"+string(key)) {
				d.ToggleDefeat()
			}
			for range rapid.IntRange(0, 4).Draw(rt, "reward_"+string(key)) {
				d.CycleReward()
			}
			for range rapid.IntRange(0, 3).Draw(rt, "lock_"+string(key)) {
				d.CycleEntranceLock()
			}
		}

		engine, err := locations.New(&locations.Config{
			Inventory: inv,
			Dungeons:  dungeons,
			Locations: entities.NewLocations(&settings),
			Settings:  &settings,
		})
		if err != nil {
			rt.Fatalf("new engine: %v", err)
		}

		before := make(map[entities.LocationKey]entities.Availability)
		for _, key := range entities.AllLocationKeys() {
			before[key] = engine.Availability(key)
		}

		info := rapid.SampledFrom(catalog).Draw(rt, "grant")
		if inv.Level(info.Key) == info.MaxLevel {
			rt.Skip("already at max")
		}
		if err := inv.SetLevel(info.Key, inv.Level(info.Key)+1); err != nil {
			rt.Fatalf("grant %s: %v", info.Key, err)
		}

		for _, key := range entities.AllLocationKeys() {
			after := engine.Availability(key)
			if before[key] == entities.Available && after != entities.Available {
				rt.Fatalf("%s dropped from available to %s after %s", key, after, info.Key)
			}
			if before[key] != entities.Unavailable && after == entities.Unavailable {
				rt.Fatalf("%s became unavailable after %s", key, info.Key)
			}
		}
	})
}
