// Package locations holds one accessibility rule per item location.
//
// Every rule is a branch sequence: the strongest legitimate path is tested
// first, weaker and exploit paths after it, and a rule that matches nothing
// falls through to Unavailable. Rules read the shared inventory, dungeon
// registry and location set on every call and never cache.
package locations

import (
	"fmt"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
)

// Config holds the state the rules read
type Config struct {
	Inventory *entities.Inventory
	Dungeons  *entities.Registry
	Locations *entities.Locations
	Settings  entities.SettingsProvider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.Dungeons == nil {
		vb.RequiredField("Dungeons")
	}
	if c.Locations == nil {
		vb.RequiredField("Locations")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	return vb.Build()
}

// Engine evaluates location rules
type Engine struct {
	inv       *entities.Inventory
	dungeons  *entities.Registry
	locations *entities.Locations
	settings  entities.SettingsProvider
}

// New creates a location rule engine
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Engine{
		inv:       cfg.Inventory,
		dungeons:  cfg.Dungeons,
		locations: cfg.Locations,
		settings:  cfg.Settings,
	}, nil
}

// Availability returns the verdict for key. An unknown key panics.
func (e *Engine) Availability(key entities.LocationKey) entities.Availability {
	switch key {
	// light world
	case entities.KingsTomb:
		return e.kingsTomb()
	case entities.LightWorldSwamp:
		return entities.Available
	case entities.LinksHouse:
		return entities.Available
	case entities.SpiralCave:
		return e.spiralCave()
	case entities.MimicCave:
		return e.mimicCave()
	case entities.KakarikoTavern:
		return entities.Available
	case entities.ChickenHouse:
		return e.needsBombs()
	case entities.AginahsCave:
		return e.needsBombs()
	case entities.SahasrahlasHut:
		return e.sahasrahlasHut()
	case entities.KakarikoWell:
		return e.kakarikoWell()
	case entities.BlindsHideout:
		return entities.Available
	case entities.ParadoxCave:
		return e.paradoxCave()
	case entities.BonkRocks:
		return entities.OnlyIf(e.inv.Has(entities.ItemBoots), entities.Available)
	case entities.MiniMoldormCave:
		return e.needsBombs()
	case entities.IceRodCave:
		return e.needsBombs()
	case entities.BottleVendor:
		return entities.Available
	case entities.SahasrahlasReward:
		return e.sahasrahlasReward()
	case entities.SickKid:
		return entities.OnlyIf(e.inv.HasBottle(), entities.Available)
	case entities.BridgeHideout:
		return entities.Either(e.inv.Has(entities.ItemFlippers), entities.Glitches)
	case entities.EtherTablet:
		return e.etherTablet()
	case entities.BombosTablet:
		return e.bombosTablet()
	case entities.KingZora:
		return e.kingZora()
	case entities.LostOldMan:
		return e.lostOldMan()
	case entities.PotionShop:
		return entities.OnlyIf(e.inv.Has(entities.ItemMushroom), entities.Available)
	case entities.ForestHideout:
		return entities.Available
	case entities.LumberjackTree:
		return e.lumberjackTree()
	case entities.SpectacleRockCave:
		return e.deathMountainWest()
	case entities.SouthOfGrove:
		return e.southOfGrove()
	case entities.GraveyardCliffCave:
		return e.graveyardCliffCave()
	case entities.CheckerboardCave:
		return e.checkerboardCave()
	case entities.Library:
		return entities.Either(e.inv.Has(entities.ItemBoots), entities.Visible)
	case entities.Mushroom:
		return entities.Available
	case entities.SpectacleRock:
		return e.spectacleRock()
	case entities.FloatingIsland:
		return e.floatingIsland()
	case entities.RaceMinigame:
		return entities.Available
	case entities.DesertWestLedge:
		return e.desertWestLedge()
	case entities.LakeHyliaIsland:
		return e.lakeHyliaIsland()
	case entities.ZoraLedge:
		return e.zoraLedge()
	case entities.BuriedItem:
		return entities.OnlyIf(e.inv.Has(entities.ItemShovel), entities.Available)
	case entities.SewerEscapeSideRoom:
		return e.sewerEscapeSideRoom()
	case entities.SewerEscapeDarkRoom:
		return e.sewerEscapeDarkRoom()
	case entities.CastleSecretEntrance:
		return entities.Available
	case entities.HyruleCastleDungeon:
		return entities.Available
	case entities.Sanctuary:
		return entities.Available
	case entities.MadBatter:
		return e.madBatter()
	case entities.DwarfEscort:
		return e.dwarfEscort()
	case entities.MasterSwordPedestal:
		return e.masterSwordPedestal()
	case entities.WaterfallOfWishing:
		return e.waterfallOfWishing()

	// dark world
	case entities.SuperBunnyCave:
		return e.superBunnyCave()
	case entities.HookshotCaveTop:
		return e.hookshotCaveTop()
	case entities.HookshotCaveBottom:
		return e.hookshotCaveBottom()
	case entities.SpikeCave:
		return e.spikeCave()
	case entities.TreasureChestMinigame:
		return entities.OnlyIf(e.canReachOutcasts(), entities.Available)
	case entities.BombableHut:
		return entities.OnlyIf(e.canReachOutcasts() && e.inv.HasBombs(), entities.Available)
	case entities.CShapedHouse:
		return entities.OnlyIf(e.canReachOutcasts(), entities.Available)
	case entities.PurpleChest:
		return e.purpleChest()
	case entities.HammerPegCave:
		return e.hammerPegCave()
	case entities.BumperCave:
		return e.bumperCave()
	case entities.Pyramid:
		return e.pyramid()
	case entities.PyramidFairy:
		return e.pyramidFairy()
	case entities.Catfish:
		return e.catfish()
	case entities.DiggingGame:
		return entities.OnlyIf(e.canReachDarkWorldSouth(), entities.Available)
	case entities.Stumpy:
		return entities.OnlyIf(e.canReachDarkWorldSouth(), entities.Available)
	case entities.HypeCave:
		return entities.OnlyIf(e.canReachDarkWorldSouth() && e.inv.HasBombs(), entities.Available)
	case entities.MireHut:
		return e.mireHut()
	default:
		panic(fmt.Sprintf("locations: unknown location %q", key))
	}
}
