package entities

import (
	"fmt"

	"github.com/CWSpear/stumpy/internal/errors"
)

// LocationKey identifies an item pickup location
type LocationKey string

// Light world locations
const (
	KingsTomb            LocationKey = "kings_tomb"
	LightWorldSwamp      LocationKey = "light_world_swamp"
	LinksHouse           LocationKey = "links_house"
	SpiralCave           LocationKey = "spiral_cave"
	MimicCave            LocationKey = "mimic_cave"
	KakarikoTavern       LocationKey = "kakariko_tavern"
	ChickenHouse         LocationKey = "chicken_house"
	AginahsCave          LocationKey = "aginahs_cave"
	SahasrahlasHut       LocationKey = "sahasrahlas_hut"
	KakarikoWell         LocationKey = "kakariko_well"
	BlindsHideout        LocationKey = "blinds_hideout"
	ParadoxCave          LocationKey = "paradox_cave"
	BonkRocks            LocationKey = "bonk_rocks"
	MiniMoldormCave      LocationKey = "mini_moldorm_cave"
	IceRodCave           LocationKey = "ice_rod_cave"
	BottleVendor         LocationKey = "bottle_vendor"
	SahasrahlasReward    LocationKey = "sahasrahlas_reward"
	SickKid              LocationKey = "sick_kid"
	BridgeHideout        LocationKey = "bridge_hideout"
	EtherTablet          LocationKey = "ether_tablet"
	BombosTablet         LocationKey = "bombos_tablet"
	KingZora             LocationKey = "king_zora"
	LostOldMan           LocationKey = "lost_old_man"
	PotionShop           LocationKey = "potion_shop"
	ForestHideout        LocationKey = "forest_hideout"
	LumberjackTree       LocationKey = "lumberjack_tree"
	SpectacleRockCave    LocationKey = "spectacle_rock_cave"
	SouthOfGrove         LocationKey = "south_of_grove"
	GraveyardCliffCave   LocationKey = "graveyard_cliff_cave"
	CheckerboardCave     LocationKey = "checkerboard_cave"
	Library              LocationKey = "library"
	Mushroom             LocationKey = "mushroom"
	SpectacleRock        LocationKey = "spectacle_rock"
	FloatingIsland       LocationKey = "floating_island"
	RaceMinigame         LocationKey = "race_minigame"
	DesertWestLedge      LocationKey = "desert_west_ledge"
	LakeHyliaIsland      LocationKey = "lake_hylia_island"
	ZoraLedge            LocationKey = "zora_ledge"
	BuriedItem           LocationKey = "buried_item"
	SewerEscapeSideRoom  LocationKey = "sewer_escape_side_room"
	SewerEscapeDarkRoom  LocationKey = "sewer_escape_dark_room"
	CastleSecretEntrance LocationKey = "castle_secret_entrance"
	HyruleCastleDungeon  LocationKey = "hyrule_castle_dungeon"
	Sanctuary            LocationKey = "sanctuary"
	MadBatter            LocationKey = "mad_batter"
	DwarfEscort          LocationKey = "dwarf_escort"
	MasterSwordPedestal  LocationKey = "master_sword_pedestal"
	WaterfallOfWishing   LocationKey = "waterfall_of_wishing"
)

// Dark world locations
const (
	SuperBunnyCave        LocationKey = "super_bunny_cave"
	HookshotCaveTop       LocationKey = "hookshot_cave_top"
	HookshotCaveBottom    LocationKey = "hookshot_cave_bottom"
	SpikeCave             LocationKey = "spike_cave"
	TreasureChestMinigame LocationKey = "treasure_chest_minigame"
	BombableHut           LocationKey = "bombable_hut"
	CShapedHouse          LocationKey = "c_shaped_house"
	PurpleChest           LocationKey = "purple_chest"
	HammerPegCave         LocationKey = "hammer_peg_cave"
	BumperCave            LocationKey = "bumper_cave"
	Pyramid               LocationKey = "pyramid"
	PyramidFairy          LocationKey = "pyramid_fairy"
	Catfish               LocationKey = "catfish"
	DiggingGame           LocationKey = "digging_game"
	Stumpy                LocationKey = "stumpy"
	HypeCave              LocationKey = "hype_cave"
	MireHut               LocationKey = "mire_hut"
)

// LocationInfo is the static catalog data of a location
type LocationInfo struct {
	Key   LocationKey
	Name  string
	World World
}

var locationCatalog = []LocationInfo{
	{KingsTomb, "King's Tomb", LightWorld},
	{LightWorldSwamp, "Light World Swamp", LightWorld},
	{LinksHouse, "Link's House", LightWorld},
	{SpiralCave, "Spiral Cave", LightWorld},
	{MimicCave, "Mimic Cave", LightWorld},
	{KakarikoTavern, "Kakariko Tavern", LightWorld},
	{ChickenHouse, "Chicken House", LightWorld},
	{AginahsCave, "Aginah's Cave", LightWorld},
	{SahasrahlasHut, "Sahasrahla's Hut", LightWorld},
	{KakarikoWell, "Kakariko Well", LightWorld},
	{BlindsHideout, "Blind's Hideout", LightWorld},
	{ParadoxCave, "Paradox Cave", LightWorld},
	{BonkRocks, "Bonk Rocks", LightWorld},
	{MiniMoldormCave, "Mini Moldorm Cave", LightWorld},
	{IceRodCave, "Ice Rod Cave", LightWorld},
	{BottleVendor, "Bottle Vendor", LightWorld},
	{SahasrahlasReward, "Sahasrahla's Reward", LightWorld},
	{SickKid, "Sick Kid", LightWorld},
	{BridgeHideout, "Under the Bridge", LightWorld},
	{EtherTablet, "Ether Tablet", LightWorld},
	{BombosTablet, "Bombos Tablet", LightWorld},
	{KingZora, "King Zora", LightWorld},
	{LostOldMan, "Lost Old Man", LightWorld},
	{PotionShop, "Potion Shop", LightWorld},
	{ForestHideout, "Forest Hideout", LightWorld},
	{LumberjackTree, "Lumberjack Tree", LightWorld},
	{SpectacleRockCave, "Spectacle Rock Cave", LightWorld},
	{SouthOfGrove, "South of Grove", LightWorld},
	{GraveyardCliffCave, "Graveyard Cliff Cave", LightWorld},
	{CheckerboardCave, "Checkerboard Cave", LightWorld},
	{Library, "Library", LightWorld},
	{Mushroom, "Mushroom", LightWorld},
	{SpectacleRock, "Spectacle Rock", LightWorld},
	{FloatingIsland, "Floating Island", LightWorld},
	{RaceMinigame, "Race Minigame", LightWorld},
	{DesertWestLedge, "Desert West Ledge", LightWorld},
	{LakeHyliaIsland, "Lake Hylia Island", LightWorld},
	{ZoraLedge, "Zora's Ledge", LightWorld},
	{BuriedItem, "Buried Item", LightWorld},
	{SewerEscapeSideRoom, "Sewer Escape Side Room", LightWorld},
	{SewerEscapeDarkRoom, "Sewer Escape Dark Room", LightWorld},
	{CastleSecretEntrance, "Castle Secret Entrance", LightWorld},
	{HyruleCastleDungeon, "Hyrule Castle Dungeon", LightWorld},
	{Sanctuary, "Sanctuary", LightWorld},
	{MadBatter, "Mad Batter", LightWorld},
	{DwarfEscort, "Dwarf Escort", LightWorld},
	{MasterSwordPedestal, "Master Sword Pedestal", LightWorld},
	{WaterfallOfWishing, "Waterfall of Wishing", LightWorld},

	{SuperBunnyCave, "Super Bunny Cave", DarkWorld},
	{HookshotCaveTop, "Hookshot Cave (top)", DarkWorld},
	{HookshotCaveBottom, "Hookshot Cave (bottom)", DarkWorld},
	{SpikeCave, "Spike Cave", DarkWorld},
	{TreasureChestMinigame, "Treasure Chest Minigame", DarkWorld},
	{BombableHut, "Bombable Hut", DarkWorld},
	{CShapedHouse, "C-Shaped House", DarkWorld},
	{PurpleChest, "Purple Chest", DarkWorld},
	{HammerPegCave, "Hammer Peg Cave", DarkWorld},
	{BumperCave, "Bumper Cave", DarkWorld},
	{Pyramid, "Pyramid", DarkWorld},
	{PyramidFairy, "Pyramid Fairy", DarkWorld},
	{Catfish, "Catfish", DarkWorld},
	{DiggingGame, "Digging Game", DarkWorld},
	{Stumpy, "Stumpy", DarkWorld},
	{HypeCave, "Hype Cave", DarkWorld},
	{MireHut, "Mire Hut", DarkWorld},
}

var locationIndex = func() map[LocationKey]int {
	idx := make(map[LocationKey]int, len(locationCatalog))
	for i, info := range locationCatalog {
		idx[info.Key] = i
	}
	return idx
}()

// AllLocationKeys returns every location key in catalog order
func AllLocationKeys() []LocationKey {
	keys := make([]LocationKey, len(locationCatalog))
	for i, info := range locationCatalog {
		keys[i] = info.Key
	}
	return keys
}

// LookupLocation returns the catalog entry for key
func LookupLocation(key LocationKey) (LocationInfo, bool) {
	i, ok := locationIndex[key]
	if !ok {
		return LocationInfo{}, false
	}
	return locationCatalog[i], true
}

func mustLocationIndex(key LocationKey) int {
	i, ok := locationIndex[key]
	if !ok {
		panic(fmt.Sprintf("entities: unknown location %q", key))
	}
	return i
}

// ItemLocation is a catalog location plus its opened flag
type ItemLocation struct {
	LocationInfo
	opened bool
}

// IsOpened reports whether the location has been claimed
func (l *ItemLocation) IsOpened() bool { return l.opened }

// ToggleOpened flips the opened flag
func (l *ItemLocation) ToggleOpened() { l.opened = !l.opened }

// Locations is the set of item locations for one tracker session
type Locations struct {
	items []*ItemLocation
}

// NewLocations builds every catalog location in its reset state
func NewLocations(settings SettingsProvider) *Locations {
	ls := &Locations{items: make([]*ItemLocation, len(locationCatalog))}
	for i, info := range locationCatalog {
		ls.items[i] = &ItemLocation{LocationInfo: info}
	}
	ls.Reset(settings)
	return ls
}

// Get returns the location for key and panics on an unknown key
func (ls *Locations) Get(key LocationKey) *ItemLocation {
	return ls.items[mustLocationIndex(key)]
}

// All returns the locations in catalog order
func (ls *Locations) All() []*ItemLocation {
	out := make([]*ItemLocation, len(ls.items))
	copy(out, ls.items)
	return out
}

// Reset clears every opened flag. A standard start begins inside Link's
// House, so that location is already claimed.
func (ls *Locations) Reset(settings SettingsProvider) {
	for _, l := range ls.items {
		l.opened = false
	}
	if settings.StartState() == StartStateStandard {
		ls.Get(LinksHouse).opened = true
	}
}

// Opened returns the keys of every opened location in catalog order
func (ls *Locations) Opened() []LocationKey {
	var out []LocationKey
	for _, l := range ls.items {
		if l.opened {
			out = append(out, l.Key)
		}
	}
	return out
}

// Restore sets exactly the given locations as opened
func (ls *Locations) Restore(opened []LocationKey) error {
	for _, key := range opened {
		if _, ok := locationIndex[key]; !ok {
			return errors.InvalidArgumentf("unknown location %q", key)
		}
	}
	for _, l := range ls.items {
		l.opened = false
	}
	for _, key := range opened {
		ls.Get(key).opened = true
	}
	return nil
}
