package entities

import (
	"fmt"

	"github.com/CWSpear/stumpy/internal/errors"
)

var dungeonCatalog = []DungeonInfo{
	{
		Key: CastleTower, Code: "CT", Name: "Agahnim's Tower", Boss: "Agahnim", World: LightWorld,
		MaxItemChests: 0, MaxTotalChests: 2, MaxSmallKeys: 2,
		Requirement: "{sword2} or {cape} + {sword1}",
	},
	{
		Key: EasternPalace, Code: "EP", Name: "Eastern Palace", Boss: "Armos Knights", World: LightWorld,
		MaxItemChests: 3, MaxTotalChests: 6, MaxSmallKeys: 0, HasReward: true,
		Requirement: "{lantern}",
	},
	{
		Key: DesertPalace, Code: "DP", Name: "Desert Palace", Boss: "Lanmolas", World: LightWorld,
		MaxItemChests: 2, MaxTotalChests: 6, MaxSmallKeys: 1, HasReward: true,
		Requirement: "{book} or {glove2} + {mirror}",
	},
	{
		Key: TowerOfHera, Code: "ToH", Name: "Tower of Hera", Boss: "Moldorm", World: LightWorld,
		MaxItemChests: 2, MaxTotalChests: 6, MaxSmallKeys: 1, HasReward: true,
	},
	{
		Key: PalaceOfDarkness, Code: "PoD", Name: "Palace of Darkness", Boss: "Helmasaur King", World: DarkWorld,
		MaxItemChests: 5, MaxTotalChests: 14, MaxSmallKeys: 6, HasReward: true,
		Requirement: "{lantern} + {bow}",
	},
	{
		Key: SwampPalace, Code: "SP", Name: "Swamp Palace", Boss: "Arrghus", World: DarkWorld,
		MaxItemChests: 6, MaxTotalChests: 10, MaxSmallKeys: 1, HasReward: true,
		Requirement: "{mirror} + {flippers}",
	},
	{
		Key: SkullWoods, Code: "SW", Name: "Skull Woods", Boss: "Mothula", World: DarkWorld,
		MaxItemChests: 2, MaxTotalChests: 8, MaxSmallKeys: 3, HasReward: true,
	},
	{
		Key: ThievesTown, Code: "TT", Name: "Thieves Town", Boss: "Blind", World: DarkWorld,
		MaxItemChests: 4, MaxTotalChests: 8, MaxSmallKeys: 1, HasReward: true,
	},
	{
		Key: IcePalace, Code: "IP", Name: "Ice Palace", Boss: "Kholdstare", World: DarkWorld,
		MaxItemChests: 3, MaxTotalChests: 8, MaxSmallKeys: 2, HasReward: true,
	},
	{
		Key: MiseryMire, Code: "MM", Name: "Misery Mire", Boss: "Vitreous", World: DarkWorld,
		MaxItemChests: 2, MaxTotalChests: 8, MaxSmallKeys: 3, HasReward: true, HasLock: true,
		Requirement: "{lantern} + medallion",
	},
	{
		Key: TurtleRock, Code: "TR", Name: "Turtle Rock", Boss: "Trinexx", World: DarkWorld,
		MaxItemChests: 5, MaxTotalChests: 12, MaxSmallKeys: 4, HasReward: true, HasLock: true,
		Requirement: "{lantern} + medallion",
	},
	{
		Key: GanonsTower, Code: "GT", Name: "Ganon's Tower", Boss: "Agahnim 2", World: DarkWorld,
		MaxItemChests: 20, MaxTotalChests: 27, MaxSmallKeys: 4,
		Requirement: "7 crystals",
	},
}

var dungeonIndex = func() map[DungeonKey]int {
	idx := make(map[DungeonKey]int, len(dungeonCatalog))
	for i, info := range dungeonCatalog {
		idx[info.Key] = i
	}
	return idx
}()

// AllDungeonKeys returns every dungeon key in progression order
func AllDungeonKeys() []DungeonKey {
	keys := make([]DungeonKey, len(dungeonCatalog))
	for i, info := range dungeonCatalog {
		keys[i] = info.Key
	}
	return keys
}

// LookupDungeon returns the catalog entry for key
func LookupDungeon(key DungeonKey) (DungeonInfo, bool) {
	i, ok := dungeonIndex[key]
	if !ok {
		return DungeonInfo{}, false
	}
	return dungeonCatalog[i], true
}

func mustDungeonIndex(key DungeonKey) int {
	i, ok := dungeonIndex[key]
	if !ok {
		panic(fmt.Sprintf("entities: unknown dungeon %q", key))
	}
	return i
}

// isShuffleBoss reports whether key's boss takes part in boss shuffle.
// The two Agahnim fights never move.
func isShuffleBoss(key DungeonKey) bool {
	i, ok := dungeonIndex[key]
	return ok && dungeonCatalog[i].HasReward
}

// NextBoss returns the boss after key in progression order. Stepping onto
// the final tower wraps to the first palace.
func NextBoss(key DungeonKey) DungeonKey {
	next := dungeonCatalog[(mustDungeonIndex(key)+1)%len(dungeonCatalog)].Key
	if next == GanonsTower || next == CastleTower {
		return EasternPalace
	}
	return next
}

// PreviousBoss returns the boss before key. Stepping onto the castle tower
// wraps to the last crystal dungeon.
func PreviousBoss(key DungeonKey) DungeonKey {
	n := len(dungeonCatalog)
	prev := dungeonCatalog[(mustDungeonIndex(key)-1+n)%n].Key
	if prev == CastleTower || prev == GanonsTower {
		return TurtleRock
	}
	return prev
}

// Registry is the ordered collection of dungeons for one tracker session
type Registry struct {
	dungeons []*Dungeon
}

// NewRegistry builds every catalog dungeon in its initial state
func NewRegistry() *Registry {
	r := &Registry{dungeons: make([]*Dungeon, len(dungeonCatalog))}
	for i, info := range dungeonCatalog {
		r.dungeons[i] = newDungeon(info)
	}
	return r
}

// Get returns the dungeon for key and panics on an unknown key
func (r *Registry) Get(key DungeonKey) *Dungeon {
	return r.dungeons[mustDungeonIndex(key)]
}

// Lookup returns the dungeon for key
func (r *Registry) Lookup(key DungeonKey) (*Dungeon, bool) {
	i, ok := dungeonIndex[key]
	if !ok {
		return nil, false
	}
	return r.dungeons[i], true
}

// All returns the dungeons in progression order
func (r *Registry) All() []*Dungeon {
	out := make([]*Dungeon, len(r.dungeons))
	copy(out, r.dungeons)
	return out
}

// InWorld returns the dungeons of one world in progression order
func (r *Registry) InWorld(world World) []*Dungeon {
	var out []*Dungeon
	for _, d := range r.dungeons {
		if d.World == world {
			out = append(out, d)
		}
	}
	return out
}

// Reset resets every dungeon
func (r *Registry) Reset() {
	for _, d := range r.dungeons {
		d.Reset()
	}
}

// CountDefeated counts defeated dungeons whose reward satisfies match
func (r *Registry) CountDefeated(match func(Reward) bool) int {
	n := 0
	for _, d := range r.dungeons {
		if d.IsBossDefeated() && match(d.Reward()) {
			n++
		}
	}
	return n
}

// AllRewardDungeonsDefeated reports whether every dungeon with an ending
// reward has its boss defeated
func (r *Registry) AllRewardDungeonsDefeated() bool {
	for _, d := range r.dungeons {
		if d.HasReward && !d.IsBossDefeated() {
			return false
		}
	}
	return true
}

// States returns the progress state of every dungeon in order
func (r *Registry) States() []DungeonState {
	out := make([]DungeonState, len(r.dungeons))
	for i, d := range r.dungeons {
		out[i] = d.State()
	}
	return out
}

// Restore replaces the registry with states. Dungeons missing from states
// are reset, and every state is checked before any dungeon changes.
func (r *Registry) Restore(states []DungeonState) error {
	staged := make([]*Dungeon, len(r.dungeons))
	for i, d := range r.dungeons {
		cp := *d
		cp.Reset()
		staged[i] = &cp
	}
	for _, st := range states {
		i, ok := dungeonIndex[st.Key]
		if !ok {
			return errors.InvalidArgumentf("unknown dungeon %q", st.Key)
		}
		if err := staged[i].Restore(st); err != nil {
			return err
		}
	}
	for i, d := range r.dungeons {
		d.state = staged[i].state
	}
	return nil
}
