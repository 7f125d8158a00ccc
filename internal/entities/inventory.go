package entities

import (
	"github.com/CWSpear/stumpy/internal/errors"
)

// Inventory holds the current level of every catalog item.
// It is not safe for concurrent use.
type Inventory struct {
	levels map[ItemKey]int
}

// NewInventory creates an inventory at the starting levels for settings
func NewInventory(settings SettingsProvider) *Inventory {
	inv := &Inventory{levels: make(map[ItemKey]int, len(itemCatalog))}
	inv.Reset(settings)
	return inv
}

// Level returns the current level of key
func (inv *Inventory) Level(key ItemKey) int {
	MustItem(key)
	return inv.levels[key]
}

// Has reports whether key is held at any level
func (inv *Inventory) Has(key ItemKey) bool {
	return inv.Level(key) > 0
}

// SetLevel sets key to level. Levels outside [0, max] are rejected and the
// inventory is left untouched.
func (inv *Inventory) SetLevel(key ItemKey, level int) error {
	info := MustItem(key)
	if level < 0 || level > info.MaxLevel {
		return errors.InvalidArgumentf("level %d out of range for %s", level, key).
			WithMeta("item", string(key)).
			WithMeta("max_level", info.MaxLevel)
	}
	inv.levels[key] = level
	return nil
}

// Increment raises key by one level, wrapping past the maximum to 0, and
// returns the new level
func (inv *Inventory) Increment(key ItemKey) int {
	info := MustItem(key)
	next := inv.levels[key] + 1
	if next > info.MaxLevel {
		next = 0
	}
	inv.levels[key] = next
	return next
}

// Reset returns every item to its starting level for settings
func (inv *Inventory) Reset(settings SettingsProvider) {
	for _, info := range itemCatalog {
		inv.levels[info.Key] = StartingLevel(info.Key, settings)
	}
}

// StartingLevel is the level key holds after a reset under settings
func StartingLevel(key ItemKey, settings SettingsProvider) int {
	switch key {
	case ItemTunic:
		return 1
	case ItemSword, ItemShield:
		if settings.StartState() == StartStateStandard && !settings.SwordLogic().IsSwordless() {
			return 1
		}
	}
	return 0
}

// Levels returns a copy of every item level
func (inv *Inventory) Levels() map[ItemKey]int {
	out := make(map[ItemKey]int, len(inv.levels))
	for k, v := range inv.levels {
		out[k] = v
	}
	return out
}

// Restore replaces the inventory with levels. Unknown keys or out of range
// levels reject the whole set. Items missing from levels are set to 0.
func (inv *Inventory) Restore(levels map[ItemKey]int) error {
	vb := errors.NewValidationBuilder()
	for key, level := range levels {
		info, ok := LookupItem(key)
		if !ok {
			vb.InvalidField(string(key), "unknown item")
			continue
		}
		if level < 0 || level > info.MaxLevel {
			vb.Fieldf(string(key), "level %d outside [0, %d]", level, info.MaxLevel)
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	for _, info := range itemCatalog {
		inv.levels[info.Key] = levels[info.Key]
	}
	return nil
}

// Derived queries

// SwordLevel returns the current sword level
func (inv *Inventory) SwordLevel() int {
	return inv.Level(ItemSword)
}

// HasSword reports whether any sword is wielded
func (inv *Inventory) HasSword() bool {
	return inv.SwordLevel() >= SwordFighter
}

// HasMelee reports a sword or the hammer
func (inv *Inventory) HasMelee() bool {
	return inv.HasSword() || inv.Has(ItemHammer)
}

// HasRanged reports a bow
func (inv *Inventory) HasRanged() bool {
	return inv.Has(ItemBow) || inv.Has(ItemBowAndArrows)
}

// HasMeleeOrRanged reports any weapon that deals direct damage
func (inv *Inventory) HasMeleeOrRanged() bool {
	return inv.HasMelee() || inv.HasRanged()
}

// HasRod reports either elemental rod
func (inv *Inventory) HasRod() bool {
	return inv.Has(ItemFireRod) || inv.Has(ItemIceRod)
}

// HasCane reports either magical cane
func (inv *Inventory) HasCane() bool {
	return inv.Has(ItemSomaria) || inv.Has(ItemByrna)
}

// HasBoomerang reports either boomerang
func (inv *Inventory) HasBoomerang() bool {
	return inv.Has(ItemBoomerangs)
}

// HasBombs reports bombs on hand
func (inv *Inventory) HasBombs() bool {
	return inv.Has(ItemBomb)
}

// HasBottle reports at least one bottle
func (inv *Inventory) HasBottle() bool {
	return inv.Has(ItemBottle)
}

// CanLiftRocks reports power glove or better
func (inv *Inventory) CanLiftRocks() bool {
	return inv.Level(ItemGlove) >= GlovePower
}

// CanLiftHeavyRocks reports titan's mitt
func (inv *Inventory) CanLiftHeavyRocks() bool {
	return inv.Level(ItemGlove) >= GloveTitan
}

// HasMedallion reports any of the three medallions
func (inv *Inventory) HasMedallion() bool {
	return inv.Has(ItemBombos) || inv.Has(ItemEther) || inv.Has(ItemQuake)
}

// HasLightSource reports the lantern
func (inv *Inventory) HasLightSource() bool {
	return inv.Has(ItemLantern)
}
