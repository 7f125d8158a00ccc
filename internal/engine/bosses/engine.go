// Package bosses holds one defeat predicate per dungeon boss
package bosses

import (
	"fmt"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
)

// Config holds the state the predicates read
type Config struct {
	Inventory *entities.Inventory
	Settings  entities.SettingsProvider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	return vb.Build()
}

// Engine evaluates boss predicates against the live inventory.
// It keeps no state of its own.
type Engine struct {
	inv      *entities.Inventory
	settings entities.SettingsProvider
}

// New creates a boss rule engine
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Engine{inv: cfg.Inventory, settings: cfg.Settings}, nil
}

// CanDefeat reports whether the boss native to the given dungeon can be
// beaten. Both Agahnim fights share one predicate. An unknown key panics.
func (e *Engine) CanDefeat(boss entities.DungeonKey) bool {
	switch boss {
	case entities.CastleTower, entities.GanonsTower:
		return e.agahnim()
	case entities.EasternPalace:
		return e.armosKnights()
	case entities.DesertPalace:
		return e.lanmolas()
	case entities.TowerOfHera:
		return e.moldorm()
	case entities.PalaceOfDarkness:
		return e.helmasaurKing()
	case entities.SwampPalace:
		return e.arrghus()
	case entities.SkullWoods:
		return e.mothula()
	case entities.ThievesTown:
		return e.blind()
	case entities.IcePalace:
		return e.kholdstare()
	case entities.MiseryMire:
		return e.vitreous()
	case entities.TurtleRock:
		return e.trinexx()
	default:
		panic(fmt.Sprintf("bosses: unknown boss %q", boss))
	}
}

func (e *Engine) agahnim() bool {
	return e.inv.Has(entities.ItemNet) || e.inv.Has(entities.ItemHammer) || e.inv.HasSword()
}

func (e *Engine) armosKnights() bool {
	return e.inv.HasMeleeOrRanged() ||
		e.inv.HasRod() ||
		e.inv.HasCane() ||
		e.inv.HasBoomerang() ||
		e.inv.HasBombs()
}

func (e *Engine) lanmolas() bool {
	return e.inv.HasMeleeOrRanged() ||
		e.inv.HasRod() ||
		e.inv.HasCane() ||
		e.inv.HasBombs()
}

func (e *Engine) moldorm() bool {
	return e.inv.HasMelee()
}

func (e *Engine) helmasaurKing() bool {
	return e.inv.Has(entities.ItemHammer) ||
		(e.inv.HasBombs() && e.inv.HasMeleeOrRanged())
}

func (e *Engine) arrghus() bool {
	return e.inv.Has(entities.ItemHookshot) &&
		(e.inv.HasMeleeOrRanged() || e.inv.HasRod() || e.inv.HasCane() || e.inv.HasBombs())
}

func (e *Engine) mothula() bool {
	return e.inv.HasMelee() || e.inv.HasCane() || e.inv.Has(entities.ItemFireRod)
}

func (e *Engine) blind() bool {
	return e.inv.HasMelee() || e.inv.HasCane()
}

// kholdstare needs the shell melted and the clouds cleared. Bombos only
// melts the shell when a sword can cast it, so swordless logic drops it.
func (e *Engine) kholdstare() bool {
	bombos := e.inv.Has(entities.ItemBombos) && !e.settings.SwordLogic().IsSwordless()
	shell := e.inv.Has(entities.ItemFireRod) || bombos
	clouds := e.inv.Has(entities.ItemFireRod) || e.inv.HasMelee()
	return shell && clouds
}

func (e *Engine) vitreous() bool {
	return e.inv.HasMeleeOrRanged() || e.inv.HasBombs()
}

func (e *Engine) trinexx() bool {
	return e.inv.Has(entities.ItemFireRod) && e.inv.Has(entities.ItemIceRod) && e.inv.HasMelee()
}
