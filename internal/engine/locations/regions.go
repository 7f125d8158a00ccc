package locations

import (
	"github.com/CWSpear/stumpy/internal/entities"
)

func (e *Engine) swordless() bool {
	return e.settings.SwordLogic().IsSwordless()
}

func (e *Engine) agahnimDefeated() bool {
	return e.dungeons.Get(entities.CastleTower).IsBossDefeated()
}

// canUseMedallions needs a sword, except in swordless logic where the
// medallion pads work without one
func (e *Engine) canUseMedallions() bool {
	return e.inv.HasSword() || e.swordless()
}

// canReadTablet needs the master sword, or the hammer in swordless logic
func (e *Engine) canReadTablet() bool {
	if e.swordless() {
		return e.inv.Has(entities.ItemHammer)
	}
	return e.inv.SwordLevel() >= entities.SwordMaster
}

// deathMountainWest is Glitches when the dark old man cave has to be
// crossed without a lantern
func (e *Engine) deathMountainWest() entities.Availability {
	if e.inv.Has(entities.ItemFlute) || (e.inv.CanLiftRocks() && e.inv.HasLightSource()) {
		return entities.Available
	}
	if e.inv.CanLiftRocks() {
		return entities.Glitches
	}
	return entities.Unavailable
}

func (e *Engine) deathMountainEast() entities.Availability {
	crossing := e.inv.Has(entities.ItemHookshot) ||
		(e.inv.Has(entities.ItemMirror) && e.inv.Has(entities.ItemHammer))
	return entities.Min(e.deathMountainWest(), entities.OnlyIf(crossing, entities.Available))
}

// canReachOutcasts covers the north-west dark world around the Village of
// Outcasts
func (e *Engine) canReachOutcasts() bool {
	if !e.inv.Has(entities.ItemMoonPearl) {
		return false
	}
	return e.inv.CanLiftHeavyRocks() ||
		(e.inv.CanLiftRocks() && e.inv.Has(entities.ItemHammer)) ||
		(e.agahnimDefeated() && e.inv.Has(entities.ItemHookshot) &&
			(e.inv.Has(entities.ItemHammer) || e.inv.CanLiftRocks() || e.inv.Has(entities.ItemFlippers)))
}

func (e *Engine) canReachDarkWorldSouth() bool {
	if !e.inv.Has(entities.ItemMoonPearl) {
		return false
	}
	return e.inv.CanLiftHeavyRocks() ||
		(e.inv.CanLiftRocks() && e.inv.Has(entities.ItemHammer)) ||
		(e.agahnimDefeated() && (e.inv.Has(entities.ItemHammer) ||
			(e.inv.Has(entities.ItemHookshot) && (e.inv.Has(entities.ItemFlippers) || e.inv.CanLiftRocks()))))
}

// canReachPyramid covers the dark world east of the pyramid. Agahnim's
// portal drops the player there even as a bunny.
func (e *Engine) canReachPyramid() bool {
	if e.agahnimDefeated() {
		return true
	}
	return e.inv.Has(entities.ItemMoonPearl) &&
		((e.inv.Has(entities.ItemHammer) && e.inv.CanLiftRocks()) ||
			(e.inv.CanLiftHeavyRocks() && e.inv.Has(entities.ItemFlippers)))
}

// canOpenEntrance checks a medallion-locked entrance. certain is false while
// the lock is still unknown and any held medallion might be the right one.
func (e *Engine) canOpenEntrance(key entities.DungeonKey) (open, certain bool) {
	if !e.canUseMedallions() {
		return false, true
	}
	medallion, known := e.dungeons.Get(key).EntranceLock().Medallion()
	if !known {
		return e.inv.HasMedallion(), false
	}
	return e.inv.Has(medallion), true
}

func (e *Engine) defeatedWith(match func(entities.Reward) bool, needed int) bool {
	return e.dungeons.CountDefeated(match) >= needed || e.dungeons.AllRewardDungeonsDefeated()
}

func (e *Engine) hasAllPendants() bool {
	return e.defeatedWith(entities.Reward.IsPendant, 3)
}

func (e *Engine) hasGreenPendant() bool {
	return e.defeatedWith(func(r entities.Reward) bool { return r == entities.RewardGreenPendant }, 1)
}

func (e *Engine) hasFairyCrystals() bool {
	return e.defeatedWith(func(r entities.Reward) bool { return r == entities.RewardFairyCrystal }, 2)
}

func (e *Engine) needsBombs() entities.Availability {
	return entities.OnlyIf(e.inv.HasBombs(), entities.Available)
}
