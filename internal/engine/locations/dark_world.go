package locations

import (
	"github.com/CWSpear/stumpy/internal/entities"
)

func (e *Engine) superBunnyCave() entities.Availability {
	mountain := e.deathMountainEast()
	if mountain == entities.Unavailable || !e.inv.CanLiftHeavyRocks() {
		return entities.Unavailable
	}
	if e.inv.Has(entities.ItemMoonPearl) {
		return mountain
	}
	return entities.Glitches
}

func (e *Engine) hookshotCaveTop() entities.Availability {
	mountain, ok := e.darkDeathMountain()
	if !ok {
		return entities.Unavailable
	}
	return entities.Max(
		entities.OnlyIf(e.inv.Has(entities.ItemHookshot), mountain),
		entities.OnlyIf(e.inv.Has(entities.ItemBoots), entities.Glitches),
	)
}

func (e *Engine) hookshotCaveBottom() entities.Availability {
	mountain, ok := e.darkDeathMountain()
	if !ok {
		return entities.Unavailable
	}
	return entities.OnlyIf(e.inv.Has(entities.ItemHookshot) || e.inv.Has(entities.ItemBoots), mountain)
}

// darkDeathMountain is east death mountain on the dark world side
func (e *Engine) darkDeathMountain() (entities.Availability, bool) {
	mountain := e.deathMountainEast()
	ok := mountain != entities.Unavailable &&
		e.inv.Has(entities.ItemMoonPearl) &&
		e.inv.CanLiftHeavyRocks()
	return mountain, ok
}

// spikeCave drains health on the way through, so without cape or byrna it
// comes down to how many bottles are filled
func (e *Engine) spikeCave() entities.Availability {
	mountain := e.deathMountainWest()
	if mountain == entities.Unavailable {
		return entities.Unavailable
	}
	if !(e.inv.Has(entities.ItemMoonPearl) && e.inv.Has(entities.ItemHammer) && e.inv.CanLiftRocks()) {
		return entities.Unavailable
	}
	if e.inv.Has(entities.ItemCape) || e.inv.Has(entities.ItemByrna) {
		return mountain
	}
	return entities.OnlyIf(e.inv.HasBottle(), entities.Possible)
}

func (e *Engine) purpleChest() entities.Availability {
	return entities.OnlyIf(e.locations.Get(entities.DwarfEscort).IsOpened(), entities.Available)
}

func (e *Engine) hammerPegCave() entities.Availability {
	return entities.OnlyIf(
		e.inv.Has(entities.ItemMoonPearl) && e.inv.CanLiftHeavyRocks() && e.inv.Has(entities.ItemHammer),
		entities.Available,
	)
}

func (e *Engine) bumperCave() entities.Availability {
	if !e.canReachOutcasts() {
		return entities.Unavailable
	}
	return entities.Either(e.inv.CanLiftRocks() && e.inv.Has(entities.ItemCape), entities.Visible)
}

func (e *Engine) pyramid() entities.Availability {
	if e.canReachPyramid() {
		return entities.Available
	}
	return entities.OnlyIf(
		e.inv.Has(entities.ItemMoonPearl) && e.inv.CanLiftHeavyRocks() && e.inv.Has(entities.ItemBoots),
		entities.Glitches,
	)
}

func (e *Engine) pyramidFairy() entities.Availability {
	if !e.hasFairyCrystals() || !e.inv.Has(entities.ItemMoonPearl) {
		return entities.Unavailable
	}
	hammer := e.inv.Has(entities.ItemHammer) && (e.agahnimDefeated() || e.inv.CanLiftRocks())
	mirror := e.inv.Has(entities.ItemMirror) && e.agahnimDefeated() && e.canReachDarkWorldSouth()
	return entities.OnlyIf(hammer || mirror, entities.Available)
}

func (e *Engine) catfish() entities.Availability {
	if !(e.inv.Has(entities.ItemMoonPearl) && e.inv.CanLiftRocks()) {
		return entities.Unavailable
	}
	if e.agahnimDefeated() || e.inv.Has(entities.ItemHammer) ||
		(e.inv.CanLiftHeavyRocks() && e.inv.Has(entities.ItemFlippers)) {
		return entities.Available
	}
	return entities.OnlyIf(e.inv.CanLiftHeavyRocks() && e.inv.Has(entities.ItemBoots), entities.Glitches)
}

func (e *Engine) mireHut() entities.Availability {
	if !(e.inv.Has(entities.ItemFlute) && e.inv.CanLiftHeavyRocks()) {
		return entities.Unavailable
	}
	// bunny mirror clip when the pearl is missing
	return entities.Max(
		entities.OnlyIf(e.inv.Has(entities.ItemMoonPearl), entities.Available),
		entities.OnlyIf(e.inv.Has(entities.ItemMirror), entities.Glitches),
	)
}
