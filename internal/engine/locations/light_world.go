package locations

import (
	"github.com/CWSpear/stumpy/internal/entities"
)

func (e *Engine) kingsTomb() entities.Availability {
	if !e.inv.Has(entities.ItemBoots) {
		return entities.Unavailable
	}
	if e.inv.CanLiftHeavyRocks() || (e.inv.Has(entities.ItemMirror) && e.canReachOutcasts()) {
		return entities.Available
	}
	return entities.Unavailable
}

func (e *Engine) spiralCave() entities.Availability {
	return e.deathMountainEast()
}

// mimicCave is reached through Turtle Rock, so it depends on that
// dungeon's entrance medallion
func (e *Engine) mimicCave() entities.Availability {
	if !(e.inv.Has(entities.ItemMoonPearl) &&
		e.inv.Has(entities.ItemHammer) &&
		e.inv.Has(entities.ItemSomaria) &&
		e.inv.Has(entities.ItemMirror) &&
		e.inv.CanLiftHeavyRocks()) {
		return entities.Unavailable
	}

	open, certain := e.canOpenEntrance(entities.TurtleRock)
	if !open {
		return entities.Unavailable
	}
	if !certain || !e.inv.Has(entities.ItemFireRod) {
		return entities.Possible
	}
	return e.deathMountainEast()
}

func (e *Engine) sahasrahlasHut() entities.Availability {
	return entities.OnlyIf(e.inv.HasBombs() || e.inv.Has(entities.ItemBoots), entities.Available)
}

func (e *Engine) kakarikoWell() entities.Availability {
	return entities.Either(e.inv.HasBombs(), entities.Possible)
}

func (e *Engine) paradoxCave() entities.Availability {
	switch e.deathMountainEast() {
	case entities.Available:
		return entities.Either(e.inv.HasBombs(), entities.Possible)
	case entities.Glitches:
		return entities.Glitches
	default:
		return entities.Unavailable
	}
}

func (e *Engine) sahasrahlasReward() entities.Availability {
	return entities.OnlyIf(e.hasGreenPendant(), entities.Available)
}

func (e *Engine) etherTablet() entities.Availability {
	if !e.inv.Has(entities.ItemBook) {
		return entities.Unavailable
	}
	ledge := e.inv.Has(entities.ItemMirror) ||
		(e.inv.Has(entities.ItemHookshot) && e.inv.Has(entities.ItemHammer))
	if !ledge {
		return entities.Unavailable
	}

	switch e.deathMountainWest() {
	case entities.Available:
		return entities.Either(e.canReadTablet(), entities.Visible)
	case entities.Glitches:
		if e.canReadTablet() {
			return entities.Glitches
		}
		return entities.GlitchesVisible
	default:
		return entities.Unavailable
	}
}

func (e *Engine) bombosTablet() entities.Availability {
	if !(e.inv.Has(entities.ItemBook) && e.inv.Has(entities.ItemMirror) && e.canReachDarkWorldSouth()) {
		return entities.Unavailable
	}
	return entities.Either(e.canReadTablet(), entities.Visible)
}

func (e *Engine) kingZora() entities.Availability {
	return entities.Either(e.inv.CanLiftRocks() || e.inv.Has(entities.ItemFlippers), entities.Glitches)
}

// lostOldMan needs the lantern for the cave even when the flute skips it
// on the way up
func (e *Engine) lostOldMan() entities.Availability {
	mountain := e.deathMountainWest()
	if mountain == entities.Unavailable {
		return entities.Unavailable
	}
	if mountain == entities.Available && e.inv.HasLightSource() {
		return entities.Available
	}
	return entities.Glitches
}

func (e *Engine) lumberjackTree() entities.Availability {
	return entities.Either(e.agahnimDefeated() && e.inv.Has(entities.ItemBoots), entities.Visible)
}

func (e *Engine) southOfGrove() entities.Availability {
	return entities.OnlyIf(e.inv.Has(entities.ItemMirror) && e.canReachDarkWorldSouth(), entities.Available)
}

func (e *Engine) graveyardCliffCave() entities.Availability {
	return entities.OnlyIf(e.inv.Has(entities.ItemMirror) && e.canReachOutcasts(), entities.Available)
}

func (e *Engine) checkerboardCave() entities.Availability {
	return entities.OnlyIf(
		e.inv.Has(entities.ItemFlute) && e.inv.CanLiftHeavyRocks() && e.inv.Has(entities.ItemMirror),
		entities.Available,
	)
}

func (e *Engine) spectacleRock() entities.Availability {
	mountain := e.deathMountainWest()
	if mountain == entities.Unavailable {
		return entities.Unavailable
	}
	if e.inv.Has(entities.ItemMirror) {
		return mountain
	}
	if mountain == entities.Available {
		return entities.Visible
	}
	return entities.GlitchesVisible
}

// floatingIsland is seen from east death mountain and reached by mirroring
// back from the dark world side
func (e *Engine) floatingIsland() entities.Availability {
	mountain := e.deathMountainEast()
	if mountain == entities.Unavailable {
		return entities.Unavailable
	}
	if e.inv.Has(entities.ItemMirror) && e.inv.Has(entities.ItemMoonPearl) && e.inv.CanLiftHeavyRocks() {
		return mountain
	}
	if mountain == entities.Available {
		return entities.Visible
	}
	return entities.GlitchesVisible
}

func (e *Engine) desertWestLedge() entities.Availability {
	viaMire := e.inv.Has(entities.ItemFlute) && e.inv.CanLiftHeavyRocks() && e.inv.Has(entities.ItemMirror)
	return entities.Either(e.inv.Has(entities.ItemBook) || viaMire, entities.Visible)
}

func (e *Engine) lakeHyliaIsland() entities.Availability {
	if e.inv.Has(entities.ItemMoonPearl) && e.inv.Has(entities.ItemMirror) && e.canReachDarkWorldSouth() {
		if e.inv.Has(entities.ItemFlippers) {
			return entities.Available
		}
		if e.inv.Has(entities.ItemBoots) {
			return entities.Glitches
		}
	}
	return entities.Visible
}

func (e *Engine) zoraLedge() entities.Availability {
	switch {
	case e.inv.Has(entities.ItemFlippers):
		return entities.Available
	case e.inv.Has(entities.ItemBoots):
		return entities.Glitches
	case e.inv.CanLiftRocks():
		return entities.Visible
	default:
		return entities.GlitchesVisible
	}
}

// sewerEscapeSideRoom sits behind a cracked wall. The glove opens the drop
// by the sanctuary, otherwise the dark sewers need a lantern and a key.
func (e *Engine) sewerEscapeSideRoom() entities.Availability {
	if !(e.inv.HasBombs() || e.inv.Has(entities.ItemBoots)) {
		return entities.Unavailable
	}
	if e.settings.StartState() == entities.StartStateStandard || e.inv.CanLiftRocks() {
		return entities.Available
	}
	return entities.OnlyIf(e.inv.HasLightSource(), entities.Possible)
}

func (e *Engine) sewerEscapeDarkRoom() entities.Availability {
	if e.settings.StartState() == entities.StartStateStandard {
		return entities.Available
	}
	return entities.Either(e.inv.HasLightSource(), entities.Glitches)
}

func (e *Engine) madBatter() entities.Availability {
	if !(e.inv.Has(entities.ItemHammer) || (e.inv.Has(entities.ItemMirror) && e.canReachOutcasts())) {
		return entities.Unavailable
	}
	if e.inv.Has(entities.ItemPowder) {
		return entities.Available
	}
	return entities.OnlyIf(e.inv.Has(entities.ItemMushroom), entities.Glitches)
}

func (e *Engine) dwarfEscort() entities.Availability {
	return entities.OnlyIf(e.inv.Has(entities.ItemMoonPearl) && e.inv.CanLiftHeavyRocks(), entities.Available)
}

func (e *Engine) masterSwordPedestal() entities.Availability {
	if e.hasAllPendants() {
		return entities.Available
	}
	return entities.OnlyIf(e.inv.Has(entities.ItemBook), entities.Visible)
}

func (e *Engine) waterfallOfWishing() entities.Availability {
	if e.inv.Has(entities.ItemFlippers) {
		return entities.Available
	}
	return entities.OnlyIf(e.inv.Has(entities.ItemMoonPearl), entities.Glitches)
}
