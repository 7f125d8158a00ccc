// Package engine answers accessibility questions about one tracker state
package engine

import (
	"github.com/CWSpear/stumpy/internal/entities"
)

// Engine evaluates boss and location rules
type Engine interface {
	// CanDefeatBoss reports whether the boss native to the given dungeon
	// can be beaten with the current items
	CanDefeatBoss(boss entities.DungeonKey) bool

	// Availability returns the verdict for a single location
	Availability(key entities.LocationKey) entities.Availability
}
