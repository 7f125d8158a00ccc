package entities

import (
	"github.com/CWSpear/stumpy/internal/errors"
)

// SwordLogic selects how swords are distributed
type SwordLogic string

// Sword logic modes
const (
	SwordLogicNormal     SwordLogic = "normal"
	SwordLogicRandomized SwordLogic = "randomized"
	SwordLogicSwordless  SwordLogic = "swordless"
)

// StartState selects the world state at the start of a seed
type StartState string

// Start states
const (
	StartStateOpen     StartState = "open"
	StartStateStandard StartState = "standard"
)

// SettingsProvider is the read-only view of game-mode options the rule
// engines branch on
type SettingsProvider interface {
	SwordLogic() SwordLogic
	StartState() StartState
}

// Settings holds the chosen game-mode options
type Settings struct {
	Sword SwordLogic `json:"sword_logic"`
	Start StartState `json:"start_state"`
}

// DefaultSettings is an open start with randomized swords
func DefaultSettings() Settings {
	return Settings{
		Sword: SwordLogicRandomized,
		Start: StartStateOpen,
	}
}

// SwordLogic implements SettingsProvider
func (s *Settings) SwordLogic() SwordLogic {
	return s.Sword
}

// StartState implements SettingsProvider
func (s *Settings) StartState() StartState {
	return s.Start
}

// IsSwordless reports whether l keeps every sword out of the seed
func (l SwordLogic) IsSwordless() bool {
	return l == SwordLogicSwordless
}

// Validate checks both options are known values
func (s *Settings) Validate() error {
	switch s.Sword {
	case SwordLogicNormal, SwordLogicRandomized, SwordLogicSwordless:
	default:
		return errors.InvalidArgumentf("unknown sword logic %q", s.Sword)
	}
	switch s.Start {
	case StartStateOpen, StartStateStandard:
	default:
		return errors.InvalidArgumentf("unknown start state %q", s.Start)
	}
	return nil
}
