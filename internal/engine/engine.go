package engine

import (
	"github.com/CWSpear/stumpy/internal/engine/bosses"
	"github.com/CWSpear/stumpy/internal/engine/locations"
	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
)

type engine struct {
	bosses    *bosses.Engine
	locations *locations.Engine
}

// Config holds the shared tracker state both rule sets read
type Config struct {
	Inventory *entities.Inventory
	Dungeons  *entities.Registry
	Locations *entities.Locations
	Settings  entities.SettingsProvider
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if cfg.Dungeons == nil {
		vb.RequiredField("Dungeons")
	}
	if cfg.Locations == nil {
		vb.RequiredField("Locations")
	}
	if cfg.Settings == nil {
		vb.RequiredField("Settings")
	}
	return vb.Build()
}

// New wires the boss and location rules to the same state
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bossRules, err := bosses.New(&bosses.Config{
		Inventory: cfg.Inventory,
		Settings:  cfg.Settings,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create boss rules")
	}

	locationRules, err := locations.New(&locations.Config{
		Inventory: cfg.Inventory,
		Dungeons:  cfg.Dungeons,
		Locations: cfg.Locations,
		Settings:  cfg.Settings,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create location rules")
	}

	return &engine{bosses: bossRules, locations: locationRules}, nil
}

func (e *engine) CanDefeatBoss(boss entities.DungeonKey) bool {
	return e.bosses.CanDefeat(boss)
}

func (e *engine) Availability(key entities.LocationKey) entities.Availability {
	return e.locations.Availability(key)
}
