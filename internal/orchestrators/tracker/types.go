package tracker

import (
	"time"

	"github.com/CWSpear/stumpy/internal/entities"
)

// DungeonAction names one mutation of a dungeon's progress state
type DungeonAction string

// Dungeon actions
const (
	ActionToggleDefeat         DungeonAction = "toggle-defeat"
	ActionToggleBigKey         DungeonAction = "toggle-big-key"
	ActionCycleReward          DungeonAction = "cycle-reward"
	ActionCycleEntranceLock    DungeonAction = "cycle-entrance-lock"
	ActionCycleBossForward     DungeonAction = "cycle-boss-forward"
	ActionCycleBossBackward    DungeonAction = "cycle-boss-backward"
	ActionDecrementItemChests  DungeonAction = "decrement-item-chests"
	ActionDecrementTotalChests DungeonAction = "decrement-total-chests"
	ActionDecrementRetroChests DungeonAction = "decrement-retro-chests"
	ActionIncrementSmallKeys   DungeonAction = "increment-small-keys"
	ActionResetDungeon         DungeonAction = "reset"
)

// AllDungeonActions lists every action UpdateDungeon accepts
func AllDungeonActions() []DungeonAction {
	return []DungeonAction{
		ActionToggleDefeat,
		ActionToggleBigKey,
		ActionCycleReward,
		ActionCycleEntranceLock,
		ActionCycleBossForward,
		ActionCycleBossBackward,
		ActionDecrementItemChests,
		ActionDecrementTotalChests,
		ActionDecrementRetroChests,
		ActionIncrementSmallKeys,
		ActionResetDungeon,
	}
}

// ItemView is an item with its current level
type ItemView struct {
	Key      entities.ItemKey `json:"key"`
	Name     string           `json:"name"`
	Level    int              `json:"level"`
	MaxLevel int              `json:"max_level"`
}

// DungeonView is a dungeon's catalog data, progress and boss verdict
type DungeonView struct {
	Key            entities.DungeonKey   `json:"key"`
	Name           string                `json:"name"`
	Boss           string                `json:"boss"`
	World          entities.World        `json:"world"`
	Requirement    string                `json:"requirement,omitempty"`
	MaxItemChests  int                   `json:"max_item_chests"`
	MaxTotalChests int                   `json:"max_total_chests"`
	MaxSmallKeys   int                   `json:"max_small_keys"`
	State          entities.DungeonState `json:"state"`
	CanDefeatBoss  bool                  `json:"can_defeat_boss"`
}

// LocationView is an item location with its verdict
type LocationView struct {
	Key          entities.LocationKey  `json:"key"`
	Name         string                `json:"name"`
	World        entities.World        `json:"world"`
	Availability entities.Availability `json:"availability"`
	Opened       bool                  `json:"opened"`
}

// SetItemLevelInput defines the request for setting an item level
type SetItemLevelInput struct {
	Item  entities.ItemKey
	Level int
}

// SetItemLevelOutput defines the response for setting an item level
type SetItemLevelOutput struct {
	Item ItemView
}

// IncrementItemInput defines the request for stepping an item up, wrapping
// to zero past its maximum
type IncrementItemInput struct {
	Item entities.ItemKey
}

// IncrementItemOutput defines the response for stepping an item up
type IncrementItemOutput struct {
	Item ItemView
}

// GetItemLevelInput defines the request for reading an item level
type GetItemLevelInput struct {
	Item entities.ItemKey
}

// GetItemLevelOutput defines the response for reading an item level
type GetItemLevelOutput struct {
	Item ItemView
}

// ListItemsInput defines the request for listing the inventory
type ListItemsInput struct{}

// ListItemsOutput defines the response for listing the inventory
type ListItemsOutput struct {
	Items []ItemView
}

// ResetItemsInput defines the request for resetting the inventory
type ResetItemsInput struct{}

// ResetItemsOutput defines the response for resetting the inventory
type ResetItemsOutput struct{}

// GetDungeonInput defines the request for reading a dungeon
type GetDungeonInput struct {
	Dungeon entities.DungeonKey
}

// GetDungeonOutput defines the response for reading a dungeon
type GetDungeonOutput struct {
	Dungeon DungeonView
}

// ListDungeonsInput defines the request for listing dungeons. An empty
// World lists both.
type ListDungeonsInput struct {
	World entities.World
}

// ListDungeonsOutput defines the response for listing dungeons
type ListDungeonsOutput struct {
	Dungeons []DungeonView
}

// UpdateDungeonInput defines the request for mutating a dungeon
type UpdateDungeonInput struct {
	Dungeon entities.DungeonKey
	Action  DungeonAction
}

// UpdateDungeonOutput defines the response for mutating a dungeon
type UpdateDungeonOutput struct {
	Dungeon DungeonView
}

// CanDefeatBossInput defines the request for a boss verdict
type CanDefeatBossInput struct {
	Dungeon entities.DungeonKey
}

// CanDefeatBossOutput defines the response for a boss verdict. Boss is the
// predicate that was evaluated, which differs from Dungeon after a shuffle.
type CanDefeatBossOutput struct {
	Dungeon    entities.DungeonKey
	Boss       entities.DungeonKey
	Defeatable bool
}

// GetAvailabilityInput defines the request for a location verdict
type GetAvailabilityInput struct {
	Location entities.LocationKey
}

// GetAvailabilityOutput defines the response for a location verdict
type GetAvailabilityOutput struct {
	Location     entities.LocationKey
	Availability entities.Availability
}

// ListAvailabilityInput defines the request for every location verdict. An
// empty World lists both.
type ListAvailabilityInput struct {
	World entities.World
}

// ListAvailabilityOutput defines the response for every location verdict
type ListAvailabilityOutput struct {
	Locations []LocationView
}

// GetItemLocationInput defines the request for reading a location
type GetItemLocationInput struct {
	Location entities.LocationKey
}

// GetItemLocationOutput defines the response for reading a location
type GetItemLocationOutput struct {
	Location LocationView
}

// ToggleLocationOpenedInput defines the request for flipping a location's
// opened flag
type ToggleLocationOpenedInput struct {
	Location entities.LocationKey
}

// ToggleLocationOpenedOutput defines the response for flipping a location's
// opened flag
type ToggleLocationOpenedOutput struct {
	Location LocationView
}

// ResetAllInput defines the request for resetting the whole tracker
type ResetAllInput struct{}

// ResetAllOutput defines the response for resetting the whole tracker
type ResetAllOutput struct{}

// GetSettingsInput defines the request for reading settings
type GetSettingsInput struct{}

// GetSettingsOutput defines the response for reading settings
type GetSettingsOutput struct {
	Settings entities.Settings
}

// UpdateSettingsInput defines the request for changing settings. The
// inventory keeps its levels until the next reset.
type UpdateSettingsInput struct {
	Settings entities.Settings
}

// UpdateSettingsOutput defines the response for changing settings
type UpdateSettingsOutput struct {
	Settings entities.Settings
}

// SaveSnapshotInput defines the request for saving the tracker state. A
// zero TTL falls back to the configured default.
type SaveSnapshotInput struct {
	TTL time.Duration
}

// SaveSnapshotOutput defines the response for saving the tracker state
type SaveSnapshotOutput struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// LoadSnapshotInput defines the request for restoring a saved state
type LoadSnapshotInput struct {
	ID string
}

// LoadSnapshotOutput defines the response for restoring a saved state
type LoadSnapshotOutput struct {
	Settings entities.Settings
}
