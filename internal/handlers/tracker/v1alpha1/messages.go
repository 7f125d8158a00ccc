package v1alpha1

// Item is an item with its current level
type Item struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Level    int32  `json:"level"`
	MaxLevel int32  `json:"max_level"`
}

// Dungeon is a dungeon's catalog data, progress and boss verdict
type Dungeon struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Boss           string `json:"boss"`
	World          string `json:"world"`
	Requirement    string `json:"requirement,omitempty"`
	MaxItemChests  int32  `json:"max_item_chests"`
	MaxTotalChests int32  `json:"max_total_chests"`
	MaxSmallKeys   int32  `json:"max_small_keys"`

	ItemChests   int32  `json:"item_chests"`
	TotalChests  int32  `json:"total_chests"`
	RetroChests  int32  `json:"retro_chests"`
	SmallKeys    int32  `json:"small_keys"`
	BossDefeated bool   `json:"boss_defeated"`
	BigKey       bool   `json:"big_key"`
	Reward       string `json:"reward"`
	EntranceLock string `json:"entrance_lock"`
	BossID       string `json:"boss_id"`

	CanDefeatBoss bool `json:"can_defeat_boss"`
}

// Location is an item location with its availability verdict
type Location struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	World        string `json:"world"`
	Availability string `json:"availability"`
	Opened       bool   `json:"opened"`
}

// Settings are the game-mode options
type Settings struct {
	SwordLogic string `json:"sword_logic" validate:"required,oneof=normal randomized swordless"`
	StartState string `json:"start_state" validate:"required,oneof=open standard"`
}

// SetItemLevelRequest sets an item to an explicit level
type SetItemLevelRequest struct {
	Item  string `json:"item" validate:"required"`
	Level int32  `json:"level" validate:"min=0"`
}

// SetItemLevelResponse carries the updated item
type SetItemLevelResponse struct {
	Item *Item `json:"item"`
}

// IncrementItemRequest steps an item up, wrapping past its maximum
type IncrementItemRequest struct {
	Item string `json:"item" validate:"required"`
}

// IncrementItemResponse carries the updated item
type IncrementItemResponse struct {
	Item *Item `json:"item"`
}

// GetItemLevelRequest reads one item
type GetItemLevelRequest struct {
	Item string `json:"item" validate:"required"`
}

// GetItemLevelResponse carries the item
type GetItemLevelResponse struct {
	Item *Item `json:"item"`
}

// ListItemsRequest reads the inventory
type ListItemsRequest struct{}

// ListItemsResponse carries every item in catalog order
type ListItemsResponse struct {
	Items []*Item `json:"items"`
}

// ResetItemsRequest restores the starting inventory
type ResetItemsRequest struct{}

// ResetItemsResponse is empty
type ResetItemsResponse struct{}

// GetDungeonRequest reads one dungeon
type GetDungeonRequest struct {
	Dungeon string `json:"dungeon" validate:"required"`
}

// GetDungeonResponse carries the dungeon
type GetDungeonResponse struct {
	Dungeon *Dungeon `json:"dungeon"`
}

// ListDungeonsRequest reads every dungeon, optionally of one world
type ListDungeonsRequest struct {
	World string `json:"world,omitempty" validate:"omitempty,oneof=light dark"`
}

// ListDungeonsResponse carries dungeons in progression order
type ListDungeonsResponse struct {
	Dungeons []*Dungeon `json:"dungeons"`
}

// UpdateDungeonRequest applies one action to a dungeon
type UpdateDungeonRequest struct {
	Dungeon string `json:"dungeon" validate:"required"`
	Action  string `json:"action" validate:"required"`
}

// UpdateDungeonResponse carries the updated dungeon
type UpdateDungeonResponse struct {
	Dungeon *Dungeon `json:"dungeon"`
}

// CanDefeatBossRequest asks for the boss verdict of a dungeon
type CanDefeatBossRequest struct {
	Dungeon string `json:"dungeon" validate:"required"`
}

// CanDefeatBossResponse carries the verdict and the boss it was taken for
type CanDefeatBossResponse struct {
	Dungeon    string `json:"dungeon"`
	Boss       string `json:"boss"`
	Defeatable bool   `json:"defeatable"`
}

// GetAvailabilityRequest asks for one location verdict
type GetAvailabilityRequest struct {
	Location string `json:"location" validate:"required"`
}

// GetAvailabilityResponse carries the verdict
type GetAvailabilityResponse struct {
	Location     string `json:"location"`
	Availability string `json:"availability"`
}

// ListAvailabilityRequest asks for every location verdict, optionally of
// one world
type ListAvailabilityRequest struct {
	World string `json:"world,omitempty" validate:"omitempty,oneof=light dark"`
}

// ListAvailabilityResponse carries locations in catalog order
type ListAvailabilityResponse struct {
	Locations []*Location `json:"locations"`
}

// GetItemLocationRequest reads one location
type GetItemLocationRequest struct {
	Location string `json:"location" validate:"required"`
}

// GetItemLocationResponse carries the location
type GetItemLocationResponse struct {
	Location *Location `json:"location"`
}

// ToggleLocationOpenedRequest flips a location's opened flag
type ToggleLocationOpenedRequest struct {
	Location string `json:"location" validate:"required"`
}

// ToggleLocationOpenedResponse carries the updated location
type ToggleLocationOpenedResponse struct {
	Location *Location `json:"location"`
}

// ResetAllRequest resets items, dungeons and locations
type ResetAllRequest struct{}

// ResetAllResponse is empty
type ResetAllResponse struct{}

// GetSettingsRequest reads the settings
type GetSettingsRequest struct{}

// GetSettingsResponse carries the settings
type GetSettingsResponse struct {
	Settings *Settings `json:"settings"`
}

// UpdateSettingsRequest replaces the settings
type UpdateSettingsRequest struct {
	Settings *Settings `json:"settings" validate:"required"`
}

// UpdateSettingsResponse carries the stored settings
type UpdateSettingsResponse struct {
	Settings *Settings `json:"settings"`
}

// SaveSnapshotRequest stores the tracker state. Zero TTL uses the server
// default.
type SaveSnapshotRequest struct {
	TTLSeconds int64 `json:"ttl_seconds,omitempty" validate:"min=0"`
}

// SaveSnapshotResponse identifies the stored snapshot. Times are unix
// seconds; ExpiresAt is zero when the snapshot never expires.
type SaveSnapshotResponse struct {
	SnapshotID string `json:"snapshot_id"`
	CreatedAt  int64  `json:"created_at"`
	ExpiresAt  int64  `json:"expires_at,omitempty"`
}

// LoadSnapshotRequest restores a stored snapshot
type LoadSnapshotRequest struct {
	SnapshotID string `json:"snapshot_id" validate:"required"`
}

// LoadSnapshotResponse carries the settings the snapshot was taken under
type LoadSnapshotResponse struct {
	Settings *Settings `json:"settings"`
}
