// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/repositories/snapshots"
)

// SnapshotBuilder provides a fluent interface for building test snapshots.
// The tracker state is kept live so dungeon actions go through the real
// entity methods.
type SnapshotBuilder struct {
	id        string
	settings  entities.Settings
	inventory *entities.Inventory
	dungeons  *entities.Registry
	locations *entities.Locations
	opened    []entities.LocationKey
	createdAt time.Time
	expiresAt time.Time
}

// NewSnapshotBuilder creates a builder for a freshly reset tracker under
// the default settings
func NewSnapshotBuilder() *SnapshotBuilder {
	b := &SnapshotBuilder{
		id:        "snap-test-123",
		settings:  entities.DefaultSettings(),
		dungeons:  entities.NewRegistry(),
		createdAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	b.inventory = entities.NewInventory(&b.settings)
	b.locations = entities.NewLocations(&b.settings)
	return b
}

// WithID sets the snapshot ID
func (b *SnapshotBuilder) WithID(id string) *SnapshotBuilder {
	b.id = id
	return b
}

// WithSettings replaces the settings and resets the tracker under them
func (b *SnapshotBuilder) WithSettings(settings entities.Settings) *SnapshotBuilder {
	b.settings = settings
	b.inventory.Reset(&b.settings)
	b.locations.Reset(&b.settings)
	return b
}

// WithItem sets an item level. It panics on an out of range level.
func (b *SnapshotBuilder) WithItem(key entities.ItemKey, level int) *SnapshotBuilder {
	if err := b.inventory.SetLevel(key, level); err != nil {
		panic(err)
	}
	return b
}

// WithDefeated marks dungeon bosses defeated
func (b *SnapshotBuilder) WithDefeated(keys ...entities.DungeonKey) *SnapshotBuilder {
	for _, key := range keys {
		if d := b.dungeons.Get(key); !d.IsBossDefeated() {
			d.ToggleDefeat()
		}
	}
	return b
}

// WithDungeon applies fn to one dungeon
func (b *SnapshotBuilder) WithDungeon(key entities.DungeonKey, fn func(d *entities.Dungeon)) *SnapshotBuilder {
	fn(b.dungeons.Get(key))
	return b
}

// WithOpened marks locations opened. Keys are not checked, so a snapshot
// that fails to restore can be built.
func (b *SnapshotBuilder) WithOpened(keys ...entities.LocationKey) *SnapshotBuilder {
	b.opened = append(b.opened, keys...)
	return b
}

// WithCreatedAt sets the creation time
func (b *SnapshotBuilder) WithCreatedAt(t time.Time) *SnapshotBuilder {
	b.createdAt = t
	return b
}

// WithExpiresAt sets the expiry time
func (b *SnapshotBuilder) WithExpiresAt(t time.Time) *SnapshotBuilder {
	b.expiresAt = t
	return b
}

// Build returns the snapshot
func (b *SnapshotBuilder) Build() *snapshots.Snapshot {
	opened := append(b.locations.Opened(), b.opened...)
	return &snapshots.Snapshot{
		ID:        b.id,
		Settings:  b.settings,
		Items:     b.inventory.Levels(),
		Dungeons:  b.dungeons.States(),
		Opened:    opened,
		CreatedAt: b.createdAt,
		ExpiresAt: b.expiresAt,
	}
}
