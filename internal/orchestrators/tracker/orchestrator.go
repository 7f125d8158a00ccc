// Package tracker implements the tracker orchestrator. It owns one tracker
// state and serializes every operation on it.
package tracker

//go:generate mockgen -destination=mock/mock_service.go -package=trackermock github.com/CWSpear/stumpy/internal/orchestrators/tracker Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/CWSpear/stumpy/internal/engine"
	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
	"github.com/CWSpear/stumpy/internal/metrics"
	"github.com/CWSpear/stumpy/internal/pkg/clock"
	"github.com/CWSpear/stumpy/internal/pkg/idgen"
	"github.com/CWSpear/stumpy/internal/repositories/settings"
	"github.com/CWSpear/stumpy/internal/repositories/snapshots"
)

// Service defines the tracker operations
type Service interface {
	// Items
	SetItemLevel(ctx context.Context, input *SetItemLevelInput) (*SetItemLevelOutput, error)
	IncrementItem(ctx context.Context, input *IncrementItemInput) (*IncrementItemOutput, error)
	GetItemLevel(ctx context.Context, input *GetItemLevelInput) (*GetItemLevelOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
	ResetItems(ctx context.Context, input *ResetItemsInput) (*ResetItemsOutput, error)

	// Dungeons and bosses
	GetDungeon(ctx context.Context, input *GetDungeonInput) (*GetDungeonOutput, error)
	ListDungeons(ctx context.Context, input *ListDungeonsInput) (*ListDungeonsOutput, error)
	UpdateDungeon(ctx context.Context, input *UpdateDungeonInput) (*UpdateDungeonOutput, error)
	CanDefeatBoss(ctx context.Context, input *CanDefeatBossInput) (*CanDefeatBossOutput, error)

	// Locations
	GetAvailability(ctx context.Context, input *GetAvailabilityInput) (*GetAvailabilityOutput, error)
	ListAvailability(ctx context.Context, input *ListAvailabilityInput) (*ListAvailabilityOutput, error)
	GetItemLocation(ctx context.Context, input *GetItemLocationInput) (*GetItemLocationOutput, error)
	ToggleLocationOpened(
		ctx context.Context,
		input *ToggleLocationOpenedInput,
	) (*ToggleLocationOpenedOutput, error)

	ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error)

	// Settings
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)

	// Snapshots
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error)
	LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error)
}

// Config holds the dependencies for the tracker orchestrator
type Config struct {
	SettingsRepo settings.Repository
	SnapshotRepo snapshots.Repository
	IDGenerator  idgen.Generator
	Clock        clock.Clock

	// Profile names the settings record this tracker reads and writes
	Profile string
	// Settings are the options the tracker starts with
	Settings entities.Settings
	// SnapshotTTL applies when SaveSnapshot is called without one
	SnapshotTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SettingsRepo == nil {
		vb.RequiredField("SettingsRepo")
	}
	if c.SnapshotRepo == nil {
		vb.RequiredField("SnapshotRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Profile == "" {
		vb.RequiredField("Profile")
	}
	if err := c.Settings.Validate(); err != nil {
		vb.InvalidField("Settings", err.Error())
	}
	if c.SnapshotTTL < 0 {
		vb.InvalidField("SnapshotTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	settingsRepo settings.Repository
	snapshotRepo snapshots.Repository
	idGen        idgen.Generator
	clock        clock.Clock
	profile      string
	snapshotTTL  time.Duration

	// mu guards everything below. The rule engines hold pointers into this
	// state, so it is mutated in place and never replaced.
	mu        sync.Mutex
	settings  *entities.Settings
	inventory *entities.Inventory
	dungeons  *entities.Registry
	locations *entities.Locations
	rules     engine.Engine
}

// NewOrchestrator creates a tracker in its reset state
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	current := cfg.Settings
	o := &orchestrator{
		settingsRepo: cfg.SettingsRepo,
		snapshotRepo: cfg.SnapshotRepo,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		profile:      cfg.Profile,
		snapshotTTL:  cfg.SnapshotTTL,
		settings:     &current,
		dungeons:     entities.NewRegistry(),
	}
	o.inventory = entities.NewInventory(o.settings)
	o.locations = entities.NewLocations(o.settings)

	rules, err := engine.New(&engine.Config{
		Inventory: o.inventory,
		Dungeons:  o.dungeons,
		Locations: o.locations,
		Settings:  o.settings,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rule engine")
	}
	o.rules = rules

	return o, nil
}

// Items

func (o *orchestrator) SetItemLevel(_ context.Context, input *SetItemLevelInput) (*SetItemLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkItem(input.Item); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.inventory.SetLevel(input.Item, input.Level); err != nil {
		return nil, err
	}
	metrics.RecordMutation("set_item")

	slog.Info("Item level set", "item", input.Item, "level", input.Level)

	return &SetItemLevelOutput{Item: o.itemView(input.Item)}, nil
}

func (o *orchestrator) IncrementItem(_ context.Context, input *IncrementItemInput) (*IncrementItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkItem(input.Item); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	level := o.inventory.Increment(input.Item)
	metrics.RecordMutation("increment_item")

	slog.Info("Item incremented", "item", input.Item, "level", level)

	return &IncrementItemOutput{Item: o.itemView(input.Item)}, nil
}

func (o *orchestrator) GetItemLevel(_ context.Context, input *GetItemLevelInput) (*GetItemLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkItem(input.Item); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetItemLevelOutput{Item: o.itemView(input.Item)}, nil
}

func (o *orchestrator) ListItems(_ context.Context, _ *ListItemsInput) (*ListItemsOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	catalog := entities.AllItems()
	items := make([]ItemView, 0, len(catalog))
	for _, info := range catalog {
		items = append(items, o.itemView(info.Key))
	}
	return &ListItemsOutput{Items: items}, nil
}

func (o *orchestrator) ResetItems(_ context.Context, _ *ResetItemsInput) (*ResetItemsOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.inventory.Reset(o.settings)
	metrics.RecordMutation("reset_items")

	slog.Info("Inventory reset", "start_state", o.settings.Start, "sword_logic", o.settings.Sword)

	return &ResetItemsOutput{}, nil
}

// Dungeons and bosses

func (o *orchestrator) GetDungeon(_ context.Context, input *GetDungeonInput) (*GetDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	d, err := o.dungeon(input.Dungeon)
	if err != nil {
		return nil, err
	}
	return &GetDungeonOutput{Dungeon: o.dungeonView(d)}, nil
}

func (o *orchestrator) ListDungeons(_ context.Context, input *ListDungeonsInput) (*ListDungeonsOutput, error) {
	var world entities.World
	if input != nil {
		world = input.World
	}
	if err := checkWorld(world); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	all := o.dungeons.All()
	if world != "" {
		all = o.dungeons.InWorld(world)
	}

	views := make([]DungeonView, 0, len(all))
	for _, d := range all {
		views = append(views, o.dungeonView(d))
	}
	return &ListDungeonsOutput{Dungeons: views}, nil
}

func (o *orchestrator) UpdateDungeon(_ context.Context, input *UpdateDungeonInput) (*UpdateDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	d, err := o.dungeon(input.Dungeon)
	if err != nil {
		return nil, err
	}
	switch input.Action {
	case ActionToggleDefeat:
		d.ToggleDefeat()
	case ActionToggleBigKey:
		d.ToggleBigKey()
	case ActionCycleReward:
		d.CycleReward()
	case ActionCycleEntranceLock:
		d.CycleEntranceLock()
	case ActionCycleBossForward:
		d.CycleBossForward()
	case ActionCycleBossBackward:
		d.CycleBossBackward()
	case ActionDecrementItemChests:
		d.DecrementItemChests()
	case ActionDecrementTotalChests:
		d.DecrementTotalChests()
	case ActionDecrementRetroChests:
		d.DecrementRetroChests()
	case ActionIncrementSmallKeys:
		d.IncrementSmallKeys()
	case ActionResetDungeon:
		d.Reset()
	default:
		return nil, errors.InvalidArgumentf("unknown dungeon action %q", input.Action).
			WithMeta("dungeon", string(input.Dungeon))
	}
	metrics.RecordMutation(string(input.Action))

	slog.Info("Dungeon updated",
		"dungeon", input.Dungeon,
		"action", input.Action,
		"boss_defeated", d.IsBossDefeated(),
		"reward", d.Reward(),
		"lock", d.EntranceLock(),
		"boss_id", d.BossID(),
	)

	return &UpdateDungeonOutput{Dungeon: o.dungeonView(d)}, nil
}

func (o *orchestrator) CanDefeatBoss(_ context.Context, input *CanDefeatBossInput) (*CanDefeatBossOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	d, err := o.dungeon(input.Dungeon)
	if err != nil {
		return nil, err
	}
	boss := d.BossID()
	ok := o.rules.CanDefeatBoss(boss)
	metrics.RecordBoss(ok)

	return &CanDefeatBossOutput{Dungeon: input.Dungeon, Boss: boss, Defeatable: ok}, nil
}

// Locations

func (o *orchestrator) GetAvailability(
	_ context.Context,
	input *GetAvailabilityInput,
) (*GetAvailabilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkLocation(input.Location); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	verdict := o.availability(input.Location)
	return &GetAvailabilityOutput{Location: input.Location, Availability: verdict}, nil
}

func (o *orchestrator) ListAvailability(
	_ context.Context,
	input *ListAvailabilityInput,
) (*ListAvailabilityOutput, error) {
	var world entities.World
	if input != nil {
		world = input.World
	}
	if err := checkWorld(world); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	views := make([]LocationView, 0, len(entities.AllLocationKeys()))
	available := 0
	for _, loc := range o.locations.All() {
		if world != "" && loc.World != world {
			continue
		}
		view := o.locationView(loc)
		if view.Availability == entities.Available && !view.Opened {
			available++
		}
		views = append(views, view)
	}

	if world == "" {
		metrics.LocationsAvailable.Set(float64(available))
	}

	return &ListAvailabilityOutput{Locations: views}, nil
}

func (o *orchestrator) GetItemLocation(
	_ context.Context,
	input *GetItemLocationInput,
) (*GetItemLocationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkLocation(input.Location); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetItemLocationOutput{Location: o.locationView(o.locations.Get(input.Location))}, nil
}

func (o *orchestrator) ToggleLocationOpened(
	_ context.Context,
	input *ToggleLocationOpenedInput,
) (*ToggleLocationOpenedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkLocation(input.Location); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	loc := o.locations.Get(input.Location)
	loc.ToggleOpened()
	metrics.RecordMutation("toggle_location")

	slog.Info("Location toggled", "location", input.Location, "opened", loc.IsOpened())

	return &ToggleLocationOpenedOutput{Location: o.locationView(loc)}, nil
}

func (o *orchestrator) ResetAll(_ context.Context, _ *ResetAllInput) (*ResetAllOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.inventory.Reset(o.settings)
	o.dungeons.Reset()
	o.locations.Reset(o.settings)
	metrics.RecordMutation("reset_all")

	slog.Info("Tracker reset", "start_state", o.settings.Start, "sword_logic", o.settings.Sword)

	return &ResetAllOutput{}, nil
}

// Settings

func (o *orchestrator) GetSettings(_ context.Context, _ *GetSettingsInput) (*GetSettingsOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetSettingsOutput{Settings: *o.settings}, nil
}

func (o *orchestrator) UpdateSettings(
	ctx context.Context,
	input *UpdateSettingsInput,
) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Settings.Validate(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	_, err := o.settingsRepo.Save(ctx, &settings.SaveInput{
		Profile:  o.profile,
		Settings: input.Settings,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save settings")
	}

	*o.settings = input.Settings
	metrics.RecordMutation("update_settings")

	slog.Info("Settings updated",
		"profile", o.profile,
		"sword_logic", input.Settings.Sword,
		"start_state", input.Settings.Start,
	)

	return &UpdateSettingsOutput{Settings: *o.settings}, nil
}

// Snapshots

func (o *orchestrator) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error) {
	ttl := o.snapshotTTL
	if input != nil && input.TTL != 0 {
		ttl = input.TTL
	}
	if ttl < 0 {
		return nil, errors.InvalidArgument("ttl cannot be negative")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	snap := &snapshots.Snapshot{
		ID:        o.idGen.Generate(),
		Settings:  *o.settings,
		Items:     o.inventory.Levels(),
		Dungeons:  o.dungeons.States(),
		Opened:    o.locations.Opened(),
		CreatedAt: o.clock.Now(),
	}

	out, err := o.snapshotRepo.Save(ctx, &snapshots.SaveInput{Snapshot: snap, TTL: ttl})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot %s", snap.ID)
	}
	metrics.SnapshotsSaved.Inc()

	slog.Info("Snapshot saved", "snapshot_id", out.Snapshot.ID, "ttl", ttl)

	return &SaveSnapshotOutput{
		ID:        out.Snapshot.ID,
		CreatedAt: out.Snapshot.CreatedAt,
		ExpiresAt: out.Snapshot.ExpiresAt,
	}, nil
}

func (o *orchestrator) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}

	out, err := o.snapshotRepo.Get(ctx, &snapshots.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load snapshot %s", input.ID)
	}
	snap := out.Snapshot

	// Restore into scratch state first so a bad snapshot leaves the live
	// tracker untouched.
	if err := validateSnapshot(snap); err != nil {
		return nil, errors.Wrapf(err, "snapshot %s is invalid", input.ID)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	// Persist the loaded settings so a restart keeps them.
	_, err = o.settingsRepo.Save(ctx, &settings.SaveInput{
		Profile:  o.profile,
		Settings: snap.Settings,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save settings from snapshot %s", input.ID)
	}

	*o.settings = snap.Settings
	if err := o.restore(snap); err != nil {
		return nil, errors.Wrapf(err, "failed to restore snapshot %s", input.ID)
	}
	metrics.SnapshotsRestored.Inc()

	slog.Info("Snapshot loaded",
		"snapshot_id", snap.ID,
		"created_at", snap.CreatedAt,
		"opened", len(snap.Opened),
	)

	return &LoadSnapshotOutput{Settings: *o.settings}, nil
}

func (o *orchestrator) restore(snap *snapshots.Snapshot) error {
	if err := o.inventory.Restore(snap.Items); err != nil {
		return err
	}
	if err := o.dungeons.Restore(snap.Dungeons); err != nil {
		return err
	}
	return o.locations.Restore(snap.Opened)
}

func validateSnapshot(snap *snapshots.Snapshot) error {
	if err := snap.Settings.Validate(); err != nil {
		return err
	}
	scratch := snap.Settings
	if err := entities.NewInventory(&scratch).Restore(snap.Items); err != nil {
		return err
	}
	if err := entities.NewRegistry().Restore(snap.Dungeons); err != nil {
		return err
	}
	return entities.NewLocations(&scratch).Restore(snap.Opened)
}

// Views and input checks. Callers hold o.mu.

func (o *orchestrator) itemView(key entities.ItemKey) ItemView {
	info := entities.MustItem(key)
	return ItemView{
		Key:      key,
		Name:     info.Name,
		Level:    o.inventory.Level(key),
		MaxLevel: info.MaxLevel,
	}
}

func (o *orchestrator) dungeonView(d *entities.Dungeon) DungeonView {
	return DungeonView{
		Key:            d.Key,
		Name:           d.Name,
		Boss:           d.Boss,
		World:          d.World,
		Requirement:    d.Requirement,
		MaxItemChests:  d.MaxItemChests,
		MaxTotalChests: d.MaxTotalChests,
		MaxSmallKeys:   d.MaxSmallKeys,
		State:          d.State(),
		CanDefeatBoss:  o.rules.CanDefeatBoss(d.BossID()),
	}
}

func (o *orchestrator) locationView(loc *entities.ItemLocation) LocationView {
	return LocationView{
		Key:          loc.Key,
		Name:         loc.Name,
		World:        loc.World,
		Availability: o.availability(loc.Key),
		Opened:       loc.IsOpened(),
	}
}

func (o *orchestrator) availability(key entities.LocationKey) entities.Availability {
	verdict := o.rules.Availability(key)
	metrics.RecordLocation(verdict.String())
	return verdict
}

func checkItem(key entities.ItemKey) error {
	if _, ok := entities.LookupItem(key); !ok {
		return errors.InvalidArgumentf("unknown item %q", key)
	}
	return nil
}

func (o *orchestrator) dungeon(key entities.DungeonKey) (*entities.Dungeon, error) {
	d, ok := o.dungeons.Lookup(key)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown dungeon %q", key)
	}
	return d, nil
}

func checkLocation(key entities.LocationKey) error {
	if _, ok := entities.LookupLocation(key); !ok {
		return errors.InvalidArgumentf("unknown location %q", key)
	}
	return nil
}

func checkWorld(world entities.World) error {
	switch world {
	case "", entities.LightWorld, entities.DarkWorld:
		return nil
	default:
		return errors.InvalidArgumentf("unknown world %q", world)
	}
}
