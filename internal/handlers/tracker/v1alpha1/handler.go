// Package v1alpha1 handles the tracker gRPC service interface
package v1alpha1

import (
	"context"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
	"github.com/CWSpear/stumpy/internal/orchestrators/tracker"
)

// HandlerConfig holds dependencies for the tracker handler
type HandlerConfig struct {
	TrackerService tracker.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.TrackerService == nil {
		return errors.InvalidArgument("tracker service is required")
	}
	return nil
}

// Handler implements the tracker gRPC service
type Handler struct {
	UnimplementedTrackerServiceServer
	tracker  tracker.Service
	validate *validator.Validate
}

// NewHandler creates a new tracker handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	// report wire names rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		tracker:  cfg.TrackerService,
		validate: v,
	}, nil
}

// Items

// SetItemLevel sets an item to an explicit level
func (h *Handler) SetItemLevel(ctx context.Context, req *SetItemLevelRequest) (*SetItemLevelResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.SetItemLevel(ctx, &tracker.SetItemLevelInput{
		Item:  entities.ItemKey(req.Item),
		Level: int(req.Level),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetItemLevelResponse{Item: convertItem(out.Item)}, nil
}

// IncrementItem steps an item up, wrapping past its maximum
func (h *Handler) IncrementItem(ctx context.Context, req *IncrementItemRequest) (*IncrementItemResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.IncrementItem(ctx, &tracker.IncrementItemInput{Item: entities.ItemKey(req.Item)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &IncrementItemResponse{Item: convertItem(out.Item)}, nil
}

// GetItemLevel reads one item
func (h *Handler) GetItemLevel(ctx context.Context, req *GetItemLevelRequest) (*GetItemLevelResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.GetItemLevel(ctx, &tracker.GetItemLevelInput{Item: entities.ItemKey(req.Item)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetItemLevelResponse{Item: convertItem(out.Item)}, nil
}

// ListItems reads the whole inventory
func (h *Handler) ListItems(ctx context.Context, _ *ListItemsRequest) (*ListItemsResponse, error) {
	out, err := h.tracker.ListItems(ctx, &tracker.ListItemsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	items := make([]*Item, 0, len(out.Items))
	for _, item := range out.Items {
		items = append(items, convertItem(item))
	}
	return &ListItemsResponse{Items: items}, nil
}

// ResetItems restores the starting inventory
func (h *Handler) ResetItems(ctx context.Context, _ *ResetItemsRequest) (*ResetItemsResponse, error) {
	if _, err := h.tracker.ResetItems(ctx, &tracker.ResetItemsInput{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ResetItemsResponse{}, nil
}

// Dungeons and bosses

// GetDungeon reads one dungeon
func (h *Handler) GetDungeon(ctx context.Context, req *GetDungeonRequest) (*GetDungeonResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.GetDungeon(ctx, &tracker.GetDungeonInput{Dungeon: entities.DungeonKey(req.Dungeon)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetDungeonResponse{Dungeon: convertDungeon(out.Dungeon)}, nil
}

// ListDungeons reads every dungeon, optionally of one world
func (h *Handler) ListDungeons(ctx context.Context, req *ListDungeonsRequest) (*ListDungeonsResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.ListDungeons(ctx, &tracker.ListDungeonsInput{World: entities.World(req.World)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	dungeons := make([]*Dungeon, 0, len(out.Dungeons))
	for _, d := range out.Dungeons {
		dungeons = append(dungeons, convertDungeon(d))
	}
	return &ListDungeonsResponse{Dungeons: dungeons}, nil
}

// UpdateDungeon applies one action to a dungeon
func (h *Handler) UpdateDungeon(ctx context.Context, req *UpdateDungeonRequest) (*UpdateDungeonResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.UpdateDungeon(ctx, &tracker.UpdateDungeonInput{
		Dungeon: entities.DungeonKey(req.Dungeon),
		Action:  tracker.DungeonAction(req.Action),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateDungeonResponse{Dungeon: convertDungeon(out.Dungeon)}, nil
}

// CanDefeatBoss evaluates the boss currently placed in a dungeon
func (h *Handler) CanDefeatBoss(ctx context.Context, req *CanDefeatBossRequest) (*CanDefeatBossResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.CanDefeatBoss(ctx, &tracker.CanDefeatBossInput{Dungeon: entities.DungeonKey(req.Dungeon)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CanDefeatBossResponse{
		Dungeon:    string(out.Dungeon),
		Boss:       string(out.Boss),
		Defeatable: out.Defeatable,
	}, nil
}

// Locations

// GetAvailability evaluates one location
func (h *Handler) GetAvailability(
	ctx context.Context,
	req *GetAvailabilityRequest,
) (*GetAvailabilityResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.GetAvailability(ctx, &tracker.GetAvailabilityInput{
		Location: entities.LocationKey(req.Location),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetAvailabilityResponse{
		Location:     string(out.Location),
		Availability: out.Availability.String(),
	}, nil
}

// ListAvailability evaluates every location, optionally of one world
func (h *Handler) ListAvailability(
	ctx context.Context,
	req *ListAvailabilityRequest,
) (*ListAvailabilityResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.ListAvailability(ctx, &tracker.ListAvailabilityInput{World: entities.World(req.World)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	locations := make([]*Location, 0, len(out.Locations))
	for _, loc := range out.Locations {
		locations = append(locations, convertLocation(loc))
	}
	return &ListAvailabilityResponse{Locations: locations}, nil
}

// GetItemLocation reads one location
func (h *Handler) GetItemLocation(
	ctx context.Context,
	req *GetItemLocationRequest,
) (*GetItemLocationResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.GetItemLocation(ctx, &tracker.GetItemLocationInput{
		Location: entities.LocationKey(req.Location),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetItemLocationResponse{Location: convertLocation(out.Location)}, nil
}

// ToggleLocationOpened flips a location's opened flag
func (h *Handler) ToggleLocationOpened(
	ctx context.Context,
	req *ToggleLocationOpenedRequest,
) (*ToggleLocationOpenedResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.ToggleLocationOpened(ctx, &tracker.ToggleLocationOpenedInput{
		Location: entities.LocationKey(req.Location),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ToggleLocationOpenedResponse{Location: convertLocation(out.Location)}, nil
}

// ResetAll resets items, dungeons and locations
func (h *Handler) ResetAll(ctx context.Context, _ *ResetAllRequest) (*ResetAllResponse, error) {
	if _, err := h.tracker.ResetAll(ctx, &tracker.ResetAllInput{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ResetAllResponse{}, nil
}

// Settings

// GetSettings reads the settings
func (h *Handler) GetSettings(ctx context.Context, _ *GetSettingsRequest) (*GetSettingsResponse, error) {
	out, err := h.tracker.GetSettings(ctx, &tracker.GetSettingsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &GetSettingsResponse{Settings: convertSettings(out.Settings)}, nil
}

// UpdateSettings replaces the settings
func (h *Handler) UpdateSettings(
	ctx context.Context,
	req *UpdateSettingsRequest,
) (*UpdateSettingsResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.UpdateSettings(ctx, &tracker.UpdateSettingsInput{
		Settings: entities.Settings{
			Sword: entities.SwordLogic(req.Settings.SwordLogic),
			Start: entities.StartState(req.Settings.StartState),
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateSettingsResponse{Settings: convertSettings(out.Settings)}, nil
}

// Snapshots

// SaveSnapshot stores the tracker state
func (h *Handler) SaveSnapshot(ctx context.Context, req *SaveSnapshotRequest) (*SaveSnapshotResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.SaveSnapshot(ctx, &tracker.SaveSnapshotInput{
		TTL: time.Duration(req.TTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &SaveSnapshotResponse{
		SnapshotID: out.ID,
		CreatedAt:  out.CreatedAt.Unix(),
	}
	if !out.ExpiresAt.IsZero() {
		resp.ExpiresAt = out.ExpiresAt.Unix()
	}
	return resp, nil
}

// LoadSnapshot restores a stored tracker state
func (h *Handler) LoadSnapshot(ctx context.Context, req *LoadSnapshotRequest) (*LoadSnapshotResponse, error) {
	if err := h.check(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.tracker.LoadSnapshot(ctx, &tracker.LoadSnapshotInput{ID: req.SnapshotID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LoadSnapshotResponse{Settings: convertSettings(out.Settings)}, nil
}

// check validates a request against its struct tags
func (h *Handler) check(req any) error {
	if req == nil || reflect.ValueOf(req).IsNil() {
		return errors.InvalidArgument("request is required")
	}

	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	vb := errors.NewValidationBuilder()
	for _, fe := range fieldErrs {
		vb.Field(fieldPath(fe), describe(fe))
	}
	return vb.Build()
}

// fieldPath drops the request type from a namespace such as
// UpdateSettingsRequest.settings.sword_logic
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return "is invalid"
	}
}
