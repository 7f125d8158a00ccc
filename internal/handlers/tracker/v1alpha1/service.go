package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "stumpy.tracker.v1alpha1.TrackerService"

// TrackerServiceServer is the server API for the tracker service
type TrackerServiceServer interface {
	SetItemLevel(context.Context, *SetItemLevelRequest) (*SetItemLevelResponse, error)
	IncrementItem(context.Context, *IncrementItemRequest) (*IncrementItemResponse, error)
	GetItemLevel(context.Context, *GetItemLevelRequest) (*GetItemLevelResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	ResetItems(context.Context, *ResetItemsRequest) (*ResetItemsResponse, error)
	GetDungeon(context.Context, *GetDungeonRequest) (*GetDungeonResponse, error)
	ListDungeons(context.Context, *ListDungeonsRequest) (*ListDungeonsResponse, error)
	UpdateDungeon(context.Context, *UpdateDungeonRequest) (*UpdateDungeonResponse, error)
	CanDefeatBoss(context.Context, *CanDefeatBossRequest) (*CanDefeatBossResponse, error)
	GetAvailability(context.Context, *GetAvailabilityRequest) (*GetAvailabilityResponse, error)
	ListAvailability(context.Context, *ListAvailabilityRequest) (*ListAvailabilityResponse, error)
	GetItemLocation(context.Context, *GetItemLocationRequest) (*GetItemLocationResponse, error)
	ToggleLocationOpened(context.Context, *ToggleLocationOpenedRequest) (*ToggleLocationOpenedResponse, error)
	ResetAll(context.Context, *ResetAllRequest) (*ResetAllResponse, error)
	GetSettings(context.Context, *GetSettingsRequest) (*GetSettingsResponse, error)
	UpdateSettings(context.Context, *UpdateSettingsRequest) (*UpdateSettingsResponse, error)
	SaveSnapshot(context.Context, *SaveSnapshotRequest) (*SaveSnapshotResponse, error)
	LoadSnapshot(context.Context, *LoadSnapshotRequest) (*LoadSnapshotResponse, error)
}

// UnimplementedTrackerServiceServer answers every call with Unimplemented.
// Embed it to stay forward compatible.
type UnimplementedTrackerServiceServer struct{}

func (UnimplementedTrackerServiceServer) SetItemLevel(context.Context, *SetItemLevelRequest) (*SetItemLevelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetItemLevel not implemented")
}

func (UnimplementedTrackerServiceServer) IncrementItem(context.Context, *IncrementItemRequest) (*IncrementItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IncrementItem not implemented")
}

func (UnimplementedTrackerServiceServer) GetItemLevel(context.Context, *GetItemLevelRequest) (*GetItemLevelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetItemLevel not implemented")
}

func (UnimplementedTrackerServiceServer) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListItems not implemented")
}

func (UnimplementedTrackerServiceServer) ResetItems(context.Context, *ResetItemsRequest) (*ResetItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetItems not implemented")
}

func (UnimplementedTrackerServiceServer) GetDungeon(context.Context, *GetDungeonRequest) (*GetDungeonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDungeon not implemented")
}

func (UnimplementedTrackerServiceServer) ListDungeons(context.Context, *ListDungeonsRequest) (*ListDungeonsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDungeons not implemented")
}

func (UnimplementedTrackerServiceServer) UpdateDungeon(context.Context, *UpdateDungeonRequest) (*UpdateDungeonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateDungeon not implemented")
}

func (UnimplementedTrackerServiceServer) CanDefeatBoss(context.Context, *CanDefeatBossRequest) (*CanDefeatBossResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CanDefeatBoss not implemented")
}

func (UnimplementedTrackerServiceServer) GetAvailability(context.Context, *GetAvailabilityRequest) (*GetAvailabilityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAvailability not implemented")
}

func (UnimplementedTrackerServiceServer) ListAvailability(context.Context, *ListAvailabilityRequest) (*ListAvailabilityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAvailability not implemented")
}

func (UnimplementedTrackerServiceServer) GetItemLocation(context.Context, *GetItemLocationRequest) (*GetItemLocationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetItemLocation not implemented")
}

func (UnimplementedTrackerServiceServer) ToggleLocationOpened(context.Context, *ToggleLocationOpenedRequest) (*ToggleLocationOpenedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleLocationOpened not implemented")
}

func (UnimplementedTrackerServiceServer) ResetAll(context.Context, *ResetAllRequest) (*ResetAllResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetAll not implemented")
}

func (UnimplementedTrackerServiceServer) GetSettings(context.Context, *GetSettingsRequest) (*GetSettingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSettings not implemented")
}

func (UnimplementedTrackerServiceServer) UpdateSettings(context.Context, *UpdateSettingsRequest) (*UpdateSettingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSettings not implemented")
}

func (UnimplementedTrackerServiceServer) SaveSnapshot(context.Context, *SaveSnapshotRequest) (*SaveSnapshotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveSnapshot not implemented")
}

func (UnimplementedTrackerServiceServer) LoadSnapshot(context.Context, *LoadSnapshotRequest) (*LoadSnapshotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LoadSnapshot not implemented")
}

// TrackerServiceDesc describes the tracker service for grpc.Server
var TrackerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TrackerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SetItemLevel", Handler: unary("SetItemLevel", TrackerServiceServer.SetItemLevel)},
		{MethodName: "IncrementItem", Handler: unary("IncrementItem", TrackerServiceServer.IncrementItem)},
		{MethodName: "GetItemLevel", Handler: unary("GetItemLevel", TrackerServiceServer.GetItemLevel)},
		{MethodName: "ListItems", Handler: unary("ListItems", TrackerServiceServer.ListItems)},
		{MethodName: "ResetItems", Handler: unary("ResetItems", TrackerServiceServer.ResetItems)},
		{MethodName: "GetDungeon", Handler: unary("GetDungeon", TrackerServiceServer.GetDungeon)},
		{MethodName: "ListDungeons", Handler: unary("ListDungeons", TrackerServiceServer.ListDungeons)},
		{MethodName: "UpdateDungeon", Handler: unary("UpdateDungeon", TrackerServiceServer.UpdateDungeon)},
		{MethodName: "CanDefeatBoss", Handler: unary("CanDefeatBoss", TrackerServiceServer.CanDefeatBoss)},
		{MethodName: "GetAvailability", Handler: unary("GetAvailability", TrackerServiceServer.GetAvailability)},
		{MethodName: "ListAvailability", Handler: unary("ListAvailability", TrackerServiceServer.ListAvailability)},
		{MethodName: "GetItemLocation", Handler: unary("GetItemLocation", TrackerServiceServer.GetItemLocation)},
		{MethodName: "ToggleLocationOpened", Handler: unary("ToggleLocationOpened", TrackerServiceServer.ToggleLocationOpened)},
		{MethodName: "ResetAll", Handler: unary("ResetAll", TrackerServiceServer.ResetAll)},
		{MethodName: "GetSettings", Handler: unary("GetSettings", TrackerServiceServer.GetSettings)},
		{MethodName: "UpdateSettings", Handler: unary("UpdateSettings", TrackerServiceServer.UpdateSettings)},
		{MethodName: "SaveSnapshot", Handler: unary("SaveSnapshot", TrackerServiceServer.SaveSnapshot)},
		{MethodName: "LoadSnapshot", Handler: unary("LoadSnapshot", TrackerServiceServer.LoadSnapshot)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stumpy/tracker/v1alpha1/tracker.json",
}

// RegisterTrackerServiceServer registers srv on s
func RegisterTrackerServiceServer(s grpc.ServiceRegistrar, srv TrackerServiceServer) {
	s.RegisterService(&TrackerServiceDesc, srv)
}

// FullMethod returns the wire path of a tracker method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary adapts a typed server method to grpc.MethodHandler
func unary[Req, Resp any](
	method string,
	call func(TrackerServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TrackerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TrackerServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// TrackerServiceClient is the client API for the tracker service
type TrackerServiceClient interface {
	SetItemLevel(ctx context.Context, in *SetItemLevelRequest, opts ...grpc.CallOption) (*SetItemLevelResponse, error)
	IncrementItem(ctx context.Context, in *IncrementItemRequest, opts ...grpc.CallOption) (*IncrementItemResponse, error)
	GetItemLevel(ctx context.Context, in *GetItemLevelRequest, opts ...grpc.CallOption) (*GetItemLevelResponse, error)
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	ResetItems(ctx context.Context, in *ResetItemsRequest, opts ...grpc.CallOption) (*ResetItemsResponse, error)
	GetDungeon(ctx context.Context, in *GetDungeonRequest, opts ...grpc.CallOption) (*GetDungeonResponse, error)
	ListDungeons(ctx context.Context, in *ListDungeonsRequest, opts ...grpc.CallOption) (*ListDungeonsResponse, error)
	UpdateDungeon(ctx context.Context, in *UpdateDungeonRequest, opts ...grpc.CallOption) (*UpdateDungeonResponse, error)
	CanDefeatBoss(ctx context.Context, in *CanDefeatBossRequest, opts ...grpc.CallOption) (*CanDefeatBossResponse, error)
	GetAvailability(ctx context.Context, in *GetAvailabilityRequest, opts ...grpc.CallOption) (*GetAvailabilityResponse, error)
	ListAvailability(ctx context.Context, in *ListAvailabilityRequest, opts ...grpc.CallOption) (*ListAvailabilityResponse, error)
	GetItemLocation(ctx context.Context, in *GetItemLocationRequest, opts ...grpc.CallOption) (*GetItemLocationResponse, error)
	ToggleLocationOpened(ctx context.Context, in *ToggleLocationOpenedRequest, opts ...grpc.CallOption) (*ToggleLocationOpenedResponse, error)
	ResetAll(ctx context.Context, in *ResetAllRequest, opts ...grpc.CallOption) (*ResetAllResponse, error)
	GetSettings(ctx context.Context, in *GetSettingsRequest, opts ...grpc.CallOption) (*GetSettingsResponse, error)
	UpdateSettings(ctx context.Context, in *UpdateSettingsRequest, opts ...grpc.CallOption) (*UpdateSettingsResponse, error)
	SaveSnapshot(ctx context.Context, in *SaveSnapshotRequest, opts ...grpc.CallOption) (*SaveSnapshotResponse, error)
	LoadSnapshot(ctx context.Context, in *LoadSnapshotRequest, opts ...grpc.CallOption) (*LoadSnapshotResponse, error)
}

type trackerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTrackerServiceClient creates a client that speaks the JSON codec
func NewTrackerServiceClient(cc grpc.ClientConnInterface) TrackerServiceClient {
	return &trackerServiceClient{cc: cc}
}

func (c *trackerServiceClient) invoke(
	ctx context.Context,
	method string,
	in, out any,
	opts []grpc.CallOption,
) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, FullMethod(method), in, out, opts...)
}

func (c *trackerServiceClient) SetItemLevel(
	ctx context.Context,
	in *SetItemLevelRequest,
	opts ...grpc.CallOption,
) (*SetItemLevelResponse, error) {
	out := new(SetItemLevelResponse)
	if err := c.invoke(ctx, "SetItemLevel", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) IncrementItem(
	ctx context.Context,
	in *IncrementItemRequest,
	opts ...grpc.CallOption,
) (*IncrementItemResponse, error) {
	out := new(IncrementItemResponse)
	if err := c.invoke(ctx, "IncrementItem", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) GetItemLevel(
	ctx context.Context,
	in *GetItemLevelRequest,
	opts ...grpc.CallOption,
) (*GetItemLevelResponse, error) {
	out := new(GetItemLevelResponse)
	if err := c.invoke(ctx, "GetItemLevel", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ListItems(
	ctx context.Context,
	in *ListItemsRequest,
	opts ...grpc.CallOption,
) (*ListItemsResponse, error) {
	out := new(ListItemsResponse)
	if err := c.invoke(ctx, "ListItems", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ResetItems(
	ctx context.Context,
	in *ResetItemsRequest,
	opts ...grpc.CallOption,
) (*ResetItemsResponse, error) {
	out := new(ResetItemsResponse)
	if err := c.invoke(ctx, "ResetItems", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) GetDungeon(
	ctx context.Context,
	in *GetDungeonRequest,
	opts ...grpc.CallOption,
) (*GetDungeonResponse, error) {
	out := new(GetDungeonResponse)
	if err := c.invoke(ctx, "GetDungeon", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ListDungeons(
	ctx context.Context,
	in *ListDungeonsRequest,
	opts ...grpc.CallOption,
) (*ListDungeonsResponse, error) {
	out := new(ListDungeonsResponse)
	if err := c.invoke(ctx, "ListDungeons", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) UpdateDungeon(
	ctx context.Context,
	in *UpdateDungeonRequest,
	opts ...grpc.CallOption,
) (*UpdateDungeonResponse, error) {
	out := new(UpdateDungeonResponse)
	if err := c.invoke(ctx, "UpdateDungeon", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) CanDefeatBoss(
	ctx context.Context,
	in *CanDefeatBossRequest,
	opts ...grpc.CallOption,
) (*CanDefeatBossResponse, error) {
	out := new(CanDefeatBossResponse)
	if err := c.invoke(ctx, "CanDefeatBoss", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) GetAvailability(
	ctx context.Context,
	in *GetAvailabilityRequest,
	opts ...grpc.CallOption,
) (*GetAvailabilityResponse, error) {
	out := new(GetAvailabilityResponse)
	if err := c.invoke(ctx, "GetAvailability", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ListAvailability(
	ctx context.Context,
	in *ListAvailabilityRequest,
	opts ...grpc.CallOption,
) (*ListAvailabilityResponse, error) {
	out := new(ListAvailabilityResponse)
	if err := c.invoke(ctx, "ListAvailability", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) GetItemLocation(
	ctx context.Context,
	in *GetItemLocationRequest,
	opts ...grpc.CallOption,
) (*GetItemLocationResponse, error) {
	out := new(GetItemLocationResponse)
	if err := c.invoke(ctx, "GetItemLocation", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ToggleLocationOpened(
	ctx context.Context,
	in *ToggleLocationOpenedRequest,
	opts ...grpc.CallOption,
) (*ToggleLocationOpenedResponse, error) {
	out := new(ToggleLocationOpenedResponse)
	if err := c.invoke(ctx, "ToggleLocationOpened", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ResetAll(
	ctx context.Context,
	in *ResetAllRequest,
	opts ...grpc.CallOption,
) (*ResetAllResponse, error) {
	out := new(ResetAllResponse)
	if err := c.invoke(ctx, "ResetAll", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) GetSettings(
	ctx context.Context,
	in *GetSettingsRequest,
	opts ...grpc.CallOption,
) (*GetSettingsResponse, error) {
	out := new(GetSettingsResponse)
	if err := c.invoke(ctx, "GetSettings", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) UpdateSettings(
	ctx context.Context,
	in *UpdateSettingsRequest,
	opts ...grpc.CallOption,
) (*UpdateSettingsResponse, error) {
	out := new(UpdateSettingsResponse)
	if err := c.invoke(ctx, "UpdateSettings", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) SaveSnapshot(
	ctx context.Context,
	in *SaveSnapshotRequest,
	opts ...grpc.CallOption,
) (*SaveSnapshotResponse, error) {
	out := new(SaveSnapshotResponse)
	if err := c.invoke(ctx, "SaveSnapshot", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) LoadSnapshot(
	ctx context.Context,
	in *LoadSnapshotRequest,
	opts ...grpc.CallOption,
) (*LoadSnapshotResponse, error) {
	out := new(LoadSnapshotResponse)
	if err := c.invoke(ctx, "LoadSnapshot", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
