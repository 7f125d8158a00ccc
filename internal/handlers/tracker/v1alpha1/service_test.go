package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/handlers/tracker/v1alpha1"
	"github.com/CWSpear/stumpy/internal/metrics"
	"github.com/CWSpear/stumpy/internal/orchestrators/tracker"
	"github.com/CWSpear/stumpy/internal/pkg/clock"
	"github.com/CWSpear/stumpy/internal/pkg/idgen"
	"github.com/CWSpear/stumpy/internal/repositories/settings"
	"github.com/CWSpear/stumpy/internal/repositories/snapshots"
)

const bufSize = 1024 * 1024

// ServiceTestSuite drives a real tracker through the JSON codec over an
// in-process connection
type ServiceTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	client v1alpha1.TrackerServiceClient
	ctx    context.Context
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	clk := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	svc, err := tracker.NewOrchestrator(&tracker.Config{
		SettingsRepo: settings.NewInMemory(),
		SnapshotRepo: snapshots.NewInMemory(clk),
		IDGenerator:  idgen.NewSequential("snap"),
		Clock:        clk,
		Profile:      settings.DefaultProfile,
		Settings:     entities.DefaultSettings(),
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{TrackerService: svc})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer(grpc.ChainUnaryInterceptor(
		metrics.UnaryServerInterceptor(),
		grpc_recovery.UnaryServerInterceptor(),
	))
	v1alpha1.RegisterTrackerServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewTrackerServiceClient(conn)

	var cancel context.CancelFunc
	s.ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	s.T().Cleanup(cancel)
}

func (s *ServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *ServiceTestSuite) TestCastleTowerRoundTrip() {
	boss, err := s.client.CanDefeatBoss(s.ctx, &v1alpha1.CanDefeatBossRequest{Dungeon: "castle_tower"})
	s.Require().NoError(err)
	s.False(boss.Defeatable)

	item, err := s.client.IncrementItem(s.ctx, &v1alpha1.IncrementItemRequest{Item: "net"})
	s.Require().NoError(err)
	s.Equal(int32(1), item.Item.Level)

	boss, err = s.client.CanDefeatBoss(s.ctx, &v1alpha1.CanDefeatBossRequest{Dungeon: "castle_tower"})
	s.Require().NoError(err)
	s.True(boss.Defeatable)
	s.Equal("castle_tower", boss.Boss)
}

func (s *ServiceTestSuite) TestAgahnimOpensThePyramid() {
	pyramid, err := s.client.GetAvailability(s.ctx, &v1alpha1.GetAvailabilityRequest{Location: "pyramid"})
	s.Require().NoError(err)
	s.Equal("unavailable", pyramid.Availability)

	dungeon, err := s.client.UpdateDungeon(s.ctx, &v1alpha1.UpdateDungeonRequest{
		Dungeon: "castle_tower",
		Action:  "toggle-defeat",
	})
	s.Require().NoError(err)
	s.True(dungeon.Dungeon.BossDefeated)

	pyramid, err = s.client.GetAvailability(s.ctx, &v1alpha1.GetAvailabilityRequest{Location: "pyramid"})
	s.Require().NoError(err)
	s.Equal("available", pyramid.Availability)
}

func (s *ServiceTestSuite) TestSnapshotRoundTrip() {
	_, err := s.client.SetItemLevel(s.ctx, &v1alpha1.SetItemLevelRequest{Item: "glove", Level: 2})
	s.Require().NoError(err)

	saved, err := s.client.SaveSnapshot(s.ctx, &v1alpha1.SaveSnapshotRequest{})
	s.Require().NoError(err)
	s.Equal("snap_1", saved.SnapshotID)
	s.Zero(saved.ExpiresAt)

	_, err = s.client.ResetAll(s.ctx, &v1alpha1.ResetAllRequest{})
	s.Require().NoError(err)

	_, err = s.client.LoadSnapshot(s.ctx, &v1alpha1.LoadSnapshotRequest{SnapshotID: saved.SnapshotID})
	s.Require().NoError(err)

	glove, err := s.client.GetItemLevel(s.ctx, &v1alpha1.GetItemLevelRequest{Item: "glove"})
	s.Require().NoError(err)
	s.Equal(int32(2), glove.Item.Level)
}

func (s *ServiceTestSuite) TestSettingsRoundTrip() {
	updated, err := s.client.UpdateSettings(s.ctx, &v1alpha1.UpdateSettingsRequest{
		Settings: &v1alpha1.Settings{SwordLogic: "swordless", StartState: "standard"},
	})
	s.Require().NoError(err)
	s.Equal("swordless", updated.Settings.SwordLogic)

	got, err := s.client.GetSettings(s.ctx, &v1alpha1.GetSettingsRequest{})
	s.Require().NoError(err)
	s.Equal(updated.Settings, got.Settings)
}

func (s *ServiceTestSuite) TestListings() {
	items, err := s.client.ListItems(s.ctx, &v1alpha1.ListItemsRequest{})
	s.Require().NoError(err)
	s.Len(items.Items, len(entities.AllItems()))

	dungeons, err := s.client.ListDungeons(s.ctx, &v1alpha1.ListDungeonsRequest{World: "light"})
	s.Require().NoError(err)
	for _, d := range dungeons.Dungeons {
		s.Equal("light", d.World)
	}

	locations, err := s.client.ListAvailability(s.ctx, &v1alpha1.ListAvailabilityRequest{})
	s.Require().NoError(err)
	s.Len(locations.Locations, len(entities.AllLocationKeys()))
}

func (s *ServiceTestSuite) TestErrorCodes() {
	_, err := s.client.GetItemLevel(s.ctx, &v1alpha1.GetItemLevelRequest{Item: "ocarina"})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.LoadSnapshot(s.ctx, &v1alpha1.LoadSnapshotRequest{SnapshotID: "snap_404"})
	s.Equal(codes.NotFound, status.Code(err))
}
