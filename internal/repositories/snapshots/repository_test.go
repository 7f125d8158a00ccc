package snapshots_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
	"github.com/CWSpear/stumpy/internal/pkg/clock"
	"github.com/CWSpear/stumpy/internal/repositories/snapshots"
	"github.com/CWSpear/stumpy/internal/testutils"
	"github.com/CWSpear/stumpy/internal/testutils/builders"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// RepositoryTestSuite runs the same contract against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(clk clock.Clock) (snapshots.Repository, *miniredis.Miniredis)
	clock   *clock.Fixed
	mr      *miniredis.Miniredis
	repo    snapshots.Repository
	ctx     context.Context
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(clk clock.Clock) (snapshots.Repository, *miniredis.Miniredis) {
			client, mr := testutils.CreateTestRedisClient(t)
			repo, err := snapshots.NewRedis(&snapshots.RedisConfig{Client: client, Clock: clk})
			require.NoError(t, err)
			return repo, mr
		},
	})
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(clk clock.Clock) (snapshots.Repository, *miniredis.Miniredis) {
			return snapshots.NewInMemory(clk), nil
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(epoch)
	s.repo, s.mr = s.newRepo(s.clock)
}

func (s *RepositoryTestSuite) advance(d time.Duration) {
	s.clock.Advance(d)
	if s.mr != nil {
		s.mr.FastForward(d)
	}
}

func (s *RepositoryTestSuite) snapshot(id string) *snapshots.Snapshot {
	return builders.NewSnapshotBuilder().
		WithID(id).
		WithItem(entities.ItemHookshot, 1).
		WithItem(entities.ItemGlove, 2).
		WithDefeated(entities.EasternPalace).
		WithOpened(entities.LinksHouse).
		WithCreatedAt(epoch).
		Build()
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	saved, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: s.snapshot("snap_1")})
	s.Require().NoError(err)
	s.True(saved.Snapshot.ExpiresAt.IsZero())

	out, err := s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_1"})
	s.Require().NoError(err)
	s.Equal(2, out.Snapshot.Items[entities.ItemGlove])
	s.Equal([]entities.LocationKey{entities.LinksHouse}, out.Snapshot.Opened)
	s.Require().Len(out.Snapshot.Dungeons, len(entities.AllDungeonKeys()))
	s.True(out.Snapshot.CreatedAt.Equal(epoch))

	for _, state := range out.Snapshot.Dungeons {
		s.Equal(state.Key == entities.EasternPalace, state.BossDefeated, state.Key)
	}
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &snapshots.GetInput{ID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestExpiry() {
	saved, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: s.snapshot("snap_ttl"), TTL: time.Hour})
	s.Require().NoError(err)
	s.True(saved.Snapshot.ExpiresAt.Equal(epoch.Add(time.Hour)))

	s.advance(30 * time.Minute)
	_, err = s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_ttl"})
	s.Require().NoError(err)

	s.advance(time.Hour)
	_, err = s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_ttl"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: s.snapshot("snap_del")})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, &snapshots.DeleteInput{ID: "snap_del"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, &snapshots.DeleteInput{ID: "snap_del"})
	s.Require().NoError(err)
	s.False(out.Deleted)

	_, err = s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_del"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestRejectsBadInput() {
	testCases := []struct {
		name  string
		input *snapshots.SaveInput
	}{
		{name: "nil input", input: nil},
		{name: "nil snapshot", input: &snapshots.SaveInput{}},
		{name: "missing id", input: &snapshots.SaveInput{Snapshot: &snapshots.Snapshot{}}},
		{name: "negative ttl", input: &snapshots.SaveInput{Snapshot: &snapshots.Snapshot{ID: "x"}, TTL: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Save(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}

	_, err := s.repo.Get(s.ctx, &snapshots.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestStoredCopyIsIsolated() {
	snap := s.snapshot("snap_iso")
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: snap})
	s.Require().NoError(err)

	snap.Items[entities.ItemGlove] = 0

	out, err := s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_iso"})
	s.Require().NoError(err)
	s.Equal(2, out.Snapshot.Items[entities.ItemGlove])
}
