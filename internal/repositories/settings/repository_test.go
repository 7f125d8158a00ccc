package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
	"github.com/CWSpear/stumpy/internal/repositories/settings"
	"github.com/CWSpear/stumpy/internal/testutils"
)

// RepositoryTestSuite runs the same contract against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() settings.Repository
	repo    settings.Repository
	ctx     context.Context
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func() settings.Repository {
		client, _ := testutils.CreateTestRedisClient(t)
		repo, err := settings.NewRedis(&settings.RedisConfig{Client: client})
		require.NoError(t, err)
		return repo
	}})
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func() settings.Repository {
		return settings.NewInMemory()
	}})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func (s *RepositoryTestSuite) TestGetMissingProfile() {
	_, err := s.repo.Get(s.ctx, &settings.GetInput{Profile: settings.DefaultProfile})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	want := entities.Settings{Sword: entities.SwordLogicSwordless, Start: entities.StartStateStandard}

	_, err := s.repo.Save(s.ctx, &settings.SaveInput{Profile: "race", Settings: want})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &settings.GetInput{Profile: "race"})
	s.Require().NoError(err)
	s.Equal(want, out.Settings)

	s.Run("profiles are independent", func() {
		_, err := s.repo.Get(s.ctx, &settings.GetInput{Profile: settings.DefaultProfile})
		s.True(errors.IsNotFound(err))
	})
}

func (s *RepositoryTestSuite) TestRejectsBadInput() {
	testCases := []struct {
		name  string
		input *settings.SaveInput
	}{
		{name: "nil input", input: nil},
		{name: "empty profile", input: &settings.SaveInput{Settings: entities.DefaultSettings()}},
		{name: "unknown sword logic", input: &settings.SaveInput{Profile: "x", Settings: entities.Settings{Sword: "rusty", Start: entities.StartStateOpen}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Save(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestNewRedisValidatesConfig(t *testing.T) {
	_, err := settings.NewRedis(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = settings.NewRedis(&settings.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}
