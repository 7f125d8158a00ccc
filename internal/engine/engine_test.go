package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWSpear/stumpy/internal/engine"
	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
)

func TestNewValidatesConfig(t *testing.T) {
	_, err := engine.New(&engine.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestEngineSharesState(t *testing.T) {
	settings := entities.DefaultSettings()
	inv := entities.NewInventory(&settings)
	dungeons := entities.NewRegistry()

	e, err := engine.New(&engine.Config{
		Inventory: inv,
		Dungeons:  dungeons,
		Locations: entities.NewLocations(&settings),
		Settings:  &settings,
	})
	require.NoError(t, err)

	assert.False(t, e.CanDefeatBoss(entities.CastleTower))
	assert.Equal(t, entities.Unavailable, e.Availability(entities.Pyramid))

	require.NoError(t, inv.SetLevel(entities.ItemNet, 1))
	assert.True(t, e.CanDefeatBoss(entities.CastleTower))

	dungeons.Get(entities.CastleTower).ToggleDefeat()
	assert.Equal(t, entities.Available, e.Availability(entities.Pyramid))
}
