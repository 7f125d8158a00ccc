package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/errors"
)

func TestAvailabilityOrder(t *testing.T) {
	all := entities.AllAvailabilities()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
	assert.Equal(t, entities.Unavailable, all[0])
	assert.Equal(t, entities.Available, all[len(all)-1])
}

func TestAvailabilityCombinators(t *testing.T) {
	assert.Equal(t, entities.Glitches, entities.Min(entities.Glitches, entities.Available))
	assert.Equal(t, entities.Unavailable, entities.Min(entities.Unavailable, entities.Visible))
	assert.Equal(t, entities.Visible, entities.Max(entities.Glitches, entities.Visible))
	assert.Equal(t, entities.Possible, entities.OnlyIf(true, entities.Possible))
	assert.Equal(t, entities.Unavailable, entities.OnlyIf(false, entities.Possible))
	assert.Equal(t, entities.Available, entities.Either(true, entities.Visible))
	assert.Equal(t, entities.Visible, entities.Either(false, entities.Visible))
}

func TestAvailabilityReachable(t *testing.T) {
	assert.True(t, entities.Available.Reachable())
	assert.True(t, entities.Glitches.Reachable())
	assert.True(t, entities.Possible.Reachable())
	assert.False(t, entities.Visible.Reachable())
	assert.False(t, entities.GlitchesVisible.Reachable())
	assert.False(t, entities.Unavailable.Reachable())
}

func TestAvailabilityText(t *testing.T) {
	for _, a := range entities.AllAvailabilities() {
		data, err := json.Marshal(a)
		require.NoError(t, err)

		var back entities.Availability
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, a, back)
	}

	_, err := entities.ParseAvailability("maybe")
	assert.True(t, errors.IsInvalidArgument(err))

	var bad entities.Availability
	err = json.Unmarshal([]byte(`"maybe"`), &bad)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, "glitches_visible", entities.GlitchesVisible.String())
}
