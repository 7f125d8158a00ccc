package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWSpear/stumpy/internal/errors"
)

func TestValidationBuilder(t *testing.T) {
	t.Run("no problems builds nil", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		assert.False(t, vb.HasErrors())
		assert.NoError(t, vb.Build())
	})

	t.Run("problems build an invalid argument error", func(t *testing.T) {
		err := errors.NewValidationBuilder().
			RequiredField("Inventory").
			InvalidField("SwordLogic", "unknown value").
			Build()

		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Equal(t,
			"INVALID_ARGUMENT: validation failed: Inventory: is required; SwordLogic: is invalid: unknown value",
			err.Error())
		assert.Equal(t, "is required", errors.GetMeta(err)["Inventory"])
	})
}
