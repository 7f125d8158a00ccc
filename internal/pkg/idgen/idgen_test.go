package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWSpear/stumpy/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("snap")

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "snap_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "snap_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("snap")
	assert.Equal(t, "snap_1", gen.Generate())
	assert.Equal(t, "snap_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
