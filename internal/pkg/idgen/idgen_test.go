package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-tracker/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	plain := idgen.NewUUID("")
	id := plain.Generate()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, plain.Generate())

	prefixed := idgen.NewUUID("rec").Generate()
	assert.True(t, strings.HasPrefix(prefixed, "rec_"))
	_, err = uuid.Parse(strings.TrimPrefix(prefixed, "rec_"))
	require.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("c")
	assert.Equal(t, "c_1", gen.Generate())
	assert.Equal(t, "c_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
