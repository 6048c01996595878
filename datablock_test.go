package datablock

import (
	"testing"

	"github.com/arclake/datablock/decode"
	"github.com/arclake/datablock/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromRows(t *testing.T) {
	s := schema.Schema{
		{Name: "id", Type: schema.Int},
		{Name: "name", Type: schema.String},
	}
	blk, err := BuildFromRows(s, [][]any{
		{int32(1), "alice"},
		{int32(2), "bob"},
	})
	require.NoError(t, err)

	m := decode.Materialize(blk)
	row0, err := m.RowAt(0)
	require.NoError(t, err)
	assert.Equal(t, []any{int32(1), "alice"}, row0)
}

func TestBuildFromColumns(t *testing.T) {
	s := schema.Schema{
		{Name: "id", Type: schema.Int},
		{Name: "name", Type: schema.String},
	}
	blk, err := BuildFromColumns(s, 2, [][]any{
		{int32(1), int32(2)},
		{"alice", "bob"},
	})
	require.NoError(t, err)

	m := decode.Materialize(blk)
	row1, err := m.RowAt(1)
	require.NoError(t, err)
	assert.Equal(t, []any{int32(2), "bob"}, row1)
}

func TestBuildFromRows_PropagatesBuilderError(t *testing.T) {
	s := schema.Schema{{Name: "id", Type: schema.Int}}
	_, err := BuildFromRows(s, [][]any{{"not-an-int"}})
	assert.Error(t, err)
}
