package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/brewin/lang/types"
)

func TestEnvironmentCreateAndLookup(t *testing.T) {
	env := NewEnvironment()
	env.Create("x", types.Int(1))

	cell, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Int(1), cell.Get())
}

func TestEnvironmentShadowing(t *testing.T) {
	env := NewEnvironment()
	env.Create("x", types.Int(1))
	env.Push()
	env.Create("x", types.Int(2))

	cell, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Int(2), cell.Get())

	env.Pop()
	cell, ok = env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Int(1), cell.Get())
}

func TestEnvironmentAssignFindsOuterScope(t *testing.T) {
	env := NewEnvironment()
	env.Create("x", types.Int(1))
	env.Push()
	env.Assign("x", types.Int(9))
	env.Pop()

	cell, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Int(9), cell.Get())
}

func TestEnvironmentAssignCreatesWhenMissing(t *testing.T) {
	env := NewEnvironment()
	env.Assign("y", types.Int(5))

	cell, ok := env.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, types.Int(5), cell.Get())
}

func TestEnvironmentBindCellShares(t *testing.T) {
	env := NewEnvironment()
	cell := env.Create("x", types.Int(1))

	env.Push()
	env.BindCell("alias", cell)
	aliasCell, ok := env.Lookup("alias")
	require.True(t, ok)
	aliasCell.Set(types.Int(2))

	assert.Equal(t, types.Int(2), cell.Get())
}

func TestEnvironmentSnapshotFlattensScopes(t *testing.T) {
	env := NewEnvironment()
	env.Create("x", types.Int(1))
	env.Push()
	env.Create("y", types.Int(2))

	snap := env.Snapshot()
	assert.Len(t, snap, 2)
	assert.Equal(t, types.Int(1), snap["x"].Get())
	assert.Equal(t, types.Int(2), snap["y"].Get())
}
