package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globeview/internal/pick"
	"globeview/internal/terrain"
)

func alpsModel(t *testing.T) *terrain.Model {
	t.Helper()
	m, err := terrain.NewModel(terrain.Sector{MinLat: 44, MaxLat: 46, MinLon: 6, MaxLon: 8}, 4, 5)
	require.NoError(t, err)
	return m
}

func TestNewModelValidation(t *testing.T) {
	sector := terrain.Sector{MinLat: 44, MaxLat: 46, MinLon: 6, MaxLon: 8}

	_, err := terrain.NewModel(sector, 0, 5)
	assert.Error(t, err)
	_, err = terrain.NewModel(sector, 4, 0)
	assert.Error(t, err)
	_, err = terrain.NewModel(terrain.Sector{MinLat: 46, MaxLat: 44, MinLon: 6, MaxLon: 8}, 4, 5)
	assert.Error(t, err)
}

func TestPositionAtCellCenters(t *testing.T) {
	m := alpsModel(t)
	m.SetElevation(0, 0, 1500)

	p := m.PositionAt(0, 0)
	assert.InDelta(t, 44.25, p.Lat, 1e-9)
	assert.InDelta(t, 6.2, p.Lon, 1e-9)
	assert.InDelta(t, 1500, p.Elevation, 1e-9)

	p = m.PositionAt(3, 4)
	assert.InDelta(t, 45.75, p.Lat, 1e-9)
	assert.InDelta(t, 7.8, p.Lon, 1e-9)

	assert.True(t, m.Sector().Contains(p))
}

func TestCellCode(t *testing.T) {
	m := alpsModel(t)
	assert.Equal(t, 100, m.CellCode(100, 0, 0))
	assert.Equal(t, 104, m.CellCode(100, 0, 4))
	assert.Equal(t, 105, m.CellCode(100, 1, 0), "codes advance row-major")
	assert.Equal(t, 100+m.CellCount()-1, m.CellCode(100, 3, 4))
}

func TestRegisterPick(t *testing.T) {
	m := alpsModel(t)
	m.SetElevation(2, 3, 2200)

	reg := pick.NewRegistry()
	m.RegisterPick(reg, 100)

	require.True(t, reg.HasRegistrations())
	require.NotNil(t, reg.Span())
	assert.Equal(t, pick.CodeSpan{Min: 100, Max: 100 + m.CellCount() - 1}, *reg.Span())

	po := reg.Lookup(m.CellCode(100, 2, 3))
	require.NotNil(t, po, "factory builds the cell pick lazily")
	assert.True(t, po.IsTerrain())

	pos, ok := po.Position()
	require.True(t, ok)
	assert.Equal(t, m.PositionAt(2, 3), pos)
	assert.InDelta(t, 2200, pos.Elevation, 1e-9)

	// Repeated lookups reference the same model, so they compare equal.
	again := reg.Lookup(m.CellCode(100, 2, 3))
	assert.True(t, po.Equal(again))

	assert.Nil(t, reg.Lookup(100+m.CellCount()), "one past the grid range")
}
