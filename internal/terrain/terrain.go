// Package terrain models the pickable ground surface as an elevation grid
// over a geographic sector. The grid registers one contiguous pick color
// range for all of its cells; individual terrain picks are built lazily by
// the range factory only when a matching color is actually read back.
package terrain

import (
	"fmt"

	"globeview/internal/geom"
	"globeview/internal/pick"
)

// Sector is a latitude/longitude bounding box in degrees.
type Sector struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Contains reports whether the position lies inside the sector.
func (s Sector) Contains(p geom.Position) bool {
	return p.Lat >= s.MinLat && p.Lat <= s.MaxLat && p.Lon >= s.MinLon && p.Lon <= s.MaxLon
}

// Model is a rows x cols elevation grid spanning a sector. Each cell is one
// pickable terrain sample.
type Model struct {
	sector     Sector
	rows, cols int
	elevations []float64
}

// NewModel returns a flat (zero-elevation) grid over sector.
func NewModel(sector Sector, rows, cols int) (*Model, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("terrain: grid %dx%d must be at least 1x1", rows, cols)
	}
	if sector.MinLat >= sector.MaxLat || sector.MinLon >= sector.MaxLon {
		return nil, fmt.Errorf("terrain: degenerate sector %+v", sector)
	}
	return &Model{
		sector:     sector,
		rows:       rows,
		cols:       cols,
		elevations: make([]float64, rows*cols),
	}, nil
}

// Rows returns the grid row count.
func (m *Model) Rows() int { return m.rows }

// Cols returns the grid column count.
func (m *Model) Cols() int { return m.cols }

// Sector returns the sector the grid spans.
func (m *Model) Sector() Sector { return m.sector }

// CellCount returns the number of pickable cells, which is also the size of
// the pick color range the model registers.
func (m *Model) CellCount() int { return m.rows * m.cols }

// SetElevation sets the elevation in meters at a grid cell.
func (m *Model) SetElevation(row, col int, meters float64) {
	m.elevations[row*m.cols+col] = meters
}

// Elevation returns the elevation in meters at a grid cell.
func (m *Model) Elevation(row, col int) float64 {
	return m.elevations[row*m.cols+col]
}

// PositionAt returns the geographic position of a cell center, including its
// elevation.
func (m *Model) PositionAt(row, col int) geom.Position {
	latStep := (m.sector.MaxLat - m.sector.MinLat) / float64(m.rows)
	lonStep := (m.sector.MaxLon - m.sector.MinLon) / float64(m.cols)
	return geom.NewPosition(
		m.sector.MinLat+(float64(row)+0.5)*latStep,
		m.sector.MinLon+(float64(col)+0.5)*lonStep,
		m.Elevation(row, col),
	)
}

// CellCode returns the pick color code a cell draws with, given the first
// code of the model's registered range. The draw pass and the factory must
// agree on this mapping.
func (m *Model) CellCode(firstCode, row, col int) int {
	return firstCode + row*m.cols + col
}

// RegisterPick registers the model's cells with the registry as a single
// contiguous code range starting at firstCode. The factory maps a code back
// to its cell and produces a terrain pick carrying the cell-center position.
// The model itself is the referenced value, so repeated resolutions of the
// same code compare equal.
func (m *Model) RegisterPick(reg *pick.Registry, firstCode int) {
	reg.AddObjectRange(firstCode, m.CellCount(), pick.FactoryFunc(func(code int) *pick.Object {
		idx := code - firstCode
		row, col := idx/m.cols, idx%m.cols
		return pick.NewTerrainObject(code, m, m.PositionAt(row, col))
	}))
}
