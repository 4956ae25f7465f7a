package pick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globeview/internal/geom"
	"globeview/internal/pick"
)

func TestTopPrefersOnTopMark(t *testing.T) {
	a := pick.NewObject(1, &thing{"a"})
	b := pick.NewObject(2, &thing{"b"})
	c := pick.NewObject(3, &thing{"c"})
	b.SetOnTop(true)

	var l pick.ObjectList
	l.Add(a)
	l.Add(b)
	l.Add(c)

	assert.Same(t, b, l.Top())
}

func TestTopFallsBackToInsertionOrder(t *testing.T) {
	a := pick.NewObject(1, &thing{"a"})
	b := pick.NewObject(2, &thing{"b"})

	var l pick.ObjectList
	l.Add(a)
	l.Add(b)

	assert.Same(t, a, l.Top(), "nothing marked on top: first inserted wins")
}

func TestTopEmptyList(t *testing.T) {
	var l pick.ObjectList
	assert.Nil(t, l.Top())
	assert.Nil(t, l.Terrain())
	assert.Nil(t, l.MostRecent())
}

func TestTerrainAndMostRecent(t *testing.T) {
	ground := pick.NewTerrainObject(1, &thing{"ground"}, geom.NewPosition(45, 7, 0))
	mark := pick.NewObject(2, &thing{"mark"})

	var l pick.ObjectList
	l.Add(mark)
	l.Add(ground)

	require.NotNil(t, l.Terrain())
	assert.Same(t, ground, l.Terrain())
	assert.Same(t, ground, l.MostRecent())
}

func TestAllTop(t *testing.T) {
	a := pick.NewObject(1, &thing{"a"})
	b := pick.NewObject(2, &thing{"b"})
	c := pick.NewObject(3, &thing{"c"})
	a.SetOnTop(true)
	c.SetOnTop(true)

	var l pick.ObjectList
	l.Add(a)
	l.Add(b)
	l.Add(c)

	tops := l.AllTop()
	require.Len(t, tops, 2)
	assert.Same(t, a, tops[0])
	assert.Same(t, c, tops[1])

	values := l.AllTopValues()
	require.Len(t, values, 2)
	assert.Same(t, a.Value().(*thing), values[0].(*thing))
}

func TestAllTopNilWhenNoneMarked(t *testing.T) {
	var l pick.ObjectList
	l.Add(pick.NewObject(1, &thing{"a"}))

	assert.Nil(t, l.AllTop(), "no marks means nil, not an empty slice of hits")
	assert.Nil(t, l.AllTopValues())
}

func TestHasNonTerrainObjects(t *testing.T) {
	ground := pick.NewTerrainObject(1, &thing{"ground"}, geom.Position{})
	mark := pick.NewObject(2, &thing{"mark"})

	var empty pick.ObjectList
	assert.False(t, empty.HasNonTerrainObjects())

	var terrainOnly pick.ObjectList
	terrainOnly.Add(ground)
	assert.False(t, terrainOnly.HasNonTerrainObjects())

	var mixed pick.ObjectList
	mixed.Add(ground)
	mixed.Add(mark)
	assert.True(t, mixed.HasNonTerrainObjects())

	var marksOnly pick.ObjectList
	marksOnly.Add(mark)
	assert.True(t, marksOnly.HasNonTerrainObjects())

	var twoMarks pick.ObjectList
	twoMarks.Add(mark)
	twoMarks.Add(pick.NewObject(3, &thing{"m2"}))
	assert.True(t, twoMarks.HasNonTerrainObjects())
}

func TestListClear(t *testing.T) {
	var l pick.ObjectList
	l.Add(pick.NewObject(1, &thing{}))
	l.Add(nil) // dropped
	require.Equal(t, 1, l.Len())

	l.Clear()
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Top())
}
