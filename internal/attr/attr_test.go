package attr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globeview/internal/attr"
)

func TestZeroValueUsable(t *testing.T) {
	var l attr.List
	_, ok := l.Get("missing")
	assert.False(t, ok)
	assert.False(t, l.Has("missing"))
	assert.Nil(t, l.Keys())
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Remove("missing"))
}

func TestSetGetRemove(t *testing.T) {
	var l attr.List

	old := l.Set("name", "ridge")
	assert.Nil(t, old)
	assert.True(t, l.Has("name"))

	old = l.Set("name", "summit")
	assert.Equal(t, "ridge", old)

	v, ok := l.Get("name")
	require.True(t, ok)
	assert.Equal(t, "summit", v)

	removed := l.Remove("name")
	assert.Equal(t, "summit", removed)
	assert.False(t, l.Has("name"))
}

func TestKeysSorted(t *testing.T) {
	var l attr.List
	l.Set("b", 2)
	l.Set("a", 1)
	l.Set("c", 3)
	assert.Equal(t, []string{"a", "b", "c"}, l.Keys())
}

func TestSetValuesAndCopy(t *testing.T) {
	var src attr.List
	src.Set("a", 1)
	src.Set("b", 2)

	var dst attr.List
	dst.Set("b", 99)
	dst.SetValues(&src)

	v, _ := dst.Get("a")
	assert.Equal(t, 1, v)
	v, _ = dst.Get("b")
	assert.Equal(t, 2, v, "incoming values overwrite")

	cp := src.Copy()
	cp.Set("a", 42)
	v, _ = src.Get("a")
	assert.Equal(t, 1, v, "copy must not alias the source")

	dst.SetValues(nil) // no-op
	assert.Equal(t, 2, dst.Len())
}

func TestChangeListeners(t *testing.T) {
	var l attr.List
	var events []attr.ChangeEvent
	remove := l.AddChangeListener(func(ev attr.ChangeEvent) { events = append(events, ev) })

	l.Set("k", 1)
	l.Set("k", 2)
	l.Remove("k")

	require.Len(t, events, 3)
	assert.Equal(t, attr.ChangeEvent{Key: "k", Old: nil, New: 1}, events[0])
	assert.Equal(t, attr.ChangeEvent{Key: "k", Old: 1, New: 2}, events[1])
	assert.Equal(t, attr.ChangeEvent{Key: "k", Old: 2, New: nil}, events[2])

	remove()
	l.Set("k", 3)
	assert.Len(t, events, 3, "removed listener hears nothing")
}

func TestMultipleListeners(t *testing.T) {
	var l attr.List
	var first, second int
	removeFirst := l.AddChangeListener(func(attr.ChangeEvent) { first++ })
	l.AddChangeListener(func(attr.ChangeEvent) { second++ })

	l.Set("k", 1)
	removeFirst()
	l.Set("k", 2)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}
