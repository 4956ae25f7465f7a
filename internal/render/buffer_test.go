package render_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globeview/internal/pick"
	"globeview/internal/render"
)

type probe struct{}

func TestPackUnpackRGB(t *testing.T) {
	code := render.PackRGB(0x12, 0x34, 0x56)
	assert.Equal(t, 0x123456, code)

	r, g, b := render.UnpackRGB(code)
	assert.Equal(t, uint8(0x12), r)
	assert.Equal(t, uint8(0x34), g)
	assert.Equal(t, uint8(0x56), b)

	assert.Equal(t, 0, render.PackRGB(0, 0, 0), "black is the background code")
}

func TestImageBufferColorAt(t *testing.T) {
	buf := render.NewImageBuffer(16, 16)
	assert.Equal(t, 0, buf.ColorAt(image.Pt(4, 4)), "cleared buffer is background")

	buf.SetCode(image.Pt(4, 4), 0xABCDEF)
	assert.Equal(t, 0xABCDEF, buf.ColorAt(image.Pt(4, 4)))
	assert.Equal(t, 0, buf.ColorAt(image.Pt(5, 4)))

	assert.Equal(t, 0, buf.ColorAt(image.Pt(-1, 0)), "out of bounds is background")
	assert.Equal(t, 0, buf.ColorAt(image.Pt(16, 16)))

	buf.SetCode(image.Pt(99, 99), 7) // dropped, no panic
}

func TestImageBufferFillCode(t *testing.T) {
	buf := render.NewImageBuffer(8, 8)
	buf.FillCode(image.Rect(2, 2, 5, 5), 42)

	assert.Equal(t, 42, buf.ColorAt(image.Pt(2, 2)))
	assert.Equal(t, 42, buf.ColorAt(image.Pt(4, 4)))
	assert.Equal(t, 0, buf.ColorAt(image.Pt(5, 5)), "max edge is exclusive")

	// Fills clip to the buffer.
	buf.FillCode(image.Rect(6, 6, 20, 20), 9)
	assert.Equal(t, 9, buf.ColorAt(image.Pt(7, 7)))
}

func TestDistinctColorsIn(t *testing.T) {
	buf := render.NewImageBuffer(32, 32)
	buf.FillCode(image.Rect(0, 0, 8, 8), 3)
	buf.FillCode(image.Rect(8, 0, 16, 8), 5)
	buf.SetCode(image.Pt(20, 20), 1000)

	codes := buf.DistinctColorsIn(image.Rect(0, 0, 32, 32), nil)
	assert.Equal(t, []int{3, 5, 1000}, codes)

	codes = buf.DistinctColorsIn(image.Rect(0, 0, 8, 8), nil)
	assert.Equal(t, []int{3}, codes)

	assert.Nil(t, buf.DistinctColorsIn(image.Rect(24, 24, 30, 30), nil), "background only")
	assert.Nil(t, buf.DistinctColorsIn(image.Rect(40, 40, 50, 50), nil), "off buffer")
}

func TestDistinctColorsInHint(t *testing.T) {
	buf := render.NewImageBuffer(16, 16)
	buf.FillCode(image.Rect(0, 0, 4, 4), 3)
	buf.FillCode(image.Rect(4, 0, 8, 4), 5)
	buf.FillCode(image.Rect(8, 0, 12, 4), 900)

	hint := &pick.CodeSpan{Min: 3, Max: 5}
	codes := buf.DistinctColorsIn(image.Rect(0, 0, 16, 16), hint)
	assert.Equal(t, []int{3, 5}, codes, "codes outside the span are skipped while scanning")
}

func TestContextResultLists(t *testing.T) {
	buf := render.NewImageBuffer(8, 8)
	buf.SetCode(image.Pt(1, 1), 6)
	dc := render.NewContext(buf)

	assert.Equal(t, 6, dc.PickColorAt(image.Pt(1, 1)))
	assert.Equal(t, 0, dc.PickColorAt(image.Pt(0, 0)))

	po := pick.NewObject(6, &probe{})
	dc.AddPickedObject(po)
	dc.AddObjectInPickRectangle(po)
	assert.Equal(t, 1, dc.PickedObjects().Len())
	assert.Equal(t, 1, dc.ObjectsInPickRectangle().Len())

	dc.ResetFrame()
	assert.Zero(t, dc.PickedObjects().Len())
	assert.Zero(t, dc.ObjectsInPickRectangle().Len())
}

func TestContextPickPointAndRectangle(t *testing.T) {
	dc := render.NewContext(render.NewImageBuffer(8, 8))

	_, ok := dc.PickPoint()
	assert.False(t, ok)
	_, ok = dc.PickRectangle()
	assert.False(t, ok)

	p := image.Pt(3, 4)
	dc.SetPickPoint(&p)
	got, ok := dc.PickPoint()
	require.True(t, ok)
	assert.Equal(t, p, got)

	empty := image.Rectangle{}
	dc.SetPickRectangle(&empty)
	_, ok = dc.PickRectangle()
	assert.False(t, ok, "empty rectangle counts as unset")

	r := image.Rect(0, 0, 4, 4)
	dc.SetPickRectangle(&r)
	gotR, ok := dc.PickRectangle()
	require.True(t, ok)
	assert.Equal(t, r, gotR)
}

func TestUniquePickColor(t *testing.T) {
	dc := render.NewContext(nil)

	first := dc.UniquePickColor()
	second := dc.UniquePickColor()
	assert.Equal(t, 1, first, "0 stays reserved for the clear color")
	assert.Equal(t, 2, second)

	dc.ResetFrame()
	assert.Equal(t, 1, dc.UniquePickColor(), "reset restarts the sequence")
}

func TestNilBufferReadsAsBackground(t *testing.T) {
	dc := render.NewContext(nil)
	assert.Equal(t, 0, dc.PickColorAt(image.Pt(1, 1)))
	assert.Nil(t, dc.PickColorsIn(image.Rect(0, 0, 4, 4), nil))
}
