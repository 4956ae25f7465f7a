package render

import (
	"image"
	"log/slog"

	"globeview/internal/pick"
)

// Context is the per-frame draw context handed to pick resolution. It owns
// the frame's pick point and rectangle, the result lists the registry appends
// to, and the unique pick color cursor renderables draw with.
//
// One Context per rendering thread; it is not safe for concurrent use.
type Context struct {
	buffer PickBuffer

	pickPoint    *image.Point
	pickRect     *image.Rectangle
	pickedAtPt   pick.ObjectList
	pickedInRect pick.ObjectList

	nextCode    int
	deepPicking bool
}

// NewContext returns a draw context reading pick colors from buf.
func NewContext(buf PickBuffer) *Context {
	return &Context{buffer: buf, nextCode: 1}
}

// SetPickPoint sets the screen point to resolve this frame, or clears it with nil.
func (c *Context) SetPickPoint(p *image.Point) { c.pickPoint = p }

// PickPoint returns the frame's pick point, if one is set.
func (c *Context) PickPoint() (image.Point, bool) {
	if c.pickPoint == nil {
		return image.Point{}, false
	}
	return *c.pickPoint, true
}

// SetPickRectangle sets the screen rectangle to resolve this frame, or clears
// it with nil.
func (c *Context) SetPickRectangle(r *image.Rectangle) { c.pickRect = r }

// PickRectangle returns the frame's pick rectangle, if one is set and non-empty.
func (c *Context) PickRectangle() (image.Rectangle, bool) {
	if c.pickRect == nil || c.pickRect.Empty() {
		return image.Rectangle{}, false
	}
	return *c.pickRect, true
}

// IsDeepPicking reports whether every object under the cursor should be
// surfaced rather than only the foremost one.
func (c *Context) IsDeepPicking() bool { return c.deepPicking }

// SetDeepPicking toggles deep picking for this frame.
func (c *Context) SetDeepPicking(on bool) { c.deepPicking = on }

// PickColorAt returns the pick color code at p, 0 for background.
func (c *Context) PickColorAt(p image.Point) int {
	if c.buffer == nil {
		return 0
	}
	return c.buffer.ColorAt(p)
}

// PickColorsIn returns the distinct non-zero pick color codes inside r.
func (c *Context) PickColorsIn(r image.Rectangle, hint *pick.CodeSpan) []int {
	if c.buffer == nil {
		return nil
	}
	return c.buffer.DistinctColorsIn(r, hint)
}

// AddPickedObject appends a pick resolved at the pick point.
func (c *Context) AddPickedObject(po *pick.Object) { c.pickedAtPt.Add(po) }

// AddObjectInPickRectangle appends a pick resolved inside the pick rectangle.
func (c *Context) AddObjectInPickRectangle(po *pick.Object) { c.pickedInRect.Add(po) }

// PickedObjects returns the frame's objects resolved at the pick point.
func (c *Context) PickedObjects() *pick.ObjectList { return &c.pickedAtPt }

// ObjectsInPickRectangle returns the frame's objects resolved inside the pick
// rectangle.
func (c *Context) ObjectsInPickRectangle() *pick.ObjectList { return &c.pickedInRect }

// UniquePickColor returns the next free pick color code and advances the
// cursor. Code 0 stays reserved for the clear color. Exhausting all 2^24
// codes in one frame wraps the cursor and logs; reused codes then resolve to
// the most recent registration.
func (c *Context) UniquePickColor() int {
	code := c.nextCode
	if code > maxPickCode {
		slog.Warn("pick color space exhausted, wrapping", "frame_codes", maxPickCode)
		c.nextCode = 1
		code = 1
	}
	c.nextCode = code + 1
	return code
}

// ResetFrame clears the result lists and the pick color cursor for the next
// frame. The registry is cleared separately by its own Clear.
func (c *Context) ResetFrame() {
	c.pickedAtPt.Clear()
	c.pickedInRect.Clear()
	c.nextCode = 1
}
