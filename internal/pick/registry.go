package pick

import (
	"fmt"
	"image"

	"globeview/internal/geom"
	"globeview/internal/layers"
	"globeview/internal/profiling"
)

// DrawContext is what the registry needs from the renderer after the
// color-coded offscreen pass: pixel color reads and the per-frame result
// lists. A color of 0 always means background/clear — nothing drawn there.
type DrawContext interface {
	// PickColorAt returns the pick color code at a screen point, 0 for
	// background or out-of-bounds.
	PickColorAt(p image.Point) int

	// PickColorsIn returns the distinct non-zero color codes drawn inside the
	// rectangle. hint, when non-nil, bounds every registered code and may be
	// used to skip colors that cannot resolve; it is a scan optimization, not
	// a semantic filter.
	PickColorsIn(r image.Rectangle, hint *CodeSpan) []int

	// PickRectangle returns the frame's pick rectangle, if one is set.
	PickRectangle() (image.Rectangle, bool)

	// AddPickedObject appends a resolved pick to the frame's list of objects
	// at the pick point.
	AddPickedObject(po *Object)

	// AddObjectInPickRectangle appends a resolved pick to the frame's list of
	// objects intersecting the pick rectangle.
	AddObjectInPickRectangle(po *Object)
}

// Registry maps the pick color codes written during one frame's pick pass
// back to picked objects. Objects register either eagerly (code → Object) or
// as a contiguous code range with a factory that builds the Object only if a
// matching color is actually read back.
//
// A registry belongs to a single rendering thread and a single frame: fill it
// during the pick pass, resolve once the pass completes, then Clear. Stale
// registrations carried across frames would mis-resolve any reused code.
type Registry struct {
	objects map[int]*Object
	ranges  []rangeEntry
	span    *CodeSpan
}

type rangeEntry struct {
	codes   CodeRange
	factory ObjectFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{objects: make(map[int]*Object)}
}

// Add registers an already-built picked object under its own color code.
// A later registration at the same code replaces the earlier one.
func (r *Registry) Add(po *Object) {
	if po == nil {
		return
	}
	r.objects[po.Code()] = po
	r.widen(po.Code())
}

// AddObject registers value under code.
func (r *Registry) AddObject(code int, value any) {
	r.Add(NewObject(code, value))
}

// AddObjectAt registers value under code with a geographic position.
func (r *Registry) AddObjectAt(code int, value any, pos geom.Position) {
	r.Add(NewObjectAt(code, value, pos))
}

// AddTerrainObject registers value under code as a terrain pick.
func (r *Registry) AddTerrainObject(code int, value any, pos geom.Position) {
	r.Add(NewTerrainObject(code, value, pos))
}

// AddObjectRange associates the count sequential codes starting at origin
// with a factory. Object construction is deferred until Lookup matches a code
// in the range, which avoids materializing large candidate sets that are
// rarely hit. Panics on count < 1 or a nil factory: both are programming
// errors, not runtime conditions.
func (r *Registry) AddObjectRange(origin, count int, factory ObjectFactory) {
	if count < 1 {
		panic(fmt.Sprintf("pick: AddObjectRange count %d < 1", count))
	}
	if factory == nil {
		panic("pick: AddObjectRange nil factory")
	}
	r.ranges = append(r.ranges, rangeEntry{codes: CodeRange{Origin: origin, Count: count}, factory: factory})
	r.widen(origin)
	r.widen(origin + count - 1) // max code is the last element of the sequence
}

// HasRegistrations reports whether anything is registered. Resolution checks
// this before touching the framebuffer; the read there is the expensive step
// of the hot path and is skipped entirely when nothing is pickable.
func (r *Registry) HasRegistrations() bool {
	return len(r.objects) > 0 || len(r.ranges) > 0
}

// Span returns the tightest [min, max] bound covering every registered code,
// or nil when nothing has been registered since the last Clear.
func (r *Registry) Span() *CodeSpan { return r.span }

// Clear drops all registrations and resets the code span. Call exactly once
// per frame after resolution.
func (r *Registry) Clear() {
	clear(r.objects)
	r.ranges = nil
	r.span = nil
}

// Lookup resolves a color code to a picked object: the direct registration if
// one exists, otherwise the factory of the first registered range containing
// the code. Code 0 is reserved for the background and never resolves. Returns
// nil when nothing matches.
//
// When ranges overlap, which one produces the object depends on scan order;
// single-frame registrations are cheap to redo, so this stays permissive
// rather than imposing a priority rule.
func (r *Registry) Lookup(code int) *Object {
	if code == 0 {
		return nil
	}
	if po, ok := r.objects[code]; ok {
		return po
	}
	for _, e := range r.ranges {
		if e.codes.Contains(code) {
			return e.factory.PickedObject(code)
		}
	}
	return nil
}

// ResolveAtPoint resolves the pick at a single screen point: reads the pixel
// color through dc, looks it up, tags the result with layer (when non-nil),
// and appends it to dc's picked-object list. Returns nil when nothing
// pickable is drawn at the point.
//
// For a fixed framebuffer and fixed registrations the result is value-equal
// across calls; a range factory may produce a fresh instance each time.
func (r *Registry) ResolveAtPoint(dc DrawContext, p image.Point, layer *layers.Layer) *Object {
	if !r.HasRegistrations() {
		return nil
	}

	code := dc.PickColorAt(p)
	if code == 0 { // clear color: nothing drawn at the point
		return nil
	}

	po := r.Lookup(code)
	if po == nil {
		return nil
	}

	if layer != nil {
		po.SetLayer(layer)
	}
	dc.AddPickedObject(po)
	return po
}

// ResolveInRectangle resolves every registered object drawn inside rect,
// appending each to dc's objects-in-rectangle list. The registry's code span
// is passed to dc as a scan hint. Unlike point resolution this can append
// many objects and names no "top" one; top-object semantics belong to the
// result list.
func (r *Registry) ResolveInRectangle(dc DrawContext, rect image.Rectangle, layer *layers.Layer) {
	if !r.HasRegistrations() || rect.Empty() {
		return
	}
	defer profiling.Track("pick.ResolveInRectangle")()

	for _, code := range dc.PickColorsIn(rect, r.span) {
		if code == 0 { // defensive: the draw context should never report 0
			continue
		}

		po := r.Lookup(code)
		if po == nil {
			continue
		}

		if layer != nil {
			po.SetLayer(layer)
		}
		dc.AddObjectInPickRectangle(po)
	}
}

// Resolve resolves the pick point (when non-nil) and then dc's pick rectangle
// (when set), clears the registry, and returns the object at the point, if
// any. This is the once-per-frame entry point for renderables that both
// registered and drew this frame.
func (r *Registry) Resolve(dc DrawContext, p *image.Point, layer *layers.Layer) *Object {
	if !r.HasRegistrations() {
		return nil
	}

	var po *Object
	if p != nil {
		po = r.ResolveAtPoint(dc, *p, layer)
	}

	if rect, ok := dc.PickRectangle(); ok {
		r.ResolveInRectangle(dc, rect, layer)
	}

	r.Clear()
	return po
}

// SameSelection reports whether two picks refer to the same logical object.
func SameSelection(a, b *Object) bool {
	return a != nil && b != nil && a.Value() == b.Value()
}

func (r *Registry) widen(code int) {
	if r.span == nil {
		r.span = &CodeSpan{Min: code, Max: code}
		return
	}
	r.span.widen(code)
}
