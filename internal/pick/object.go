// Package pick maps the color codes written during an offscreen pick pass
// back to the logical scene objects they encode. Renderables register
// themselves (or a whole code range with a deferred factory) while drawing;
// after the pass the registry reads pixel colors through the draw context and
// resolves them into picked objects.
package pick

import (
	"globeview/internal/attr"
	"globeview/internal/geom"
	"globeview/internal/layers"
)

// Object is one resolved pick: the color code, the logical object it encodes,
// and pick metadata. The referenced value is compared by identity and never
// cloned, so it should be a pointer or another comparable reference type.
//
// An Object is owned by the ObjectList it is appended to and is discarded at
// the end of the frame together with the registry's tables.
type Object struct {
	attr.List

	code      int
	value     any
	position  geom.Position
	hasPos    bool
	isTerrain bool
	onTop     bool
	layer     *layers.Layer
}

// NewObject returns a picked object for code referencing value.
func NewObject(code int, value any) *Object {
	return &Object{code: code, value: value}
}

// NewObjectAt returns a picked object carrying a geographic position.
func NewObjectAt(code int, value any, pos geom.Position) *Object {
	return &Object{code: code, value: value, position: pos, hasPos: true}
}

// NewTerrainObject returns a picked object flagged as terrain.
func NewTerrainObject(code int, value any, pos geom.Position) *Object {
	return &Object{code: code, value: value, position: pos, hasPos: true, isTerrain: true}
}

// Code returns the pick color code. Immutable after construction.
func (o *Object) Code() int { return o.code }

// Value returns the logical object this pick refers to.
func (o *Object) Value() any { return o.value }

// Position returns the geographic position, if one was recorded.
func (o *Object) Position() (geom.Position, bool) {
	return o.position, o.hasPos
}

// IsTerrain reports whether this pick represents the ground surface rather
// than an overlay object.
func (o *Object) IsTerrain() bool { return o.isTerrain }

// IsOnTop reports whether a caller with depth information has marked this
// object as the foremost hit.
func (o *Object) IsOnTop() bool { return o.onTop }

// SetOnTop marks or unmarks this object as the foremost hit. Set by the
// resolver or scene controller after construction; the registry never sets it.
func (o *Object) SetOnTop(onTop bool) { o.onTop = onTop }

// Layer returns the visual layer this pick was resolved under, or nil.
func (o *Object) Layer() *layers.Layer { return o.layer }

// SetLayer records the owning visual layer.
func (o *Object) SetLayer(l *layers.Layer) { o.layer = l }

// Equal reports whether two picked objects denote the same selection: same
// color code, same referenced value (by identity), and same on-top state.
// Position and the terrain flag deliberately do not participate.
func (o *Object) Equal(other *Object) bool {
	if other == nil {
		return false
	}
	return o.code == other.code && o.value == other.value && o.onTop == other.onTop
}

// ObjectFactory defers picked-object construction until a matching pick color
// is actually identified. A renderable drawing many candidates registers one
// code range with a factory instead of materializing an Object per candidate.
type ObjectFactory interface {
	PickedObject(code int) *Object
}

// FactoryFunc adapts a function to the ObjectFactory interface.
type FactoryFunc func(code int) *Object

func (f FactoryFunc) PickedObject(code int) *Object { return f(code) }
