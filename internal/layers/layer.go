// Package layers holds the minimal visual-layer identity that pick resolution
// tags results with. The full layer system (draw ordering, layer lists) lives
// with the renderer; picking only needs a stable reference plus a couple of
// flags.
package layers

import "globeview/internal/attr"

// Layer identifies an owning visual layer for rendered and picked objects.
type Layer struct {
	attr.List

	name     string
	enabled  bool
	pickable bool
}

// New returns an enabled, pickable layer with the given display name.
func New(name string) *Layer {
	return &Layer{name: name, enabled: true, pickable: true}
}

func (l *Layer) Name() string { return l.name }

func (l *Layer) IsEnabled() bool     { return l.enabled }
func (l *Layer) SetEnabled(on bool)  { l.enabled = on }
func (l *Layer) IsPickable() bool    { return l.pickable }
func (l *Layer) SetPickable(on bool) { l.pickable = on }
