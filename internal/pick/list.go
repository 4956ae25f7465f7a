package pick

// ObjectList is the insertion-ordered collection of picked objects resolved
// for one frame or one query. Append-only during resolution; the caller is
// responsible for appending in rendering/intersection priority order, which
// is what makes insertion order a meaningful tie-break in Top.
type ObjectList struct {
	items []*Object
}

// Add appends a picked object.
func (l *ObjectList) Add(po *Object) {
	if po == nil {
		return
	}
	l.items = append(l.items, po)
}

// Len returns the number of entries.
func (l *ObjectList) Len() int { return len(l.items) }

// At returns the i-th entry in insertion order.
func (l *ObjectList) At(i int) *Object { return l.items[i] }

// Objects returns the underlying entries in insertion order.
func (l *ObjectList) Objects() []*Object { return l.items }

// Clear removes all entries.
func (l *ObjectList) Clear() { l.items = nil }

// Top returns the foremost picked object: the first entry marked on-top, or
// when nothing is marked, the first entry inserted. Nil when the list is
// empty. The on-top mark is an explicit override from a caller that has depth
// information the registry lacks.
func (l *ObjectList) Top() *Object {
	for _, po := range l.items {
		if po.IsOnTop() {
			return po
		}
	}
	if len(l.items) > 0 {
		return l.items[0]
	}
	return nil
}

// Terrain returns the first entry flagged as terrain, or nil.
func (l *ObjectList) Terrain() *Object {
	for _, po := range l.items {
		if po.IsTerrain() {
			return po
		}
	}
	return nil
}

// MostRecent returns the last entry inserted, or nil.
func (l *ObjectList) MostRecent() *Object {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[len(l.items)-1]
}

// AllTop returns every entry marked on-top in insertion order, or nil when
// none is marked. Callers distinguishing "nothing marked" from "empty list"
// must check Len first.
func (l *ObjectList) AllTop() []*Object {
	var out []*Object
	for _, po := range l.items {
		if po.IsOnTop() {
			out = append(out, po)
		}
	}
	return out
}

// AllTopValues returns the referenced values of every on-top entry in
// insertion order, or nil when none is marked.
func (l *ObjectList) AllTopValues() []any {
	var out []any
	for _, po := range l.items {
		if po.IsOnTop() {
			out = append(out, po.Value())
		}
	}
	return out
}

// HasNonTerrainObjects reports whether anything besides terrain was hit:
// true for more than one entry, or for a single entry that is not terrain.
func (l *ObjectList) HasNonTerrainObjects() bool {
	return len(l.items) > 1 || (len(l.items) == 1 && !l.items[0].IsTerrain())
}
