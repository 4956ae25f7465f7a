// Package attr provides the string-keyed property bag attached to picked
// objects, layers, and other scene entities. Values are arbitrary; callers
// agree on keys by convention. Each bag carries its own optional change
// listeners; there is no global registry.
package attr

import "sort"

// ChangeEvent describes a single property mutation.
type ChangeEvent struct {
	Key string
	Old any
	New any
}

// ChangeListener receives property change notifications.
type ChangeListener func(ChangeEvent)

// List is an extensible string-keyed property bag. The zero value is ready to
// use. Not safe for concurrent mutation.
type List struct {
	values    map[string]any
	listeners []listenerEntry
	nextID    int
}

type listenerEntry struct {
	id int
	fn ChangeListener
}

// Get returns the value stored under key, and whether it was present.
func (l *List) Get(key string) (any, bool) {
	v, ok := l.values[key]
	return v, ok
}

// Has reports whether key is present.
func (l *List) Has(key string) bool {
	_, ok := l.values[key]
	return ok
}

// Set stores value under key, returning the previous value (nil if none).
// Listeners are notified of the change.
func (l *List) Set(key string, value any) any {
	if l.values == nil {
		l.values = make(map[string]any)
	}
	old := l.values[key]
	l.values[key] = value
	l.fire(ChangeEvent{Key: key, Old: old, New: value})
	return old
}

// SetValues copies every entry of other into this list.
func (l *List) SetValues(other *List) {
	if other == nil {
		return
	}
	for k, v := range other.values {
		l.Set(k, v)
	}
}

// Remove deletes key, returning the removed value (nil if absent).
func (l *List) Remove(key string) any {
	old, ok := l.values[key]
	if !ok {
		return nil
	}
	delete(l.values, key)
	l.fire(ChangeEvent{Key: key, Old: old, New: nil})
	return old
}

// Keys returns all present keys in sorted order.
func (l *List) Keys() []string {
	if len(l.values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(l.values))
	for k := range l.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored entries.
func (l *List) Len() int { return len(l.values) }

// Copy returns a shallow copy of the values. Listeners are not copied.
func (l *List) Copy() *List {
	out := &List{}
	if len(l.values) > 0 {
		out.values = make(map[string]any, len(l.values))
		for k, v := range l.values {
			out.values[k] = v
		}
	}
	return out
}

// AddChangeListener registers fn for change notifications and returns a
// function that unregisters it.
func (l *List) AddChangeListener(fn ChangeListener) (remove func()) {
	l.nextID++
	id := l.nextID
	l.listeners = append(l.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, e := range l.listeners {
			if e.id == id {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

func (l *List) fire(ev ChangeEvent) {
	for _, e := range l.listeners {
		e.fn(ev)
	}
}
