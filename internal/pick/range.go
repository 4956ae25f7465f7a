package pick

// CodeRange is a half-open interval of pick color codes: it covers the Count
// sequential codes starting at Origin. Immutable once built; a range lives
// only for the frame it was registered in.
type CodeRange struct {
	Origin int
	Count  int
}

// Contains reports whether code falls inside the range.
func (r CodeRange) Contains(code int) bool {
	return code >= r.Origin && code < r.Origin+r.Count
}

// CodeSpan is an inclusive [Min, Max] bound over registered pick color codes.
// The registry maintains the tightest span covering every code registered
// since the last clear, and passes it to the draw context as a scan hint.
type CodeSpan struct {
	Min int
	Max int
}

// widen grows the span to include code.
func (s *CodeSpan) widen(code int) {
	if code < s.Min {
		s.Min = code
	}
	if code > s.Max {
		s.Max = code
	}
}
