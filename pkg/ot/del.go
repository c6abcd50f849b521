package ot

// DelElement is a single atom of a delete-span: a closed sum type over the
// four deletion primitives described in spec.md §3.
type DelElement interface {
	delElement()
}

// DelSkip advances past n document units unchanged.
type DelSkip int

func (DelSkip) delElement() {}

// DelChars removes n character units. Requesting more than are available
// in a single atom is a structural mismatch: apply time panics with a
// *StructuralError rather than returning an error.
type DelChars int

func (DelChars) delElement() {}

// DelGroup removes the next group but splices its (recursively edited)
// children into the parent span — the group wrapper itself disappears.
type DelGroup struct {
	Inner DelSpan
}

func (DelGroup) delElement() {}

// DelWithGroup descends into the next group, editing its children with
// Inner, without removing the group.
type DelWithGroup struct {
	Inner DelSpan
}

func (DelWithGroup) delElement() {}

// DelSpan is an ordered sequence of delete atoms.
type DelSpan []DelElement

// PlaceDelSkip appends a skip, coalescing with a trailing DelSkip.
func PlaceDelSkip(span DelSpan, n int) DelSpan {
	if n == 0 {
		return span
	}
	if l := len(span); l > 0 {
		if last, ok := span[l-1].(DelSkip); ok {
			span[l-1] = last + DelSkip(n)
			return span
		}
	}
	return append(span, DelSkip(n))
}

// PlaceDelChars appends a character deletion, coalescing with a trailing
// DelChars.
func PlaceDelChars(span DelSpan, n int) DelSpan {
	if n == 0 {
		return span
	}
	if l := len(span); l > 0 {
		if last, ok := span[l-1].(DelChars); ok {
			span[l-1] = last + DelChars(n)
			return span
		}
	}
	return append(span, DelChars(n))
}

// PlaceDel appends atom to span, coalescing DelSkip/DelChars runs and
// pushing every other element verbatim. This is the only sanctioned way
// to grow a DelSpan in canonical form.
func PlaceDel(span DelSpan, atom DelElement) DelSpan {
	switch v := atom.(type) {
	case DelSkip:
		return PlaceDelSkip(span, int(v))
	case DelChars:
		return PlaceDelChars(span, int(v))
	default:
		return append(span, atom)
	}
}

// PlaceDelSpan appends every atom of more to span via PlaceDel.
func PlaceDelSpan(span DelSpan, more DelSpan) DelSpan {
	for _, atom := range more {
		span = PlaceDel(span, atom)
	}
	return span
}
