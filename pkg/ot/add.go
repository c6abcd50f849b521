package ot

import "unicode/utf8"

// AddElement is a single atom of an add-span: a closed sum type over the
// five insertion primitives described in spec.md §3.
type AddElement interface {
	addElement()
}

// AddSkip advances past n document units unchanged. A character counts as
// one unit; a whole group counts as one unit at its own depth.
type AddSkip int

func (AddSkip) addElement() {}

// AddChars inserts a literal run of characters. It does not consume any
// input.
type AddChars string

func (AddChars) addElement() {}

// RuneLen returns the number of Unicode scalar values being inserted.
func (a AddChars) RuneLen() int { return utf8.RuneCountInString(string(a)) }

// AddGroup opens a new group with the given attributes; Inner describes
// the new group's children, consumed positionally from the remaining
// input by apply_add_inner (see apply.go).
type AddGroup struct {
	Attrs Attrs
	Inner AddSpan
}

func (AddGroup) addElement() {}

// AddWithGroup descends into the next group of the input, applying Inner
// to its children, and leaves the group's attributes untouched.
type AddWithGroup struct {
	Inner AddSpan
}

func (AddWithGroup) addElement() {}

// AddStyles overlays Styles onto the next N character units.
type AddStyles struct {
	N      int
	Styles CharStyle
}

func (AddStyles) addElement() {}

// AddSpan is an ordered sequence of add atoms.
type AddSpan []AddElement

// PlaceAddSkip appends a skip, coalescing with a trailing AddSkip.
func PlaceAddSkip(span AddSpan, n int) AddSpan {
	if n == 0 {
		return span
	}
	if l := len(span); l > 0 {
		if last, ok := span[l-1].(AddSkip); ok {
			span[l-1] = last + AddSkip(n)
			return span
		}
	}
	return append(span, AddSkip(n))
}

// PlaceAddChars appends text, coalescing with a trailing AddChars.
func PlaceAddChars(span AddSpan, text string) AddSpan {
	if text == "" {
		return span
	}
	if l := len(span); l > 0 {
		if last, ok := span[l-1].(AddChars); ok {
			span[l-1] = last + AddChars(text)
			return span
		}
	}
	return append(span, AddChars(text))
}

// PlaceAdd appends atom to span, coalescing AddSkip/AddChars runs and
// pushing every other element verbatim. This is the only sanctioned way
// to grow an AddSpan in canonical form.
func PlaceAdd(span AddSpan, atom AddElement) AddSpan {
	switch v := atom.(type) {
	case AddSkip:
		return PlaceAddSkip(span, int(v))
	case AddChars:
		return PlaceAddChars(span, string(v))
	default:
		return append(span, atom)
	}
}

// PlaceAddSpan appends every atom of more to span via PlaceAdd.
func PlaceAddSpan(span AddSpan, more AddSpan) AddSpan {
	for _, atom := range more {
		span = PlaceAdd(span, atom)
	}
	return span
}
