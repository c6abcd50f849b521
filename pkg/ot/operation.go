package ot

import "reflect"

// Operation is the pair (Del, Add): apply Del first, then Add to the
// result (spec.md §3, "An operation is the pair (del, add)").
type Operation struct {
	Del DelSpan
	Add AddSpan
}

// Empty is the identity operation: applying it returns the input
// document unchanged, and composing with it is a no-op (spec.md §8,
// property 5).
func Empty() Operation { return Operation{} }

// IsNoop reports whether the operation has no observable effect: an empty
// span, or a span containing nothing but a single trailing skip.
func (op Operation) IsNoop() bool {
	return isNoopDel(op.Del) && isNoopAdd(op.Add)
}

func isNoopDel(d DelSpan) bool {
	if len(d) == 0 {
		return true
	}
	_, ok := d[0].(DelSkip)
	return len(d) == 1 && ok
}

func isNoopAdd(a AddSpan) bool {
	if len(a) == 0 {
		return true
	}
	_, ok := a[0].(AddSkip)
	return len(a) == 1 && ok
}

// Equals reports whether two operations are structurally identical.
// Attribute bags compare structurally (map equality), everything else by
// deep equality.
func (op Operation) Equals(other Operation) bool {
	return equalDelSpan(op.Del, other.Del) && equalAddSpan(op.Add, other.Add)
}

func equalDelSpan(a, b DelSpan) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalDelElement(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalAddSpan(a, b AddSpan) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalAddElement(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalDelElement(a, b DelElement) bool {
	switch av := a.(type) {
	case DelSkip:
		bv, ok := b.(DelSkip)
		return ok && av == bv
	case DelChars:
		bv, ok := b.(DelChars)
		return ok && av == bv
	case DelGroup:
		bv, ok := b.(DelGroup)
		return ok && equalDelSpan(av.Inner, bv.Inner)
	case DelWithGroup:
		bv, ok := b.(DelWithGroup)
		return ok && equalDelSpan(av.Inner, bv.Inner)
	default:
		return reflect.DeepEqual(a, b)
	}
}

func equalAddElement(a, b AddElement) bool {
	switch av := a.(type) {
	case AddSkip:
		bv, ok := b.(AddSkip)
		return ok && av == bv
	case AddChars:
		bv, ok := b.(AddChars)
		return ok && av == bv
	case AddGroup:
		bv, ok := b.(AddGroup)
		return ok && av.Attrs.Equal(bv.Attrs) && equalAddSpan(av.Inner, bv.Inner)
	case AddWithGroup:
		bv, ok := b.(AddWithGroup)
		return ok && equalAddSpan(av.Inner, bv.Inner)
	case AddStyles:
		bv, ok := b.(AddStyles)
		return ok && av.N == bv.N && reflect.DeepEqual(av.Styles, bv.Styles)
	default:
		return reflect.DeepEqual(a, b)
	}
}
