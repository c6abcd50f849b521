package ot

// Normalize rewrites op into canonical form: trailing no-op skips are
// stripped from nested group contexts, and every group/with-group child
// span is recursively normalized (spec.md §4.3).
func Normalize(op Operation) Operation {
	return Operation{
		Del: normalizeDelSpan(op.Del, true),
		Add: normalizeAddSpan(op.Add, true),
	}
}

func normalizeAddElement(elem AddElement) AddElement {
	switch v := elem.(type) {
	case AddGroup:
		return AddGroup{Attrs: v.Attrs, Inner: normalizeAddSpan(v.Inner, false)}
	case AddWithGroup:
		span := normalizeAddSpan(v.Inner, true)
		if len(span) == 0 {
			// A with-group payload that normalizes to empty collapses to
			// a single Skip(1) (spec.md §3's canonical-form invariant).
			return AddSkip(1)
		}
		return AddWithGroup{Inner: span}
	default:
		return elem
	}
}

func normalizeAddSpan(add AddSpan, trimLast bool) AddSpan {
	ret := make(AddSpan, 0, len(add))
	for _, elem := range add {
		ret = PlaceAdd(ret, normalizeAddElement(elem))
	}
	if trimLast && len(ret) > 0 {
		if _, ok := ret[len(ret)-1].(AddSkip); ok {
			ret = ret[:len(ret)-1]
		}
	}
	return ret
}

func normalizeDelElement(elem DelElement) DelElement {
	switch v := elem.(type) {
	case DelGroup:
		return DelGroup{Inner: normalizeDelSpan(v.Inner, false)}
	case DelWithGroup:
		span := normalizeDelSpan(v.Inner, true)
		if len(span) == 0 {
			return DelSkip(1)
		}
		return DelWithGroup{Inner: span}
	default:
		return elem
	}
}

func normalizeDelSpan(del DelSpan, trimLast bool) DelSpan {
	ret := make(DelSpan, 0, len(del))
	for _, elem := range del {
		ret = PlaceDel(ret, normalizeDelElement(elem))
	}
	if trimLast && len(ret) > 0 {
		if _, ok := ret[len(ret)-1].(DelSkip); ok {
			ret = ret[:len(ret)-1]
		}
	}
	return ret
}
