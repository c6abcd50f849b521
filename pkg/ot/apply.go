package ot

// ApplyDelete walks doc and del in lockstep, producing the document with
// del's deletions applied. Exhausting doc before del is a fatal structural
// mismatch (spec.md §4.1.1); exhausting del simply means the remainder of
// doc is appended verbatim.
func ApplyDelete(doc Span, del DelSpan) Span {
	if len(del) == 0 {
		return append(Span(nil), doc...)
	}
	if len(doc) == 0 {
		panicStructural("exhausted document in ApplyDelete (pending %#v)", del[0])
	}

	span := doc
	res := make(Span, 0, len(doc))

	first := span[0]
	span = span[1:]

	d := del[0]
	del = del[1:]

	for {
		nextDel := true
		nextFirst := true

		switch dd := d.(type) {
		case DelSkip:
			count := int(dd)
			switch fv := first.(type) {
			case DocChars:
				switch {
				case fv.RuneLen() < count:
					d = DelSkip(count - fv.RuneLen())
					res = PlaceDocElement(res, fv)
					nextDel = false
				case fv.RuneLen() > count:
					left, right := fv.SplitAt(count)
					res = PlaceDocElement(res, left)
					first = right
					nextFirst = false
				default:
					res = PlaceDocElement(res, fv)
				}
			case DocGroup:
				res = append(res, fv)
				if count > 1 {
					d = DelSkip(count - 1)
					nextDel = false
				}
			}

		case DelWithGroup:
			fv, ok := first.(DocGroup)
			if !ok {
				panicStructural("DelWithGroup against non-group atom %T", first)
			}
			res = append(res, DocGroup{Attrs: fv.Attrs, Children: ApplyDelete(fv.Children, dd.Inner)})

		case DelGroup:
			fv, ok := first.(DocGroup)
			if !ok {
				panicStructural("DelGroup against non-group atom %T", first)
			}
			res = PlaceDocSpan(res, ApplyDelete(fv.Children, dd.Inner))

		case DelChars:
			count := int(dd)
			fv, ok := first.(DocChars)
			if !ok {
				panicStructural("DelChars against non-chars atom %T", first)
			}
			switch {
			case fv.RuneLen() > count:
				_, right := fv.SplitAt(count)
				first = right
				nextFirst = false
			case fv.RuneLen() < count:
				panicStructural("attempted deletion of too much: need %d, have %d", count, fv.RuneLen())
			}
			// equal: consume this atom entirely, advance both.
		}

		if nextDel {
			if len(del) == 0 {
				if !nextFirst {
					res = PlaceDocElement(res, first)
				}
				res = PlaceDocSpan(res, span)
				break
			}
			d = del[0]
			del = del[1:]
		}

		if nextFirst {
			if len(span) == 0 {
				panicStructural("exhausted document in ApplyDelete (pending %#v)", d)
			}
			first = span[0]
			span = span[1:]
		}
	}

	return res
}

// applyAddInner is the recursive core of the add engine. It returns the
// span produced by running add against the head of doc, and the leftover
// suffix of doc that add did not consume. The top-level ApplyAdd treats
// the leftover as trailing unchanged content; AddGroup uses it to bound
// how much of doc becomes the new group's children (spec.md §4.1.2).
func applyAddInner(doc Span, add AddSpan) (produced Span, leftover Span) {
	span := doc
	var first DocElement
	exhausted := true
	if len(span) > 0 {
		first = span[0]
		span = span[1:]
		exhausted = false
	}

	res := make(Span, 0, len(span))

	if len(add) == 0 {
		return Span{}, append(Span(nil), doc...)
	}

	d := add[0]
	add = add[1:]

	for {
		nextAdd := true
		nextFirst := true

		if exhausted {
			switch d.(type) {
			case AddSkip, AddWithGroup:
				panicStructural("exhausted document on %#v", d)
			}
		}

		switch dd := d.(type) {
		case AddStyles:
			fv, ok := first.(DocChars)
			if !ok {
				panicStructural("AddStyles against non-chars atom %T", first)
			}
			count := dd.N
			switch {
			case fv.RuneLen() < count:
				d = AddStyles{N: count - fv.RuneLen(), Styles: dd.Styles}
				res = PlaceDocElement(res, fv.WithStyleOverlay(fv.RuneLen(), dd.Styles))
				nextAdd = false
			case fv.RuneLen() > count:
				left, right := fv.SplitAt(count)
				res = PlaceDocElement(res, left.WithStyleOverlay(count, dd.Styles))
				first = right
				nextFirst = false
			default:
				res = PlaceDocElement(res, fv.WithStyleOverlay(count, dd.Styles))
			}

		case AddSkip:
			count := int(dd)
			switch fv := first.(type) {
			case DocChars:
				switch {
				case fv.RuneLen() < count:
					d = AddSkip(count - fv.RuneLen())
					res = PlaceDocElement(res, fv)
					nextAdd = false
				case fv.RuneLen() > count:
					left, right := fv.SplitAt(count)
					res = PlaceDocElement(res, left)
					first = right
					nextFirst = false
				default:
					res = PlaceDocElement(res, fv)
				}
			case DocGroup:
				res = append(res, fv)
				if count > 1 {
					d = AddSkip(count - 1)
					nextAdd = false
				}
			}

		case AddWithGroup:
			fv, ok := first.(DocGroup)
			if !ok {
				panicStructural("AddWithGroup against non-group atom %T", first)
			}
			res = append(res, DocGroup{Attrs: fv.Attrs, Children: ApplyAdd(fv.Children, dd.Inner)})

		case AddChars:
			res = PlaceDocChars(res, string(dd))
			nextFirst = false

		case AddGroup:
			subdoc := make(Span, 0, len(span)+1)
			if !exhausted {
				subdoc = append(subdoc, first)
				subdoc = append(subdoc, span...)
			}

			inner, rest := applyAddInner(subdoc, dd.Inner)
			res = PlaceDocElement(res, DocGroup{Attrs: dd.Attrs, Children: inner})

			tailProduced, tailLeftover := applyAddInner(rest, add)
			res = PlaceDocSpan(res, tailProduced)
			return res, tailLeftover
		}

		if nextAdd {
			if len(add) == 0 {
				remaining := Span{}
				if !nextFirst && !exhausted {
					remaining = append(remaining, first)
				}
				remaining = append(remaining, span...)
				return res, remaining
			}
			d = add[0]
			add = add[1:]
		}

		if nextFirst {
			if len(span) == 0 {
				exhausted = true
			} else {
				first = span[0]
				span = span[1:]
			}
		}
	}
}

// ApplyAdd applies add to doc, inserting new content and passing unchanged
// content through. Any leftover that applyAddInner did not consume is
// appended as trailing unchanged content.
func ApplyAdd(doc Span, add AddSpan) Span {
	res, remaining := applyAddInner(doc, add)
	if len(remaining) > 0 {
		res = PlaceDocSpan(res, remaining)
	}
	return res
}

// ApplyOperation runs op's delete then its add against doc, per spec.md
// §4.1.3.
func ApplyOperation(doc Span, op Operation) Span {
	return ApplyAdd(ApplyDelete(doc, op.Del), op.Add)
}
