package ot

// delCursor is a one-element-of-lookahead cursor over a DelSpan, mirroring
// the teacher's two-cursor compose loop (pkg/ot/compose.go's op1/op2
// lookahead) generalized to tree atoms.
type delCursor struct {
	head DelElement
	rest DelSpan
	done bool
}

func newDelCursor(span DelSpan) *delCursor {
	if len(span) == 0 {
		return &delCursor{done: true}
	}
	return &delCursor{head: span[0], rest: span[1:]}
}

func (c *delCursor) next() DelElement {
	h := c.head
	if len(c.rest) == 0 {
		c.done = true
		c.head = nil
	} else {
		c.head = c.rest[0]
		c.rest = c.rest[1:]
	}
	return h
}

// addCursor is the AddSpan analogue of delCursor.
type addCursor struct {
	head AddElement
	rest AddSpan
	done bool
}

func newAddCursor(span AddSpan) *addCursor {
	if len(span) == 0 {
		return &addCursor{done: true}
	}
	return &addCursor{head: span[0], rest: span[1:]}
}

func (c *addCursor) next() AddElement {
	h := c.head
	if len(c.rest) == 0 {
		c.done = true
		c.head = nil
	} else {
		c.head = c.rest[0]
		c.rest = c.rest[1:]
	}
	return h
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ComposeDelDel fuses two sequential delete-spans that target the same
// document timeline, where b runs against the document post-a (spec.md
// §4.2.1). b's Skip corresponds to a run that survived a, so it expands
// by a's deletions in that run.
func ComposeDelDel(avec, bvec DelSpan) DelSpan {
	res := make(DelSpan, 0, len(avec)+len(bvec))

	a := newDelCursor(avec)
	b := newDelCursor(bvec)

	for !a.done {
		switch av := a.head.(type) {
		case DelSkip:
			acount := int(av)
			switch bv := b.head.(type) {
			case DelSkip:
				bcount := int(bv)
				res = PlaceDel(res, DelSkip(minInt(acount, bcount)))
				switch {
				case acount > bcount:
					a.head = DelSkip(acount - bcount)
					b.next()
				case acount < bcount:
					b.head = DelSkip(bcount - acount)
					a.next()
				default:
					a.next()
					b.next()
				}
			case DelWithGroup:
				if acount > 1 {
					a.head = DelSkip(acount - 1)
				} else {
					a.next()
				}
				res = PlaceDel(res, b.next())
			case DelChars:
				bcount := int(bv)
				res = PlaceDel(res, DelChars(minInt(acount, bcount)))
				switch {
				case acount > bcount:
					a.head = DelSkip(acount - bcount)
					b.next()
				case acount < bcount:
					b.head = DelChars(bcount - acount)
					a.next()
				default:
					a.next()
					b.next()
				}
			case DelGroup:
				if acount > 1 {
					a.head = DelSkip(acount - 1)
				} else {
					a.next()
				}
				res = PlaceDel(res, b.next())
			case nil:
				res = PlaceDel(res, a.next())
			}

		case DelWithGroup:
			switch bv := b.head.(type) {
			case DelSkip:
				bcount := int(bv)
				if bcount > 1 {
					b.head = DelSkip(bcount - 1)
				} else {
					b.next()
				}
				res = PlaceDel(res, a.next())
			case DelWithGroup:
				res = PlaceDel(res, DelWithGroup{Inner: ComposeDelDel(av.Inner, bv.Inner)})
				a.next()
				b.next()
			case DelChars:
				panicStructural("DelWithGroup vs DelChars is invalid")
			case DelGroup:
				a.next()
				res = PlaceDel(res, b.next())
			case nil:
				res = PlaceDel(res, a.next())
			}

		case DelChars:
			// These deletes already happened pre-b; emit verbatim,
			// advance a only.
			res = PlaceDel(res, DelChars(int(av)))
			a.next()

		case DelGroup:
			res = PlaceDel(res, av)
			a.next()
		}
	}

	if !b.done {
		res = PlaceDel(res, b.head)
		res = PlaceDelSpan(res, b.rest)
	}

	return res
}

// ComposeAddAdd fuses two sequential add-spans where b's view of the
// document contains a's insertions: b's Skip must be charged against a's
// insertions first (spec.md §4.2.2).
func ComposeAddAdd(avec, bvec AddSpan) AddSpan {
	res := make(AddSpan, 0, len(avec)+len(bvec))

	a := newAddCursor(avec)
	b := newAddCursor(bvec)

	for !b.done {
		switch bv := b.head.(type) {
		case AddChars:
			res = PlaceAdd(res, b.next())

		case AddGroup:
			// b authors a brand-new group; it is independent of a's
			// cursor entirely, exactly like AddChars.
			res = PlaceAdd(res, b.next())

		case AddSkip:
			bcount := int(bv)
			switch av := a.head.(type) {
			case AddChars:
				alen := av.RuneLen()
				runes := []rune(string(av))
				switch {
				case bcount < alen:
					res = PlaceAdd(res, AddChars(string(runes[:bcount])))
					a.head = AddChars(string(runes[bcount:]))
					b.next()
				case bcount > alen:
					res = PlaceAdd(res, a.next())
					b.head = AddSkip(bcount - alen)
				default:
					res = PlaceAdd(res, a.head)
					a.next()
					b.next()
				}
			case AddSkip:
				acount := int(av)
				res = PlaceAdd(res, AddSkip(minInt(acount, bcount)))
				switch {
				case acount > bcount:
					a.head = AddSkip(acount - bcount)
					b.next()
				case acount < bcount:
					b.head = AddSkip(bcount - acount)
					a.next()
				default:
					a.next()
					b.next()
				}
			case AddWithGroup, AddGroup:
				res = PlaceAdd(res, a.next())
				if bcount > 1 {
					b.head = AddSkip(bcount - 1)
				} else {
					b.next()
				}
			case nil:
				panicStructural("ComposeAddAdd: a exhausted under AddSkip")
			default:
				panicStructural("ComposeAddAdd: unhandled a atom %T under AddSkip", a.head)
			}

		default:
			panicStructural("ComposeAddAdd: unhandled b atom %T", bv)
		}
	}

	if !a.done {
		res = PlaceAdd(res, a.head)
		res = PlaceAddSpan(res, a.rest)
	}

	return res
}

// ComposeAddDel fuses a's insertions against b's deletions where b runs
// against the intermediate document a produced: some of b's deletions
// consume a's own insertions (and vanish from both outputs) while others
// punch through to pre-existing content (and surface in delOut, to be
// composed with the operation before a). See spec.md §4.2 and §4.2.3.
func ComposeAddDel(avec AddSpan, bvec DelSpan) (delOut DelSpan, addOut AddSpan) {
	delOut = make(DelSpan, 0, len(avec)+len(bvec))
	addOut = make(AddSpan, 0, len(avec)+len(bvec))

	a := newAddCursor(avec)
	b := newDelCursor(bvec)

	for !b.done {
		switch bv := b.head.(type) {
		case DelChars:
			bcount := int(bv)
			switch av := a.head.(type) {
			case AddChars:
				alen := av.RuneLen()
				runes := []rune(string(av))
				switch {
				case bcount < alen:
					a.head = AddChars(string(runes[bcount:]))
					b.next()
				case bcount > alen:
					a.next()
					b.head = DelChars(bcount - alen)
				default:
					a.next()
					b.next()
				}
			case AddSkip:
				acount := int(av)
				switch {
				case bcount < acount:
					a.head = AddSkip(acount - bcount)
					delOut = PlaceDel(delOut, b.next())
				case bcount > acount:
					a.next()
					delOut = PlaceDel(delOut, DelChars(acount))
					b.head = DelChars(bcount - acount)
				default:
					a.next()
					delOut = PlaceDel(delOut, b.next())
				}
			case nil:
				panicStructural("ComposeAddDel: a exhausted under DelChars")
			default:
				panicStructural("ComposeAddDel: unhandled a atom %T under DelChars", a.head)
			}

		case DelSkip:
			bcount := int(bv)
			switch av := a.head.(type) {
			case AddChars:
				alen := av.RuneLen()
				runes := []rune(string(av))
				switch {
				case bcount < alen:
					addOut = PlaceAdd(addOut, AddChars(string(runes[:bcount])))
					a.head = AddChars(string(runes[bcount:]))
					b.next()
				case bcount > alen:
					addOut = PlaceAdd(addOut, a.next())
					b.head = DelSkip(bcount - alen)
				default:
					addOut = PlaceAdd(addOut, a.head)
					a.next()
					b.next()
				}
			case AddSkip:
				acount := int(av)
				m := minInt(acount, bcount)
				addOut = PlaceAdd(addOut, AddSkip(m))
				delOut = PlaceDel(delOut, DelSkip(m))
				switch {
				case acount > bcount:
					a.head = AddSkip(acount - bcount)
					b.next()
				case acount < bcount:
					a.next()
					b.head = DelSkip(bcount - acount)
				default:
					a.next()
					b.next()
				}
			case AddWithGroup, AddGroup:
				addOut = PlaceAdd(addOut, a.next())
				if bcount > 1 {
					b.head = DelSkip(bcount - 1)
				} else {
					b.next()
				}
			case nil:
				panicStructural("ComposeAddDel: a exhausted under DelSkip")
			default:
				panicStructural("ComposeAddDel: unhandled a atom %T under DelSkip", a.head)
			}

		default:
			panicStructural("ComposeAddDel: unhandled b atom %T", bv)
		}
	}

	if !a.done {
		addOut = PlaceAdd(addOut, a.head)
		addOut = PlaceAddSpan(addOut, a.rest)
	}

	return delOut, addOut
}

// Compose fuses a and b, two sequentially applied operations, into a
// single equivalent operation: apply(apply(D, a), b) == apply(D,
// Compose(a, b)) for any document D (spec.md §4.2, the composition law).
func Compose(a, b Operation) Operation {
	mergedDel, mergedAdd := ComposeAddDel(a.Add, b.Del)
	return Operation{
		Del: ComposeDelDel(a.Del, mergedDel),
		Add: ComposeAddAdd(mergedAdd, b.Add),
	}
}
