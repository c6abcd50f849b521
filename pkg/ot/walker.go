package ot

// docLenAt returns the number of document units (spec.md §3: a rune or a
// whole group, each counting as 1 unit at its own depth) in span.
func docLenAt(span Span) int {
	n := 0
	for _, atom := range span {
		switch v := atom.(type) {
		case DocChars:
			n += v.RuneLen()
		default:
			n += 1
		}
	}
	return n
}

// resolvePath walks path (a structured cursor path, one unit-offset per
// depth level — spec.md §4.4's "structured cursor path") from the root
// span down to the span actually addressed by its last element, verifying
// every intermediate offset lands exactly on a DocGroup boundary (since
// only a group boundary may be descended through). Returns the span at
// the final depth and ok=false if the path is invalid.
func resolvePath(root Span, path []int) (span Span, ok bool) {
	span = root
	for depth := 0; depth < len(path)-1; depth++ {
		offset := path[depth]
		atom, rest, found := atomAt(span, offset)
		if !found {
			return nil, false
		}
		group, isGroup := atom.(DocGroup)
		if !isGroup {
			return nil, false
		}
		_ = rest
		span = group.Children
	}
	return span, true
}

// atomAt finds the atom whose unit-range starts exactly at offset units
// into span (offset must land on an atom boundary — a rune offset mid-run
// does not resolve to an atom here). rest is every atom from that one
// onward.
func atomAt(span Span, offset int) (atom DocElement, rest Span, ok bool) {
	n := 0
	for i, a := range span {
		if n == offset {
			return a, span[i:], true
		}
		switch v := a.(type) {
		case DocChars:
			n += v.RuneLen()
		default:
			n += 1
		}
		if n > offset {
			return nil, nil, false
		}
	}
	if n == offset {
		return nil, nil, true // position is exactly at the end of span
	}
	return nil, nil, false
}

// Walker is a positional cursor over a document, addressable either by a
// flat offset at the root (GotoPos) or by a structured cursor path
// (ToCursor). spec.md §4.4.
type Walker struct {
	doc  Span
	path []int
}

// NewWalker returns a walker positioned at the start of doc.
func NewWalker(doc Span) *Walker {
	return &Walker{doc: doc, path: []int{0}}
}

// ToCursor constructs a walker positioned at the structured cursor path
// cur against doc.
func ToCursor(doc Span, cur []int) *Walker {
	path := append([]int(nil), cur...)
	if len(path) == 0 {
		path = []int{0}
	}
	return &Walker{doc: doc, path: path}
}

// Doc returns the document the walker was constructed against.
func (w *Walker) Doc() Span { return w.doc }

// Path returns a copy of the walker's current structured cursor path.
func (w *Walker) Path() []int { return append([]int(nil), w.path...) }

// currentSpan returns the span at the walker's current depth.
func (w *Walker) currentSpan() Span {
	span, ok := resolvePath(w.doc, w.path)
	if !ok {
		panicStructural("walker: invalid cursor path %v", w.path)
	}
	return span
}

// GotoPos moves the walker to flat offset n within the span at its
// current depth. Returns false if n is out of range, leaving the walker
// unmoved; it does not distinguish "unreachable" from the other motion
// methods' boundary failures, it just reports ok/not-ok.
func (w *Walker) GotoPos(n int) bool {
	span := w.currentSpan()
	if n < 0 || n > docLenAt(span) {
		return false
	}
	w.path[len(w.path)-1] = n
	return true
}

// GotoEnd moves the walker to the end of the span at its current depth.
func (w *Walker) GotoEnd() {
	span := w.currentSpan()
	w.path[len(w.path)-1] = docLenAt(span)
}

// NextChar advances the cursor by one unit at the current depth. Returns
// false at the end of the current span without moving.
func (w *Walker) NextChar() bool {
	span := w.currentSpan()
	last := len(w.path) - 1
	if w.path[last] >= docLenAt(span) {
		return false
	}
	w.path[last]++
	return true
}

// BackChar retreats the cursor by one unit at the current depth. Returns
// false at the start of the current span without moving.
func (w *Walker) BackChar() bool {
	last := len(w.path) - 1
	if w.path[last] <= 0 {
		return false
	}
	w.path[last]--
	return true
}

// NextBlock advances the cursor to the position immediately after the
// next DocGroup atom at the current depth (a "block" boundary). Returns
// false if there is no further group.
func (w *Walker) NextBlock() bool {
	span := w.currentSpan()
	last := len(w.path) - 1
	n := 0
	for _, a := range span {
		var width int
		switch v := a.(type) {
		case DocChars:
			width = v.RuneLen()
		default:
			width = 1
		}
		end := n + width
		if _, isGroup := a.(DocGroup); isGroup && end > w.path[last] {
			w.path[last] = end
			return true
		}
		n = end
	}
	return false
}

// BackBlock retreats the cursor to the position immediately before the
// previous DocGroup atom at the current depth. Returns false if there is
// no earlier group.
func (w *Walker) BackBlock() bool {
	span := w.currentSpan()
	last := len(w.path) - 1
	n := 0
	found := -1
	for _, a := range span {
		var width int
		switch v := a.(type) {
		case DocChars:
			width = v.RuneLen()
		default:
			width = 1
		}
		if _, isGroup := a.(DocGroup); isGroup && n < w.path[last] {
			found = n
		}
		n += width
	}
	if found < 0 {
		return false
	}
	w.path[last] = found
	return true
}

// Head returns the atom immediately after the cursor at the current
// depth, or nil at the end of the span. Collaborators use this to
// inspect attributes before stepping further (spec.md §6).
func (w *Walker) Head() DocElement {
	span := w.currentSpan()
	last := len(w.path) - 1
	atom, _, ok := atomAt(span, w.path[last])
	if !ok {
		return nil
	}
	return atom
}

// Unhead returns the atom immediately before the cursor at the current
// depth, or nil at the start of the span.
func (w *Walker) Unhead() DocElement {
	span := w.currentSpan()
	last := len(w.path) - 1
	if w.path[last] <= 0 {
		return nil
	}
	n := 0
	var prev DocElement
	for _, a := range span {
		if n >= w.path[last] {
			break
		}
		prev = a
		switch v := a.(type) {
		case DocChars:
			n += v.RuneLen()
		default:
			n += 1
		}
	}
	return prev
}

// HeadRun returns the portion, from the cursor forward, of the contiguous
// character run the cursor currently sits inside of — unlike Head, this
// resolves correctly when the cursor is mid-run rather than only at a run's
// start. ok is false when the cursor sits on a DocGroup or at the end of
// the span, since there is no character run to return there.
func (w *Walker) HeadRun() (text string, ok bool) {
	span := w.currentSpan()
	pos := w.path[len(w.path)-1]
	n := 0
	for _, a := range span {
		c, isChars := a.(DocChars)
		width := 1
		if isChars {
			width = c.RuneLen()
		}
		if pos >= n && pos < n+width {
			if !isChars {
				return "", false
			}
			runes := []rune(c.Text)
			return string(runes[pos-n:]), true
		}
		n += width
	}
	return "", false
}

// UnheadRun returns the portion, up to the cursor, of the contiguous
// character run the cursor currently sits inside of — the mid-run
// counterpart to Unhead. ok is false when the cursor sits exactly at the
// start of the run, on a DocGroup, or at the start of the span.
func (w *Walker) UnheadRun() (text string, ok bool) {
	span := w.currentSpan()
	pos := w.path[len(w.path)-1]
	n := 0
	for _, a := range span {
		c, isChars := a.(DocChars)
		width := 1
		if isChars {
			width = c.RuneLen()
		}
		if pos > n && pos <= n+width {
			if !isChars {
				return "", false
			}
			runes := []rune(c.Text)
			return string(runes[:pos-n]), true
		}
		n += width
	}
	return "", false
}
